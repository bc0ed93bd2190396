package rpc

import (
	"fmt"
	"strconv"

	"smartlife/pkg/tuya"
)

// Supported control actions.
const (
	ActionTurnOn     = "turn_on"
	ActionTurnOff    = "turn_off"
	ActionBrightness = "set_brightness"
	ActionColorTemp  = "set_color_temp"
)

// Actions lists the supported actions in the order they are advertised.
var Actions = []string{ActionTurnOn, ActionTurnOff, ActionBrightness, ActionColorTemp}

// Translate maps an action and optional value to the vendor command list.
// Unrecognized actions fail with a 400-coded error and no commands.
func Translate(action string, value any) ([]tuya.Command, error) {
	switch action {
	case ActionTurnOn:
		return []tuya.Command{{Code: "switch_1", Value: true}}, nil
	case ActionTurnOff:
		return []tuya.Command{{Code: "switch_1", Value: false}}, nil
	case ActionBrightness:
		return []tuya.Command{{Code: "brightness", Value: numeric(value)}}, nil
	case ActionColorTemp:
		return []tuya.Command{{Code: "color_temp", Value: numeric(value)}}, nil
	default:
		return nil, &Error{
			Code:    CodeMissingParams,
			Message: fmt.Sprintf("Unknown action: %s", action),
		}
	}
}

// numeric coerces a free-form value to a number for the vendor payload.
// Non-numeric input is not rejected: it degrades to null, which the vendor
// rejects on its side. NaN itself has no JSON encoding, so null stands in
// for it on the wire.
func numeric(value any) any {
	switch v := value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		return nil
	default:
		return nil
	}
}

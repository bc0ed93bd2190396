package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"smartlife/pkg/alias"
	"smartlife/pkg/tuya"
)

// Vendor sends translated commands to the device cloud. Satisfied by
// *tuya.Client; tests substitute a fake.
type Vendor interface {
	SendCommands(ctx context.Context, deviceID string, commands []tuya.Command) (bool, error)
}

// Dispatcher routes JSON-RPC requests to the bridge's tool surface.
// It holds no per-request state; every call is independent.
type Dispatcher struct {
	store  alias.Store
	vendor Vendor
}

// NewDispatcher creates a dispatcher over the given alias store and vendor client.
func NewDispatcher(store alias.Store, vendor Vendor) *Dispatcher {
	return &Dispatcher{store: store, vendor: vendor}
}

// ControlInput is the smartlife.control tool input.
type ControlInput struct {
	UserID string `json:"user_id"`
	Device string `json:"device"`
	Action string `json:"action"`
	Value  any    `json:"value"`
}

// ControlResult is the smartlife.control tool result.
type ControlResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	DeviceID string `json:"device_id"`
}

type callParams struct {
	Name  string       `json:"name"`
	Input ControlInput `json:"input"`
}

// Handle dispatches a single JSON-RPC request. Every failure, including a
// panic in a handler, becomes a JSON-RPC error response; the caller always
// gets an envelope back.
func (d *Dispatcher) Handle(ctx context.Context, req *Request) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("method", req.Method).Msg("Request handler panicked")
			resp = ErrorResponse(req.ID, CodeServerError, "Server error", fmt.Sprint(r))
		}
	}()

	switch req.Method {
	case "tools/list":
		return SuccessResponse(req.ID, ListToolsResult{Tools: []Tool{ControlTool()}})
	case "tools/call":
		return d.handleToolsCall(ctx, req)
	default:
		return ErrorResponse(req.ID, CodeMethodNotFound, "Method not found", nil)
	}
}

func (d *Dispatcher) handleToolsCall(ctx context.Context, req *Request) Response {
	var params callParams
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return d.errorResponse(req.ID, errMissingParams())
		}
	}

	// Gate on the tool name before touching anything else; an unknown tool
	// must not trigger a vendor call.
	if params.Name != ToolName {
		return d.errorResponse(req.ID, errToolNotFound())
	}

	result, err := d.Control(ctx, params.Input)
	if err != nil {
		return d.errorResponse(req.ID, err)
	}
	return SuccessResponse(req.ID, result)
}

// Control resolves the device, translates the action, and forwards the
// commands to the vendor. Shared by the HTTP dispatcher and the stdio MCP
// surface.
func (d *Dispatcher) Control(ctx context.Context, in ControlInput) (*ControlResult, error) {
	if in.UserID == "" || in.Device == "" || in.Action == "" {
		return nil, errMissingParams()
	}

	deviceID, err := d.store.Resolve(ctx, in.UserID, in.Device)
	if err != nil {
		if errors.Is(err, alias.ErrNotFound) {
			return nil, errDeviceNotFound()
		}
		return nil, err
	}

	commands, err := Translate(in.Action, in.Value)
	if err != nil {
		return nil, err
	}

	success, err := d.vendor.SendCommands(ctx, deviceID, commands)
	if err != nil {
		log.Warn().Err(err).Str("device_id", deviceID).Str("action", in.Action).Msg("Vendor call failed")
		return nil, err
	}

	log.Info().Str("device_id", deviceID).Str("action", in.Action).Bool("success", success).Msg("Command sent")

	return &ControlResult{
		Success:  success,
		Message:  "OK",
		DeviceID: deviceID,
	}, nil
}

// errorResponse shapes an error into a JSON-RPC error object, preserving
// typed dispatch errors and folding everything else into a server error.
func (d *Dispatcher) errorResponse(id json.RawMessage, err error) Response {
	var rpcErr *Error
	if errors.As(err, &rpcErr) {
		return ErrorResponse(id, rpcErr.Code, rpcErr.Message, rpcErr.Data)
	}
	return ErrorResponse(id, CodeServerError, "Server error", err.Error())
}

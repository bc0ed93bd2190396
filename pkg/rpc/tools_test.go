package rpc

import (
	"encoding/json"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compileControlSchema compiles the advertised input schema the way an MCP
// client would consume it.
func compileControlSchema(t *testing.T) *jsonschema.Schema {
	t.Helper()

	raw, err := json.Marshal(ControlTool().InputSchema)
	if err != nil {
		t.Fatal(err)
	}
	var schemaMap any
	if err := json.Unmarshal(raw, &schemaMap); err != nil {
		t.Fatal(err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", schemaMap); err != nil {
		t.Fatal(err)
	}
	compiled, err := c.Compile("schema.json")
	if err != nil {
		t.Fatalf("advertised tool schema does not compile: %v", err)
	}
	return compiled
}

func TestControlTool_SchemaAcceptsValidInput(t *testing.T) {
	schema := compileControlSchema(t)

	err := schema.Validate(map[string]any{
		"user_id": "u1",
		"device":  "lamp",
		"action":  "turn_on",
	})
	if err != nil {
		t.Errorf("expected valid input, got: %v", err)
	}

	err = schema.Validate(map[string]any{
		"user_id": "u1",
		"device":  "lamp",
		"action":  "set_brightness",
		"value":   float64(200),
	})
	if err != nil {
		t.Errorf("expected valid input with value, got: %v", err)
	}
}

func TestControlTool_SchemaRejectsMissingFields(t *testing.T) {
	schema := compileControlSchema(t)

	err := schema.Validate(map[string]any{
		"user_id": "u1",
		"action":  "turn_on",
	})
	if err == nil {
		t.Error("expected validation error for missing device")
	}
}

func TestControlTool_SchemaRejectsUnknownAction(t *testing.T) {
	schema := compileControlSchema(t)

	err := schema.Validate(map[string]any{
		"user_id": "u1",
		"device":  "lamp",
		"action":  "blink",
	})
	if err == nil {
		t.Error("expected validation error for action outside the enum")
	}
}

func TestControlTool_AdvertisesAllActions(t *testing.T) {
	tool := ControlTool()
	if tool.Name != ToolName {
		t.Errorf("unexpected tool name %q", tool.Name)
	}

	props := tool.InputSchema["properties"].(map[string]any)
	enum := props["action"].(map[string]any)["enum"].([]any)
	if len(enum) != len(Actions) {
		t.Fatalf("expected %d actions advertised, got %d", len(Actions), len(enum))
	}
	for i, a := range Actions {
		if enum[i] != a {
			t.Errorf("action %d: expected %q, got %v", i, a, enum[i])
		}
	}
}

package rpc

// ToolName is the single tool this bridge advertises.
const ToolName = "smartlife.control"

// Tool describes a callable tool for tools/list.
type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

// ListToolsResult is the tools/list result payload.
type ListToolsResult struct {
	Tools []Tool `json:"tools"`
}

// ControlTool returns the smartlife.control descriptor.
func ControlTool() Tool {
	actions := make([]any, len(Actions))
	for i, a := range Actions {
		actions[i] = a
	}

	return Tool{
		Name:        ToolName,
		Description: "Control a Smart Life / Tuya device: switch it on or off, set brightness or color temperature.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"user_id": map[string]any{
					"type":        "string",
					"description": "Identifier of the user whose device aliases apply",
				},
				"device": map[string]any{
					"type":        "string",
					"description": "Device alias or raw vendor device id",
				},
				"action": map[string]any{
					"type": "string",
					"enum": actions,
				},
				"value": map[string]any{
					"description": "Numeric value for set_brightness and set_color_temp",
				},
			},
			"required": []any{"user_id", "device", "action"},
		},
	}
}

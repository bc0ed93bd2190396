package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"

	"smartlife/pkg/rpc"
)

// registerTools registers the bridge's tools with the server
func (s *Server) registerTools() {
	s.mcpServer.AddTool(
		mcp.NewTool(rpc.ToolName,
			mcp.WithDescription("Control a Smart Life / Tuya device: switch it on or off, set brightness or color temperature"),
			mcp.WithString("user_id",
				mcp.Required(),
				mcp.Description("Identifier of the user whose device aliases apply"),
			),
			mcp.WithString("device",
				mcp.Required(),
				mcp.Description("Device alias or raw vendor device id"),
			),
			mcp.WithString("action",
				mcp.Required(),
				mcp.Description("One of turn_on, turn_off, set_brightness, set_color_temp"),
				mcp.Enum(rpc.Actions...),
			),
			mcp.WithNumber("value",
				mcp.Description("Numeric value for set_brightness and set_color_temp"),
			),
		),
		s.handleControl,
	)
}

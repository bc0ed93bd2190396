package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"smartlife/pkg/rpc"
)

func (s *Server) handleControl(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, err := requiredString(request, "user_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	device, err := requiredString(request, "device")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	action, err := requiredString(request, "action")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	in := rpc.ControlInput{
		UserID: userID,
		Device: device,
		Action: action,
		Value:  request.GetArguments()["value"],
	}

	out, err := s.dispatcher.Control(ctx, in)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to control device: %s", err)), nil
	}

	return mcp.NewToolResultText(formatJSON(out)), nil
}

// --- helpers ---

func requiredString(request mcp.CallToolRequest, key string) (string, error) {
	args := request.GetArguments()
	v, ok := args[key]
	if !ok || v == nil {
		return "", fmt.Errorf("required parameter %q is missing", key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("parameter %q must be a non-empty string", key)
	}
	return s, nil
}

func formatJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error":"failed to marshal response: %s"}`, err)
	}
	return string(b)
}

package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"smartlife/pkg/api/types"
	"smartlife/pkg/rpc"
)

// RPCHandler carries JSON-RPC requests over POST /mcps.
type RPCHandler struct {
	dispatcher *rpc.Dispatcher
}

// NewRPCHandler creates a new RPC transport handler
func NewRPCHandler(dispatcher *rpc.Dispatcher) *RPCHandler {
	return &RPCHandler{dispatcher: dispatcher}
}

// Handle handles POST /mcps
//
// Malformed envelopes (unparsable body, missing method) are rejected with
// HTTP 400 before any JSON-RPC dispatch runs. Everything past that point is
// HTTP 200 carrying either a result or a JSON-RPC error object.
func (h *RPCHandler) Handle(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to read request body",
		})
		return
	}

	var req rpc.Request
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid JSON-RPC envelope",
		})
		return
	}
	if req.Method == "" {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "Missing method",
		})
		return
	}

	resp := h.dispatcher.Handle(c.Request.Context(), &req)
	c.JSON(http.StatusOK, resp)
}

package types

import "time"

// --- Request DTOs ---

// UpsertAliasRequest is the request body for POST /admin/device-map
type UpsertAliasRequest struct {
	UserID     string `json:"user_id"`
	DeviceName string `json:"device_name"`
	DeviceID   string `json:"device_id"`
}

// --- Response DTOs ---

// ErrorResponse represents an API error
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// OKResponse is returned from successful admin mutations
type OKResponse struct {
	OK bool `json:"ok"`
}

// HealthResponse is returned from GET /health
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

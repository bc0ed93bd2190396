package tuya

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredentials indicates the client id or secret is not configured.
	ErrMissingCredentials = errors.New("tuya client id and secret are not configured")

	// ErrTokenFetch indicates the token grant request failed.
	ErrTokenFetch = errors.New("failed to obtain tuya access token")
)

// APIError is a non-success response from the vendor API.
type APIError struct {
	Code int
	Msg  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tuya api error %d: %s", e.Code, e.Msg)
}

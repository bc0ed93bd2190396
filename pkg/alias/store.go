package alias

import (
	"context"
	"errors"
	"regexp"
)

// Map is the full alias store contents: user id to a submap of
// alias (or device id) to vendor device id.
type Map map[string]map[string]string

var (
	// ErrNotFound indicates the name could not be resolved to a device id.
	ErrNotFound = errors.New("device not found")

	// ErrMissingField indicates an upsert with an empty key component.
	ErrMissingField = errors.New("user id, alias and device id are required")
)

// Store persists per-user device alias mappings.
//
// Resolution checks the user's submap first; if the name is not mapped but
// already looks like a vendor device id, it is returned as-is. Submap entries
// always win over the pattern fallback, so an alias that happens to look like
// a device id still resolves to its mapped target.
type Store interface {
	// Resolve maps an alias or raw device id to a vendor device id.
	Resolve(ctx context.Context, userID, nameOrID string) (string, error)

	// Upsert sets alias -> deviceID under userID and persists the store.
	Upsert(ctx context.Context, userID, alias, deviceID string) error

	// Dump returns the full store contents.
	Dump(ctx context.Context) (Map, error)

	// Close releases any underlying resources.
	Close() error
}

// Vendor device ids are opaque alphanumeric strings of at least 8 characters.
var deviceIDPattern = regexp.MustCompile(`(?i)^[a-z0-9]{8,}$`)

// LooksLikeDeviceID reports whether s matches the vendor device id shape.
func LooksLikeDeviceID(s string) bool {
	return deviceIDPattern.MatchString(s)
}

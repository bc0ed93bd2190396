package tuya

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Sign computes the request signature for the Tuya Cloud API.
//
// The signature is an HMAC-SHA256 over clientID + token + timestamp, keyed by
// the client secret and rendered as uppercase hex. Token is empty for the
// token-grant request itself. This must match the vendor's signing scheme
// exactly or every authenticated call fails with a vendor-side auth error.
func Sign(clientID, clientSecret, timestamp, token string) string {
	mac := hmac.New(sha256.New, []byte(clientSecret))
	mac.Write([]byte(clientID + token + timestamp))
	return strings.ToUpper(hex.EncodeToString(mac.Sum(nil)))
}

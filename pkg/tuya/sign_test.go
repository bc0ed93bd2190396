package tuya

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSign_KnownVector(t *testing.T) {
	got := Sign("client123", "secret456", "1700000000000", "")
	assert.Equal(t, "BF3F199034D777064601AF4592D69452D44CDA7B9032363903F71A7A150794A0", got)
}

func TestSign_WithToken(t *testing.T) {
	got := Sign("client123", "secret456", "1700000000000", "tok789")
	assert.Equal(t, "F7FD16EFD8CA479733CB100D9E0D962EEC9CE295D337A51289FD887074315DA6", got)
}

func TestSign_Deterministic(t *testing.T) {
	first := Sign("id", "key", "1234567890123", "token")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Sign("id", "key", "1234567890123", "token"))
	}
}

func TestSign_UppercaseHex(t *testing.T) {
	got := Sign("a", "b", "1", "")
	assert.Equal(t, strings.ToUpper(got), got)
	assert.Len(t, got, 64)
}

func TestSign_TokenChangesDigest(t *testing.T) {
	assert.NotEqual(t,
		Sign("client123", "secret456", "1700000000000", ""),
		Sign("client123", "secret456", "1700000000000", "tok789"))
}

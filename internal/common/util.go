package common

import (
	"crypto/rand"
	"encoding/base64"
)

// MakeRandToken returns size random bytes encoded as unpadded base64url,
// suitable for opaque bearer tokens.
func MakeRandToken(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// WipeByteArray zeroes b in place. Nil is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

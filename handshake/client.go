package handshake

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"io"

	"github.com/google/uuid"
)

var randReader io.Reader = rand.Reader

// CreateRequestKey returns a fresh Sec-WebSocket-Key: 16 random bytes,
// base64 encoded (RFC 6455, section 4.1, item 7).
func CreateRequestKey() (string, error) {
	nonce, err := uuid.NewRandomFromReader(randReader)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(nonce[:]), nil
}

// IsResponseKeyValid reports whether responseKey is the Sec-WebSocket-Accept
// value a server must send for requestKey.
func IsResponseKeyValid(requestKey, responseKey string) bool {
	if !IsRequestKeyValid(requestKey) {
		return false
	}
	expected := CreateResponseKey(requestKey)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(responseKey)) == 1
}

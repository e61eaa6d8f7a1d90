package handshake

import (
	"crypto/sha1"
	"encoding/base64"
	"strings"
)

// Header names used by the opening handshake (RFC 6455, section 11.3).
const (
	HeaderUpgrade              = "Upgrade"
	HeaderConnection           = "Connection"
	HeaderSecWebSocketKey      = "Sec-WebSocket-Key"
	HeaderSecWebSocketVersion  = "Sec-WebSocket-Version"
	HeaderSecWebSocketAccept   = "Sec-WebSocket-Accept"
	HeaderSecWebSocketProtocol = "Sec-WebSocket-Protocol"
)

const (
	// SupportedVersion is the only protocol version accepted, per RFC 6455,
	// section 4.2.1, item 6.
	SupportedVersion = "13"

	// GUID is appended to the client key when deriving the accept key,
	// per RFC 6455, section 1.3.
	GUID = "258EAFA5-E914-47DA-95CA-C5AB0DC85B11"

	upgradeToken    = "websocket"
	connectionToken = "Upgrade"
	requestKeySize  = 16
)

// Header is a single HTTP header field.
type Header struct {
	Name  string
	Value string
}

// NeededHeaders returns the headers a server must find in an upgrade
// request. The returned slice is a fresh copy.
func NeededHeaders() []string {
	return []string{
		HeaderUpgrade,
		HeaderConnection,
		HeaderSecWebSocketKey,
		HeaderSecWebSocketVersion,
	}
}

// CheckSupportedRequest reports whether method and headers form a WebSocket
// upgrade request this package can accept: a GET with Connection: Upgrade,
// Upgrade: websocket, Sec-WebSocket-Version: 13 and a valid
// Sec-WebSocket-Key. Header names and the Connection and Upgrade values
// are compared case-insensitively. Each value is compared as a whole, a
// comma separated Connection list does not match.
func CheckSupportedRequest(method string, headers []Header) bool {
	if !strings.EqualFold(method, "GET") {
		return false
	}

	var validConnection, validUpgrade, validVersion, validKey bool
	for _, h := range headers {
		switch {
		case strings.EqualFold(h.Name, HeaderConnection):
			if strings.EqualFold(h.Value, connectionToken) {
				validConnection = true
			}
		case strings.EqualFold(h.Name, HeaderUpgrade):
			if strings.EqualFold(h.Value, upgradeToken) {
				validUpgrade = true
			}
		case strings.EqualFold(h.Name, HeaderSecWebSocketVersion):
			if h.Value == SupportedVersion {
				validVersion = true
			}
		case strings.EqualFold(h.Name, HeaderSecWebSocketKey):
			validKey = IsRequestKeyValid(h.Value)
		}
	}

	return validConnection && validUpgrade && validVersion && validKey
}

// IsRequestKeyValid reports whether value is a Sec-WebSocket-Key: the
// base64 encoding of exactly 16 bytes (RFC 6455, section 4.1).
func IsRequestKeyValid(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}
	data, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return false
	}
	return len(data) == requestKeySize
}

// CreateResponseKey computes the Sec-WebSocket-Accept value for requestKey
// per RFC 6455, section 4.2.2, item 5.4: the base64-encoded SHA-1 hash of
// the key concatenated with GUID.
func CreateResponseKey(requestKey string) string {
	h := sha1.New()
	h.Write([]byte(requestKey))
	h.Write([]byte(GUID))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

// GenerateResponseHeaders returns the headers of a 101 Switching Protocols
// response to a request carrying key. Sec-WebSocket-Protocol is included
// only when subProtocol is not blank.
func GenerateResponseHeaders(key, subProtocol string) []Header {
	headers := []Header{
		{Name: HeaderConnection, Value: connectionToken},
		{Name: HeaderUpgrade, Value: upgradeToken},
		{Name: HeaderSecWebSocketAccept, Value: CreateResponseKey(key)},
	}
	if strings.TrimSpace(subProtocol) != "" {
		headers = append(headers, Header{Name: HeaderSecWebSocketProtocol, Value: subProtocol})
	}
	return headers
}

package handshake

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"golang.org/x/net/http/httpguts"
)

// Errors returned by the handshake package.
var (
	ErrBadHandshake       = errors.New("handshake: bad handshake")
	ErrInvalidSubprotocol = errors.New("handshake: invalid subprotocol")
)

// FromHTTPHeader flattens h into name/value pairs, one per value, ordered
// by name.
func FromHTTPHeader(h http.Header) []Header {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	slices.Sort(names)

	var headers []Header
	for _, name := range names {
		for _, v := range h[name] {
			headers = append(headers, Header{Name: name, Value: v})
		}
	}
	return headers
}

// CheckRequest is CheckSupportedRequest for a net/http request.
func CheckRequest(r *http.Request) bool {
	return CheckSupportedRequest(r.Method, FromHTTPHeader(r.Header))
}

// WriteResponseHeaders sets the headers returned by GenerateResponseHeaders
// on dst. A subprotocol that is not a valid header field value is rejected
// with ErrInvalidSubprotocol and dst is left untouched.
func WriteResponseHeaders(dst http.Header, key, subProtocol string) error {
	if strings.TrimSpace(subProtocol) != "" && !httpguts.ValidHeaderFieldValue(subProtocol) {
		return ErrInvalidSubprotocol
	}
	if !IsRequestKeyValid(key) {
		return ErrBadHandshake
	}

	for _, h := range GenerateResponseHeaders(key, subProtocol) {
		dst.Set(h.Name, h.Value)
	}
	return nil
}

// IsUpgradeRequest reports whether r asks for a WebSocket upgrade, allowing
// Connection and Upgrade to carry comma separated token lists such as
// "keep-alive, Upgrade" (RFC 6455, section 4.2.1, items 3 and 4). It is a
// looser pre-check than CheckRequest and does not look at the key or
// version.
func IsUpgradeRequest(r *http.Request) bool {
	return httpguts.HeaderValuesContainsToken(r.Header.Values(HeaderConnection), "upgrade") &&
		httpguts.HeaderValuesContainsToken(r.Header.Values(HeaderUpgrade), upgradeToken)
}

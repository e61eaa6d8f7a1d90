package frame

import (
	"encoding/binary"
	"strconv"

	"github.com/vitalvas/wscodec/utf8check"
)

// Close codes defined in RFC 6455, section 7.4.1.
const (
	CloseNormalClosure           = 1000
	CloseGoingAway               = 1001
	CloseProtocolError           = 1002
	CloseUnsupportedData         = 1003
	CloseNoStatusReceived        = 1005
	CloseAbnormalClosure         = 1006
	CloseInvalidFramePayloadData = 1007
	ClosePolicyViolation         = 1008
	CloseMessageTooBig           = 1009
	CloseMandatoryExtension      = 1010
	CloseInternalServerErr       = 1011
	CloseServiceRestart          = 1012
	CloseTryAgainLater           = 1013
	CloseTLSHandshake            = 1015
)

// CloseCodeText returns a short description of code.
func CloseCodeText(code int) string {
	switch code {
	case CloseNormalClosure:
		return "1000 (normal)"
	case CloseGoingAway:
		return "1001 (going away)"
	case CloseProtocolError:
		return "1002 (protocol error)"
	case CloseUnsupportedData:
		return "1003 (unsupported data)"
	case CloseNoStatusReceived:
		return "1005 (no status)"
	case CloseAbnormalClosure:
		return "1006 (abnormal closure)"
	case CloseInvalidFramePayloadData:
		return "1007 (invalid payload)"
	case ClosePolicyViolation:
		return "1008 (policy violation)"
	case CloseMessageTooBig:
		return "1009 (message too big)"
	case CloseMandatoryExtension:
		return "1010 (mandatory extension)"
	case CloseInternalServerErr:
		return "1011 (internal server error)"
	case CloseServiceRestart:
		return "1012 (service restart)"
	case CloseTryAgainLater:
		return "1013 (try again later)"
	case CloseTLSHandshake:
		return "1015 (TLS handshake)"
	default:
		return strconv.Itoa(code)
	}
}

// IsValidCloseCode reports whether code may appear in a close frame.
//
//	0-999      not used
//	1000-2999  protocol codes, only the ones defined by RFC 6455 may be sent
//	3000-3999  registered for libraries and frameworks
//	4000-4999  private use
func IsValidCloseCode(code int) bool {
	if code < 1000 || code >= 5000 {
		return false
	}
	if code >= 3000 {
		return true
	}

	switch code {
	case CloseNormalClosure,
		CloseGoingAway,
		CloseProtocolError,
		CloseUnsupportedData,
		CloseInvalidFramePayloadData,
		ClosePolicyViolation,
		CloseMessageTooBig,
		CloseMandatoryExtension,
		CloseInternalServerErr:
		return true
	default:
		return false
	}
}

// FormatCloseMessage formats closeCode and text as a close frame body per
// RFC 6455, section 5.5.1: a 2-byte status code followed by optional UTF-8
// reason text. CloseNoStatusReceived produces an empty body.
func FormatCloseMessage(closeCode int, text string) []byte {
	if closeCode == CloseNoStatusReceived {
		return []byte{}
	}
	buf := make([]byte, 2+len(text))
	binary.BigEndian.PutUint16(buf, uint16(closeCode))
	copy(buf[2:], text)
	return buf
}

// ParseCloseMessage parses an unmasked close frame body. An empty body
// yields CloseNoStatusReceived. A 1-byte body, an invalid code or a reason
// that is not valid UTF-8 is a ProtocolError with code CloseProtocolError.
func ParseCloseMessage(payload []byte) (code int, text string, err error) {
	switch len(payload) {
	case 0:
		return CloseNoStatusReceived, "", nil
	case 1:
		return 0, "", NewProtocolError(CloseProtocolError, ErrInvalidClosePayload)
	}

	code = int(binary.BigEndian.Uint16(payload))
	if !IsValidCloseCode(code) {
		return 0, "", NewProtocolError(CloseProtocolError, ErrInvalidCloseCode)
	}

	reason := payload[2:]
	if !utf8check.Valid(reason) {
		return 0, "", NewProtocolError(CloseProtocolError, ErrInvalidUTF8)
	}
	return code, string(reason), nil
}

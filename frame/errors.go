package frame

import (
	"errors"
	"slices"
	"strconv"
)

// Errors returned by the frame package.
var (
	ErrShortHeader               = errors.New("frame: short header")
	ErrInvalidOpcode             = errors.New("frame: invalid opcode")
	ErrInvalidLength             = errors.New("frame: invalid payload length")
	ErrReservedBits              = errors.New("frame: reserved bits set")
	ErrFragmentedControlFrame    = errors.New("frame: fragmented control frame")
	ErrControlFramePayloadTooBig = errors.New("frame: control frame payload too big")
	ErrUnsupportedOpcode         = errors.New("frame: opcode has no message type")
	ErrUnsupportedMessageType    = errors.New("frame: message type has no opcode")
	ErrInvalidCloseCode          = errors.New("frame: invalid close code")
	ErrInvalidClosePayload       = errors.New("frame: invalid close payload")
	ErrInvalidUTF8               = errors.New("frame: invalid utf-8")
)

// ProtocolError is a fatal protocol violation. Code is the close code the
// connection should be closed with (RFC 6455, section 7.4.1) and Err is
// the underlying sentinel error.
type ProtocolError struct {
	Code int
	Err  error
}

// NewProtocolError returns a ProtocolError for code wrapping err.
func NewProtocolError(code int, err error) *ProtocolError {
	return &ProtocolError{Code: code, Err: err}
}

func (e *ProtocolError) Error() string {
	return "frame: protocol error " + strconv.Itoa(e.Code) + ": " + e.Err.Error()
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// CloseCode returns the close code carried by err if err is, or wraps, a
// ProtocolError.
func CloseCode(err error) (int, bool) {
	var protoErr *ProtocolError
	if !errors.As(err, &protoErr) {
		return 0, false
	}
	return protoErr.Code, true
}

// HasCloseCode returns true if err is a ProtocolError with one of codes.
func HasCloseCode(err error, codes ...int) bool {
	code, ok := CloseCode(err)
	if !ok {
		return false
	}
	return slices.Contains(codes, code)
}

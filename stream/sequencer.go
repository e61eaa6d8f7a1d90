package stream

import (
	"errors"

	"github.com/vitalvas/wscodec/frame"
	"github.com/vitalvas/wscodec/utf8check"
)

// Errors reported by the receive pipeline, always wrapped in a
// *frame.ProtocolError.
var (
	ErrUnmaskedFrame          = errors.New("stream: unmasked frame from client")
	ErrMaskedFrame            = errors.New("stream: masked frame from server")
	ErrUnexpectedContinuation = errors.New("stream: unexpected continuation frame")
	ErrExpectedContinuation   = errors.New("stream: expected continuation frame")
	ErrFrameTooBig            = errors.New("stream: frame too big")
	ErrMessageTooBig          = errors.New("stream: message too big")
)

// Sequencer enforces the receive rules that span frames: masking
// direction, fragmentation order, size limits and UTF-8 validity of text
// messages. Control frames may arrive between the fragments of a message.
//
// For every frame call Begin with its header, then Data for its payload,
// in as many pieces as needed, with endOfFrame set on the last piece.
// Control frame payloads are not passed to Data.
type Sequencer struct {
	cfg Config

	inMessage   bool
	text        bool
	final       bool
	messageSize int64
	utf8        utf8check.State
}

// NewSequencer returns a Sequencer applying cfg.
func NewSequencer(cfg Config) *Sequencer {
	return &Sequencer{cfg: cfg}
}

// InMessage reports whether a fragmented message is in progress.
func (s *Sequencer) InMessage() bool {
	return s.inMessage
}

// Begin checks the header of the next frame.
func (s *Sequencer) Begin(h frame.Header) error {
	if err := frame.ValidateHeader(h); err != nil {
		return err
	}

	switch s.cfg.Role {
	case RoleServer:
		if !h.Masked() {
			return frame.NewProtocolError(frame.CloseProtocolError, ErrUnmaskedFrame)
		}
	case RoleClient:
		if h.Masked() {
			return frame.NewProtocolError(frame.CloseProtocolError, ErrMaskedFrame)
		}
	}

	length := h.DataLength()
	if s.cfg.MaxFrameSize > 0 && length > s.cfg.MaxFrameSize {
		return frame.NewProtocolError(frame.CloseMessageTooBig, ErrFrameTooBig)
	}

	op := h.Opcode()
	if op.IsControl() {
		return nil
	}

	if op == frame.OpContinuation {
		if !s.inMessage {
			return frame.NewProtocolError(frame.CloseProtocolError, ErrUnexpectedContinuation)
		}
	} else {
		if s.inMessage {
			return frame.NewProtocolError(frame.CloseProtocolError, ErrExpectedContinuation)
		}
		s.inMessage = true
		s.text = op == frame.OpText
		s.messageSize = 0
		s.utf8 = utf8check.State{}
	}

	s.messageSize += length
	if s.cfg.MaxMessageSize > 0 && s.messageSize > s.cfg.MaxMessageSize {
		return frame.NewProtocolError(frame.CloseMessageTooBig, ErrMessageTooBig)
	}

	s.final = h.Fin()
	return nil
}

// Data consumes an unmasked payload piece of the current data frame.
func (s *Sequencer) Data(p []byte, endOfFrame bool) error {
	endOfMessage := endOfFrame && s.final

	if s.text && s.cfg.ValidateUTF8 {
		var ok bool
		if s.utf8, ok = utf8check.Validate(s.utf8, p, endOfMessage); !ok {
			return frame.NewProtocolError(frame.CloseInvalidFramePayloadData, frame.ErrInvalidUTF8)
		}
	}

	if endOfMessage {
		s.inMessage = false
		s.text = false
		s.utf8 = utf8check.State{}
	}
	return nil
}

package stream

import (
	"crypto/rand"
	"encoding/binary"
	"io"

	"github.com/vitalvas/wscodec/frame"
)

var randReader io.Reader = rand.Reader

// Encoder builds outgoing frames. Frames are masked with a fresh random key
// when the encoder sends as a client.
type Encoder struct {
	masked bool
}

// NewEncoder returns an Encoder for an endpoint acting as role. Only
// RoleClient masks.
func NewEncoder(role Role) *Encoder {
	return &Encoder{masked: role == RoleClient}
}

// Frame returns the wire bytes of a single frame. Control frames must be
// final and carry at most 125 bytes.
func (e *Encoder) Frame(op frame.Opcode, fin bool, payload []byte) ([]byte, error) {
	if !op.Valid() {
		return nil, frame.ErrInvalidOpcode
	}
	if op.IsControl() {
		if !fin {
			return nil, frame.ErrFragmentedControlFrame
		}
		if len(payload) > frame.MaxControlPayloadSize {
			return nil, frame.ErrControlFramePayloadTooBig
		}
	}

	var key uint32
	if e.masked {
		var mask [4]byte
		if _, err := io.ReadFull(randReader, mask[:]); err != nil {
			return nil, err
		}
		key = binary.BigEndian.Uint32(mask[:])
	}

	h, err := frame.EncodeHeader(fin, op, e.masked, key, int64(len(payload)))
	if err != nil {
		return nil, err
	}
	return frame.MergeAndMask(key, h.Bytes(), payload), nil
}

// Message returns the frames of a message of type mt. Text and binary
// payloads longer than fragmentSize are split into continuation frames;
// fragmentSize <= 0 disables fragmentation. Close messages are never
// fragmented.
func (e *Encoder) Message(mt frame.MessageType, payload []byte, fragmentSize int) ([][]byte, error) {
	op, err := frame.OpcodeOf(mt)
	if err != nil {
		return nil, err
	}

	if op.IsControl() || fragmentSize <= 0 || len(payload) <= fragmentSize {
		f, err := e.Frame(op, true, payload)
		if err != nil {
			return nil, err
		}
		return [][]byte{f}, nil
	}

	frames := make([][]byte, 0, (len(payload)+fragmentSize-1)/fragmentSize)
	for start := 0; start < len(payload); start += fragmentSize {
		end := min(start+fragmentSize, len(payload))
		f, err := e.Frame(op, end == len(payload), payload[start:end])
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
		op = frame.OpContinuation
	}
	return frames, nil
}

// Close returns a close frame carrying code and reason.
func (e *Encoder) Close(code int, reason string) ([]byte, error) {
	if code != frame.CloseNoStatusReceived && !frame.IsValidCloseCode(code) {
		return nil, frame.ErrInvalidCloseCode
	}
	return e.Frame(frame.OpClose, true, frame.FormatCloseMessage(code, reason))
}

package frame

import "encoding/binary"

// Frame header constants per RFC 6455, section 5.2.
const (
	MinHeaderSize = 2  // FIN/RSV/opcode byte and MASK/length byte
	MaxHeaderSize = 14 // 2 bytes base + 8 bytes extended length + 4 bytes mask

	// MaxControlPayloadSize is the largest payload a control frame may
	// carry (RFC 6455, section 5.5).
	MaxControlPayloadSize = 125

	// First byte bits.
	finalBit = 1 << 7
	rsv1Bit  = 1 << 6
	rsv2Bit  = 1 << 5
	rsv3Bit  = 1 << 4
	rsvBits  = rsv1Bit | rsv2Bit | rsv3Bit

	// Second byte bits.
	maskBit = 1 << 7

	opcodeMask     = 0x0f
	payloadLenMask = 0x7f
	payloadLen16   = 126 // 16-bit extended payload length follows
	payloadLen64   = 127 // 64-bit extended payload length follows

	maxInlineLength = 125
	maxLength16     = 0xffff
	maskKeySize     = 4
)

// Header is a single frame header in its wire representation. The zero
// value is an empty header; valid values come from EncodeHeader and
// DecodeHeader. All accessors read directly from the encoded bytes.
type Header struct {
	b [MaxHeaderSize]byte
	n int
}

// HeaderSize returns the total header size announced by the second byte
// of a frame (the MASK bit and 7-bit payload length field). It lets a
// streaming reader know how many bytes to buffer before calling
// DecodeHeader.
func HeaderSize(second byte) int {
	size := MinHeaderSize
	if second&maskBit != 0 {
		size += maskKeySize
	}
	return size + extendedLengthSize(second&payloadLenMask)
}

func extendedLengthSize(field byte) int {
	switch field {
	case payloadLen16:
		return 2
	case payloadLen64:
		return 8
	default:
		return 0
	}
}

// EncodeHeader builds the header for a frame with the given fields. Lengths
// up to 125 are stored in the 7-bit field, lengths up to 0xFFFF in a 16-bit
// extended field and anything larger in a 64-bit extended field. The mask
// key is written after the length only when masked is set.
//
// EncodeHeader applies no protocol policy: reserved opcodes and oversized
// control frames are encoded as requested.
func EncodeHeader(fin bool, op Opcode, masked bool, maskKey uint32, length int64) (Header, error) {
	if op > opcodeMask {
		return Header{}, ErrInvalidOpcode
	}
	if length < 0 {
		return Header{}, ErrInvalidLength
	}

	var h Header
	if fin {
		h.b[0] = finalBit
	}
	h.b[0] |= byte(op)

	h.n = MinHeaderSize
	switch {
	case length <= maxInlineLength:
		h.b[1] = byte(length)
	case length <= maxLength16:
		h.b[1] = payloadLen16
		binary.BigEndian.PutUint16(h.b[2:4], uint16(length))
		h.n += 2
	default:
		h.b[1] = payloadLen64
		binary.BigEndian.PutUint64(h.b[2:10], uint64(length))
		h.n += 8
	}

	if masked {
		h.b[1] |= maskBit
		binary.BigEndian.PutUint32(h.b[h.n:h.n+maskKeySize], maskKey)
		h.n += maskKeySize
	}

	return h, nil
}

// DecodeHeader copies the header at the start of b. b must hold at least
// HeaderSize(b[1]) bytes; extra bytes are ignored. Reserved bits, opcode
// validity and control frame limits are not checked.
func DecodeHeader(b []byte) (Header, error) {
	if len(b) < MinHeaderSize {
		return Header{}, ErrShortHeader
	}
	size := HeaderSize(b[1])
	if len(b) < size {
		return Header{}, ErrShortHeader
	}

	var h Header
	h.n = copy(h.b[:], b[:size])
	return h, nil
}

// Fin reports whether this is the final fragment of a message.
func (h Header) Fin() bool {
	return h.b[0]&finalBit != 0
}

// Rsv returns the three reserved bits, RSV1 as the most significant.
func (h Header) Rsv() byte {
	return (h.b[0] & rsvBits) >> 4
}

// ReservedBitsSet reports whether any of RSV1, RSV2 or RSV3 is set.
func (h Header) ReservedBitsSet() bool {
	return h.b[0]&rsvBits != 0
}

func (h Header) Opcode() Opcode {
	return Opcode(h.b[0] & opcodeMask)
}

// IsControl reports whether the opcode is in the control range (>= 0x8).
func (h Header) IsControl() bool {
	return h.Opcode().IsControl()
}

func (h Header) Masked() bool {
	return h.b[1]&maskBit != 0
}

// MaskKey returns the big-endian masking key, or 0 for unmasked frames.
func (h Header) MaskKey() uint32 {
	if !h.Masked() {
		return 0
	}
	off := MinHeaderSize + h.ExtendedLengthFieldSize()
	return binary.BigEndian.Uint32(h.b[off : off+maskKeySize])
}

// PayloadField returns the raw 7-bit payload length field.
func (h Header) PayloadField() byte {
	return h.b[1] & payloadLenMask
}

// ExtendedLengthFieldSize returns 0, 2 or 8 depending on PayloadField.
func (h Header) ExtendedLengthFieldSize() int {
	return extendedLengthSize(h.PayloadField())
}

// DataLength returns the payload length from whichever field is
// authoritative. A 64-bit length with the most significant bit set is
// returned as a negative number; ValidateHeader rejects it.
func (h Header) DataLength() int64 {
	switch field := h.PayloadField(); field {
	case payloadLen16:
		return int64(binary.BigEndian.Uint16(h.b[2:4]))
	case payloadLen64:
		return int64(binary.BigEndian.Uint64(h.b[2:10]))
	default:
		return int64(field)
	}
}

// Len returns the encoded header size in bytes.
func (h Header) Len() int {
	return h.n
}

// Bytes returns a copy of the encoded header.
func (h Header) Bytes() []byte {
	return h.AppendTo(nil)
}

// AppendTo appends the encoded header to dst.
func (h Header) AppendTo(dst []byte) []byte {
	return append(dst, h.b[:h.n]...)
}

package frame

// ValidateHeader applies the RFC 6455 header rules that DecodeHeader leaves
// to the caller. Every failure is a ProtocolError with code
// CloseProtocolError.
func ValidateHeader(h Header) error {
	if h.ReservedBitsSet() {
		return NewProtocolError(CloseProtocolError, ErrReservedBits)
	}

	op := h.Opcode()
	if !op.Valid() {
		return NewProtocolError(CloseProtocolError, ErrInvalidOpcode)
	}

	// The most significant bit of a 64-bit length must be 0 (section 5.2).
	length := h.DataLength()
	if length < 0 {
		return NewProtocolError(CloseProtocolError, ErrInvalidLength)
	}

	if op.IsControl() {
		if !h.Fin() {
			return NewProtocolError(CloseProtocolError, ErrFragmentedControlFrame)
		}
		if length > MaxControlPayloadSize {
			return NewProtocolError(CloseProtocolError, ErrControlFramePayloadTooBig)
		}
	}

	return nil
}

// ParseHeader decodes the header at the start of b and validates it.
func ParseHeader(b []byte) (Header, error) {
	h, err := DecodeHeader(b)
	if err != nil {
		return Header{}, err
	}
	if err := ValidateHeader(h); err != nil {
		return Header{}, err
	}
	return h, nil
}

package utf8check

// State is the progress of validation through one text message. The zero
// value is the state at the start of a message.
type State struct {
	// SequenceInProgress is set while a multi-byte code point is
	// incomplete.
	SequenceInProgress bool

	// AdditionalBytesExpected is the number of continuation bytes still
	// needed, 0 to 3.
	AdditionalBytesExpected int

	// ExpectedValueMin is the smallest code point the current sequence
	// length may encode. Smaller values are overlong.
	ExpectedValueMin int

	// CurrentDecodeBits holds the bits of the code point decoded so far.
	CurrentDecodeBits int
}

// Validate consumes p and returns the updated state and whether every byte
// so far is consistent with valid UTF-8. When endOfMessage is set, a
// sequence left incomplete at the end of p is invalid. After a false result
// the returned state describes the failing byte and must not be reused.
func Validate(s State, p []byte, endOfMessage bool) (State, bool) {
	for i := 0; i < len(p); {
		if !s.SequenceInProgress {
			b := p[i]
			i++

			s.SequenceInProgress = true
			switch {
			case b&0x80 == 0: // 0xxxxxxx
				s.AdditionalBytesExpected = 0
				s.CurrentDecodeBits = int(b & 0x7f)
				s.ExpectedValueMin = 0
			case b&0xc0 == 0x80: // 10xxxxxx cannot lead a sequence
				return s, false
			case b&0xe0 == 0xc0: // 110xxxxx
				s.AdditionalBytesExpected = 1
				s.CurrentDecodeBits = int(b & 0x1f)
				s.ExpectedValueMin = 0x80
			case b&0xf0 == 0xe0: // 1110xxxx
				s.AdditionalBytesExpected = 2
				s.CurrentDecodeBits = int(b & 0x0f)
				s.ExpectedValueMin = 0x800
			case b&0xf8 == 0xf0: // 11110xxx
				s.AdditionalBytesExpected = 3
				s.CurrentDecodeBits = int(b & 0x07)
				s.ExpectedValueMin = 0x10000
			default: // 111110xx, 1111110x, 11111110, 11111111
				return s, false
			}
		}

		for s.AdditionalBytesExpected > 0 && i < len(p) {
			b := p[i]
			if b&0xc0 != 0x80 {
				return s, false
			}
			i++

			s.AdditionalBytesExpected--
			s.CurrentDecodeBits = s.CurrentDecodeBits<<6 | int(b&0x3f)

			// 0x360-0x37F resolves into the surrogate range 0xD800-0xDFFF.
			if s.AdditionalBytesExpected == 1 && s.CurrentDecodeBits >= 0x360 && s.CurrentDecodeBits <= 0x37f {
				return s, false
			}
			// Would exceed U+10FFFF.
			if s.AdditionalBytesExpected == 2 && s.CurrentDecodeBits >= 0x110 {
				return s, false
			}
		}

		if s.AdditionalBytesExpected == 0 {
			s.SequenceInProgress = false
			if s.CurrentDecodeBits < s.ExpectedValueMin {
				return s, false
			}
		}
	}

	if endOfMessage && s.SequenceInProgress {
		return s, false
	}
	return s, true
}

// Valid reports whether the concatenation of fragments is valid UTF-8.
func Valid(fragments ...[]byte) bool {
	var s State
	if len(fragments) == 0 {
		return true
	}
	for i, p := range fragments {
		var ok bool
		if s, ok = Validate(s, p, i == len(fragments)-1); !ok {
			return false
		}
	}
	return true
}

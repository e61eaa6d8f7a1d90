package frame

import "strconv"

// Opcode is the 4-bit frame opcode defined in RFC 6455, section 5.2.
type Opcode uint8

// Opcodes defined in RFC 6455, section 11.8. Values 0x3-0x7 and 0xB-0xF
// are reserved.
const (
	OpContinuation Opcode = 0x0
	OpText         Opcode = 0x1
	OpBinary       Opcode = 0x2
	OpClose        Opcode = 0x8
	OpPing         Opcode = 0x9
	OpPong         Opcode = 0xA
)

// Valid reports whether op is one of the defined opcodes.
func (op Opcode) Valid() bool {
	switch op {
	case OpContinuation, OpText, OpBinary, OpClose, OpPing, OpPong:
		return true
	default:
		return false
	}
}

// IsControl reports whether op belongs to the control frame range
// (RFC 6455, section 5.5).
func (op Opcode) IsControl() bool {
	return op >= OpClose
}

func (op Opcode) String() string {
	switch op {
	case OpContinuation:
		return "continuation"
	case OpText:
		return "text"
	case OpBinary:
		return "binary"
	case OpClose:
		return "close"
	case OpPing:
		return "ping"
	case OpPong:
		return "pong"
	default:
		return "reserved(0x" + strconv.FormatUint(uint64(op), 16) + ")"
	}
}

// MessageType is the kind of an application level message.
type MessageType int

// Message types. The values match the opcodes that carry them.
const (
	TextMessage   MessageType = 1
	BinaryMessage MessageType = 2
	CloseMessage  MessageType = 8
)

func (mt MessageType) String() string {
	switch mt {
	case TextMessage:
		return "text"
	case BinaryMessage:
		return "binary"
	case CloseMessage:
		return "close"
	default:
		return "unknown(" + strconv.Itoa(int(mt)) + ")"
	}
}

// OpcodeOf returns the opcode that starts a message of type mt.
func OpcodeOf(mt MessageType) (Opcode, error) {
	switch mt {
	case TextMessage:
		return OpText, nil
	case BinaryMessage:
		return OpBinary, nil
	case CloseMessage:
		return OpClose, nil
	default:
		return 0, ErrUnsupportedMessageType
	}
}

// MessageTypeOf returns the message type started by op. Continuation, ping,
// pong and reserved opcodes have no message type; callers are expected to
// filter them out before asking.
func MessageTypeOf(op Opcode) (MessageType, error) {
	switch op {
	case OpText:
		return TextMessage, nil
	case OpBinary:
		return BinaryMessage, nil
	case OpClose:
		return CloseMessage, nil
	default:
		return 0, ErrUnsupportedOpcode
	}
}

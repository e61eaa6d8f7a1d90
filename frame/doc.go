// Package frame implements the RFC 6455 framing layer: frame header
// encoding and decoding, payload masking, opcode to message type mapping
// and close frame payloads.
//
// The codec is mechanical. DecodeHeader maps bytes to fields without
// applying any protocol policy, so a header with reserved bits set or an
// unknown opcode decodes successfully. Use ParseHeader, or call
// ValidateHeader on a decoded Header, to reject malformed frames:
//
//	size := frame.HeaderSize(buf[1])
//	if len(buf) < size {
//	    // wait for more bytes
//	}
//	h, err := frame.ParseHeader(buf[:size])
//	if err != nil {
//	    code, _ := frame.CloseCode(err)
//	    // close the connection with code
//	}
//	payload := buf[size : size+int(h.DataLength())]
//	frame.MaskInPlace(h.MaskKey(), payload)
//
// Encoding is a single pure builder:
//
//	h, err := frame.EncodeHeader(true, frame.OpText, true, key, int64(len(data)))
//	if err != nil {
//	    return err
//	}
//	wire := frame.MergeAndMask(key, h.Bytes(), data)
//
// Concurrency:
//
// Header values are immutable and safe to share. Mask offsets returned by
// MaskInPlaceAt belong to the single goroutine driving a read or write.
package frame

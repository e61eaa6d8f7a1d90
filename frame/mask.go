package frame

import "encoding/binary"

// MaskInPlace applies the masking key to data per RFC 6455, section 5.3.
// Masking is an XOR and therefore also removes a mask. A zero key leaves
// data untouched.
func MaskInPlace(key uint32, data []byte) {
	MaskInPlaceAt(key, 0, data)
}

// MaskInPlaceAt masks data starting at position offset of the 4-byte key
// cycle and returns the offset for the next chunk of the same payload. It
// lets a payload delivered in several buffers be masked piece by piece:
//
//	pos := 0
//	for _, chunk := range chunks {
//	    pos = frame.MaskInPlaceAt(key, pos, chunk)
//	}
func MaskInPlaceAt(key uint32, offset int, data []byte) int {
	offset &= 3
	next := (offset + len(data)) & 3
	if key == 0 {
		return next
	}

	var mask [maskKeySize]byte
	binary.BigEndian.PutUint32(mask[:], key)
	for i := range data {
		data[i] ^= mask[(offset+i)&3]
	}
	return next
}

// MergeAndMask returns a new buffer holding header followed by data, with
// only the data region masked. Neither input is modified.
func MergeAndMask(key uint32, header, data []byte) []byte {
	buf := make([]byte, len(header)+len(data))
	copy(buf, header)
	copy(buf[len(header):], data)
	MaskInPlace(key, buf[len(header):])
	return buf
}

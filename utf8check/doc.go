// Package utf8check validates UTF-8 text that arrives in pieces.
//
// A WebSocket text message may be split across any number of frames, and a
// frame payload may be split across any number of reads, so a multi-byte
// code point can straddle a boundary. Validate folds one piece at a time
// into a State value; the caller keeps one State per in-flight text message
// and passes endOfMessage on the last piece.
//
//	var s utf8check.State
//	for _, p := range fragments {
//	    var ok bool
//	    s, ok = utf8check.Validate(s, p, p == last)
//	    if !ok {
//	        // close with 1007 (invalid frame payload data)
//	    }
//	}
//
// Validation rejects misplaced continuation bytes, lead bytes of five or
// more bytes, overlong encodings, UTF-16 surrogates (U+D800-U+DFFF) and
// code points above U+10FFFF, and a message that ends inside a sequence.
package utf8check

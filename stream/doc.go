// Package stream drives the frame codec over a byte stream.
//
// A Decoder is fed raw bytes in arbitrarily sized chunks, as a transport
// delivers them, and returns frame payload chunks that are unmasked and
// checked: header rules, masking direction, message ordering, size limits
// and UTF-8 validity of text messages across frame and chunk boundaries.
// The first error is a *frame.ProtocolError whose Code is the close code to
// send, and it poisons the decoder.
//
//	dec := stream.NewDecoder(cfg)
//	for {
//	    n, err := conn.Read(buf)
//	    ...
//	    dec.Write(buf[:n])
//	    for {
//	        c, err := dec.Next()
//	        if errors.Is(err, stream.ErrIncomplete) {
//	            break
//	        }
//	        if err != nil {
//	            code, _ := frame.CloseCode(err)
//	            ...
//	        }
//	        handle(c)
//	    }
//	}
//
// An Encoder produces complete frames, masked when acting as a client.
//
// The receive policy is a Config, usually loaded from YAML:
//
//	role: server
//	max_frame_size: 1048576
//	max_message_size: 16777216
//	validate_utf8: true
//
// Decoder, Sequencer and Encoder are not safe for concurrent use; each
// belongs to the goroutine driving one direction of one connection.
package stream

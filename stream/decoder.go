package stream

import (
	"bytes"
	"errors"

	"github.com/eapache/queue"

	"github.com/vitalvas/wscodec/frame"
)

// ErrIncomplete is returned by Decoder.Next when more input is needed.
var ErrIncomplete = errors.New("stream: incomplete frame")

// Chunk is a piece of a received frame. Data frames may be split into
// several chunks as bytes arrive; control frames are always delivered in a
// single chunk.
type Chunk struct {
	Header frame.Header

	// Data is the unmasked payload piece. It may be empty.
	Data []byte

	// First is set on the first chunk of a frame and Last on its final one.
	First bool
	Last  bool
}

// EndOfMessage reports whether c completes a message.
func (c Chunk) EndOfMessage() bool {
	return c.Last && c.Header.Fin()
}

// Decoder incrementally decodes frames from bytes written to it.
type Decoder struct {
	seq *Sequencer

	chunks   *queue.Queue // pending input, each element a []byte
	off      int          // read position in the oldest chunk
	buffered int

	hdr       frame.Header
	inFrame   bool
	first     bool
	remaining int64
	maskPos   int

	scratch [frame.MaxHeaderSize]byte
	err     error
}

// NewDecoder returns a Decoder applying cfg.
func NewDecoder(cfg Config) *Decoder {
	return &Decoder{
		seq:    NewSequencer(cfg),
		chunks: queue.New(),
	}
}

// Write queues a copy of p for decoding. It fails only once the decoder
// has hit a protocol error.
func (d *Decoder) Write(p []byte) (int, error) {
	if d.err != nil {
		return 0, d.err
	}
	if len(p) == 0 {
		return 0, nil
	}
	d.chunks.Add(bytes.Clone(p))
	d.buffered += len(p)
	return len(p), nil
}

// Buffered returns the number of bytes written but not yet decoded.
func (d *Decoder) Buffered() int {
	return d.buffered
}

// Next returns the next chunk, or ErrIncomplete when the buffered input
// does not allow progress. Any other error is final and is returned by
// every later call.
func (d *Decoder) Next() (Chunk, error) {
	if d.err != nil {
		return Chunk{}, d.err
	}

	c, err := d.next()
	if err != nil && !errors.Is(err, ErrIncomplete) {
		d.err = err
	}
	return c, err
}

func (d *Decoder) next() (Chunk, error) {
	if !d.inFrame {
		if err := d.readHeader(); err != nil {
			return Chunk{}, err
		}
	}

	if d.hdr.IsControl() {
		return d.readControl()
	}
	return d.readData()
}

func (d *Decoder) readHeader() error {
	if d.buffered < frame.MinHeaderSize {
		return ErrIncomplete
	}
	d.peek(d.scratch[:frame.MinHeaderSize])

	size := frame.HeaderSize(d.scratch[1])
	if d.buffered < size {
		return ErrIncomplete
	}
	d.consume(d.scratch[:size])

	h, err := frame.DecodeHeader(d.scratch[:size])
	if err != nil {
		return err
	}
	if err := d.seq.Begin(h); err != nil {
		return err
	}

	d.hdr = h
	d.inFrame = true
	d.first = true
	d.remaining = h.DataLength()
	d.maskPos = 0
	return nil
}

func (d *Decoder) readControl() (Chunk, error) {
	if int64(d.buffered) < d.remaining {
		return Chunk{}, ErrIncomplete
	}

	payload := make([]byte, d.remaining)
	d.consume(payload)
	frame.MaskInPlace(d.hdr.MaskKey(), payload)
	d.inFrame = false
	d.remaining = 0

	if d.hdr.Opcode() == frame.OpClose {
		if _, _, err := frame.ParseCloseMessage(payload); err != nil {
			return Chunk{}, err
		}
	}

	return Chunk{Header: d.hdr, Data: payload, First: true, Last: true}, nil
}

func (d *Decoder) readData() (Chunk, error) {
	n := min(int64(d.buffered), d.remaining)
	if n == 0 && d.remaining > 0 {
		if !d.first {
			return Chunk{}, ErrIncomplete
		}
		// Announce the frame before any payload has arrived.
		d.first = false
		return Chunk{Header: d.hdr, First: true}, nil
	}

	payload := make([]byte, n)
	d.consume(payload)
	d.maskPos = frame.MaskInPlaceAt(d.hdr.MaskKey(), d.maskPos, payload)
	d.remaining -= n

	last := d.remaining == 0
	if err := d.seq.Data(payload, last); err != nil {
		return Chunk{}, err
	}

	c := Chunk{Header: d.hdr, Data: payload, First: d.first, Last: last}
	d.first = false
	if last {
		d.inFrame = false
	}
	return c, nil
}

// peek copies len(dst) buffered bytes into dst without consuming them.
func (d *Decoder) peek(dst []byte) {
	n, off := 0, d.off
	for i := 0; n < len(dst); i++ {
		chunk := d.chunks.Get(i).([]byte)
		n += copy(dst[n:], chunk[off:])
		off = 0
	}
}

// consume moves len(dst) buffered bytes into dst.
func (d *Decoder) consume(dst []byte) {
	n := 0
	for n < len(dst) {
		chunk := d.chunks.Peek().([]byte)
		c := copy(dst[n:], chunk[d.off:])
		n += c
		d.off += c
		if d.off == len(chunk) {
			d.chunks.Remove()
			d.off = 0
		}
	}
	d.buffered -= n
}

package tblob

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

var (
	// ErrShortBuffer reports a fixed-width read past the end of the blob.
	// This is fatal for the record being decoded.
	ErrShortBuffer = errors.New("buffer too short")

	// ErrSignatureMismatch reports a decoder invoked on a tag it does not
	// own. The dispatcher only calls decoders through the registry, so
	// this indicates a registry/decoder mismatch, not malformed input.
	ErrSignatureMismatch = errors.New("signature mismatch")

	// ErrVectorExpected reports a missing vector marker where the shape
	// declares a sequence.
	ErrVectorExpected = errors.New("vector signature expected")
)

const (
	vectorSignature    = 0x1cb5c415
	boolTrueSignature  = 0x997275b5
	boolFalseSignature = 0xbc799737
)

// cursor walks a blob with explicit offset bookkeeping. The first failed
// read latches err; every later read is a no-op returning a zero value, so
// shape decoders can run straight-line field sequences and check the error
// once at the end.
type cursor struct {
	buf []byte
	off int
	err error
}

func newCursor(buf []byte) *cursor {
	return &cursor{buf: buf}
}

func (c *cursor) offset() int    { return c.off }
func (c *cursor) remaining() int { return len(c.buf) - c.off }

func (c *cursor) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

func (c *cursor) take(n int) []byte {
	if c.err != nil {
		return nil
	}
	if n < 0 || c.remaining() < n {
		c.fail(fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrShortBuffer, n, c.off, c.remaining()))
		return nil
	}
	b := c.buf[c.off : c.off+n]
	c.off += n
	return b
}

// rest consumes and returns everything left in the buffer. Used by shapes
// with a forward-compatible trailing catch-all.
func (c *cursor) rest() []byte {
	if c.err != nil || c.remaining() == 0 {
		return nil
	}
	b := make([]byte, c.remaining())
	copy(b, c.buf[c.off:])
	c.off = len(c.buf)
	return b
}

func (c *cursor) readByte() byte {
	b := c.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (c *cursor) uint32() uint32 {
	b := c.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (c *cursor) int32() int32 { return int32(c.uint32()) }

func (c *cursor) uint64() uint64 {
	b := c.take(8)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

func (c *cursor) int64() int64 { return int64(c.uint64()) }

func (c *cursor) double() float64 {
	return math.Float64frombits(c.uint64())
}

func (c *cursor) peekUint32() uint32 {
	if c.err != nil || c.remaining() < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(c.buf[c.off:])
}

// signature reads the next 4-byte tag and asserts it is the expected one.
func (c *cursor) signature(expected uint32) {
	got := c.uint32()
	if c.err == nil && got != expected {
		c.fail(fmt.Errorf("%w: expected 0x%08x, got 0x%08x at offset %d",
			ErrSignatureMismatch, expected, got, c.off-4))
	}
}

// tbytes reads a length-prefixed byte string. Lengths below 254 use a
// one-byte prefix; otherwise a 254 marker byte and a 3-byte little-endian
// length, read as a 4-byte word shifted right by 8. Padding realigns to a
// 4-byte boundary counted from the start of the prefix: the short form
// pads 1+length, the long form pads length alone (its prefix is already a
// full word).
func (c *cursor) tbytes() Bytes {
	length := int(c.readByte())
	if c.err != nil {
		return nil
	}
	pad := 0
	if length >= 254 {
		c.off--
		length = int(c.uint32() >> 8)
		pad = (4 - length%4) % 4
	} else {
		pad = (4 - (1+length)%4) % 4
	}
	payload := c.take(length)
	c.take(pad)
	if c.err != nil {
		return nil
	}
	out := make(Bytes, length)
	copy(out, payload)
	return out
}

// tstring reads a length-prefixed UTF-8 string with tbytes wire
// arithmetic. Invalid UTF-8 keeps the raw bytes and marks the value; the
// caller's record keeps decoding.
func (c *cursor) tstring() Text {
	return text(c.tbytes())
}

// tbool reads a boolean signature word. A word that is neither signature
// decodes to BoolInvalid, a field-level sentinel.
func (c *cursor) tbool() Bool {
	switch c.uint32() {
	case boolTrueSignature:
		return BoolTrue
	case boolFalseSignature:
		return BoolFalse
	}
	return BoolInvalid
}

// timestamp reads a 4-byte epoch-seconds value.
func (c *cursor) timestamp() Timestamp {
	return Timestamp(c.uint32())
}

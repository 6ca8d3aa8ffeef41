package tblob

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

// Wire builders shared by the package tests.

func le32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func le64(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

// encString encodes a short-form length-prefixed string: one prefix
// byte, the payload, and padding up to the next 4-byte boundary.
func encString(s string) []byte {
	if len(s) >= 254 {
		panic("encString is short-form only")
	}
	out := append([]byte{byte(len(s))}, s...)
	for len(out)%4 != 0 {
		out = append(out, 0)
	}
	return out
}

// encLongBytes encodes a long-form byte string: the 254 marker, a
// 3-byte length, the payload, and padding of the payload alone.
func encLongBytes(payload []byte) []byte {
	out := []byte{254, byte(len(payload)), byte(len(payload) >> 8), byte(len(payload) >> 16)}
	out = append(out, payload...)
	for len(payload)%4 != 0 {
		out = append(out, 0)
		payload = append(payload, 0)
	}
	return out
}

func cat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func TestTBytesShortForm(t *testing.T) {
	// Total consumed bytes must land on a 4-byte boundary counting the
	// one-byte prefix.
	for length := 0; length < 16; length++ {
		payload := bytes.Repeat([]byte{0xab}, length)
		buf := cat([]byte{byte(length)}, payload)
		want := (1 + length + 3) / 4 * 4
		for len(buf) < want {
			buf = append(buf, 0)
		}

		c := newCursor(buf)
		got := c.tbytes()
		if c.err != nil {
			t.Fatalf("length %d: unexpected error: %v", length, c.err)
		}
		if !bytes.Equal(got, payload) {
			t.Errorf("length %d: payload mismatch", length)
		}
		if c.offset() != want {
			t.Errorf("length %d: consumed %d bytes, want %d", length, c.offset(), want)
		}
	}
}

func TestTBytesLongForm(t *testing.T) {
	for _, length := range []int{254, 255, 300, 1024} {
		payload := bytes.Repeat([]byte{0xcd}, length)
		buf := encLongBytes(payload)
		want := 4 + (length+3)/4*4

		c := newCursor(buf)
		got := c.tbytes()
		if c.err != nil {
			t.Fatalf("length %d: unexpected error: %v", length, c.err)
		}
		if !bytes.Equal(got, payload) {
			t.Errorf("length %d: payload mismatch", length)
		}
		if c.offset() != want {
			t.Errorf("length %d: consumed %d bytes, want %d", length, c.offset(), want)
		}
	}
}

func TestTStringConsumesAlignedRun(t *testing.T) {
	// "hello" is 1 prefix + 5 payload + 2 padding.
	c := newCursor(encString("hello"))
	got := c.tstring()
	if c.err != nil {
		t.Fatalf("unexpected error: %v", c.err)
	}
	if got.String() != "hello" {
		t.Errorf("got %q, want %q", got.String(), "hello")
	}
	if c.offset() != 8 {
		t.Errorf("consumed %d bytes, want 8", c.offset())
	}
}

func TestTStringInvalidUTF8(t *testing.T) {
	c := newCursor(cat([]byte{2, 0xff, 0xfe}, []byte{0}))
	got := c.tstring()
	if c.err != nil {
		t.Fatalf("unexpected error: %v", c.err)
	}
	if got.Valid {
		t.Error("expected invalid UTF-8 to be flagged")
	}
	if got.String() != "0xfffe" {
		t.Errorf("got %q, want hex rendering", got.String())
	}
}

func TestTBytesShortBuffer(t *testing.T) {
	// Prefix promises 8 bytes, buffer has 3.
	c := newCursor([]byte{8, 1, 2, 3})
	c.tbytes()
	if !errors.Is(c.err, ErrShortBuffer) {
		t.Fatalf("expected ErrShortBuffer, got %v", c.err)
	}
}

func TestTBool(t *testing.T) {
	cases := []struct {
		word uint32
		want Bool
	}{
		{boolTrueSignature, BoolTrue},
		{boolFalseSignature, BoolFalse},
		{0xdeadbeef, BoolInvalid},
	}
	for _, tc := range cases {
		c := newCursor(le32(tc.word))
		if got := c.tbool(); got != tc.want {
			t.Errorf("word 0x%08x: got %v, want %v", tc.word, got, tc.want)
		}
		if c.err != nil {
			t.Errorf("word 0x%08x: unexpected error: %v", tc.word, c.err)
		}
	}
}

func TestSignatureMismatch(t *testing.T) {
	c := newCursor(le32(0x11111111))
	c.signature(0x22222222)
	if !errors.Is(c.err, ErrSignatureMismatch) {
		t.Fatalf("expected ErrSignatureMismatch, got %v", c.err)
	}
}

func TestCursorLatchesFirstError(t *testing.T) {
	c := newCursor([]byte{1, 2})
	c.uint32()
	first := c.err
	if first == nil {
		t.Fatal("expected an error from the short read")
	}

	// Every later read is a no-op returning a zero value.
	if v := c.uint32(); v != 0 {
		t.Errorf("read after error returned %d, want 0", v)
	}
	if v := c.int64(); v != 0 {
		t.Errorf("read after error returned %d, want 0", v)
	}
	if got := c.tbytes(); got != nil {
		t.Errorf("read after error returned %v, want nil", got)
	}
	if !errors.Is(c.err, first) {
		t.Errorf("latched error changed: %v", c.err)
	}
}

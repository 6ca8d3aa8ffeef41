package tblob

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Value is a decoded field value: a wire primitive, a nested record, a
// vector of values, a bitflag word, or an error sentinel left in place of
// a field that could not be decoded.
type Value interface {
	isValue()
	render() string
}

// Int is a 32-bit signed wire integer.
type Int int32

// Long is a 64-bit signed wire integer.
type Long int64

// Double is an IEEE-754 double.
type Double float64

// Bytes is a raw length-prefixed byte string.
type Bytes []byte

// Text is a length-prefixed UTF-8 string. When the payload is not valid
// UTF-8 the raw bytes are kept and Valid is false; decoding of the
// containing record continues.
type Text struct {
	Raw   []byte
	Valid bool
}

// String returns the decoded text, or a hex rendering when the payload was
// not valid UTF-8.
func (t Text) String() string {
	if t.Valid {
		return string(t.Raw)
	}
	return "0x" + hex.EncodeToString(t.Raw)
}

func text(raw []byte) Text {
	return Text{Raw: raw, Valid: utf8.Valid(raw)}
}

// Bool is a decoded boolean signature. BoolInvalid marks a word that was
// neither of the two boolean signatures; it is a field-level error
// sentinel, not a decode abort.
type Bool int8

const (
	BoolFalse Bool = iota
	BoolTrue
	BoolInvalid
)

// Timestamp is a 4-byte epoch-seconds value. The ISO rendering is derived,
// not read from the wire.
type Timestamp uint32

// ISO returns the UTC ISO-8601 rendering of the epoch.
func (t Timestamp) ISO() string {
	return time.Unix(int64(t), 0).UTC().Format("2006-01-02T15:04:05")
}

// FlagBit names one bit of a bitflag word.
type FlagBit struct {
	Name string
	Mask uint32
}

// Flags is a 32-bit bitflag word with named bits. Optional fields of the
// containing record are present on the wire iff their bit is set.
type Flags struct {
	Bits  uint32
	Known []FlagBit
}

// Has reports whether the named bit is set. Unknown names report false.
func (f Flags) Has(name string) bool {
	for _, b := range f.Known {
		if b.Name == name {
			return f.Bits&b.Mask != 0
		}
	}
	return false
}

// Vector is an ordered sequence of values.
type Vector struct {
	Items []Value
}

// Invalid marks a field whose bytes could not be decoded: an unknown
// nested tag, or a nested decoder failure. Siblings of the field keep
// decoding best-effort.
type Invalid struct {
	Tag    uint32
	Reason string
}

func (Int) isValue()       {}
func (Long) isValue()      {}
func (Double) isValue()    {}
func (Bytes) isValue()     {}
func (Text) isValue()      {}
func (Bool) isValue()      {}
func (Timestamp) isValue() {}
func (Flags) isValue()     {}
func (Vector) isValue()    {}
func (Invalid) isValue()   {}
func (*Record) isValue()   {}

func (v Int) render() string    { return strconv.FormatInt(int64(v), 10) }
func (v Long) render() string   { return strconv.FormatInt(int64(v), 10) }
func (v Double) render() string { return strconv.FormatFloat(float64(v), 'g', -1, 64) }

func (v Bytes) render() string {
	if len(v) == 0 {
		return "0x"
	}
	return "0x" + hex.EncodeToString(v)
}

func (v Text) render() string {
	if v.Valid {
		return strconv.Quote(string(v.Raw))
	}
	return "invalid utf-8 " + Bytes(v.Raw).render()
}

func (v Bool) render() string {
	switch v {
	case BoolTrue:
		return "true"
	case BoolFalse:
		return "false"
	}
	return "ERROR"
}

func (v Timestamp) render() string {
	return fmt.Sprintf("%d [%s]", uint32(v), v.ISO())
}

func (v Flags) render() string {
	var set []string
	for _, b := range v.Known {
		if v.Bits&b.Mask != 0 {
			set = append(set, b.Name)
		}
	}
	if len(set) == 0 {
		return fmt.Sprintf("0x%08x", v.Bits)
	}
	return fmt.Sprintf("0x%08x [%s]", v.Bits, strings.Join(set, " "))
}

func (v Vector) render() string {
	return fmt.Sprintf("vector of %d", len(v.Items))
}

func (v Invalid) render() string {
	return fmt.Sprintf("<undecoded tag 0x%08x: %s>", v.Tag, v.Reason)
}

func (r *Record) render() string { return r.Sname }

// Render returns the single-line rendering of a value, the same form the
// record tree dump uses.
func Render(v Value) string {
	if v == nil {
		return ""
	}
	return v.render()
}

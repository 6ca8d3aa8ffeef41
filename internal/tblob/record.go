package tblob

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// Record is one decoded shape: a canonical name, the signature that
// selected it, and the fields in wire order. Trailer carries bytes that a
// forward-compatible shape intentionally left undecoded.
type Record struct {
	Sname   string
	Tag     uint32
	Fields  []Field
	Trailer []byte

	index map[string]int
}

// Field is one named decoded value.
type Field struct {
	Name  string
	Value Value
}

func makeRecord(sname string, tag uint32) *Record {
	return &Record{Sname: sname, Tag: tag, index: map[string]int{}}
}

func (r *Record) add(name string, v Value) {
	r.index[name] = len(r.Fields)
	r.Fields = append(r.Fields, Field{Name: name, Value: v})
}

// Get returns the named field value. The second result is false when the
// field is absent (its flag bit was clear, or the shape does not define
// it); absence is a defined state, never an error.
func (r *Record) Get(name string) (Value, bool) {
	if r == nil {
		return nil, false
	}
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.Fields[i].Value, true
}

// Has reports whether the named field was decoded.
func (r *Record) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Sub returns the named field as a nested record, or nil when the field is
// absent or not a record.
func (r *Record) Sub(name string) *Record {
	v, ok := r.Get(name)
	if !ok {
		return nil
	}
	rec, _ := v.(*Record)
	return rec
}

// Int returns the named integer field widened to int64. Int, Long and
// Timestamp fields qualify; anything else returns 0.
func (r *Record) Int(name string) int64 {
	v, ok := r.Get(name)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case Int:
		return int64(n)
	case Long:
		return int64(n)
	case Timestamp:
		return int64(n)
	}
	return 0
}

// Text returns the named string field, or "" when absent. Invalid UTF-8
// payloads render as hex.
func (r *Record) Text(name string) string {
	v, ok := r.Get(name)
	if !ok {
		return ""
	}
	t, ok := v.(Text)
	if !ok {
		return ""
	}
	return t.String()
}

// Epoch returns the named timestamp field as epoch seconds, or 0.
func (r *Record) Epoch(name string) uint32 {
	v, ok := r.Get(name)
	if !ok {
		return 0
	}
	t, ok := v.(Timestamp)
	if !ok {
		return 0
	}
	return uint32(t)
}

// Vec returns the elements of the named vector field, or nil.
func (r *Record) Vec(name string) []Value {
	v, ok := r.Get(name)
	if !ok {
		return nil
	}
	vec, ok := v.(Vector)
	if !ok {
		return nil
	}
	return vec.Items
}

// Flag reports whether the named bit is set in any bitflag word of the
// record. Records with no flag word report false for every name.
func (r *Record) Flag(name string) bool {
	if r == nil {
		return false
	}
	for _, f := range r.Fields {
		if fl, ok := f.Value.(Flags); ok && fl.Has(name) {
			return true
		}
	}
	return false
}

// String renders the record as an indented tree for the per-table text
// dumps.
func (r *Record) String() string {
	var b strings.Builder
	r.dump(&b, 0)
	return b.String()
}

func (r *Record) dump(b *strings.Builder, depth int) {
	indent := strings.Repeat("    ", depth)
	fmt.Fprintf(b, "%s%s (0x%08x)\n", indent, r.Sname, r.Tag)
	for _, f := range r.Fields {
		switch v := f.Value.(type) {
		case *Record:
			fmt.Fprintf(b, "%s  %s:\n", indent, f.Name)
			v.dump(b, depth+1)
		case Vector:
			fmt.Fprintf(b, "%s  %s: %s\n", indent, f.Name, v.render())
			for _, it := range v.Items {
				if rec, ok := it.(*Record); ok {
					rec.dump(b, depth+1)
				} else {
					fmt.Fprintf(b, "%s    %s\n", indent, it.render())
				}
			}
		default:
			fmt.Fprintf(b, "%s  %s: %s\n", indent, f.Name, f.Value.render())
		}
	}
	if len(r.Trailer) > 0 {
		fmt.Fprintf(b, "%s  trailer: 0x%s\n", indent, hex.EncodeToString(r.Trailer))
	}
}

// MarshalJSON emits the record with fields in wire order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	b.WriteString(`"sname":`)
	writeJSON(&b, r.Sname)
	fmt.Fprintf(&b, `,"signature":"0x%08x"`, r.Tag)
	for _, f := range r.Fields {
		b.WriteByte(',')
		writeJSON(&b, f.Name)
		b.WriteByte(':')
		if err := writeValueJSON(&b, f.Value); err != nil {
			return nil, err
		}
	}
	if len(r.Trailer) > 0 {
		b.WriteString(`,"trailer":`)
		writeJSON(&b, hex.EncodeToString(r.Trailer))
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

func writeJSON(b *bytes.Buffer, v any) {
	enc, err := json.Marshal(v)
	if err != nil {
		enc = []byte(`null`)
	}
	b.Write(enc)
}

func writeValueJSON(b *bytes.Buffer, v Value) error {
	switch x := v.(type) {
	case Int:
		writeJSON(b, int32(x))
	case Long:
		writeJSON(b, int64(x))
	case Double:
		writeJSON(b, float64(x))
	case Bytes:
		writeJSON(b, hex.EncodeToString(x))
	case Text:
		writeJSON(b, x.String())
	case Bool:
		switch x {
		case BoolTrue:
			b.WriteString("true")
		case BoolFalse:
			b.WriteString("false")
		default:
			writeJSON(b, "ERROR")
		}
	case Timestamp:
		writeJSON(b, x.render())
	case Flags:
		writeJSON(b, x.render())
	case Vector:
		b.WriteByte('[')
		for i, it := range x.Items {
			if i > 0 {
				b.WriteByte(',')
			}
			if err := writeValueJSON(b, it); err != nil {
				return err
			}
		}
		b.WriteByte(']')
	case Invalid:
		writeJSON(b, x.render())
	case *Record:
		enc, err := x.MarshalJSON()
		if err != nil {
			return err
		}
		b.Write(enc)
	default:
		writeJSON(b, nil)
	}
	return nil
}

// Package tblob decodes the tag-prefixed binary serialization found in
// the BLOB columns of a Telegram cache4.db. Every encoded record starts
// with a 32-bit little-endian signature selecting its shape; the registry
// maps each known signature to a shape decoder, and decoding recurses
// through nested tagged fields, bitflag-gated optionals and vectors.
//
// Decoding is best-effort, built for forensic triage of arbitrary and
// possibly corrupted captures: field-level problems (unknown nested tag,
// invalid UTF-8, bad boolean word) are recovered in place with sentinel
// values, and a record whose byte count disagrees with the blob length is
// still returned alongside a loud diagnostic. Only an unknown top-level
// tag or a fixed-width read past the end of the buffer fails a record.
package tblob

import (
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"

	"github.com/RealityNet/teleparser/internal/logging"
)

var (
	// ErrUnknownSignature reports a top-level tag absent from the
	// registry.
	ErrUnknownSignature = errors.New("unknown signature")

	// ErrNotImplemented reports a tag the registry names but has no
	// decoder for.
	ErrNotImplemented = errors.New("signature recognized but not implemented")
)

// Decoder decodes blobs against the static signature registry. It holds
// no mutable state; the same Decoder may decode independent buffers
// concurrently.
type Decoder struct {
	logger *slog.Logger
}

// NewDecoder returns a Decoder logging through the given logger. A nil
// logger discards diagnostics.
func NewDecoder(logger *slog.Logger) *Decoder {
	return &Decoder{logger: logging.Default(logger).With("component", "tblob")}
}

// Decode decodes one blob into a record. The record may be partial: a
// consumed-length mismatch or a non-empty trailing catch-all is logged
// and the record returned anyway. An unknown or unimplemented top-level
// signature returns a nil record and an error.
func (d *Decoder) Decode(blob []byte) (*Record, error) {
	if len(blob) < 4 {
		return nil, fmt.Errorf("%w: blob of %d bytes", ErrShortBuffer, len(blob))
	}
	c := newCursor(blob)
	tag := c.peekUint32()

	ent, ok := registry[tag]
	if !ok {
		return nil, fmt.Errorf("%w: 0x%08x", ErrUnknownSignature, tag)
	}
	if ent.parse == nil {
		return nil, fmt.Errorf("%w: 0x%08x (%s)", ErrNotImplemented, tag, ent.name)
	}

	rec, err := ent.parse(d, c)
	if err != nil {
		return nil, fmt.Errorf("decoding %s (0x%08x): %w", ent.name, tag, err)
	}
	if ent.post != nil {
		ent.post(rec)
	}

	if len(rec.Trailer) > 0 {
		// Expected for shapes carrying flag combinations newer than the
		// decoder models; the bytes stay attached to the record.
		d.logger.Warn("undecoded trailing bytes kept",
			"sname", rec.Sname,
			"signature", fmt.Sprintf("0x%08x", tag),
			"bytes", len(rec.Trailer))
	} else if c.remaining() > 0 {
		d.logger.Error("blob not fully consumed",
			"sname", rec.Sname,
			"signature", fmt.Sprintf("0x%08x", tag),
			"offset", c.offset(),
			"length", len(blob),
			"unparsed", hex.EncodeToString(blob[c.offset():]))
	}
	return rec, nil
}

// SignatureName returns the canonical name of a tag, or "" when the tag
// is not in the registry.
func SignatureName(tag uint32) string {
	return registry[tag].name
}

// object decodes one nested tag-dispatched field. An unknown or
// unimplemented nested tag is recoverable: the 4-byte tag is consumed, an
// Invalid sentinel stands in for the field, and sibling decoding
// continues (usually ending in a consumed-length diagnostic upstream).
func (d *Decoder) object(c *cursor) Value {
	tag := c.peekUint32()
	ent, ok := registry[tag]
	if !ok || ent.parse == nil {
		c.uint32()
		if c.err != nil {
			return Invalid{Tag: tag, Reason: "short buffer"}
		}
		reason := "unknown signature"
		if ok {
			reason = "no decoder for " + ent.name
		}
		d.logger.Error("nested field not decodable",
			"signature", fmt.Sprintf("0x%08x", tag), "reason", reason)
		return Invalid{Tag: tag, Reason: reason}
	}
	rec, err := ent.parse(d, c)
	if err != nil {
		c.fail(err)
		return Invalid{Tag: tag, Reason: err.Error()}
	}
	if ent.post != nil {
		ent.post(rec)
	}
	return rec
}

// vector decodes the 0x1cb5c415 marker, a 4-byte count and that many
// tag-dispatched elements.
func (d *Decoder) vector(c *cursor) Vector {
	if got := c.peekUint32(); got != vectorSignature && c.err == nil {
		c.fail(fmt.Errorf("%w: got 0x%08x at offset %d", ErrVectorExpected, got, c.offset()))
		return Vector{}
	}
	c.uint32()
	count := int(c.int32())
	var out Vector
	for i := 0; i < count && c.err == nil; i++ {
		out.Items = append(out.Items, d.object(c))
	}
	return out
}

// vectorOf decodes a vector whose elements are a known shape rather than
// tag-dispatched, for the call sites where the expected type, not the
// tag, picks the decoder (the chat_participant / chat_channel_participant
// signature clash).
func (d *Decoder) vectorOf(c *cursor, parse parseFunc) Vector {
	if got := c.peekUint32(); got != vectorSignature && c.err == nil {
		c.fail(fmt.Errorf("%w: got 0x%08x at offset %d", ErrVectorExpected, got, c.offset()))
		return Vector{}
	}
	c.uint32()
	count := int(c.int32())
	var out Vector
	for i := 0; i < count && c.err == nil; i++ {
		rec, err := parse(d, c)
		if err != nil {
			c.fail(err)
			break
		}
		out.Items = append(out.Items, rec)
	}
	return out
}

// intVector and longVector decode vectors of bare wire integers.
func (c *cursor) intVector() Vector {
	c.signature(vectorSignature)
	count := int(c.int32())
	var out Vector
	for i := 0; i < count && c.err == nil; i++ {
		out.Items = append(out.Items, Int(c.int32()))
	}
	return out
}

func (c *cursor) longVector() Vector {
	c.signature(vectorSignature)
	count := int(c.int32())
	var out Vector
	for i := 0; i < count && c.err == nil; i++ {
		out.Items = append(out.Items, Long(c.int64()))
	}
	return out
}

func (c *cursor) stringVector() Vector {
	c.signature(vectorSignature)
	count := int(c.int32())
	var out Vector
	for i := 0; i < count && c.err == nil; i++ {
		out.Items = append(out.Items, c.tstring())
	}
	return out
}

// begin asserts the shape's own signature and opens its record.
func begin(c *cursor, sname string, tag uint32) *Record {
	c.signature(tag)
	return makeRecord(sname, tag)
}

// done closes a shape decode, surfacing the cursor's latched error.
func done(rec *Record, c *cursor) (*Record, error) {
	if c.err != nil {
		return nil, c.err
	}
	return rec, nil
}

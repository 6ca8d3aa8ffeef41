package tblob

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecodeBoolTrue(t *testing.T) {
	d := NewDecoder(nil)
	rec, err := d.Decode(le32(boolTrueSignature))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Sname != "bool_true" {
		t.Errorf("got sname %q, want %q", rec.Sname, "bool_true")
	}
	v, ok := rec.Get("value")
	if !ok || v != BoolTrue {
		t.Errorf("got value %v, want BoolTrue", v)
	}
}

func TestDecodeUserEmpty(t *testing.T) {
	d := NewDecoder(nil)
	rec, err := d.Decode(cat(le32(0x200250ba), le32(1)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Sname != "user_empty" {
		t.Errorf("got sname %q, want %q", rec.Sname, "user_empty")
	}
	if got := rec.Int("id"); got != 1 {
		t.Errorf("got id %d, want 1", got)
	}
}

func TestDecodeUnknownSignature(t *testing.T) {
	d := NewDecoder(nil)
	_, err := d.Decode(le32(0xdeadbeef))
	if !errors.Is(err, ErrUnknownSignature) {
		t.Fatalf("expected ErrUnknownSignature, got %v", err)
	}
}

func TestDecodeNotImplemented(t *testing.T) {
	// "null" is registered without a decoder.
	d := NewDecoder(nil)
	_, err := d.Decode(le32(0x56730bcc))
	if !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("expected ErrNotImplemented, got %v", err)
	}
}

func TestDecodeShortBlob(t *testing.T) {
	d := NewDecoder(nil)
	_, err := d.Decode([]byte{1, 2})
	if !errors.Is(err, ErrShortBuffer) {
		t.Fatalf("expected ErrShortBuffer, got %v", err)
	}
}

func TestDecodeTopLevelVector(t *testing.T) {
	d := NewDecoder(nil)
	blob := cat(
		le32(vectorSignature), le32(2),
		le32(0x9db1bc6d), le32(11),
		le32(0x9db1bc6d), le32(22),
	)
	rec, err := d.Decode(blob)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items := rec.Vec("items")
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	for i, want := range []int64{11, 22} {
		peer, ok := items[i].(*Record)
		if !ok {
			t.Fatalf("item %d is %T, want *Record", i, items[i])
		}
		if peer.Sname != "peer_user" || peer.Int("user_id") != want {
			t.Errorf("item %d: got %s user_id %d, want peer_user %d",
				i, peer.Sname, peer.Int("user_id"), want)
		}
	}
}

func TestDecodeFlagGatedUser(t *testing.T) {
	// has_first_name | has_username, everything else clear: the wire
	// carries exactly flags, id, first_name, username.
	d := NewDecoder(nil)
	blob := cat(
		le32(0x938458c1),
		le32(1<<1|1<<3),
		le32(4242),
		encString("alice"),
		encString("al"),
	)
	rec, err := d.Decode(blob)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rec.Int("id"); got != 4242 {
		t.Errorf("got id %d, want 4242", got)
	}
	if got := rec.Text("first_name"); got != "alice" {
		t.Errorf("got first_name %q, want %q", got, "alice")
	}
	if got := rec.Text("username"); got != "al" {
		t.Errorf("got username %q, want %q", got, "al")
	}
	for _, absent := range []string{"last_name", "phone", "photo", "status", "access_hash"} {
		if rec.Has(absent) {
			t.Errorf("field %q decoded despite a clear flag bit", absent)
		}
	}
	if !rec.Flag("has_username") || rec.Flag("is_bot") {
		t.Error("flag word bits not reported correctly")
	}
}

func TestDecodeMessageKeepsTrailer(t *testing.T) {
	d := NewDecoder(nil)
	trailer := []byte{0xde, 0xad, 0xbe, 0xef, 0x01}
	blob := cat(
		le32(0xc09be45f),
		le32(1<<1|1<<8), // out | has_from_id
		le32(42),
		le32(7),
		le32(0x9db1bc6d), le32(99),
		le32(1500000000),
		encString("hi"),
		trailer,
	)
	rec, err := d.Decode(blob)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Sname != "message_layer68" {
		t.Errorf("got sname %q, want %q", rec.Sname, "message_layer68")
	}
	if got := rec.Int("from_id"); got != 7 {
		t.Errorf("got from_id %d, want 7", got)
	}
	if got := rec.Epoch("date"); got != 1500000000 {
		t.Errorf("got date %d, want 1500000000", got)
	}
	if got := rec.Text("message"); got != "hi" {
		t.Errorf("got message %q, want %q", got, "hi")
	}
	if !bytes.Equal(rec.Trailer, trailer) {
		t.Errorf("got trailer %x, want %x", rec.Trailer, trailer)
	}
}

func TestDeriveMessageFromID(t *testing.T) {
	d := NewDecoder(nil)

	// Incoming 1-1 message without from_id on the wire: the author is the
	// peer user.
	incoming := cat(
		le32(0xc09be45f),
		le32(0),
		le32(42),
		le32(0x9db1bc6d), le32(99),
		le32(1500000000),
		encString("hi"),
	)
	rec, err := d.Decode(incoming)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rec.Int("from_id"); got != 99 {
		t.Errorf("got derived from_id %d, want 99", got)
	}

	// Outgoing message to the same peer: the author is the account owner,
	// not the peer, so nothing is derived.
	outgoing := cat(
		le32(0xc09be45f),
		le32(1<<1),
		le32(43),
		le32(0x9db1bc6d), le32(99),
		le32(1500000000),
		encString("hi"),
	)
	rec, err = d.Decode(outgoing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Has("from_id") {
		t.Error("outgoing message must not derive from_id")
	}

	// Channel post: the author is the channel itself, sign-flipped.
	post := cat(
		le32(0xc09be45f),
		le32(0),
		le32(44),
		le32(0xbddde532), le32(1234),
		le32(1500000000),
		encString("hi"),
	)
	rec, err = d.Decode(post)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rec.Int("from_id"); got != -1234 {
		t.Errorf("got derived from_id %d, want -1234", got)
	}
}

func TestDecodeNestedUnknownTagRecovers(t *testing.T) {
	// user with has_photo set but an unknown tag where the photo shape
	// should start: the field decodes to an Invalid sentinel and the record
	// is still returned.
	d := NewDecoder(nil)
	blob := cat(
		le32(0x938458c1),
		le32(1<<5),
		le32(4242),
		le32(0xdeadbeef),
	)
	rec, err := d.Decode(blob)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := rec.Get("photo")
	if !ok {
		t.Fatal("photo field missing")
	}
	inv, ok := v.(Invalid)
	if !ok {
		t.Fatalf("photo is %T, want Invalid", v)
	}
	if inv.Tag != 0xdeadbeef {
		t.Errorf("got sentinel tag 0x%08x, want 0xdeadbeef", inv.Tag)
	}
}

func TestSignatureName(t *testing.T) {
	if got := SignatureName(0x9db1bc6d); got != "peer_user" {
		t.Errorf("got %q, want %q", got, "peer_user")
	}
	if got := SignatureName(0xdeadbeef); got != "" {
		t.Errorf("got %q for an unknown tag, want empty", got)
	}
}

func TestRegistrySanity(t *testing.T) {
	for tag, ent := range registry {
		if ent.name == "" {
			t.Errorf("tag 0x%08x has no name", tag)
		}
	}
	// The signature shared by chat_participant and
	// chat_channel_participant resolves to the chat flavor; the channel
	// flavor is reached by expected type, not by tag.
	if got := registry[0xc8d7493e].name; got != "chat_participant" {
		t.Errorf("got %q for 0xc8d7493e, want %q", got, "chat_participant")
	}
}

package tblob

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func decodeUser(t *testing.T) *Record {
	t.Helper()
	d := NewDecoder(nil)
	blob := cat(
		le32(0x938458c1),
		le32(1<<1|1<<3|1<<6),
		le32(4242),
		encString("alice"),
		encString("al"),
		le32(0x008c703f), le32(1600000000), // user_status_offline
	)
	rec, err := d.Decode(blob)
	if err != nil {
		t.Fatalf("decoding fixture: %v", err)
	}
	return rec
}

func TestRecordFieldOrder(t *testing.T) {
	rec := decodeUser(t)
	var names []string
	for _, f := range rec.Fields {
		names = append(names, f.Name)
	}
	want := []string{"flags", "id", "first_name", "username", "status"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("field order mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordAccessors(t *testing.T) {
	rec := decodeUser(t)

	if !rec.Has("username") || rec.Has("phone") {
		t.Error("Has does not track decoded fields")
	}
	if got := rec.Int("id"); got != 4242 {
		t.Errorf("Int(id) = %d, want 4242", got)
	}
	if got := rec.Int("first_name"); got != 0 {
		t.Errorf("Int on a text field = %d, want 0", got)
	}
	if got := rec.Text("first_name"); got != "alice" {
		t.Errorf("Text(first_name) = %q, want %q", got, "alice")
	}
	if got := rec.Text("id"); got != "" {
		t.Errorf("Text on an integer field = %q, want empty", got)
	}

	status := rec.Sub("status")
	if status == nil || status.Sname != "user_status_offline" {
		t.Fatalf("Sub(status) = %v", status)
	}
	if got := status.Epoch("was_online"); got != 1600000000 {
		t.Errorf("Epoch(was_online) = %d, want 1600000000", got)
	}
	if rec.Sub("first_name") != nil {
		t.Error("Sub on a text field must be nil")
	}
}

func TestRecordNilReceiver(t *testing.T) {
	var rec *Record
	if rec.Has("anything") {
		t.Error("Has on nil receiver")
	}
	if rec.Int("anything") != 0 {
		t.Error("Int on nil receiver")
	}
	if rec.Sub("anything") != nil {
		t.Error("Sub on nil receiver")
	}
	if rec.Flag("anything") {
		t.Error("Flag on nil receiver")
	}
}

func TestRecordString(t *testing.T) {
	out := decodeUser(t).String()
	for _, want := range []string{
		"user (0x938458c1)",
		`first_name: "alice"`,
		"status:",
		"user_status_offline (0x008c703f)",
		"1600000000 [2020-09-13T12:26:40]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
}

func TestRecordMarshalJSON(t *testing.T) {
	data, err := decodeUser(t).MarshalJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := string(data)

	// Wire order survives into the JSON object.
	last := -1
	for _, key := range []string{`"sname"`, `"signature"`, `"flags"`, `"id"`, `"first_name"`, `"username"`, `"status"`} {
		i := strings.Index(s, key)
		if i < 0 {
			t.Fatalf("json missing key %s:\n%s", key, s)
		}
		if i < last {
			t.Errorf("key %s out of wire order:\n%s", key, s)
		}
		last = i
	}
	if !strings.Contains(s, `"id":4242`) {
		t.Errorf("json missing id value:\n%s", s)
	}
}

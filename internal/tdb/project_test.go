package tdb

import (
	"encoding/binary"
	"testing"

	"github.com/RealityNet/teleparser/internal/tblob"
)

// Wire builders for the serialized blob fixtures.

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

func tstr(s string) []byte {
	if len(s) >= 254 {
		panic("tstr is short-form only")
	}
	out := append([]byte{byte(len(s))}, s...)
	for len(out)%4 != 0 {
		out = append(out, 0)
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

func mustDecode(t *testing.T, blob []byte) *tblob.Record {
	t.Helper()
	rec, err := tblob.NewDecoder(nil).Decode(blob)
	if err != nil {
		t.Fatalf("decoding fixture: %v", err)
	}
	return rec
}

// userBlob builds a user record wire image with the given gated fields;
// empty strings leave the field (and its flag bit) out.
func userBlob(t *testing.T, id int64, first, last, username string, self bool) *tblob.Record {
	t.Helper()
	var flags uint32
	var gated []byte
	if first != "" {
		flags |= 1 << 1
		gated = append(gated, tstr(first)...)
	}
	if last != "" {
		flags |= 1 << 2
		gated = append(gated, tstr(last)...)
	}
	if username != "" {
		flags |= 1 << 3
		gated = append(gated, tstr(username)...)
	}
	if self {
		flags |= 1 << 10
	}
	return mustDecode(t, cat(le32(0x938458c1), le32(flags), le32(uint32(id)), gated))
}

// channelBlob builds a channel record wire image.
func channelBlob(t *testing.T, id int64, title, username string, flags uint32) *tblob.Record {
	t.Helper()
	var uname []byte
	if username != "" {
		flags |= 1 << 6
		uname = tstr(username)
	}
	return mustDecode(t, cat(
		le32(0xd31a961e),
		le32(flags),
		le32(uint32(id)),
		tstr(title),
		uname,
		le32(0x37c1011c), // chat_photo_empty
		le32(1600000000),
		le32(1),
	))
}

// messageBlob builds a message_layer68 wire image addressed to a peer.
func messageBlob(t *testing.T, id int64, flags uint32, peerTag uint32, peerID int64, date uint32, text string) *tblob.Record {
	t.Helper()
	return mustDecode(t, cat(
		le32(0xc09be45f),
		le32(flags),
		le32(uint32(id)),
		le32(peerTag), le32(uint32(peerID)),
		le32(date),
		tstr(text),
	))
}

func TestFoldDialogID(t *testing.T) {
	cases := []struct {
		did  int64
		want int64
	}{
		{100, 100},
		{-4242, 4242},
		{777 << 32, 777},
		{777<<32 | 5, 777},
	}
	for _, tc := range cases {
		if got := foldDialogID(tc.did); got != tc.want {
			t.Errorf("foldDialogID(%d) = %d, want %d", tc.did, got, tc.want)
		}
	}
}

func TestToDate(t *testing.T) {
	if got := toDate(0); got != "" {
		t.Errorf("toDate(0) = %q, want empty", got)
	}
	if got := toDate(1600000000); got != "2020-09-13T12:26:40" {
		t.Errorf("toDate(1600000000) = %q", got)
	}
}

func TestNormalizeContent(t *testing.T) {
	cases := []struct{ in, want string }{
		{`"hello"`, "hello"},
		{`'hello'`, "hello"},
		{`say "hi" now`, "say 'hi' now"},
		{"plain", "plain"},
	}
	for _, tc := range cases {
		if got := normalizeContent(tc.in); got != tc.want {
			t.Errorf("normalizeContent(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestEscapeCSV(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ""},
		{"plain", `"plain"`},
		{"a,b", `"a,b"`},
		{`he said "x"`, `"he said 'x'"`},
		{`"quoted"`, `"quoted"`},
	}
	for _, tc := range cases {
		if got := escapeCSV(tc.in); got != tc.want {
			t.Errorf("escapeCSV(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestKVListKeepsOrder(t *testing.T) {
	var l kvList
	l.add("b", "2")
	l.add("a", "1")
	if got := l.String(); got != "b:2 a:1" {
		t.Errorf("got %q, want %q", got, "b:2 a:1")
	}
}

func TestUserShortestID(t *testing.T) {
	cases := []struct {
		name string
		u    *User
		want string
	}{
		{"username wins", &User{UID: 1, Blob: userBlob(t, 1, "Alice", "Smith", "al", false)}, "al"},
		{"full name", &User{UID: 2, Blob: userBlob(t, 2, "Alice", "Smith", "", false)}, "Alice Smith"},
		{"first only", &User{UID: 3, Blob: userBlob(t, 3, "Alice", "", "", false)}, "Alice"},
		{"uid fallback", &User{UID: 4, Blob: userBlob(t, 4, "", "", "", false)}, "4"},
		{"owner marked", &User{UID: 5, Blob: userBlob(t, 5, "", "", "bob", true)}, "bob (owner)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.u.ShortestID(); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestUserFullTextID(t *testing.T) {
	u := &User{UID: 7, Blob: userBlob(t, 7, "Alice", "Smith", "al", false)}
	want := "uid: 7 nick: al fullname: Alice Smith phone: "
	if got := u.FullTextID(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestChatType(t *testing.T) {
	cases := []struct {
		name string
		ch   *Chat
		want string
	}{
		{"public broadcast", &Chat{Blob: channelBlob(t, 1, "News", "newsch", 1<<5)}, "1-N pub"},
		{"private megagroup", &Chat{Blob: channelBlob(t, 2, "Group", "", 1<<8)}, "N-N prv"},
		{"left megagroup", &Chat{Blob: channelBlob(t, 3, "Group", "", 1<<8|1<<2)}, "N-N prv left"},
		{"plain", &Chat{Blob: channelBlob(t, 4, "What", "", 0)}, "?-? prv"},
		{"no blob", &Chat{UID: 5}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.ch.ChatType(); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestChatShortestID(t *testing.T) {
	pub := &Chat{UID: 1, Blob: channelBlob(t, 1, "News", "newsch", 1<<5)}
	if got := pub.ShortestID(); got != "newsch" {
		t.Errorf("got %q, want %q", got, "newsch")
	}
	prv := &Chat{UID: 2, Blob: channelBlob(t, 2, "Friends", "", 1<<8)}
	if got := prv.ShortestID(); got != "Friends" {
		t.Errorf("got %q, want %q", got, "Friends")
	}
	bare := &Chat{UID: 3}
	if got := bare.ShortestID(); got != "3" {
		t.Errorf("got %q, want %q", got, "3")
	}
}

func TestMessageToPeer(t *testing.T) {
	user := &Message{Blob: messageBlob(t, 1, 0, 0x9db1bc6d, 99, 1600000000, "hi")}
	if id, kind := user.ToPeer(); id != 99 || kind != peerUser {
		t.Errorf("got (%d, %q), want (99, %q)", id, kind, peerUser)
	}
	channel := &Message{Blob: messageBlob(t, 2, 0, 0xbddde532, 1234, 1600000000, "hi")}
	if id, kind := channel.ToPeer(); id != 1234 || kind != peerChannel {
		t.Errorf("got (%d, %q), want (1234, %q)", id, kind, peerChannel)
	}
	group := &Message{Blob: messageBlob(t, 3, 0, 0xbad0e5bb, 55, 1600000000, "hi")}
	if id, kind := group.ToPeer(); id != 55 || kind != "" {
		t.Errorf("got (%d, %q), want (55, \"\")", id, kind)
	}
}

func TestDialogAndSequence(t *testing.T) {
	cases := []struct {
		name       string
		m          *Message
		wantDialog int64
		wantSeq    int64
	}{
		{"channel mid", &Message{MID: 1234<<32 | 55}, 1234, 55},
		{"plain mid", &Message{MID: 10, UID: 99}, 99, 10},
		{"group uid", &Message{MID: 11, UID: -4242}, 4242, 11},
		{"local negative mid", &Message{MID: -210005, UID: 99}, 99, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dialog, seq := tc.m.DialogAndSequence()
			if dialog != tc.wantDialog || seq != tc.wantSeq {
				t.Errorf("got (%d, %d), want (%d, %d)", dialog, seq, tc.wantDialog, tc.wantSeq)
			}
		})
	}
}

func TestMessageContent(t *testing.T) {
	m := &Message{Blob: messageBlob(t, 1, 0, 0x9db1bc6d, 99, 1600000000, `say "hi"`)}
	if got := m.Content(); got != "say 'hi'" {
		t.Errorf("got %q, want %q", got, "say 'hi'")
	}
	bare := &Message{}
	if got := bare.Content(); got != "" {
		t.Errorf("got %q for a nil blob, want empty", got)
	}
}

func TestMediaSummaryWebPage(t *testing.T) {
	// message with a pending webpage attachment: flags carry has_media,
	// the media field is message_media_web_page wrapping web_page_pending.
	blob := cat(
		le32(0xc09be45f),
		le32(1<<9),
		le32(1),
		le32(0x9db1bc6d), le32(99),
		le32(1600000000),
		tstr(""),
		le32(0xa32dd600),
		le32(0xc586da1c), le64(77), le32(1600000100),
	)
	m := &Message{Blob: mustDecode(t, blob)}
	if got := m.MediaSummary(); got != "webpage id:77 url:" {
		t.Errorf("got %q", got)
	}
}

func TestEncChatParticipantID(t *testing.T) {
	enc := cat(
		le32(0xfa56ce36),
		le32(7),
		le64(0x1122334455667788),
		le32(1600000300),
		le32(100),
		le32(99),
		tstr("ga"),
		le64(0xdeadbeef),
	)
	ec := &EncChat{UID: 7, User: 99, AdminID: 100, Blob: mustDecode(t, enc)}
	if got := ec.ParticipantID(); got != 99 {
		t.Errorf("got %d, want 99", got)
	}

	// No blob: fall back to the user column when it is not the admin.
	bare := &EncChat{UID: 8, User: 99, AdminID: 100}
	if got := bare.ParticipantID(); got != 99 {
		t.Errorf("got %d, want 99", got)
	}
	selfAdmin := &EncChat{UID: 9, User: 100, AdminID: 100}
	if got := selfAdmin.ParticipantID(); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}

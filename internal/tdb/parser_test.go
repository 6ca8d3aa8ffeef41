package tdb

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/RealityNet/teleparser/internal/tblob"
)

// buildFixtureDB creates a miniature cache4.db: two users (one owner),
// one public channel, two dialogs, one secret chat and two messages. The
// user_settings table is deliberately absent, as in old schemas.
func buildFixtureDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cache4.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("creating fixture db: %v", err)
	}
	defer db.Close()

	schema := []string{
		`CREATE TABLE users(uid INTEGER PRIMARY KEY, name TEXT, status INTEGER, data BLOB)`,
		`CREATE TABLE chats(uid INTEGER PRIMARY KEY, name TEXT, data BLOB)`,
		`CREATE TABLE contacts(uid INTEGER PRIMARY KEY, mutual INTEGER)`,
		`CREATE TABLE dialogs(did INTEGER PRIMARY KEY, date INTEGER, unread_count INTEGER,
			last_mid INTEGER, inbox_max INTEGER, outbox_max INTEGER, last_mid_i INTEGER,
			unread_count_i INTEGER, pts INTEGER, date_i INTEGER, pinned INTEGER, flags INTEGER)`,
		`CREATE TABLE enc_chats(uid INTEGER PRIMARY KEY, user INTEGER, name TEXT, data BLOB,
			g BLOB, authkey BLOB, ttl INTEGER, layer INTEGER, seq_in INTEGER, seq_out INTEGER,
			use_count INTEGER, exchange_id INTEGER, key_date INTEGER, fprint INTEGER,
			fauthkey BLOB, khash BLOB, in_seq_no INTEGER, admin_id INTEGER, mtproto_seq INTEGER)`,
		`CREATE TABLE media_v2(mid INTEGER PRIMARY KEY, uid INTEGER, date INTEGER, type INTEGER, data BLOB)`,
		`CREATE TABLE messages(mid INTEGER PRIMARY KEY, uid INTEGER, read_state INTEGER,
			send_state INTEGER, date INTEGER, data BLOB, out INTEGER, ttl INTEGER,
			media INTEGER, replydata BLOB, imp INTEGER, mention INTEGER)`,
		`CREATE TABLE sent_files_v2(uid TEXT PRIMARY KEY, type INTEGER, parent TEXT, data BLOB)`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("creating fixture schema: %v", err)
		}
	}

	owner := cat(le32(0x938458c1), le32(1<<1|1<<3|1<<10), le32(100), tstr("Alice"), tstr("alice"))
	peer := cat(le32(0x938458c1), le32(1<<3), le32(99), tstr("bob"))
	channel := cat(
		le32(0xd31a961e),
		le32(1<<5|1<<6),
		le32(1234),
		tstr("News"),
		tstr("newsch"),
		le32(0x37c1011c),
		le32(1600000000),
		le32(1),
	)
	encChat := cat(
		le32(0xfa56ce36),
		le32(7),
		le64(0x1122334455667788),
		le32(1600000300),
		le32(100),
		le32(99),
		tstr("ga"),
		le64(0xdeadbeef),
	)
	dm := cat(
		le32(0xc09be45f),
		le32(0),
		le32(10),
		le32(0x9db1bc6d), le32(99),
		le32(1600000600),
		tstr("hello there"),
	)
	post := cat(
		le32(0xc09be45f),
		le32(0),
		le32(3),
		le32(0xbddde532), le32(1234),
		le32(1600000700),
		tstr("channel post"),
	)

	inserts := []struct {
		stmt string
		args []any
	}{
		{`INSERT INTO users VALUES(?, ?, ?, ?)`, []any{100, "alice;;;0", 0, owner}},
		{`INSERT INTO users VALUES(?, ?, ?, ?)`, []any{99, "bob;;;0", 1600000500, peer}},
		{`INSERT INTO chats VALUES(?, ?, ?)`, []any{1234, "News", channel}},
		{`INSERT INTO contacts VALUES(?, ?)`, []any{99, 1}},
		{`INSERT INTO dialogs VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			[]any{-1234, 1600000400, 2, 3, 3, 0, 0, 0, 11, 0, 0, 0}},
		{`INSERT INTO dialogs VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			[]any{99, 1600000600, 0, 10, 10, 10, 0, 0, 5, 0, 1, 0}},
		{`INSERT INTO enc_chats VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			[]any{7, 99, "secret", encChat, []byte{1}, []byte{2}, 60, 73, 1, 2,
				0, 0, 1600000300, 42, nil, nil, 0, 100, 0}},
		{`INSERT INTO media_v2 VALUES(?, ?, ?, ?, ?)`, []any{10, 99, 1600000600, 0, dm}},
		{`INSERT INTO messages VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			[]any{10, 99, 1, 0, 1600000600, dm, 0, 0, 0, nil, 0, 0}},
		{`INSERT INTO messages VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			[]any{1234<<32 | 3, -1234, 1, 0, 1600000700, post, 0, 0, 0, nil, 0, 0}},
		{`INSERT INTO sent_files_v2 VALUES(?, ?, ?, ?)`, []any{"hash1", 1, "p1", dm}},
	}
	for _, ins := range inserts {
		if _, err := db.Exec(ins.stmt, ins.args...); err != nil {
			t.Fatalf("inserting fixture row: %v", err)
		}
	}
	return path
}

func openFixture(t *testing.T) *Parser {
	t.Helper()
	p, err := Open(buildFixtureDB(t), tblob.NewDecoder(nil), nil)
	if err != nil {
		t.Fatalf("opening fixture db: %v", err)
	}
	t.Cleanup(func() { p.Close() })
	if err := p.Parse(); err != nil {
		t.Fatalf("parsing fixture db: %v", err)
	}
	return p
}

func TestParseLoadsAllTables(t *testing.T) {
	p := openFixture(t)

	if len(p.users) != 2 || len(p.chats) != 1 || len(p.contacts) != 1 {
		t.Fatalf("got %d users, %d chats, %d contacts",
			len(p.users), len(p.chats), len(p.contacts))
	}
	if len(p.dialogs) != 2 || len(p.encChats) != 1 {
		t.Fatalf("got %d dialogs, %d enc_chats", len(p.dialogs), len(p.encChats))
	}
	if len(p.messages) != 2 || len(p.media) != 1 || len(p.sentFiles) != 1 {
		t.Fatalf("got %d messages, %d media, %d sent files",
			len(p.messages), len(p.media), len(p.sentFiles))
	}
	// The schema has no user_settings table; the loader tolerates that.
	if len(p.userSettings) != 0 {
		t.Fatalf("got %d user_settings rows from an absent table", len(p.userSettings))
	}

	owner := p.userByID[100]
	if owner == nil || !owner.IsSelf() || owner.Username() != "alice" {
		t.Errorf("owner row not loaded correctly: %+v", owner)
	}
	ch := p.chatByID[1234]
	if ch == nil || ch.Title() != "News" || ch.ChatType() != "1-N pub" {
		t.Errorf("channel row not loaded correctly: %+v", ch)
	}
	ec := p.encChatByID[7]
	if ec == nil || ec.ParticipantID() != 99 || ec.AdminID != 100 {
		t.Errorf("secret chat row not loaded correctly: %+v", ec)
	}
	sf := p.sentFiles[0]
	if sf.UID != "hash1" || sf.Type != 1 || sf.Parent != "p1" {
		t.Errorf("sent file row not loaded correctly: %+v", sf)
	}
}

func TestWriteTables(t *testing.T) {
	p := openFixture(t)
	dir := t.TempDir()
	if err := p.WriteTables(dir); err != nil {
		t.Fatalf("writing tables: %v", err)
	}

	users, err := os.ReadFile(filepath.Join(dir, "table_users.txt"))
	if err != nil {
		t.Fatalf("reading users dump: %v", err)
	}
	for _, want := range []string{
		"uid: 100 name: alice;;;0",
		"uid: 99 name: bob;;;0 status: 2020-09-13T12:35:00",
		"user (0x938458c1)",
		"uid: 99 nick: bob fullname:  phone: ",
	} {
		if !strings.Contains(string(users), want) {
			t.Errorf("users dump missing %q:\n%s", want, users)
		}
	}

	messages, err := os.ReadFile(filepath.Join(dir, "table_messages.txt"))
	if err != nil {
		t.Fatalf("reading messages dump: %v", err)
	}
	for _, want := range []string{
		"mid: 10 uid: 99",
		`message: "hello there"`,
		"From [users] -> uid: 99",
	} {
		if !strings.Contains(string(messages), want) {
			t.Errorf("messages dump missing %q:\n%s", want, messages)
		}
	}

	// All nine dumps exist even when a table was absent.
	for _, name := range []string{
		"table_chats.txt", "table_contacts.txt", "table_dialogs.txt",
		"table_enc_chats.txt", "table_media_v2.txt", "table_messages.txt",
		"table_sent_files_v2.txt", "table_users.txt", "table_user_settings.txt",
	} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("dump %s not written: %v", name, err)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	p := openFixture(t)
	dir := t.TempDir()
	if err := p.WriteJSON(dir); err != nil {
		t.Fatalf("writing json: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "table_users.json"))
	if err != nil {
		t.Fatalf("reading users json: %v", err)
	}
	var users []struct {
		UID  int64 `json:"uid"`
		Blob struct {
			Sname string `json:"sname"`
			ID    int64  `json:"id"`
		} `json:"blob"`
	}
	if err := json.Unmarshal(data, &users); err != nil {
		t.Fatalf("users json does not parse: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("got %d users, want 2", len(users))
	}
	if users[0].Blob.Sname != "user" || users[0].Blob.ID != users[0].UID {
		t.Errorf("user blob not embedded: %+v", users[0])
	}
}

func TestWriteTimeline(t *testing.T) {
	p := openFixture(t)
	dir := t.TempDir()
	if err := p.WriteTimeline(dir); err != nil {
		t.Fatalf("writing timeline: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "timeline.csv"))
	if err != nil {
		t.Fatalf("reading timeline: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")

	wantHeader := "timestamp,source,id,type,from,from_id,to,to_id,dialog,dialog_type,content,media,extra"
	if lines[0] != wantHeader {
		t.Fatalf("got header %q, want %q", lines[0], wantHeader)
	}

	find := func(substrs ...string) string {
		t.Helper()
	next:
		for _, l := range lines[1:] {
			for _, s := range substrs {
				if !strings.Contains(l, s) {
					continue next
				}
			}
			return l
		}
		t.Fatalf("no timeline row with %q:\n%s", substrs, data)
		return ""
	}

	// Channel creation, dated from the blob.
	find("2020-09-13T12:26:40", "chats,1234,chat_creation_date", "newsch")

	// Direct message: authored by the peer, addressed to the peer, in a
	// plain 1-1 dialog.
	dmRow := find("messages,10,message_layer68")
	want := `2020-09-13T12:36:40,messages,10,message_layer68,bob,99,bob,99,,1-1,"hello there",,"dialog:99 sequence:10"`
	if dmRow != want {
		t.Errorf("dm row mismatch:\ngot  %s\nwant %s", dmRow, want)
	}

	// Channel post: the channel itself is the sign-flipped author, the
	// dialog folds out of the high bits of the mid.
	postRow := find("channel post")
	for _, s := range []string{",-1234,", "newsch", "1-N pub", `"dialog:1234 sequence:3"`} {
		if !strings.Contains(postRow, s) {
			t.Errorf("post row missing %q: %s", s, postRow)
		}
	}

	// Secret chat emits a creation row and a key_date row.
	find("enc_chats,7,chat_creation_date", "secret")
	find("enc_chats,7,key_date")

	// Status update for the peer user.
	find("2020-09-13T12:35:00,users,99,user_status_update", "bob")
}

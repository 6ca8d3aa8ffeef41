// Package tdb reads a Telegram cache4.db, decodes the serialized BLOB
// column of each table of interest and projects the result into
// per-table dump files and a single chronological timeline.
//
// The database is opened read-only; the package never writes to it. Row
// problems (zero keys, duplicate keys, undecodable blobs) are logged and
// the row skipped, so one damaged row never aborts a capture.
package tdb

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"

	"github.com/RealityNet/teleparser/internal/logging"
	"github.com/RealityNet/teleparser/internal/tblob"
)

// Parser loads the cache4 tables, keeping both the row order of the
// database and per-key lookup maps for the cross-referencing the dumps
// and the timeline need.
type Parser struct {
	db     *sql.DB
	dec    *tblob.Decoder
	logger *slog.Logger

	chats        []*Chat
	chatByID     map[int64]*Chat
	contacts     []*Contact
	dialogs      []*Dialog
	encChats     []*EncChat
	encChatByID  map[int64]*EncChat
	media        []*Media
	messages     []*Message
	sentFiles    []*SentFile
	users        []*User
	userByID     map[int64]*User
	userSettings []*UserSettings
}

// Open opens the cache4 database read-only. A nil logger discards
// diagnostics.
func Open(path string, dec *tblob.Decoder, logger *slog.Logger) (*Parser, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &Parser{
		db:          db,
		dec:         dec,
		logger:      logging.Default(logger).With("component", "tdb"),
		chatByID:    map[int64]*Chat{},
		encChatByID: map[int64]*EncChat{},
		userByID:    map[int64]*User{},
	}, nil
}

// Close releases the database handle.
func (p *Parser) Close() error {
	return p.db.Close()
}

// Parse loads every table. The order matters only for log readability;
// cross-references are resolved at dump time.
func (p *Parser) Parse() error {
	loaders := []struct {
		name string
		load func() error
	}{
		{"chats", p.loadChats},
		{"contacts", p.loadContacts},
		{"dialogs", p.loadDialogs},
		{"enc_chats", p.loadEncChats},
		{"media_v2", p.loadMedia},
		{"messages", p.loadMessages},
		{"sent_files_v2", p.loadSentFiles},
		{"users", p.loadUsers},
		{"user_settings", p.loadUserSettings},
	}
	for _, l := range loaders {
		if err := l.load(); err != nil {
			return fmt.Errorf("table %s: %w", l.name, err)
		}
	}
	return nil
}

// row is one database row keyed by column name. Reading through a map
// keeps the loaders independent of column order and tolerant of columns
// that older schema versions do not have.
type row map[string]any

func (p *Parser) selectAll(table string) ([]row, error) {
	rows, err := p.db.Query("SELECT * FROM " + table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	var out []row
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		r := make(row, len(cols))
		for i, col := range cols {
			r[col] = vals[i]
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (r row) has(name string) bool {
	v, ok := r[name]
	return ok && v != nil
}

func (r row) int64(name string) int64 {
	switch v := r[name].(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	}
	return 0
}

func (r row) text(name string) string {
	switch v := r[name].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	}
	return ""
}

func (r row) bytes(name string) []byte {
	switch v := r[name].(type) {
	case []byte:
		return v
	case string:
		return []byte(v)
	}
	return nil
}

// decodeBlob decodes one BLOB column best-effort. A failed decode is
// logged and reported as a nil record; the caller keeps the row.
func (p *Parser) decodeBlob(table string, key any, data []byte) *tblob.Record {
	if len(data) == 0 {
		return nil
	}
	rec, err := p.dec.Decode(data)
	if err != nil {
		p.logger.Error("blob not decoded", "table", table, "key", key, "error", err)
		return nil
	}
	return rec
}

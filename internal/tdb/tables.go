package tdb

import (
	"github.com/RealityNet/teleparser/internal/tblob"
)

// Row types for the nine cache4 tables and their loaders. Every loader
// applies the same hygiene: a zero primary key or a duplicate is logged
// and the row skipped.

// Chat is one row of the chats table.
type Chat struct {
	UID  int64
	Name string
	Blob *tblob.Record
}

// Contact is one row of the contacts table.
type Contact struct {
	UID    int64
	Mutual int64
}

// Dialog is one row of the dialogs table. All columns are plain
// integers; the did folds the peer id as described in foldDialogID.
type Dialog struct {
	DID          int64
	Date         int64
	UnreadCount  int64
	LastMid      int64
	InboxMax     int64
	OutboxMax    int64
	LastMidI     int64
	UnreadCountI int64
	Pts          int64
	DateI        int64
	Pinned       int64
	Flags        int64
}

// EncChat is one row of the enc_chats table: the secret-chat key
// material columns plus the decoded blob.
type EncChat struct {
	UID        int64
	User       int64
	Name       string
	Blob       *tblob.Record
	G          []byte
	AuthKey    []byte
	TTL        int64
	Layer      int64
	SeqIn      int64
	SeqOut     int64
	UseCount   int64
	ExchangeID int64
	KeyDate    int64
	FPrint     int64
	FAuthKey   []byte
	KHash      []byte
	InSeqNo    int64
	AdminID    int64
	MtprotoSeq int64
}

// Media is one row of the media_v2 table.
type Media struct {
	MID  int64
	UID  int64
	Date int64
	Type int64
	Blob *tblob.Record
}

// Message is one row of the messages table. ReplyBlob is the decoded
// replydata column when the message is a reply.
type Message struct {
	MID       int64
	UID       int64
	ReadState int64
	SendState int64
	Date      int64
	Blob      *tblob.Record
	Out       int64
	TTL       int64
	Media     int64
	ReplyBlob *tblob.Record
	Imp       int64
	Mention   int64
}

// SentFile is one row of the sent_files_v2 table. The uid is a text
// hash, not a numeric id; type and parent are absent in old schemas.
type SentFile struct {
	UID    string
	Type   int64
	Parent string
	Blob   *tblob.Record
}

// User is one row of the users table.
type User struct {
	UID    int64
	Name   string
	Status int64
	Blob   *tblob.Record
}

// UserSettings is one row of the user_settings table.
type UserSettings struct {
	UID    int64
	Blob   *tblob.Record
	Pinned int64
}

func (p *Parser) loadChats() error {
	rows, err := p.selectAll("chats")
	if err != nil {
		return err
	}
	for _, r := range rows {
		uid := r.int64("uid")
		if uid == 0 {
			p.logger.Error("chats row with zero uid skipped")
			continue
		}
		if _, dup := p.chatByID[uid]; dup {
			p.logger.Error("chats row with duplicate uid skipped", "uid", uid)
			continue
		}
		p.logger.Info("parsing chats entry", "uid", uid)
		ch := &Chat{
			UID:  uid,
			Name: r.text("name"),
			Blob: p.decodeBlob("chats", uid, r.bytes("data")),
		}
		p.chats = append(p.chats, ch)
		p.chatByID[uid] = ch
	}
	return nil
}

func (p *Parser) loadContacts() error {
	rows, err := p.selectAll("contacts")
	if err != nil {
		return err
	}
	seen := map[int64]bool{}
	for _, r := range rows {
		uid := r.int64("uid")
		if uid == 0 {
			p.logger.Error("contacts row with zero uid skipped")
			continue
		}
		if seen[uid] {
			p.logger.Error("contacts row with duplicate uid skipped", "uid", uid)
			continue
		}
		seen[uid] = true
		p.logger.Info("parsing contacts entry", "uid", uid)
		p.contacts = append(p.contacts, &Contact{UID: uid, Mutual: r.int64("mutual")})
	}
	return nil
}

func (p *Parser) loadDialogs() error {
	rows, err := p.selectAll("dialogs")
	if err != nil {
		return err
	}
	seen := map[int64]bool{}
	for _, r := range rows {
		did := r.int64("did")
		if did == 0 {
			p.logger.Error("dialogs row with zero did skipped")
			continue
		}
		if seen[did] {
			p.logger.Error("dialogs row with duplicate did skipped", "did", did)
			continue
		}
		seen[did] = true
		p.logger.Info("parsing dialogs entry", "did", did)
		p.dialogs = append(p.dialogs, &Dialog{
			DID:          did,
			Date:         r.int64("date"),
			UnreadCount:  r.int64("unread_count"),
			LastMid:      r.int64("last_mid"),
			InboxMax:     r.int64("inbox_max"),
			OutboxMax:    r.int64("outbox_max"),
			LastMidI:     r.int64("last_mid_i"),
			UnreadCountI: r.int64("unread_count_i"),
			Pts:          r.int64("pts"),
			DateI:        r.int64("date_i"),
			Pinned:       r.int64("pinned"),
			Flags:        r.int64("flags"),
		})
	}
	return nil
}

func (p *Parser) loadEncChats() error {
	rows, err := p.selectAll("enc_chats")
	if err != nil {
		return err
	}
	for _, r := range rows {
		uid := r.int64("uid")
		if uid == 0 {
			p.logger.Error("enc_chats row with zero uid skipped")
			continue
		}
		if _, dup := p.encChatByID[uid]; dup {
			p.logger.Error("enc_chats row with duplicate uid skipped", "uid", uid)
			continue
		}
		p.logger.Info("parsing enc_chats entry", "uid", uid)

		var blob *tblob.Record
		if data := r.bytes("data"); len(data) > 0 {
			blob = p.decodeBlob("enc_chats", uid, data)
		} else {
			p.logger.Error("enc_chats blob is not a byte array, skipping blob", "uid", uid)
		}

		ec := &EncChat{
			UID:        uid,
			User:       r.int64("user"),
			Name:       r.text("name"),
			Blob:       blob,
			G:          r.bytes("g"),
			AuthKey:    r.bytes("authkey"),
			TTL:        r.int64("ttl"),
			Layer:      r.int64("layer"),
			SeqIn:      r.int64("seq_in"),
			SeqOut:     r.int64("seq_out"),
			UseCount:   r.int64("use_count"),
			ExchangeID: r.int64("exchange_id"),
			KeyDate:    r.int64("key_date"),
			FPrint:     r.int64("fprint"),
			FAuthKey:   r.bytes("fauthkey"),
			KHash:      r.bytes("khash"),
			InSeqNo:    r.int64("in_seq_no"),
			AdminID:    r.int64("admin_id"),
			MtprotoSeq: r.int64("mtproto_seq"),
		}

		// Cross-check the blob against the table columns.
		if aid := blob.Int("admin_id"); aid != 0 && aid != ec.AdminID {
			p.logger.Warn("enc_chats admin_id disagrees with blob",
				"uid", uid, "column", ec.AdminID, "blob", aid)
		}
		if pid := blob.Int("participant_id"); pid != 0 && ec.User != ec.AdminID && ec.User != pid {
			p.logger.Warn("enc_chats user disagrees with blob participant_id",
				"uid", uid, "column", ec.User, "blob", pid)
		}

		p.encChats = append(p.encChats, ec)
		p.encChatByID[uid] = ec
	}
	return nil
}

func (p *Parser) loadMedia() error {
	rows, err := p.selectAll("media_v2")
	if err != nil {
		return err
	}
	seen := map[int64]bool{}
	for _, r := range rows {
		mid := r.int64("mid")
		if mid == 0 {
			p.logger.Error("media_v2 row with zero mid skipped")
			continue
		}
		if seen[mid] {
			p.logger.Error("media_v2 row with duplicate mid skipped", "mid", mid)
			continue
		}
		seen[mid] = true
		p.logger.Info("parsing media_v2 entry", "mid", mid)
		p.media = append(p.media, &Media{
			MID:  mid,
			UID:  r.int64("uid"),
			Date: r.int64("date"),
			Type: r.int64("type"),
			Blob: p.decodeBlob("media_v2", mid, r.bytes("data")),
		})
	}
	return nil
}

func (p *Parser) loadMessages() error {
	rows, err := p.selectAll("messages")
	if err != nil {
		return err
	}
	seen := map[int64]bool{}
	for _, r := range rows {
		mid := r.int64("mid")
		if mid == 0 {
			p.logger.Error("messages row with zero mid skipped")
			continue
		}
		if seen[mid] {
			p.logger.Error("messages row with duplicate mid skipped", "mid", mid)
			continue
		}
		seen[mid] = true
		p.logger.Info("parsing messages entry", "mid", mid)

		m := &Message{
			MID:       mid,
			UID:       r.int64("uid"),
			ReadState: r.int64("read_state"),
			SendState: r.int64("send_state"),
			Date:      r.int64("date"),
			Blob:      p.decodeBlob("messages", mid, r.bytes("data")),
			Out:       r.int64("out"),
			TTL:       r.int64("ttl"),
			Media:     r.int64("media"),
			Imp:       r.int64("imp"),
			Mention:   r.int64("mention"),
		}
		if reply := r.bytes("replydata"); len(reply) > 0 {
			m.ReplyBlob = p.decodeBlob("messages", mid, reply)
		}

		// The table date and the blob date should agree within seconds.
		if bd := m.DateFromBlob(); bd != 0 && m.Date != 0 {
			diff := bd - m.Date
			if diff < 0 {
				diff = -diff
			}
			if diff >= 5 {
				p.logger.Warn("message date disagrees with blob",
					"mid", mid, "column", m.Date, "blob", bd)
			}
		}

		p.messages = append(p.messages, m)
	}
	return nil
}

func (p *Parser) loadSentFiles() error {
	rows, err := p.selectAll("sent_files_v2")
	if err != nil {
		return err
	}
	seen := map[string]bool{}
	for _, r := range rows {
		uid := r.text("uid")
		if uid == "" {
			p.logger.Error("sent_files_v2 row with empty uid skipped")
			continue
		}
		if seen[uid] {
			p.logger.Error("sent_files_v2 row with duplicate uid skipped", "uid", uid)
			continue
		}
		seen[uid] = true
		p.logger.Info("parsing sent_files_v2 entry", "uid", uid)
		sf := &SentFile{
			UID:  uid,
			Blob: p.decodeBlob("sent_files_v2", uid, r.bytes("data")),
		}
		// Old schemas have neither type nor parent.
		if r.has("type") {
			sf.Type = r.int64("type")
		}
		if r.has("parent") {
			sf.Parent = r.text("parent")
		}
		p.sentFiles = append(p.sentFiles, sf)
	}
	return nil
}

func (p *Parser) loadUsers() error {
	rows, err := p.selectAll("users")
	if err != nil {
		return err
	}
	selfCount := 0
	for _, r := range rows {
		uid := r.int64("uid")
		if uid == 0 {
			p.logger.Error("users row with zero uid skipped")
			continue
		}
		if _, dup := p.userByID[uid]; dup {
			p.logger.Error("users row with duplicate uid skipped", "uid", uid)
			continue
		}
		p.logger.Info("parsing users entry", "uid", uid)
		u := &User{
			UID:    uid,
			Name:   r.text("name"),
			Status: r.int64("status"),
			Blob:   p.decodeBlob("users", uid, r.bytes("data")),
		}
		if bid := u.Blob.Int("id"); bid != 0 && bid != uid {
			p.logger.Warn("users uid disagrees with blob id",
				"uid", uid, "blob", bid)
		}
		if u.IsSelf() {
			selfCount++
		}
		p.users = append(p.users, u)
		p.userByID[uid] = u
	}
	if selfCount != 1 {
		p.logger.Warn("users table self count is not one", "count", selfCount)
	}
	return nil
}

// loadUserSettings tolerates the table being absent: old databases do
// not have it.
func (p *Parser) loadUserSettings() error {
	rows, err := p.selectAll("user_settings")
	if err != nil {
		p.logger.Error("user_settings table not readable", "error", err)
		return nil
	}
	seen := map[int64]bool{}
	for _, r := range rows {
		uid := r.int64("uid")
		if uid == 0 {
			p.logger.Error("user_settings row with zero uid skipped")
			continue
		}
		if seen[uid] {
			p.logger.Error("user_settings row with duplicate uid skipped", "uid", uid)
			continue
		}
		seen[uid] = true
		p.logger.Info("parsing user_settings entry", "uid", uid)
		p.userSettings = append(p.userSettings, &UserSettings{
			UID:    uid,
			Blob:   p.decodeBlob("user_settings", uid, r.bytes("info")),
			Pinned: r.int64("pinned"),
		})
	}
	return nil
}

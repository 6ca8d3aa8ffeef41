package tdb

import (
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"

	"github.com/RealityNet/teleparser/internal/tblob"
)

// Machine-readable dumps: one table_<name>.json per table, mirroring the
// text dumps with the decoded blob trees kept structured.

type chatJSON struct {
	UID  int64         `json:"uid"`
	Name string        `json:"name"`
	Blob *tblob.Record `json:"blob,omitempty"`
}

type contactJSON struct {
	UID    int64 `json:"uid"`
	Mutual int64 `json:"mutual"`
}

type dialogJSON struct {
	DID          int64  `json:"did"`
	Date         int64  `json:"date"`
	DateISO      string `json:"date_iso,omitempty"`
	UnreadCount  int64  `json:"unread_count"`
	LastMid      int64  `json:"last_mid"`
	InboxMax     int64  `json:"inbox_max"`
	OutboxMax    int64  `json:"outbox_max"`
	LastMidI     int64  `json:"last_mid_i"`
	UnreadCountI int64  `json:"unread_count_i"`
	Pts          int64  `json:"pts"`
	DateI        int64  `json:"date_i"`
	Pinned       int64  `json:"pinned"`
	Flags        int64  `json:"flags"`
}

type encChatJSON struct {
	UID        int64         `json:"uid"`
	User       int64         `json:"user"`
	Name       string        `json:"name"`
	G          string        `json:"g,omitempty"`
	AuthKey    string        `json:"authkey,omitempty"`
	TTL        int64         `json:"ttl"`
	Layer      int64         `json:"layer"`
	SeqIn      int64         `json:"seq_in"`
	SeqOut     int64         `json:"seq_out"`
	UseCount   int64         `json:"use_count"`
	ExchangeID int64         `json:"exchange_id"`
	KeyDate    int64         `json:"key_date"`
	FPrint     int64         `json:"fprint"`
	FAuthKey   string        `json:"fauthkey,omitempty"`
	KHash      string        `json:"khash,omitempty"`
	InSeqNo    int64         `json:"in_seq_no"`
	AdminID    int64         `json:"admin_id"`
	MtprotoSeq int64         `json:"mtproto_seq"`
	Blob       *tblob.Record `json:"blob,omitempty"`
}

type mediaJSON struct {
	MID  int64         `json:"mid"`
	UID  int64         `json:"uid"`
	Date int64         `json:"date"`
	Type int64         `json:"type"`
	Blob *tblob.Record `json:"blob,omitempty"`
}

type messageJSON struct {
	MID       int64         `json:"mid"`
	UID       int64         `json:"uid"`
	ReadState int64         `json:"read_state"`
	SendState int64         `json:"send_state"`
	Date      int64         `json:"date"`
	Out       int64         `json:"out"`
	TTL       int64         `json:"ttl"`
	Media     int64         `json:"media"`
	Imp       int64         `json:"imp"`
	Mention   int64         `json:"mention"`
	Blob      *tblob.Record `json:"blob,omitempty"`
	ReplyBlob *tblob.Record `json:"reply_blob,omitempty"`
}

type sentFileJSON struct {
	UID    string        `json:"uid"`
	Type   int64         `json:"type"`
	Parent string        `json:"parent,omitempty"`
	Blob   *tblob.Record `json:"blob,omitempty"`
}

type userJSON struct {
	UID    int64         `json:"uid"`
	Name   string        `json:"name"`
	Status int64         `json:"status"`
	Blob   *tblob.Record `json:"blob,omitempty"`
}

type userSettingsJSON struct {
	UID    int64         `json:"uid"`
	Pinned int64         `json:"pinned"`
	Blob   *tblob.Record `json:"blob,omitempty"`
}

// WriteJSON writes every table_*.json dump into dir.
func (p *Parser) WriteJSON(dir string) error {
	chats := make([]chatJSON, 0, len(p.chats))
	for _, ch := range p.chats {
		chats = append(chats, chatJSON{UID: ch.UID, Name: ch.Name, Blob: ch.Blob})
	}

	contacts := make([]contactJSON, 0, len(p.contacts))
	for _, c := range p.contacts {
		contacts = append(contacts, contactJSON{UID: c.UID, Mutual: c.Mutual})
	}

	dialogs := make([]dialogJSON, 0, len(p.dialogs))
	for _, d := range p.dialogs {
		dialogs = append(dialogs, dialogJSON{
			DID: d.DID, Date: d.Date, DateISO: toDate(d.Date),
			UnreadCount: d.UnreadCount, LastMid: d.LastMid,
			InboxMax: d.InboxMax, OutboxMax: d.OutboxMax,
			LastMidI: d.LastMidI, UnreadCountI: d.UnreadCountI,
			Pts: d.Pts, DateI: d.DateI, Pinned: d.Pinned, Flags: d.Flags,
		})
	}

	encChats := make([]encChatJSON, 0, len(p.encChats))
	for _, ec := range p.encChats {
		encChats = append(encChats, encChatJSON{
			UID: ec.UID, User: ec.User, Name: ec.Name,
			G: hexOrEmpty(ec.G), AuthKey: hexOrEmpty(ec.AuthKey),
			TTL: ec.TTL, Layer: ec.Layer, SeqIn: ec.SeqIn, SeqOut: ec.SeqOut,
			UseCount: ec.UseCount, ExchangeID: ec.ExchangeID,
			KeyDate: ec.KeyDate, FPrint: ec.FPrint,
			FAuthKey: hexOrEmpty(ec.FAuthKey), KHash: hexOrEmpty(ec.KHash),
			InSeqNo: ec.InSeqNo, AdminID: ec.AdminID, MtprotoSeq: ec.MtprotoSeq,
			Blob: ec.Blob,
		})
	}

	media := make([]mediaJSON, 0, len(p.media))
	for _, m := range p.media {
		media = append(media, mediaJSON{MID: m.MID, UID: m.UID, Date: m.Date, Type: m.Type, Blob: m.Blob})
	}

	messages := make([]messageJSON, 0, len(p.messages))
	for _, m := range p.messages {
		messages = append(messages, messageJSON{
			MID: m.MID, UID: m.UID, ReadState: m.ReadState, SendState: m.SendState,
			Date: m.Date, Out: m.Out, TTL: m.TTL, Media: m.Media,
			Imp: m.Imp, Mention: m.Mention, Blob: m.Blob, ReplyBlob: m.ReplyBlob,
		})
	}

	sentFiles := make([]sentFileJSON, 0, len(p.sentFiles))
	for _, sf := range p.sentFiles {
		sentFiles = append(sentFiles, sentFileJSON{UID: sf.UID, Type: sf.Type, Parent: sf.Parent, Blob: sf.Blob})
	}

	users := make([]userJSON, 0, len(p.users))
	for _, u := range p.users {
		users = append(users, userJSON{UID: u.UID, Name: u.Name, Status: u.Status, Blob: u.Blob})
	}

	settings := make([]userSettingsJSON, 0, len(p.userSettings))
	for _, us := range p.userSettings {
		settings = append(settings, userSettingsJSON{UID: us.UID, Pinned: us.Pinned, Blob: us.Blob})
	}

	files := []struct {
		name string
		v    any
	}{
		{"table_chats.json", chats},
		{"table_contacts.json", contacts},
		{"table_dialogs.json", dialogs},
		{"table_enc_chats.json", encChats},
		{"table_media_v2.json", media},
		{"table_messages.json", messages},
		{"table_sent_files_v2.json", sentFiles},
		{"table_users.json", users},
		{"table_user_settings.json", settings},
	}
	for _, f := range files {
		if err := writeJSONFile(filepath.Join(dir, f.name), f.v); err != nil {
			return fmt.Errorf("writing %s: %w", f.name, err)
		}
	}
	return nil
}

func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

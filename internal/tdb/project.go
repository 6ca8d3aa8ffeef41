package tdb

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/RealityNet/teleparser/internal/tblob"
)

// Projections from decoded blobs to the strings the dumps and the
// timeline use. Everything here tolerates a nil blob: a row whose blob
// failed to decode still gets its table columns projected.

// kv is one key:value pair of an ordered attribute list. Maps would lose
// the rendering order, so the lists stay slices.
type kv struct {
	k string
	v string
}

type kvList []kv

func (l *kvList) add(k, v string) {
	*l = append(*l, kv{k, v})
}

func (l kvList) String() string {
	parts := make([]string, len(l))
	for i, e := range l {
		parts[i] = e.k + ":" + e.v
	}
	return strings.Join(parts, " ")
}

// toDate renders epoch seconds as UTC ISO-8601, or "" for zero.
func toDate(epoch int64) string {
	if epoch == 0 {
		return ""
	}
	return time.Unix(epoch, 0).UTC().Format("2006-01-02T15:04:05")
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}

// sname returns the shape name of a possibly-nil record.
func sname(rec *tblob.Record) string {
	if rec == nil {
		return ""
	}
	return rec.Sname
}

// photoInfo summarizes the photo field of a user or chat blob: the shape
// name plus the small/big file location names.
func photoInfo(blob *tblob.Record) string {
	photo := blob.Sub("photo")
	if photo == nil {
		return ""
	}
	info := photo.Sname
	if small := photo.Sub("photo_small"); small != nil && small.Has("volume_id") {
		info += fmt.Sprintf(" small: %d_%d.jpg", small.Int("volume_id"), small.Int("local_id"))
	}
	if big := photo.Sub("photo_big"); big != nil && big.Has("volume_id") {
		info += fmt.Sprintf(" big: %d_%d.jpg", big.Int("volume_id"), big.Int("local_id"))
	}
	return info
}

// foldDialogID reduces a dialogs.did (or messages.uid) to the peer id it
// encodes: encrypted chat ids live in the high 32 bits, group chats are
// negated, users are verbatim.
func foldDialogID(did int64) int64 {
	abs := did
	if abs < 0 {
		abs = -abs
	}
	if abs > 0xFFFFFFFF {
		return did >> 32
	}
	if did < 0 {
		return -did
	}
	return did
}

// Username returns the flag-gated username, or "".
func (u *User) Username() string {
	if u.Blob.Flag("has_username") {
		return u.Blob.Text("username")
	}
	return ""
}

func (u *User) FirstName() string {
	if u.Blob.Flag("has_first_name") {
		return u.Blob.Text("first_name")
	}
	return ""
}

func (u *User) LastName() string {
	if u.Blob.Flag("has_last_name") {
		return u.Blob.Text("last_name")
	}
	return ""
}

func (u *User) Phone() string {
	if u.Blob.Flag("has_phone") {
		return u.Blob.Text("phone")
	}
	return ""
}

// IsSelf reports whether this is the account owner's own user row.
func (u *User) IsSelf() bool {
	return u.Blob.Flag("is_self")
}

// FullTextID is the one-line identity used by the cross-references in
// the table dumps.
func (u *User) FullTextID() string {
	return fmt.Sprintf("uid: %d nick: %s fullname: %s %s phone: %s",
		u.UID, u.Username(), u.FirstName(), u.LastName(), u.Phone())
}

// DictID is the identity attribute list for the timeline content column.
func (u *User) DictID() kvList {
	var l kvList
	if v := u.Username(); v != "" {
		l.add("username", v)
	}
	if v := u.FirstName(); v != "" {
		l.add("firstname", v)
	}
	if v := u.LastName(); v != "" {
		l.add("lastname", v)
	}
	if v := u.Phone(); v != "" {
		l.add("phone", v)
	}
	return l
}

// ShortestID is the most human-readable identity available: username,
// else full name, else the numeric uid. The owner is marked.
func (u *User) ShortestID() string {
	var sid string
	switch {
	case u.Username() != "":
		sid = u.Username()
	case u.FirstName() != "" && u.LastName() != "":
		sid = u.FirstName() + " " + u.LastName()
	case u.FirstName() != "":
		sid = u.FirstName()
	case u.LastName() != "":
		sid = u.LastName()
	default:
		sid = itoa(u.UID)
	}
	if u.IsSelf() {
		return sid + " (owner)"
	}
	return sid
}

// PhotoInfo summarizes the profile photo, or "".
func (u *User) PhotoInfo() string {
	return photoInfo(u.Blob)
}

// Title returns the chat title from the blob.
func (ch *Chat) Title() string {
	return ch.Blob.Text("title")
}

// DictID is the identity attribute list for the timeline content column.
func (ch *Chat) DictID() kvList {
	l := kvList{{"title", ch.Title()}}
	if ch.Blob.Flag("has_username") {
		l.add("username", ch.Blob.Text("username"))
	}
	return l
}

// ChatType classifies the chat for the timeline: broadcast channels are
// one-to-many, megagroups many-to-many; public means it has a username.
func (ch *Chat) ChatType() string {
	if ch.Blob == nil || !ch.Blob.Has("flags") {
		return ""
	}
	var ct string
	switch {
	case ch.Blob.Flag("broadcast"):
		ct = "1-N"
	case ch.Blob.Flag("megagroup"):
		ct = "N-N"
	default:
		ct = "?-?"
	}
	if ch.Blob.Flag("has_username") {
		ct += " pub"
	} else {
		ct += " prv"
	}
	if ch.Blob.Flag("left") {
		ct += " left"
	}
	return ct
}

// ShortestID is the username when public, else the title, else the uid.
func (ch *Chat) ShortestID() string {
	if ch.Blob.Flag("has_username") {
		if v := ch.Blob.Text("username"); v != "" {
			return v
		}
	}
	if v := ch.Title(); v != "" {
		return v
	}
	return itoa(ch.UID)
}

// CreationDate is the blob's date field as epoch seconds, or 0.
func (ch *Chat) CreationDate() int64 {
	if ch.Blob == nil {
		return 0
	}
	return int64(ch.Blob.Epoch("date"))
}

// PhotoInfo summarizes the chat photo, or "".
func (ch *Chat) PhotoInfo() string {
	return photoInfo(ch.Blob)
}

// DictID is the identity attribute list for the timeline content column.
func (ec *EncChat) DictID() kvList {
	return kvList{
		{"name", ec.Name},
		{"ttl", itoa(ec.TTL)},
		{"seq_in", itoa(ec.SeqIn)},
		{"seq_out", itoa(ec.SeqOut)},
	}
}

// ShortestID is the stored name, else the uid.
func (ec *EncChat) ShortestID() string {
	if ec.Name != "" {
		return ec.Name
	}
	return itoa(ec.UID)
}

// CreationDate is the blob's date field as epoch seconds, or 0.
func (ec *EncChat) CreationDate() int64 {
	if ec.Blob == nil {
		return 0
	}
	return int64(ec.Blob.Epoch("date"))
}

// ParticipantID resolves the other end of the secret chat: the blob's
// participant_id when present, else the user column when it is not the
// admin.
func (ec *EncChat) ParticipantID() int64 {
	if pid := ec.Blob.Int("participant_id"); pid != 0 {
		return pid
	}
	if ec.AdminID != ec.User {
		return ec.User
	}
	return 0
}

// Peer kinds for Message.ToPeer.
const (
	peerUser    = "chat"
	peerChannel = "channel"
)

// ToPeer resolves the to_id peer of the message: the peer id and whether
// it is a user or a channel. Anything else reports kind "".
func (m *Message) ToPeer() (int64, string) {
	to := m.Blob.Sub("to_id")
	if to == nil {
		return 0, ""
	}
	switch to.Sname {
	case "peer_channel":
		return to.Int("channel_id"), peerChannel
	case "peer_user":
		return to.Int("user_id"), peerUser
	case "peer_chat":
		return to.Int("chat_id"), ""
	}
	return 0, ""
}

// normalizeContent strips quoting from message text the way the
// timeline wants it: outer quotes dropped, inner double quotes turned
// into single quotes.
func normalizeContent(s string) string {
	s = strings.Trim(s, `"'`)
	return strings.ReplaceAll(s, `"`, `'`)
}

// Content is the message text normalized for the timeline.
func (m *Message) Content() string {
	if m.Blob == nil || !m.Blob.Has("message") {
		return ""
	}
	return normalizeContent(m.Blob.Text("message"))
}

// DateFromBlob is the wire date of the message, or 0.
func (m *Message) DateFromBlob() int64 {
	if m.Blob == nil {
		return 0
	}
	return int64(m.Blob.Epoch("date"))
}

// DialogAndSequence splits the message key into the dialog it belongs to
// and its sequence inside the dialog. Channel messages fold the channel
// id into the high 32 bits of mid; everything else folds the uid.
func (m *Message) DialogAndSequence() (int64, int64) {
	abs := m.MID
	if abs < 0 {
		abs = -abs
	}
	if abs > 0xFFFFFFFF {
		return (m.MID >> 32) & 0xFFFFFFFF, m.MID & 0xFFFFFFFF
	}
	dialog := foldDialogID(m.UID)
	seq := m.MID
	if seq <= 0 {
		seq = -seq - 210000
	}
	return dialog, seq
}

// ActionInfo returns the service action shape name and its rendered
// fields, or "" when the message carries no action.
func (m *Message) ActionInfo() (string, kvList) {
	action := m.Blob.Sub("action")
	if action == nil {
		return "", nil
	}
	var l kvList
	for _, f := range action.Fields {
		l.add(f.Name, tblob.Render(f.Value))
	}
	return action.Sname, l
}

// MediaSummary condenses the media attachment of a message to one line:
// documents, photos and web pages get their identifying fields, anything
// else its shape name.
func (m *Message) MediaSummary() string {
	media := m.Blob.Sub("media")
	if media == nil {
		return ""
	}

	if doc := media.Sub("document"); doc != nil {
		s := fmt.Sprintf("document id:%d date:%s mime:%s size:%d",
			doc.Int("id"), toDate(int64(doc.Epoch("date"))),
			doc.Text("mime_type"), doc.Int("size"))
		for _, it := range doc.Vec("document_attributes_array") {
			attr, ok := it.(*tblob.Record)
			if ok && attr.Sname == "document_attribute_filename" {
				s += " file_name:" + attr.Text("file_name")
			}
		}
		return s
	}

	if photo := media.Sub("photo"); photo != nil {
		s := fmt.Sprintf("photo id:%d date:%s",
			photo.Int("id"), toDate(int64(photo.Epoch("date"))))
		for _, it := range photo.Vec("photo_size_array") {
			ps, ok := it.(*tblob.Record)
			if !ok {
				continue
			}
			fl := ps.Sub("file_location")
			if fl != nil && fl.Has("volume_id") {
				s += fmt.Sprintf(" %dx%d(%d bytes):%d_%d.jpg",
					ps.Int("w"), ps.Int("h"), ps.Int("size"),
					fl.Int("volume_id"), fl.Int("local_id"))
			}
		}
		return s
	}

	if page := media.Sub("webpage"); page != nil {
		s := fmt.Sprintf("webpage id:%d url:%s", page.Int("id"), page.Text("url"))
		if page.Has("title") {
			s += " title:" + page.Text("title")
		}
		if page.Has("description") {
			s += " description:" + page.Text("description")
		}
		return s
	}

	return media.Sname
}

package tdb

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Timeline event types.
const (
	typeChatCreationDate = "chat_creation_date"
	typeChatLastUpdate   = "chat_last_update"
	typeKeyDate          = "key_date"
	typeUserStatusUpdate = "user_status_update"
)

// timelineHeader is the fixed column set of timeline.csv.
var timelineHeader = []string{
	"timestamp", "source", "id", "type",
	"from", "from_id", "to", "to_id",
	"dialog", "dialog_type",
	"content", "media", "extra",
}

// timelineRow is one timeline.csv row. All columns render as strings;
// content and extra get CSV escaping at render time, media is escaped by
// the producer when it may contain separators.
type timelineRow struct {
	Timestamp  string
	Source     string
	ID         string
	Type       string
	From       string
	FromID     string
	To         string
	ToID       string
	Dialog     string
	DialogType string
	Content    string
	Media      string
	Extra      kvList
}

// escapeCSV wraps a value in double quotes with inner double quotes
// downgraded to single quotes. Empty stays empty, unquoted.
func escapeCSV(s string) string {
	if s == "" {
		return ""
	}
	s = strings.Trim(s, `"'`)
	return `"` + strings.ReplaceAll(s, `"`, `'`) + `"`
}

func (r *timelineRow) csv() string {
	cols := []string{
		r.Timestamp, r.Source, r.ID, r.Type,
		r.From, r.FromID, r.To, r.ToID,
		r.Dialog, r.DialogType,
		escapeCSV(r.Content), r.Media, escapeCSV(r.Extra.String()),
	}
	return strings.Join(cols, ",")
}

// WriteTimeline writes timeline.csv into dir: one chronology-bearing row
// per chat, dialog, encrypted chat, user and message.
func (p *Parser) WriteTimeline(dir string) error {
	f, err := os.Create(filepath.Join(dir, "timeline.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, strings.Join(timelineHeader, ","))
	for _, rows := range [][]*timelineRow{
		p.chatRows(),
		p.dialogRows(),
		p.encChatRows(),
		p.userRows(),
		p.messageRows(),
	} {
		for _, r := range rows {
			fmt.Fprintln(w, r.csv())
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}

func (p *Parser) chatRows() []*timelineRow {
	var out []*timelineRow
	for _, ch := range p.chats {
		r := &timelineRow{
			Source:     "chats",
			ID:         itoa(ch.UID),
			Dialog:     ch.ShortestID(),
			DialogType: ch.ChatType(),
			Content:    sname(ch.Blob) + " " + ch.DictID().String(),
			Media:      ch.PhotoInfo(),
		}
		if cd := ch.CreationDate(); cd != 0 {
			r.Timestamp = toDate(cd)
			r.Type = typeChatCreationDate
		} else {
			r.Type = sname(ch.Blob)
		}
		var df kvList
		for _, flag := range []string{"creator", "left", "broadcast", "megagroup"} {
			if ch.Blob.Flag(flag) {
				df.add(flag, "true")
			}
		}
		if ch.Blob.Flag("has_participants_count") {
			df.add("members", itoa(ch.Blob.Int("participants_count")))
		}
		if len(df) > 0 {
			r.Content += " " + df.String()
		}
		out = append(out, r)
	}
	return out
}

func (p *Parser) dialogRows() []*timelineRow {
	var out []*timelineRow
	for _, d := range p.dialogs {
		r := &timelineRow{
			Source:    "dialogs",
			ID:        itoa(d.DID),
			Timestamp: toDate(d.Date),
			Type:      typeChatLastUpdate,
			Content: fmt.Sprintf(
				"dialog unread_count:%d inbox_max:%d outbox_max:%d pts:%d last_mid:%d",
				d.UnreadCount, d.InboxMax, d.OutboxMax, d.Pts, d.LastMid),
		}
		cid := foldDialogID(d.DID)
		if ch, ok := p.chatByID[cid]; ok {
			r.Dialog = ch.ShortestID()
			r.DialogType = ch.ChatType()
		} else if ec, ok := p.encChatByID[cid]; ok {
			r.Dialog = ec.ShortestID()
			r.DialogType = "encrypted 1-1"
		} else {
			r.DialogType = "1-1"
		}
		out = append(out, r)
	}
	return out
}

func (p *Parser) encChatRows() []*timelineRow {
	var out []*timelineRow
	for _, ec := range p.encChats {
		r := &timelineRow{
			Source:     "enc_chats",
			ID:         itoa(ec.UID),
			Dialog:     ec.ShortestID(),
			DialogType: "encrypted 1-1",
			FromID:     itoa(ec.AdminID),
			Content:    sname(ec.Blob) + " " + ec.DictID().String(),
		}
		if admin, ok := p.userByID[ec.AdminID]; ok {
			r.From = admin.ShortestID()
		}
		if pid := ec.ParticipantID(); pid != 0 {
			r.ToID = itoa(pid)
			if peer, ok := p.userByID[pid]; ok {
				r.To = peer.ShortestID()
			}
		} else {
			p.logger.Warn("encrypted chat has no valid participant_id", "uid", ec.UID)
		}
		if cd := ec.CreationDate(); cd != 0 {
			r.Timestamp = toDate(cd)
			r.Type = typeChatCreationDate
		}
		out = append(out, r)

		if ec.KeyDate != 0 {
			keyed := *r
			keyed.Timestamp = toDate(ec.KeyDate)
			keyed.Type = typeKeyDate
			out = append(out, &keyed)
		}
	}
	return out
}

func (p *Parser) userRows() []*timelineRow {
	var out []*timelineRow
	for _, u := range p.users {
		r := &timelineRow{
			Source:  "users",
			ID:      itoa(u.UID),
			From:    u.ShortestID(),
			FromID:  itoa(u.UID),
			Content: u.DictID().String(),
			Media:   u.PhotoInfo(),
		}
		if u.Status > 0 {
			r.Type = typeUserStatusUpdate
			r.Timestamp = toDate(u.Status)
		}
		var ui kvList
		if u.Blob.Flag("has_status") {
			ui.add("status", sname(u.Blob.Sub("status")))
		}
		if u.Blob.Flag("is_bot") {
			ui.add("bot", "true")
		}
		if u.Blob.Flag("is_mutual_contact") {
			ui.add("mutual_contact", "true")
		} else if u.Blob.Flag("is_contact") {
			ui.add("contact", "true")
		}
		if len(ui) > 0 {
			r.Content += " " + ui.String()
		}
		out = append(out, r)
	}
	return out
}

func (p *Parser) messageRows() []*timelineRow {
	var out []*timelineRow
	for _, m := range p.messages {
		r := &timelineRow{
			Source:    "messages",
			ID:        itoa(m.MID),
			Type:      sname(m.Blob),
			Timestamp: toDate(m.DateFromBlob()),
		}

		if fid := m.Blob.Int("from_id"); fid != 0 {
			r.FromID = itoa(fid)
			if u, ok := p.userByID[fid]; ok {
				r.From = u.ShortestID()
			} else {
				r.From = itoa(fid)
			}
		}

		dialog, seq := m.DialogAndSequence()
		r.Extra.add("dialog", itoa(dialog))
		r.Extra.add("sequence", itoa(seq))
		if ch, ok := p.chatByID[dialog]; ok {
			r.Dialog = ch.ShortestID()
			r.DialogType = ch.ChatType()
		} else if ec, ok := p.encChatByID[dialog]; ok {
			r.Dialog = ec.ShortestID()
			r.DialogType = "encrypted 1-1"
		} else {
			r.DialogType = "1-1"
		}

		toID, kind := m.ToPeer()
		if toID != 0 {
			r.ToID = itoa(toID)
		}
		switch kind {
		case peerUser:
			if u, ok := p.userByID[toID]; ok {
				r.To = u.ShortestID()
			}
		case peerChannel:
			if toID != dialog {
				p.logger.Warn("channel message dialog disagrees with to_id",
					"mid", m.MID, "dialog", dialog, "to_id", toID)
			}
			if ch, ok := p.chatByID[toID]; ok {
				r.To = ch.ShortestID()
			}
		default:
			p.logger.Error("message with unmanaged to_id", "mid", m.MID)
			if toID != 0 {
				r.To = itoa(toID)
			}
		}

		if action, fields := m.ActionInfo(); action != "" {
			r.Extra = append(r.Extra, fields...)
			r.Content = action
		} else {
			r.Content = m.Content()
		}

		if m.ReplyBlob != nil {
			replied := &Message{Blob: m.ReplyBlob}
			r.Content += fmt.Sprintf(" [IS REPLY TO MSG ID %d %s]\n%s",
				m.ReplyBlob.Int("id"),
				toDate(replied.DateFromBlob()),
				replied.Content())
		}

		if fwd := m.Blob.Sub("fwd_from"); fwd != nil {
			r.Content += fmt.Sprintf(" [FORWARDED OF MSG BY %d %s]",
				fwd.Int("from_id"), toDate(int64(fwd.Epoch("date"))))
		}

		if m.Blob.Has("views") {
			r.Extra.add("views", itoa(m.Blob.Int("views")))
		}

		if media := m.MediaSummary(); media != "" {
			r.Media = escapeCSV(media)
		}

		out = append(out, r)
	}
	return out
}

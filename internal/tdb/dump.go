package tdb

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/RealityNet/teleparser/internal/tblob"
)

// Per-table text dumps: one table_<name>.txt file per table, each row
// separated by a dashed rule, blob rows followed by the decoded tree.

var dashes = "--------------------------------------------------------------------------------"

func blobText(rec *tblob.Record) string {
	if rec == nil {
		return "<blob not decoded>"
	}
	return rec.String()
}

func hexOrEmpty(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return hex.EncodeToString(b)
}

// WriteTables writes every table_*.txt dump into dir.
func (p *Parser) WriteTables(dir string) error {
	writers := []struct {
		name  string
		write func(*bufio.Writer)
	}{
		{"table_chats.txt", p.dumpChats},
		{"table_contacts.txt", p.dumpContacts},
		{"table_dialogs.txt", p.dumpDialogs},
		{"table_enc_chats.txt", p.dumpEncChats},
		{"table_media_v2.txt", p.dumpMedia},
		{"table_messages.txt", p.dumpMessages},
		{"table_sent_files_v2.txt", p.dumpSentFiles},
		{"table_users.txt", p.dumpUsers},
		{"table_user_settings.txt", p.dumpUserSettings},
	}
	for _, t := range writers {
		if err := writeFileWith(filepath.Join(dir, t.name), t.write); err != nil {
			return fmt.Errorf("writing %s: %w", t.name, err)
		}
	}
	return nil
}

func writeFileWith(path string, write func(*bufio.Writer)) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	write(w)
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// userRef is the cross-reference line pointing a row's uid into the
// users table.
func (p *Parser) userRef(uid int64) string {
	if u, ok := p.userByID[uid]; ok {
		return fmt.Sprintf("From [users] -> %s\n", u.FullTextID())
	}
	return "User uid missing in [users]\n"
}

func (p *Parser) dumpChats(w *bufio.Writer) {
	for _, ch := range p.chats {
		w.WriteString(dashes)
		fmt.Fprintf(w, "\nuid: %d name: %s\n\n", ch.UID, ch.Name)
		fmt.Fprintf(w, "%s\n\n", blobText(ch.Blob))
	}
}

func (p *Parser) dumpContacts(w *bufio.Writer) {
	for _, c := range p.contacts {
		w.WriteString(dashes)
		fmt.Fprintf(w, "\nuid: %d mutual: %d\n", c.UID, c.Mutual)
		w.WriteString(p.userRef(c.UID))
	}
}

func (p *Parser) dumpDialogs(w *bufio.Writer) {
	for _, d := range p.dialogs {
		w.WriteString(dashes)
		fmt.Fprintf(w,
			"\ndid: %d, date: %d [%s]\n"+
				"unread_count: %d, last_mid: %d, inbox_max: %d, outbox_max: %d, last_mid_i: %d\n"+
				"unread_count_i: %d, pts: %d, date_i: %d, pinned: %d, flags: %d\n\n",
			d.DID, d.Date, toDate(d.Date),
			d.UnreadCount, d.LastMid, d.InboxMax, d.OutboxMax, d.LastMidI,
			d.UnreadCountI, d.Pts, d.DateI, d.Pinned, d.Flags)
	}
}

func (p *Parser) dumpEncChats(w *bufio.Writer) {
	for _, ec := range p.encChats {
		w.WriteString(dashes)
		fmt.Fprintf(w,
			"\nuid: %d user: %d name: %s\n\ng: %s\nauthkey: %s\n"+
				"ttl: %d layer: %d seq_in: %d seq_out: %d use_count: %d\n"+
				"exchange_id: %d key_date: %d fprint: %d\n"+
				"fauthkey: %s\nkhash: %s\nin_seq_no: %d admin_id: %d mtproto_seq: %d\n",
			ec.UID, ec.User, ec.Name, hexOrEmpty(ec.G), hexOrEmpty(ec.AuthKey),
			ec.TTL, ec.Layer, ec.SeqIn, ec.SeqOut, ec.UseCount,
			ec.ExchangeID, ec.KeyDate, ec.FPrint,
			hexOrEmpty(ec.FAuthKey), hexOrEmpty(ec.KHash), ec.InSeqNo, ec.AdminID, ec.MtprotoSeq)
		fmt.Fprintf(w, "\n%s\n\n", blobText(ec.Blob))
	}
}

func (p *Parser) dumpMedia(w *bufio.Writer) {
	for _, m := range p.media {
		w.WriteString(dashes)
		fmt.Fprintf(w, "\nmid: %d uid: %d date: %d [%s] type: %d\n",
			m.MID, m.UID, m.Date, toDate(m.Date), m.Type)
		w.WriteString(p.userRef(m.UID))
		fmt.Fprintf(w, "\n%s\n\n", blobText(m.Blob))
	}
}

func (p *Parser) dumpMessages(w *bufio.Writer) {
	for _, m := range p.messages {
		w.WriteString(dashes)
		fmt.Fprintf(w,
			"\nmid: %d uid: %d read_state: %d send_state: %d date: %d out: %d ttl: %d media: %d imp: %d mention: %d\n",
			m.MID, m.UID, m.ReadState, m.SendState, m.Date, m.Out, m.TTL,
			m.Media, m.Imp, m.Mention)
		w.WriteString(p.userRef(m.UID))
		fmt.Fprintf(w, "\n%s\n", blobText(m.Blob))
		if m.ReplyBlob != nil {
			fmt.Fprintf(w, "\n----- IS REPLY  TO ---\n\n%s\n", blobText(m.ReplyBlob))
		}
		w.WriteString("\n")
	}
}

func (p *Parser) dumpSentFiles(w *bufio.Writer) {
	for _, sf := range p.sentFiles {
		w.WriteString(dashes)
		fmt.Fprintf(w, "\nuid: %s type: %d parent: %s\n\n", sf.UID, sf.Type, sf.Parent)
		fmt.Fprintf(w, "%s\n\n", blobText(sf.Blob))
	}
}

func (p *Parser) dumpUsers(w *bufio.Writer) {
	for _, u := range p.users {
		w.WriteString(dashes)
		// A positive status is the epoch of the last status update.
		status := itoa(u.Status)
		if u.Status > 0 {
			status = toDate(u.Status)
		}
		fmt.Fprintf(w, "\nuid: %d name: %s status: %s\n", u.UID, u.Name, status)
		fmt.Fprintf(w, "%s\n\n", u.FullTextID())
		fmt.Fprintf(w, "%s\n\n", blobText(u.Blob))
	}
}

func (p *Parser) dumpUserSettings(w *bufio.Writer) {
	for _, us := range p.userSettings {
		w.WriteString(dashes)
		fmt.Fprintf(w, "\nuid: %d pinned: %d\n", us.UID, us.Pinned)
		w.WriteString(p.userRef(us.UID))
		fmt.Fprintf(w, "\n%s\n\n", blobText(us.Blob))
	}
}

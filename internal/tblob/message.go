package tblob

// Message shapes. The cache4 client appends local bookkeeping (attach
// paths, params) after the wire fields, so message shapes keep a trailing
// catch-all instead of treating leftover bytes as a length mismatch.

var messageFlags = []FlagBit{
	{"unread", 1 << 0},
	{"out", 1 << 1},
	{"has_fwd_from", 1 << 2},
	{"has_reply_to_msg_id", 1 << 3},
	{"mentioned", 1 << 4},
	{"media_unread", 1 << 5},
	{"has_reply_markup", 1 << 6},
	{"has_entities", 1 << 7},
	{"has_from_id", 1 << 8},
	{"has_media", 1 << 9},
	{"has_views", 1 << 10},
	{"has_via_bot_id", 1 << 11},
	{"silent", 1 << 13},
	{"post", 1 << 14},
	{"has_edit_date", 1 << 15},
	{"has_post_author", 1 << 16},
	{"has_grouped_id", 1 << 17},
	{"from_scheduled", 1 << 18},
	{"legacy", 1 << 19},
	{"edit_hide", 1 << 21},
	{"has_restriction_reason", 1 << 22},
}

func parseMessageEmpty(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_empty", 0x83e5de54)
	rec.add("id", Int(c.int32()))
	return done(rec, c)
}

// messageHead decodes the run shared by the flag-gated message flavors up
// to and including the message text.
func messageHead(d *Decoder, c *cursor, rec *Record) Flags {
	fl := readFlags(c, messageFlags)
	rec.add("flags", fl)
	rec.add("id", Int(c.int32()))
	if fl.Has("has_from_id") {
		rec.add("from_id", Int(c.int32()))
	}
	rec.add("to_id", d.object(c))
	if fl.Has("has_fwd_from") {
		rec.add("fwd_from", d.object(c))
	}
	if fl.Has("has_via_bot_id") {
		rec.add("via_bot_id", Int(c.int32()))
	}
	if fl.Has("has_reply_to_msg_id") {
		rec.add("reply_to_msg_id", Int(c.int32()))
	}
	rec.add("date", c.timestamp())
	rec.add("message", c.tstring())
	return fl
}

func messageTail(d *Decoder, c *cursor, rec *Record, fl Flags) {
	if fl.Has("has_media") {
		rec.add("media", d.object(c))
	}
	if fl.Has("has_reply_markup") {
		rec.add("reply_markup", d.object(c))
	}
	if fl.Has("has_entities") {
		rec.add("entities", d.vector(c))
	}
	if fl.Has("has_views") {
		rec.add("views", Int(c.int32()))
	}
	if fl.Has("has_edit_date") {
		rec.add("edit_date", c.timestamp())
	}
}

func parseMessage(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message", 0x44f9b43d)
	fl := messageHead(d, c, rec)
	messageTail(d, c, rec, fl)
	if fl.Has("has_post_author") {
		rec.add("post_author", c.tstring())
	}
	if fl.Has("has_grouped_id") {
		rec.add("grouped_id", Long(c.int64()))
	}
	if fl.Has("has_restriction_reason") {
		rec.add("restriction_reason", d.vector(c))
	}
	rec.Trailer = c.rest()
	return done(rec, c)
}

func parseMessageLayer72(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_layer72", 0x90dddc11)
	fl := messageHead(d, c, rec)
	messageTail(d, c, rec, fl)
	if fl.Has("has_post_author") {
		rec.add("post_author", c.tstring())
	}
	if fl.Has("has_grouped_id") {
		rec.add("grouped_id", Long(c.int64()))
	}
	rec.Trailer = c.rest()
	return done(rec, c)
}

func parseMessageLayer68(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_layer68", 0xc09be45f)
	fl := messageHead(d, c, rec)
	messageTail(d, c, rec, fl)
	rec.Trailer = c.rest()
	return done(rec, c)
}

func parseMessageService(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_service", 0x9e19a1f6)
	fl := readFlags(c, messageFlags)
	rec.add("flags", fl)
	rec.add("id", Int(c.int32()))
	if fl.Has("has_from_id") {
		rec.add("from_id", Int(c.int32()))
	}
	rec.add("to_id", d.object(c))
	if fl.Has("has_reply_to_msg_id") {
		rec.add("reply_to_msg_id", Int(c.int32()))
	}
	rec.add("date", c.timestamp())
	rec.add("action", d.object(c))
	rec.Trailer = c.rest()
	return done(rec, c)
}

func parseMessageServiceOld(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_service_old", 0x9f8d60bb)
	rec.add("id", Int(c.int32()))
	rec.add("from_id", Int(c.int32()))
	rec.add("to_id", d.object(c))
	rec.add("out", c.tbool())
	rec.add("unread", c.tbool())
	rec.add("date", c.timestamp())
	rec.add("action", d.object(c))
	rec.Trailer = c.rest()
	return done(rec, c)
}

// deriveMessageFromID backfills from_id for shapes where the wire omits
// it: channel posts carry the author as the (sign-flipped) channel peer,
// and an incoming 1-1 message is authored by its peer user.
func deriveMessageFromID(rec *Record) {
	if rec.Has("from_id") {
		return
	}
	to := rec.Sub("to_id")
	if to == nil {
		return
	}
	switch to.Sname {
	case "peer_channel":
		rec.add("from_id", Int(-int32(to.Int("channel_id"))))
	case "peer_user":
		if !rec.Flag("out") {
			rec.add("from_id", Int(int32(to.Int("user_id"))))
		}
	}
}

var fwdHeaderFlags = []FlagBit{
	{"has_from_id", 1 << 0},
	{"has_channel_id", 1 << 1},
	{"has_channel_post", 1 << 2},
	{"has_post_author", 1 << 3},
	{"has_saved_from", 1 << 4},
	{"has_from_name", 1 << 5},
	{"has_psa_type", 1 << 6},
}

func parseMessageFwdHeaderLayer97(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_fwd_header_layer97", 0x559ebe6d)
	fl := readFlags(c, fwdHeaderFlags)
	rec.add("flags", fl)
	if fl.Has("has_from_id") {
		rec.add("from_id", Int(c.int32()))
	}
	rec.add("date", c.timestamp())
	if fl.Has("has_channel_id") {
		rec.add("channel_id", Int(c.int32()))
	}
	if fl.Has("has_channel_post") {
		rec.add("channel_post", Int(c.int32()))
	}
	if fl.Has("has_post_author") {
		rec.add("post_author", c.tstring())
	}
	if fl.Has("has_saved_from") {
		rec.add("saved_from_peer", d.object(c))
		rec.add("saved_from_msg_id", Int(c.int32()))
	}
	return done(rec, c)
}

func parseMessageFwdHeader(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_fwd_header", 0xec338270)
	fl := readFlags(c, fwdHeaderFlags)
	rec.add("flags", fl)
	if fl.Has("has_from_id") {
		rec.add("from_id", Int(c.int32()))
	}
	if fl.Has("has_from_name") {
		rec.add("from_name", c.tstring())
	}
	rec.add("date", c.timestamp())
	if fl.Has("has_channel_id") {
		rec.add("channel_id", Int(c.int32()))
	}
	if fl.Has("has_channel_post") {
		rec.add("channel_post", Int(c.int32()))
	}
	if fl.Has("has_post_author") {
		rec.add("post_author", c.tstring())
	}
	if fl.Has("has_saved_from") {
		rec.add("saved_from_peer", d.object(c))
		rec.add("saved_from_msg_id", Int(c.int32()))
	}
	if fl.Has("has_psa_type") {
		rec.add("psa_type", c.tstring())
	}
	return done(rec, c)
}

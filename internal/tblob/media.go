package tblob

// message_media shapes. The photo/document flavors went through a
// captioned era (the caption string later moved onto the message itself)
// and grew self-destruct timers.

var mediaPhotoFlags = []FlagBit{
	{"has_photo", 1 << 0},
	{"has_caption", 1 << 1},
	{"has_ttl", 1 << 2},
}

var mediaDocumentFlags = []FlagBit{
	{"has_document", 1 << 0},
	{"has_caption", 1 << 1},
	{"has_ttl", 1 << 2},
}

func parseMessageMediaEmpty(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_media_empty", 0x3ded6320)
	return done(rec, c)
}

func parseMessageMediaPhotoOld(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_media_photo_old", 0xc8c45a2a)
	rec.add("photo", d.object(c))
	return done(rec, c)
}

func parseMessageMediaPhotoLayer74(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_media_photo_layer74", 0xb5223b0f)
	fl := readFlags(c, mediaPhotoFlags)
	rec.add("flags", fl)
	if fl.Has("has_photo") {
		rec.add("photo", d.object(c))
	}
	if fl.Has("has_caption") {
		rec.add("caption", c.tstring())
	}
	if fl.Has("has_ttl") {
		rec.add("ttl_seconds", Int(c.int32()))
	}
	return done(rec, c)
}

func parseMessageMediaPhoto(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_media_photo", 0x695150d7)
	fl := readFlags(c, mediaPhotoFlags)
	rec.add("flags", fl)
	if fl.Has("has_photo") {
		rec.add("photo", d.object(c))
	}
	if fl.Has("has_ttl") {
		rec.add("ttl_seconds", Int(c.int32()))
	}
	return done(rec, c)
}

func parseMessageMediaDocumentOld(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_media_document_old", 0x2fda2204)
	rec.add("document", d.object(c))
	return done(rec, c)
}

func parseMessageMediaDocumentLayer74(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_media_document_layer74", 0x7c4414d3)
	fl := readFlags(c, mediaDocumentFlags)
	rec.add("flags", fl)
	if fl.Has("has_document") {
		rec.add("document", d.object(c))
	}
	if fl.Has("has_caption") {
		rec.add("caption", c.tstring())
	}
	if fl.Has("has_ttl") {
		rec.add("ttl_seconds", Int(c.int32()))
	}
	return done(rec, c)
}

func parseMessageMediaDocument(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_media_document", 0x9cb070d7)
	fl := readFlags(c, mediaDocumentFlags)
	rec.add("flags", fl)
	if fl.Has("has_document") {
		rec.add("document", d.object(c))
	}
	if fl.Has("has_ttl") {
		rec.add("ttl_seconds", Int(c.int32()))
	}
	return done(rec, c)
}

func parseMessageMediaGeo(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_media_geo", 0x56e0d474)
	rec.add("geo", d.object(c))
	return done(rec, c)
}

func parseMessageMediaGeoLive(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_media_geo_live", 0x7c3c2609)
	rec.add("geo", d.object(c))
	rec.add("period", Int(c.int32()))
	return done(rec, c)
}

func parseMessageMediaContactLayer81(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_media_contact_layer81", 0x5e7d2f39)
	rec.add("phone_number", c.tstring())
	rec.add("first_name", c.tstring())
	rec.add("last_name", c.tstring())
	rec.add("user_id", Int(c.int32()))
	return done(rec, c)
}

func parseMessageMediaContact(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_media_contact", 0xcbc24bcc)
	rec.add("phone_number", c.tstring())
	rec.add("first_name", c.tstring())
	rec.add("last_name", c.tstring())
	rec.add("vcard", c.tstring())
	rec.add("user_id", Int(c.int32()))
	return done(rec, c)
}

func parseMessageMediaWebPage(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_media_web_page", 0xa32dd600)
	rec.add("webpage", d.object(c))
	return done(rec, c)
}

func parseMessageMediaUnsupported(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_media_unsupported", 0x9f84f49e)
	return done(rec, c)
}

func parseMessageMediaVenueLayer71(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_media_venue_layer71", 0x7912b71f)
	rec.add("geo", d.object(c))
	rec.add("title", c.tstring())
	rec.add("address", c.tstring())
	rec.add("provider", c.tstring())
	rec.add("venue_id", c.tstring())
	return done(rec, c)
}

func parseMessageMediaVenue(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_media_venue", 0x2ec0533f)
	rec.add("geo", d.object(c))
	rec.add("title", c.tstring())
	rec.add("address", c.tstring())
	rec.add("provider", c.tstring())
	rec.add("venue_id", c.tstring())
	rec.add("venue_type", c.tstring())
	return done(rec, c)
}

func parseMessageMediaGame(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_media_game", 0xfdb19008)
	rec.add("game", d.object(c))
	return done(rec, c)
}

var mediaInvoiceFlags = []FlagBit{
	{"has_photo", 1 << 0},
	{"shipping_address_requested", 1 << 1},
	{"has_receipt_msg_id", 1 << 2},
	{"test", 1 << 3},
}

func parseMessageMediaInvoice(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_media_invoice", 0x84551347)
	fl := readFlags(c, mediaInvoiceFlags)
	rec.add("flags", fl)
	rec.add("title", c.tstring())
	rec.add("description", c.tstring())
	if fl.Has("has_photo") {
		rec.add("photo", d.object(c))
	}
	if fl.Has("has_receipt_msg_id") {
		rec.add("receipt_msg_id", Int(c.int32()))
	}
	rec.add("currency", c.tstring())
	rec.add("total_amount", Long(c.int64()))
	rec.add("start_param", c.tstring())
	return done(rec, c)
}

func parseMessageMediaPoll(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_media_poll", 0x4bd6e798)
	rec.add("poll", d.object(c))
	rec.add("results", d.object(c))
	return done(rec, c)
}

func parseMessageMediaDice(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_media_dice", 0x3f7ee58b)
	rec.add("value", Int(c.int32()))
	rec.add("emoticon", c.tstring())
	return done(rec, c)
}

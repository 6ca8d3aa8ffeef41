package tblob

// Web page previews and remote web documents.

var webPageFlags = []FlagBit{
	{"has_type", 1 << 0},
	{"has_site_name", 1 << 1},
	{"has_title", 1 << 2},
	{"has_description", 1 << 3},
	{"has_photo", 1 << 4},
	{"has_embed", 1 << 5},
	{"has_embed_size", 1 << 6},
	{"has_duration", 1 << 7},
	{"has_author", 1 << 8},
	{"has_document", 1 << 9},
	{"has_cached_page", 1 << 10},
}

func parseWebPageEmpty(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "web_page_empty", 0xeb1477e8)
	rec.add("id", Long(c.int64()))
	return done(rec, c)
}

func parseWebPagePending(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "web_page_pending", 0xc586da1c)
	rec.add("id", Long(c.int64()))
	rec.add("date", c.timestamp())
	return done(rec, c)
}

func parseWebPage(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "web_page", 0x5f07b4bc)
	fl := readFlags(c, webPageFlags)
	rec.add("flags", fl)
	rec.add("id", Long(c.int64()))
	rec.add("url", c.tstring())
	rec.add("display_url", c.tstring())
	rec.add("hash", Int(c.int32()))
	if fl.Has("has_type") {
		rec.add("type", c.tstring())
	}
	if fl.Has("has_site_name") {
		rec.add("site_name", c.tstring())
	}
	if fl.Has("has_title") {
		rec.add("title", c.tstring())
	}
	if fl.Has("has_description") {
		rec.add("description", c.tstring())
	}
	if fl.Has("has_photo") {
		rec.add("photo", d.object(c))
	}
	if fl.Has("has_embed") {
		rec.add("embed_url", c.tstring())
		rec.add("embed_type", c.tstring())
	}
	if fl.Has("has_embed_size") {
		rec.add("embed_width", Int(c.int32()))
		rec.add("embed_height", Int(c.int32()))
	}
	if fl.Has("has_duration") {
		rec.add("duration", Int(c.int32()))
	}
	if fl.Has("has_author") {
		rec.add("author", c.tstring())
	}
	if fl.Has("has_document") {
		rec.add("document", d.object(c))
	}
	if fl.Has("has_cached_page") {
		rec.add("cached_page", d.object(c))
	}
	return done(rec, c)
}

func parseWebPageNotModified(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "web_page_not_modified", 0x85849473)
	return done(rec, c)
}

func parseWebDocument(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "web_document", 0x1c570ed1)
	rec.add("url", c.tstring())
	rec.add("access_hash", Long(c.int64()))
	rec.add("size", Int(c.int32()))
	rec.add("mime_type", c.tstring())
	rec.add("attributes", d.vector(c))
	return done(rec, c)
}

func parseWebDocumentNoProxy(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "web_document_no_proxy", 0xf9c8bcc6)
	rec.add("url", c.tstring())
	rec.add("size", Int(c.int32()))
	rec.add("mime_type", c.tstring())
	rec.add("attributes", d.vector(c))
	return done(rec, c)
}

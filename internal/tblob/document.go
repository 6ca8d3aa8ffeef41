package tblob

// Document shapes and their attribute records. A document embeds an
// attribute vector whose elements are tag-dispatched; the sticker
// attribute in turn embeds an input_sticker_set reference.

var documentFlags = []FlagBit{
	{"has_thumbs", 1 << 0},
	{"has_video_thumbs", 1 << 1},
}

func parseDocumentEmpty(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "document_empty", 0x36f8c871)
	rec.add("id", Long(c.int64()))
	return done(rec, c)
}

func parseDocumentOld(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "document_old", 0x9efc6326)
	rec.add("id", Long(c.int64()))
	rec.add("access_hash", Long(c.int64()))
	rec.add("user_id", Int(c.int32()))
	rec.add("date", c.timestamp())
	rec.add("file_name", c.tstring())
	rec.add("mime_type", c.tstring())
	rec.add("size", Int(c.int32()))
	rec.add("thumb", d.object(c))
	rec.add("dc_id", Int(c.int32()))
	return done(rec, c)
}

func parseDocumentLayer82(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "document_layer82", 0x87232bc7)
	rec.add("id", Long(c.int64()))
	rec.add("access_hash", Long(c.int64()))
	rec.add("date", c.timestamp())
	rec.add("mime_type", c.tstring())
	rec.add("size", Int(c.int32()))
	rec.add("thumb", d.object(c))
	rec.add("dc_id", Int(c.int32()))
	rec.add("document_attributes_array", d.vector(c))
	return done(rec, c)
}

func parseDocumentLayer92(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "document_layer92", 0x59534e4c)
	rec.add("id", Long(c.int64()))
	rec.add("access_hash", Long(c.int64()))
	rec.add("file_reference", c.tbytes())
	rec.add("date", c.timestamp())
	rec.add("mime_type", c.tstring())
	rec.add("size", Int(c.int32()))
	rec.add("thumb", d.object(c))
	rec.add("dc_id", Int(c.int32()))
	rec.add("document_attributes_array", d.vector(c))
	return done(rec, c)
}

func parseDocumentLayer113(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "document_layer113", 0x9ba29cc1)
	fl := readFlags(c, documentFlags)
	rec.add("flags", fl)
	rec.add("id", Long(c.int64()))
	rec.add("access_hash", Long(c.int64()))
	rec.add("file_reference", c.tbytes())
	rec.add("date", c.timestamp())
	rec.add("mime_type", c.tstring())
	rec.add("size", Int(c.int32()))
	if fl.Has("has_thumbs") {
		rec.add("thumbs", d.vector(c))
	}
	rec.add("dc_id", Int(c.int32()))
	rec.add("document_attributes_array", d.vector(c))
	return done(rec, c)
}

func parseDocument(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "document", 0x1e87342b)
	fl := readFlags(c, documentFlags)
	rec.add("flags", fl)
	rec.add("id", Long(c.int64()))
	rec.add("access_hash", Long(c.int64()))
	rec.add("file_reference", c.tbytes())
	rec.add("date", c.timestamp())
	rec.add("mime_type", c.tstring())
	rec.add("size", Int(c.int32()))
	if fl.Has("has_thumbs") {
		rec.add("thumbs", d.vector(c))
	}
	if fl.Has("has_video_thumbs") {
		rec.add("video_thumbs", d.vector(c))
	}
	rec.add("dc_id", Int(c.int32()))
	rec.add("document_attributes_array", d.vector(c))
	return done(rec, c)
}

func parseDocumentAttributeImageSize(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "document_attribute_image_size", 0x6c37c15c)
	rec.add("w", Int(c.int32()))
	rec.add("h", Int(c.int32()))
	return done(rec, c)
}

func parseDocumentAttributeAnimated(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "document_attribute_animated", 0x11b58939)
	return done(rec, c)
}

var stickerAttributeFlags = []FlagBit{
	{"has_mask_coords", 1 << 0},
	{"mask", 1 << 1},
}

func parseDocumentAttributeSticker(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "document_attribute_sticker", 0x6319d612)
	fl := readFlags(c, stickerAttributeFlags)
	rec.add("flags", fl)
	rec.add("alt", c.tstring())
	rec.add("stickerset", d.object(c))
	if fl.Has("has_mask_coords") {
		rec.add("mask_coords", d.object(c))
	}
	return done(rec, c)
}

func parseDocumentAttributeStickerLayer55(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "document_attribute_sticker_layer55", 0x3a556302)
	rec.add("alt", c.tstring())
	rec.add("stickerset", d.object(c))
	return done(rec, c)
}

var videoAttributeFlags = []FlagBit{
	{"round_message", 1 << 0},
	{"supports_streaming", 1 << 1},
}

func parseDocumentAttributeVideo(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "document_attribute_video", 0x0ef02ce6)
	rec.add("flags", readFlags(c, videoAttributeFlags))
	rec.add("duration", Int(c.int32()))
	rec.add("w", Int(c.int32()))
	rec.add("h", Int(c.int32()))
	return done(rec, c)
}

func parseDocumentAttributeVideoLayer65(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "document_attribute_video_layer65", 0x5910cccb)
	rec.add("duration", Int(c.int32()))
	rec.add("w", Int(c.int32()))
	rec.add("h", Int(c.int32()))
	return done(rec, c)
}

var audioAttributeFlags = []FlagBit{
	{"has_title", 1 << 0},
	{"has_performer", 1 << 1},
	{"has_waveform", 1 << 2},
	{"voice", 1 << 10},
}

func parseDocumentAttributeAudio(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "document_attribute_audio", 0x9852f9c6)
	fl := readFlags(c, audioAttributeFlags)
	rec.add("flags", fl)
	rec.add("duration", Int(c.int32()))
	if fl.Has("has_title") {
		rec.add("title", c.tstring())
	}
	if fl.Has("has_performer") {
		rec.add("performer", c.tstring())
	}
	if fl.Has("has_waveform") {
		rec.add("waveform", c.tbytes())
	}
	return done(rec, c)
}

func parseDocumentAttributeFilename(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "document_attribute_filename", 0x15590068)
	rec.add("file_name", c.tstring())
	return done(rec, c)
}

func parseDocumentAttributeHasStickers(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "document_attribute_has_stickers", 0x9801d2f7)
	return done(rec, c)
}

func parseInputStickerSetEmpty(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "input_sticker_set_empty", 0xffb62b95)
	return done(rec, c)
}

func parseInputStickerSetID(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "input_sticker_set_id", 0x9de7a269)
	rec.add("id", Long(c.int64()))
	rec.add("access_hash", Long(c.int64()))
	return done(rec, c)
}

func parseInputStickerSetShortName(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "input_sticker_set_short_name", 0x861cc8a0)
	rec.add("short_name", c.tstring())
	return done(rec, c)
}

func parseInputStickerSetAnimatedEmoji(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "input_sticker_set_animated_emoji", 0x028703c8)
	return done(rec, c)
}

func parseMaskCoords(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "mask_coords", 0xaed6dbb2)
	rec.add("n", Int(c.int32()))
	rec.add("x", Double(c.double()))
	rec.add("y", Double(c.double()))
	rec.add("zoom", Double(c.double()))
	return done(rec, c)
}

var stickerSetFlags = []FlagBit{
	{"has_installed_date", 1 << 0},
	{"archived", 1 << 1},
	{"official", 1 << 2},
	{"masks", 1 << 3},
	{"has_thumb", 1 << 4},
	{"animated", 1 << 5},
}

func parseStickerSet(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "sticker_set", 0xeab975ca)
	fl := readFlags(c, stickerSetFlags)
	rec.add("flags", fl)
	if fl.Has("has_installed_date") {
		rec.add("installed_date", c.timestamp())
	}
	rec.add("id", Long(c.int64()))
	rec.add("access_hash", Long(c.int64()))
	rec.add("title", c.tstring())
	rec.add("short_name", c.tstring())
	if fl.Has("has_thumb") {
		rec.add("thumb", d.object(c))
		rec.add("thumb_dc_id", Int(c.int32()))
	}
	rec.add("count", Int(c.int32()))
	rec.add("hash", Int(c.int32()))
	return done(rec, c)
}

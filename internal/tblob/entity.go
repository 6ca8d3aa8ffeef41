package tblob

// Message entities: text ranges with markup or semantic roles. All share
// the offset+length prefix; a few carry one extra field.

func entityBounds(c *cursor, rec *Record) {
	rec.add("offset", Int(c.int32()))
	rec.add("length", Int(c.int32()))
}

func parseMessageEntityUnknown(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_entity_unknown", 0xbb92ba95)
	entityBounds(c, rec)
	return done(rec, c)
}

func parseMessageEntityMention(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_entity_mention", 0xfa04579d)
	entityBounds(c, rec)
	return done(rec, c)
}

func parseMessageEntityHashtag(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_entity_hashtag", 0x6f635b0d)
	entityBounds(c, rec)
	return done(rec, c)
}

func parseMessageEntityBotCommand(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_entity_bot_command", 0x6cef8ac7)
	entityBounds(c, rec)
	return done(rec, c)
}

func parseMessageEntityUrl(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_entity_url", 0x6ed02538)
	entityBounds(c, rec)
	return done(rec, c)
}

func parseMessageEntityEmail(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_entity_email", 0x64e475c2)
	entityBounds(c, rec)
	return done(rec, c)
}

func parseMessageEntityBold(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_entity_bold", 0xbd610bc9)
	entityBounds(c, rec)
	return done(rec, c)
}

func parseMessageEntityItalic(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_entity_italic", 0x826f8b60)
	entityBounds(c, rec)
	return done(rec, c)
}

func parseMessageEntityCode(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_entity_code", 0x28a20571)
	entityBounds(c, rec)
	return done(rec, c)
}

func parseMessageEntityPre(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_entity_pre", 0x73924be0)
	entityBounds(c, rec)
	rec.add("language", c.tstring())
	return done(rec, c)
}

func parseMessageEntityTextUrl(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_entity_text_url", 0x76a6d327)
	entityBounds(c, rec)
	rec.add("url", c.tstring())
	return done(rec, c)
}

func parseMessageEntityMentionName(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_entity_mention_name", 0x352dca58)
	entityBounds(c, rec)
	rec.add("user_id", Int(c.int32()))
	return done(rec, c)
}

func parseInputMessageEntityMentionName(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "input_message_entity_mention_name", 0x208e68c9)
	entityBounds(c, rec)
	rec.add("user_id", d.object(c))
	return done(rec, c)
}

func parseMessageEntityPhone(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_entity_phone", 0x9b69e34b)
	entityBounds(c, rec)
	return done(rec, c)
}

func parseMessageEntityCashtag(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_entity_cashtag", 0x4c4e743f)
	entityBounds(c, rec)
	return done(rec, c)
}

func parseMessageEntityUnderline(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_entity_underline", 0x9c4e7e8b)
	entityBounds(c, rec)
	return done(rec, c)
}

func parseMessageEntityStrike(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_entity_strike", 0xbf0693d4)
	entityBounds(c, rec)
	return done(rec, c)
}

func parseMessageEntityBlockquote(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_entity_blockquote", 0x020df5d0)
	entityBounds(c, rec)
	return done(rec, c)
}

func parseMessageEntityBankCard(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_entity_bank_card", 0x761e6af4)
	entityBounds(c, rec)
	return done(rec, c)
}

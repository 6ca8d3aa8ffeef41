package tblob

// Reply markup and keyboard button shapes.

var replyMarkupFlags = []FlagBit{
	{"resize", 1 << 0},
	{"single_use", 1 << 1},
	{"selective", 1 << 2},
}

func parseReplyKeyboardHide(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "reply_keyboard_hide", 0xa03e5b85)
	rec.add("flags", readFlags(c, replyMarkupFlags))
	return done(rec, c)
}

func parseReplyKeyboardForceReply(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "reply_keyboard_force_reply", 0xf4108aa0)
	rec.add("flags", readFlags(c, replyMarkupFlags))
	return done(rec, c)
}

func parseReplyKeyboardMarkup(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "reply_keyboard_markup", 0x3502758c)
	rec.add("flags", readFlags(c, replyMarkupFlags))
	rec.add("rows", d.vector(c))
	return done(rec, c)
}

func parseReplyInlineMarkup(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "reply_inline_markup", 0x48a30254)
	rec.add("rows", d.vector(c))
	return done(rec, c)
}

func parseKeyboardButtonRow(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "keyboard_button_row", 0x77608b83)
	rec.add("buttons", d.vector(c))
	return done(rec, c)
}

func parseKeyboardButton(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "keyboard_button", 0xa2fa4880)
	rec.add("text", c.tstring())
	return done(rec, c)
}

func parseKeyboardButtonUrl(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "keyboard_button_url", 0x258aff05)
	rec.add("text", c.tstring())
	rec.add("url", c.tstring())
	return done(rec, c)
}

func parseKeyboardButtonCallback(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "keyboard_button_callback", 0x683a5e46)
	rec.add("text", c.tstring())
	rec.add("data", c.tbytes())
	return done(rec, c)
}

func parseKeyboardButtonRequestPhone(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "keyboard_button_request_phone", 0xb16a6c29)
	rec.add("text", c.tstring())
	return done(rec, c)
}

func parseKeyboardButtonRequestGeoLocation(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "keyboard_button_request_geo_location", 0xfc796b3f)
	rec.add("text", c.tstring())
	return done(rec, c)
}

var switchInlineFlags = []FlagBit{
	{"same_peer", 1 << 0},
}

func parseKeyboardButtonSwitchInline(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "keyboard_button_switch_inline", 0x0568a748)
	rec.add("flags", readFlags(c, switchInlineFlags))
	rec.add("text", c.tstring())
	rec.add("query", c.tstring())
	return done(rec, c)
}

func parseKeyboardButtonGame(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "keyboard_button_game", 0x50f41ccf)
	rec.add("text", c.tstring())
	return done(rec, c)
}

func parseKeyboardButtonBuy(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "keyboard_button_buy", 0xafd93fbb)
	rec.add("text", c.tstring())
	return done(rec, c)
}

var urlAuthFlags = []FlagBit{
	{"has_fwd_text", 1 << 0},
}

func parseKeyboardButtonUrlAuth(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "keyboard_button_url_auth", 0x10b78d29)
	fl := readFlags(c, urlAuthFlags)
	rec.add("flags", fl)
	rec.add("text", c.tstring())
	if fl.Has("has_fwd_text") {
		rec.add("fwd_text", c.tstring())
	}
	rec.add("url", c.tstring())
	rec.add("button_id", Int(c.int32()))
	return done(rec, c)
}

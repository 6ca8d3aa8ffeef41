package tblob

// Service-message actions: chat membership, title and photo edits, calls,
// payments. All are flat or near-flat shapes.

func parseMessageActionEmpty(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_action_empty", 0xb6aef7b0)
	return done(rec, c)
}

func parseMessageActionChatCreate(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_action_chat_create", 0xa6638b9a)
	rec.add("title", c.tstring())
	rec.add("users", c.intVector())
	return done(rec, c)
}

func parseMessageActionChatEditTitle(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_action_chat_edit_title", 0xb5a1ce5a)
	rec.add("title", c.tstring())
	return done(rec, c)
}

func parseMessageActionChatEditPhoto(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_action_chat_edit_photo", 0x7fcb13a8)
	rec.add("photo", d.object(c))
	return done(rec, c)
}

func parseMessageActionChatDeletePhoto(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_action_chat_delete_photo", 0x95e3fbef)
	return done(rec, c)
}

func parseMessageActionChatAddUserOld(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_action_chat_add_user_old", 0x5e3cfc4b)
	rec.add("user_id", Int(c.int32()))
	return done(rec, c)
}

func parseMessageActionChatAddUser(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_action_chat_add_user", 0x488a7337)
	rec.add("users", c.intVector())
	return done(rec, c)
}

func parseMessageActionChatDeleteUser(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_action_chat_delete_user", 0xb2ae9b0c)
	rec.add("user_id", Int(c.int32()))
	return done(rec, c)
}

func parseMessageActionChatJoinedByLink(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_action_chat_joined_by_link", 0xf89cf5e8)
	rec.add("inviter_id", Int(c.int32()))
	return done(rec, c)
}

func parseMessageActionChannelCreate(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_action_channel_create", 0x95d2ac92)
	rec.add("title", c.tstring())
	return done(rec, c)
}

func parseMessageActionChatMigrateTo(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_action_chat_migrate_to", 0x51bdb021)
	rec.add("channel_id", Int(c.int32()))
	return done(rec, c)
}

func parseMessageActionChannelMigrateFrom(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_action_channel_migrate_from", 0xb055eaee)
	rec.add("title", c.tstring())
	rec.add("chat_id", Int(c.int32()))
	return done(rec, c)
}

func parseMessageActionPinMessage(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_action_pin_message", 0x94bd38ed)
	return done(rec, c)
}

func parseMessageActionHistoryClear(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_action_history_clear", 0x9fbab604)
	return done(rec, c)
}

func parseMessageActionGameScore(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_action_game_score", 0x92a72876)
	rec.add("game_id", Long(c.int64()))
	rec.add("score", Int(c.int32()))
	return done(rec, c)
}

func parseMessageActionPaymentSent(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_action_payment_sent", 0x40699cd0)
	rec.add("currency", c.tstring())
	rec.add("total_amount", Long(c.int64()))
	return done(rec, c)
}

var phoneCallFlags = []FlagBit{
	{"has_reason", 1 << 0},
	{"has_duration", 1 << 1},
	{"video", 1 << 2},
}

func parseMessageActionPhoneCall(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_action_phone_call", 0x80e11a7f)
	fl := readFlags(c, phoneCallFlags)
	rec.add("flags", fl)
	rec.add("call_id", Long(c.int64()))
	if fl.Has("has_reason") {
		rec.add("reason", d.object(c))
	}
	if fl.Has("has_duration") {
		rec.add("duration", Int(c.int32()))
	}
	return done(rec, c)
}

func parseMessageActionScreenshotTaken(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_action_screenshot_taken", 0x4792929b)
	return done(rec, c)
}

func parseMessageActionCustomAction(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_action_custom_action", 0xfae69f56)
	rec.add("message", c.tstring())
	return done(rec, c)
}

func parseMessageActionBotAllowed(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_action_bot_allowed", 0xabe9affe)
	rec.add("domain", c.tstring())
	return done(rec, c)
}

func parseMessageActionContactSignUp(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "message_action_contact_sign_up", 0xf3f25f76)
	return done(rec, c)
}

func parsePhoneCallDiscardReasonMissed(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "phone_call_discard_reason_missed", 0x85e42301)
	return done(rec, c)
}

func parsePhoneCallDiscardReasonDisconnect(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "phone_call_discard_reason_disconnect", 0xe095c1a0)
	return done(rec, c)
}

func parsePhoneCallDiscardReasonHangup(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "phone_call_discard_reason_hangup", 0x57adc690)
	return done(rec, c)
}

func parsePhoneCallDiscardReasonBusy(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "phone_call_discard_reason_busy", 0xfaf7e8c9)
	return done(rec, c)
}

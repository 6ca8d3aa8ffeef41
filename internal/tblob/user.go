package tblob

// User shapes across protocol layers. The bitflag word is shared by all
// flavors; what changed over time is which gated fields exist and how
// restriction_reason is encoded (bare string up to layer 104, vector of
// restriction_reason records after).

var userFlags = []FlagBit{
	{"has_access_hash", 1 << 0},
	{"has_first_name", 1 << 1},
	{"has_last_name", 1 << 2},
	{"has_username", 1 << 3},
	{"has_phone", 1 << 4},
	{"has_photo", 1 << 5},
	{"has_status", 1 << 6},
	{"is_self", 1 << 10},
	{"is_contact", 1 << 11},
	{"is_mutual_contact", 1 << 12},
	{"is_deleted", 1 << 13},
	{"is_bot", 1 << 14},
	{"bot_chat_history", 1 << 15},
	{"bot_no_chats", 1 << 16},
	{"is_verified", 1 << 17},
	{"is_restricted", 1 << 18},
	{"has_bot_inline_placeholder", 1 << 19},
	{"is_min", 1 << 20},
	{"bot_inline_geo", 1 << 21},
	{"has_lang_code", 1 << 22},
	{"is_support", 1 << 23},
	{"is_scam", 1 << 24},
}

func parseUserEmpty(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "user_empty", 0x200250ba)
	rec.add("id", Int(c.int32()))
	return done(rec, c)
}

// userCommon decodes the field run shared by every flag-gated user
// flavor, up to and excluding restriction_reason.
func userCommon(d *Decoder, c *cursor, rec *Record) Flags {
	fl := readFlags(c, userFlags)
	rec.add("flags", fl)
	rec.add("id", Int(c.int32()))
	if fl.Has("has_access_hash") {
		rec.add("access_hash", Long(c.int64()))
	}
	if fl.Has("has_first_name") {
		rec.add("first_name", c.tstring())
	}
	if fl.Has("has_last_name") {
		rec.add("last_name", c.tstring())
	}
	if fl.Has("has_username") {
		rec.add("username", c.tstring())
	}
	if fl.Has("has_phone") {
		rec.add("phone", c.tstring())
	}
	if fl.Has("has_photo") {
		rec.add("photo", d.object(c))
	}
	if fl.Has("has_status") {
		rec.add("status", d.object(c))
	}
	if fl.Has("is_bot") {
		rec.add("bot_info_version", Int(c.int32()))
	}
	return fl
}

func parseUser(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "user", 0x938458c1)
	fl := userCommon(d, c, rec)
	if fl.Has("is_restricted") {
		rec.add("restriction_reason", d.vector(c))
	}
	if fl.Has("has_bot_inline_placeholder") {
		rec.add("bot_inline_placeholder", c.tstring())
	}
	if fl.Has("has_lang_code") {
		rec.add("lang_code", c.tstring())
	}
	return done(rec, c)
}

func parseUserLayer104(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "user_layer104", 0x2e13f4c3)
	fl := userCommon(d, c, rec)
	if fl.Has("is_restricted") {
		rec.add("restriction_reason", c.tstring())
	}
	if fl.Has("has_bot_inline_placeholder") {
		rec.add("bot_inline_placeholder", c.tstring())
	}
	if fl.Has("has_lang_code") {
		rec.add("lang_code", c.tstring())
	}
	return done(rec, c)
}

func parseUserLayer65(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "user_layer65", 0xd10d979a)
	fl := userCommon(d, c, rec)
	if fl.Has("is_restricted") {
		rec.add("restriction_reason", c.tstring())
	}
	if fl.Has("has_bot_inline_placeholder") {
		rec.add("bot_inline_placeholder", c.tstring())
	}
	return done(rec, c)
}

func parseUserStatusEmpty(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "user_status_empty", 0x09d05049)
	return done(rec, c)
}

func parseUserStatusOnline(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "user_status_online", 0xedb93949)
	rec.add("expires", c.timestamp())
	return done(rec, c)
}

func parseUserStatusOffline(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "user_status_offline", 0x008c703f)
	rec.add("was_online", c.timestamp())
	return done(rec, c)
}

func parseUserStatusRecently(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "user_status_recently", 0xe26f42f1)
	return done(rec, c)
}

func parseUserStatusLastWeek(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "user_status_last_week", 0x07bf09fc)
	return done(rec, c)
}

func parseUserStatusLastMonth(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "user_status_last_month", 0x77ebc742)
	return done(rec, c)
}

func parseUserProfilePhotoEmpty(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "user_profile_photo_empty", 0x4f11bae1)
	return done(rec, c)
}

func parseUserProfilePhotoOld(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "user_profile_photo_old", 0x990d1493)
	rec.add("photo_small", d.object(c))
	rec.add("photo_big", d.object(c))
	return done(rec, c)
}

func parseUserProfilePhotoLayer97(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "user_profile_photo_layer97", 0xd559d8c8)
	rec.add("photo_id", Long(c.int64()))
	rec.add("photo_small", d.object(c))
	rec.add("photo_big", d.object(c))
	return done(rec, c)
}

func parseUserProfilePhotoLayer115(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "user_profile_photo_layer115", 0xecd75d8c)
	rec.add("photo_id", Long(c.int64()))
	rec.add("photo_small", d.object(c))
	rec.add("photo_big", d.object(c))
	rec.add("dc_id", Int(c.int32()))
	return done(rec, c)
}

var userProfilePhotoFlags = []FlagBit{
	{"has_video", 1 << 0},
}

func parseUserProfilePhoto(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "user_profile_photo", 0x69d3ab26)
	rec.add("flags", readFlags(c, userProfilePhotoFlags))
	rec.add("photo_id", Long(c.int64()))
	rec.add("photo_small", d.object(c))
	rec.add("photo_big", d.object(c))
	rec.add("dc_id", Int(c.int32()))
	return done(rec, c)
}

var userFullFlags = []FlagBit{
	{"is_blocked", 1 << 0},
	{"has_about", 1 << 1},
	{"has_profile_photo", 1 << 2},
	{"has_bot_info", 1 << 3},
	{"phone_calls_available", 1 << 4},
	{"phone_calls_private", 1 << 5},
	{"has_pinned_msg", 1 << 6},
	{"can_pin_message", 1 << 7},
	{"has_folder", 1 << 11},
}

// user_full backs the user_settings table: the user record plus the
// per-dialog settings the client keeps for it.
func parseUserFull(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "user_full", 0xedf17c12)
	fl := readFlags(c, userFullFlags)
	rec.add("flags", fl)
	rec.add("user", d.object(c))
	if fl.Has("has_about") {
		rec.add("about", c.tstring())
	}
	rec.add("settings", d.object(c))
	if fl.Has("has_profile_photo") {
		rec.add("profile_photo", d.object(c))
	}
	rec.add("notify_settings", d.object(c))
	if fl.Has("has_bot_info") {
		rec.add("bot_info", d.object(c))
	}
	if fl.Has("has_pinned_msg") {
		rec.add("pinned_msg_id", Int(c.int32()))
	}
	rec.add("common_chats_count", Int(c.int32()))
	if fl.Has("has_folder") {
		rec.add("folder_id", Int(c.int32()))
	}
	return done(rec, c)
}

var peerSettingsFlags = []FlagBit{
	{"report_spam", 1 << 0},
	{"add_contact", 1 << 1},
	{"block_contact", 1 << 2},
	{"share_contact", 1 << 3},
	{"need_contacts_exception", 1 << 4},
	{"report_geo", 1 << 5},
}

func parsePeerSettings(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "peer_settings", 0x818426cd)
	rec.add("flags", readFlags(c, peerSettingsFlags))
	return done(rec, c)
}

var peerNotifySettingsFlags = []FlagBit{
	{"has_show_previews", 1 << 0},
	{"has_silent", 1 << 1},
	{"has_mute_until", 1 << 2},
	{"has_sound", 1 << 3},
}

func parsePeerNotifySettings(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "peer_notify_settings", 0xaf509d20)
	fl := readFlags(c, peerNotifySettingsFlags)
	rec.add("flags", fl)
	if fl.Has("has_show_previews") {
		rec.add("show_previews", c.tbool())
	}
	if fl.Has("has_silent") {
		rec.add("silent", c.tbool())
	}
	if fl.Has("has_mute_until") {
		rec.add("mute_until", Int(c.int32()))
	}
	if fl.Has("has_sound") {
		rec.add("sound", c.tstring())
	}
	return done(rec, c)
}

func parsePeerNotifySettingsEmptyLayer77(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "peer_notify_settings_empty_layer77", 0x70a68512)
	return done(rec, c)
}

package tblob

// Encrypted chats, polls, games, bot metadata and the remaining small
// shapes the nine cache4 tables reach.

func parseEncryptedChatEmpty(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "encrypted_chat_empty", 0xab7ec0a0)
	rec.add("id", Int(c.int32()))
	return done(rec, c)
}

func parseEncryptedChatWaiting(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "encrypted_chat_waiting", 0x3bf703dc)
	rec.add("id", Int(c.int32()))
	rec.add("access_hash", Long(c.int64()))
	rec.add("date", c.timestamp())
	rec.add("admin_id", Int(c.int32()))
	rec.add("participant_id", Int(c.int32()))
	return done(rec, c)
}

func parseEncryptedChatRequested(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "encrypted_chat_requested", 0xc878527e)
	rec.add("id", Int(c.int32()))
	rec.add("access_hash", Long(c.int64()))
	rec.add("date", c.timestamp())
	rec.add("admin_id", Int(c.int32()))
	rec.add("participant_id", Int(c.int32()))
	rec.add("g_a", c.tbytes())
	return done(rec, c)
}

func parseEncryptedChat(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "encrypted_chat", 0xfa56ce36)
	rec.add("id", Int(c.int32()))
	rec.add("access_hash", Long(c.int64()))
	rec.add("date", c.timestamp())
	rec.add("admin_id", Int(c.int32()))
	rec.add("participant_id", Int(c.int32()))
	rec.add("g_a_or_b", c.tbytes())
	rec.add("key_fingerprint", Long(c.int64()))
	return done(rec, c)
}

func parseEncryptedChatDiscarded(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "encrypted_chat_discarded", 0x13d6dd27)
	rec.add("id", Int(c.int32()))
	return done(rec, c)
}

var pollFlags = []FlagBit{
	{"closed", 1 << 0},
	{"public_voters", 1 << 1},
	{"multiple_choice", 1 << 2},
	{"quiz", 1 << 3},
}

func parsePoll(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "poll", 0x86e18161)
	rec.add("id", Long(c.int64()))
	rec.add("flags", readFlags(c, pollFlags))
	rec.add("question", c.tstring())
	rec.add("answers", d.vector(c))
	return done(rec, c)
}

func parsePollAnswer(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "poll_answer", 0x6ca9c2e9)
	rec.add("text", c.tstring())
	rec.add("option", c.tbytes())
	return done(rec, c)
}

var pollResultsFlags = []FlagBit{
	{"min", 1 << 0},
	{"has_results", 1 << 1},
	{"has_total_voters", 1 << 2},
	{"has_recent_voters", 1 << 3},
}

func parsePollResultsLayer108(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "poll_results_layer108", 0x5755785a)
	fl := readFlags(c, pollResultsFlags)
	rec.add("flags", fl)
	if fl.Has("has_results") {
		rec.add("results", d.vector(c))
	}
	if fl.Has("has_total_voters") {
		rec.add("total_voters", Int(c.int32()))
	}
	return done(rec, c)
}

var pollAnswerVotersFlags = []FlagBit{
	{"chosen", 1 << 0},
	{"correct", 1 << 1},
}

func parsePollAnswerVoters(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "poll_answer_voters", 0x3b6ddad2)
	rec.add("flags", readFlags(c, pollAnswerVotersFlags))
	rec.add("option", c.tbytes())
	rec.add("voters", Int(c.int32()))
	return done(rec, c)
}

var gameFlags = []FlagBit{
	{"has_document", 1 << 0},
}

func parseGame(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "game", 0xbdf9653b)
	fl := readFlags(c, gameFlags)
	rec.add("flags", fl)
	rec.add("id", Long(c.int64()))
	rec.add("access_hash", Long(c.int64()))
	rec.add("short_name", c.tstring())
	rec.add("title", c.tstring())
	rec.add("description", c.tstring())
	rec.add("photo", d.object(c))
	if fl.Has("has_document") {
		rec.add("document", d.object(c))
	}
	return done(rec, c)
}

func parseBotCommand(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "bot_command", 0xc27ac8c7)
	rec.add("command", c.tstring())
	rec.add("description", c.tstring())
	return done(rec, c)
}

func parseBotInfo(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "bot_info", 0x98e81d3a)
	rec.add("user_id", Int(c.int32()))
	rec.add("description", c.tstring())
	rec.add("commands", d.vector(c))
	return done(rec, c)
}

func parseBotInfoEmpty(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "bot_info_empty_layer48", 0xbb2e37ce)
	return done(rec, c)
}

func parseInputUserEmpty(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "input_user_empty", 0xb98886cf)
	return done(rec, c)
}

func parseInputUserSelf(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "input_user_self", 0xf7c1b13f)
	return done(rec, c)
}

func parseInputUser(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "input_user", 0xd8292816)
	rec.add("user_id", Int(c.int32()))
	rec.add("access_hash", Long(c.int64()))
	return done(rec, c)
}

package tblob

// readFlags decodes one 32-bit bitflag word. Every optional field of the
// containing shape is present on the wire iff its bit is set, so flag
// words must be decoded before any gated field and evaluated strictly in
// field-declaration order.
func readFlags(c *cursor, known []FlagBit) Flags {
	return Flags{Bits: c.uint32(), Known: known}
}

func parseBoolTrue(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "bool_true", boolTrueSignature)
	rec.add("value", BoolTrue)
	return done(rec, c)
}

func parseBoolFalse(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "bool_false", boolFalseSignature)
	rec.add("value", BoolFalse)
	return done(rec, c)
}

// parseVector decodes a bare top-level vector. Elements carry their own
// tags, so each one dispatches through the registry.
func parseVector(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "vector", vectorSignature)
	count := int(c.int32())
	var items Vector
	for i := 0; i < count && c.err == nil; i++ {
		items.Items = append(items.Items, d.object(c))
	}
	rec.add("items", items)
	return done(rec, c)
}

func parsePeerUser(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "peer_user", 0x9db1bc6d)
	rec.add("user_id", Int(c.int32()))
	return done(rec, c)
}

func parsePeerChat(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "peer_chat", 0xbad0e5bb)
	rec.add("chat_id", Int(c.int32()))
	return done(rec, c)
}

func parsePeerChannel(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "peer_channel", 0xbddde532)
	rec.add("channel_id", Int(c.int32()))
	return done(rec, c)
}

func parseGeoPointEmpty(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "geo_point_empty", 0x1117dd5f)
	return done(rec, c)
}

func parseGeoPointLayer81(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "geo_point_layer81", 0x2049d70c)
	rec.add("long", Double(c.double()))
	rec.add("lat", Double(c.double()))
	return done(rec, c)
}

func parseGeoPoint(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "geo_point", 0x0296f104)
	rec.add("long", Double(c.double()))
	rec.add("lat", Double(c.double()))
	rec.add("access_hash", Long(c.int64()))
	return done(rec, c)
}

func parseContact(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "contact", 0xf911c994)
	rec.add("user_id", Int(c.int32()))
	rec.add("mutual", c.tbool())
	return done(rec, c)
}

func parseImportedContact(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "imported_contact", 0xd0028438)
	rec.add("user_id", Int(c.int32()))
	rec.add("client_id", Long(c.int64()))
	return done(rec, c)
}

func parseInputChannelEmpty(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "input_channel_empty", 0xee8c1e86)
	return done(rec, c)
}

func parseInputChannel(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "input_channel", 0xafeb712e)
	rec.add("channel_id", Int(c.int32()))
	rec.add("access_hash", Long(c.int64()))
	return done(rec, c)
}

func parseInputGroupCall(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "input_group_call", 0xd8aa840f)
	rec.add("id", Long(c.int64()))
	rec.add("access_hash", Long(c.int64()))
	return done(rec, c)
}

// restriction_reason became a structured record at layer 104; earlier
// layers carry a bare "platform-reason-text" string.
func parseRestrictionReason(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "restriction_reason", 0xd072acb4)
	rec.add("platform", c.tstring())
	rec.add("reason", c.tstring())
	rec.add("text", c.tstring())
	return done(rec, c)
}

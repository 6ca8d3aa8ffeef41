package tblob

// Photo, photo size and file location shapes. A photo field in any
// containing record can legally be any of these historical flavors, so
// containers always reach them through tag dispatch.

var photoFlags = []FlagBit{
	{"has_stickers", 1 << 0},
	{"has_video_sizes", 1 << 1},
}

func parsePhotoEmpty(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "photo_empty", 0x2331b22d)
	rec.add("id", Long(c.int64()))
	return done(rec, c)
}

func parsePhotoOld(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "photo_old", 0x22b56751)
	rec.add("id", Long(c.int64()))
	rec.add("access_hash", Long(c.int64()))
	rec.add("user_id", Int(c.int32()))
	rec.add("date", c.timestamp())
	rec.add("caption", c.tstring())
	rec.add("geo", d.object(c))
	rec.add("photo_size_array", d.vector(c))
	return done(rec, c)
}

func parsePhotoOld2(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "photo_old2", 0xc3838076)
	rec.add("id", Long(c.int64()))
	rec.add("access_hash", Long(c.int64()))
	rec.add("user_id", Int(c.int32()))
	rec.add("date", c.timestamp())
	rec.add("geo", d.object(c))
	rec.add("photo_size_array", d.vector(c))
	return done(rec, c)
}

func parsePhotoLayer82(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "photo_layer82", 0x9288dd29)
	rec.add("flags", readFlags(c, photoFlags))
	rec.add("id", Long(c.int64()))
	rec.add("access_hash", Long(c.int64()))
	rec.add("date", c.timestamp())
	rec.add("photo_size_array", d.vector(c))
	return done(rec, c)
}

func parsePhotoLayer97(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "photo_layer97", 0xd07504a6)
	rec.add("flags", readFlags(c, photoFlags))
	rec.add("id", Long(c.int64()))
	rec.add("access_hash", Long(c.int64()))
	rec.add("file_reference", c.tbytes())
	rec.add("date", c.timestamp())
	rec.add("photo_size_array", d.vector(c))
	return done(rec, c)
}

func parsePhoto(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "photo", 0xfb197a65)
	fl := readFlags(c, photoFlags)
	rec.add("flags", fl)
	rec.add("id", Long(c.int64()))
	rec.add("access_hash", Long(c.int64()))
	rec.add("file_reference", c.tbytes())
	rec.add("date", c.timestamp())
	rec.add("photo_size_array", d.vector(c))
	if fl.Has("has_video_sizes") {
		rec.add("video_size_array", d.vector(c))
	}
	rec.add("dc_id", Int(c.int32()))
	return done(rec, c)
}

func parsePhotoSizeEmpty(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "photo_size_empty", 0x0e17e23c)
	rec.add("type", c.tstring())
	return done(rec, c)
}

func parsePhotoSize(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "photo_size", 0x77bfb61b)
	rec.add("type", c.tstring())
	rec.add("file_location", d.object(c))
	rec.add("w", Int(c.int32()))
	rec.add("h", Int(c.int32()))
	rec.add("size", Int(c.int32()))
	return done(rec, c)
}

func parsePhotoCachedSize(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "photo_cached_size", 0xe9a734fa)
	rec.add("type", c.tstring())
	rec.add("file_location", d.object(c))
	rec.add("w", Int(c.int32()))
	rec.add("h", Int(c.int32()))
	rec.add("bytes", c.tbytes())
	return done(rec, c)
}

func parsePhotoStrippedSize(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "photo_stripped_size", 0xe0b0bc2e)
	rec.add("type", c.tstring())
	rec.add("bytes", c.tbytes())
	return done(rec, c)
}

func parseFileLocationUnavailable(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "file_location_unavailable", 0x7c596b46)
	rec.add("volume_id", Long(c.int64()))
	rec.add("local_id", Int(c.int32()))
	rec.add("secret", Long(c.int64()))
	return done(rec, c)
}

func parseFileLocationLayer82(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "file_location_layer82", 0x53d69076)
	rec.add("dc_id", Int(c.int32()))
	rec.add("volume_id", Long(c.int64()))
	rec.add("local_id", Int(c.int32()))
	rec.add("secret", Long(c.int64()))
	return done(rec, c)
}

func parseFileLocationLayer97(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "file_location_layer97", 0x091d11eb)
	rec.add("dc_id", Int(c.int32()))
	rec.add("volume_id", Long(c.int64()))
	rec.add("local_id", Int(c.int32()))
	rec.add("secret", Long(c.int64()))
	rec.add("file_reference", c.tbytes())
	return done(rec, c)
}

func parseFileLocationToBeDeprecated(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "file_location_to_be_deprecated", 0xbc7fc6cd)
	rec.add("volume_id", Long(c.int64()))
	rec.add("local_id", Int(c.int32()))
	return done(rec, c)
}

func parseVideoSize(d *Decoder, c *cursor) (*Record, error) {
	rec := begin(c, "video_size", 0xe831c556)
	fl := readFlags(c, []FlagBit{{"has_video_start_ts", 1 << 0}})
	rec.add("flags", fl)
	rec.add("type", c.tstring())
	rec.add("location", d.object(c))
	rec.add("w", Int(c.int32()))
	rec.add("h", Int(c.int32()))
	rec.add("size", Int(c.int32()))
	if fl.Has("has_video_start_ts") {
		rec.add("video_start_ts", Double(c.double()))
	}
	return done(rec, c)
}

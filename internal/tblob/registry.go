package tblob

// parseFunc decodes one shape. The decoder is passed explicitly so nested
// tag dispatch has no hidden state beyond the registry itself.
type parseFunc func(*Decoder, *cursor) (*Record, error)

// entry is one registry row: the shape decoder (nil for signatures that
// are documented and named but intentionally not implemented), the
// canonical shape name, and an optional post-decode hook for derived
// fields.
type entry struct {
	parse parseFunc
	name  string
	post  func(*Record)
}

// registry is the master catalogue: every signature the historical
// protocol layers can leave in a cache4 blob. It is built once and never
// mutated; adding support for a new layer means adding one row here and,
// for a new layout, one decoder following the existing patterns.
//
// Signature 0xc8d7493e is deliberately ambiguous: chat_participant and
// chat_channel_participant share it and only the calling field's
// expected type disambiguates. The registry carries chat_participant;
// parseChatChannelParticipant is reached by direct call.
var registry map[uint32]entry

// The map is populated in init rather than a composite-literal
// initializer so the compiler does not see an initialization cycle
// between registry and the parse functions that consult it.
func init() {
	registry = map[uint32]entry{
		// booleans and containers
		0x997275b5: {parseBoolTrue, "bool_true", nil},
		0xbc799737: {parseBoolFalse, "bool_false", nil},
		0x1cb5c415: {parseVector, "vector", nil},
		0x56730bcc: {nil, "null", nil},

		// peers
		0x9db1bc6d: {parsePeerUser, "peer_user", nil},
		0xbad0e5bb: {parsePeerChat, "peer_chat", nil},
		0xbddde532: {parsePeerChannel, "peer_channel", nil},

		// users
		0x200250ba: {parseUserEmpty, "user_empty", nil},
		0x938458c1: {parseUser, "user", nil},
		0x2e13f4c3: {parseUserLayer104, "user_layer104", nil},
		0xd10d979a: {parseUserLayer65, "user_layer65", nil},
		0x22e49072: {nil, "user_old", nil},
		0x720535ec: {nil, "user_self_old", nil},
		0x7007b451: {nil, "user_self_old2", nil},
		0x1c60e608: {nil, "user_self_old3", nil},
		0xcab35e18: {nil, "user_contact_old", nil},
		0xf2fb8319: {nil, "user_contact_old2", nil},
		0x22e8e216: {nil, "user_request_old", nil},
		0xd9ccc4ef: {nil, "user_request_old2", nil},
		0x5214c89d: {nil, "user_foreign_old", nil},
		0x075cf7a8: {nil, "user_foreign_old2", nil},
		0xd6016d7a: {nil, "user_deleted_old", nil},
		0xb29ad7cc: {nil, "user_deleted_old2", nil},

		// user statuses
		0x09d05049: {parseUserStatusEmpty, "user_status_empty", nil},
		0xedb93949: {parseUserStatusOnline, "user_status_online", nil},
		0x008c703f: {parseUserStatusOffline, "user_status_offline", nil},
		0xe26f42f1: {parseUserStatusRecently, "user_status_recently", nil},
		0x07bf09fc: {parseUserStatusLastWeek, "user_status_last_week", nil},
		0x77ebc742: {parseUserStatusLastMonth, "user_status_last_month", nil},

		// user profile photos
		0x4f11bae1: {parseUserProfilePhotoEmpty, "user_profile_photo_empty", nil},
		0x990d1493: {parseUserProfilePhotoOld, "user_profile_photo_old", nil},
		0xd559d8c8: {parseUserProfilePhotoLayer97, "user_profile_photo_layer97", nil},
		0xecd75d8c: {parseUserProfilePhotoLayer115, "user_profile_photo_layer115", nil},
		0x69d3ab26: {parseUserProfilePhoto, "user_profile_photo", nil},

		// user full and peer settings
		0xedf17c12: {parseUserFull, "user_full", nil},
		0x745559cc: {nil, "user_full_layer101", nil},
		0x8ea4a881: {nil, "user_full_layer98", nil},
		0x818426cd: {parsePeerSettings, "peer_settings", nil},
		0xaf509d20: {parsePeerNotifySettings, "peer_notify_settings", nil},
		0x70a68512: {parsePeerNotifySettingsEmptyLayer77, "peer_notify_settings_empty_layer77", nil},
		0x9acda4c0: {nil, "peer_notify_settings_layer77", nil},
		0x8d5e11ee: {nil, "peer_notify_settings_layer47", nil},
		0x3ace484c: {nil, "contacts_link_layer101", nil},
		0x5f4f9247: {nil, "contact_link_unknown", nil},
		0xfeedd3ad: {nil, "contact_link_none", nil},
		0x268f3f59: {nil, "contact_link_has_phone", nil},
		0xd502c2d0: {nil, "contact_link_contact", nil},

		// contacts
		0xf911c994: {parseContact, "contact", nil},
		0xd0028438: {parseImportedContact, "imported_contact", nil},

		// chats
		0x9ba2d800: {parseChatEmpty, "chat_empty", nil},
		0x6e9c9bc7: {parseChatOld, "chat_old", nil},
		0x7312bc48: {parseChatOld2, "chat_old2", nil},
		0xd91cdd54: {parseChatLayer92, "chat_layer92", nil},
		0x3bda1bde: {parseChat, "chat", nil},
		0xfb0ccc41: {parseChatForbiddenOld, "chat_forbidden_old", nil},
		0x07328bdb: {parseChatForbidden, "chat_forbidden", nil},

		// channels
		0x678e9587: {nil, "channel_old", nil},
		0x4b1b7506: {parseChannelLayer48, "channel_layer48", nil},
		0xa14dca52: {parseChannelLayer67, "channel_layer67", nil},
		0x0cb44b1c: {parseChannelLayer72, "channel_layer72", nil},
		0x450b7115: {parseChannelLayer77, "channel_layer77", nil},
		0xc88974ac: {parseChannelLayer92, "channel_layer92", nil},
		0xd31a961e: {parseChannel, "channel", nil},
		0x2d85832c: {parseChannelForbiddenLayer52, "channel_forbidden_layer52", nil},
		0x8537784f: {parseChannelForbiddenLayer67, "channel_forbidden_layer67", nil},
		0x289da732: {parseChannelForbidden, "channel_forbidden", nil},

		// chat photos
		0x37c1011c: {parseChatPhotoEmpty, "chat_photo_empty", nil},
		0x6153276a: {parseChatPhotoLayer97, "chat_photo_layer97", nil},
		0x475cdbd5: {parseChatPhotoLayer115, "chat_photo_layer115", nil},
		0xd20b9f3c: {parseChatPhoto, "chat_photo", nil},

		// admin and banned rights
		0x5fb224d5: {parseChatAdminRights, "chat_admin_rights", nil},
		0x9f120418: {parseChatBannedRights, "chat_banned_rights", nil},
		0x5d7ceba5: {parseChannelAdminRightsLayer92, "channel_admin_rights_layer92", nil},
		0x58cf4249: {parseChannelBannedRightsLayer92, "channel_banned_rights_layer92", nil},

		// chat participants; 0xc8d7493e is the documented two-shape signature
		0xc8d7493e: {parseChatParticipant, "chat_participant", nil},
		0xda13538a: {parseChatParticipantCreator, "chat_participant_creator", nil},
		0xe2d6e436: {parseChatParticipantAdmin, "chat_participant_admin", nil},
		0x3f460fed: {parseChatParticipants, "chat_participants", nil},
		0xfc900c2b: {parseChatParticipantsForbidden, "chat_participants_forbidden", nil},
		0x7328bdb7: {nil, "chat_participants_old", nil},
		0x15ebac1d: {parseChannelParticipant, "channel_participant", nil},
		0xa3289a6d: {parseChannelParticipantSelf, "channel_participant_self", nil},
		0x91057fef: {nil, "channel_participant_moderator", nil},
		0x98192d61: {nil, "channel_participant_editor", nil},
		0x8cc5e69a: {nil, "channel_participant_kicked", nil},
		0xa82fa898: {nil, "channel_participant_self_layer67", nil},
		0xccbebbaf: {nil, "channel_participant_admin", nil},
		0x1b03f006: {nil, "channel_participant_banned", nil},
		0x808d15a4: {nil, "channel_participant_creator", nil},
		0x1c0facaf: {nil, "channel_participant_banned_layer92", nil},

		// chat and channel full (not stored in the nine tables, listed for
		// completeness of the catalogue)
		0x1b7c9db3: {nil, "chat_full", nil},
		0x22a235af: {nil, "chat_full_layer98", nil},
		0xedd2a791: {nil, "chat_full_layer92", nil},
		0x2e02a614: {nil, "chat_full_old", nil},
		0xf0e6672a: {nil, "channel_full", nil},
		0x2d895c74: {nil, "channel_full_layer110", nil},
		0x10916653: {nil, "channel_full_layer103", nil},
		0x9882e516: {nil, "channel_full_layer101", nil},
		0x03648977: {nil, "channel_full_layer98", nil},

		// messages
		0x83e5de54: {parseMessageEmpty, "message_empty", nil},
		0x44f9b43d: {parseMessage, "message", deriveMessageFromID},
		0x90dddc11: {parseMessageLayer72, "message_layer72", deriveMessageFromID},
		0xc09be45f: {parseMessageLayer68, "message_layer68", deriveMessageFromID},
		0xc992e15c: {nil, "message_layer47", nil},
		0x5ba66c13: {nil, "message_old7", nil},
		0xf07814c8: {nil, "message_old6", nil},
		0xf82b00b4: {nil, "message_old5", nil},
		0xc3060325: {nil, "message_old4", nil},
		0xa7ab1991: {nil, "message_old3", nil},
		0x567699b3: {nil, "message_old2", nil},
		0x22eb6aba: {nil, "message_old", nil},
		0xa367e716: {nil, "message_forwarded_old2", nil},
		0x05f46804: {nil, "message_forwarded_old", nil},
		0x9e19a1f6: {parseMessageService, "message_service", deriveMessageFromID},
		0x9f8d60bb: {parseMessageServiceOld, "message_service_old", deriveMessageFromID},
		0x1d86f70e: {nil, "message_service_old2", nil},
		0xc06b9607: {nil, "message_service_layer48", nil},

		// forward headers
		0x559ebe6d: {parseMessageFwdHeaderLayer97, "message_fwd_header_layer97", nil},
		0xec338270: {parseMessageFwdHeader, "message_fwd_header", nil},
		0xc786ddcb: {nil, "message_fwd_header_layer68", nil},
		0xfadff4ac: {nil, "message_fwd_header_layer72", nil},
		0x353a686b: {nil, "message_fwd_header_layer112", nil},

		// message media
		0x3ded6320: {parseMessageMediaEmpty, "message_media_empty", nil},
		0xc8c45a2a: {parseMessageMediaPhotoOld, "message_media_photo_old", nil},
		0xb5223b0f: {parseMessageMediaPhotoLayer74, "message_media_photo_layer74", nil},
		0x695150d7: {parseMessageMediaPhoto, "message_media_photo", nil},
		0x2fda2204: {parseMessageMediaDocumentOld, "message_media_document_old", nil},
		0x7c4414d3: {parseMessageMediaDocumentLayer74, "message_media_document_layer74", nil},
		0x9cb070d7: {parseMessageMediaDocument, "message_media_document", nil},
		0x56e0d474: {parseMessageMediaGeo, "message_media_geo", nil},
		0x7c3c2609: {parseMessageMediaGeoLive, "message_media_geo_live", nil},
		0x5e7d2f39: {parseMessageMediaContactLayer81, "message_media_contact_layer81", nil},
		0xcbc24bcc: {parseMessageMediaContact, "message_media_contact", nil},
		0xa32dd600: {parseMessageMediaWebPage, "message_media_web_page", nil},
		0x9f84f49e: {parseMessageMediaUnsupported, "message_media_unsupported", nil},
		0x29632a36: {nil, "message_media_unsupported_old", nil},
		0x7912b71f: {parseMessageMediaVenueLayer71, "message_media_venue_layer71", nil},
		0x2ec0533f: {parseMessageMediaVenue, "message_media_venue", nil},
		0xfdb19008: {parseMessageMediaGame, "message_media_game", nil},
		0x84551347: {parseMessageMediaInvoice, "message_media_invoice", nil},
		0x4bd6e798: {parseMessageMediaPoll, "message_media_poll", nil},
		0x3f7ee58b: {parseMessageMediaDice, "message_media_dice", nil},
		0x638fe46b: {nil, "message_media_dice_layer111", nil},
		0xa2d24290: {nil, "message_media_video_old", nil},
		0xc6b68300: {nil, "message_media_audio_layer45", nil},
		0x5bcf1675: {nil, "message_media_video_layer45", nil},

		// message actions
		0xb6aef7b0: {parseMessageActionEmpty, "message_action_empty", nil},
		0xa6638b9a: {parseMessageActionChatCreate, "message_action_chat_create", nil},
		0xb5a1ce5a: {parseMessageActionChatEditTitle, "message_action_chat_edit_title", nil},
		0x7fcb13a8: {parseMessageActionChatEditPhoto, "message_action_chat_edit_photo", nil},
		0x95e3fbef: {parseMessageActionChatDeletePhoto, "message_action_chat_delete_photo", nil},
		0x5e3cfc4b: {parseMessageActionChatAddUserOld, "message_action_chat_add_user_old", nil},
		0x488a7337: {parseMessageActionChatAddUser, "message_action_chat_add_user", nil},
		0xb2ae9b0c: {parseMessageActionChatDeleteUser, "message_action_chat_delete_user", nil},
		0xf89cf5e8: {parseMessageActionChatJoinedByLink, "message_action_chat_joined_by_link", nil},
		0x95d2ac92: {parseMessageActionChannelCreate, "message_action_channel_create", nil},
		0x51bdb021: {parseMessageActionChatMigrateTo, "message_action_chat_migrate_to", nil},
		0xb055eaee: {parseMessageActionChannelMigrateFrom, "message_action_channel_migrate_from", nil},
		0x94bd38ed: {parseMessageActionPinMessage, "message_action_pin_message", nil},
		0x9fbab604: {parseMessageActionHistoryClear, "message_action_history_clear", nil},
		0x92a72876: {parseMessageActionGameScore, "message_action_game_score", nil},
		0x40699cd0: {parseMessageActionPaymentSent, "message_action_payment_sent", nil},
		0x8f31b327: {nil, "message_action_payment_sent_me", nil},
		0x80e11a7f: {parseMessageActionPhoneCall, "message_action_phone_call", nil},
		0x4792929b: {parseMessageActionScreenshotTaken, "message_action_screenshot_taken", nil},
		0xfae69f56: {parseMessageActionCustomAction, "message_action_custom_action", nil},
		0xabe9affe: {parseMessageActionBotAllowed, "message_action_bot_allowed", nil},
		0xf3f25f76: {parseMessageActionContactSignUp, "message_action_contact_sign_up", nil},
		0xd95c6154: {nil, "message_action_secure_values_sent", nil},
		0x1b287353: {nil, "message_action_secure_values_sent_me", nil},
		0x55555557: {nil, "message_action_created_broadcast_list", nil},
		0x55555550: {nil, "message_action_user_joined", nil},
		0x55555551: {nil, "message_action_user_updated_photo", nil},
		0x55555552: {nil, "message_action_ttl_change", nil},
		0x55555558: {nil, "message_action_chat_edit_photo_me", nil},
		0x555555f5: {nil, "message_action_login_unknown_location", nil},
		0x555555f7: {nil, "message_action_typing", nil},
		0xaa1afbfd: {nil, "message_action_notify_layer", nil},

		// phone call discard reasons
		0x85e42301: {parsePhoneCallDiscardReasonMissed, "phone_call_discard_reason_missed", nil},
		0xe095c1a0: {parsePhoneCallDiscardReasonDisconnect, "phone_call_discard_reason_disconnect", nil},
		0x57adc690: {parsePhoneCallDiscardReasonHangup, "phone_call_discard_reason_hangup", nil},
		0xfaf7e8c9: {parsePhoneCallDiscardReasonBusy, "phone_call_discard_reason_busy", nil},

		// photos
		0x2331b22d: {parsePhotoEmpty, "photo_empty", nil},
		0x22b56751: {parsePhotoOld, "photo_old", nil},
		0xc3838076: {parsePhotoOld2, "photo_old2", nil},
		0x9288dd29: {parsePhotoLayer82, "photo_layer82", nil},
		0xd07504a6: {parsePhotoLayer97, "photo_layer97", nil},
		0xcded42fe: {nil, "photo_layer55", nil},
		0xfb197a65: {parsePhoto, "photo", nil},
		0x0e17e23c: {parsePhotoSizeEmpty, "photo_size_empty", nil},
		0x77bfb61b: {parsePhotoSize, "photo_size", nil},
		0xe9a734fa: {parsePhotoCachedSize, "photo_cached_size", nil},
		0xe0b0bc2e: {parsePhotoStrippedSize, "photo_stripped_size", nil},
		0xe831c556: {parseVideoSize, "video_size", nil},
		0x435bb987: {nil, "video_size_layer115", nil},

		// file locations
		0x7c596b46: {parseFileLocationUnavailable, "file_location_unavailable", nil},
		0x53d69076: {parseFileLocationLayer82, "file_location_layer82", nil},
		0x091d11eb: {parseFileLocationLayer97, "file_location_layer97", nil},
		0xbc7fc6cd: {parseFileLocationToBeDeprecated, "file_location_to_be_deprecated", nil},

		// documents
		0x36f8c871: {parseDocumentEmpty, "document_empty", nil},
		0x9efc6326: {parseDocumentOld, "document_old", nil},
		0x87232bc7: {parseDocumentLayer82, "document_layer82", nil},
		0x59534e4c: {parseDocumentLayer92, "document_layer92", nil},
		0x9ba29cc1: {parseDocumentLayer113, "document_layer113", nil},
		0x1e87342b: {parseDocument, "document", nil},
		0xf9a39f4f: {nil, "document_layer53", nil},

		// document attributes
		0x6c37c15c: {parseDocumentAttributeImageSize, "document_attribute_image_size", nil},
		0x11b58939: {parseDocumentAttributeAnimated, "document_attribute_animated", nil},
		0x6319d612: {parseDocumentAttributeSticker, "document_attribute_sticker", nil},
		0x3a556302: {parseDocumentAttributeStickerLayer55, "document_attribute_sticker_layer55", nil},
		0xfb0a5727: {nil, "document_attribute_sticker_old", nil},
		0x994c9882: {nil, "document_attribute_sticker_old2", nil},
		0x0ef02ce6: {parseDocumentAttributeVideo, "document_attribute_video", nil},
		0x5910cccb: {parseDocumentAttributeVideoLayer65, "document_attribute_video_layer65", nil},
		0x9852f9c6: {parseDocumentAttributeAudio, "document_attribute_audio", nil},
		0xded218e0: {nil, "document_attribute_audio_layer45", nil},
		0x051448e5: {nil, "document_attribute_audio_old", nil},
		0x15590068: {parseDocumentAttributeFilename, "document_attribute_filename", nil},
		0x9801d2f7: {parseDocumentAttributeHasStickers, "document_attribute_has_stickers", nil},

		// sticker sets
		0xffb62b95: {parseInputStickerSetEmpty, "input_sticker_set_empty", nil},
		0x9de7a269: {parseInputStickerSetID, "input_sticker_set_id", nil},
		0x861cc8a0: {parseInputStickerSetShortName, "input_sticker_set_short_name", nil},
		0x028703c8: {parseInputStickerSetAnimatedEmoji, "input_sticker_set_animated_emoji", nil},
		0xaed6dbb2: {parseMaskCoords, "mask_coords", nil},
		0xeab975ca: {parseStickerSet, "sticker_set", nil},
		0x5585a139: {nil, "sticker_set_layer96", nil},
		0x6a90bcb7: {nil, "sticker_set_layer97", nil},
		0xcd303b41: {nil, "sticker_set_layer75", nil},
		0x12b299d4: {nil, "sticker_pack", nil},

		// geo points
		0x1117dd5f: {parseGeoPointEmpty, "geo_point_empty", nil},
		0x2049d70c: {parseGeoPointLayer81, "geo_point_layer81", nil},
		0x0296f104: {parseGeoPoint, "geo_point", nil},

		// web pages
		0xeb1477e8: {parseWebPageEmpty, "web_page_empty", nil},
		0xc586da1c: {parseWebPagePending, "web_page_pending", nil},
		0x5f07b4bc: {parseWebPage, "web_page", nil},
		0xca820ed7: {nil, "web_page_layer58", nil},
		0xa31ea0b5: {nil, "web_page_old", nil},
		0xe89c45b2: {nil, "web_page_layer107", nil},
		0xfa64e172: {nil, "web_page_layer104_2", nil},
		0x85849473: {parseWebPageNotModified, "web_page_not_modified", nil},
		0x1c570ed1: {parseWebDocument, "web_document", nil},
		0xf9c8bcc6: {parseWebDocumentNoProxy, "web_document_no_proxy", nil},
		0xc61acbd8: {nil, "web_page_attribute_theme", nil},

		// instant-view pages (recognized, not decoded: nothing in the nine
		// cache4 tables stores them at top level)
		0x98657f0d: {nil, "page", nil},
		0xae891bec: {nil, "page_layer110", nil},
		0x556ec7aa: {nil, "page_full_layer67", nil},
		0x8e3f9ebe: {nil, "page_part_layer67", nil},
		0xd7a19d69: {nil, "page_full_layer82", nil},
		0x8dee6c44: {nil, "page_part_layer82", nil},
		0x13567e8a: {nil, "page_block_unsupported", nil},
		0x70abc3fd: {nil, "page_block_title", nil},
		0x8ffa9a1f: {nil, "page_block_subtitle", nil},
		0xbaafe5e0: {nil, "page_block_author_date", nil},
		0xbfd064ec: {nil, "page_block_header", nil},
		0xf12bb6e1: {nil, "page_block_subheader", nil},
		0x467a0766: {nil, "page_block_paragraph", nil},
		0xc070d93e: {nil, "page_block_preformatted", nil},
		0x48870999: {nil, "page_block_footer", nil},
		0xdb20b188: {nil, "page_block_divider", nil},
		0xce0d37b0: {nil, "page_block_anchor", nil},
		0xe4e88011: {nil, "page_block_list", nil},
		0x263d7c26: {nil, "page_block_blockquote", nil},
		0x4f4456d3: {nil, "page_block_pullquote", nil},
		0x1759c560: {nil, "page_block_photo", nil},
		0x7c8fe7b6: {nil, "page_block_video", nil},
		0x39f23300: {nil, "page_block_cover", nil},
		0xa8718dc5: {nil, "page_block_embed", nil},
		0xf259a80b: {nil, "page_block_embed_post", nil},
		0x65a0fa4d: {nil, "page_block_collage", nil},
		0x031f9590: {nil, "page_block_slideshow", nil},
		0xef1751b5: {nil, "page_block_channel", nil},
		0x804361ea: {nil, "page_block_audio", nil},
		0x1e148390: {nil, "page_block_kicker", nil},
		0xbf4dea82: {nil, "page_block_table", nil},
		0x76768bed: {nil, "page_block_details", nil},
		0x16115a96: {nil, "page_block_related_articles", nil},
		0xa44f3ef6: {nil, "page_block_map", nil},
		0x34566b6a: {nil, "page_caption", nil},
		0x25e073fc: {nil, "page_table_row", nil},
		0x29a30110: {nil, "page_table_cell", nil},
		0x25e8a1cc: {nil, "page_list_item_text", nil},
		0x08b31c4f: {nil, "page_list_item_blocks", nil},
		0x5e068047: {nil, "page_list_ordered_item_text", nil},
		0x98dd8936: {nil, "page_list_ordered_item_blocks", nil},
		0xb390dc08: {nil, "page_related_article", nil},

		// instant-view rich text
		0xdc3d824f: {nil, "text_empty", nil},
		0x744694e0: {nil, "text_plain", nil},
		0x6724abc4: {nil, "text_bold", nil},
		0xd912a59c: {nil, "text_italic", nil},
		0xc12622c4: {nil, "text_underline", nil},
		0x9bf8bb95: {nil, "text_strike", nil},
		0x6c3f19b9: {nil, "text_fixed", nil},
		0x3c2884c1: {nil, "text_url", nil},
		0xde5a0dd6: {nil, "text_email", nil},
		0x7e6260d7: {nil, "text_concat", nil},
		0xed6a8504: {nil, "text_subscript", nil},
		0xc7fb5e01: {nil, "text_superscript", nil},
		0x034b8621: {nil, "text_marked", nil},
		0x1ccb966a: {nil, "text_phone", nil},
		0x081ccf4f: {nil, "text_image", nil},
		0x35553762: {nil, "text_anchor", nil},

		// message entities
		0xbb92ba95: {parseMessageEntityUnknown, "message_entity_unknown", nil},
		0xfa04579d: {parseMessageEntityMention, "message_entity_mention", nil},
		0x6f635b0d: {parseMessageEntityHashtag, "message_entity_hashtag", nil},
		0x6cef8ac7: {parseMessageEntityBotCommand, "message_entity_bot_command", nil},
		0x6ed02538: {parseMessageEntityUrl, "message_entity_url", nil},
		0x64e475c2: {parseMessageEntityEmail, "message_entity_email", nil},
		0xbd610bc9: {parseMessageEntityBold, "message_entity_bold", nil},
		0x826f8b60: {parseMessageEntityItalic, "message_entity_italic", nil},
		0x28a20571: {parseMessageEntityCode, "message_entity_code", nil},
		0x73924be0: {parseMessageEntityPre, "message_entity_pre", nil},
		0x76a6d327: {parseMessageEntityTextUrl, "message_entity_text_url", nil},
		0x352dca58: {parseMessageEntityMentionName, "message_entity_mention_name", nil},
		0x208e68c9: {parseInputMessageEntityMentionName, "input_message_entity_mention_name", nil},
		0x9b69e34b: {parseMessageEntityPhone, "message_entity_phone", nil},
		0x4c4e743f: {parseMessageEntityCashtag, "message_entity_cashtag", nil},
		0x9c4e7e8b: {parseMessageEntityUnderline, "message_entity_underline", nil},
		0xbf0693d4: {parseMessageEntityStrike, "message_entity_strike", nil},
		0x020df5d0: {parseMessageEntityBlockquote, "message_entity_blockquote", nil},
		0x761e6af4: {parseMessageEntityBankCard, "message_entity_bank_card", nil},

		// reply markup and keyboards
		0xa03e5b85: {parseReplyKeyboardHide, "reply_keyboard_hide", nil},
		0xf4108aa0: {parseReplyKeyboardForceReply, "reply_keyboard_force_reply", nil},
		0x3502758c: {parseReplyKeyboardMarkup, "reply_keyboard_markup", nil},
		0x48a30254: {parseReplyInlineMarkup, "reply_inline_markup", nil},
		0x77608b83: {parseKeyboardButtonRow, "keyboard_button_row", nil},
		0xa2fa4880: {parseKeyboardButton, "keyboard_button", nil},
		0x258aff05: {parseKeyboardButtonUrl, "keyboard_button_url", nil},
		0x683a5e46: {parseKeyboardButtonCallback, "keyboard_button_callback", nil},
		0xb16a6c29: {parseKeyboardButtonRequestPhone, "keyboard_button_request_phone", nil},
		0xfc796b3f: {parseKeyboardButtonRequestGeoLocation, "keyboard_button_request_geo_location", nil},
		0x0568a748: {parseKeyboardButtonSwitchInline, "keyboard_button_switch_inline", nil},
		0x50f41ccf: {parseKeyboardButtonGame, "keyboard_button_game", nil},
		0xafd93fbb: {parseKeyboardButtonBuy, "keyboard_button_buy", nil},
		0x10b78d29: {parseKeyboardButtonUrlAuth, "keyboard_button_url_auth", nil},
		0xd02e7fd4: {nil, "input_keyboard_button_url_auth", nil},
		0xbbc7515d: {nil, "keyboard_button_request_poll", nil},

		// encrypted chats
		0xab7ec0a0: {parseEncryptedChatEmpty, "encrypted_chat_empty", nil},
		0x3bf703dc: {parseEncryptedChatWaiting, "encrypted_chat_waiting", nil},
		0xc878527e: {parseEncryptedChatRequested, "encrypted_chat_requested", nil},
		0x62718a82: {nil, "encrypted_chat_requested_folder", nil},
		0xfda9a7b7: {nil, "encrypted_chat_requested_old", nil},
		0xfa56ce36: {parseEncryptedChat, "encrypted_chat", nil},
		0x6601d14f: {nil, "encrypted_chat_old", nil},
		0x13d6dd27: {parseEncryptedChatDiscarded, "encrypted_chat_discarded", nil},
		0x4a17a289: {nil, "encrypted_file", nil},
		0xc21f497e: {nil, "encrypted_file_empty", nil},
		0xed18c118: {nil, "encrypted_message", nil},
		0x23734b06: {nil, "encrypted_message_service", nil},

		// polls and games
		0x86e18161: {parsePoll, "poll", nil},
		0xd5529d06: {nil, "poll_layer111", nil},
		0xaf746786: {nil, "poll_to_delete", nil},
		0x6ca9c2e9: {parsePollAnswer, "poll_answer", nil},
		0x5755785a: {parsePollResultsLayer108, "poll_results_layer108", nil},
		0xc87024a2: {nil, "poll_results_layer111", nil},
		0xbadcc1a3: {nil, "poll_results", nil},
		0x3b6ddad2: {parsePollAnswerVoters, "poll_answer_voters", nil},
		0xbdf9653b: {parseGame, "game", nil},

		// bots
		0xc27ac8c7: {parseBotCommand, "bot_command", nil},
		0x98e81d3a: {parseBotInfo, "bot_info", nil},
		0xbb2e37ce: {parseBotInfoEmpty, "bot_info_empty_layer48", nil},
		0x09cf585d: {nil, "bot_info_layer48", nil},

		// restriction reasons
		0xd072acb4: {parseRestrictionReason, "restriction_reason", nil},

		// inputs referenced by stored shapes
		0xee8c1e86: {parseInputChannelEmpty, "input_channel_empty", nil},
		0xafeb712e: {parseInputChannel, "input_channel", nil},
		0xb98886cf: {parseInputUserEmpty, "input_user_empty", nil},
		0xf7c1b13f: {parseInputUserSelf, "input_user_self", nil},
		0xd8292816: {parseInputUser, "input_user", nil},
		0x7f3b18ea: {nil, "input_peer_empty", nil},
		0x7da07ec9: {nil, "input_peer_self", nil},
		0x179be863: {nil, "input_peer_chat", nil},
		0x7b8e7de6: {nil, "input_peer_user", nil},
		0x20adaef8: {nil, "input_peer_channel", nil},
		0x1cd7bf0d: {nil, "input_photo_empty", nil},
		0x3bb3b94a: {nil, "input_photo", nil},
		0x1abfb575: {nil, "input_document", nil},
		0x72f0eaae: {nil, "input_document_empty", nil},
		0xd8aa840f: {parseInputGroupCall, "input_group_call", nil},

		// dialogs and drafts
		0x2c171f72: {nil, "dialog", nil},
		0x71bd134c: {nil, "dialog_folder", nil},
		0xfd8e711f: {nil, "draft_message", nil},
		0x1b0c841a: {nil, "draft_message_empty", nil},
		0xba4baec5: {nil, "draft_message_empty_layer81", nil},

		// legacy standalone media objects
		0xc10658a8: {nil, "video_empty_layer45", nil},
		0xf72887d3: {nil, "video_layer45", nil},
		0xee9f4a4d: {nil, "video_old3", nil},
		0x55555553: {nil, "video_old2", nil},
		0x5a04a49f: {nil, "video_old", nil},
		0x586988d8: {nil, "audio_empty_layer45", nil},
		0xf9e35055: {nil, "audio_layer45", nil},
		0x427425e7: {nil, "audio_old", nil},
		0xc7ac6496: {nil, "audio_old2", nil},

		// secure values (passport), recognized only
		0x187fa0ca: {nil, "secure_value", nil},
		0x7bf015ea: {nil, "secure_data", nil},
		0xe0277a62: {nil, "secure_file", nil},
		0x64199744: {nil, "secure_file_empty", nil},

		// miscellaneous catalogue completeness
		0x1e36fded: {nil, "rpc_pending", nil},
		0xc4b9f9bb: {nil, "error", nil},
		0x73f1f8dc: {nil, "msg_container", nil},
		0xae500895: {nil, "updates_too_long", nil},
		0x74ae4240: {nil, "updates", nil},
		0xd3f45784: {nil, "wall_paper", nil},
		0x8af40b25: {nil, "wall_paper_no_file", nil},
		0xa437c3ed: {nil, "wall_paper_settings", nil},
		0x028e0c76: {nil, "theme", nil},
		0x9c14984a: {nil, "theme_settings", nil},
		0xcb296bf8: {nil, "chat_invite_exported", nil},
		0x69df3769: {nil, "chat_invite_empty", nil},
		0x61695cb0: {nil, "phone_call_protocol_layer110", nil},
		0xfc878fc8: {nil, "phone_call_protocol", nil},
		0xffe6ab67: {nil, "phone_call_layer86", nil},
		0x8742ae7f: {nil, "phone_call_waiting", nil},
		0x50ca4de1: {nil, "file_hash", nil},
		0xf141b5e1: {nil, "folder", nil},
		0xe9baa668: {nil, "folder_peer", nil},
		0x1f4e5646: {nil, "send_message_record_round_action", nil},
		0x88f27fbc: {nil, "send_message_record_video_action", nil},
		0xd52f73f7: {nil, "send_message_record_audio_action", nil},
		0x16bf744e: {nil, "send_message_typing_action", nil},
		0xfd5ec8f5: {nil, "send_message_cancel_action", nil},
	}
}

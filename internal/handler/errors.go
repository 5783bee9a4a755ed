package handler

// Generic HTTP error messages for client responses.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidInteger        = "must be an integer"

	ErrMsgNotReady          = "data not built yet"
	ErrMsgLevelNotFound     = "level not found"
	ErrMsgRewardNotFound    = "reward not found"
	ErrMsgLootTableNotFound = "loot table not found"
	ErrMsgBucketNotFound    = "loot bucket not found"
	ErrMsgRenderFailed      = "Failed to render data"
)

// Health responses
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// Log messages
const (
	LogMsgEncodeFailed   = "Failed to encode JSON response"
	LogMsgWriteFailed    = "Failed to write response buffer"
	LogMsgInvalidParams  = "Invalid request parameters"
	LogMsgEffectiveError = "Effective loot table failed"
	LogMsgRenderFailed   = "Failed to render data.js"
)

// Path and query parameter names
const (
	ParamLevel       = "level"
	ParamID          = "id"
	ParamName        = "name"
	ParamPlayerLevel = "player_level"
	ParamTrackLevel  = "track_level"
	ParamSinglePct   = "single_pct"
	ParamAtLeastPct  = "at_least_pct"
	ParamOwned       = "owned"
)

// ContentTypeJavaScript is served for data.js.
const ContentTypeJavaScript = "application/javascript; charset=utf-8"

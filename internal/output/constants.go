package output

// Browser globals assigned by data.js.
const (
	VarLevels       = "PVP_DATA"
	VarRewardMeta   = "PVP_REWARD_META"
	VarLootTables   = "PVP_LOOT_TABLES"
	VarLootContents = "PVP_LOOT_CONTENTS"
	VarBuckets      = "PVP_BUCKET_CONTENTS"
)

// Output file names.
const (
	FileDataJS       = "data.js"
	FileLevels       = "pvp_data.json"
	FileRewardMeta   = "pvp_reward_meta.json"
	FileLootTables   = "pvp_loot_tables.json"
	FileLootContents = "pvp_loot_contents.json"
	FileBuckets      = "pvp_bucket_contents.json"
)

// Log messages
const (
	LogMsgOutputWritten = "Output written"
)

// Log field keys
const (
	LogFieldPath  = "path"
	LogFieldBytes = "bytes"
	LogFieldFiles = "files"
)

// Error messages
const (
	ErrMsgCreateDir  = "failed to create output directory"
	ErrMsgEncode     = "failed to encode table"
	ErrMsgWriteFile  = "failed to write output file"
	ErrMsgNilResult  = "nothing to write"
)

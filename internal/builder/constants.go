package builder

// Log messages
const (
	LogMsgBuildStarted      = "Build started"
	LogMsgBuildCompleted    = "Build completed"
	LogMsgBuildFailed       = "Build failed"
	LogMsgSheetLoaded       = "Sheet loaded"
	LogMsgUnresolvedPointer = "Reward points to a missing loot structure"
)

// Log field keys
const (
	LogFieldSheet      = "sheet"
	LogFieldPath       = "path"
	LogFieldRows       = "rows"
	LogFieldError      = "error"
	LogFieldRewardID   = "reward_id"
	LogFieldTableID    = "table_id"
	LogFieldPointer    = "pointer"
	LogFieldKind       = "kind"
	LogFieldDuration   = "duration"
	LogFieldRewards    = "rewards"
	LogFieldTables     = "loot_tables"
	LogFieldBuckets    = "loot_buckets"
	LogFieldLevelPools = "level_pools"
)

// Error messages
const (
	ErrMsgReadSheet     = "failed to read sheet"
	ErrMsgSheetInvalid  = "sheet failed schema validation"
	ErrMsgResolveTables = "failed to resolve loot tables"
	ErrMsgNameResolver  = "failed to create name resolver"
)

// Unresolved pointer kinds, used as metric label values.
const (
	PointerKindTable  = "loot_table"
	PointerKindBucket = "loot_bucket"
)

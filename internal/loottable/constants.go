package loottable

// ============================================================================
// Sheet Columns
// ============================================================================

const (
	ColLootTableID      = "LootTableID"
	ColItem             = "Item"
	ColGearScoreRange   = "GearScoreRange"
	ColConditions       = "Conditions"
	ColRule             = "AND/OR"
	ColRollBonusSetting = "RollBonusSetting"
	ColMaxRoll          = "MaxRoll"
)

// Sibling row suffixes joined to a table by shared base id.
const (
	ProbsSuffix = "_Probs"
	QtySuffix   = "_Qty"
)

// ============================================================================
// Effective Model
// ============================================================================

// Evaluation modes of an effective loot-table model.
const (
	ModeSingle = "SINGLE"
	ModeAND    = "AND"
	ModeOR     = "OR"
)

// DefaultGearScoreCondition is assumed for gear-score lookups on tables
// that declare no condition.
const DefaultGearScoreCondition = "Level"

// NoGearScore marks a tier without a gear-score range.
const NoGearScore = "None"

// Condition keywords, matched case-insensitively.
const (
	condTrackKeyword = "pvp"
	condXPKeyword    = "xp"
	condLevelKeyword = "level"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgTablesResolved  = "Resolved loot tables"
	LogMsgDuplicateTable  = "Duplicate loot table id, keeping first"
	LogMsgTableLoop       = "Loot table reference loop"
	LogMsgMissingSubTable = "Sub-table not found"
)

const (
	LogFieldTables  = "tables"
	LogFieldTableID = "table_id"
)

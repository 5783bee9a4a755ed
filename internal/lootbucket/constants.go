package lootbucket

// Loot-bucket sheet columns. Indexed columns carry the slot index as suffix.
const (
	ColRowMarker  = "RowPlaceholders"
	ColLootBucket = "LootBucket"
	ColItem       = "Item"
	ColQuantity   = "Quantity"
	ColTags       = "Tags"
)

// FirstRowMarker identifies the row declaring the index -> bucket map.
const FirstRowMarker = "FIRSTROW"

// Level tags, e.g. "Level:10-20" or "Level:25".
const (
	LevelTagPrefix = "level:"

	// DefaultLevelTagMax is the upper bound of a level tag without one.
	DefaultLevelTagMax = 70
)

const (
	LogMsgBucketsResolved = "Resolved loot buckets"
	LogMsgNoFirstRow      = "Loot bucket sheet has no first row, no buckets declared"
)

const (
	LogFieldBuckets = "buckets"
	LogFieldItems   = "items"
)

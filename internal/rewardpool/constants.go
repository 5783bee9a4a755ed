package rewardpool

// ============================================================================
// Progression Range
// ============================================================================

// MinLevel is the first progression level a distribution is built for.
const MinLevel = 0

// MaxLevel is the last progression level a distribution is built for (inclusive).
const MaxLevel = 230

// DrawCount is the number of independent draws per notch used for the
// at-least-once odds.
const DrawCount = 3

// PercentPlaces is the number of decimals kept on published percentages.
const PercentPlaces = 4

// ============================================================================
// Level-gating Buckets
// ============================================================================

// Recognized level-gating bucket names (compared lowercased and trimmed).
const (
	BucketOdds  = "odds"
	BucketEvens = "evens"
	BucketFifth = "5ths"
	BucketTenth = "10ths"
)

// PostCapLevel is the level above which the post-200 buckets apply.
const PostCapLevel = 200

// postCapAliases are the spellings of the post-200 bucket found in the sheets.
var postCapAliases = map[string]bool{
	"post 200":    true,
	"post200":     true,
	"post_200":    true,
	"post200+":    true,
	"post200plus": true,
}

// ============================================================================
// Reward Classes
// ============================================================================

// Reward id prefixes that identify claim-once reward classes.
const (
	ArtifactIDPrefix    = "ITM_Artifacts"
	EntitlementIDPrefix = "ENT_"
)

// SkinMarker identifies skin entitlements inside an entitlement id (case-insensitive).
const SkinMarker = "skin"

// ArtifactStageMarker marks a weight row whose ExcludeTypeStage tags it as an artifact.
const ArtifactStageMarker = "artifact"

// ============================================================================
// Sheet Columns
// ============================================================================

// Reward-weight sheet columns, suffixed by notch index.
const (
	ColRewardID         = "RewardId"
	ColRewardIDAlt      = "RewardID"
	ColRandomWeights    = "RandomWeights"
	ColBucket           = "Bucket"
	ColSelectOnceOnly   = "SelectOnceOnly"
	ColExcludeTypeStage = "ExcludeTypeStage"
	ColRowPlaceholders  = "RowPlaceholders"
)

// Reward sheet columns.
const (
	ColItem          = "Item"
	ColName          = "Name"
	ColDescription   = "Description"
	ColIconPath      = "IconPath"
	ColRollOnPresent = "RollOnPresent"
	ColQuantity      = "Quantity"
	ColBuyCost       = "BuyCategoricalProgressionCost"
	ColBuyCurrency   = "BuyCategoricalProgressionCurrencyId"
	ColGameEvent     = "GameEvent"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgPoolsBuilt      = "Built level distribution"
	LogMsgRewardsParsed   = "Parsed reward metadata"
	LogMsgDuplicateReward = "Duplicate reward id in reward sheet, keeping first"
)

const (
	LogFieldLevels   = "levels"
	LogFieldRows     = "rows"
	LogFieldRewards  = "rewards"
	LogFieldRewardID = "reward_id"
)

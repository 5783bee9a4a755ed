package naming

// ============================================================================
// Localization Keys
// ============================================================================

// LocSigil prefixes a localization key in raw names.
const LocSigil = "@"

// NameKeySuffix is the conventional suffix of display-name keys; lookups
// retry without it.
const NameKeySuffix = "_name"

// EmoteKeyPrefix marks localization keys that name emotes.
const EmoteKeyPrefix = "ui_emote"

// Affixes stripped from a key when deriving a human label from it.
var (
	labelPrefixes = []string{"ui_emote_", "ui_", "pvp_"}
	labelSuffixes = []string{"_mastername", "_name", "_description", "_desc"}
)

// ============================================================================
// Event Bonus
// ============================================================================

// eventFamily ties a reward id prefix to the game-event field holding its
// bonus and the divisor converting it to display units.
type eventFamily struct {
	prefix  string
	field   string
	divisor float64
}

// Event-reward families, matched case-insensitively on reward id prefix.
var eventFamilies = []eventFamily{
	{prefix: "pvp_factiontokens", field: "FactionTokens", divisor: 1},
	{prefix: "pvp_coin", field: "CurrencyReward", divisor: 100},
	{prefix: "pvp_shard", field: "CategoricalProgressionReward", divisor: 1},
}

// ============================================================================
// Strategy Names
// ============================================================================

// Name strategies, in chain order.
const (
	StrategyLocalized = "localized"
	StrategyDerived   = "derived"
	StrategyItemByID  = "item_by_id"
	StrategyHousing   = "housing_by_id"
	StrategyRaw       = "raw"
)

// Icon strategies, in chain order.
const (
	StrategyEmote         = "emote"
	StrategyHousingEmote  = "housing_emote_fallback"
	StrategyItemByName    = "item_by_name"
	StrategyIconItemByID  = "item_by_id"
	StrategyIconHousingID = "housing_by_id"
)

// Resolved fields, used as metric labels.
const (
	FieldName = "name"
	FieldIcon = "icon"
)

// DefaultCacheSize bounds the bucket item naming memo.
const DefaultCacheSize = 4096

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgRewardsEnriched = "Enriched reward metadata"
	LogMsgItemsEnriched   = "Enriched loot bucket items"
	LogMsgUnresolvedName  = "No catalog name for reward"
	LogMsgMissingEvent    = "Game event not found for event reward"
)

const (
	LogFieldRewards   = "rewards"
	LogFieldItems     = "items"
	LogFieldRewardID  = "reward_id"
	LogFieldGameEvent = "game_event"
	LogFieldCacheSize = "cache_size"
)

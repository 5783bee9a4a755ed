package domain

// Notches are the three parallel reward slots resolved per progression level.
var Notches = [...]int{1, 2, 3}

// RewardRow is one weighted contribution of a reward to a notch pool.
type RewardRow struct {
	RewardID         string `json:"rewardId"`
	Notch            int    `json:"notch"`
	BucketName       string `json:"bucket"`
	Weight           int    `json:"weight"`
	SelectOnceOnly   bool   `json:"selectOnceOnly"`
	ExcludeTypeStage string `json:"excludeTypeStage"`
	RowName          string `json:"rowName,omitempty"`
}

// WeightedReward is a merged pool candidate with its draw odds.
type WeightedReward struct {
	RewardID                 string  `json:"rewardId"`
	Weight                   int     `json:"weight"`
	SelectOnceOnly           bool    `json:"selectOnceOnly"`
	PercentSingle            float64 `json:"percentSingle"`
	PercentAtLeastOneOfThree float64 `json:"percentAtLeastOneOfThree"`
}

// NotchPool is the distribution of one notch at one progression level.
type NotchPool struct {
	TotalWeight int              `json:"totalWeight"`
	Rewards     []WeightedReward `json:"rewards"`
}

// LevelDistribution maps stringified level -> stringified notch -> pool.
type LevelDistribution map[string]map[string]NotchPool

// Pool returns the pool at level/notch, if present.
func (d LevelDistribution) Pool(level, notch string) (NotchPool, bool) {
	notches, ok := d[level]
	if !ok {
		return NotchPool{}, false
	}
	p, ok := notches[notch]
	return p, ok
}

// RewardMeta is the per-reward metadata record.
// It is created raw from the reward sheet and later enriched in place:
// Name, Icon and Rarity are overwritten with resolved display values.
type RewardMeta struct {
	RewardID       string  `json:"-"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Icon           string  `json:"icon"`
	Rarity         string  `json:"rarity"`
	RollOnPresent  bool    `json:"rollOnPresent"`
	Quantity       *int    `json:"quantity"`
	BuyCost        *int    `json:"buyCost"`
	BuyCurrency    string  `json:"buyCurrency"`
	RawItemField   string  `json:"rawItemField"`
	LootTableID    *string `json:"lootTableId"`
	DirectBucketID *string `json:"directBucketId"`
	GameEvent      string  `json:"gameEvent"`
	UniqueEligible bool    `json:"uniqueEligible"`
	IsSkin         bool    `json:"isSkin"`
}

// RewardMetaTable is keyed by reward id.
type RewardMetaTable map[string]*RewardMeta

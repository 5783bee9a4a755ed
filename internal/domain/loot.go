package domain

import "encoding/json"

// Type prefixes carried by encoded item references.
const (
	TablePointerPrefix  = "[LTID]"
	BucketPointerPrefix = "[LBID]"
)

// Loot-table combination rules.
const (
	RuleOR     = "OR"
	RuleAND    = "AND"
	RuleSingle = "SINGLE"
	RuleLoop   = "LOOP"
)

// LootTier is one slot of a loot table seen as a threshold ladder.
type LootTier struct {
	Min      int     `json:"min"`
	GSRange  *string `json:"gsRange"`
	SubTable *string `json:"subTable"`
}

// LootTable is the tier view of a loot table.
type LootTable struct {
	ID               string     `json:"-"`
	Condition        *string    `json:"condition"`
	Rule             string     `json:"rule"`
	RollBonusSetting string          `json:"rollBonusSetting"`
	MaxRoll          int             `json:"-"`
	MaxRollValue     json.RawMessage `json:"maxRoll"`
	Tiers            []LootTier      `json:"tiers"`
}

// LootEntry is one slot of a loot table seen as roll contents. Raw is the
// slot value as written in the sheet.
type LootEntry struct {
	Raw     string  `json:"raw"`
	Qty     *string `json:"qty"`
	GSRange *string `json:"gsRange"`
	MinRoll int     `json:"minRoll"`
}

// LootContents is the roll-contents view of a loot table. MaxRollValue is
// the sheet value as written; MaxRoll is its integer reading.
// Sub-table and sub-bucket references stay encoded in Raw.
type LootContents struct {
	ID               string      `json:"-"`
	Condition        *string     `json:"condition"`
	Rule             string      `json:"rule"`
	RollBonusSetting string          `json:"rollBonusSetting"`
	MaxRoll          int             `json:"-"`
	MaxRollValue     json.RawMessage `json:"maxRoll"`
	Entries          []LootEntry     `json:"entries"`
}

// BucketItem is a concrete weighted item inside a loot bucket.
// DisplayName, Icon and Rarity are filled by enrichment.
type BucketItem struct {
	ItemID      string   `json:"itemId"`
	Qty         *string  `json:"qty"`
	Tags        []string `json:"tags"`
	DisplayName string   `json:"displayName"`
	Icon        string   `json:"icon"`
	Rarity      string   `json:"rarity"`
}

// BucketContents maps bucket name -> items.
type BucketContents map[string][]BucketItem

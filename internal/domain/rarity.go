package domain

import "strings"

// Rarity labels as they appear in the item catalogs.
const (
	RarityArtifact  = "artifact"
	RarityLegendary = "legendary"
	RarityEpic      = "epic"
	RarityRare      = "rare"
	RarityUncommon  = "uncommon"
	RarityCommon    = "common"
)

// RarityColor is the dark background used behind item art per rarity.
var RarityColor = map[string]string{
	RarityArtifact:  "#7f1d1d",
	RarityLegendary: "#9a3412",
	RarityEpic:      "#5b21b6",
	RarityRare:      "#1e40af",
	RarityUncommon:  "#14532d",
	RarityCommon:    "#334155",
}

// RarityClass maps a rarity label to its CSS class.
func RarityClass(rarity string) string {
	key := strings.ToLower(strings.TrimSpace(rarity))
	if _, ok := RarityColor[key]; ok {
		return "rar-" + key
	}
	return "rar-unknown"
}

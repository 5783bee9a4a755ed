package domain

// CatalogRecord is the display record a catalog yields for a key.
type CatalogRecord struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Rarity string `json:"rarity"`
}

// GameEvent carries the numeric reward fields of a game-event row by field name.
type GameEvent struct {
	ID      string
	Rewards map[string]float64
}

// Reward returns the numeric value of field, if the event defines it.
func (e GameEvent) Reward(field string) (float64, bool) {
	v, ok := e.Rewards[field]
	return v, ok
}

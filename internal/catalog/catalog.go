// Package catalog holds the read-only lookup tables used to enrich reward
// and bucket item metadata: items, localization, emotes, housing and game
// events. Every lookup is case-insensitive and a missing source behaves as
// an empty catalog.
package catalog

import (
	"strings"

	"github.com/osse101/PvPTrack_Go/internal/domain"
)

// Catalogs groups every enrichment source.
type Catalogs struct {
	itemsByID    map[string]domain.CatalogRecord
	itemsByName  map[string]domain.CatalogRecord
	localization map[string]string
	emoteIcons   map[string]string
	housing      map[string]domain.CatalogRecord
	events       map[string]domain.GameEvent
	items        int
}

// New creates empty catalogs.
func New() *Catalogs {
	return &Catalogs{
		itemsByID:    make(map[string]domain.CatalogRecord),
		itemsByName:  make(map[string]domain.CatalogRecord),
		localization: make(map[string]string),
		emoteIcons:   make(map[string]string),
		housing:      make(map[string]domain.CatalogRecord),
		events:       make(map[string]domain.GameEvent),
	}
}

func key(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// AddItem registers an item record by id and by name.
func (c *Catalogs) AddItem(rec domain.CatalogRecord) {
	c.items++
	if k := key(rec.ID); k != "" {
		c.itemsByID[k] = rec
	}
	if k := key(rec.Name); k != "" {
		c.itemsByName[k] = rec
	}
}

// AddLocalization registers a localized string.
func (c *Catalogs) AddLocalization(k, value string) {
	if kk := key(k); kk != "" {
		c.localization[kk] = value
	}
}

// AddEmote registers an emote icon under its display key.
func (c *Catalogs) AddEmote(displayKey, icon string) {
	if k := key(displayKey); k != "" {
		c.emoteIcons[k] = icon
	}
}

// AddHousing registers a housing record by id.
func (c *Catalogs) AddHousing(rec domain.CatalogRecord) {
	if k := key(rec.ID); k != "" {
		c.housing[k] = rec
	}
}

// AddEvent registers a game event by id.
func (c *Catalogs) AddEvent(ev domain.GameEvent) {
	if k := key(ev.ID); k != "" {
		c.events[k] = ev
	}
}

// ItemByID looks up the item catalog by item id.
func (c *Catalogs) ItemByID(id string) (domain.CatalogRecord, bool) {
	rec, ok := c.itemsByID[key(id)]
	return rec, ok
}

// ItemByName looks up the item catalog by display name.
func (c *Catalogs) ItemByName(name string) (domain.CatalogRecord, bool) {
	rec, ok := c.itemsByName[key(name)]
	return rec, ok
}

// Localize looks up a localization key, sigil already stripped.
func (c *Catalogs) Localize(k string) (string, bool) {
	v, ok := c.localization[key(k)]
	return v, ok
}

// EmoteIcon looks up an emote icon by display key.
func (c *Catalogs) EmoteIcon(displayKey string) (string, bool) {
	v, ok := c.emoteIcons[key(displayKey)]
	return v, ok
}

// Housing looks up the housing catalog by item id.
func (c *Catalogs) Housing(id string) (domain.CatalogRecord, bool) {
	rec, ok := c.housing[key(id)]
	return rec, ok
}

// Event looks up a game event by id.
func (c *Catalogs) Event(id string) (domain.GameEvent, bool) {
	ev, ok := c.events[key(id)]
	return ev, ok
}

// Sizes reports the number of records per catalog.
func (c *Catalogs) Sizes() map[string]int {
	return map[string]int{
		NameItems:        c.items,
		NameLocalization: len(c.localization),
		NameEmotes:       len(c.emoteIcons),
		NameHousing:      len(c.housing),
		NameGameEvents:   len(c.events),
	}
}

package naming

import (
	"strings"

	"github.com/osse101/PvPTrack_Go/internal/domain"
)

// Catalog is the lookup surface the chain resolves against.
type Catalog interface {
	Localizer
	ItemByID(id string) (domain.CatalogRecord, bool)
	ItemByName(name string) (domain.CatalogRecord, bool)
	EmoteIcon(displayKey string) (string, bool)
	Housing(id string) (domain.CatalogRecord, bool)
	Event(id string) (domain.GameEvent, bool)
}

// Subject is what a chain resolves: the raw fields of a reward or bucket item.
type Subject struct {
	RewardID string
	RawName  string
	RawItem  string
}

// Resolved is the outcome of the chain.
type Resolved struct {
	Name   string
	Icon   string
	Rarity string

	NameStrategy string
	IconStrategy string
}

func isPointer(s string) bool {
	return strings.HasPrefix(s, domain.TablePointerPrefix) || strings.HasPrefix(s, domain.BucketPointerPrefix)
}

// IsPlaceholder reports whether a name is not yet fit for display: empty,
// a localization key, a pointer, or one of the subject's ids.
func IsPlaceholder(name string, s Subject) bool {
	n := strings.TrimSpace(name)
	switch {
	case n == "":
		return true
	case IsLocKey(n), isPointer(n):
		return true
	case s.RewardID != "" && n == s.RewardID:
		return true
	case s.RawItem != "" && n == s.RawItem:
		return true
	}
	return false
}

// catalogItemID is the raw item id usable for catalog lookups; pointers
// never match a catalog.
func (s Subject) catalogItemID() string {
	id := strings.TrimSpace(s.RawItem)
	if isPointer(id) {
		return ""
	}
	return id
}

// nameCandidate is a proposed display name. Weak names are derived labels
// that a later catalog hit may still replace.
type nameCandidate struct {
	value string
	weak  bool
}

type nameStrategy struct {
	name    string
	resolve func(cat Catalog, s Subject) (nameCandidate, bool)
}

type iconStrategy struct {
	name    string
	resolve func(cat Catalog, s Subject, displayName string) (domain.CatalogRecord, bool)
}

// catalogName proposes the localized name of a catalog record.
func catalogName(cat Catalog, s Subject, rec domain.CatalogRecord) (nameCandidate, bool) {
	if rec.Name == "" {
		return nameCandidate{}, false
	}
	v, derived := Localize(cat, rec.Name)
	if IsPlaceholder(v, s) {
		return nameCandidate{}, false
	}
	return nameCandidate{value: v, weak: derived}, true
}

// nameChain runs after localization, in order, while the name is weak or a placeholder.
var nameChain = []nameStrategy{
	{
		name: StrategyItemByID,
		resolve: func(cat Catalog, s Subject) (nameCandidate, bool) {
			id := s.catalogItemID()
			if id == "" {
				return nameCandidate{}, false
			}
			rec, ok := cat.ItemByID(id)
			if !ok {
				return nameCandidate{}, false
			}
			return catalogName(cat, s, rec)
		},
	},
	{
		name: StrategyHousing,
		resolve: func(cat Catalog, s Subject) (nameCandidate, bool) {
			id := s.catalogItemID()
			if id == "" {
				return nameCandidate{}, false
			}
			rec, ok := cat.Housing(id)
			if !ok {
				return nameCandidate{}, false
			}
			return catalogName(cat, s, rec)
		},
	},
}

// iconChain is tried in order; the first record with an icon wins.
var iconChain = []iconStrategy{
	{
		name: StrategyEmote,
		resolve: func(cat Catalog, s Subject, _ string) (domain.CatalogRecord, bool) {
			if !IsEmoteKey(s.RawName) {
				return domain.CatalogRecord{}, false
			}
			for _, k := range []string{EmoteKey(s.RawName), NormalizeKey(s.RawName)} {
				if icon, ok := cat.EmoteIcon(k); ok {
					return domain.CatalogRecord{Icon: icon}, true
				}
			}
			return domain.CatalogRecord{}, false
		},
	},
	{
		name: StrategyHousingEmote,
		resolve: func(cat Catalog, s Subject, _ string) (domain.CatalogRecord, bool) {
			if !IsEmoteKey(s.RawName) || s.catalogItemID() == "" {
				return domain.CatalogRecord{}, false
			}
			return cat.Housing(s.catalogItemID())
		},
	},
	{
		name: StrategyItemByName,
		resolve: func(cat Catalog, _ Subject, displayName string) (domain.CatalogRecord, bool) {
			if displayName == "" {
				return domain.CatalogRecord{}, false
			}
			return cat.ItemByName(displayName)
		},
	},
	{
		name: StrategyIconItemByID,
		resolve: func(cat Catalog, s Subject, _ string) (domain.CatalogRecord, bool) {
			if s.catalogItemID() == "" {
				return domain.CatalogRecord{}, false
			}
			return cat.ItemByID(s.catalogItemID())
		},
	},
	{
		name: StrategyIconHousingID,
		resolve: func(cat Catalog, s Subject, _ string) (domain.CatalogRecord, bool) {
			if s.catalogItemID() == "" {
				return domain.CatalogRecord{}, false
			}
			return cat.Housing(s.catalogItemID())
		},
	},
}

// ResolveName runs the name chain.
func ResolveName(cat Catalog, s Subject) (string, string) {
	name, derived := Localize(cat, s.RawName)
	cur := nameCandidate{value: name, weak: derived}
	strategy := StrategyRaw
	if IsLocKey(s.RawName) {
		strategy = StrategyLocalized
		if derived {
			strategy = StrategyDerived
		}
	}

	for _, st := range nameChain {
		placeholder := IsPlaceholder(cur.value, s)
		if !placeholder && !cur.weak {
			break
		}
		cand, ok := st.resolve(cat, s)
		if !ok {
			continue
		}
		// A weak name only yields to a strong one.
		if placeholder || !cand.weak {
			cur = cand
			strategy = st.name
		}
	}

	if strings.TrimSpace(cur.value) == "" {
		cur.value = s.RawName
		strategy = StrategyRaw
	}
	if strings.TrimSpace(cur.value) == "" {
		cur.value = s.RewardID
	}
	return cur.value, strategy
}

// ResolveIcon runs the icon chain. Rarity comes from the step that
// supplied the icon, else from the first step that had one.
func ResolveIcon(cat Catalog, s Subject, displayName string) (icon, rarity, strategy string) {
	for _, st := range iconChain {
		rec, ok := st.resolve(cat, s, displayName)
		if !ok {
			continue
		}
		if rec.Icon != "" {
			if rec.Rarity != "" {
				rarity = rec.Rarity
			}
			return rec.Icon, rarity, st.name
		}
		if rarity == "" {
			rarity = rec.Rarity
		}
	}
	return "", rarity, ""
}

// Resolve runs both chains.
func Resolve(cat Catalog, s Subject) Resolved {
	name, nameStrategy := ResolveName(cat, s)
	icon, rarity, iconStrategy := ResolveIcon(cat, s, name)
	return Resolved{
		Name:         name,
		Icon:         icon,
		Rarity:       rarity,
		NameStrategy: nameStrategy,
		IconStrategy: iconStrategy,
	}
}

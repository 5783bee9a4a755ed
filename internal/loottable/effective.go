package loottable

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/osse101/PvPTrack_Go/internal/domain"
	"github.com/osse101/PvPTrack_Go/internal/logger"
)

// Model is a loot table after tier selection for a player.
type Model struct {
	TableID   string             `json:"tableId"`
	Rule      string             `json:"rule"`
	Condition string             `json:"condition"`
	MaxRoll   int                `json:"maxRoll"`
	Mode      string             `json:"mode"`
	Entries   []domain.LootEntry `json:"entries"`
}

// EntryOdds is the chance of one model entry, both within the table and
// globally given the parent reward's odds. Values are percentages.
type EntryOdds struct {
	Raw              string  `json:"raw"`
	Qty              *string `json:"qty"`
	MinRoll          int     `json:"minRoll"`
	TablePct         float64 `json:"tablePct"`
	MonoGlobalPct    float64 `json:"monoGlobalPct"`
	AtLeastGlobalPct float64 `json:"atLeastGlobalPct"`
}

// Evaluator computes effective loot-table models over resolved tables.
type Evaluator interface {
	// Effective selects the tier for the given levels, following sub-table redirects.
	Effective(ctx context.Context, tableID string, playerLevel, trackLevel int) (Model, error)

	// GearScore returns the gear-score range reached for the given levels, or "".
	GearScore(tableID string, playerLevel, trackLevel int) string
}

type evaluator struct {
	tables   map[string]domain.LootTable
	contents map[string]domain.LootContents
}

// NewEvaluator creates an evaluator over resolved tier and contents views.
func NewEvaluator(tables map[string]domain.LootTable, contents map[string]domain.LootContents) Evaluator {
	return &evaluator{tables: tables, contents: contents}
}

// gateValue picks the level a condition gates on. ok is false when the
// condition names neither the track nor the player level.
func gateValue(cond string, playerLevel, trackLevel int) (int, bool) {
	switch {
	case isTrackCondition(cond):
		return trackLevel, true
	case strings.Contains(strings.ToLower(cond), condLevelKeyword):
		return playerLevel, true
	default:
		return 0, false
	}
}

func isTrackCondition(cond string) bool {
	c := strings.ToLower(cond)
	return strings.Contains(c, condTrackKeyword) && strings.Contains(c, condXPKeyword)
}

// pickTier returns the index of the tier with the greatest min not above
// value; among equal mins the later tier wins. -1 when none qualifies.
func pickTier(tiers []domain.LootTier, value int) int {
	best := -1
	for i, t := range tiers {
		if value >= t.Min && (best < 0 || t.Min >= tiers[best].Min) {
			best = i
		}
	}
	return best
}

// pickGearScoreTier is pickTier for gear-score lookup, where the first of
// several tiers sharing a min wins.
func pickGearScoreTier(tiers []domain.LootTier, value int) int {
	best := -1
	for i, t := range tiers {
		if value >= t.Min && (best < 0 || t.Min > tiers[best].Min) {
			best = i
		}
	}
	return best
}

func (e *evaluator) Effective(ctx context.Context, tableID string, playerLevel, trackLevel int) (Model, error) {
	if _, ok := e.tables[tableID]; !ok {
		return Model{}, fmt.Errorf("%w: %s", domain.ErrLootTableNotFound, tableID)
	}
	return e.effective(ctx, tableID, playerLevel, trackLevel, map[string]bool{}), nil
}

func (e *evaluator) effective(ctx context.Context, tableID string, playerLevel, trackLevel int, seen map[string]bool) Model {
	if seen[tableID] {
		logger.FromContext(ctx).Warn(LogMsgTableLoop, LogFieldTableID, tableID)
		return Model{TableID: tableID, Rule: domain.RuleLoop, Mode: ModeSingle, Entries: []domain.LootEntry{}}
	}
	seen[tableID] = true

	def, okDef := e.tables[tableID]
	data, okData := e.contents[tableID]
	if !okDef || !okData {
		logger.FromContext(ctx).Debug(LogMsgMissingSubTable, LogFieldTableID, tableID)
		return Model{TableID: tableID, Mode: ModeSingle, Entries: []domain.LootEntry{}}
	}

	cond := ""
	if data.Condition != nil {
		cond = *data.Condition
	} else if def.Condition != nil {
		cond = *def.Condition
	}

	if value, ok := gateValue(cond, playerLevel, trackLevel); ok {
		if idx := pickTier(def.Tiers, value); idx >= 0 {
			if sub := def.Tiers[idx].SubTable; sub != nil {
				return e.effective(ctx, *sub, playerLevel, trackLevel, seen)
			}
			chosen := []domain.LootEntry{}
			if idx < len(data.Entries) {
				chosen = append(chosen, data.Entries[idx])
			}
			r := data.Rule
			if r == "" {
				r = domain.RuleSingle
			}
			return Model{
				TableID:   tableID,
				Rule:      r,
				Condition: cond,
				MaxRoll:   data.MaxRoll,
				Mode:      ModeSingle,
				Entries:   chosen,
			}
		}
	}

	mode := ModeOR
	if strings.Contains(strings.ToUpper(data.Rule), domain.RuleAND) {
		mode = ModeAND
	}
	r := data.Rule
	if r == "" {
		r = mode
	}
	entries := data.Entries
	if entries == nil {
		entries = []domain.LootEntry{}
	}
	return Model{
		TableID:   tableID,
		Rule:      r,
		Condition: cond,
		MaxRoll:   data.MaxRoll,
		Mode:      mode,
		Entries:   entries,
	}
}

func (e *evaluator) GearScore(tableID string, playerLevel, trackLevel int) string {
	seen := map[string]bool{}
	for id := tableID; id != "" && !seen[id]; {
		seen[id] = true
		def, ok := e.tables[id]
		if !ok {
			return ""
		}

		cond := DefaultGearScoreCondition
		if def.Condition != nil && *def.Condition != "" {
			cond = *def.Condition
		}
		value := playerLevel
		if isTrackCondition(cond) {
			value = trackLevel
		}

		idx := pickGearScoreTier(def.Tiers, value)
		if idx < 0 {
			return ""
		}
		tier := def.Tiers[idx]
		if tier.GSRange != nil && *tier.GSRange != "" && *tier.GSRange != NoGearScore {
			return *tier.GSRange
		}
		if tier.SubTable == nil {
			return ""
		}
		id = *tier.SubTable
	}
	return ""
}

// Odds spreads a model over its entries. SINGLE and AND models, and models
// with at most one entry, grant every entry whenever the parent reward
// drops. OR models split the roll range [0, maxRoll] by entry thresholds:
// the entry with threshold t owns rolls from t up to the next higher
// threshold minus one.
func Odds(m Model, parentSinglePct, parentAtLeastPct float64) []EntryOdds {
	wrap := func(e domain.LootEntry, frac float64) EntryOdds {
		return EntryOdds{
			Raw:              e.Raw,
			Qty:              e.Qty,
			MinRoll:          e.MinRoll,
			TablePct:         frac * 100,
			MonoGlobalPct:    parentSinglePct / 100 * frac * 100,
			AtLeastGlobalPct: parentAtLeastPct / 100 * frac * 100,
		}
	}

	out := make([]EntryOdds, 0, len(m.Entries))
	if m.Mode != ModeOR || len(m.Entries) <= 1 {
		for _, e := range m.Entries {
			out = append(out, wrap(e, 1))
		}
		return out
	}

	maxRoll := m.MaxRoll
	if maxRoll < 0 {
		maxRoll = 0
	}

	type threshold struct{ idx, thr int }
	order := make([]threshold, len(m.Entries))
	for i, e := range m.Entries {
		thr := e.MinRoll
		if thr < 0 {
			thr = 0
		}
		order[i] = threshold{idx: i, thr: thr}
	}
	sort.SliceStable(order, func(i, j int) bool { return order[i].thr > order[j].thr })

	fracs := make([]float64, len(m.Entries))
	denom := float64(maxRoll + 1)
	for i, cur := range order {
		prev := maxRoll + 1
		if i > 0 {
			prev = order[i-1].thr
		}
		hi := min(prev-1, maxRoll)
		count := hi - cur.thr + 1
		if count < 0 {
			count = 0
		}
		fracs[cur.idx] = float64(count) / denom
	}

	for i, e := range m.Entries {
		out = append(out, wrap(e, fracs[i]))
	}
	return out
}

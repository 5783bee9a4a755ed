// Package loottable resolves loot-table rows into their tier and
// roll-contents views and evaluates the effective table for a player.
package loottable

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/osse101/PvPTrack_Go/internal/domain"
	"github.com/osse101/PvPTrack_Go/internal/logger"
	"github.com/osse101/PvPTrack_Go/internal/sheet"
)

// Resolver resolves tables of one loot-table sheet. Tables are resolved
// independently; pointers to sub-tables or sub-buckets are left encoded.
type Resolver struct {
	rows map[string]sheet.Row
	ids  []string
}

// NewResolver indexes the sheet by LootTableID. Rows without an id are
// ignored and a repeated id keeps its first row.
func NewResolver(ctx context.Context, s *sheet.Sheet) *Resolver {
	log := logger.FromContext(ctx)
	rows, dups := s.Index(ColLootTableID)
	for _, id := range dups {
		log.Warn(LogMsgDuplicateTable, LogFieldTableID, id)
	}

	r := &Resolver{rows: rows}
	for id := range rows {
		if !IsSiblingID(id) {
			r.ids = append(r.ids, id)
		}
	}
	sort.Strings(r.ids)
	return r
}

// IsSiblingID reports whether id names a _Probs or _Qty sibling row.
func IsSiblingID(id string) bool {
	return strings.HasSuffix(id, ProbsSuffix) || strings.HasSuffix(id, QtySuffix)
}

// IDs returns the resolvable table ids, sibling rows excluded, sorted.
func (r *Resolver) IDs() []string {
	return r.ids
}

func (r *Resolver) lookup(id string) (sheet.Row, sheet.Row, sheet.Row, error) {
	row, ok := r.rows[id]
	if !ok || IsSiblingID(id) {
		return sheet.Row{}, sheet.Row{}, sheet.Row{}, fmt.Errorf("%w: %s", domain.ErrLootTableNotFound, id)
	}
	// A missing sibling is an empty row.
	return row, r.rows[id+ProbsSuffix], r.rows[id+QtySuffix], nil
}

// slots walks Item1, Item2, ... until the first absent slot.
func slots(row sheet.Row) []int {
	var out []int
	for i := 1; row.Has(sheet.Indexed(ColItem, i)); i++ {
		out = append(out, i)
	}
	return out
}

func condition(row sheet.Row) *string {
	conds := row.Strings(ColConditions)
	if len(conds) == 0 {
		return nil
	}
	c := conds[0]
	return &c
}

func rule(row sheet.Row) string {
	if v := row.Str(ColRule); v != "" {
		return v
	}
	return domain.RuleOR
}

// Tiers resolves the tier view of a table.
func (r *Resolver) Tiers(id string) (domain.LootTable, error) {
	row, probs, _, err := r.lookup(id)
	if err != nil {
		return domain.LootTable{}, err
	}

	idx := slots(row)
	tiers := make([]domain.LootTier, 0, len(idx))
	for _, i := range idx {
		key := sheet.Indexed(ColItem, i)
		tier := domain.LootTier{
			Min:     probs.Int(key, 0),
			GSRange: row.OptStr(sheet.Indexed(ColGearScoreRange, i)),
		}
		if sub := strings.TrimSpace(row.Str(key)); strings.HasPrefix(sub, domain.TablePointerPrefix) {
			stripped := strings.TrimPrefix(sub, domain.TablePointerPrefix)
			tier.SubTable = &stripped
		}
		tiers = append(tiers, tier)
	}

	return domain.LootTable{
		ID:               id,
		Condition:        condition(row),
		Rule:             rule(row),
		RollBonusSetting: row.Str(ColRollBonusSetting),
		MaxRoll:          row.Int(ColMaxRoll, 0),
		MaxRollValue:     row.JSON(ColMaxRoll),
		Tiers:            tiers,
	}, nil
}

// Contents resolves the roll-contents view of a table.
func (r *Resolver) Contents(id string) (domain.LootContents, error) {
	row, probs, qtys, err := r.lookup(id)
	if err != nil {
		return domain.LootContents{}, err
	}

	idx := slots(row)
	entries := make([]domain.LootEntry, 0, len(idx))
	for _, i := range idx {
		key := sheet.Indexed(ColItem, i)
		entries = append(entries, domain.LootEntry{
			Raw:     row.Verbatim(key),
			Qty:     qtys.OptStr(key),
			GSRange: row.OptStr(sheet.Indexed(ColGearScoreRange, i)),
			MinRoll: probs.Int(key, 0),
		})
	}

	return domain.LootContents{
		ID:               id,
		Condition:        condition(row),
		Rule:             rule(row),
		RollBonusSetting: row.Str(ColRollBonusSetting),
		MaxRoll:          row.Int(ColMaxRoll, 0),
		MaxRollValue:     row.JSON(ColMaxRoll),
		Entries:          entries,
	}, nil
}

// ResolveAll resolves both views of every table in the sheet.
func (r *Resolver) ResolveAll(ctx context.Context) (map[string]domain.LootTable, map[string]domain.LootContents, error) {
	tables := make(map[string]domain.LootTable, len(r.ids))
	contents := make(map[string]domain.LootContents, len(r.ids))
	for _, id := range r.ids {
		t, err := r.Tiers(id)
		if err != nil {
			return nil, nil, err
		}
		c, err := r.Contents(id)
		if err != nil {
			return nil, nil, err
		}
		tables[id] = t
		contents[id] = c
	}

	logger.FromContext(ctx).Info(LogMsgTablesResolved, LogFieldTables, len(tables))
	return tables, contents, nil
}

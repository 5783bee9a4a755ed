// Package builder wires the resolution packages over the full input data
// set and produces the four output tables.
package builder

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/osse101/PvPTrack_Go/internal/catalog"
	"github.com/osse101/PvPTrack_Go/internal/domain"
	"github.com/osse101/PvPTrack_Go/internal/logger"
	"github.com/osse101/PvPTrack_Go/internal/lootbucket"
	"github.com/osse101/PvPTrack_Go/internal/loottable"
	"github.com/osse101/PvPTrack_Go/internal/metrics"
	"github.com/osse101/PvPTrack_Go/internal/naming"
	"github.com/osse101/PvPTrack_Go/internal/rewardpool"
	"github.com/osse101/PvPTrack_Go/internal/sheet"
	"github.com/osse101/PvPTrack_Go/internal/validation"
)

// Inputs lists the files of one build. The four sheets are required;
// catalogs are optional.
type Inputs struct {
	RewardWeights string
	Rewards       string
	LootTables    string
	LootBuckets   string
	Catalogs      catalog.Paths
}

// Sheets holds the four parsed input sheets.
type Sheets struct {
	RewardWeights *sheet.Sheet
	Rewards       *sheet.Sheet
	LootTables    *sheet.Sheet
	LootBuckets   *sheet.Sheet
}

// Result holds the four output tables of a build.
type Result struct {
	RunID        string
	Levels       domain.LevelDistribution
	RewardMeta   domain.RewardMetaTable
	LootTables   map[string]domain.LootTable
	LootContents map[string]domain.LootContents
	Buckets      domain.BucketContents
}

// Options tune a build.
type Options struct {
	MinLevel      int
	MaxLevel      int
	CDNPrefix     string
	NameCacheSize int
}

// Service builds the output tables.
type Service interface {
	// Build loads, validates and resolves every input file.
	Build(ctx context.Context, in Inputs) (*Result, error)

	// Assemble resolves already-parsed sheets against cat.
	Assemble(ctx context.Context, sheets Sheets, cat *catalog.Catalogs) (*Result, error)
}

type service struct {
	opts    Options
	schemas validation.SchemaValidator
	loader  *catalog.Loader
}

// NewService creates a builder. A nil schema validator skips schema checks.
func NewService(opts Options, schemas validation.SchemaValidator) Service {
	return &service{
		opts:    opts,
		schemas: schemas,
		loader:  catalog.NewLoader(opts.CDNPrefix),
	}
}

// withRunID makes sure ctx carries a run id.
func withRunID(ctx context.Context) (context.Context, string) {
	if id := logger.GetRunID(ctx); id != "" {
		return ctx, id
	}
	id := logger.GenerateRunID()
	return logger.WithRunID(ctx, id), id
}

func (s *service) Build(ctx context.Context, in Inputs) (*Result, error) {
	ctx, _ = withRunID(ctx)
	start := time.Now()

	sheets, err := s.loadSheets(ctx, in)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgBuildFailed, LogFieldError, err)
		metrics.RecordBuild(metrics.BuildStats{}, err)
		return nil, err
	}

	cat := s.loader.Load(ctx, in.Catalogs)
	return s.assemble(ctx, sheets, cat, start)
}

func (s *service) Assemble(ctx context.Context, sheets Sheets, cat *catalog.Catalogs) (*Result, error) {
	ctx, _ = withRunID(ctx)
	return s.assemble(ctx, sheets, cat, time.Now())
}

func (s *service) loadSheets(ctx context.Context, in Inputs) (Sheets, error) {
	var out Sheets
	steps := []struct {
		path   string
		schema string
		target **sheet.Sheet
	}{
		{in.RewardWeights, validation.SchemaRewardWeights, &out.RewardWeights},
		{in.Rewards, validation.SchemaRewards, &out.Rewards},
		{in.LootTables, validation.SchemaLootTables, &out.LootTables},
		{in.LootBuckets, validation.SchemaLootBuckets, &out.LootBuckets},
	}

	log := logger.FromContext(ctx)
	for _, st := range steps {
		if st.path == "" {
			return Sheets{}, fmt.Errorf("%w: %s", domain.ErrMissingInput, st.schema)
		}
		data, err := os.ReadFile(st.path)
		if err != nil {
			return Sheets{}, fmt.Errorf("%s %s: %w", ErrMsgReadSheet, st.path, err)
		}
		if s.schemas != nil {
			if err := s.schemas.ValidateBytes(data, st.schema); err != nil {
				return Sheets{}, fmt.Errorf("%w: %s %s: %w", domain.ErrInvalidSheet, ErrMsgSheetInvalid, st.path, err)
			}
		}
		sh, err := sheet.Parse(st.path, data)
		if err != nil {
			return Sheets{}, err
		}
		*st.target = sh
		log.Debug(LogMsgSheetLoaded, LogFieldSheet, st.schema, LogFieldPath, st.path, LogFieldRows, len(sh.Rows))
	}
	return out, nil
}

func (s *service) assemble(ctx context.Context, sheets Sheets, cat *catalog.Catalogs, start time.Time) (*Result, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgBuildStarted)

	res, err := s.resolve(ctx, sheets, cat)
	if err != nil {
		log.Error(LogMsgBuildFailed, LogFieldError, err)
		metrics.RecordBuild(metrics.BuildStats{}, err)
		return nil, err
	}
	res.RunID = logger.GetRunID(ctx)

	stats := res.Stats(cat)
	stats.Duration = time.Since(start)
	metrics.RecordBuild(stats, nil)

	log.Info(LogMsgBuildCompleted,
		LogFieldDuration, stats.Duration,
		LogFieldLevelPools, stats.LevelPools,
		LogFieldRewards, stats.Rewards,
		LogFieldTables, stats.LootTables,
		LogFieldBuckets, stats.LootBuckets)
	return res, nil
}

func (s *service) resolve(ctx context.Context, sheets Sheets, cat *catalog.Catalogs) (*Result, error) {
	for _, sh := range []*sheet.Sheet{sheets.RewardWeights, sheets.Rewards, sheets.LootTables, sheets.LootBuckets} {
		if sh == nil {
			return nil, fmt.Errorf("%w: nil sheet", domain.ErrMissingInput)
		}
	}
	if cat == nil {
		cat = catalog.New()
	}

	rows := rewardpool.FlattenWeights(sheets.RewardWeights)
	levels := rewardpool.NewBuilder(s.opts.MinLevel, s.opts.MaxLevel).Build(ctx, rows)
	meta := rewardpool.BuildRewardMeta(ctx, sheets.Rewards, rows)

	tables, contents, err := loottable.NewResolver(ctx, sheets.LootTables).ResolveAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgResolveTables, err)
	}
	buckets := lootbucket.Resolve(ctx, sheets.LootBuckets)

	names, err := naming.NewResolver(cat, s.opts.CDNPrefix, s.opts.NameCacheSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgNameResolver, err)
	}
	names.EnrichRewards(ctx, meta)
	names.EnrichBuckets(ctx, buckets)

	res := &Result{
		Levels:       levels,
		RewardMeta:   meta,
		LootTables:   tables,
		LootContents: contents,
		Buckets:      buckets,
	}
	res.reportUnresolved(ctx)
	return res, nil
}

// Stats summarizes the result for metrics.
func (r *Result) Stats(cat *catalog.Catalogs) metrics.BuildStats {
	stats := metrics.BuildStats{
		Rewards:     len(r.RewardMeta),
		LootTables:  len(r.LootTables),
		LootBuckets: len(r.Buckets),
	}
	for _, notches := range r.Levels {
		stats.LevelPools += len(notches)
	}
	for _, items := range r.Buckets {
		stats.BucketItems += len(items)
	}
	if cat != nil {
		stats.Catalogs = cat.Sizes()
	}
	return stats
}

// Unresolved lists reward and loot-table pointers whose target was not
// resolved, keyed by pointer kind. Values are "<owner> -> <target>".
func (r *Result) Unresolved() map[string][]string {
	out := make(map[string][]string)
	add := func(kind, owner, target string) {
		out[kind] = append(out[kind], owner+" -> "+target)
	}

	for id, m := range r.RewardMeta {
		if m.LootTableID != nil {
			if _, ok := r.LootTables[*m.LootTableID]; !ok {
				add(PointerKindTable, id, *m.LootTableID)
			}
		}
		if m.DirectBucketID != nil {
			if _, ok := r.Buckets[*m.DirectBucketID]; !ok {
				add(PointerKindBucket, id, *m.DirectBucketID)
			}
		}
	}

	for id, c := range r.LootContents {
		for _, e := range c.Entries {
			raw := strings.TrimSpace(e.Raw)
			switch {
			case strings.HasPrefix(raw, domain.TablePointerPrefix):
				target := strings.TrimPrefix(raw, domain.TablePointerPrefix)
				if _, ok := r.LootTables[target]; !ok {
					add(PointerKindTable, id, target)
				}
			case strings.HasPrefix(raw, domain.BucketPointerPrefix):
				target := strings.TrimPrefix(raw, domain.BucketPointerPrefix)
				if _, ok := r.Buckets[target]; !ok {
					add(PointerKindBucket, id, target)
				}
			}
		}
	}
	return out
}

func (r *Result) reportUnresolved(ctx context.Context) {
	log := logger.FromContext(ctx)
	for kind, pointers := range r.Unresolved() {
		metrics.UnresolvedPointers.WithLabelValues(kind).Add(float64(len(pointers)))
		for _, p := range pointers {
			log.Warn(LogMsgUnresolvedPointer, LogFieldKind, kind, LogFieldPointer, p)
		}
	}
}

// Package naming resolves display names, icons and rarities of rewards and
// loot bucket items through ordered fallback chains over the catalogs.
package naming

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/PvPTrack_Go/internal/catalog"
	"github.com/osse101/PvPTrack_Go/internal/domain"
	"github.com/osse101/PvPTrack_Go/internal/logger"
	"github.com/osse101/PvPTrack_Go/internal/metrics"
)

// Resolver enriches reward and bucket item metadata in place.
type Resolver interface {
	// EnrichRewards resolves name, icon and rarity of every reward,
	// appending event bonuses to event reward names.
	EnrichRewards(ctx context.Context, table domain.RewardMetaTable)

	// EnrichBuckets resolves display name, icon and rarity of every bucket item.
	EnrichBuckets(ctx context.Context, contents domain.BucketContents)

	// ResolveItem resolves a single bucket item id.
	ResolveItem(itemID string) Resolved
}

type resolver struct {
	cat       Catalog
	cdnPrefix string
	memo      *lru.Cache[string, Resolved]
}

// NewResolver creates a resolver over cat. Sheet icon paths kept as
// fallback are rewritten under cdnPrefix. cacheSize bounds the bucket item
// memo; non-positive sizes use DefaultCacheSize.
func NewResolver(cat Catalog, cdnPrefix string, cacheSize int) (Resolver, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	memo, err := lru.New[string, Resolved](cacheSize)
	if err != nil {
		return nil, err
	}
	if cdnPrefix == "" {
		cdnPrefix = catalog.DefaultCDNPrefix
	}
	return &resolver{cat: cat, cdnPrefix: cdnPrefix, memo: memo}, nil
}

func record(r Resolved) {
	metrics.NameStrategyHits.WithLabelValues(FieldName, r.NameStrategy).Inc()
	if r.IconStrategy != "" {
		metrics.NameStrategyHits.WithLabelValues(FieldIcon, r.IconStrategy).Inc()
	}
}

func (r *resolver) EnrichRewards(ctx context.Context, table domain.RewardMetaTable) {
	log := logger.FromContext(ctx)
	for rid, meta := range table {
		s := Subject{RewardID: rid, RawName: meta.Name, RawItem: meta.RawItemField}
		res := Resolve(r.cat, s)
		record(res)

		if IsPlaceholder(res.Name, s) {
			log.Debug(LogMsgUnresolvedName, LogFieldRewardID, rid)
		}

		name := res.Name
		if bonus, ok := EventBonus(r.cat, rid, meta.GameEvent); ok {
			name = FormatBonus(name, bonus)
		} else if IsEventReward(rid) && meta.GameEvent != "" {
			log.Debug(LogMsgMissingEvent, LogFieldRewardID, rid, LogFieldGameEvent, meta.GameEvent)
		}

		meta.Name = name
		if res.Icon != "" {
			meta.Icon = res.Icon
		} else {
			meta.Icon = catalog.FullIcon(r.cdnPrefix, meta.Icon)
		}
		if res.Rarity != "" {
			meta.Rarity = res.Rarity
		}
	}
	log.Info(LogMsgRewardsEnriched, LogFieldRewards, len(table))
}

func (r *resolver) ResolveItem(itemID string) Resolved {
	if res, ok := r.memo.Get(itemID); ok {
		metrics.NameCacheLookups.WithLabelValues(metrics.ResultHit).Inc()
		return res
	}
	metrics.NameCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()

	res := Resolve(r.cat, Subject{RawName: itemID, RawItem: itemID})
	record(res)
	r.memo.Add(itemID, res)
	return res
}

func (r *resolver) EnrichBuckets(ctx context.Context, contents domain.BucketContents) {
	n := 0
	for _, items := range contents {
		for i := range items {
			res := r.ResolveItem(items[i].ItemID)
			items[i].DisplayName = res.Name
			items[i].Icon = res.Icon
			items[i].Rarity = res.Rarity
			n++
		}
	}
	logger.FromContext(ctx).Info(LogMsgItemsEnriched, LogFieldItems, n, LogFieldCacheSize, r.memo.Len())
}

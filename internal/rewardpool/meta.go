package rewardpool

import (
	"context"

	"github.com/osse101/PvPTrack_Go/internal/domain"
	"github.com/osse101/PvPTrack_Go/internal/logger"
	"github.com/osse101/PvPTrack_Go/internal/sheet"
)

// ParseRewardMeta creates the raw metadata of one reward sheet row.
// Returns nil for rows without a reward id.
func ParseRewardMeta(r sheet.Row) *domain.RewardMeta {
	rid := r.FirstStr(ColRewardIDAlt, ColRewardID)
	if rid == "" {
		return nil
	}

	item := r.Str(ColItem)
	name := r.Str(ColName)
	switch {
	case name != "":
	case item != "":
		name = item
	default:
		name = rid
	}

	return &domain.RewardMeta{
		RewardID:      rid,
		Name:          name,
		Description:   r.Str(ColDescription),
		Icon:          r.Str(ColIconPath),
		RollOnPresent: r.Bool(ColRollOnPresent),
		Quantity:      r.OptInt(ColQuantity),
		BuyCost:       r.OptInt(ColBuyCost),
		BuyCurrency:   r.Str(ColBuyCurrency),
		RawItemField:  item,
		GameEvent:     r.Str(ColGameEvent),
	}
}

// BuildRewardMeta parses and classifies every reward of the reward sheet.
// Reward ids are unique; a repeated id keeps its first row.
func BuildRewardMeta(ctx context.Context, s *sheet.Sheet, weightRows []domain.RewardRow) domain.RewardMetaTable {
	log := logger.FromContext(ctx)
	artifactLike := ArtifactLike(weightRows)

	out := make(domain.RewardMetaTable, len(s.Rows))
	for _, r := range s.Rows {
		meta := ParseRewardMeta(r)
		if meta == nil {
			continue
		}
		if _, dup := out[meta.RewardID]; dup {
			log.Warn(LogMsgDuplicateReward, LogFieldRewardID, meta.RewardID)
			continue
		}
		Classify(meta, artifactLike)
		out[meta.RewardID] = meta
	}

	log.Info(LogMsgRewardsParsed, LogFieldRewards, len(out))
	return out
}

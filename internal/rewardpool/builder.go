// Package rewardpool builds the per-level, per-notch reward distribution of
// the PvP progression track and classifies reward metadata.
package rewardpool

import (
	"context"
	"strconv"

	"github.com/osse101/PvPTrack_Go/internal/domain"
	"github.com/osse101/PvPTrack_Go/internal/logger"
	"github.com/osse101/PvPTrack_Go/internal/sheet"
)

// FlattenWeights turns the wide reward-weight sheet (three notch column
// groups per row) into one RewardRow per populated notch. Rows without a
// reward id or with a non-positive weight are dropped.
func FlattenWeights(s *sheet.Sheet) []domain.RewardRow {
	var out []domain.RewardRow
	for _, r := range s.Rows {
		rowName := r.Str(ColRowPlaceholders)
		for _, notch := range domain.Notches {
			rid := r.FirstStr(sheet.Indexed(ColRewardID, notch), sheet.Indexed(ColRewardIDAlt, notch))
			if rid == "" {
				continue
			}
			weight := r.Int(sheet.Indexed(ColRandomWeights, notch), 0)
			if weight <= 0 {
				continue
			}
			out = append(out, domain.RewardRow{
				RewardID:         rid,
				Notch:            notch,
				BucketName:       r.Str(sheet.Indexed(ColBucket, notch)),
				Weight:           weight,
				SelectOnceOnly:   r.Bool(sheet.Indexed(ColSelectOnceOnly, notch)),
				ExcludeTypeStage: r.Str(sheet.Indexed(ColExcludeTypeStage, notch)),
				RowName:          rowName,
			})
		}
	}
	return out
}

// Builder computes level distributions over a level range.
type Builder struct {
	minLevel int
	maxLevel int
}

// NewBuilder creates a builder for levels [minLevel, maxLevel].
func NewBuilder(minLevel, maxLevel int) *Builder {
	if maxLevel < minLevel {
		maxLevel = minLevel
	}
	return &Builder{minLevel: minLevel, maxLevel: maxLevel}
}

// Build produces the distribution for every level and notch.
func (b *Builder) Build(ctx context.Context, rows []domain.RewardRow) domain.LevelDistribution {
	byNotch := make(map[int][]domain.RewardRow, len(domain.Notches))
	for _, r := range rows {
		if r.RewardID == "" || r.Weight <= 0 {
			continue
		}
		byNotch[r.Notch] = append(byNotch[r.Notch], r)
	}

	dist := make(domain.LevelDistribution, b.maxLevel-b.minLevel+1)
	for level := b.minLevel; level <= b.maxLevel; level++ {
		notches := make(map[string]domain.NotchPool, len(domain.Notches))
		for _, notch := range domain.Notches {
			notches[strconv.Itoa(notch)] = Distribute(MergeEligible(byNotch[notch], level))
		}
		dist[strconv.Itoa(level)] = notches
	}

	logger.FromContext(ctx).Info(LogMsgPoolsBuilt,
		LogFieldLevels, len(dist),
		LogFieldRows, len(rows))

	return dist
}

// MergeEligible keeps the rows whose bucket applies at level and merges them
// by reward id: weights are summed and SelectOnceOnly is OR-ed. Candidates
// are returned in order of first appearance.
func MergeEligible(rows []domain.RewardRow, level int) []Candidate {
	index := make(map[string]int)
	var out []Candidate
	for _, r := range rows {
		if r.RewardID == "" || r.Weight <= 0 || !BucketApplies(r.BucketName, level) {
			continue
		}
		if i, ok := index[r.RewardID]; ok {
			out[i].Weight += r.Weight
			out[i].SelectOnceOnly = out[i].SelectOnceOnly || r.SelectOnceOnly
			continue
		}
		index[r.RewardID] = len(out)
		out = append(out, Candidate{
			RewardID:       r.RewardID,
			Weight:         r.Weight,
			SelectOnceOnly: r.SelectOnceOnly,
		})
	}
	return out
}

package rewardpool

import (
	"math"
	"sort"

	"github.com/osse101/PvPTrack_Go/internal/domain"
	"github.com/osse101/PvPTrack_Go/internal/utils"
)

// Candidate is a merged pool entry before odds are attached.
type Candidate struct {
	RewardID       string
	Weight         int
	SelectOnceOnly bool
}

// ProbAtLeastOne returns the probability (0..1) that an entry of the given
// weight is drawn at least once in draws independent draws with replacement.
func ProbAtLeastOne(weight, totalWeight, draws int) float64 {
	if totalWeight <= 0 {
		return 0
	}
	p := float64(weight) / float64(totalWeight)
	return 1 - math.Pow(1-p, float64(draws))
}

// Distribute attaches single-draw and at-least-once-in-three percentages to
// candidates and sorts them by single-draw odds, descending. Ties keep their
// input order.
//
// SelectOnceOnly is carried through untouched: the odds assume independent
// draws with replacement and do not model once-only exclusion.
func Distribute(candidates []Candidate) domain.NotchPool {
	total := 0
	for _, c := range candidates {
		total += c.Weight
	}

	rewards := make([]domain.WeightedReward, 0, len(candidates))
	for _, c := range candidates {
		single := 0.0
		if total > 0 {
			single = float64(c.Weight) / float64(total) * 100
		}
		rewards = append(rewards, domain.WeightedReward{
			RewardID:                 c.RewardID,
			Weight:                   c.Weight,
			SelectOnceOnly:           c.SelectOnceOnly,
			PercentSingle:            utils.Round(single, PercentPlaces),
			PercentAtLeastOneOfThree: utils.Round(ProbAtLeastOne(c.Weight, total, DrawCount)*100, PercentPlaces),
		})
	}

	sort.SliceStable(rewards, func(i, j int) bool {
		return rewards[i].PercentSingle > rewards[j].PercentSingle
	})

	return domain.NotchPool{TotalWeight: total, Rewards: rewards}
}

// TrackChance combines the per-notch at-least-once percentages of one level
// into the percentage of getting the reward at least once at that level.
// Once-only rewards use the sequential model: a reward obtained on an earlier
// notch cannot be drawn again on a later one.
func TrackChance(p1, p2, p3 float64, onceOnly bool) float64 {
	a, b, c := p1/100, p2/100, p3/100
	var total float64
	if onceOnly {
		total = a + (1-a)*b + (1-a)*(1-b)*c
	} else {
		total = 1 - (1-a)*(1-b)*(1-c)
	}
	return total * 100
}

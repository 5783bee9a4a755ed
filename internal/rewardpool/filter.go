package rewardpool

import (
	"sort"

	"github.com/osse101/PvPTrack_Go/internal/domain"
)

// ExcludeOwned removes the unique-eligible rewards a player already owns from
// a pool and recomputes its odds. The result is ordered by at-least-once
// odds, descending, the order the owned view is displayed in.
func ExcludeOwned(pool domain.NotchPool, owned map[string]bool, isUnique func(rewardID string) bool) domain.NotchPool {
	kept := make([]Candidate, 0, len(pool.Rewards))
	for _, r := range pool.Rewards {
		if r.RewardID == "" {
			continue
		}
		if owned[r.RewardID] && isUnique != nil && isUnique(r.RewardID) {
			continue
		}
		kept = append(kept, Candidate{
			RewardID:       r.RewardID,
			Weight:         r.Weight,
			SelectOnceOnly: r.SelectOnceOnly,
		})
	}

	out := Distribute(kept)
	sort.SliceStable(out.Rewards, func(i, j int) bool {
		return out.Rewards[i].PercentAtLeastOneOfThree > out.Rewards[j].PercentAtLeastOneOfThree
	})
	return out
}

// UniqueLookup adapts a metadata table to the isUnique callback of ExcludeOwned.
func UniqueLookup(meta domain.RewardMetaTable) func(string) bool {
	return func(rewardID string) bool {
		m, ok := meta[rewardID]
		return ok && m.UniqueEligible
	}
}

package rewardpool

import "strings"

// BucketApplies reports whether a level-gating bucket admits the given level.
// An empty bucket always applies. Unrecognized bucket names also always apply:
// an unmodeled category must never silently remove rewards from a pool.
func BucketApplies(bucketName string, level int) bool {
	b := strings.ToLower(strings.TrimSpace(bucketName))
	switch {
	case b == "":
		return true
	case b == BucketOdds:
		return level%2 == 1
	case b == BucketEvens:
		return level%2 == 0
	case b == BucketFifth:
		return level%5 == 0
	case b == BucketTenth:
		return level%10 == 0
	case postCapAliases[b]:
		return level > PostCapLevel
	default:
		return true
	}
}

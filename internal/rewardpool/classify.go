package rewardpool

import (
	"strings"

	"github.com/osse101/PvPTrack_Go/internal/domain"
)

// ArtifactLike collects the reward ids that any weight row tags as an
// artifact through its ExcludeTypeStage category.
func ArtifactLike(rows []domain.RewardRow) map[string]bool {
	out := make(map[string]bool)
	for _, r := range rows {
		if strings.Contains(strings.ToLower(r.ExcludeTypeStage), ArtifactStageMarker) {
			out[r.RewardID] = true
		}
	}
	return out
}

// IsArtifactID reports whether a reward id belongs to the artifact class.
func IsArtifactID(rewardID string) bool {
	return strings.HasPrefix(rewardID, ArtifactIDPrefix)
}

// IsEntitlementID reports whether a reward id belongs to the entitlement class.
func IsEntitlementID(rewardID string) bool {
	return strings.HasPrefix(rewardID, EntitlementIDPrefix)
}

// IsSkinID reports whether a reward id is a skin entitlement.
func IsSkinID(rewardID string) bool {
	return IsEntitlementID(rewardID) && strings.Contains(strings.ToLower(rewardID), SkinMarker)
}

// StripPointer removes a table or bucket pointer prefix. The second result
// tells which prefix was present, if any.
func StripPointer(raw string) (string, string) {
	switch {
	case strings.HasPrefix(raw, domain.TablePointerPrefix):
		return strings.TrimPrefix(raw, domain.TablePointerPrefix), domain.TablePointerPrefix
	case strings.HasPrefix(raw, domain.BucketPointerPrefix):
		return strings.TrimPrefix(raw, domain.BucketPointerPrefix), domain.BucketPointerPrefix
	default:
		return raw, ""
	}
}

// Classify sets the loot pointers and claim-once flags of a reward.
//
// A table pointer always sets LootTableID, whether or not the reward rolls on
// present, so gear-score tiers stay reachable. A bucket pointer sets
// DirectBucketID only for rewards that roll on present. The two pointers are
// never both set.
func Classify(meta *domain.RewardMeta, artifactLike map[string]bool) {
	meta.LootTableID = nil
	meta.DirectBucketID = nil

	id, prefix := StripPointer(strings.TrimSpace(meta.RawItemField))
	if id != "" {
		switch prefix {
		case domain.TablePointerPrefix:
			meta.LootTableID = &id
		case domain.BucketPointerPrefix:
			if meta.RollOnPresent {
				meta.DirectBucketID = &id
			}
		}
	}

	meta.IsSkin = IsSkinID(meta.RewardID)
	isArtifact := IsArtifactID(meta.RewardID) || artifactLike[meta.RewardID]
	meta.UniqueEligible = isArtifact || (IsEntitlementID(meta.RewardID) && !meta.IsSkin)
}

package lootbucket

import (
	"strconv"
	"strings"

	"github.com/osse101/PvPTrack_Go/internal/domain"
)

// MatchLevelTag reports whether a "Level:min[-max]" tag admits level.
// Tags of any other shape admit every level.
func MatchLevelTag(tag string, level int) bool {
	t := strings.TrimSpace(tag)
	if !strings.HasPrefix(strings.ToLower(t), LevelTagPrefix) {
		return true
	}
	lo, hi, found := strings.Cut(t[len(LevelTagPrefix):], "-")
	minLevel, err := strconv.Atoi(lo)
	if err != nil || minLevel < 0 {
		return true
	}
	maxLevel := DefaultLevelTagMax
	if found {
		maxLevel, err = strconv.Atoi(hi)
		if err != nil || maxLevel < 0 {
			return true
		}
	}
	return level >= minLevel && level <= maxLevel
}

// Eligible keeps the items whose level tags all admit level.
func Eligible(items []domain.BucketItem, level int) []domain.BucketItem {
	out := make([]domain.BucketItem, 0, len(items))
	for _, it := range items {
		ok := true
		for _, tag := range it.Tags {
			if !MatchLevelTag(tag, level) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, it)
		}
	}
	return out
}

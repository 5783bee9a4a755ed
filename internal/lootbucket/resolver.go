// Package lootbucket resolves the column-oriented loot-bucket sheet into
// per-bucket item lists.
package lootbucket

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/osse101/PvPTrack_Go/internal/domain"
	"github.com/osse101/PvPTrack_Go/internal/logger"
	"github.com/osse101/PvPTrack_Go/internal/sheet"
)

// slot ties a column index to the bucket it feeds.
type slot struct {
	idx    string
	bucket string
}

// declaredSlots reads the index -> bucket map from the first row, ordered
// by numeric index.
func declaredSlots(first sheet.Row) []slot {
	var out []slot
	for _, k := range first.Keys() {
		if !strings.HasPrefix(k, ColLootBucket) {
			continue
		}
		name := first.Str(k)
		if name == "" {
			continue
		}
		out = append(out, slot{idx: strings.TrimPrefix(k, ColLootBucket), bucket: name})
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, errA := strconv.Atoi(out[i].idx)
		b, errB := strconv.Atoi(out[j].idx)
		if errA != nil || errB != nil {
			return out[i].idx < out[j].idx
		}
		return a < b
	})
	return out
}

func findFirstRow(s *sheet.Sheet) (sheet.Row, bool) {
	for _, r := range s.Rows {
		if strings.EqualFold(r.Str(ColRowMarker), FirstRowMarker) {
			return r, true
		}
	}
	return sheet.Row{}, false
}

// Resolve builds the contents of every bucket declared by the first row.
// Every declared bucket is present in the result, possibly empty.
func Resolve(ctx context.Context, s *sheet.Sheet) domain.BucketContents {
	log := logger.FromContext(ctx)
	out := make(domain.BucketContents)

	first, ok := findFirstRow(s)
	if !ok {
		log.Warn(LogMsgNoFirstRow)
		return out
	}

	slots := declaredSlots(first)
	for _, sl := range slots {
		if _, exists := out[sl.bucket]; !exists {
			out[sl.bucket] = []domain.BucketItem{}
		}
	}

	items := 0
	for _, r := range s.Rows {
		for _, sl := range slots {
			itemID := r.Str(ColItem + sl.idx)
			if itemID == "" {
				continue
			}
			out[sl.bucket] = append(out[sl.bucket], domain.BucketItem{
				ItemID: itemID,
				Qty:    r.OptStr(ColQuantity + sl.idx),
				Tags:   r.Strings(ColTags + sl.idx),
			})
			items++
		}
	}

	log.Info(LogMsgBucketsResolved, LogFieldBuckets, len(out), LogFieldItems, items)
	return out
}

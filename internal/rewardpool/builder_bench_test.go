package rewardpool

import (
	"context"
	"strconv"
	"testing"

	"github.com/osse101/PvPTrack_Go/internal/domain"
)

func BenchmarkBuild(b *testing.B) {
	buckets := []string{"", "Odds", "Evens", "5ths", "10ths", "Post200"}
	rows := make([]domain.RewardRow, 0, 600)
	for i := 0; i < 600; i++ {
		rows = append(rows, domain.RewardRow{
			RewardID:   "R" + strconv.Itoa(i%150),
			Notch:      1 + i%3,
			Weight:     1 + i%97,
			BucketName: buckets[i%len(buckets)],
		})
	}
	builder := NewBuilder(MinLevel, MaxLevel)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = builder.Build(ctx, rows)
	}
}

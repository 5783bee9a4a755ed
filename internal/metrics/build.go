package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// BuildStats summarizes one data build.
type BuildStats struct {
	Duration    time.Duration
	LevelPools  int
	Rewards     int
	LootTables  int
	LootBuckets int
	BucketItems int
	Catalogs    map[string]int
}

// RecordBuild publishes the outcome of a build.
func RecordBuild(stats BuildStats, err error) {
	if err != nil {
		BuildsTotal.WithLabelValues(StatusFailure).Inc()
		return
	}
	BuildsTotal.WithLabelValues(StatusSuccess).Inc()
	BuildDuration.Observe(stats.Duration.Seconds())
	LevelPools.Set(float64(stats.LevelPools))
	Rewards.Set(float64(stats.Rewards))
	LootTables.Set(float64(stats.LootTables))
	LootBuckets.Set(float64(stats.LootBuckets))
	BucketItems.Set(float64(stats.BucketItems))
	for name, n := range stats.Catalogs {
		CatalogRecords.WithLabelValues(name).Set(float64(n))
	}
}

// WriteTextfile writes the current metrics in the node-exporter textfile
// format. Used by one-shot builds that exit before any scrape.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("failed to write metrics textfile %s: %w", path, err)
	}
	return nil
}

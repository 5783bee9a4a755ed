// Package metrics exposes Prometheus metrics for data builds and the
// preview server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsTotal,
			Help:      HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestDuration,
			Help:      HelpTextHTTPRequestDuration,
			Buckets:   HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsInFlight,
			Help:      HelpTextHTTPRequestsInFlight,
		},
	)
)

// Build Metrics
var (
	BuildsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameBuildsTotal,
			Help:      HelpTextBuildsTotal,
		},
		[]string{LabelStatus},
	)

	BuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameBuildDuration,
			Help:      HelpTextBuildDuration,
			Buckets:   BuildDurationBuckets,
		},
	)

	LevelPools = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameLevelPools,
			Help:      HelpTextLevelPools,
		},
	)

	Rewards = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameRewards,
			Help:      HelpTextRewards,
		},
	)

	LootTables = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameLootTables,
			Help:      HelpTextLootTables,
		},
	)

	LootBuckets = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameLootBuckets,
			Help:      HelpTextLootBuckets,
		},
	)

	BucketItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameBucketItems,
			Help:      HelpTextBucketItems,
		},
	)

	CatalogRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameCatalogRecords,
			Help:      HelpTextCatalogRecords,
		},
		[]string{LabelCatalog},
	)

	UnresolvedPointers = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameUnresolvedPointers,
			Help:      HelpTextUnresolvedPointers,
		},
		[]string{LabelKind},
	)
)

// Naming Metrics
var (
	NameStrategyHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameNameStrategyHits,
			Help:      HelpTextNameStrategyHits,
		},
		[]string{LabelField, LabelStrategy},
	)

	NameCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameNameCacheLookups,
			Help:      HelpTextNameCacheLookups,
		},
		[]string{LabelResult},
	)
)

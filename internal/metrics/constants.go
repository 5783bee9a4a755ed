package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Namespace prefixes every metric of the service.
const Namespace = "pvptrack"

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Build metric names
const (
	MetricNameBuildsTotal        = "builds_total"
	MetricNameBuildDuration      = "build_duration_seconds"
	MetricNameLevelPools         = "level_pools"
	MetricNameRewards            = "rewards"
	MetricNameLootTables         = "loot_tables"
	MetricNameLootBuckets        = "loot_buckets"
	MetricNameBucketItems        = "bucket_items"
	MetricNameCatalogRecords     = "catalog_records"
	MetricNameNameStrategyHits   = "name_strategy_hits_total"
	MetricNameNameCacheLookups   = "name_cache_lookups_total"
	MetricNameUnresolvedPointers = "unresolved_pointers_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Build metric help text
const (
	HelpTextBuildsTotal        = "Total number of data builds by outcome"
	HelpTextBuildDuration      = "Data build duration in seconds"
	HelpTextLevelPools         = "Number of (level, notch) pools in the last build"
	HelpTextRewards            = "Number of rewards with resolved metadata in the last build"
	HelpTextLootTables         = "Number of resolved loot tables in the last build"
	HelpTextLootBuckets        = "Number of declared loot buckets in the last build"
	HelpTextBucketItems        = "Number of loot bucket items in the last build"
	HelpTextCatalogRecords     = "Number of records per enrichment catalog"
	HelpTextNameStrategyHits   = "Metadata resolution steps that supplied a value"
	HelpTextNameCacheLookups   = "Bucket item naming memo lookups by result"
	HelpTextUnresolvedPointers = "Reward pointers to loot tables or buckets that do not exist"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelCatalog  = "catalog"
	LabelField    = "field"
	LabelStrategy = "strategy"
	LabelResult   = "result"
	LabelKind     = "kind"
)

// Label values
const (
	StatusSuccess = "success"
	StatusFailure = "failure"

	ResultHit  = "hit"
	ResultMiss = "miss"
)

// BuildDurationBuckets covers sub-second to multi-second builds.
var BuildDurationBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

// HTTPLatencyBuckets defines histogram buckets for HTTP request latency.
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}

package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Crafting metric names
const (
	MetricNameActionsApplied      = "craft_actions_applied_total"
	MetricNameOutcomeSetSize      = "craft_outcome_set_size"
	MetricNameCatalogCacheLookups = "craft_catalog_cache_lookups_total"
)

// Simulation metric names
const (
	MetricNameEpisodesCompleted = "craft_sim_episodes_completed_total"
	MetricNameBatchDuration     = "craft_sim_batch_duration_seconds"
	MetricNameBatchErrors       = "craft_sim_batch_errors_total"
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

// Crafting metric help text
const (
	HelpTextActionsApplied      = "Total number of crafting actions applied, by action and whether the guard passed"
	HelpTextOutcomeSetSize      = "Number of outcomes returned per action application"
	HelpTextCatalogCacheLookups = "Mod catalog query cache lookups by result"
)

// Simulation metric help text
const (
	HelpTextEpisodesCompleted = "Total number of simulated crafting episodes"
	HelpTextBatchDuration     = "Wall time of a batch simulation run in seconds"
	HelpTextBatchErrors       = "Total number of batch simulations that failed"
)

// ============================================================================
// Metric Label Names and Values
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelAction = "action"
	LabelResult = "result"
)

// Label values for LabelResult
const (
	ResultApplied = "applied"
	ResultNoOp    = "noop"
	ResultHit     = "hit"
	ResultMiss    = "miss"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// OutcomeSetBuckets covers single-outcome actions up to large tier pools.
var OutcomeSetBuckets = []float64{1, 2, 4, 8, 16, 32, 64, 128, 256, 512}

package compare

// Metric keys recognized in a run result.
const (
	MetricCacheLoading     = "cache_loading"
	MetricCacheSaving      = "cache_saving"
	MetricRawReading       = "raw_reading"
	MetricTotalPreparation = "total_preparation"
	MetricTotalExecution   = "total_execution"
	MetricCacheSize        = "cache_size_mb"
)

// Metrics maps a metric name to its measured value for one labeled run.
// Populated once per run and treated as immutable afterward.
type Metrics map[string]float64

// Comparison holds both labeled run results. This is the record
// persisted at the end of every invocation, even when one or both
// labels failed and their metrics are empty.
type Comparison struct {
	Original  Metrics `json:"original"`
	Optimized Metrics `json:"optimized"`
}

// VersionSpec describes one labeled variant of the benchmarked program.
type VersionSpec struct {
	Label    string
	Dir      string
	CacheDir string
}

// timingMarkers pairs each console-output marker with its metric key.
// Markers are matched case-insensitively as substrings.
var timingMarkers = []struct {
	Marker string
	Key    string
}{
	{"cache loading time", MetricCacheLoading},
	{"cache saving time", MetricCacheSaving},
	{"raw data reading time", MetricRawReading},
	{"total data preparation time", MetricTotalPreparation},
}

// displayMetrics fixes the row order and display names of the report.
var displayMetrics = []struct {
	Name string
	Key  string
}{
	{"Cache Loading", MetricCacheLoading},
	{"Cache Saving", MetricCacheSaving},
	{"Raw Data Reading", MetricRawReading},
	{"Total Preparation", MetricTotalPreparation},
	{"Total Execution", MetricTotalExecution},
	{"Cache Size (MB)", MetricCacheSize},
}

package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	APIRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fc_api_requests_total",
			Help: "Number of API requests",
		},
		[]string{"method", "path", "status"},
	)
	APILatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fc_api_latency_seconds",
			Help:    "API latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
	ShapeViolations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fc_shape_violations_total",
			Help: "Configuration documents rejected by validation",
		},
	)
	RecordViolations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fc_record_violations_total",
			Help: "Product records rejected by validation",
		},
	)
	ConfigWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fc_config_writes_total",
			Help: "Global configuration upserts",
		},
		[]string{"result"},
	)
	SeedRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fc_seed_runs_total",
			Help: "Seeder executions",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(APIRequests, APILatency, ShapeViolations, RecordViolations, ConfigWrites, SeedRuns)
}

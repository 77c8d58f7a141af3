package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "reportengine"
)

var (
	RenderPassDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "render", "pass_duration_seconds"),
		Help:    "Duration of a full chart render pass in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
	}, []string{"outcome"})
	RenderPassAborts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "render", "pass_aborts"),
		Help: "Render passes aborted on an unmeasurable canvas slot",
	}, []string{})
	ExportDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "export", "duration_seconds"),
		Help:    "Duration of report document export in seconds",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
	}, []string{})
	LiveViews = promauto.NewGauge(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(ServiceName, "view", "live"),
		Help: "Number of report views currently open",
	})
)

package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder collects chart generation metrics. It satisfies the chart
// service's Recorder interface.
type Recorder struct {
	registry *prometheus.Registry
	charts   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()

	charts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chartsmith_charts_generated_total",
		Help: "Chart generation attempts by chart type and outcome.",
	}, []string{"chart_type", "status"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "chartsmith_chart_render_duration_seconds",
		Help:    "Time spent rendering and persisting one chart.",
		Buckets: prometheus.DefBuckets,
	}, []string{"chart_type"})

	reg.MustRegister(charts, duration)
	return &Recorder{registry: reg, charts: charts, duration: duration}
}

func (r *Recorder) ObserveRender(chartType, status string, elapsed time.Duration) {
	r.charts.WithLabelValues(chartType, status).Inc()
	r.duration.WithLabelValues(chartType).Observe(elapsed.Seconds())
}

// Handler exposes the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

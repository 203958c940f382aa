package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the download counters for one process. Each instance owns its
// registry so runs and tests never share state.
type Metrics struct {
	registry *prometheus.Registry

	StylesheetsFound prometheus.Counter
	DownloadsTotal   prometheus.Counter
	DownloadsSuccess prometheus.Counter
	DownloadsFailed  prometheus.Counter
	DownloadDuration prometheus.Histogram
	DownloadBytes    prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		StylesheetsFound: factory.NewCounter(prometheus.CounterOpts{
			Name: "cssgrab_stylesheets_found_total",
			Help: "Total number of external stylesheets enumerated",
		}),

		DownloadsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "cssgrab_downloads_total",
			Help: "Total number of download attempts",
		}),

		DownloadsSuccess: factory.NewCounter(prometheus.CounterOpts{
			Name: "cssgrab_downloads_success_total",
			Help: "Total number of successful downloads",
		}),

		DownloadsFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "cssgrab_downloads_failed_total",
			Help: "Total number of failed downloads",
		}),

		DownloadDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "cssgrab_download_duration_seconds",
			Help:    "Download duration in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		DownloadBytes: factory.NewCounter(prometheus.CounterOpts{
			Name: "cssgrab_download_bytes_total",
			Help: "Total bytes downloaded",
		}),
	}
}

// ObserveSaved records a successful attempt.
func (m *Metrics) ObserveSaved(bytes int64, took time.Duration) {
	m.DownloadsTotal.Inc()
	m.DownloadsSuccess.Inc()
	m.DownloadBytes.Add(float64(bytes))
	m.DownloadDuration.Observe(took.Seconds())
}

// ObserveFailed records a failed attempt.
func (m *Metrics) ObserveFailed() {
	m.DownloadsTotal.Inc()
	m.DownloadsFailed.Inc()
}

// WriteTextfile writes all metrics in the text exposition format, replacing path atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics to %s: %w", path, err)
	}
	return nil
}

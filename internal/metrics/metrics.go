package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	EventsAppended = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "engagement_events_appended_total",
		Help: "Total engagement events appended",
	}, []string{"kind"})
	FreezesConsumed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "engagement_freezes_consumed_total",
		Help: "Total streak freezes consumed",
	}, []string{"mode"})
	Recalculations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "engagement_streak_recalculations_total",
		Help: "Total streak recalculations by resulting status",
	}, []string{"status"})
	RecalcDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "engagement_streak_recalculation_duration_seconds",
		Help:    "Streak recalculation duration seconds",
		Buckets: prometheus.DefBuckets,
	})
	RateLimited = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "engagement_requests_rate_limited_total",
		Help: "Total write requests rejected by the rate limiter",
	})
)

func init() {
	prometheus.MustRegister(EventsAppended, FreezesConsumed, Recalculations, RecalcDuration, RateLimited)
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveRecalculation records one recalculation that started at start.
func ObserveRecalculation(start time.Time, status string) {
	RecalcDuration.Observe(time.Since(start).Seconds())
	Recalculations.WithLabelValues(status).Inc()
}

func IncEvent(kind string) { EventsAppended.WithLabelValues(kind).Inc() }

func AddFreezesConsumed(mode string, n int) {
	if n > 0 {
		FreezesConsumed.WithLabelValues(mode).Add(float64(n))
	}
}

// metrics - Prometheus-метрики stories-service.
//
// Метрики:
//   - stories_fetch_total{outcome}          - завершённые циклы загрузки (success/failure/stale);
//   - stories_fetch_duration_seconds        - длительность запроса к API поиска;
//   - stories_items                         - число историй в текущем состоянии;
//   - stories_actions_total{action}         - действия, прошедшие через редьюсер;
//   - stories_http_requests_total{method,route,status} и
//     stories_http_request_duration_seconds{route} - REST-запросы.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "stories"

// Исходы цикла загрузки.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeStale   = "stale"
)

// Metrics реализует service.Recorder.
type Metrics struct {
	fetches  *prometheus.CounterVec
	duration prometheus.Histogram
	items    prometheus.Gauge
	actions  *prometheus.CounterVec

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New создаёт и регистрирует метрики в reg. nil reg - prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_total",
			Help:      "Completed fetch cycles by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Duration of search API requests.",
			Buckets:   prometheus.DefBuckets,
		}),
		items: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "items",
			Help:      "Number of stories in the current state.",
		}),
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_total",
			Help:      "Actions applied by the reducer.",
		}, []string{"action"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "REST requests by method, route pattern and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "REST request duration by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}

	reg.MustRegister(m.fetches, m.duration, m.items, m.actions, m.httpRequests, m.httpDuration)

	return m
}

// FetchDone учитывает завершение цикла загрузки.
func (m *Metrics) FetchDone(outcome string, d time.Duration) {
	m.fetches.WithLabelValues(outcome).Inc()
	m.duration.Observe(d.Seconds())
}

// ActionApplied учитывает действие и текущий размер списка.
func (m *Metrics) ActionApplied(action string, items int) {
	m.actions.WithLabelValues(action).Inc()
	m.items.Set(float64(items))
}

// ObserveHTTP учитывает завершённый REST-запрос. route - шаблон маршрута chi,
// а не фактический путь, чтобы не плодить метки.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route).Observe(d.Seconds())
}

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Draw outcomes recorded by ObserveDraw.
const (
	DrawServed    = "served"
	DrawExhausted = "exhausted"
	DrawEmpty     = "empty"
)

// Collector owns a private registry so tests can build as many as they like.
// All methods are safe on a nil receiver.
type Collector struct {
	registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	QuizDraws         *prometheus.CounterVec
	QuestionsCreated  prometheus.Counter
	QuestionsDeleted  prometheus.Counter
	QuestionsImported prometheus.Counter

	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter
}

// NewCollector builds and registers every metric under namespace.
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		QuizDraws: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quiz_draws_total",
			Help:      "Quiz draws by outcome",
		}, []string{"outcome"}),
		QuestionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "questions_created_total",
			Help:      "Questions created",
		}),
		QuestionsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "questions_deleted_total",
			Help:      "Questions deleted",
		}),
		QuestionsImported: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "questions_imported_total",
			Help:      "Questions imported from external trivia providers",
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "category_cache_hits_total",
			Help:      "Category catalog cache hits",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "category_cache_misses_total",
			Help:      "Category catalog cache misses",
		}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		c.HTTPRequests,
		c.HTTPDuration,
		c.QuizDraws,
		c.QuestionsCreated,
		c.QuestionsDeleted,
		c.QuestionsImported,
		c.CacheHits,
		c.CacheMisses,
	)
	return c
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	if c == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func (c *Collector) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (c *Collector) ObserveDraw(outcome string) {
	if c == nil {
		return
	}
	c.QuizDraws.WithLabelValues(outcome).Inc()
}

func (c *Collector) QuestionCreated() {
	if c == nil {
		return
	}
	c.QuestionsCreated.Inc()
}

func (c *Collector) QuestionDeleted() {
	if c == nil {
		return
	}
	c.QuestionsDeleted.Inc()
}

func (c *Collector) QuestionsImportedAdd(n int) {
	if c == nil || n <= 0 {
		return
	}
	c.QuestionsImported.Add(float64(n))
}

func (c *Collector) CacheHit() {
	if c == nil {
		return
	}
	c.CacheHits.Inc()
}

func (c *Collector) CacheMiss() {
	if c == nil {
		return
	}
	c.CacheMisses.Inc()
}

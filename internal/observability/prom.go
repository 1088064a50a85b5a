package observability

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prom exports pipeline metrics through the default Prometheus registry,
// scraped at /metrics.
type Prom struct {
	resolveDuration *prometheus.HistogramVec
	httpDuration    *prometheus.HistogramVec
	sendTotal       *prometheus.CounterVec
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
}

func NewProm() *Prom {
	return &Prom{
		resolveDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name: "pedidosbot_resolve_duration_ms",
			Help: "Order resolution duration in milliseconds, by source.",
		}, []string{"source"}),
		httpDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name: "pedidosbot_http_duration_ms",
			Help: "HTTP request duration in milliseconds.",
		}, []string{"method", "route", "status"}),
		sendTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pedidosbot_whatsapp_send_total",
			Help: "Outbound WhatsApp sends by result.",
		}, []string{"result"}),
		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pedidosbot_cache_hits_total",
			Help: "Order cache hits.",
		}),
		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pedidosbot_cache_misses_total",
			Help: "Order cache misses.",
		}),
	}
}

func (p *Prom) ObserveResolve(source string, cacheMs, upstreamMs float64) {
	p.resolveDuration.WithLabelValues(source).Observe(cacheMs + upstreamMs)
}

func (p *Prom) ObserveHTTP(method, route string, status int, durMs float64) {
	p.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(durMs)
}

func (p *Prom) ObserveSend(durMs float64, ok bool) {
	result := "ok"
	if !ok {
		result = "error"
	}
	p.sendTotal.WithLabelValues(result).Inc()
}

func (p *Prom) IncCacheHit()  { p.cacheHits.Inc() }
func (p *Prom) IncCacheMiss() { p.cacheMisses.Inc() }

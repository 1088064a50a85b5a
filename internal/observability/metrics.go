package observability

// Metrics receives events from the resolution pipeline and the HTTP surface.
// Implementations: Noop (tests), Inmem (diagnostics), Prom (production).
type Metrics interface {
	ObserveResolve(source string, cacheMs, upstreamMs float64)
	ObserveHTTP(method, route string, status int, durMs float64)
	ObserveSend(durMs float64, ok bool)
	IncCacheHit()
	IncCacheMiss()
}

type Noop struct{}

func NewNoop() Noop { return Noop{} }

func (Noop) ObserveResolve(string, float64, float64)  {}
func (Noop) ObserveHTTP(string, string, int, float64) {}
func (Noop) ObserveSend(float64, bool)                {}
func (Noop) IncCacheHit()                             {}
func (Noop) IncCacheMiss()                            {}

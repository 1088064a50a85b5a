package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/avaldez/pedidosbot/internal/domain"
	"github.com/avaldez/pedidosbot/internal/observability"
)

//go:generate mockgen -source service.go -destination=service_mock_test.go -package=service

type Cache interface {
	Get(key string) (*domain.OrderRecord, bool)
	Set(key string, record *domain.OrderRecord)
}

type Lookup interface {
	Fetch(ctx context.Context, code, requesterID string) (*domain.OrderRecord, error)
}

// Resolver combines the cache and the upstream lookup: cache-first read,
// fallback to the client on a miss, write-through on success. Absence is not
// cached, so every miss retries upstream on the next request. Concurrent
// resolutions of the same cold key both reach upstream; the calls are
// idempotent reads, so no single-flight dedup.
type Resolver struct {
	cache   Cache
	lookup  Lookup
	logger  *zap.Logger
	metrics observability.Metrics
}

func NewResolver(cache Cache, lookup Lookup, logger *zap.Logger, metrics observability.Metrics) *Resolver {
	return &Resolver{
		cache:   cache,
		lookup:  lookup,
		logger:  logger,
		metrics: metrics,
	}
}

func (r *Resolver) Resolve(ctx context.Context, code, requesterID string) (*domain.OrderRecord, error) {
	rec, _, err := r.ResolveWithStats(ctx, code, requesterID)
	return rec, err
}

func (r *Resolver) ResolveWithStats(ctx context.Context, code, requesterID string) (*domain.OrderRecord, LookupStats, error) {
	var st LookupStats

	code = domain.NormalizeCode(code)
	key := domain.CacheKey(requesterID, code)

	tCacheStart := time.Now()
	if rec, ok := r.cache.Get(key); ok {
		st.Source = SourceCache
		st.CacheMs = convertToMs(tCacheStart)
		r.metrics.IncCacheHit()
		r.metrics.ObserveResolve(string(st.Source), st.CacheMs, 0)

		r.logger.Info("pedido resolved from cache",
			zap.String("codigo", code),
			zap.Float64("cache_ms", st.CacheMs),
		)
		return rec, st, nil
	}

	r.metrics.IncCacheMiss()
	st.CacheMs = convertToMs(tCacheStart)

	tUpstreamStart := time.Now()
	rec, err := r.lookup.Fetch(ctx, code, requesterID)
	if err != nil {
		st.UpstreamMs = convertToMs(tUpstreamStart)
		r.logger.Info("pedido not resolved",
			zap.String("codigo", code),
			zap.String("requester", requesterID),
			zap.Float64("upstream_ms", st.UpstreamMs),
		)
		// Negative results are not cached.
		return nil, st, domain.ErrNotFound
	}

	st.Source = SourceUpstream
	st.UpstreamMs = convertToMs(tUpstreamStart)

	r.cache.Set(key, rec)

	r.metrics.ObserveResolve(string(st.Source), st.CacheMs, st.UpstreamMs)
	r.logger.Info("pedido resolved from upstream",
		zap.String("codigo", code),
		zap.Float64("cache_ms", st.CacheMs),
		zap.Float64("upstream_ms", st.UpstreamMs),
	)
	return rec, st, nil
}

package pedidos

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/avaldez/pedidosbot/internal/config"
	"github.com/avaldez/pedidosbot/internal/domain"
	"github.com/avaldez/pedidosbot/internal/pkg/retry"
)

type Lookup interface {
	Fetch(ctx context.Context, code, requesterID string) (*domain.OrderRecord, error)
}

// RetryingClient wraps a Lookup with the exponential backoff policy. A 404 and
// a malformed body are terminal; everything else is retried up to the attempt
// bound. Whatever happens, callers only ever see domain.ErrNotFound.
type RetryingClient struct {
	inner  Lookup
	policy config.Retry
	logger *zap.Logger
}

func NewRetryingClient(inner Lookup, policy config.Retry, logger *zap.Logger) *RetryingClient {
	return &RetryingClient{
		inner:  inner,
		policy: policy,
		logger: logger,
	}
}

func (r *RetryingClient) Fetch(ctx context.Context, code, requesterID string) (*domain.OrderRecord, error) {
	var rec *domain.OrderRecord

	err := retry.Do(ctx, r.policy, func() error {
		var err error
		rec, err = r.inner.Fetch(ctx, code, requesterID)
		if err != nil && terminal(err) {
			return retry.Unrecoverable(err)
		}
		return err
	})
	if err != nil {
		r.logger.Info("pedido lookup resolved to absence",
			zap.String("codigo", code),
			zap.String("requester", requesterID),
			zap.Error(err),
		)
		return nil, domain.ErrNotFound
	}
	return rec, nil
}

func terminal(err error) bool {
	return errors.Is(err, domain.ErrNotFound) || errors.Is(err, ErrMalformed)
}

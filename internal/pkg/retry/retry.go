package retry

import (
	"context"
	"errors"
	"time"

	"github.com/avaldez/pedidosbot/internal/config"
)

type unrecoverable struct{ err error }

func (u unrecoverable) Error() string { return u.err.Error() }
func (u unrecoverable) Unwrap() error { return u.err }

// Unrecoverable marks err as terminal: Do returns it immediately instead of
// retrying. A 404 or a schema mismatch will not get better on the next
// attempt.
func Unrecoverable(err error) error {
	if err == nil {
		return nil
	}
	return unrecoverable{err: err}
}

// Do runs fn up to policy.Attempts times, doubling the delay between attempts
// starting from policy.Base. The wait is a suspension point: it selects on
// ctx so an expired caller deadline abandons the remaining attempts.
func Do(ctx context.Context, policy config.Retry, fn func() error) error {
	attempts := policy.Attempts
	if attempts < 1 {
		attempts = 1
	}
	delay := policy.Base
	var err error

	for attempt := 0; attempt < attempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}

		var u unrecoverable
		if errors.As(err, &u) {
			return u.err
		}

		if attempt == attempts-1 {
			break
		}

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		delay *= 2
	}
	return err
}

package commands

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"

	"catering/internal/pkg/errs"
)

const (
	// orderCreationAttempts bounds how often a number allocation that lost a race
	// against another insert is retried.
	orderCreationAttempts = 3

	// unexpectedErrorRetries is how often an error outside the taxonomy (connection
	// loss, serialization failure) is retried before it is surfaced.
	unexpectedErrorRetries = 1
)

// retryBackOff is replaced in tests.
var retryBackOff = func() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 20 * time.Millisecond
	b.MaxInterval = 200 * time.Millisecond
	return b
}

// retryTx runs op, normally one whole transaction, until it succeeds or fails for good.
// Conflicts are retried until conflictAttempts attempts hit one; other taxonomy errors
// are returned at once; anything else gets unexpectedErrorRetries more tries.
func retryTx(ctx context.Context, conflictAttempts int, op func() error) error {
	var conflicts, unexpected int

	operation := func() error {
		err := op()
		switch {
		case err == nil:
			return nil
		case errors.Is(err, errs.ErrConflict):
			conflicts++
			if conflicts >= conflictAttempts {
				return backoff.Permanent(err)
			}
			return err
		case errs.IsExpected(err), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return backoff.Permanent(err)
		default:
			unexpected++
			if unexpected > unexpectedErrorRetries {
				return backoff.Permanent(err)
			}
			return err
		}
	}

	return backoff.Retry(operation, backoff.WithContext(retryBackOff(), ctx))
}

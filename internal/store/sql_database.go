package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/case-sync/internal/logger"
	"github.com/MKhiriev/case-sync/migrations"
	"github.com/sethvargo/go-retry"
)

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

const (
	defaultMaxRetries = 3
	defaultRetryBase  = 20 * time.Millisecond
)

// DB wraps the SQLite connection together with the error classifier used
// to retry operations that hit a busy or locked database.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger

	maxRetries uint64
	retryBase  time.Duration
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// withRetry runs op and repeats it with exponential backoff while the
// classifier reports the error as [Retryable].
func (db *DB) withRetry(ctx context.Context, op func(ctx context.Context) error) error {
	maxRetries, base := db.maxRetries, db.retryBase
	if maxRetries == 0 {
		maxRetries = defaultMaxRetries
	}
	if base <= 0 {
		base = defaultRetryBase
	}

	backoff := retry.WithMaxRetries(maxRetries, retry.NewExponential(base))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := op(ctx)
		if err != nil && db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
			if db.logger != nil {
				db.logger.Warn().Err(err).Str("func", "DB.withRetry").Msg("retrying busy database operation")
			}
			return retry.RetryableError(err)
		}
		return err
	})
}

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLState(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "23505", SQLState(&pgconn.PgError{Code: "23505"}))
	assert.Equal(t, "40001", SQLState(fmt.Errorf("tx: %w", &pgconn.PgError{Code: "40001"})))
	assert.Equal(t, "", SQLState(errors.New("plain")))
	assert.Equal(t, "", SQLState(nil))
}

func TestIsRetryableError(t *testing.T) {
	t.Parallel()

	pgErr := func(code string) error { return &pgconn.PgError{Code: code} }

	t.Run("never retries nil or final errors", func(t *testing.T) {
		t.Parallel()

		assert.False(t, isRetryableError(nil))
		assert.False(t, isRetryableError(sql.ErrNoRows))
		assert.False(t, isRetryableError(context.DeadlineExceeded))
		assert.False(t, isRetryableError(context.Canceled))
	})

	t.Run("constraint violations are final", func(t *testing.T) {
		t.Parallel()

		assert.False(t, isRetryableError(pgErr("23505")))
		assert.False(t, isRetryableError(pgErr("23503")))
		assert.False(t, isRetryableError(pgErr("42601")))
	})

	t.Run("transient server states retry", func(t *testing.T) {
		t.Parallel()

		assert.True(t, isRetryableError(pgErr("40001")))
		assert.True(t, isRetryableError(pgErr("40P01")))
		assert.True(t, isRetryableError(pgErr("08006")))
		assert.True(t, isRetryableError(pgErr("53300")))
		assert.True(t, isRetryableError(pgErr("57P03")))
	})

	t.Run("network errors retry by message", func(t *testing.T) {
		t.Parallel()

		assert.True(t, isRetryableError(errors.New("dial tcp: connection refused")))
		assert.True(t, isRetryableError(errors.New("read: connection reset by peer")))
		assert.False(t, isRetryableError(errors.New("some application error")))
	})
}

func TestRetryWithBackoff(t *testing.T) {
	t.Parallel()

	fastConfig := RetryConfig{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     2 * time.Millisecond,
		Multiplier:   2.0,
		EnableRetry:  true,
	}

	t.Run("succeeds after transient failures", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		err := RetryWithBackoff(context.Background(), fastConfig, func() error {
			attempts++
			if attempts < 3 {
				return &pgconn.PgError{Code: "40001"}
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 3, attempts)
	})

	t.Run("stops immediately on non-retryable error", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		conflict := &pgconn.PgError{Code: "23505"}
		err := RetryWithBackoff(context.Background(), fastConfig, func() error {
			attempts++
			return conflict
		})

		assert.Equal(t, 1, attempts)
		assert.Equal(t, conflict, err)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		err := RetryWithBackoff(context.Background(), fastConfig, func() error {
			attempts++
			return &pgconn.PgError{Code: "40P01"}
		})

		assert.Error(t, err)
		assert.Equal(t, 3, attempts)
	})

	t.Run("disabled retry runs once", func(t *testing.T) {
		t.Parallel()

		cfg := fastConfig
		cfg.EnableRetry = false

		attempts := 0
		err := RetryWithBackoff(context.Background(), cfg, func() error {
			attempts++
			return &pgconn.PgError{Code: "40001"}
		})

		assert.Error(t, err)
		assert.Equal(t, 1, attempts)
	})
}

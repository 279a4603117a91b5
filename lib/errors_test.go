package lib_test

import (
	"errors"
	"fmt"
	"minitienda_server/lib"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func pgErr(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestMapPgError(t *testing.T) {
	t.Parallel()

	t.Run("unique violation maps to conflict", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, lib.MapPgError(pgErr("23505")), lib.ErrConflict)
	})

	t.Run("foreign key violation maps to protected", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, lib.MapPgError(pgErr("23503")), lib.ErrProtected)
	})

	t.Run("wrapped errors still map", func(t *testing.T) {
		t.Parallel()

		wrapped := fmt.Errorf("insert failed: %w", pgErr("23505"))
		assert.ErrorIs(t, lib.MapPgError(wrapped), lib.ErrConflict)
	})

	t.Run("unrelated errors pass through", func(t *testing.T) {
		t.Parallel()

		plain := errors.New("boom")
		assert.Equal(t, plain, lib.MapPgError(plain))
	})

	t.Run("nil stays nil", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, lib.MapPgError(nil))
	})
}

func TestMapPgWriteError(t *testing.T) {
	t.Parallel()

	t.Run("foreign key violation maps to invalid reference", func(t *testing.T) {
		t.Parallel()

		err := lib.MapPgWriteError(pgErr("23503"))
		assert.ErrorIs(t, err, lib.ErrInvalidReference)
		assert.NotErrorIs(t, err, lib.ErrProtected)
	})

	t.Run("unique violation still maps to conflict", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, lib.MapPgWriteError(pgErr("23505")), lib.ErrConflict)
	})

	t.Run("unrelated errors pass through", func(t *testing.T) {
		t.Parallel()

		plain := errors.New("boom")
		assert.Equal(t, plain, lib.MapPgWriteError(plain))
	})

	t.Run("nil stays nil", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, lib.MapPgWriteError(nil))
	})
}

func TestIsDomainError(t *testing.T) {
	t.Parallel()

	assert.True(t, lib.IsDomainError(lib.ErrNotFound))
	assert.True(t, lib.IsDomainError(fmt.Errorf("status: %w", lib.ErrInvalidTransition)))
	assert.True(t, lib.IsDomainError(fmt.Errorf("%w: product 42 is not available for ordering", lib.ErrInvalidReference)))
	assert.False(t, lib.IsDomainError(errors.New("boom")))
	assert.False(t, lib.IsDomainError(nil))
}

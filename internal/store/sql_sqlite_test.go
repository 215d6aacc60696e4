package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "busy", err: sqlite3.Error{Code: sqlite3.ErrBusy}, want: Retryable},
		{name: "locked", err: sqlite3.Error{Code: sqlite3.ErrLocked}, want: Retryable},
		{name: "wrapped busy", err: fmt.Errorf("save: %w", sqlite3.Error{Code: sqlite3.ErrBusy}), want: Retryable},
		{name: "constraint", err: sqlite3.Error{Code: sqlite3.ErrConstraint}, want: NonRetryable},
		{name: "corrupt", err: sqlite3.Error{Code: sqlite3.ErrCorrupt}, want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestDB_withRetry(t *testing.T) {
	db := newDBFromSQL(nil)

	t.Run("retries busy errors", func(t *testing.T) {
		calls := 0
		err := db.withRetry(context.Background(), func(ctx context.Context) error {
			calls++
			if calls < 3 {
				return sqlite3.Error{Code: sqlite3.ErrBusy}
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		calls := 0
		err := db.withRetry(context.Background(), func(ctx context.Context) error {
			calls++
			return sqlite3.Error{Code: sqlite3.ErrLocked}
		})
		require.Error(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("does not retry other errors", func(t *testing.T) {
		calls := 0
		sentinel := errors.New("syntax error")
		err := db.withRetry(context.Background(), func(ctx context.Context) error {
			calls++
			return sentinel
		})
		require.ErrorIs(t, err, sentinel)
		assert.Equal(t, 1, calls)
	})
}

func Test_dbFilePath(t *testing.T) {
	assert.Equal(t, "data/case.db", dbFilePath("file:data/case.db?_busy_timeout=5000"))
	assert.Equal(t, "case.db", dbFilePath("case.db"))
}

func Test_createLocalDBFileIfNotExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "casesync.db")

	require.NoError(t, createLocalDBFileIfNotExists(path+"?_journal_mode=WAL"))
	_, err := os.Stat(path)
	require.NoError(t, err)

	// second call leaves the existing file alone
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	require.NoError(t, createLocalDBFileIfNotExists(path))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x", string(raw))

	require.Error(t, createLocalDBFileIfNotExists(""))
}

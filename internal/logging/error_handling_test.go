package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeClose(t *testing.T) {
	t.Run("successful close logs nothing", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		SafeCloseWithLogging(&errorCloser{err: nil}, logger, "csv_load")

		assert.Empty(t, buf.String())
	})

	t.Run("logs error when close fails", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		SafeCloseWithLogging(&errorCloser{err: assert.AnError}, logger, "csv_load")

		output := buf.String()
		assert.Contains(t, output, `"level":"ERROR"`)
		assert.Contains(t, output, `"msg":"failed to close resource"`)
		assert.Contains(t, output, `"operation":"csv_load"`)
	})

	t.Run("nil closer is a no-op", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		SafeCloseWithLogging(nil, logger, "csv_load")

		assert.Empty(t, buf.String())
	})
}

func TestSafeRollback(t *testing.T) {
	t.Run("handles rollback errors gracefully", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		mockTx := &mockTransaction{rollbackErr: assert.AnError}

		SafeRollbackWithLogging(mockTx, logger, "insert_indicators")

		output := buf.String()
		assert.Contains(t, output, `"level":"ERROR"`)
		assert.Contains(t, output, `"msg":"failed to rollback transaction"`)
		assert.Contains(t, output, `"operation":"insert_indicators"`)
	})

	t.Run("ignores already committed/rolled back errors", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		mockTx := &mockTransaction{rollbackErr: &committedError{}}

		SafeRollbackWithLogging(mockTx, logger, "insert_indicators")

		assert.Empty(t, buf.String())
	})

	t.Run("handles successful rollback silently", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		mockTx := &mockTransaction{rollbackErr: nil}

		SafeRollbackWithLogging(mockTx, logger, "insert_indicators")

		assert.Empty(t, buf.String())
	})
}

type errorCloser struct {
	err error
}

func (e *errorCloser) Close() error {
	return e.err
}

type committedError struct{}

func (e *committedError) Error() string {
	return "sql: transaction has already been committed or rolled back"
}

type mockTransaction struct {
	rollbackErr error
}

func (m *mockTransaction) Rollback() error {
	return m.rollbackErr
}

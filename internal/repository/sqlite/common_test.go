package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/errors"
)

// assertNotFound asserts that err maps to the not found taxonomy bucket
func assertNotFound(t *testing.T, err error) {
	t.Helper()
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound), "expected not found, got: %v", err)
}

func TestHandleNoRowsError(t *testing.T) {
	t.Run("no rows becomes not found", func(t *testing.T) {
		err := HandleNoRowsError(sql.ErrNoRows, "task", "1")
		assertNotFound(t, err)
	})

	t.Run("other errors become database errors", func(t *testing.T) {
		err := HandleNoRowsError(sql.ErrConnDone, "task", "1")
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeDatabase))
	})
}

func TestMigrations_Idempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "reopen.db")

	repo, err := New(dbPath)
	require.NoError(t, err)

	row := &TaskRow{Username: "alice", Email: "alice@example.com", TaskText: "Persist me"}
	require.NoError(t, repo.CreateTask(context.Background(), row))
	require.NoError(t, repo.Close())

	// Reopening must not rerun the schema creation or lose data.
	repo, err = New(dbPath)
	require.NoError(t, err)
	defer repo.Close()

	fetched, err := repo.GetTask(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Equal(t, "Persist me", fetched.TaskText)

	count, err := repo.CountTasks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

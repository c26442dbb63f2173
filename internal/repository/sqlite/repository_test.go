package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/domain"
)

// newTestRepository creates a repository backed by a fresh database file
func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	repo, err := New(dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		repo.Close()
	})

	return repo
}

// mustCreateTask inserts a task and returns its row
func mustCreateTask(t *testing.T, repo *SQLiteRepository, username, email, text string) *TaskRow {
	t.Helper()

	row := &TaskRow{Username: username, Email: email, TaskText: text}
	require.NoError(t, repo.CreateTask(context.Background(), row))
	return row
}

func TestCreateTask(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	t.Run("assigns id and defaults", func(t *testing.T) {
		row := mustCreateTask(t, repo, "alice", "alice@example.com", "Buy milk")

		assert.Greater(t, row.ID, int64(0))
		assert.False(t, row.IsCompleted)
		assert.False(t, row.IsEdited)
		assert.False(t, row.CreatedAt.IsZero())
		assert.Equal(t, row.CreatedAt, row.UpdatedAt)
	})

	t.Run("assigns increasing ids", func(t *testing.T) {
		first := mustCreateTask(t, repo, "bob", "bob@example.com", "First")
		second := mustCreateTask(t, repo, "bob", "bob@example.com", "Second")

		assert.Greater(t, second.ID, first.ID)
	})

	t.Run("round trips through get", func(t *testing.T) {
		created := mustCreateTask(t, repo, "carol", "carol@example.com", "Water plants")

		fetched, err := repo.GetTask(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, fetched.ID)
		assert.Equal(t, "carol", fetched.Username)
		assert.Equal(t, "carol@example.com", fetched.Email)
		assert.Equal(t, "Water plants", fetched.TaskText)
		assert.False(t, fetched.IsCompleted)
		assert.False(t, fetched.IsEdited)
	})
}

func TestGetTask_NotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetTask(context.Background(), 9999)
	assert.Error(t, err)
	assertNotFound(t, err)
}

func TestCountTasks(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	count, err := repo.CountTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	mustCreateTask(t, repo, "alice", "alice@example.com", "One")
	mustCreateTask(t, repo, "bob", "bob@example.com", "Two")

	count, err = repo.CountTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestListTasks(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	// Insert in a known order; created_at ties are broken by insertion
	// order only when sorting on other columns.
	mustCreateTask(t, repo, "carol", "carol@example.com", "Third")
	mustCreateTask(t, repo, "alice", "alice@example.com", "First")
	mustCreateTask(t, repo, "bob", "bob@example.com", "Second")

	t.Run("sorts by username ascending", func(t *testing.T) {
		query := domain.NewListQuery()
		query.Limit = 10
		query.SortBy = domain.SortByUsername
		query.SortOrder = domain.SortAsc

		rows, err := repo.ListTasks(ctx, query)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "alice", rows[0].Username)
		assert.Equal(t, "bob", rows[1].Username)
		assert.Equal(t, "carol", rows[2].Username)
	})

	t.Run("sorts by username descending", func(t *testing.T) {
		query := domain.NewListQuery()
		query.Limit = 10
		query.SortBy = domain.SortByUsername
		query.SortOrder = domain.SortDesc

		rows, err := repo.ListTasks(ctx, query)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "carol", rows[0].Username)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		query := domain.NewListQuery()
		query.Page = 2
		query.Limit = 2
		query.SortBy = domain.SortByUsername
		query.SortOrder = domain.SortAsc

		rows, err := repo.ListTasks(ctx, query)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "carol", rows[0].Username)
	})

	t.Run("page past the end is empty not an error", func(t *testing.T) {
		query := domain.NewListQuery()
		query.Page = 50
		query.Limit = 10

		rows, err := repo.ListTasks(ctx, query)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("sorts completed tasks together", func(t *testing.T) {
		done := true
		_, err := repo.UpdateTask(ctx, 1, domain.TaskPatch{IsCompleted: &done})
		require.NoError(t, err)

		query := domain.NewListQuery()
		query.Limit = 10
		query.SortBy = domain.SortByIsCompleted
		query.SortOrder = domain.SortDesc

		rows, err := repo.ListTasks(ctx, query)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.True(t, rows[0].IsCompleted)
		assert.False(t, rows[1].IsCompleted)
		assert.False(t, rows[2].IsCompleted)
	})
}

func TestUpdateTask(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	t.Run("updates completion without touching text", func(t *testing.T) {
		created := mustCreateTask(t, repo, "alice", "alice@example.com", "Buy milk")

		done := true
		updated, err := repo.UpdateTask(ctx, created.ID, domain.TaskPatch{IsCompleted: &done})
		require.NoError(t, err)

		assert.True(t, updated.IsCompleted)
		assert.False(t, updated.IsEdited)
		assert.Equal(t, "Buy milk", updated.TaskText)
	})

	t.Run("updating text marks the task edited", func(t *testing.T) {
		created := mustCreateTask(t, repo, "bob", "bob@example.com", "Old text")

		text := "New text"
		updated, err := repo.UpdateTask(ctx, created.ID, domain.TaskPatch{TaskText: &text})
		require.NoError(t, err)

		assert.Equal(t, "New text", updated.TaskText)
		assert.True(t, updated.IsEdited)
	})

	t.Run("edited flag never clears", func(t *testing.T) {
		created := mustCreateTask(t, repo, "carol", "carol@example.com", "Original")

		text := "Changed"
		_, err := repo.UpdateTask(ctx, created.ID, domain.TaskPatch{TaskText: &text})
		require.NoError(t, err)

		done := true
		updated, err := repo.UpdateTask(ctx, created.ID, domain.TaskPatch{IsCompleted: &done})
		require.NoError(t, err)
		assert.True(t, updated.IsEdited)
	})

	t.Run("refreshes updated_at and preserves created_at", func(t *testing.T) {
		created := mustCreateTask(t, repo, "dave", "dave@example.com", "Task")

		time.Sleep(5 * time.Millisecond)

		done := true
		updated, err := repo.UpdateTask(ctx, created.ID, domain.TaskPatch{IsCompleted: &done})
		require.NoError(t, err)

		assert.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())
		assert.True(t, updated.UpdatedAt.After(updated.CreatedAt) || updated.UpdatedAt.Equal(updated.CreatedAt))
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		done := true
		_, err := repo.UpdateTask(ctx, 9999, domain.TaskPatch{IsCompleted: &done})
		assert.Error(t, err)
		assertNotFound(t, err)
	})
}

func TestAdminUsers(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	t.Run("create and fetch by username", func(t *testing.T) {
		user := &AdminUserRow{Username: "admin", PasswordHash: "hash"}
		require.NoError(t, repo.CreateAdminUser(ctx, user))
		assert.Greater(t, user.ID, int64(0))

		fetched, err := repo.GetAdminUserByUsername(ctx, "admin")
		require.NoError(t, err)
		assert.Equal(t, user.ID, fetched.ID)
		assert.Equal(t, "hash", fetched.PasswordHash)
	})

	t.Run("fetch by id", func(t *testing.T) {
		user := &AdminUserRow{Username: "second", PasswordHash: "hash2"}
		require.NoError(t, repo.CreateAdminUser(ctx, user))

		fetched, err := repo.GetAdminUserByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "second", fetched.Username)
	})

	t.Run("unknown username is not found", func(t *testing.T) {
		_, err := repo.GetAdminUserByUsername(ctx, "nobody")
		assert.Error(t, err)
		assertNotFound(t, err)
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		user := &AdminUserRow{Username: "admin", PasswordHash: "other"}
		err := repo.CreateAdminUser(ctx, user)
		assert.Error(t, err)
	})
}

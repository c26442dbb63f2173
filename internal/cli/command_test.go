package cli

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/api"
	"taskboard/internal/auth"
	"taskboard/internal/client"
	"taskboard/internal/config"
	"taskboard/internal/repository/sqlite"
	"taskboard/internal/server"
)

// setupTestApp starts the full server stack and returns an app whose token
// store lives in memory.
func setupTestApp(t *testing.T) *App {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "cli.db")
	repo, err := sqlite.New(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	ctx := context.Background()
	require.NoError(t, auth.EnsureSeedAdmin(ctx, repo, "admin", "123", 4))

	authService := auth.NewService(repo, []byte("cli-test-secret"), time.Hour)
	srv := server.New(config.NewConfig(), api.New(repo), authService)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return NewApp(client.New(ts.URL), NewMemoryTokenStore())
}

// mustLogin logs the app in as the seed admin
func mustLogin(t *testing.T, app *App) {
	t.Helper()
	require.NoError(t, NewLoginCommand(app).Execute(context.Background(), []string{"admin", "123"}))
}

// mustAddTask creates a task through the add command
func mustAddTask(t *testing.T, app *App, args ...string) {
	t.Helper()
	require.NoError(t, NewAddCommand(app).Execute(context.Background(), args))
}

func TestLoginCommand(t *testing.T) {
	app := setupTestApp(t)
	ctx := context.Background()

	t.Run("saves the token and records the identity", func(t *testing.T) {
		err := NewLoginCommand(app).Execute(ctx, []string{"admin", "123"})
		require.NoError(t, err)

		token, err := app.tokens.Load()
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		st := app.store.State()
		assert.Equal(t, token, st.Auth.Token)
		require.NotNil(t, st.Auth.User)
		assert.Equal(t, "admin", st.Auth.User.Username)
	})

	t.Run("bad credentials leave no session behind", func(t *testing.T) {
		require.NoError(t, app.tokens.Delete())
		app.store.ClearCredentials()

		err := NewLoginCommand(app).Execute(ctx, []string{"admin", "wrong"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid credentials")

		token, err := app.tokens.Load()
		require.NoError(t, err)
		assert.Empty(t, token)
	})

	t.Run("missing arguments", func(t *testing.T) {
		err := NewLoginCommand(app).Execute(ctx, []string{"admin"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "usage: taskboard login")
	})
}

func TestLogoutCommand(t *testing.T) {
	app := setupTestApp(t)
	ctx := context.Background()

	mustLogin(t, app)
	require.NoError(t, NewLogoutCommand(app).Execute(ctx, nil))

	token, err := app.tokens.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Empty(t, app.store.State().Auth.Token)

	t.Run("logging out twice is fine", func(t *testing.T) {
		assert.NoError(t, NewLogoutCommand(app).Execute(ctx, nil))
	})
}

func TestWhoamiCommand(t *testing.T) {
	app := setupTestApp(t)
	ctx := context.Background()

	t.Run("fails without a session", func(t *testing.T) {
		err := NewWhoamiCommand(app).Execute(ctx, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not logged in")
	})

	t.Run("reports the logged in admin", func(t *testing.T) {
		mustLogin(t, app)

		err := NewWhoamiCommand(app).Execute(ctx, nil)
		require.NoError(t, err)

		st := app.store.State()
		require.NotNil(t, st.Auth.User)
		assert.Equal(t, "admin", st.Auth.User.Username)
	})

	t.Run("fails when the saved token is garbage", func(t *testing.T) {
		require.NoError(t, app.tokens.Save("garbage"))

		err := NewWhoamiCommand(app).Execute(ctx, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no longer valid")
	})
}

func TestAddCommand(t *testing.T) {
	app := setupTestApp(t)
	ctx := context.Background()

	t.Run("creates a task without a login", func(t *testing.T) {
		err := NewAddCommand(app).Execute(ctx, []string{"alice", "alice@example.com", "Buy", "some", "milk"})
		require.NoError(t, err)

		page, err := app.client.ListTasks(ctx, app.store.ListQuery(10))
		require.NoError(t, err)
		require.Len(t, page.Tasks, 1)
		assert.Equal(t, "Buy some milk", page.Tasks[0].TaskText)
	})

	t.Run("resets the view to the first page", func(t *testing.T) {
		app.store.SetCurrentPage(5)
		mustAddTask(t, app, "bob", "bob@example.com", "Another")

		assert.Equal(t, 1, app.store.State().Tasks.CurrentPage)
	})

	t.Run("server side validation surfaces in the error", func(t *testing.T) {
		err := NewAddCommand(app).Execute(ctx, []string{"alice", "not-an-email", "Text"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Valid email is required")
	})

	t.Run("missing arguments", func(t *testing.T) {
		err := NewAddCommand(app).Execute(ctx, []string{"alice"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "usage: taskboard add")
	})
}

func TestListCommand(t *testing.T) {
	app := setupTestApp(t)
	ctx := context.Background()

	for _, text := range []string{"One", "Two", "Three", "Four"} {
		mustAddTask(t, app, "alice", "alice@example.com", text)
	}

	t.Run("loads a page into the store", func(t *testing.T) {
		cmd := NewListCommand(app)
		require.NoError(t, cmd.Execute(ctx, nil))

		st := app.store.State()
		assert.False(t, st.Tasks.Loading)
		assert.Len(t, st.Tasks.Items, 3)
		require.NotNil(t, st.Tasks.Pagination)
		assert.Equal(t, 4, st.Tasks.Pagination.TotalTasks)
	})

	t.Run("flags drive the view state", func(t *testing.T) {
		cmd := NewListCommand(app)
		cmd.Page = 2
		cmd.Limit = 2
		cmd.SortBy = "username"
		cmd.SortOrder = "asc"
		require.NoError(t, cmd.Execute(ctx, nil))

		st := app.store.State()
		assert.Equal(t, 2, st.Tasks.CurrentPage)
		assert.Equal(t, "username", st.Tasks.SortBy)
		assert.Equal(t, "asc", st.Tasks.SortOrder)
		assert.Len(t, st.Tasks.Items, 2)
	})

	t.Run("server rejection is recorded in the store", func(t *testing.T) {
		cmd := NewListCommand(app)
		cmd.SortBy = "password_hash"

		err := cmd.Execute(ctx, nil)
		require.Error(t, err)

		st := app.store.State()
		assert.False(t, st.Tasks.Loading)
		assert.NotEmpty(t, st.Tasks.Err)
	})
}

func TestShowCommand(t *testing.T) {
	app := setupTestApp(t)
	ctx := context.Background()

	mustAddTask(t, app, "alice", "alice@example.com", "Buy milk")

	t.Run("shows an existing task", func(t *testing.T) {
		assert.NoError(t, NewShowCommand(app).Execute(ctx, []string{"1"}))
	})

	t.Run("unknown id", func(t *testing.T) {
		err := NewShowCommand(app).Execute(ctx, []string{"9999"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("non numeric id", func(t *testing.T) {
		err := NewShowCommand(app).Execute(ctx, []string{"abc"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "positive integer")
	})
}

func TestCompleteAndReopenCommands(t *testing.T) {
	app := setupTestApp(t)
	ctx := context.Background()

	mustAddTask(t, app, "alice", "alice@example.com", "Buy milk")

	t.Run("fails without a session", func(t *testing.T) {
		err := NewCompleteCommand(app).Execute(ctx, []string{"1"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not logged in")
	})

	t.Run("completes and reopens with a session", func(t *testing.T) {
		mustLogin(t, app)

		require.NoError(t, NewCompleteCommand(app).Execute(ctx, []string{"1"}))
		task, err := app.client.GetTask(ctx, 1)
		require.NoError(t, err)
		assert.True(t, task.IsCompleted)
		assert.False(t, task.IsEdited, "completion must not mark the task edited")

		require.NoError(t, NewReopenCommand(app).Execute(ctx, []string{"1"}))
		task, err = app.client.GetTask(ctx, 1)
		require.NoError(t, err)
		assert.False(t, task.IsCompleted)
	})

	t.Run("unknown id", func(t *testing.T) {
		mustLogin(t, app)
		err := NewCompleteCommand(app).Execute(ctx, []string{"9999"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestEditCommand(t *testing.T) {
	app := setupTestApp(t)
	ctx := context.Background()

	mustAddTask(t, app, "alice", "alice@example.com", "Old text")

	t.Run("fails without a session", func(t *testing.T) {
		err := NewEditCommand(app).Execute(ctx, []string{"1", "New text"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not logged in")
	})

	t.Run("replaces the text and marks the task edited", func(t *testing.T) {
		mustLogin(t, app)

		require.NoError(t, NewEditCommand(app).Execute(ctx, []string{"1", "New", "text"}))

		task, err := app.client.GetTask(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "New text", task.TaskText)
		assert.True(t, task.IsEdited)
	})

	t.Run("missing arguments", func(t *testing.T) {
		err := NewEditCommand(app).Execute(ctx, []string{"1"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "usage: taskboard edit")
	})
}

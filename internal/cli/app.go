package cli

import (
	"fmt"
	"os"

	"taskboard/internal/client"
	"taskboard/internal/domain"
	"taskboard/internal/store"
)

// DefaultServerURL is used when TASKBOARD_API_URL is not set.
const DefaultServerURL = "http://localhost:8080"

// App represents the CLI application with its shared dependencies
type App struct {
	client *client.Client
	store  *store.Store
	tokens TokenStore
}

// GetServerURL returns the base URL of the server to talk to
func GetServerURL() string {
	if url := os.Getenv("TASKBOARD_API_URL"); url != "" {
		return url
	}
	return DefaultServerURL
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(c *client.Client, tokens TokenStore) *App {
	return &App{
		client: c,
		store:  store.New(),
		tokens: tokens,
	}
}

// NewAppWithDefaults creates a CLI application wired for production use,
// talking to the configured server and keeping the session token in the
// system keyring.
func NewAppWithDefaults() *App {
	return NewApp(client.New(GetServerURL()), NewKeyringTokenStore())
}

// restoreSession loads a previously saved token into the client and store.
// Returns false when no token has been saved.
func (a *App) restoreSession() (bool, error) {
	token, err := a.tokens.Load()
	if err != nil {
		return false, fmt.Errorf("failed to load saved session: %w", err)
	}
	if token == "" {
		return false, nil
	}
	a.client.SetToken(token)
	a.store.SetCredentials(token, nil)
	return true, nil
}

// requireSession restores the saved session and fails when none exists.
func (a *App) requireSession() error {
	ok, err := a.restoreSession()
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("not logged in, run 'taskboard login' first")
	}
	return nil
}

// printTask prints a single task in the one-line list format
func printTask(task *domain.Task) {
	status := "open"
	if task.IsCompleted {
		status = "done"
	}
	edited := ""
	if task.IsEdited {
		edited = " (edited)"
	}
	fmt.Printf("#%d [%s] %s <%s>: %s%s\n", task.ID, status, task.Username, task.Email, task.TaskText, edited)
}

package cli

import (
	"context"
	"fmt"

	"taskboard/internal/client"
	"taskboard/internal/store"
)

// WhoamiCommand handles the whoami command
type WhoamiCommand struct {
	app          *App
	client       *client.Client
	store        *store.Store
	errorHandler *ErrorHandler
}

// NewWhoamiCommand creates a new whoami command handler
func NewWhoamiCommand(app *App) *WhoamiCommand {
	return &WhoamiCommand{
		app:          app,
		client:       app.client,
		store:        app.store,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the whoami command, checking the saved session against the
// server.
func (c *WhoamiCommand) Execute(ctx context.Context, args []string) error {
	if err := c.app.requireSession(); err != nil {
		return err
	}

	user, err := c.client.Verify(ctx)
	if err != nil {
		if c.errorHandler.IsAuthError(err) {
			return fmt.Errorf("session is no longer valid, run 'taskboard login' again")
		}
		return c.errorHandler.Handle("verify session", err)
	}

	st := c.store.State()
	c.store.SetCredentials(st.Auth.Token, user)

	fmt.Printf("Logged in as %s (id %d)\n", user.Username, user.ID)
	return nil
}

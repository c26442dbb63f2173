package cli

import (
	"context"
	"fmt"

	"taskboard/internal/store"
)

// LogoutCommand handles the logout command
type LogoutCommand struct {
	store  *store.Store
	tokens TokenStore
}

// NewLogoutCommand creates a new logout command handler
func NewLogoutCommand(app *App) *LogoutCommand {
	return &LogoutCommand{
		store:  app.store,
		tokens: app.tokens,
	}
}

// Execute runs the logout command
func (c *LogoutCommand) Execute(ctx context.Context, args []string) error {
	if err := c.tokens.Delete(); err != nil {
		return fmt.Errorf("failed to clear saved session: %w", err)
	}
	c.store.ClearCredentials()
	fmt.Println("Logged out")
	return nil
}

package cli

import (
	"context"
	"fmt"

	"taskboard/internal/client"
	"taskboard/internal/errors"
	"taskboard/internal/store"
)

// LoginCommand handles the login command
type LoginCommand struct {
	client       *client.Client
	store        *store.Store
	tokens       TokenStore
	errorHandler *ErrorHandler
}

// NewLoginCommand creates a new login command handler
func NewLoginCommand(app *App) *LoginCommand {
	return &LoginCommand{
		client:       app.client,
		store:        app.store,
		tokens:       app.tokens,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the login command
func (c *LoginCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewInvalidInputError("command", "login", "usage: taskboard login <username> <password>")
	}

	result, err := c.client.Login(ctx, args[0], args[1])
	if err != nil {
		return c.errorHandler.Handle("log in", err)
	}

	if err := c.tokens.Save(result.Token); err != nil {
		return fmt.Errorf("logged in but failed to save session: %w", err)
	}

	c.client.SetToken(result.Token)
	c.store.SetCredentials(result.Token, &result.User)

	fmt.Printf("Logged in as %s\n", result.User.Username)
	return nil
}

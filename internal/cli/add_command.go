package cli

import (
	"context"
	"fmt"
	"strings"

	"taskboard/internal/client"
	"taskboard/internal/errors"
	"taskboard/internal/store"
)

// AddCommand handles the add command
type AddCommand struct {
	client       *client.Client
	store        *store.Store
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		client:       app.client,
		store:        app.store,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return errors.NewInvalidInputError("command", "add", "usage: taskboard add <username> <email> \"task text\"")
	}

	username := args[0]
	email := args[1]
	taskText := strings.Join(args[2:], " ")

	task, err := c.client.CreateTask(ctx, username, email, taskText)
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	c.store.CreateFulfilled()

	fmt.Printf("Created task #%d\n", task.ID)
	return nil
}

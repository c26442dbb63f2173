package cli

import (
	"context"
	"fmt"
	"strings"

	"taskboard/internal/client"
	"taskboard/internal/domain"
	"taskboard/internal/errors"
	"taskboard/internal/store"
)

// EditCommand handles the edit command, replacing a task's text. Requires an
// admin session.
type EditCommand struct {
	app          *App
	client       *client.Client
	store        *store.Store
	errorHandler *ErrorHandler
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{
		app:          app,
		client:       app.client,
		store:        app.store,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the edit command
func (c *EditCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewInvalidInputError("command", "edit", "usage: taskboard edit <id> \"new text\"")
	}

	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}
	text := strings.Join(args[1:], " ")

	if err := c.app.requireSession(); err != nil {
		return err
	}

	task, err := c.client.UpdateTask(ctx, id, domain.TaskPatch{TaskText: &text})
	if err != nil {
		switch {
		case c.errorHandler.IsNotFoundError(err):
			return fmt.Errorf("task %d not found", id)
		case c.errorHandler.IsAuthError(err):
			return fmt.Errorf("session is no longer valid, run 'taskboard login' again")
		}
		return c.errorHandler.Handle("edit task", err)
	}

	c.store.UpdateFulfilled(task)

	fmt.Printf("Task #%d updated\n", task.ID)
	return nil
}

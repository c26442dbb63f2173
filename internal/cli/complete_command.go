package cli

import (
	"context"
	"fmt"

	"taskboard/internal/client"
	"taskboard/internal/domain"
	"taskboard/internal/errors"
	"taskboard/internal/store"
)

// CompleteCommand handles the complete and reopen commands. Both flip the
// completion flag on a task, which requires an admin session.
type CompleteCommand struct {
	app          *App
	client       *client.Client
	store        *store.Store
	errorHandler *ErrorHandler
	completed    bool
}

// NewCompleteCommand creates a command handler that marks tasks completed
func NewCompleteCommand(app *App) *CompleteCommand {
	return &CompleteCommand{
		app:          app,
		client:       app.client,
		store:        app.store,
		errorHandler: NewErrorHandler(),
		completed:    true,
	}
}

// NewReopenCommand creates a command handler that marks tasks open again
func NewReopenCommand(app *App) *CompleteCommand {
	return &CompleteCommand{
		app:          app,
		client:       app.client,
		store:        app.store,
		errorHandler: NewErrorHandler(),
		completed:    false,
	}
}

// Execute runs the complete or reopen command
func (c *CompleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		usage := "usage: taskboard complete <id>"
		if !c.completed {
			usage = "usage: taskboard reopen <id>"
		}
		return errors.NewInvalidInputError("command", args, usage)
	}

	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	if err := c.app.requireSession(); err != nil {
		return err
	}

	completed := c.completed
	task, err := c.client.UpdateTask(ctx, id, domain.TaskPatch{IsCompleted: &completed})
	if err != nil {
		switch {
		case c.errorHandler.IsNotFoundError(err):
			return fmt.Errorf("task %d not found", id)
		case c.errorHandler.IsAuthError(err):
			return fmt.Errorf("session is no longer valid, run 'taskboard login' again")
		}
		return c.errorHandler.Handle("update task", err)
	}

	c.store.UpdateFulfilled(task)

	if task.IsCompleted {
		fmt.Printf("Task #%d marked as done\n", task.ID)
	} else {
		fmt.Printf("Task #%d reopened\n", task.ID)
	}
	return nil
}

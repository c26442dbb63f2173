package cli

import (
	"context"
	"fmt"
	"strconv"

	"taskboard/internal/client"
	"taskboard/internal/domain"
	"taskboard/internal/errors"
)

// ShowCommand handles the show command
type ShowCommand struct {
	client       *client.Client
	errorHandler *ErrorHandler
}

// NewShowCommand creates a new show command handler
func NewShowCommand(app *App) *ShowCommand {
	return &ShowCommand{
		client:       app.client,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the show command
func (c *ShowCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "show", "usage: taskboard show <id>")
	}

	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	task, err := c.client.GetTask(ctx, id)
	if err != nil {
		if c.errorHandler.IsNotFoundError(err) {
			return fmt.Errorf("task %d not found", id)
		}
		return c.errorHandler.Handle("fetch task", err)
	}

	c.printDetails(task)
	return nil
}

// printDetails prints the full record for one task
func (c *ShowCommand) printDetails(task *domain.Task) {
	status := "open"
	if task.IsCompleted {
		status = "done"
	}

	fmt.Printf("Task #%d\n", task.ID)
	fmt.Printf("  Author:  %s <%s>\n", task.Username, task.Email)
	fmt.Printf("  Text:    %s\n", task.TaskText)
	fmt.Printf("  Status:  %s\n", status)
	fmt.Printf("  Edited:  %t\n", task.IsEdited)
	fmt.Printf("  Created: %s\n", task.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("  Updated: %s\n", task.UpdatedAt.Format("2006-01-02 15:04:05"))
}

// parseTaskID parses a task id argument
func parseTaskID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id < 1 {
		return 0, errors.NewInvalidInputError("id", arg, "task id must be a positive integer")
	}
	return id, nil
}

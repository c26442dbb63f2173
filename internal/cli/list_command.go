package cli

import (
	"context"
	"fmt"

	"taskboard/internal/client"
	"taskboard/internal/domain"
	"taskboard/internal/store"
)

// ListCommand handles the list command
type ListCommand struct {
	client       *client.Client
	store        *store.Store
	errorHandler *ErrorHandler

	// flag values, zero means keep the current view setting
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{
		client:       app.client,
		store:        app.store,
		errorHandler: NewErrorHandler(),
		Limit:        domain.DefaultLimit,
	}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	if c.Page > 0 {
		c.store.SetCurrentPage(c.Page)
	}
	if c.SortBy != "" {
		c.store.SetSortBy(c.SortBy)
	}
	if c.SortOrder != "" {
		c.store.SetSortOrder(c.SortOrder)
	}

	c.store.FetchPending()
	page, err := c.client.ListTasks(ctx, c.store.ListQuery(c.Limit))
	if err != nil {
		c.store.FetchRejected(err.Error())
		return c.errorHandler.Handle("list tasks", err)
	}
	c.store.FetchFulfilled(page)

	return c.printPage(page)
}

// printPage prints one line per task followed by a pagination footer
func (c *ListCommand) printPage(page *domain.TaskPage) error {
	if len(page.Tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	for _, task := range page.Tasks {
		printTask(task)
	}

	p := page.Pagination
	fmt.Printf("Page %d of %d (%d tasks total)\n", p.CurrentPage, p.TotalPages, p.TotalTasks)
	return nil
}

package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"taskboard/internal/domain"
)

// commandTimeout bounds a single CLI invocation end to end.
const commandTimeout = 60 * time.Second

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd *cobra.Command
	app *App
}

// NewRootCommand creates the root cobra command with all subcommands attached
func NewRootCommand(app *App) *RootCommand {
	root := &RootCommand{app: app}

	root.cmd = &cobra.Command{
		Use:   "taskboard",
		Short: "A command-line client for the taskboard server",
		Long: `Taskboard is a command-line client for a shared task list server.

Anyone can add and browse tasks. Completing, reopening and editing tasks
requires an admin login.

EXAMPLES:
  taskboard add alice alice@example.com "Buy milk"   # Add a task
  taskboard list                                      # List tasks (newest first)
  taskboard list --page 2 --sort-by username          # Paginate and sort
  taskboard show 7                                    # Show one task
  taskboard login admin secret                        # Log in as admin
  taskboard complete 7                                # Mark a task done
  taskboard edit 7 "Buy oat milk"                     # Replace a task's text
  taskboard logout                                    # Forget the session

CONFIGURATION:
  TASKBOARD_API_URL    Server base URL (default: http://localhost:8080)`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	loginCmd := &cobra.Command{
		Use:   "login <username> <password>",
		Short: "Log in as an admin",
		Long:  "Authenticate against the server and save the session token in the system keyring.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			return NewLoginCommand(r.app).Execute(ctx, args)
		},
	}

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			return NewLogoutCommand(r.app).Execute(ctx, args)
		},
	}

	whoamiCmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show who the saved session belongs to",
		Long:  "Check the saved session token against the server and show the logged-in admin.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			return NewWhoamiCommand(r.app).Execute(ctx, args)
		},
	}

	listHandler := NewListCommand(r.app)
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks one page at a time.

Sort columns: username, email, is_completed, created_at

Examples:
  taskboard list
  taskboard list --page 2 --limit 10
  taskboard list --sort-by username --sort-order asc`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			return listHandler.Execute(ctx, args)
		},
	}
	listCmd.Flags().IntVar(&listHandler.Page, "page", 0, "Page to fetch (default 1)")
	listCmd.Flags().IntVar(&listHandler.Limit, "limit", domain.DefaultLimit, "Tasks per page")
	listCmd.Flags().StringVar(&listHandler.SortBy, "sort-by", "", "Sort column")
	listCmd.Flags().StringVar(&listHandler.SortOrder, "sort-order", "", "Sort order (asc or desc)")

	addCmd := &cobra.Command{
		Use:   "add <username> <email> <text>",
		Short: "Add a task",
		Long:  "Add a task to the shared list. No login required.",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			return NewAddCommand(r.app).Execute(ctx, args)
		},
	}

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			return NewShowCommand(r.app).Execute(ctx, args)
		},
	}

	completeCmd := &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a task as done",
		Long:  "Mark a task as completed. Requires an admin login.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			return NewCompleteCommand(r.app).Execute(ctx, args)
		},
	}

	reopenCmd := &cobra.Command{
		Use:   "reopen <id>",
		Short: "Mark a task as open again",
		Long:  "Clear a task's completed flag. Requires an admin login.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			return NewReopenCommand(r.app).Execute(ctx, args)
		},
	}

	editCmd := &cobra.Command{
		Use:   "edit <id> <text>",
		Short: "Replace a task's text",
		Long:  "Replace a task's text. Requires an admin login. The task stays marked as edited.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			return NewEditCommand(r.app).Execute(ctx, args)
		},
	}

	r.cmd.AddCommand(
		loginCmd,
		logoutCmd,
		whoamiCmd,
		listCmd,
		addCmd,
		showCmd,
		completeCmd,
		reopenCmd,
		editCmd,
	)
}

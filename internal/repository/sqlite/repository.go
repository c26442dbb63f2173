package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"taskboard/internal/domain"
)

// Repository defines the interface for database operations
type Repository interface {
	// Task operations
	CreateTask(ctx context.Context, task *TaskRow) error
	GetTask(ctx context.Context, id int64) (*TaskRow, error)
	CountTasks(ctx context.Context) (int, error)
	ListTasks(ctx context.Context, query domain.ListQuery) ([]*TaskRow, error)
	UpdateTask(ctx context.Context, id int64, patch domain.TaskPatch) (*TaskRow, error)

	// Admin credential operations
	CreateAdminUser(ctx context.Context, user *AdminUserRow) error
	GetAdminUserByUsername(ctx context.Context, username string) (*AdminUserRow, error)
	GetAdminUserByID(ctx context.Context, id int64) (*AdminUserRow, error)

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sqlx.DB
}

// New opens (or creates) a SQLite database at dbPath and applies any
// pending schema migrations. Use ":memory:" for an in-memory database.
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, HandleDatabaseError("open database", err)
	}

	// Serialize access through a single pooled connection. SQLite allows
	// one writer at a time; the in-memory database is also per-connection.
	db.SetMaxOpenConns(1)

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, HandleDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateTask inserts a new task row. Completion and edit flags start false;
// both timestamps are set to the same instant.
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *TaskRow) error {
	now := time.Now().UTC()
	task.IsCompleted = false
	task.IsEdited = false
	task.CreatedAt = now
	task.UpdatedAt = now

	query := `
	INSERT INTO tasks (username, email, task_text, is_completed, is_edited, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		task.Username, task.Email, task.TaskText,
		task.IsCompleted, task.IsEdited, task.CreatedAt, task.UpdatedAt)
	if err != nil {
		return HandleDatabaseError("create task", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return HandleDatabaseError("get last insert ID", err)
	}

	task.ID = id
	return nil
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*TaskRow, error) {
	query := `
	SELECT id, username, email, task_text, is_completed, is_edited, created_at, updated_at
	FROM tasks
	WHERE id = ?`

	var row TaskRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		return nil, HandleNoRowsError(err, "task", fmt.Sprintf("%d", id))
	}
	return &row, nil
}

// CountTasks returns the total number of task rows. The listing has no
// filter predicate, so the count is always unfiltered.
func (r *SQLiteRepository) CountTasks(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM tasks"); err != nil {
		return 0, HandleDatabaseError("count tasks", err)
	}
	return count, nil
}

// ListTasks retrieves one page of tasks ordered by the requested column and
// direction. The ORDER BY clause is assembled from whitelisted literals
// only; user input never reaches the SQL text.
func (r *SQLiteRepository) ListTasks(ctx context.Context, q domain.ListQuery) ([]*TaskRow, error) {
	query := fmt.Sprintf(`
	SELECT id, username, email, task_text, is_completed, is_edited, created_at, updated_at
	FROM tasks
	ORDER BY %s %s
	LIMIT ? OFFSET ?`, sortColumn(q.SortBy), sortDirection(q.SortOrder))

	rows := []*TaskRow{}
	if err := r.db.SelectContext(ctx, &rows, query, q.Limit, q.Offset()); err != nil {
		return nil, HandleDatabaseError("list tasks", err)
	}
	return rows, nil
}

// UpdateTask applies the supplied patch fields as a single UPDATE statement
// with RETURNING, so the existence check and the write cannot race. A patch
// that touches task_text also sets is_edited, permanently. updated_at is
// refreshed on every update.
func (r *SQLiteRepository) UpdateTask(ctx context.Context, id int64, patch domain.TaskPatch) (*TaskRow, error) {
	var sets []string
	var args []interface{}

	if patch.TaskText != nil {
		sets = append(sets, "task_text = ?", "is_edited = 1")
		args = append(args, *patch.TaskText)
	}
	if patch.IsCompleted != nil {
		sets = append(sets, "is_completed = ?")
		args = append(args, *patch.IsCompleted)
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().UTC())
	args = append(args, id)

	query := fmt.Sprintf(`
	UPDATE tasks
	SET %s
	WHERE id = ?
	RETURNING id, username, email, task_text, is_completed, is_edited, created_at, updated_at`,
		strings.Join(sets, ", "))

	var row TaskRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return nil, HandleNoRowsError(err, "task", fmt.Sprintf("%d", id))
	}
	return &row, nil
}

// CreateAdminUser inserts a new administrator account
func (r *SQLiteRepository) CreateAdminUser(ctx context.Context, user *AdminUserRow) error {
	user.CreatedAt = time.Now().UTC()

	query := `INSERT INTO admin_users (username, password_hash, created_at) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, user.Username, user.PasswordHash, user.CreatedAt)
	if err != nil {
		return HandleDatabaseError("create admin user", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return HandleDatabaseError("get last insert ID", err)
	}

	user.ID = id
	return nil
}

// GetAdminUserByUsername retrieves an administrator account by username.
// Usernames are unique and compared case-sensitively.
func (r *SQLiteRepository) GetAdminUserByUsername(ctx context.Context, username string) (*AdminUserRow, error) {
	query := `SELECT id, username, password_hash, created_at FROM admin_users WHERE username = ?`

	var row AdminUserRow
	if err := r.db.GetContext(ctx, &row, query, username); err != nil {
		return nil, HandleNoRowsError(err, "admin user", username)
	}
	return &row, nil
}

// GetAdminUserByID retrieves an administrator account by ID
func (r *SQLiteRepository) GetAdminUserByID(ctx context.Context, id int64) (*AdminUserRow, error) {
	query := `SELECT id, username, password_hash, created_at FROM admin_users WHERE id = ?`

	var row AdminUserRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		return nil, HandleNoRowsError(err, "admin user", fmt.Sprintf("%d", id))
	}
	return &row, nil
}

// sortColumn maps a validated sort key to its column name. Defaults to
// created_at for anything unexpected so no caller input is interpolated.
func sortColumn(sortBy string) string {
	switch sortBy {
	case domain.SortByUsername:
		return "username"
	case domain.SortByEmail:
		return "email"
	case domain.SortByIsCompleted:
		return "is_completed"
	default:
		return "created_at"
	}
}

// sortDirection maps a validated sort order to SQL, defaulting to DESC.
func sortDirection(sortOrder string) string {
	if sortOrder == domain.SortAsc {
		return "ASC"
	}
	return "DESC"
}

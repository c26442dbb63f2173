package api

import (
	"context"

	"taskboard/internal/domain"
	"taskboard/internal/errors"
	"taskboard/internal/repository/sqlite"
	"taskboard/internal/validation"
)

// API defines the interface for all task operations. It validates input,
// delegates persistence to the repository, and converts rows to domain
// models.
type API interface {
	ListTasks(ctx context.Context, raw validation.RawListQuery) (*domain.TaskPage, error)
	CreateTask(ctx context.Context, username, email, taskText string) (*domain.Task, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	UpdateTask(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error)
}

type apiImpl struct {
	repo           sqlite.Repository
	taskValidator  *validation.TaskValidator
	queryValidator *validation.ListQueryValidator
}

// New creates a new API instance.
func New(repo sqlite.Repository) API {
	return &apiImpl{
		repo:           repo,
		taskValidator:  validation.NewTaskValidator(),
		queryValidator: validation.NewListQueryValidator(),
	}
}

// ListTasks returns one page of tasks plus pagination metadata. A page past
// the end of the table is not an error: it yields an empty list with the
// true totals.
func (a *apiImpl) ListTasks(ctx context.Context, raw validation.RawListQuery) (*domain.TaskPage, error) {
	query, err := a.queryValidator.Validate(raw)
	if err != nil {
		return nil, err
	}

	total, err := a.repo.CountTasks(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := a.repo.ListTasks(ctx, query)
	if err != nil {
		return nil, err
	}

	tasks := make([]*domain.Task, len(rows))
	for i, row := range rows {
		tasks[i] = row.ToDomain()
	}

	return &domain.TaskPage{
		Tasks:      tasks,
		Pagination: domain.NewPagination(query, total),
	}, nil
}

// CreateTask validates the attribution fields and body text, then inserts
// the task. Creation is public; the claimed username and email are free
// text and never checked against the credential store.
func (a *apiImpl) CreateTask(ctx context.Context, username, email, taskText string) (*domain.Task, error) {
	if err := a.taskValidator.ValidateForCreation(username, email, taskText); err != nil {
		return nil, err
	}

	row := &sqlite.TaskRow{
		Username: username,
		Email:    email,
		TaskText: taskText,
	}
	if err := a.repo.CreateTask(ctx, row); err != nil {
		return nil, err
	}

	return row.ToDomain(), nil
}

// GetTask retrieves a task by its ID.
func (a *apiImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	row, err := a.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	return row.ToDomain(), nil
}

// UpdateTask applies a partial update to an existing task. An unknown id is
// not found regardless of payload validity; a patch with no fields on an
// existing task is a validation failure. Fields not present in the patch
// are never touched. The actual write is a single UPDATE with RETURNING,
// so the existence check and the update cannot race.
func (a *apiImpl) UpdateTask(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error) {
	if err := a.taskValidator.ValidateForUpdate(patch); err != nil {
		return nil, err
	}

	if patch.IsEmpty() {
		// Nothing to write; still distinguish a missing task from a
		// pointless patch against an existing one.
		if _, err := a.repo.GetTask(ctx, id); err != nil {
			return nil, err
		}
		return nil, errors.NewValidationError("No valid fields to update", nil)
	}

	row, err := a.repo.UpdateTask(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	return row.ToDomain(), nil
}

package sqlite

import (
	"time"

	"taskboard/internal/domain"
)

// TaskRow is the database representation of a task.
type TaskRow struct {
	ID          int64     `db:"id"`
	Username    string    `db:"username"`
	Email       string    `db:"email"`
	TaskText    string    `db:"task_text"`
	IsCompleted bool      `db:"is_completed"`
	IsEdited    bool      `db:"is_edited"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// ToDomain converts a database row to the domain model.
func (r *TaskRow) ToDomain() *domain.Task {
	return &domain.Task{
		ID:          r.ID,
		Username:    r.Username,
		Email:       r.Email,
		TaskText:    r.TaskText,
		IsCompleted: r.IsCompleted,
		IsEdited:    r.IsEdited,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// AdminUserRow is the database representation of an administrator account.
type AdminUserRow struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// ToDomain converts a database row to the domain model.
func (r *AdminUserRow) ToDomain() *domain.AdminUser {
	return &domain.AdminUser{
		ID:           r.ID,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
	}
}

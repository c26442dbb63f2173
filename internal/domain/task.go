package domain

import "time"

// Task represents a single task on the board. Tasks are created by
// anonymous visitors and mutated only by an authenticated administrator.
type Task struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	TaskText    string    `json:"task_text"`
	IsCompleted bool      `json:"is_completed"`
	IsEdited    bool      `json:"is_edited"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskPatch describes a partial update of a task. Nil fields are left
// untouched by the update.
type TaskPatch struct {
	TaskText    *string `json:"task_text,omitempty"`
	IsCompleted *bool   `json:"is_completed,omitempty"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (p TaskPatch) IsEmpty() bool {
	return p.TaskText == nil && p.IsCompleted == nil
}

// Sort columns accepted by the task listing.
const (
	SortByUsername    = "username"
	SortByEmail       = "email"
	SortByIsCompleted = "is_completed"
	SortByCreatedAt   = "created_at"
)

// Sort directions accepted by the task listing.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Listing defaults and bounds.
const (
	DefaultPage      = 1
	DefaultLimit     = 3
	MaxLimit         = 100
	DefaultSortBy    = SortByCreatedAt
	DefaultSortOrder = SortDesc
)

// ListQuery holds the (already defaulted) parameters of a list request.
type ListQuery struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// NewListQuery returns a ListQuery populated with the listing defaults.
func NewListQuery() ListQuery {
	return ListQuery{
		Page:      DefaultPage,
		Limit:     DefaultLimit,
		SortBy:    DefaultSortBy,
		SortOrder: DefaultSortOrder,
	}
}

// Offset returns the row offset implied by the page and limit.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Pagination is the metadata returned alongside a task page.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalTasks  int  `json:"totalTasks"`
	Limit       int  `json:"limit"`
	HasNext     bool `json:"hasNext"`
	HasPrev     bool `json:"hasPrev"`
}

// NewPagination derives pagination metadata from the query and the total
// row count. totalPages is zero when the table is empty.
func NewPagination(q ListQuery, totalTasks int) Pagination {
	totalPages := 0
	if totalTasks > 0 {
		totalPages = (totalTasks + q.Limit - 1) / q.Limit
	}
	return Pagination{
		CurrentPage: q.Page,
		TotalPages:  totalPages,
		TotalTasks:  totalTasks,
		Limit:       q.Limit,
		HasNext:     q.Page < totalPages,
		HasPrev:     q.Page > 1,
	}
}

// TaskPage is a single page of tasks plus its pagination metadata.
type TaskPage struct {
	Tasks      []*Task    `json:"tasks"`
	Pagination Pagination `json:"pagination"`
}

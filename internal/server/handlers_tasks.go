package server

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"taskboard/internal/domain"
	"taskboard/internal/validation"
)

// createTaskRequest is the body of POST /api/tasks.
type createTaskRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	TaskText string `json:"task_text"`
}

// taskResponse wraps a single task, with an optional outcome message.
type taskResponse struct {
	Message string       `json:"message,omitempty"`
	Task    *domain.Task `json:"task"`
}

// handleListTasks returns one page of tasks with pagination metadata.
func (s *Server) handleListTasks(c echo.Context) error {
	raw := validation.RawListQuery{
		Page:      c.QueryParam("page"),
		Limit:     c.QueryParam("limit"),
		SortBy:    c.QueryParam("sortBy"),
		SortOrder: c.QueryParam("sortOrder"),
	}

	page, err := s.api.ListTasks(c.Request().Context(), raw)
	if err != nil {
		return respondError(c, err, "Server error while fetching tasks")
	}

	return c.JSON(http.StatusOK, page)
}

// handleCreateTask creates a task. Creation is public and unauthenticated;
// the attribution fields are whatever the caller claims.
func (s *Server) handleCreateTask(c echo.Context) error {
	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, APIError{Message: "Invalid request body"})
	}

	task, err := s.api.CreateTask(c.Request().Context(), req.Username, req.Email, req.TaskText)
	if err != nil {
		return respondError(c, err, "Server error while creating task")
	}

	return c.JSON(http.StatusCreated, taskResponse{
		Message: "Task created successfully",
		Task:    task,
	})
}

// handleGetTask returns a single task by id.
func (s *Server) handleGetTask(c echo.Context) error {
	id, ok := parseTaskID(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, APIError{Message: "Task not found"})
	}

	task, err := s.api.GetTask(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "Server error while fetching task")
	}

	return c.JSON(http.StatusOK, taskResponse{Task: task})
}

// handleUpdateTask applies a partial update to a task. The route is behind
// the admin gate, so by the time this runs the request carries a verified
// identity.
func (s *Server) handleUpdateTask(c echo.Context) error {
	id, ok := parseTaskID(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, APIError{Message: "Task not found"})
	}

	var patch domain.TaskPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, APIError{Message: "Invalid request body"})
	}

	task, err := s.api.UpdateTask(c.Request().Context(), id, patch)
	if err != nil {
		return respondError(c, err, "Server error while updating task")
	}

	return c.JSON(http.StatusOK, taskResponse{
		Message: "Task updated successfully",
		Task:    task,
	})
}

// parseTaskID parses a path id. Anything that is not a positive integer
// cannot match a row, so callers treat it as not found.
func parseTaskID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

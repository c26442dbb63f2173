package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"taskboard/internal/domain"
	"taskboard/internal/errors"
)

// Client is a thin HTTP client for the taskboard REST API. It handles
// Bearer token authentication, JSON marshaling, and decoding of the API's
// error shape into structured app errors.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a new API client. The baseURL should be the root URL of the
// taskboard server (e.g. http://localhost:8080).
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetToken attaches a bearer token to all subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// LoginResult carries the issued token and the authenticated identity.
type LoginResult struct {
	Token string
	User  domain.AuthUser
}

// apiError mirrors the server's error body.
type apiError struct {
	Message string `json:"message"`
	Errors  []struct {
		Msg      string `json:"msg"`
		Param    string `json:"param"`
		Location string `json:"location"`
	} `json:"errors"`
}

// Login authenticates against the server and returns the issued token. The
// token is not attached automatically; call SetToken with the result.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	var resp struct {
		Message string          `json:"message"`
		Token   string          `json:"token"`
		User    domain.AuthUser `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &resp); err != nil {
		return nil, err
	}
	return &LoginResult{Token: resp.Token, User: resp.User}, nil
}

// Verify checks the attached token against the server.
func (c *Client) Verify(ctx context.Context) (*domain.AuthUser, error) {
	var resp struct {
		Valid bool            `json:"valid"`
		User  domain.AuthUser `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/verify", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// ListTasks fetches one page of tasks.
func (c *Client) ListTasks(ctx context.Context, query domain.ListQuery) (*domain.TaskPage, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(query.Page))
	params.Set("limit", strconv.Itoa(query.Limit))
	params.Set("sortBy", query.SortBy)
	params.Set("sortOrder", query.SortOrder)

	var page domain.TaskPage
	if err := c.do(ctx, http.MethodGet, "/api/tasks?"+params.Encode(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CreateTask creates a new task. No authentication required.
func (c *Client) CreateTask(ctx context.Context, username, email, taskText string) (*domain.Task, error) {
	body := map[string]string{
		"username":  username,
		"email":     email,
		"task_text": taskText,
	}
	var resp struct {
		Message string       `json:"message"`
		Task    *domain.Task `json:"task"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/tasks", body, &resp); err != nil {
		return nil, err
	}
	return resp.Task, nil
}

// GetTask fetches a single task by id.
func (c *Client) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	var resp struct {
		Task *domain.Task `json:"task"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/tasks/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Task, nil
}

// UpdateTask applies a partial update to a task. Requires an attached
// admin token.
func (c *Client) UpdateTask(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error) {
	var resp struct {
		Message string       `json:"message"`
		Task    *domain.Task `json:"task"`
	}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/tasks/%d", id), patch, &resp); err != nil {
		return nil, err
	}
	return resp.Task, nil
}

// do is the core HTTP method that builds the request, handles auth, and
// JSON (de)serialization.
func (c *Client) do(ctx context.Context, method, path string, body, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return decodeError(resp.StatusCode, data)
	}

	if result != nil {
		if err := json.Unmarshal(data, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

// decodeError turns a non-2xx response into the matching AppError type so
// callers can branch on it the same way server-side code does.
func decodeError(status int, data []byte) error {
	var body apiError
	if err := json.Unmarshal(data, &body); err != nil || body.Message == "" {
		body.Message = http.StatusText(status)
	}

	message := body.Message
	if len(body.Errors) > 0 {
		var details []string
		for _, fe := range body.Errors {
			details = append(details, fe.Msg)
		}
		message = fmt.Sprintf("%s: %s", body.Message, strings.Join(details, "; "))
	}

	switch status {
	case http.StatusBadRequest:
		return errors.NewValidationError(message, nil)
	case http.StatusUnauthorized:
		return errors.NewUnauthorizedError(message)
	case http.StatusForbidden:
		return errors.NewForbiddenError(message, nil)
	case http.StatusNotFound:
		return errors.WrapError(nil, errors.ErrorTypeNotFound, message)
	default:
		return errors.WrapError(nil, errors.ErrorTypeDatabase, message)
	}
}

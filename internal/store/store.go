// Package store holds the client-side application state: authentication
// and the task list view (current page, sort key and direction, loaded
// tasks, pagination metadata, loading and error flags). It is the single
// source of truth for the CLI; state changes only through the declared
// mutation methods, and subscribers are notified after every change.
package store

import (
	"sync"

	"taskboard/internal/domain"
)

// AuthState is the authentication slice of the client state.
type AuthState struct {
	Token string
	User  *domain.AuthUser
}

// TasksState is the task-list slice of the client state.
type TasksState struct {
	Items       []*domain.Task
	Pagination  *domain.Pagination
	CurrentPage int
	SortBy      string
	SortOrder   string
	Loading     bool
	Err         string
}

// State is the complete client state.
type State struct {
	Auth  AuthState
	Tasks TasksState
}

// Listener is called with a snapshot of the state after every mutation.
type Listener func(State)

// Store is a unidirectional state container: reads go through State(),
// writes only through the mutation methods below.
type Store struct {
	mu        sync.RWMutex
	state     State
	listeners map[int]Listener
	nextID    int
}

// New creates a store with the listing defaults: page 1, newest first.
func New() *Store {
	return &Store{
		state: State{
			Tasks: TasksState{
				CurrentPage: domain.DefaultPage,
				SortBy:      domain.DefaultSortBy,
				SortOrder:   domain.DefaultSortOrder,
			},
		},
		listeners: make(map[int]Listener),
	}
}

// State returns a snapshot of the current state. The task slice is shared;
// callers must not mutate the returned tasks.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers a listener and returns an unsubscribe function.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// mutate applies fn under the write lock and notifies subscribers.
func (s *Store) mutate(fn func(*State)) {
	s.mu.Lock()
	fn(&s.state)
	snapshot := s.state
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(snapshot)
	}
}

// SetCredentials records a successful login.
func (s *Store) SetCredentials(token string, user *domain.AuthUser) {
	s.mutate(func(st *State) {
		st.Auth.Token = token
		st.Auth.User = user
	})
}

// ClearCredentials forgets the current login.
func (s *Store) ClearCredentials() {
	s.mutate(func(st *State) {
		st.Auth = AuthState{}
	})
}

// FetchPending marks the task list as loading.
func (s *Store) FetchPending() {
	s.mutate(func(st *State) {
		st.Tasks.Loading = true
		st.Tasks.Err = ""
	})
}

// FetchFulfilled replaces the loaded page and its pagination metadata.
func (s *Store) FetchFulfilled(page *domain.TaskPage) {
	s.mutate(func(st *State) {
		st.Tasks.Loading = false
		st.Tasks.Items = page.Tasks
		pagination := page.Pagination
		st.Tasks.Pagination = &pagination
		st.Tasks.Err = ""
	})
}

// FetchRejected records a failed fetch.
func (s *Store) FetchRejected(errMsg string) {
	s.mutate(func(st *State) {
		st.Tasks.Loading = false
		st.Tasks.Err = errMsg
	})
}

// CreateFulfilled resets the view to the first page so the new task is
// visible under the default newest-first ordering.
func (s *Store) CreateFulfilled() {
	s.mutate(func(st *State) {
		st.Tasks.Loading = false
		st.Tasks.CurrentPage = domain.DefaultPage
		st.Tasks.Err = ""
	})
}

// UpdateFulfilled merges an updated task into the loaded page in place.
// Tasks outside the current page are left alone; they will be refreshed on
// the next fetch.
func (s *Store) UpdateFulfilled(task *domain.Task) {
	s.mutate(func(st *State) {
		st.Tasks.Loading = false
		for i, t := range st.Tasks.Items {
			if t.ID == task.ID {
				st.Tasks.Items[i] = task
				break
			}
		}
		st.Tasks.Err = ""
	})
}

// SetCurrentPage moves the view to the given page.
func (s *Store) SetCurrentPage(page int) {
	s.mutate(func(st *State) {
		st.Tasks.CurrentPage = page
	})
}

// SetSortBy changes the sort column.
func (s *Store) SetSortBy(sortBy string) {
	s.mutate(func(st *State) {
		st.Tasks.SortBy = sortBy
	})
}

// SetSortOrder changes the sort direction.
func (s *Store) SetSortOrder(sortOrder string) {
	s.mutate(func(st *State) {
		st.Tasks.SortOrder = sortOrder
	})
}

// ClearError clears the error flag.
func (s *Store) ClearError() {
	s.mutate(func(st *State) {
		st.Tasks.Err = ""
	})
}

// ListQuery derives the server query from the current view state.
func (s *Store) ListQuery(limit int) domain.ListQuery {
	st := s.State()
	query := domain.NewListQuery()
	query.Page = st.Tasks.CurrentPage
	query.SortBy = st.Tasks.SortBy
	query.SortOrder = st.Tasks.SortOrder
	if limit > 0 {
		query.Limit = limit
	}
	return query
}

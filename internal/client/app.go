package client

import (
	"context"
	"errors"
	"sync"

	"github.com/pkordes/goal-tracker/internal/domain"
)

// Banner messages shown when a request fails without a server response.
const (
	LoadFailedMessage   = "Fetching goals failed - the server responded with an error."
	AddFailedMessage    = "Adding a goal failed - the server responded with an error."
	DeleteFailedMessage = "Deleting the goal failed - the server responded with an error."
)

// GoalsAPI is the subset of API the App depends on.
type GoalsAPI interface {
	ListGoals(ctx context.Context) ([]domain.Goal, error)
	CreateGoal(ctx context.Context, text string) (domain.Goal, error)
	DeleteGoal(ctx context.Context, id string) error
}

// compile-time check
var _ GoalsAPI = (*API)(nil)

// State is what a view renders: an error banner, the loading flag and the list.
type State struct {
	Goals     []domain.Goal
	IsLoading bool
	Error     string
}

// App holds the client's local goal list. Mutations are applied locally from
// the server's response; the list is never re-fetched after add or delete.
//
// An error, once set, stays until another failure replaces it.
type App struct {
	api GoalsAPI

	mu    sync.Mutex
	state State
}

// NewApp returns an App with an empty list.
func NewApp(api GoalsAPI) *App {
	return &App{api: api, state: State{Goals: []domain.Goal{}}}
}

// Load replaces the local list with the server's. On failure the list is left
// as it was.
func (a *App) Load(ctx context.Context) {
	a.setLoading(true)
	defer a.setLoading(false)

	goals, err := a.api.ListGoals(ctx)
	if err != nil {
		a.setError(err, LoadFailedMessage)
		return
	}
	if goals == nil {
		goals = []domain.Goal{}
	}

	a.mu.Lock()
	a.state.Goals = goals
	a.mu.Unlock()
}

// Add creates a goal and prepends it to the local list using the entered text
// and the id the server assigned.
func (a *App) Add(ctx context.Context, text string) {
	a.setLoading(true)
	defer a.setLoading(false)

	created, err := a.api.CreateGoal(ctx, text)
	if err != nil {
		a.setError(err, AddFailedMessage)
		return
	}

	a.mu.Lock()
	goals := make([]domain.Goal, 0, len(a.state.Goals)+1)
	goals = append(goals, domain.Goal{ID: created.ID, Text: text})
	a.state.Goals = append(goals, a.state.Goals...)
	a.mu.Unlock()
}

// Delete removes the goal on the server and then drops every local goal with
// that id.
func (a *App) Delete(ctx context.Context, id string) {
	a.setLoading(true)
	defer a.setLoading(false)

	if err := a.api.DeleteGoal(ctx, id); err != nil {
		a.setError(err, DeleteFailedMessage)
		return
	}

	a.mu.Lock()
	kept := make([]domain.Goal, 0, len(a.state.Goals))
	for _, g := range a.state.Goals {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	a.state.Goals = kept
	a.mu.Unlock()
}

// Snapshot returns a copy of the current state.
func (a *App) Snapshot() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	s := a.state
	s.Goals = append([]domain.Goal(nil), a.state.Goals...)
	if s.Goals == nil {
		s.Goals = []domain.Goal{}
	}
	return s
}

// Visible reports whether the goal list should be rendered.
func (a *App) Visible() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return !a.state.IsLoading
}

func (a *App) setLoading(v bool) {
	a.mu.Lock()
	a.state.IsLoading = v
	a.mu.Unlock()
}

// setError records the server's message for request errors and the fallback
// for everything else.
func (a *App) setError(err error, fallback string) {
	msg := fallback
	var reqErr *RequestError
	if errors.As(err, &reqErr) && reqErr.Message != "" {
		msg = reqErr.Message
	}
	a.mu.Lock()
	a.state.Error = msg
	a.mu.Unlock()
}

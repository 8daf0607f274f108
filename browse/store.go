package browse

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"springshop/models"
)

// ErrSessionNotFound is returned for unknown browsing session ids.
var ErrSessionNotFound = errors.New("browse: session not found")

// Store keeps live browsing sessions keyed by id. Each session's state is
// guarded by its own mutex so a delivery and a transition never interleave.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*liveSession
}

type liveSession struct {
	mu    sync.Mutex
	state State
}

// NewStore returns an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*liveSession)}
}

// Create opens a new browsing session on the dashboard view.
func (st *Store) Create() (string, State) {
	id := uuid.NewString()
	st.mu.Lock()
	st.sessions[id] = &liveSession{state: NewState()}
	st.mu.Unlock()
	return id, NewState()
}

func (st *Store) get(id string) (*liveSession, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	ls, ok := st.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return ls, nil
}

// Snapshot returns the session's current state.
func (st *Store) Snapshot(id string) (State, error) {
	ls, err := st.get(id)
	if err != nil {
		return State{}, err
	}
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return ls.state, nil
}

// SelectCategory applies the select-category transition. It returns the new
// state and the token for the query the transition triggers.
func (st *Store) SelectCategory(id string, cat models.Category) (State, Token, error) {
	ls, err := st.get(id)
	if err != nil {
		return State{}, Token{}, err
	}
	ls.mu.Lock()
	defer ls.mu.Unlock()
	next, tok := ls.state.SelectCategory(cat)
	ls.state = next
	return next, tok, nil
}

// ApplyFilters applies the apply-filters transition. It returns the new state
// (whose Filters carry any scoped category) and the token for the search
// query the transition triggers.
func (st *Store) ApplyFilters(id string, f models.ProductFilter) (State, Token, error) {
	ls, err := st.get(id)
	if err != nil {
		return State{}, Token{}, err
	}
	ls.mu.Lock()
	defer ls.mu.Unlock()
	next, tok := ls.state.ApplyFilters(f)
	ls.state = next
	return next, tok, nil
}

// GoHome applies the go-home transition and returns the new state.
func (st *Store) GoHome(id string) (State, error) {
	ls, err := st.get(id)
	if err != nil {
		return State{}, err
	}
	ls.mu.Lock()
	defer ls.mu.Unlock()
	ls.state = ls.state.GoHome()
	return ls.state, nil
}

// DeliverCategoryProducts hands a finished category query to the session.
// It reports whether the results were applied or discarded as stale.
func (st *Store) DeliverCategoryProducts(id string, tok Token, products []models.Product) (bool, error) {
	ls, err := st.get(id)
	if err != nil {
		return false, err
	}
	ls.mu.Lock()
	defer ls.mu.Unlock()
	next, applied := ls.state.DeliverCategoryProducts(tok, products)
	ls.state = next
	return applied, nil
}

// DeliverSearchResults hands a finished search query to the session.
func (st *Store) DeliverSearchResults(id string, tok Token, products []models.Product) (bool, error) {
	ls, err := st.get(id)
	if err != nil {
		return false, err
	}
	ls.mu.Lock()
	defer ls.mu.Unlock()
	next, applied := ls.state.DeliverSearchResults(tok, products)
	ls.state = next
	return applied, nil
}

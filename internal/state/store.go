package state

import "sync"

// Store holds the single MarketplaceState and is its only writer.
// Dispatches are serialized behind the mutex, so actions apply strictly in
// call order; State hands out a snapshot that must be treated as read-only.
type Store struct {
	mu    sync.RWMutex
	state MarketplaceState
}

func NewStore() *Store {
	return &Store{state: Initial()}
}

func (st *Store) Dispatch(a Action) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.state = Reduce(st.state, a)
}

func (st *Store) State() MarketplaceState {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.state
}

package cart

import (
	"sync"

	"go.uber.org/zap"
)

// Store is the single owner of the cart state. The view layer holds a
// reference, dispatches actions, and reads the state the dispatch
// returns; subscribers get the same state fanned out after each change.
// There is no package-level cart.
type Store struct {
	mu    sync.RWMutex
	state State
	subs  []func(State)
	log   *zap.Logger
}

// NewStore creates an empty cart store. A nil logger is replaced with a
// no-op logger.
func NewStore(log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{log: log}
}

// State returns the current cart state.
func (st *Store) State() State {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.state
}

// Dispatch applies an action and returns the resulting state. Subscribers
// are notified synchronously, after the state has been swapped, so every
// observer sees states in dispatch order.
func (st *Store) Dispatch(a Action) State {
	st.mu.Lock()
	next := Apply(st.state, a)
	st.state = next
	subs := st.subs
	st.mu.Unlock()

	st.log.Debug("cart action applied",
		zap.String("action", actionName(a)),
		zap.Int("lines", len(next.Items)),
		zap.Float64("total", next.Total))

	for _, fn := range subs {
		fn(next)
	}
	return next
}

// Subscribe registers an observer called after every dispatch.
func (st *Store) Subscribe(fn func(State)) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.subs = append(st.subs, fn)
}

func actionName(a Action) string {
	switch a.(type) {
	case AddItem:
		return "add_item"
	case UpdateQuantity:
		return "update_quantity"
	case RemoveItem:
		return "remove_item"
	case Clear:
		return "clear"
	default:
		return "unknown"
	}
}

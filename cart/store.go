package cart

import "sync"

// Store keeps one Cart per session id, in memory only. Carts are
// ephemeral: a restart or session end loses them, which is the intended
// lifecycle.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// With runs fn against the session's cart, creating the cart on first
// use. Access is serialised per store.
func (s *Store) With(sessionID string, fn func(*Cart)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[sessionID]
	if !ok {
		c = New()
		s.carts[sessionID] = c
	}
	fn(c)
}

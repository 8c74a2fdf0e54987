package wishlist

import "sync"

// Store keeps an ordered set of product ids per user.
type Store struct {
	mu     sync.Mutex
	byUser map[string][]int
}

func NewStore() *Store {
	return &Store{byUser: make(map[string][]int)}
}

// Add appends a product id; adding one already present is a no-op.
func (s *Store) Add(userID string, productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.byUser[userID] {
		if id == productID {
			return
		}
	}
	s.byUser[userID] = append(s.byUser[userID], productID)
}

// Remove deletes a product id; removing an absent id is a no-op.
func (s *Store) Remove(userID string, productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.byUser[userID]
	for i, id := range ids {
		if id == productID {
			s.byUser[userID] = append(ids[:i], ids[i+1:]...)
			return
		}
	}
}

// List returns the user's wishlist in insertion order.
func (s *Store) List(userID string) []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.byUser[userID]
	out := make([]int, len(ids))
	copy(out, ids)
	return out
}

package cart

import (
	"sync"

	"saree-store/internal/models"
)

// Store keeps one cart per user id. Entries are unique per product and
// preserve insertion order; quantities are always >= 1.
type Store struct {
	mu     sync.Mutex
	carts  map[string][]models.CartItem
	promos map[string]bool
}

func NewStore() *Store {
	return &Store{
		carts:  make(map[string][]models.CartItem),
		promos: make(map[string]bool),
	}
}

// Add puts quantity units of product into the user's cart. If the product
// is already present its quantity is incremented, otherwise a new entry is
// appended. Quantities below 1 are ignored.
func (s *Store) Add(userID string, product models.Product, quantity int) {
	if quantity < 1 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[userID]
	for i := range items {
		if items[i].Product.ID == product.ID {
			items[i].Quantity += quantity
			return
		}
	}
	s.carts[userID] = append(items, models.CartItem{Product: product, Quantity: quantity})
}

// Remove deletes the product's entry. Removing an absent product is a no-op.
func (s *Store) Remove(userID string, productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[userID]
	for i := range items {
		if items[i].Product.ID == productID {
			s.carts[userID] = append(items[:i], items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity overwrites the quantity for a product already in the cart.
// Quantities below 1 are ignored; callers remove the item instead.
func (s *Store) UpdateQuantity(userID string, productID, quantity int) {
	if quantity < 1 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[userID]
	for i := range items {
		if items[i].Product.ID == productID {
			items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the user's cart and drops any applied promo. Called when
// an order is placed.
func (s *Store) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
	delete(s.promos, userID)
}

// SetPromo marks whether the user's promo code is applied. Code validity
// is the caller's concern.
func (s *Store) SetPromo(userID string, applied bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.promos[userID] = applied
}

// PromoApplied reports whether the user has an applied promo.
func (s *Store) PromoApplied(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.promos[userID]
}

// Items returns a copy of the user's cart in insertion order.
func (s *Store) Items(userID string) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[userID]
	out := make([]models.CartItem, len(items))
	copy(out, items)
	return out
}

// TotalItems is the sum of quantities across the cart.
func (s *Store) TotalItems(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, it := range s.carts[userID] {
		total += it.Quantity
	}
	return total
}

// TotalPrice is the sum of price x quantity across the cart, in rupees.
func (s *Store) TotalPrice(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, it := range s.carts[userID] {
		total += it.Product.Price * it.Quantity
	}
	return total
}

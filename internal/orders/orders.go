package orders

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"saree-store/internal/models"
	"saree-store/internal/pricing"
)

// Store keeps placed orders per user, newest first.
type Store struct {
	mu     sync.Mutex
	byUser map[string][]models.Order
}

func NewStore() *Store {
	return &Store{byUser: make(map[string][]models.Order)}
}

// Place records a new confirmed order from a cart snapshot and returns it.
func (s *Store) Place(userID string, items []models.CartItem, shipping models.ShippingDetails, paymentMethod string, totals pricing.OrderTotals) models.Order {
	order := models.Order{
		ID:            uuid.NewString(),
		UserID:        userID,
		Items:         items,
		Shipping:      shipping,
		PaymentMethod: paymentMethod,
		Subtotal:      totals.Subtotal,
		ShippingFee:   totals.Shipping,
		Tax:           totals.Tax,
		Total:         totals.Total,
		Status:        models.OrderStatusConfirmed,
		PlacedAt:      time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byUser[userID] = append([]models.Order{order}, s.byUser[userID]...)
	return order
}

// ListByUser returns the user's orders, newest first.
func (s *Store) ListByUser(userID string) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.byUser[userID]
	out := make([]models.Order, len(list))
	copy(out, list)
	return out
}

// Get finds one of the user's orders by id.
func (s *Store) Get(userID, orderID string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.byUser[userID] {
		if o.ID == orderID {
			return o, true
		}
	}
	return models.Order{}, false
}

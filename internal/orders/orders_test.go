package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saree-store/internal/models"
	"saree-store/internal/pricing"
)

func sampleItems() []models.CartItem {
	return []models.CartItem{
		{Product: models.Product{ID: 1, Name: "Saree", Price: 2899}, Quantity: 2},
	}
}

func TestPlaceAndGet(t *testing.T) {
	s := NewStore()

	totals := pricing.ForOrder(5798)
	order := s.Place("user123", sampleItems(), models.ShippingDetails{City: "Pune"}, "cod", totals)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)
	assert.Equal(t, totals.Total, order.Total)
	assert.False(t, order.PlacedAt.IsZero())

	got, ok := s.Get("user123", order.ID)
	require.True(t, ok)
	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, "Pune", got.Shipping.City)
}

func TestGetIsScopedToUser(t *testing.T) {
	s := NewStore()
	order := s.Place("user123", sampleItems(), models.ShippingDetails{}, "upi", pricing.ForOrder(100))

	_, ok := s.Get("someone-else", order.ID)
	assert.False(t, ok)

	_, ok = s.Get("user123", "no-such-order")
	assert.False(t, ok)
}

func TestListNewestFirst(t *testing.T) {
	s := NewStore()
	first := s.Place("user123", sampleItems(), models.ShippingDetails{}, "cod", pricing.ForOrder(100))
	second := s.Place("user123", sampleItems(), models.ShippingDetails{}, "cod", pricing.ForOrder(200))

	list := s.ListByUser("user123")
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)

	assert.Empty(t, s.ListByUser("someone-else"))
}

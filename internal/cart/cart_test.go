package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saree-store/internal/models"
)

const user = "user123"

func product(id, price int) models.Product {
	return models.Product{ID: id, Name: "Saree", Price: price, InStock: true}
}

func TestAddMergesQuantities(t *testing.T) {
	s := NewStore()
	p := product(1, 500)

	s.Add(user, p, 2)
	s.Add(user, p, 3)

	items := s.Items(user)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 5, s.TotalItems(user))
}

func TestAddRejectsNonPositiveQuantity(t *testing.T) {
	s := NewStore()

	s.Add(user, product(1, 500), 0)
	s.Add(user, product(1, 500), -2)

	assert.Empty(t, s.Items(user))
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	s := NewStore()

	s.Add(user, product(3, 100), 1)
	s.Add(user, product(1, 100), 1)
	s.Add(user, product(2, 100), 1)

	items := s.Items(user)
	require.Len(t, items, 3)
	assert.Equal(t, []int{3, 1, 2}, []int{items[0].Product.ID, items[1].Product.ID, items[2].Product.ID})
}

func TestUpdateQuantity(t *testing.T) {
	s := NewStore()
	s.Add(user, product(1, 500), 2)

	s.UpdateQuantity(user, 1, 7)
	assert.Equal(t, 7, s.Items(user)[0].Quantity)

	// Below 1 is a no-op; callers remove instead.
	s.UpdateQuantity(user, 1, 0)
	assert.Equal(t, 7, s.Items(user)[0].Quantity)

	// Unknown product is a no-op.
	s.UpdateQuantity(user, 99, 3)
	assert.Len(t, s.Items(user), 1)
}

func TestRemove(t *testing.T) {
	s := NewStore()
	s.Add(user, product(1, 500), 2)
	s.Add(user, product(2, 300), 1)

	s.Remove(user, 1)
	items := s.Items(user)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Product.ID)

	// Absent id is a no-op, not an error.
	s.Remove(user, 42)
	assert.Len(t, s.Items(user), 1)
}

func TestTotals(t *testing.T) {
	s := NewStore()
	s.Add(user, product(1, 12899), 2)
	s.Add(user, product(2, 3499), 1)

	assert.Equal(t, 3, s.TotalItems(user))
	assert.Equal(t, 2*12899+3499, s.TotalPrice(user))

	s.UpdateQuantity(user, 1, 1)
	assert.Equal(t, 12899+3499, s.TotalPrice(user))

	s.Remove(user, 2)
	assert.Equal(t, 12899, s.TotalPrice(user))
}

func TestClearDropsItemsAndPromo(t *testing.T) {
	s := NewStore()
	s.Add(user, product(1, 500), 2)
	s.SetPromo(user, true)

	s.Clear(user)

	assert.Empty(t, s.Items(user))
	assert.Equal(t, 0, s.TotalPrice(user))
	assert.False(t, s.PromoApplied(user))
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	s := NewStore()
	s.Add("a", product(1, 500), 1)
	s.Add("b", product(2, 900), 3)

	assert.Equal(t, 1, s.TotalItems("a"))
	assert.Equal(t, 3, s.TotalItems("b"))
	assert.Equal(t, 500, s.TotalPrice("a"))
}

package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForOrder(t *testing.T) {
	// Above the threshold shipping is free; 18% tax rounds to the rupee.
	got := ForOrder(2500)
	assert.Equal(t, OrderTotals{Subtotal: 2500, Shipping: 0, Tax: 450, Total: 2950}, got)

	// Exactly 2000 is NOT above the threshold.
	got = ForOrder(2000)
	assert.Equal(t, OrderTotals{Subtotal: 2000, Shipping: 100, Tax: 360, Total: 2460}, got)

	// 999 * 0.18 = 179.82 -> 180.
	got = ForOrder(999)
	assert.Equal(t, 180, got.Tax)
}

func TestForCart(t *testing.T) {
	// No promo: subtotal + shipping, no tax on the cart side.
	got := ForCart(1000, false)
	assert.Equal(t, CartSummary{Subtotal: 1000, Discount: 0, Shipping: 100, Total: 1100}, got)

	// Promo takes 10% of the subtotal; the discount may be fractional.
	got = ForCart(12899, true)
	assert.InDelta(t, 1289.9, got.Discount, 0.001)
	assert.Equal(t, 0, got.Shipping)
	assert.InDelta(t, 12899-1289.9, got.Total, 0.001)
}

func TestCartAndOrderFormulasDiverge(t *testing.T) {
	// The two summaries were computed independently in the storefront and
	// intentionally still are: same subtotal, different totals.
	subtotal := 5000
	assert.NotEqual(t, float64(ForOrder(subtotal).Total), ForCart(subtotal, true).Total)
}

func TestValidPromo(t *testing.T) {
	assert.True(t, ValidPromo("WELCOME10"))
	assert.False(t, ValidPromo("welcome10"))
	assert.False(t, ValidPromo("SAVE20"))
	assert.False(t, ValidPromo(""))
}

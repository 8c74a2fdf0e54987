// Package pricing holds the two order-cost formulas the storefront uses.
// The cart page and the checkout page computed their summaries
// independently in the original UI (promo discount and no tax on the cart
// side, 18% GST and no promo on the checkout side). Both are kept here,
// side by side, rather than silently merged.
package pricing

import "math"

const (
	// FreeShippingThreshold is the subtotal above which shipping is free.
	FreeShippingThreshold = 2000
	// FlatShippingFee applies below the threshold.
	FlatShippingFee = 100
	// TaxRate is the GST applied by the checkout summary.
	TaxRate = 0.18
	// PromoCode is the only accepted promo code.
	PromoCode = "WELCOME10"
	// PromoDiscountRate is the discount PromoCode grants on the subtotal.
	PromoDiscountRate = 0.10
)

// OrderTotals is the checkout-side summary. All amounts in whole rupees;
// tax is rounded to the nearest rupee.
type OrderTotals struct {
	Subtotal int `json:"subtotal"`
	Shipping int `json:"shipping"`
	Tax      int `json:"tax"`
	Total    int `json:"total"`
}

// ForOrder computes the checkout totals for a cart subtotal.
func ForOrder(subtotal int) OrderTotals {
	shipping := shippingFee(subtotal)
	tax := int(math.Round(TaxRate * float64(subtotal)))
	return OrderTotals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}

// CartSummary is the cart-side summary. The discount can be fractional,
// so the discounted amounts stay floating point like the original display.
type CartSummary struct {
	Subtotal int     `json:"subtotal"`
	Discount float64 `json:"discount"`
	Shipping int     `json:"shipping"`
	Total    float64 `json:"total"`
}

// ForCart computes the cart totals, applying the promo discount if set.
func ForCart(subtotal int, promoApplied bool) CartSummary {
	discount := 0.0
	if promoApplied {
		discount = PromoDiscountRate * float64(subtotal)
	}
	shipping := shippingFee(subtotal)
	return CartSummary{
		Subtotal: subtotal,
		Discount: discount,
		Shipping: shipping,
		Total:    float64(subtotal) - discount + float64(shipping),
	}
}

// ValidPromo reports whether code is an accepted promo code.
func ValidPromo(code string) bool {
	return code == PromoCode
}

func shippingFee(subtotal int) int {
	if subtotal > FreeShippingThreshold {
		return 0
	}
	return FlatShippingFee
}

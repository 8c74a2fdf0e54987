package models

import "time"

type OrderStatus string

const (
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// ShippingDetails is the address block collected by the checkout wizard.
type ShippingDetails struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
	Notes    string `json:"notes,omitempty"`
}

// Order is an immutable snapshot taken when the checkout wizard completes.
// Items are copied out of the cart so later cart mutations cannot touch them.
type Order struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	Items         []CartItem      `json:"items"`
	Shipping      ShippingDetails `json:"shipping"`
	PaymentMethod string          `json:"paymentMethod"`
	Subtotal      int             `json:"subtotal"`
	ShippingFee   int             `json:"shippingFee"`
	Tax           int             `json:"tax"`
	Total         int             `json:"total"`
	Status        OrderStatus     `json:"status"`
	PlacedAt      time.Time       `json:"placedAt"`
}

package models

// CartItem pairs a product with a quantity. Quantity is always >= 1;
// entries are unique per product id.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

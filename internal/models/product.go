package models

// Product is a catalog entry. The catalog is defined statically at process
// start and products are never mutated afterwards.
type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int      `json:"price"` // whole rupees
	Images      []string `json:"images"`
	Category    string   `json:"category"`
	Material    string   `json:"material"`
	Occasion    string   `json:"occasion"`
	Rating      float64  `json:"rating"`
	Reviews     []Review `json:"reviews"`
	Colors      []string `json:"colors"`
	InStock     bool     `json:"inStock"`
}

// Review belongs to exactly one product.
type Review struct {
	ID       int     `json:"id"`
	UserName string  `json:"userName"`
	Rating   float64 `json:"rating"`
	Comment  string  `json:"comment"`
	Date     string  `json:"date"` // ISO date, e.g. "2023-11-15"
}

package catalog

import (
	"strings"

	"saree-store/internal/models"
)

// Catalog answers read-only queries over the static product list. It is
// injected into handlers rather than accessed as a package global so tests
// can run against a smaller fixture set.
type Catalog struct {
	products []models.Product
}

// New returns a catalog over the built-in product list.
func New() *Catalog {
	return &Catalog{products: products}
}

// NewWith returns a catalog over an explicit product list.
func NewWith(list []models.Product) *Catalog {
	return &Catalog{products: list}
}

// All returns the full product list in catalog order.
func (c *Catalog) All() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// GetByID looks a product up by id. A miss is not an error.
func (c *Catalog) GetByID(id int) (*models.Product, bool) {
	for i := range c.products {
		if c.products[i].ID == id {
			p := c.products[i]
			return &p, true
		}
	}
	return nil, false
}

// Filter holds the catalog query criteria. Zero values impose no constraint;
// price bounds are pointers so 0 can be an explicit lower bound.
type Filter struct {
	Category    string
	Material    string
	Occasion    string
	MinPrice    *int
	MaxPrice    *int
	SearchQuery string
}

// Filtered returns the products matching f, in catalog order.
//
// A non-empty search query takes over completely: the result is the set of
// products whose name, description, category, material or occasion contains
// the query (case-insensitive), and the remaining criteria are ignored.
// That mirrors the storefront's observed behavior; whether search should
// instead intersect with the facet filters is an open question recorded in
// DESIGN.md.
func (c *Catalog) Filtered(f Filter) []models.Product {
	if q := strings.TrimSpace(f.SearchQuery); q != "" {
		return c.search(q)
	}

	var out []models.Product
	for _, p := range c.products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Material != "" && p.Material != f.Material {
			continue
		}
		if f.Occasion != "" && p.Occasion != f.Occasion {
			continue
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (c *Catalog) search(query string) []models.Product {
	q := strings.ToLower(query)
	var out []models.Product
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Category), q) ||
			strings.Contains(strings.ToLower(p.Material), q) ||
			strings.Contains(strings.ToLower(p.Occasion), q) {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the distinct category labels in first-seen order.
func (c *Catalog) Categories() []string {
	return c.distinct(func(p models.Product) string { return p.Category })
}

// Materials returns the distinct material labels in first-seen order.
func (c *Catalog) Materials() []string {
	return c.distinct(func(p models.Product) string { return p.Material })
}

// Occasions returns the distinct occasion labels in first-seen order.
func (c *Catalog) Occasions() []string {
	return c.distinct(func(p models.Product) string { return p.Occasion })
}

func (c *Catalog) distinct(key func(models.Product) string) []string {
	seen := make(map[string]struct{}, len(c.products))
	var out []string
	for _, p := range c.products {
		k := key(p)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

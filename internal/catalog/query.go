package catalog

import (
	"sort"

	"saree-store/internal/models"
)

// PageSize is the fixed number of products per listing page.
const PageSize = 9

// Sort keys accepted by the listing pipeline.
const (
	SortPriceAsc   = "price-asc"
	SortPriceDesc  = "price-desc"
	SortRatingDesc = "rating-desc"
	SortNewest     = "newest" // default; higher id is assumed newer
)

// Query is one full set of listing inputs: filter, sort key and page.
type Query struct {
	Filter Filter
	Sort   string
	Page   int
}

// Page is one page of a listing result.
type Page struct {
	Items      []models.Product `json:"data"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

// Run filters, sorts and paginates in that order. Sorting is stable so
// products with equal keys keep their relative catalog order, and an
// unknown sort key falls back to newest-first.
func (c *Catalog) Run(q Query) Page {
	items := c.Filtered(q.Filter)
	sortProducts(items, q.Sort)

	total := len(items)
	page := q.Page
	if page < 1 {
		page = 1
	}

	totalPages := total / PageSize
	if total%PageSize != 0 {
		totalPages++
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Items:      items[start:end],
		Total:      total,
		Page:       page,
		PageSize:   PageSize,
		TotalPages: totalPages,
	}
}

func sortProducts(items []models.Product, key string) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price < items[j].Price })
	case SortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price > items[j].Price })
	case SortRatingDesc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Rating > items[j].Rating })
	default:
		sort.SliceStable(items, func(i, j int) bool { return items[i].ID > items[j].ID })
	}
}

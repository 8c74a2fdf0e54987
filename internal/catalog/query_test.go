package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saree-store/internal/models"
)

// fixture builds n minimal products with ascending ids. Price and rating
// cycle so sorts have ties to exercise stability.
func fixture(n int) []models.Product {
	out := make([]models.Product, n)
	for i := 0; i < n; i++ {
		out[i] = models.Product{
			ID:       i + 1,
			Name:     fmt.Sprintf("Saree %d", i+1),
			Price:    1000 * (i%4 + 1),
			Rating:   float64(i%3) + 2.5,
			Category: "Silk",
			InStock:  true,
		}
	}
	return out
}

func TestSortPriceAscending(t *testing.T) {
	c := NewWith(fixture(12))
	page := c.Run(Query{Sort: SortPriceAsc})

	for i := 1; i < len(page.Items); i++ {
		assert.GreaterOrEqual(t, page.Items[i].Price, page.Items[i-1].Price)
	}
}

func TestSortStability(t *testing.T) {
	c := NewWith(fixture(12))
	page := c.Run(Query{Sort: SortPriceAsc})

	// Equal prices must keep catalog (ascending id) order.
	for i := 1; i < len(page.Items); i++ {
		if page.Items[i].Price == page.Items[i-1].Price {
			assert.Greater(t, page.Items[i].ID, page.Items[i-1].ID)
		}
	}
}

func TestSortRatingDescending(t *testing.T) {
	c := NewWith(fixture(9))
	page := c.Run(Query{Sort: SortRatingDesc})

	for i := 1; i < len(page.Items); i++ {
		assert.LessOrEqual(t, page.Items[i].Rating, page.Items[i-1].Rating)
	}
}

func TestSortNewestIsDefault(t *testing.T) {
	c := NewWith(fixture(9))

	newest := c.Run(Query{Sort: SortNewest})
	unknown := c.Run(Query{Sort: "bogus"})
	assert.Equal(t, newest.Items, unknown.Items)

	for i := 1; i < len(newest.Items); i++ {
		assert.Less(t, newest.Items[i].ID, newest.Items[i-1].ID)
	}
}

func TestPagination(t *testing.T) {
	c := NewWith(fixture(20))

	page1 := c.Run(Query{Sort: SortPriceAsc, Page: 1})
	require.Len(t, page1.Items, 9)
	assert.Equal(t, 20, page1.Total)
	assert.Equal(t, 9, page1.PageSize)
	assert.Equal(t, 3, page1.TotalPages)

	page3 := c.Run(Query{Sort: SortPriceAsc, Page: 3})
	assert.Len(t, page3.Items, 2)

	page4 := c.Run(Query{Sort: SortPriceAsc, Page: 4})
	assert.Empty(t, page4.Items)

	// Page defaults to 1 when out of range low.
	page0 := c.Run(Query{Sort: SortPriceAsc, Page: 0})
	assert.Equal(t, page1.Items, page0.Items)
}

func TestPaginationSlicesInOrder(t *testing.T) {
	c := NewWith(fixture(20))

	// Under the newest sort, page 1 is ids 20..12 and page 3 ids 2..1.
	page1 := c.Run(Query{Sort: SortNewest, Page: 1})
	require.Len(t, page1.Items, 9)
	assert.Equal(t, 20, page1.Items[0].ID)
	assert.Equal(t, 12, page1.Items[8].ID)

	page3 := c.Run(Query{Sort: SortNewest, Page: 3})
	require.Len(t, page3.Items, 2)
	assert.Equal(t, 2, page3.Items[0].ID)
	assert.Equal(t, 1, page3.Items[1].ID)
}

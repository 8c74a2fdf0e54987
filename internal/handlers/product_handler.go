package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"saree-store/internal/cache"
	"saree-store/internal/catalog"
)

type ProductHandler struct {
	catalog *catalog.Catalog
	cache   *cache.Cache
}

func NewProductHandler(cat *catalog.Catalog, c *cache.Cache) *ProductHandler {
	return &ProductHandler{catalog: cat, cache: c}
}

// ListProducts runs the catalog query pipeline: filter, sort, paginate.
// Responses are cached keyed by the complete input combination, so any
// changed input recomputes.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	// The price range defaults to the slider's full span.
	minPrice, maxPrice := 0, 20000
	if v, err := strconv.Atoi(c.DefaultQuery("min_price", "0")); err == nil {
		minPrice = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("max_price", "20000")); err == nil {
		maxPrice = v
	}

	f := catalog.Filter{
		Category:    c.Query("category"),
		Material:    c.Query("material"),
		Occasion:    c.Query("occasion"),
		MinPrice:    &minPrice,
		MaxPrice:    &maxPrice,
		SearchQuery: c.Query("q"),
	}

	sortKey := c.DefaultQuery("sort", catalog.SortNewest)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	cacheKey := fmt.Sprintf(
		"products:list:q:%s_cat:%s_mat:%s_occ:%s_price:%d-%d_sort:%s_p%d",
		f.SearchQuery, f.Category, f.Material, f.Occasion, minPrice, maxPrice, sortKey, page,
	)
	if cached, found := h.cache.GetValue(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	result := h.catalog.Run(catalog.Query{Filter: f, Sort: sortKey, Page: page})

	h.cache.Set(cacheKey, result, 2*time.Minute)
	c.JSON(http.StatusOK, result)
}

// GetProduct returns one product by id. A miss sends the caller back to
// the listing.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	cacheKey := fmt.Sprintf("product:%d", id)
	if cached, found := h.cache.GetValue(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	product, ok := h.catalog.GetByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error":    "product not found",
			"redirect": "/products",
		})
		return
	}

	h.cache.Set(cacheKey, product, 5*time.Minute)
	c.JSON(http.StatusOK, product)
}

// GetFacets lists the distinct filterable attribute values, in first-seen
// catalog order.
func (h *ProductHandler) GetFacets(c *gin.Context) {
	const cacheKey = "products:facets"
	if cached, found := h.cache.GetValue(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	response := gin.H{
		"categories": h.catalog.Categories(),
		"materials":  h.catalog.Materials(),
		"occasions":  h.catalog.Occasions(),
	}

	h.cache.Set(cacheKey, response, 10*time.Minute)
	c.JSON(http.StatusOK, response)
}

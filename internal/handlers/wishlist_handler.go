package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"saree-store/internal/auth"
	"saree-store/internal/catalog"
	"saree-store/internal/models"
	"saree-store/internal/wishlist"
)

type WishlistHandler struct {
	wishlist *wishlist.Store
	catalog  *catalog.Catalog
}

func NewWishlistHandler(wl *wishlist.Store, cat *catalog.Catalog) *WishlistHandler {
	return &WishlistHandler{wishlist: wl, catalog: cat}
}

type wishlistInput struct {
	ProductID int `json:"product_id" binding:"required"`
}

// GetWishlist resolves the saved ids to full products. Ids that no longer
// resolve are skipped.
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	var products []models.Product
	for _, id := range h.wishlist.List(auth.UserID(c)) {
		if p, ok := h.catalog.GetByID(id); ok {
			products = append(products, *p)
		}
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// AddToWishlist saves a product id; duplicates are ignored.
func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	var input wishlistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	if _, ok := h.catalog.GetByID(input.ProductID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found", "redirect": "/products"})
		return
	}

	h.wishlist.Add(auth.UserID(c), input.ProductID)
	c.JSON(http.StatusCreated, gin.H{"message": "added to wishlist"})
}

// RemoveFromWishlist drops a product id; absent ids succeed.
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	h.wishlist.Remove(auth.UserID(c), productID)
	c.JSON(http.StatusOK, gin.H{"message": "removed from wishlist"})
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"saree-store/internal/auth"
	"saree-store/internal/cart"
	"saree-store/internal/catalog"
	"saree-store/internal/pricing"
)

type CartHandler struct {
	cart    *cart.Store
	catalog *catalog.Catalog
}

func NewCartHandler(cartStore *cart.Store, cat *catalog.Catalog) *CartHandler {
	return &CartHandler{cart: cartStore, catalog: cat}
}

type cartItemInput struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity" binding:"required,min=1"`
}

type quantityInput struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

type promoInput struct {
	Code string `json:"code" binding:"required"`
}

// GetCart returns the cart items plus running totals.
func (h *CartHandler) GetCart(c *gin.Context) {
	userID := auth.UserID(c)
	c.JSON(http.StatusOK, gin.H{
		"items":       h.cart.Items(userID),
		"total_items": h.cart.TotalItems(userID),
		"total_price": h.cart.TotalPrice(userID),
	})
}

// AddItem puts a product in the cart, merging quantities when the product
// is already there.
func (h *CartHandler) AddItem(c *gin.Context) {
	userID := auth.UserID(c)

	var input cartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	product, ok := h.catalog.GetByID(input.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found", "redirect": "/products"})
		return
	}

	h.cart.Add(userID, *product, input.Quantity)
	c.JSON(http.StatusCreated, gin.H{
		"items":       h.cart.Items(userID),
		"total_items": h.cart.TotalItems(userID),
	})
}

// UpdateItem overwrites a cart line's quantity.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	userID := auth.UserID(c)

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	var input quantityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	h.cart.UpdateQuantity(userID, productID, input.Quantity)
	c.JSON(http.StatusOK, gin.H{"items": h.cart.Items(userID)})
}

// RemoveItem deletes a cart line. Removing an absent product succeeds.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID := auth.UserID(c)

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	h.cart.Remove(userID, productID)
	c.JSON(http.StatusOK, gin.H{"items": h.cart.Items(userID)})
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.cart.Clear(auth.UserID(c))
	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}

// Summary returns the cart page's totals: subtotal, promo discount and
// shipping. This is intentionally a different formula from the checkout
// totals (no tax, promo applies).
func (h *CartHandler) Summary(c *gin.Context) {
	userID := auth.UserID(c)
	summary := pricing.ForCart(h.cart.TotalPrice(userID), h.cart.PromoApplied(userID))
	c.JSON(http.StatusOK, summary)
}

// ApplyPromo validates and applies a promo code to the cart.
func (h *CartHandler) ApplyPromo(c *gin.Context) {
	userID := auth.UserID(c)

	var input promoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	if !pricing.ValidPromo(input.Code) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid promo code"})
		return
	}

	h.cart.SetPromo(userID, true)
	c.JSON(http.StatusOK, pricing.ForCart(h.cart.TotalPrice(userID), true))
}

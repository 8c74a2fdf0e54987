package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"saree-store/internal/auth"
	"saree-store/internal/cart"
	"saree-store/internal/checkout"
	"saree-store/internal/models"
)

type CheckoutHandler struct {
	manager *checkout.Manager
	cart    *cart.Store
}

func NewCheckoutHandler(manager *checkout.Manager, cartStore *cart.Store) *CheckoutHandler {
	return &CheckoutHandler{manager: manager, cart: cartStore}
}

type continueInput struct {
	Shipping *models.ShippingDetails  `json:"shipping"`
	Payment  *checkout.PaymentDetails `json:"payment"`
}

// guardCart enforces the non-empty-cart entry condition. The signed-in
// guard is the auth middleware on the route group.
func (h *CheckoutHandler) guardCart(c *gin.Context, userID string) bool {
	if h.cart.TotalItems(userID) == 0 {
		c.JSON(http.StatusConflict, gin.H{
			"error":    "Your cart is empty. Add items before checkout.",
			"redirect": "/products",
		})
		return false
	}
	return true
}

// Start opens a fresh wizard at the shipping step.
func (h *CheckoutHandler) Start(c *gin.Context) {
	userID := auth.UserID(c)
	if !h.guardCart(c, userID) {
		return
	}

	session := h.manager.Start(userID)
	c.JSON(http.StatusOK, gin.H{
		"session": session,
		"totals":  h.manager.Totals(userID),
	})
}

// GetState returns the wizard's current step and totals. The cart guard is
// re-checked here so a cart emptied mid-wizard kicks the user back out.
func (h *CheckoutHandler) GetState(c *gin.Context) {
	userID := auth.UserID(c)

	session, ok := h.manager.Get(userID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no checkout in progress", "redirect": "/cart"})
		return
	}
	if session.Step < checkout.StepSubmitting && !h.guardCart(c, userID) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session": session,
		"totals":  h.manager.Totals(userID),
	})
}

// Continue advances the wizard one step, or places the order from the
// review step.
func (h *CheckoutHandler) Continue(c *gin.Context) {
	userID := auth.UserID(c)

	// The review step takes no payload, so an empty body is fine.
	var input continueInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
			return
		}
	}

	result, err := h.manager.Continue(userID, checkout.ContinueInput{
		Shipping: input.Shipping,
		Payment:  input.Payment,
	})
	if err != nil {
		h.continueError(c, err)
		return
	}

	if len(result.FieldErrors) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"errors":  result.FieldErrors,
			"session": result.Session,
		})
		return
	}

	response := gin.H{"session": result.Session, "totals": h.manager.Totals(userID)}
	if result.Order != nil {
		response["order"] = result.Order
		response["redirect"] = "/order-success"
	}
	c.JSON(http.StatusOK, response)
}

// Back steps the wizard backward; from the shipping step it exits to the
// cart.
func (h *CheckoutHandler) Back(c *gin.Context) {
	userID := auth.UserID(c)

	session, exited, err := h.manager.Back(userID)
	if err != nil {
		h.continueError(c, err)
		return
	}
	if exited {
		c.JSON(http.StatusOK, gin.H{"redirect": "/cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

func (h *CheckoutHandler) continueError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, checkout.ErrNoSession):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "redirect": "/cart"})
	case errors.Is(err, checkout.ErrEmptyCart):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "redirect": "/products"})
	case errors.Is(err, checkout.ErrSubmitting):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "redirect": "/order-success"})
	}
}

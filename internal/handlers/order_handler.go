package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"saree-store/internal/auth"
	"saree-store/internal/orders"
)

type OrderHandler struct {
	orders *orders.Store
}

func NewOrderHandler(orderStore *orders.Store) *OrderHandler {
	return &OrderHandler{orders: orderStore}
}

// ListOrders returns the user's order history, newest first.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"orders": h.orders.ListByUser(auth.UserID(c))})
}

// GetOrder returns one of the user's orders. Another user's order id is a
// plain miss.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, ok := h.orders.Get(auth.UserID(c), c.Param("orderId"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"saree-store/internal/auth"
)

type AuthHandler struct {
	store  *auth.Store
	secret []byte
}

func NewAuthHandler(store *auth.Store, secret []byte) *AuthHandler {
	return &AuthHandler{store: store, secret: secret}
}

type loginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type registerInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login signs the mock user in and returns a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": auth.ErrInvalidCredentials.Error()})
		return
	}

	user, err := h.store.Login(input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	token, err := auth.NewToken(h.secret, user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// Register creates the mock account and signs it in.
func (h *AuthHandler) Register(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": auth.ErrInvalidRegistration.Error()})
		return
	}

	user, err := h.store.Register(input.Name, input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := auth.NewToken(h.secret, user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

// Logout signs out and erases the persisted session record.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.store.Logout()
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// Me returns the signed-in user.
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := h.store.Current()
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not signed in", "redirect": "/signin"})
		return
	}
	c.JSON(http.StatusOK, user)
}

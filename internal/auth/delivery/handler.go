package delivery

import (
	"errors"
	"fmt"
	"net/http"

	authdto "konexio-backend/internal/auth/dto"
	"konexio-backend/internal/auth/usecase"
	"konexio-backend/pkg/validate"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles account-related HTTP requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Register creates a new account
// POST /users/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": validate.Message(err)})
		return
	}

	user, err := h.authUsecase.Register(&req)
	if err != nil {
		if errors.Is(err, usecase.ErrDuplicateEmail) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "this email already has an account. Did you want to login ?"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "A problem occured."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Account successfully created!", "user": user})
}

// Login verifies credentials and attaches the session cookie
// POST /users/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": validate.Message(err)})
		return
	}

	user, tok, err := h.authUsecase.Login(&req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email or password incorrect"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "A problem occured."})
		return
	}

	SetSessionCookie(c, tok)
	c.JSON(http.StatusOK, gin.H{"success": "Cookie sent !", "user": user})
}

// Logout clears the session cookie
// GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	ClearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out."})
}

// ListUsers returns every account
// GET /users/ (admin only)
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.authUsecase.ListUsers()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A problem occured."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"usersList": users})
}

// DeleteUser removes a non-admin account
// DELETE /users/ (admin only)
func (h *AuthHandler) DeleteUser(c *gin.Context) {
	var req authdto.DeleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": validate.Message(err)})
		return
	}

	users, err := h.authUsecase.DeleteUser(req.ID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User ID not found. Please choose a valid one."})
		case errors.Is(err, usecase.ErrPeerAdmin):
			c.JSON(http.StatusForbidden, gin.H{"error": "You cannot delete an admin account."})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "A problem occured."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   fmt.Sprintf("user ID %s successfully deleted !", req.ID),
		"usersList": users,
	})
}

package delivery

import (
	"net/http"

	"konexio-backend/internal/auth/token"
	"konexio-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// ContextUserIDKey is where Authenticate stores the verified subject id.
const ContextUserIDKey = "userID"

// Authenticate requires a valid, unexpired session token in the jwt cookie.
// On failure it clears the cookie and aborts with 401.
func Authenticate(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil {
			ClearSessionCookie(c)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token. Please login first."})
			c.Abort()
			return
		}

		userID, err := tokens.Verify(cookie)
		if err != nil {
			ClearSessionCookie(c)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token. Please login first."})
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

// RequireAdmin loads the authenticated user and aborts with 403 unless the
// account is an admin. Must run after Authenticate.
func RequireAdmin(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(ContextUserIDKey)

		user, err := authUsecase.GetUserByID(userID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A problem occured."})
			c.Abort()
			return
		}
		if user == nil || !user.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin privileges required."})
			c.Abort()
			return
		}

		c.Next()
	}
}

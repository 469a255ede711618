package delivery

import "github.com/gin-gonic/gin"

// SessionCookieName is the only token-transport mechanism; there is no
// bearer-token header path.
const SessionCookieName = "jwt"

// SetSessionCookie attaches the token as an HTTP-only, non-secure cookie.
func SetSessionCookie(c *gin.Context, token string) {
	c.SetCookie(SessionCookieName, token, 0, "/", "", false, true)
}

// ClearSessionCookie removes the session cookie from the client.
func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookface/utils"
)

const tokenCookie = "token"

// RequireAuth resolves the session cookie to a user id before any handler
// runs. Anything unauthenticated is bounced to the login page.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := SessionUserID(c)
		if !ok {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

// RedirectIfAuth keeps logged-in users off the login and signup pages.
func RedirectIfAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := SessionUserID(c); ok {
			c.Redirect(http.StatusSeeOther, "/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}

func GetUserID(c *gin.Context) string {
	return c.GetString("user_id")
}

// SessionUserID resolves the session cookie without enforcing it.
func SessionUserID(c *gin.Context) (string, bool) {
	token, err := c.Cookie(tokenCookie)
	if err != nil || token == "" {
		return "", false
	}

	claims, err := utils.ParseToken(token)
	if err != nil {
		return "", false
	}
	return claims.UserID, true
}

// SetSessionCookie installs the signed token for ttlSeconds.
func SetSessionCookie(c *gin.Context, token string, ttlSeconds int) {
	c.SetCookie(tokenCookie, token, ttlSeconds, "/", "", false, true)
}

func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(tokenCookie, "", -1, "/", "", false, true)
}

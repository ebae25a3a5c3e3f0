package middleware

import (
	"net/http"
	"strings"

	"github.com/clubhive/clubhive-be/auth"
	"github.com/gin-gonic/gin"
)

const AUTH_KEY = "auth"

// GenAuth resolves the optional bearer credential into an Auth and stores it
// on the context. Requests without a credential proceed anonymously; a
// present-but-malformed header is rejected rather than silently downgraded.
func GenAuth(resolver *auth.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authorizationHeader := c.Request.Header.Get("Authorization")
		if authorizationHeader == "" {
			c.Set(AUTH_KEY, &auth.Anonymous)
			return
		}
		if !strings.HasPrefix(authorizationHeader, "Bearer ") || len(authorizationHeader) < 8 {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "incorrectly formatted authorization header",
			})
			c.Abort()
			return
		}

		resolved, err := resolver.ByToken(c, authorizationHeader[7:])
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "internal error",
			})
			c.Abort()
			return
		}
		c.Set(AUTH_KEY, resolved)
	}
}

// RequireLogin rejects anonymous requests. Must run after GenAuth.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !MustGetAuth(c).Login {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "you need to login first",
			})
			c.Abort()
		}
	}
}

func MustGetAuth(c *gin.Context) *auth.Auth {
	resolved, _ := c.Get(AUTH_KEY)
	return resolved.(*auth.Auth)
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"
)

type TokenParser interface {
	ParseToken(token string) (string, error)
}

// Auth resolves the bearer token once and stores the user id in the request
// context; handlers pass it explicitly into the services that need it.
func Auth(parser TokenParser) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "authorization header required"})
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid authorization format"})
			return
		}

		userID, err := parser.ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid token"})
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

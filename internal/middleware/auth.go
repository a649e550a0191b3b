package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"gamebuddy/pkg/auth"
)

// UsernameKey is the gin context key under which the authenticated
// username is stored for downstream handlers.
const UsernameKey = "username"

// TokenDenylist is the view of the logout denylist the middleware needs.
type TokenDenylist interface {
	Contains(ctx context.Context, token string) (bool, error)
}

// AuthMiddleware rejects requests without a valid bearer token and
// attaches the token's username to the request context. Missing,
// malformed, expired, badly-signed and denylisted tokens all get the
// same 401.
func AuthMiddleware(jwtManager *auth.JWTManager, denylist TokenDenylist) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractTokenFromHeader(c.Request)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			c.Abort()
			return
		}

		revoked, err := denylist.Contains(c.Request.Context(), token)
		if err != nil || revoked {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		claims, err := jwtManager.Verify(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		if claims.Subject == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(UsernameKey, claims.Subject)
		c.Next()
	}
}

// Package middleware provides the gin middleware chain of the SGC API:
// session token verification, role gating, CORS, rate limiting and request
// logging.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/edugestion/sgc-api/web/entity"
	"github.com/edugestion/sgc-api/web/token"
)

// claimsKey is the gin context key the verified session claims live under.
const claimsKey = "SESSION_CLAIMS"

// TokenAuth verifies the bearer session token of each request. A missing or
// malformed Authorization header is rejected with 401 before any
// verification work; a present but invalid or expired token with 403. On
// success the verified claims are attached to the request context.
func TokenAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, entity.ErrorMsg{
				Error: "Token de acceso requerido",
			})
			return
		}

		claims, err := token.Verify(tokenString, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, entity.ErrorMsg{
				Error: "Token inválido o expirado",
			})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. Any other scheme is treated the same as a missing token.
func bearerToken(value string) (string, bool) {
	const bearer = "Bearer "
	if !strings.HasPrefix(value, bearer) {
		return "", false
	}

	tokenString := value[len(bearer):]
	if tokenString == "" {
		return "", false
	}

	return tokenString, true
}

// GetClaims returns the verified session claims attached by TokenAuth, or
// nil when the request is unauthenticated.
func GetClaims(c *gin.Context) *token.Claims {
	if obj, exists := c.Get(claimsKey); exists {
		if claims, ok := obj.(*token.Claims); ok {
			return claims
		}
	}
	return nil
}

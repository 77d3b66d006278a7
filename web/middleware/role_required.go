package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edugestion/sgc-api/database/model"
	"github.com/edugestion/sgc-api/web/entity"
)

// RoleRequired restricts a route to the given roles. It must run after
// TokenAuth: a request without attached claims is not authenticated (401),
// which is kept distinct from an authenticated caller whose role is not in
// the allow-list (403).
func RoleRequired(roles ...model.Role) gin.HandlerFunc {
	allowed := make(map[model.Role]bool)
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, entity.ErrorMsg{
				Error: "Usuario no autenticado",
			})
			return
		}
		if !allowed[claims.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, entity.ErrorMsg{
				Error: "No tienes permisos para realizar esta acción",
			})
			return
		}
		c.Next()
	}
}

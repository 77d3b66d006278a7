package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edugestion/sgc-api/config"
)

// IndexController handles the root and health routes.
type IndexController struct{}

// NewIndexController creates an IndexController and registers its routes on g.
func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
	g.GET("/api/health", a.health)
}

// index describes the API surface.
func (a *IndexController) index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "API del Sistema de Gestión de Calificaciones",
		"endpoints": gin.H{
			"auth":       "/api/auth",
			"calculator": "/api/calculadora",
			"health":     "/api/health",
		},
		"documentation": "Consulte la documentación para más detalles",
	})
}

// health reports the API status.
func (a *IndexController) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Sistema de Gestión de Calificaciones funcionando correctamente",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   config.GetVersion(),
	})
}

// Package controller provides the HTTP request handlers of the SGC API.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/edugestion/sgc-api/database/model"
	"github.com/edugestion/sgc-api/logger"
	"github.com/edugestion/sgc-api/web/entity"
	"github.com/edugestion/sgc-api/web/middleware"
	"github.com/edugestion/sgc-api/web/service"
)

// LoginForm represents the login request body.
type LoginForm struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// ChangePasswordForm represents the change-password request body.
type ChangePasswordForm struct {
	CurrentPassword string `json:"currentPassword" form:"currentPassword"`
	NewPassword     string `json:"newPassword" form:"newPassword"`
}

// AuthController handles authentication, session and account routes.
type AuthController struct {
	authService       *service.AuthService
	accountService    *service.AccountService
	permissionService *service.PermissionService
}

// NewAuthController creates an AuthController and registers its routes on g.
// Everything except login sits behind the token middleware; the user
// listing additionally requires the administrador role.
func NewAuthController(g *gin.RouterGroup, secret []byte) *AuthController {
	a := &AuthController{
		authService:       service.NewAuthService(),
		accountService:    service.NewAccountService(),
		permissionService: service.NewPermissionService(),
	}
	a.initRouter(g, secret)
	return a
}

func (a *AuthController) initRouter(g *gin.RouterGroup, secret []byte) {
	g.POST("/login", a.login)

	protected := g.Group("", middleware.TokenAuth(secret))
	protected.POST("/logout", a.logout)
	protected.GET("/validate-session", a.validateSession)
	protected.GET("/permissions", a.permissions)
	protected.GET("/profile", a.profile)
	protected.POST("/change-password", a.changePassword)
	protected.GET("/users", middleware.RoleRequired(model.RoleAdministrador), a.users)
	protected.GET("/logs", middleware.RoleRequired(model.RoleAdministrador), a.logs)
}

// login authenticates the credentials and issues a session token.
func (a *AuthController) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil || form.Email == "" || form.Password == "" {
		jsonError(c, http.StatusBadRequest, "Email y contraseña son requeridos")
		return
	}

	tokenString, account, err := a.authService.Login(form.Email, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			logger.Warningf("login fallido para \"%s\", IP: %s", form.Email, getRemoteIp(c))
			jsonError(c, http.StatusUnauthorized, "Credenciales inválidas")
			return
		}
		jsonError(c, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	c.JSON(http.StatusOK, entity.LoginResponse{
		Success:   true,
		Message:   "Inicio de sesión exitoso",
		Token:     tokenString,
		Account:   account.View(),
		ExpiresIn: int64(a.authService.TokenTTL().Seconds()),
	})
}

// logout acknowledges a client-side token discard. Sessions are stateless,
// so there is nothing to invalidate server-side.
func (a *AuthController) logout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	logger.Infof("Logout: %s", claims.Email)

	c.JSON(http.StatusOK, entity.Msg{
		Success: true,
		Message: "Sesión cerrada exitosamente",
	})
}

// validateSession echoes the verified session claims.
func (a *AuthController) validateSession(c *gin.Context) {
	c.JSON(http.StatusOK, entity.SessionResponse{
		Success:  true,
		Message:  "Sesión válida",
		Identity: middleware.GetClaims(c),
	})
}

// permissions returns the permission tags of the caller's role.
func (a *AuthController) permissions(c *gin.Context) {
	claims := middleware.GetClaims(c)

	c.JSON(http.StatusOK, entity.PermissionsResponse{
		Success:     true,
		Permissions: a.permissionService.PermissionsFor(claims.Role),
		Role:        claims.Role,
	})
}

// profile returns the current account record behind the session.
func (a *AuthController) profile(c *gin.Context) {
	claims := middleware.GetClaims(c)

	account, err := a.accountService.GetProfile(claims.AccountId)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			jsonError(c, http.StatusNotFound, "Usuario no encontrado")
			return
		}
		jsonError(c, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	c.JSON(http.StatusOK, entity.ProfileResponse{
		Success: true,
		Account: account.View(),
	})
}

// changePassword replaces the password of the session-bound account.
func (a *AuthController) changePassword(c *gin.Context) {
	var form ChangePasswordForm
	if err := c.ShouldBind(&form); err != nil {
		jsonError(c, http.StatusBadRequest, "Contraseña actual y nueva contraseña son requeridas")
		return
	}

	claims := middleware.GetClaims(c)
	err := a.authService.ChangePassword(claims.AccountId, form.CurrentPassword, form.NewPassword)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, entity.Msg{
			Success: true,
			Message: "Contraseña cambiada exitosamente",
		})
	case errors.Is(err, service.ErrPasswordRequired):
		jsonError(c, http.StatusBadRequest, "Contraseña actual y nueva contraseña son requeridas")
	case errors.Is(err, service.ErrPasswordTooShort):
		jsonError(c, http.StatusBadRequest, "La nueva contraseña debe tener al menos 6 caracteres")
	case errors.Is(err, service.ErrAccountNotFound):
		jsonError(c, http.StatusNotFound, "Usuario no encontrado")
	case errors.Is(err, service.ErrWrongCurrentPassword):
		jsonError(c, http.StatusUnauthorized, "Contraseña actual incorrecta")
	default:
		jsonError(c, http.StatusInternalServerError, "Error interno del servidor")
	}
}

// users lists every account. Restricted to administrators by the role gate.
func (a *AuthController) users(c *gin.Context) {
	views, err := a.accountService.ListAccounts()
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	c.JSON(http.StatusOK, entity.UsersResponse{
		Success: true,
		Users:   views,
		Total:   len(views),
	})
}

// logs returns recent server log entries from the in-memory buffer.
// Restricted to administrators by the role gate.
func (a *AuthController) logs(c *gin.Context) {
	count, err := strconv.Atoi(c.DefaultQuery("count", "50"))
	if err != nil || count < 1 {
		count = 50
	}
	level := c.DefaultQuery("level", "INFO")

	logs := logger.GetLogs(count, level)
	c.JSON(http.StatusOK, entity.LogsResponse{
		Success: true,
		Logs:    logs,
		Total:   len(logs),
	})
}

// Package web provides the HTTP server of the SGC API: routing, the
// middleware chain and the listener lifecycle.
package web

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/edugestion/sgc-api/config"
	"github.com/edugestion/sgc-api/logger"
	"github.com/edugestion/sgc-api/util/common"
	"github.com/edugestion/sgc-api/web/controller"
	"github.com/edugestion/sgc-api/web/entity"
	"github.com/edugestion/sgc-api/web/middleware"
)

// Server is the SGC API web server.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	index      *controller.IndexController
	auth       *controller.AuthController
	calculator *controller.CalculatorController

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a new web server instance with a cancellable context.
func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{ctx: ctx, cancel: cancel}
}

// initRouter initializes gin, registers the middleware chain and the
// controllers, and returns the configured engine.
func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Unexpected faults are logged server-side; the client only ever sees
	// the generic message unless the panel runs in debug mode.
	engine.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered:", recovered)
		msg := "Error interno del servidor"
		if config.IsDebug() {
			msg = fmt.Sprint(recovered)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, entity.ErrorMsg{Error: msg})
	}))

	engine.Use(middleware.SecurityHeaders())
	engine.Use(middleware.RequestLogger())
	engine.Use(middleware.Cors(config.GetCORSOrigin()))

	rateLimitConfig := middleware.DefaultRateLimitConfig()
	rateLimitConfig.MaxRequests = config.GetRateLimitMax()
	rateLimitConfig.Window = config.GetRateLimitWindow()
	engine.Use(middleware.RateLimitMiddleware(rateLimitConfig))

	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	s.index = controller.NewIndexController(engine.Group(""))
	s.auth = controller.NewAuthController(engine.Group("/api/auth"), config.GetJWTSecret())
	s.calculator = controller.NewCalculatorController(engine.Group("/api/calculadora"))

	// 404 handler
	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, entity.ErrorMsg{
			Error: "Ruta no encontrada",
			Path:  c.Request.URL.Path,
		})
	})

	return engine, nil
}

// Start initializes and starts the web server.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	listenAddr := net.JoinHostPort(config.GetListen(), strconv.Itoa(config.GetPort()))
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}
	logger.Info("Web server running HTTP on", listener.Addr())

	s.listener = listener
	s.httpServer = &http.Server{Handler: engine}

	go func() {
		defer common.Recover("web server serve")
		_ = s.httpServer.Serve(listener)
	}()

	return nil
}

// Stop gracefully shuts down the web server.
func (s *Server) Stop() error {
	s.cancel()
	var err1, err2 error
	if s.httpServer != nil {
		err1 = s.httpServer.Shutdown(s.ctx)
	}
	if s.listener != nil {
		err2 = s.listener.Close()
	}
	return common.Combine(err1, err2)
}

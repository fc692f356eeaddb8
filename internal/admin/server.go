// Package admin serves the local status surface: health, metrics, stored
// accounts and live session snapshots.
package admin

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/danmuck/coordctl/internal/coordinator"
	"github.com/danmuck/coordctl/internal/credstore"
	"github.com/danmuck/coordctl/internal/observability"
)

// Server exposes read-only status routes plus token-gated account removal.
type Server struct {
	store    credstore.Store
	registry *coordinator.Registry
	auth     TokenValidator
	router   *gin.Engine
	appeared time.Time
}

// Options configures a Server.
type Options struct {
	Store       credstore.Store
	Registry    *coordinator.Registry
	Auth        TokenValidator
	CorsOrigins []string
	Logger      zerolog.Logger
}

func NewServer(opts Options) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(observability.RequestLogger(opts.Logger))
	router.Use(observability.RequestMetricsMiddleware())
	if len(opts.CorsOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = opts.CorsOrigins
		router.Use(cors.New(corsCfg))
	}

	s := &Server{
		store:    opts.Store,
		registry: opts.Registry,
		auth:     opts.Auth,
		router:   router,
		appeared: time.Now(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"uptime":    time.Since(s.appeared).String(),
			"component": "coordctl-admin",
		})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router.GET("/accounts", func(c *gin.Context) {
		ids, err := s.store.List()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"accounts": ids})
	})

	s.router.GET("/sessions", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"sessions": s.registry.Snapshots()})
	})

	s.router.DELETE("/accounts/:account", requireToken(s.auth), func(c *gin.Context) {
		accountID := c.Param("account")
		if err := s.store.Delete(accountID); err != nil {
			if errors.Is(err, credstore.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": accountID})
	})
}

// Handler exposes the router for serving and for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until the listener fails.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

package http_init

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/moviematch/core/internal/config"
)

const (
	apiPrefix       = "/api"
	shutdownTimeout = 5 * time.Second
)

type Controller interface {
	RegisterRoutes(router *gin.RouterGroup)
}

// ControllerPool mounts API controllers under /api and service controllers
// (health, metrics) at the root.
type ControllerPool struct {
	api    []Controller
	root   []Controller
	rg     *gin.RouterGroup
	engine *gin.Engine
	server *http.Server

	logger *slog.Logger
}

type PoolOption func(*ControllerPool)

func WithLogger(logger *slog.Logger) PoolOption {
	return func(p *ControllerPool) {
		p.logger = logger
	}
}

// WithMiddleware applies to every route.
func WithMiddleware(mw ...gin.HandlerFunc) PoolOption {
	return func(p *ControllerPool) {
		p.engine.Use(mw...)
	}
}

// WithAPIMiddleware applies to routes under /api only.
func WithAPIMiddleware(mw ...gin.HandlerFunc) PoolOption {
	return func(p *ControllerPool) {
		p.rg.Use(mw...)
	}
}

func NewControllerPool(cfg config.HTTPServer, opts ...PoolOption) *ControllerPool {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	rg := engine.Group(apiPrefix)

	p := &ControllerPool{
		api:    make([]Controller, 0, 4),
		root:   make([]Controller, 0, 2),
		rg:     rg,
		engine: engine,
		server: &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
			Handler:           engine,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			MaxHeaderBytes:    1 << 20,
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (pool *ControllerPool) Add(c Controller) {
	pool.api = append(pool.api, c)
}

func (pool *ControllerPool) AddRoot(c Controller) {
	pool.root = append(pool.root, c)
}

func (pool *ControllerPool) Register() {
	for _, c := range pool.api {
		c.RegisterRoutes(pool.rg)
	}
	for _, c := range pool.root {
		c.RegisterRoutes(&pool.engine.RouterGroup)
	}
}

func (pool *ControllerPool) Handler() http.Handler {
	return pool.engine
}

// RunAll serves until ctx is done, then drains in-flight requests.
func (pool *ControllerPool) RunAll(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		pool.logger.Info("http server listening", slog.String("addr", pool.server.Addr))
		if err := pool.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("failed to run HTTP server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	pool.logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := pool.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}
	return nil
}

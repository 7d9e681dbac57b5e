package http_health

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
)

const checkTimeout = 2 * time.Second

// Check reports whether a dependency is reachable.
type Check func(ctx context.Context) error

type HealthResponseDTO struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

type Controller struct {
	checks map[string]Check

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func WithCheck(name string, check Check) ControllerOption {
	return func(c *Controller) {
		c.checks[name] = check
	}
}

func New(opts ...ControllerOption) *Controller {
	c := &Controller{
		checks: make(map[string]Check),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/healthz", c.healthz)
}

func (c *Controller) healthz(ctx *gin.Context) {
	checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), checkTimeout)
	defer cancel()

	names := make([]string, 0, len(c.checks))
	for name := range c.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	resp := HealthResponseDTO{Status: "ok", Checks: make(map[string]string, len(names))}
	for _, name := range names {
		if err := c.checks[name](checkCtx); err != nil {
			c.logger.Warn("health check failed", slog.String("check", name), slog.String("error", err.Error()))
			resp.Checks[name] = "unavailable"
			resp.Status = "unavailable"
			continue
		}
		resp.Checks[name] = "ok"
	}

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	ctx.JSON(status, resp)
}

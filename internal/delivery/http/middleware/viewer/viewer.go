// Package http_viewer_middleware selects which participant of the pair a
// request acts as. It is participant selection, not authentication.
package http_viewer_middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	http_common "github.com/moviematch/core/internal/delivery/http/common"
	"github.com/moviematch/core/internal/model"
)

const (
	ViewerHeader = "X-Viewer-ID"

	viewerKey = "viewer_id"
)

// Resolve reads X-Viewer-ID, defaulting to the pair's self participant.
// Values outside the pair are rejected with 400.
func Resolve(pair model.Pair) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewer := pair.Self

		if raw := c.GetHeader(ViewerHeader); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || !pair.Contains(model.ViewerID(id)) {
				c.AbortWithStatusJSON(http.StatusBadRequest, http_common.ErrorResponse{
					Message: "unknown viewer",
				})
				return
			}
			viewer = model.ViewerID(id)
		}

		c.Set(viewerKey, viewer)
		c.Next()
	}
}

// FromContext falls back to fallback when Resolve did not run.
func FromContext(c *gin.Context, fallback model.ViewerID) model.ViewerID {
	if v, ok := c.Get(viewerKey); ok {
		if id, ok := v.(model.ViewerID); ok {
			return id
		}
	}
	return fallback
}

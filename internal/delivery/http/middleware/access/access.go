package http_access_middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/moviematch/core/internal/delivery/http/common"
)

const ReadOnlyMode = "RO"

// ReadOnlyBadGatewayMiddleware answers every write with 502 when the
// instance runs against a read replica. Reads pass through.
func ReadOnlyBadGatewayMiddleware(mode string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if mode != ReadOnlyMode {
			c.Next()
			return
		}

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusBadGateway, http_common.ErrorResponse{
			Message: "write operations are not allowed on a read-only instance",
		})
	}
}

package http_viewer_middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/moviematch/core/internal/model"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type ViewerMiddlewareUnitSuite struct {
	suite.Suite
}

func newEngine() *gin.Engine {
	engine := gin.New()
	engine.Use(Resolve(model.Pair{Self: 1, Partner: 2}))
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, strconv.FormatInt(int64(FromContext(c, 0)), 10))
	})
	return engine
}

func (s *ViewerMiddlewareUnitSuite) TestResolve(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		header       string
		expectStatus int
		expectViewer string
	}{
		{name: "absent header acts as self", header: "", expectStatus: http.StatusOK, expectViewer: "1"},
		{name: "partner is selectable", header: "2", expectStatus: http.StatusOK, expectViewer: "2"},
		{name: "self is selectable", header: "1", expectStatus: http.StatusOK, expectViewer: "1"},
		{name: "outsider is rejected", header: "3", expectStatus: http.StatusBadRequest},
		{name: "garbage is rejected", header: "bob", expectStatus: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set(ViewerHeader, tc.header)
			}

			newEngine().ServeHTTP(w, req)

			assert.Equal(t, tc.expectStatus, w.Code)
			if tc.expectStatus == http.StatusOK {
				assert.Equal(t, tc.expectViewer, w.Body.String())
			} else {
				assert.JSONEq(t, `{"message":"unknown viewer"}`, w.Body.String())
			}
		})
	}
}

func TestUnitSuite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	suite.RunSuite(t, new(ViewerMiddlewareUnitSuite))
}

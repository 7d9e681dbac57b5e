package http_interaction

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	http_viewer_middleware "github.com/moviematch/core/internal/delivery/http/middleware/viewer"
	"github.com/moviematch/core/internal/model"
	usecase_interaction "github.com/moviematch/core/internal/usecase/interaction"
	"github.com/moviematch/core/internal/usecase/interaction/mocks"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type InteractionControllerUnitSuite struct {
	suite.Suite
}

type resources struct {
	repository *mocks.Repository
	engine     *gin.Engine
}

func initResources(t provider.T) *resources {
	repository := mocks.NewRepository(t)
	pair := model.Pair{Self: 1, Partner: 2}
	uc := usecase_interaction.New(repository, pair)

	engine := gin.New()
	api := engine.Group("/api")
	api.Use(http_viewer_middleware.Resolve(pair))
	New(uc, pair.Self).RegisterRoutes(api)

	return &resources{repository: repository, engine: engine}
}

func (s *InteractionControllerUnitSuite) TestCreateInteraction(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		body         string
		viewer       string
		setupMocks   func(r *resources)
		expectStatus int
		expectBody   string
	}{
		{
			name: "like without match",
			body: `{"movie_id": 42, "type": 1}`,
			setupMocks: func(r *resources) {
				r.repository.On("Record", mock.Anything,
					model.Interaction{Viewer: 1, Movie: 42, Reaction: model.LikeReaction},
					model.ViewerID(2)).Return(model.Recorded{Stored: true}, nil).Once()
			},
			expectStatus: http.StatusCreated,
			expectBody:   `{"message":"interaction recorded","match":false,"movie_id":42}`,
		},
		{
			name:   "partner like completes the match",
			body:   `{"movie_id": 42, "type": 1}`,
			viewer: "2",
			setupMocks: func(r *resources) {
				r.repository.On("Record", mock.Anything,
					model.Interaction{Viewer: 2, Movie: 42, Reaction: model.LikeReaction},
					model.ViewerID(1)).Return(model.Recorded{Stored: true, Match: true}, nil).Once()
			},
			expectStatus: http.StatusCreated,
			expectBody:   `{"message":"It's a Match!","match":true,"movie_id":42}`,
		},
		{
			name: "pass is recorded",
			body: `{"movie_id": 5, "type": 0}`,
			setupMocks: func(r *resources) {
				r.repository.On("Record", mock.Anything,
					model.Interaction{Viewer: 1, Movie: 5, Reaction: model.PassReaction},
					model.ViewerID(2)).Return(model.Recorded{Stored: true}, nil).Once()
			},
			expectStatus: http.StatusCreated,
			expectBody:   `{"message":"interaction recorded","match":false,"movie_id":5}`,
		},
		{
			name:         "missing movie_id",
			body:         `{"type": 1}`,
			setupMocks:   func(r *resources) {},
			expectStatus: http.StatusBadRequest,
			expectBody:   `{"message":"movie_id and type are required"}`,
		},
		{
			name:         "zero movie_id",
			body:         `{"movie_id": 0, "type": 1}`,
			setupMocks:   func(r *resources) {},
			expectStatus: http.StatusBadRequest,
			expectBody:   `{"message":"movie_id and type are required"}`,
		},
		{
			name:         "missing type",
			body:         `{"movie_id": 42}`,
			setupMocks:   func(r *resources) {},
			expectStatus: http.StatusBadRequest,
			expectBody:   `{"message":"movie_id and type are required"}`,
		},
		{
			name:         "null fields",
			body:         `{"movie_id": null, "type": null}`,
			setupMocks:   func(r *resources) {},
			expectStatus: http.StatusBadRequest,
			expectBody:   `{"message":"movie_id and type are required"}`,
		},
		{
			name:         "empty object",
			body:         `{}`,
			setupMocks:   func(r *resources) {},
			expectStatus: http.StatusBadRequest,
			expectBody:   `{"message":"movie_id and type are required"}`,
		},
		{
			name:         "wrong field type",
			body:         `{"movie_id": "abc", "type": 1}`,
			setupMocks:   func(r *resources) {},
			expectStatus: http.StatusBadRequest,
			expectBody:   `{"message":"invalid request body"}`,
		},
		{
			name:         "negative movie_id",
			body:         `{"movie_id": -4, "type": 1}`,
			setupMocks:   func(r *resources) {},
			expectStatus: http.StatusBadRequest,
			expectBody:   `{"message":"movie_id must be positive"}`,
		},
		{
			name:         "malformed body",
			body:         `{"movie_id": "abc"`,
			setupMocks:   func(r *resources) {},
			expectStatus: http.StatusBadRequest,
			expectBody:   `{"message":"invalid request body"}`,
		},
		{
			name:         "unknown viewer",
			body:         `{"movie_id": 42, "type": 1}`,
			viewer:       "99",
			setupMocks:   func(r *resources) {},
			expectStatus: http.StatusBadRequest,
			expectBody:   `{"message":"unknown viewer"}`,
		},
		{
			name: "storage failure",
			body: `{"movie_id": 42, "type": 1}`,
			setupMocks: func(r *resources) {
				r.repository.On("Record", mock.Anything, mock.Anything, mock.Anything).
					Return(model.Recorded{}, errors.New("deadlock detected")).Once()
			},
			expectStatus: http.StatusInternalServerError,
			expectBody:   `{"message":"internal error"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			req := httptest.NewRequest(http.MethodPost, "/api/interactions", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			if tc.viewer != "" {
				req.Header.Set(http_viewer_middleware.ViewerHeader, tc.viewer)
			}
			w := httptest.NewRecorder()

			r.engine.ServeHTTP(w, req)

			assert.Equal(t, tc.expectStatus, w.Code)
			assert.JSONEq(t, tc.expectBody, w.Body.String())
		})
	}
}

func TestUnitSuite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	suite.RunSuite(t, new(InteractionControllerUnitSuite))
}

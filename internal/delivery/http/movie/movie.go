package http_movie

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/moviematch/core/internal/delivery/http/common"
	http_trace_middleware "github.com/moviematch/core/internal/delivery/http/middleware/trace"
	http_viewer_middleware "github.com/moviematch/core/internal/delivery/http/middleware/viewer"
	"github.com/moviematch/core/internal/model"
	usecase_feed "github.com/moviematch/core/internal/usecase/feed"
)

// GetMoviesRequestDTO narrows the feed; both filters are optional.
type GetMoviesRequestDTO struct {
	Genre    string `form:"genre" binding:"omitempty,max=64"`
	Platform string `form:"platform" binding:"omitempty,max=64"`
}

// CandidateResponseDTO is one feed entry as the client renders it.
type CandidateResponseDTO struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	VoteAverage float64 `json:"vote_average"`
	GenresList  string  `json:"genres_list"`
	Platform    string  `json:"platform,omitempty"`
}

func ConvertFromCandidate(c *model.Candidate) CandidateResponseDTO {
	return CandidateResponseDTO{
		ID:          int64(c.ID),
		Title:       c.Title,
		Overview:    c.Overview,
		PosterPath:  c.PosterPath,
		VoteAverage: c.VoteAverage,
		GenresList:  c.GenresList,
		Platform:    c.Platform,
	}
}

func ConvertFromCandidateList(cs []*model.Candidate) []CandidateResponseDTO {
	out := make([]CandidateResponseDTO, len(cs))
	for i, c := range cs {
		out[i] = ConvertFromCandidate(c)
	}
	return out
}

type Controller struct {
	uc   *usecase_feed.Usecase
	self model.ViewerID

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(
	uc *usecase_feed.Usecase,
	self model.ViewerID,
	opts ...ControllerOption,
) *Controller {
	c := &Controller{
		uc:     uc,
		self:   self,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/movies", c.getMovies)
}

func (c *Controller) getMovies(ctx *gin.Context) {
	var req GetMoviesRequestDTO
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid filter",
		})
		return
	}

	viewer := http_viewer_middleware.FromContext(ctx, c.self)

	candidates, err := c.uc.Feed(ctx.Request.Context(), viewer, model.FeedQuery{
		Genre:    req.Genre,
		Platform: req.Platform,
	})
	if err != nil {
		if errors.Is(err, usecase_feed.ErrNoCandidates) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "no movies left to show",
			})
			return
		}
		c.logger.Error("failed to load feed",
			slog.String("request_id", http_trace_middleware.GetRequestID(ctx)),
			slog.Int64("viewer_id", int64(viewer)),
			slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromCandidateList(candidates))
}

package http_interaction

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	http_common "github.com/moviematch/core/internal/delivery/http/common"
	http_trace_middleware "github.com/moviematch/core/internal/delivery/http/middleware/trace"
	http_viewer_middleware "github.com/moviematch/core/internal/delivery/http/middleware/viewer"
	"github.com/moviematch/core/internal/model"
	usecase_interaction "github.com/moviematch/core/internal/usecase/interaction"
)

const (
	MatchMessage    = "It's a Match!"
	RecordedMessage = "interaction recorded"
)

// CreateInteractionRequestDTO uses pointers so an absent field can be told
// apart from a zero value. Negative ids pass binding and are rejected by the
// usecase.
type CreateInteractionRequestDTO struct {
	MovieID *int64 `json:"movie_id" binding:"required,ne=0"`
	Type    *int   `json:"type" binding:"required"`
}

type InteractionResponseDTO struct {
	Message string `json:"message"`
	Match   bool   `json:"match"`
	MovieID int64  `json:"movie_id"`
}

func ConvertFromOutcome(o model.Outcome) InteractionResponseDTO {
	msg := RecordedMessage
	if o.Match {
		msg = MatchMessage
	}
	return InteractionResponseDTO{
		Message: msg,
		Match:   o.Match,
		MovieID: int64(o.Movie),
	}
}

type Controller struct {
	uc   *usecase_interaction.Usecase
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
	uc *usecase_interaction.Usecase,
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
	router.POST("/interactions", c.createInteraction)
}

func (c *Controller) createInteraction(ctx *gin.Context) {
	var req CreateInteractionRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: "movie_id and type are required",
			})
			return
		}
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request body",
		})
		return
	}

	viewer := http_viewer_middleware.FromContext(ctx, c.self)

	outcome, err := c.uc.React(ctx.Request.Context(), viewer, model.MovieID(*req.MovieID), model.Reaction(*req.Type))
	if err != nil {
		switch {
		case errors.Is(err, usecase_interaction.ErrInvalidInput):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: "movie_id must be positive",
			})
		case errors.Is(err, usecase_interaction.ErrUnknownViewer):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: "unknown viewer",
			})
		default:
			c.logger.Error("failed to record interaction",
				slog.String("request_id", http_trace_middleware.GetRequestID(ctx)),
				slog.Int64("viewer_id", int64(viewer)),
				slog.Int64("movie_id", *req.MovieID),
				slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
		}
		return
	}

	ctx.JSON(http.StatusCreated, ConvertFromOutcome(outcome))
}

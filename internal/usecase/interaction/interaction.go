package usecase_interaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/moviematch/core/internal/metrics"
	"github.com/moviematch/core/internal/model"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnknownViewer  = errors.New("unknown viewer")
	ErrFailedToRecord = errors.New("failed to record interaction")
)

//go:generate mockery --name=Repository --output=mocks --outpkg=mocks --filename=repository.go
type Repository interface {
	// Record stores the interaction if absent and, for likes, materializes
	// the match with counterpart when both sides like the movie. It reports
	// whether a row was written and whether a match exists after the call.
	Record(ctx context.Context, in model.Interaction, counterpart model.ViewerID) (model.Recorded, error)
}

type Usecase struct {
	repository Repository
	pair       model.Pair
	logger     *slog.Logger
}

type Option func(*Usecase)

func WithLogger(logger *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(
	r Repository,
	pair model.Pair,
	opts ...Option,
) *Usecase {
	u := &Usecase{
		repository: r,
		pair:       pair,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *Usecase) React(ctx context.Context, viewer model.ViewerID, movie model.MovieID, reaction model.Reaction) (model.Outcome, error) {
	if movie <= 0 {
		return model.Outcome{}, fmt.Errorf("%w: movie id must be positive", ErrInvalidInput)
	}

	counterpart, ok := u.pair.Counterpart(viewer)
	if !ok {
		return model.Outcome{}, fmt.Errorf("%w: %d", ErrUnknownViewer, viewer)
	}

	in := model.Interaction{
		Viewer:   viewer,
		Movie:    movie,
		Reaction: reaction,
	}

	rec, err := u.repository.Record(ctx, in, counterpart)
	if err != nil {
		return model.Outcome{}, fmt.Errorf("%w: %w", ErrFailedToRecord, err)
	}

	if rec.Stored {
		metrics.InteractionsTotal.WithLabelValues(reaction.String()).Inc()
	}
	if rec.Match && rec.Stored {
		metrics.MatchesTotal.Inc()
		u.logger.Info("match",
			slog.Int64("movie_id", int64(movie)),
			slog.Int64("viewer_id", int64(viewer)),
			slog.Int64("counterpart_id", int64(counterpart)))
	}

	return model.Outcome{Movie: movie, Match: rec.Match}, nil
}

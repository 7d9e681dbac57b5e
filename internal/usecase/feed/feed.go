package usecase_feed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/moviematch/core/internal/metrics"
	"github.com/moviematch/core/internal/model"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultLimit        = 20
	DefaultMinVoteCount = 10
)

var (
	ErrNoCandidates           = errors.New("no candidates")
	ErrFailedToLoadCandidates = errors.New("failed to load candidates")
)

//go:generate mockery --name=Repository --output=mocks --outpkg=mocks --filename=repository.go
type Repository interface {
	// Candidates returns up to f.Limit unseen movies passing f, in random order.
	Candidates(ctx context.Context, viewer model.ViewerID, f model.CandidateFilter) ([]*model.Candidate, error)
	// CandidatesAmong applies the same predicates restricted to ids.
	CandidatesAmong(ctx context.Context, viewer model.ViewerID, ids []model.MovieID, f model.CandidateFilter) ([]*model.Candidate, error)
	// EligibleIDs lists every movie passing the quality predicates of f,
	// regardless of who has seen it.
	EligibleIDs(ctx context.Context, f model.CandidateFilter) ([]model.MovieID, error)
}

//go:generate mockery --name=Pool --output=mocks --outpkg=mocks --filename=pool.go
type Pool interface {
	Sample(ctx context.Context, n int) ([]model.MovieID, error)
	Fill(ctx context.Context, ids []model.MovieID) error
}

type Usecase struct {
	repository Repository
	pool       Pool
	oversample int
	filter     model.CandidateFilter

	group  singleflight.Group
	logger *slog.Logger
}

type Option func(*Usecase)

func WithLogger(logger *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = logger
	}
}

// WithPool samples candidates from a pre-built pool of eligible movie ids
// instead of shuffling the whole catalog on every request.
func WithPool(p Pool, oversample int) Option {
	return func(u *Usecase) {
		u.pool = p
		u.oversample = max(oversample, 1)
	}
}

func New(
	r Repository,
	filter model.CandidateFilter,
	opts ...Option,
) *Usecase {
	if filter.Limit <= 0 {
		filter.Limit = DefaultLimit
	}
	if filter.MinVoteCount < 0 {
		filter.MinVoteCount = DefaultMinVoteCount
	}

	u := &Usecase{
		repository: r,
		filter:     filter,
		oversample: 1,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Feed returns up to one page of unseen candidates for viewer, narrowed by q.
// A narrowed request skips the pool, which only holds unnarrowed ids.
func (u *Usecase) Feed(ctx context.Context, viewer model.ViewerID, q model.FeedQuery) ([]*model.Candidate, error) {
	filter := u.filter
	filter.Genre = strings.TrimSpace(q.Genre)
	filter.Platform = strings.TrimSpace(q.Platform)

	if u.pool != nil && !filter.Narrowed() {
		if candidates, ok := u.fromPool(ctx, viewer); ok {
			metrics.CandidatePoolTotal.WithLabelValues("hit").Inc()
			return candidates, nil
		}
		metrics.CandidatePoolTotal.WithLabelValues("miss").Inc()
	}

	candidates, err := u.repository.Candidates(ctx, viewer, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadCandidates, err)
	}

	if len(candidates) == 0 {
		metrics.EmptyFeedsTotal.Inc()
		return nil, ErrNoCandidates
	}

	return candidates, nil
}

// fromPool reports false whenever it cannot fill a whole page; the caller
// then falls back to the SQL shuffle, which stays authoritative.
func (u *Usecase) fromPool(ctx context.Context, viewer model.ViewerID) ([]*model.Candidate, bool) {
	n := u.filter.Limit * u.oversample

	ids, err := u.pool.Sample(ctx, n)
	if err != nil {
		u.logger.Warn("candidate pool sample failed", slog.String("error", err.Error()))
		return nil, false
	}

	if len(ids) == 0 {
		if err := u.refill(ctx); err != nil {
			u.logger.Warn("candidate pool refill failed", slog.String("error", err.Error()))
			return nil, false
		}
		if ids, err = u.pool.Sample(ctx, n); err != nil || len(ids) == 0 {
			return nil, false
		}
	}

	candidates, err := u.repository.CandidatesAmong(ctx, viewer, ids, u.filter)
	if err != nil {
		u.logger.Warn("candidate lookup by pool ids failed",
			slog.Int64("viewer_id", int64(viewer)),
			slog.String("error", err.Error()))
		return nil, false
	}

	if len(candidates) < u.filter.Limit {
		return nil, false
	}

	rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	return candidates[:u.filter.Limit], true
}

func (u *Usecase) refill(ctx context.Context) error {
	_, err, _ := u.group.Do("pool", func() (any, error) {
		ids, err := u.repository.EligibleIDs(ctx, u.filter)
		if err != nil {
			return nil, err
		}
		u.logger.Info("candidate pool rebuilt", slog.Int("size", len(ids)))
		return nil, u.pool.Fill(ctx, ids)
	})
	return err
}

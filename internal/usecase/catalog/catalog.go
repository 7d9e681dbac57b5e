package usecase_catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/moviematch/core/internal/metrics"
	"github.com/moviematch/core/internal/model"
)

const DefaultPages = 5

var (
	ErrFailedToImportGenres = errors.New("failed to import genres")
	ErrNothingImported      = errors.New("nothing imported")
)

//go:generate mockery --name=Source --output=mocks --outpkg=mocks --filename=source.go
type Source interface {
	Genres(ctx context.Context) ([]model.Genre, error)
	Popular(ctx context.Context, page int) ([]model.Movie, error)
	WatchProvider(ctx context.Context, tmdbID int64) (string, error)
}

//go:generate mockery --name=Repository --output=mocks --outpkg=mocks --filename=repository.go
type Repository interface {
	StoreGenres(ctx context.Context, genres []model.Genre) error
	StoreMovie(ctx context.Context, m model.Movie) (model.MovieID, bool, error)
	MissingPlatform(ctx context.Context, after model.MovieID, limit int) ([]model.MovieRef, error)
	SetPlatform(ctx context.Context, id model.MovieID, platform string) error
}

type Report struct {
	Genres      int
	Pages       int
	FailedPages int
	Inserted    int
	Updated     int
	Failed      int
}

type Usecase struct {
	source     Source
	repository Repository
	logger     *slog.Logger
}

type Option func(*Usecase)

func WithLogger(logger *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(
	s Source,
	r Repository,
	opts ...Option,
) *Usecase {
	u := &Usecase{
		source:     s,
		repository: r,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Import loads the genre list, then popular pages 1..pages. Genres must
// succeed since movie links refer to them; a failing page or movie is
// logged and skipped.
func (u *Usecase) Import(ctx context.Context, pages int) (Report, error) {
	if pages <= 0 {
		pages = DefaultPages
	}

	var report Report

	genres, err := u.source.Genres(ctx)
	if err != nil {
		return report, fmt.Errorf("%w: %w", ErrFailedToImportGenres, err)
	}
	if err := u.repository.StoreGenres(ctx, genres); err != nil {
		return report, fmt.Errorf("%w: %w", ErrFailedToImportGenres, err)
	}
	report.Genres = len(genres)
	u.logger.Info("genres imported", slog.Int("count", len(genres)))

	for page := 1; page <= pages; page++ {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		movies, err := u.source.Popular(ctx, page)
		if err != nil {
			report.FailedPages++
			u.logger.Error("page import failed",
				slog.Int("page", page),
				slog.String("error", err.Error()))
			continue
		}

		for _, m := range movies {
			_, inserted, err := u.repository.StoreMovie(ctx, m)
			if err != nil {
				report.Failed++
				u.logger.Warn("movie import failed",
					slog.Int64("tmdb_id", m.TMDBID),
					slog.String("error", err.Error()))
				continue
			}
			if inserted {
				report.Inserted++
			} else {
				report.Updated++
			}
			metrics.ImportedMoviesTotal.Inc()
		}

		report.Pages++
		u.logger.Info("page imported", slog.Int("page", page), slog.Int("movies", len(movies)))
	}

	if report.Pages == 0 {
		return report, ErrNothingImported
	}
	return report, nil
}

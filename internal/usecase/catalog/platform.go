package usecase_catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/moviematch/core/internal/metrics"
	"github.com/moviematch/core/internal/model"
)

const DefaultPlatformBatch = 100

var ErrFailedToListMovies = errors.New("failed to list movies without platform")

type PlatformReport struct {
	Checked   int
	Streaming int
	Fallback  int
	Failed    int
}

// BackfillPlatforms resolves the streaming platform of every movie that has
// none. Movies without a subscription offer get model.DefaultPlatform. A
// failed lookup leaves the movie unset for the next run.
func (u *Usecase) BackfillPlatforms(ctx context.Context, batch int) (PlatformReport, error) {
	if batch <= 0 {
		batch = DefaultPlatformBatch
	}

	var (
		report PlatformReport
		after  model.MovieID
	)
	for {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		refs, err := u.repository.MissingPlatform(ctx, after, batch)
		if err != nil {
			return report, fmt.Errorf("%w: %w", ErrFailedToListMovies, err)
		}
		if len(refs) == 0 {
			break
		}

		for _, ref := range refs {
			after = ref.ID
			report.Checked++
			u.resolvePlatform(ctx, ref, &report)
		}
	}

	u.logger.Info("platform backfill finished",
		slog.Int("checked", report.Checked),
		slog.Int("streaming", report.Streaming),
		slog.Int("fallback", report.Fallback),
		slog.Int("failed", report.Failed))
	return report, nil
}

func (u *Usecase) resolvePlatform(ctx context.Context, ref model.MovieRef, report *PlatformReport) {
	platform, err := u.source.WatchProvider(ctx, ref.TMDBID)
	if err != nil {
		report.Failed++
		u.logger.Warn("watch provider lookup failed",
			slog.Int64("tmdb_id", ref.TMDBID),
			slog.String("error", err.Error()))
		return
	}

	result := "streaming"
	if platform == "" {
		platform = model.DefaultPlatform
		result = "fallback"
	}

	if err := u.repository.SetPlatform(ctx, ref.ID, platform); err != nil {
		report.Failed++
		u.logger.Warn("platform update failed",
			slog.Int64("movie_id", int64(ref.ID)),
			slog.String("error", err.Error()))
		return
	}

	if result == "fallback" {
		report.Fallback++
	} else {
		report.Streaming++
	}
	metrics.PlatformsResolvedTotal.WithLabelValues(result).Inc()
}

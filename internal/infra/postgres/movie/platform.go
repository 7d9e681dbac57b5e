package infra_postgres_movie

import (
	"context"
	"errors"
	"fmt"

	"github.com/moviematch/core/internal/model"
)

var ErrMovieNotFound = errors.New("movie not found")

const (
	missingPlatformQuery = `
		SELECT id, tmdb_id FROM movies
		WHERE platform IS NULL AND id > $1
		ORDER BY id
		LIMIT $2`

	setPlatformQuery = `
		UPDATE movies SET platform = $2, updated_at = now()
		WHERE id = $1`
)

// MissingPlatform pages through movies with no platform yet, in id order,
// starting after the given id.
func (r *Repository) MissingPlatform(ctx context.Context, after model.MovieID, limit int) ([]model.MovieRef, error) {
	var rows []MovieRefDB
	if err := r.db.SelectContext(ctx, &rows, missingPlatformQuery, int64(after), limit); err != nil {
		return nil, fmt.Errorf("failed to query movies without platform: %w", err)
	}

	out := make([]model.MovieRef, len(rows))
	for i, row := range rows {
		out[i] = row.ToDomain()
	}
	return out, nil
}

func (r *Repository) SetPlatform(ctx context.Context, id model.MovieID, platform string) error {
	res, err := r.db.ExecContext(ctx, setPlatformQuery, int64(id), platform)
	if err != nil {
		return fmt.Errorf("failed to set platform of movie %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("failed to set platform of movie %d: %w", id, ErrMovieNotFound)
	}
	return nil
}

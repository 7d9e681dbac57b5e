package infra_postgres_movie

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"github.com/moviematch/core/internal/model"
)

const (
	upsertGenreQuery = `
		INSERT INTO genres (id, name)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`

	// Ratings drift on the source side, so re-imports refresh them in place.
	upsertMovieQuery = `
		INSERT INTO movies (tmdb_id, title, overview, poster_path, vote_average, vote_count, release_date)
		VALUES (:tmdb_id, :title, :overview, :poster_path, :vote_average, :vote_count, :release_date)
		ON CONFLICT (tmdb_id) DO UPDATE SET
			title = EXCLUDED.title,
			overview = EXCLUDED.overview,
			poster_path = EXCLUDED.poster_path,
			vote_average = EXCLUDED.vote_average,
			vote_count = EXCLUDED.vote_count,
			release_date = EXCLUDED.release_date,
			updated_at = now()
		RETURNING id, (xmax = 0) AS inserted`

	// Unknown genre ids are skipped rather than failing the movie.
	linkGenresQuery = `
		INSERT INTO movie_genres (movie_id, genre_id)
		SELECT $1, g.id FROM genres g WHERE g.id = ANY($2)
		ON CONFLICT (movie_id, genre_id) DO NOTHING`
)

func (r *Repository) StoreGenres(ctx context.Context, genres []model.Genre) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, g := range genres {
		if _, err := tx.ExecContext(ctx, upsertGenreQuery, int64(g.ID), g.Name); err != nil {
			return fmt.Errorf("failed to store genre %d: %w", g.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit genres: %w", err)
	}
	return nil
}

// StoreMovie upserts m by its tmdb id together with its genre links and
// reports the local id and whether the row is new.
func (r *Repository) StoreMovie(ctx context.Context, m model.Movie) (model.MovieID, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query, args, err := tx.BindNamed(upsertMovieQuery, FromDomain(m))
	if err != nil {
		return 0, false, fmt.Errorf("failed to bind movie: %w", err)
	}

	var res upsertResultDB
	if err := tx.GetContext(ctx, &res, query, args...); err != nil {
		return 0, false, fmt.Errorf("failed to store movie %d: %w", m.TMDBID, err)
	}

	if len(m.GenreIDs) > 0 {
		if _, err := tx.ExecContext(ctx, linkGenresQuery, res.ID, pq.Array(toInt64s(m.GenreIDs))); err != nil {
			return 0, false, fmt.Errorf("failed to link genres of movie %d: %w", m.TMDBID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, false, fmt.Errorf("failed to commit movie %d: %w", m.TMDBID, err)
	}

	return model.MovieID(res.ID), res.Inserted, nil
}

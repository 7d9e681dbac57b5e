package infra_postgres_interaction

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/moviematch/core/internal/model"
)

const (
	// Serializes recorders of the same movie until commit, so two concurrent
	// likes cannot both miss each other under READ COMMITTED.
	lockMovieQuery = `SELECT pg_advisory_xact_lock($1)`

	insertInteractionQuery = `
		INSERT INTO interactions (user_id, movie_id, interaction_type)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, movie_id) DO NOTHING`

	mutualLikesQuery = `
		SELECT COUNT(DISTINCT user_id)
		FROM interactions
		WHERE movie_id = $1
		AND interaction_type = $2
		AND user_id IN ($3, $4)`

	insertMatchQuery = `
		INSERT INTO matches (movie_id, user_id_1, user_id_2)
		VALUES ($1, $2, $3)
		ON CONFLICT (movie_id, user_id_1, user_id_2) DO NOTHING`
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

// Record keeps the first reaction of a viewer to a movie; replays are no-ops.
// A like materializes the match only when the stored reactions of both
// viewers are likes, so a replayed like after an earlier pass never matches.
func (d *Driver) Record(ctx context.Context, in model.Interaction, counterpart model.ViewerID) (model.Recorded, error) {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Recorded{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, lockMovieQuery, int64(in.Movie)); err != nil {
		return model.Recorded{}, fmt.Errorf("failed to lock movie %d: %w", in.Movie, err)
	}

	res, err := tx.ExecContext(ctx, insertInteractionQuery,
		int64(in.Viewer), int64(in.Movie), int(in.Reaction))
	if err != nil {
		return model.Recorded{}, fmt.Errorf("failed to insert interaction: %w", err)
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return model.Recorded{}, fmt.Errorf("failed to read insert result: %w", err)
	}

	rec := model.Recorded{Stored: inserted > 0}
	if in.Reaction.IsLike() {
		var likes int
		err := tx.GetContext(ctx, &likes, mutualLikesQuery,
			int64(in.Movie), int(model.LikeReaction), int64(in.Viewer), int64(counterpart))
		if err != nil {
			return model.Recorded{}, fmt.Errorf("failed to count likes: %w", err)
		}

		if likes == 2 {
			m := model.NewMatch(in.Movie, in.Viewer, counterpart)
			_, err := tx.ExecContext(ctx, insertMatchQuery,
				int64(m.Movie), int64(m.ViewerA), int64(m.ViewerB))
			if err != nil {
				return model.Recorded{}, fmt.Errorf("failed to insert match: %w", err)
			}
			rec.Match = true
		}
	}

	if err := tx.Commit(); err != nil {
		return model.Recorded{}, fmt.Errorf("failed to commit interaction: %w", err)
	}

	return rec, nil
}

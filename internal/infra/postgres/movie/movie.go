package infra_postgres_movie

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/moviematch/core/internal/model"
)

const (
	candidateColumns = `
		SELECT m.id, m.title, m.overview, m.poster_path, m.vote_average,
			COALESCE(string_agg(DISTINCT g.name, ', ' ORDER BY g.name), '') AS genres_list,
			COALESCE(m.platform, '') AS platform
		FROM movies m
		LEFT JOIN movie_genres mg ON mg.movie_id = m.id
		LEFT JOIN genres g ON g.id = mg.genre_id`

	qualityPredicate = `
		m.vote_average > 0
		AND m.vote_count > $2
		AND m.poster_path IS NOT NULL`

	unseenPredicate = `
		AND NOT EXISTS (
			SELECT 1 FROM interactions i
			WHERE i.movie_id = m.id AND i.user_id = $1
		)`

	// Genre and platform compare case-insensitively; '' disables either one.
	narrowPredicate = `
		AND ($4 = '' OR EXISTS (
			SELECT 1 FROM movie_genres fmg
			JOIN genres fg ON fg.id = fmg.genre_id
			WHERE fmg.movie_id = m.id AND lower(fg.name) = lower($4)
		))
		AND ($5 = '' OR lower(m.platform) = lower($5))`

	candidatesQuery = candidateColumns + `
		WHERE` + qualityPredicate + unseenPredicate + narrowPredicate + `
		GROUP BY m.id
		ORDER BY random()
		LIMIT $3`

	candidatesAmongQuery = candidateColumns + `
		WHERE m.id = ANY($3) AND` + qualityPredicate + unseenPredicate + narrowPredicate + `
		GROUP BY m.id`

	eligibleIDsQuery = `
		SELECT m.id FROM movies m
		WHERE m.vote_count > $1
		AND m.vote_average > 0
		AND m.poster_path IS NOT NULL`
)

type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Candidates(ctx context.Context, viewer model.ViewerID, f model.CandidateFilter) ([]*model.Candidate, error) {
	var rows []CandidateDB
	err := r.db.SelectContext(ctx, &rows, candidatesQuery,
		int64(viewer), f.MinVoteCount, f.Limit, f.Genre, f.Platform)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}

	return toCandidates(rows), nil
}

func (r *Repository) CandidatesAmong(ctx context.Context, viewer model.ViewerID, ids []model.MovieID, f model.CandidateFilter) ([]*model.Candidate, error) {
	if len(ids) == 0 {
		return []*model.Candidate{}, nil
	}

	var rows []CandidateDB
	err := r.db.SelectContext(ctx, &rows, candidatesAmongQuery,
		int64(viewer), f.MinVoteCount, pq.Array(toInt64s(ids)), f.Genre, f.Platform)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates by ids: %w", err)
	}

	return toCandidates(rows), nil
}

func (r *Repository) EligibleIDs(ctx context.Context, f model.CandidateFilter) ([]model.MovieID, error) {
	var ids []int64
	if err := r.db.SelectContext(ctx, &ids, eligibleIDsQuery, f.MinVoteCount); err != nil {
		return nil, fmt.Errorf("failed to query eligible movies: %w", err)
	}

	out := make([]model.MovieID, len(ids))
	for i, id := range ids {
		out[i] = model.MovieID(id)
	}
	return out, nil
}

func toCandidates(rows []CandidateDB) []*model.Candidate {
	out := make([]*model.Candidate, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out
}

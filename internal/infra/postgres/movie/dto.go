package infra_postgres_movie

import (
	"database/sql"

	"github.com/moviematch/core/internal/model"
)

type CandidateDB struct {
	ID          int64   `db:"id"`
	Title       string  `db:"title"`
	Overview    string  `db:"overview"`
	PosterPath  string  `db:"poster_path"`
	VoteAverage float64 `db:"vote_average"`
	GenresList  string  `db:"genres_list"`
	Platform    string  `db:"platform"`
}

func (c *CandidateDB) ToDomain() *model.Candidate {
	return &model.Candidate{
		ID:          model.MovieID(c.ID),
		Title:       c.Title,
		Overview:    c.Overview,
		PosterPath:  c.PosterPath,
		VoteAverage: c.VoteAverage,
		GenresList:  c.GenresList,
		Platform:    c.Platform,
	}
}

type MovieDB struct {
	TMDBID      int64          `db:"tmdb_id"`
	Title       string         `db:"title"`
	Overview    string         `db:"overview"`
	PosterPath  sql.NullString `db:"poster_path"`
	VoteAverage float64        `db:"vote_average"`
	VoteCount   int            `db:"vote_count"`
	ReleaseDate sql.NullTime   `db:"release_date"`
}

func FromDomain(m model.Movie) MovieDB {
	dto := MovieDB{
		TMDBID:      m.TMDBID,
		Title:       m.Title,
		Overview:    m.Overview,
		VoteAverage: m.VoteAverage,
		VoteCount:   m.VoteCount,
	}
	if m.PosterPath != nil && *m.PosterPath != "" {
		dto.PosterPath = sql.NullString{String: *m.PosterPath, Valid: true}
	}
	if m.ReleaseDate != nil && !m.ReleaseDate.IsZero() {
		dto.ReleaseDate = sql.NullTime{Time: *m.ReleaseDate, Valid: true}
	}
	return dto
}

type MovieRefDB struct {
	ID     int64 `db:"id"`
	TMDBID int64 `db:"tmdb_id"`
}

func (m MovieRefDB) ToDomain() model.MovieRef {
	return model.MovieRef{ID: model.MovieID(m.ID), TMDBID: m.TMDBID}
}

type upsertResultDB struct {
	ID       int64 `db:"id"`
	Inserted bool  `db:"inserted"`
}

func toInt64s[T ~int64](ids []T) []int64 {
	out := make([]int64, len(ids))
	for i, id := range ids {
		out[i] = int64(id)
	}
	return out
}

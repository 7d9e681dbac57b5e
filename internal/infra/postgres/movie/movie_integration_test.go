//go:build integration

package infra_postgres_movie

import (
	"context"
	"testing"

	"github.com/moviematch/core/internal/model"
	"github.com/moviematch/core/internal/testinfra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestCandidatesIntegration(t *testing.T) {
	db, _ := testinfra.StartPostgres(t)
	r := New(db)
	ctx := context.Background()
	filter := model.CandidateFilter{Limit: 20, MinVoteCount: 10}

	require.NoError(t, r.StoreGenres(ctx, []model.Genre{{ID: 18, Name: "Drama"}, {ID: 35, Name: "Comedy"}}))

	store := func(m model.Movie) model.MovieID {
		id, inserted, err := r.StoreMovie(ctx, m)
		require.NoError(t, err)
		require.True(t, inserted)
		return id
	}

	good := store(model.Movie{TMDBID: 1, Title: "Good", PosterPath: ptr("/g.jpg"), VoteAverage: 7, VoteCount: 500,
		GenreIDs: []model.GenreID{35, 18, 99}})
	seen := store(model.Movie{TMDBID: 2, Title: "Seen", PosterPath: ptr("/s.jpg"), VoteAverage: 7, VoteCount: 500})
	store(model.Movie{TMDBID: 3, Title: "NoPoster", VoteAverage: 7, VoteCount: 500})
	store(model.Movie{TMDBID: 4, Title: "Unrated", PosterPath: ptr("/u.jpg"), VoteAverage: 0, VoteCount: 500})
	store(model.Movie{TMDBID: 5, Title: "FewVotes", PosterPath: ptr("/f.jpg"), VoteAverage: 9, VoteCount: 10})

	_, err := db.Exec(`INSERT INTO interactions (user_id, movie_id, interaction_type) VALUES (1, $1, 0)`, int64(seen))
	require.NoError(t, err)

	t.Run("feed excludes seen and low quality movies", func(t *testing.T) {
		candidates, err := r.Candidates(ctx, 1, filter)
		require.NoError(t, err)
		require.Len(t, candidates, 1)

		assert.Equal(t, good, candidates[0].ID)
		assert.Equal(t, "Comedy, Drama", candidates[0].GenresList)
	})

	t.Run("exclusion is per viewer", func(t *testing.T) {
		candidates, err := r.Candidates(ctx, 2, filter)
		require.NoError(t, err)
		assert.Len(t, candidates, 2)
	})

	t.Run("limit bounds the page", func(t *testing.T) {
		candidates, err := r.Candidates(ctx, 2, model.CandidateFilter{Limit: 1, MinVoteCount: 10})
		require.NoError(t, err)
		assert.Len(t, candidates, 1)
	})

	t.Run("pool lookup applies the same predicates", func(t *testing.T) {
		ids, err := r.EligibleIDs(ctx, filter)
		require.NoError(t, err)
		assert.ElementsMatch(t, []model.MovieID{good, seen}, ids)

		candidates, err := r.CandidatesAmong(ctx, 1, ids, filter)
		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.Equal(t, good, candidates[0].ID)
	})

	t.Run("genre and platform narrow the feed", func(t *testing.T) {
		require.NoError(t, r.SetPlatform(ctx, seen, "Netflix"))

		byGenre := filter
		byGenre.Genre = "drama"
		candidates, err := r.Candidates(ctx, 2, byGenre)
		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.Equal(t, good, candidates[0].ID)

		byPlatform := filter
		byPlatform.Platform = "NETFLIX"
		candidates, err = r.Candidates(ctx, 2, byPlatform)
		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.Equal(t, seen, candidates[0].ID)
		assert.Equal(t, "Netflix", candidates[0].Platform)

		both := byGenre
		both.Platform = "Netflix"
		candidates, err = r.Candidates(ctx, 2, both)
		require.NoError(t, err)
		assert.Empty(t, candidates)
	})

	t.Run("platform backfill pages past resolved movies", func(t *testing.T) {
		refs, err := r.MissingPlatform(ctx, 0, 100)
		require.NoError(t, err)

		ids := make([]model.MovieID, 0, len(refs))
		for _, ref := range refs {
			ids = append(ids, ref.ID)
		}
		assert.Contains(t, ids, good)
		assert.NotContains(t, ids, seen)

		after, err := r.MissingPlatform(ctx, refs[len(refs)-1].ID, 100)
		require.NoError(t, err)
		assert.Empty(t, after)
	})

	t.Run("re-import refreshes ratings in place", func(t *testing.T) {
		id, inserted, err := r.StoreMovie(ctx, model.Movie{TMDBID: 5, Title: "FewVotes", PosterPath: ptr("/f.jpg"),
			VoteAverage: 9, VoteCount: 50})
		require.NoError(t, err)
		assert.False(t, inserted)

		candidates, err := r.CandidatesAmong(ctx, 1, []model.MovieID{id}, filter)
		require.NoError(t, err)
		assert.Len(t, candidates, 1)
	})
}

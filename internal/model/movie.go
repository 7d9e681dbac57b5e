package model

import "time"

type MovieID int64

type GenreID int64

// Movie is a catalog entry as written by the importer.
type Movie struct {
	ID          MovieID
	TMDBID      int64
	Title       string
	Overview    string
	PosterPath  *string
	VoteAverage float64
	VoteCount   int
	ReleaseDate *time.Time
	GenreIDs    []GenreID
}

type Genre struct {
	ID   GenreID
	Name string
}

// Candidate is a feed entry: an unseen, quality-filtered movie with its
// genres flattened into a single comma-joined string.
type Candidate struct {
	ID          MovieID
	Title       string
	Overview    string
	PosterPath  string
	VoteAverage float64
	GenresList  string
	Platform    string
}

// CandidateFilter holds the data-quality predicates every feed entry passes,
// plus the optional narrowing a viewer asked for. Empty Genre or Platform
// means no narrowing.
type CandidateFilter struct {
	Limit        int
	MinVoteCount int
	Genre        string
	Platform     string
}

// Narrowed reports whether the filter goes beyond the quality predicates.
func (f CandidateFilter) Narrowed() bool {
	return f.Genre != "" || f.Platform != ""
}

// FeedQuery is the per-request narrowing of the feed.
type FeedQuery struct {
	Genre    string
	Platform string
}

// DefaultPlatform is recorded for movies with no streaming offer in the
// configured region.
const DefaultPlatform = "Sinema"

// MovieRef identifies a stored movie on both sides.
type MovieRef struct {
	ID     MovieID
	TMDBID int64
}

// Package tmdb is a minimal client for the TMDB v3 endpoints used by the
// importer: the movie genre list, the popular listing and watch providers.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/moviematch/core/internal/config"
	"github.com/moviematch/core/internal/model"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL  = "https://api.themoviedb.org/3"
	DefaultLanguage = "en-US"
	DefaultRegion   = "TR"

	releaseDateLayout = "2006-01-02"
)

var (
	ErrMissingAPIKey    = errors.New("tmdb api key is not set")
	ErrUnexpectedStatus = errors.New("unexpected tmdb status")
)

type Client struct {
	baseURL    string
	apiKey     string
	language   string
	region     string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

type Option func(*Client)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func New(cfg config.TMDB, opts ...Option) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		language:   cfg.Language,
		region:     strings.ToUpper(cfg.Region),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		limiter:    rate.NewLimiter(rate.Inf, 1),
		logger:     slog.Default(),
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.language == "" {
		c.language = DefaultLanguage
	}
	if c.region == "" {
		c.region = DefaultRegion
	}
	if cfg.RPS > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RPS), 1)
	}

	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type genresResponse struct {
	Genres []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"genres"`
}

func (c *Client) Genres(ctx context.Context) ([]model.Genre, error) {
	var resp genresResponse
	if err := c.get(ctx, "/genre/movie/list", nil, &resp); err != nil {
		return nil, err
	}

	genres := make([]model.Genre, 0, len(resp.Genres))
	for _, g := range resp.Genres {
		genres = append(genres, model.Genre{ID: model.GenreID(g.ID), Name: g.Name})
	}
	return genres, nil
}

type movieResult struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  *string `json:"poster_path"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
	ReleaseDate string  `json:"release_date"`
	GenreIDs    []int64 `json:"genre_ids"`
}

type popularResponse struct {
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
	Results    []movieResult `json:"results"`
}

// Popular returns one page of the popular listing. Pages start at 1.
func (c *Client) Popular(ctx context.Context, page int) ([]model.Movie, error) {
	var resp popularResponse
	params := url.Values{"page": {strconv.Itoa(page)}}
	if err := c.get(ctx, "/movie/popular", params, &resp); err != nil {
		return nil, err
	}

	movies := make([]model.Movie, 0, len(resp.Results))
	for _, r := range resp.Results {
		movies = append(movies, r.toDomain())
	}
	return movies, nil
}

type providersResponse struct {
	Results map[string]struct {
		Flatrate []struct {
			ProviderName    string `json:"provider_name"`
			DisplayPriority int    `json:"display_priority"`
		} `json:"flatrate"`
	} `json:"results"`
}

// WatchProvider returns the highest-priority subscription provider of the
// movie in the client's region, or "" when it streams nowhere there.
func (c *Client) WatchProvider(ctx context.Context, tmdbID int64) (string, error) {
	var resp providersResponse
	path := "/movie/" + strconv.FormatInt(tmdbID, 10) + "/watch/providers"
	if err := c.get(ctx, path, nil, &resp); err != nil {
		return "", err
	}

	offers := resp.Results[c.region].Flatrate
	if len(offers) == 0 {
		return "", nil
	}

	best := offers[0]
	for _, o := range offers[1:] {
		if o.DisplayPriority < best.DisplayPriority {
			best = o
		}
	}
	return best.ProviderName, nil
}

func (r movieResult) toDomain() model.Movie {
	m := model.Movie{
		TMDBID:      r.ID,
		Title:       r.Title,
		Overview:    r.Overview,
		PosterPath:  r.PosterPath,
		VoteAverage: r.VoteAverage,
		VoteCount:   r.VoteCount,
		GenreIDs:    make([]model.GenreID, 0, len(r.GenreIDs)),
	}
	if d, err := time.Parse(releaseDateLayout, r.ReleaseDate); err == nil {
		m.ReleaseDate = &d
	}
	for _, id := range r.GenreIDs {
		m.GenreIDs = append(m.GenreIDs, model.GenreID(id))
	}
	return m
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	params.Set("language", c.language)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call tmdb %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Debug("tmdb error body", slog.String("path", path), slog.String("body", string(body)))
		return fmt.Errorf("%w: %s returned %d", ErrUnexpectedStatus, path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode tmdb %s: %w", path, err)
	}
	return nil
}

// Package client talks to the swipe API on behalf of one participant.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

var (
	ErrFeedExhausted = errors.New("no movies left to show")
	ErrRequestFailed = errors.New("request failed")
)

type Movie struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	VoteAverage float64 `json:"vote_average"`
	GenresList  string  `json:"genres_list"`
	Platform    string  `json:"platform"`
}

type Outcome struct {
	Message string `json:"message"`
	Match   bool   `json:"match"`
	MovieID int64  `json:"movie_id"`
}

type interactionRequest struct {
	MovieID int64 `json:"movie_id"`
	Type    int   `json:"type"`
}

type errorResponse struct {
	Message string `json:"message"`
}

type Client struct {
	baseURL    string
	viewer     int64
	genre      string
	platform   string
	httpClient *http.Client
}

type Option func(*Client)

// WithFilter narrows every Feed call; empty values leave a side open.
func WithFilter(genre, platform string) Option {
	return func(c *Client) {
		c.genre = genre
		c.platform = platform
	}
}

// New targets baseURL (for example http://localhost:3000/api). A zero viewer
// lets the server pick its default participant.
func New(baseURL string, viewer int64, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		viewer:     viewer,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) makeRequest(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.viewer != 0 {
		req.Header.Set("X-Viewer-ID", strconv.FormatInt(c.viewer, 10))
	}

	return c.httpClient.Do(req)
}

func (c *Client) Feed(ctx context.Context) ([]Movie, error) {
	path := "/movies"
	q := url.Values{}
	if c.genre != "" {
		q.Set("genre", c.genre)
	}
	if c.platform != "" {
		q.Set("platform", c.platform)
	}
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	resp, err := c.makeRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrFeedExhausted
	default:
		return nil, statusError(resp)
	}

	var movies []Movie
	if err := json.NewDecoder(resp.Body).Decode(&movies); err != nil {
		return nil, fmt.Errorf("failed to decode feed: %w", err)
	}
	return movies, nil
}

func (c *Client) React(ctx context.Context, movieID int64, reaction int) (Outcome, error) {
	body, err := json.Marshal(interactionRequest{MovieID: movieID, Type: reaction})
	if err != nil {
		return Outcome{}, err
	}

	resp, err := c.makeRequest(ctx, http.MethodPost, "/interactions", bytes.NewReader(body))
	if err != nil {
		return Outcome{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return Outcome{}, statusError(resp)
	}

	var out Outcome
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Outcome{}, fmt.Errorf("failed to decode outcome: %w", err)
	}
	return out, nil
}

func statusError(resp *http.Response) error {
	var e errorResponse
	_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&e)
	if e.Message == "" {
		e.Message = resp.Status
	}
	return fmt.Errorf("%w: %d %s", ErrRequestFailed, resp.StatusCode, e.Message)
}

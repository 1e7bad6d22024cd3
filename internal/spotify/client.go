// Package spotify provides a minimal client for the Spotify Web API using
// the client-credentials flow.
package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2/clientcredentials"
)

const (
	defaultBaseURL = "https://api.spotify.com/v1"
	tokenURL       = "https://accounts.spotify.com/api/token"

	// The top-tracks endpoint requires a market parameter.
	topTracksMarket = "US"
)

// Config holds construction options for a Client.
type Config struct {
	ClientID     string
	ClientSecret string
	// BaseURL overrides the Spotify API base URL. Used by tests.
	BaseURL string
	// HTTPClient overrides the token-managed client. When set, the
	// client-credentials flow is bypassed. Used by tests.
	HTTPClient *http.Client
}

// Client is a minimal HTTP client for the Spotify Web API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a Client. Credentials are not verified here: the access token
// is fetched lazily on the first request, so missing credentials surface as
// an error from the call that needed them rather than at construction.
func New(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		conf := &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     tokenURL,
		}
		httpClient = conf.Client(context.Background())
		httpClient.Timeout = 15 * time.Second
	}
	return &Client{baseURL: strings.TrimRight(base, "/"), http: httpClient}
}

// Close releases idle connections held by the underlying HTTP client.
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}

// APIError is a non-2xx response from the Spotify API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("spotify: %s (status %d)", e.Message, e.Status)
}

// Album is the subset of album fields the tools report.
type Album struct {
	Name string `json:"name"`
}

// SimpleArtist is the artist reference embedded in tracks.
type SimpleArtist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Track is the subset of track fields the tools report.
type Track struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	URI        string         `json:"uri"`
	PreviewURL string         `json:"preview_url"`
	Popularity int            `json:"popularity"`
	DurationMS int            `json:"duration_ms"`
	Album      Album          `json:"album"`
	Artists    []SimpleArtist `json:"artists"`
}

// Followers carries an artist's follower count.
type Followers struct {
	Total int `json:"total"`
}

// Artist is the subset of artist fields the tools report.
type Artist struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	URI        string    `json:"uri"`
	Popularity int       `json:"popularity"`
	Genres     []string  `json:"genres"`
	Followers  Followers `json:"followers"`
}

// AudioFeatures is the audio analysis summary for one track.
type AudioFeatures struct {
	ID               string  `json:"id"`
	Tempo            float64 `json:"tempo"`
	Key              int     `json:"key"`
	Mode             int     `json:"mode"`
	TimeSignature    int     `json:"time_signature"`
	DurationMS       int     `json:"duration_ms"`
	Danceability     float64 `json:"danceability"`
	Energy           float64 `json:"energy"`
	Speechiness      float64 `json:"speechiness"`
	Acousticness     float64 `json:"acousticness"`
	Instrumentalness float64 `json:"instrumentalness"`
	Liveness         float64 `json:"liveness"`
	Valence          float64 `json:"valence"`
	Loudness         float64 `json:"loudness"`
}

// SearchTracks runs a track search and returns the matching tracks.
func (c *Client) SearchTracks(ctx context.Context, query string, limit int) ([]Track, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("type", "track")
	q.Set("limit", strconv.Itoa(limit))
	var out struct {
		Tracks struct {
			Items []Track `json:"items"`
		} `json:"tracks"`
	}
	if err := c.get(ctx, "/search", q, &out); err != nil {
		return nil, err
	}
	return out.Tracks.Items, nil
}

// SearchArtists runs an artist search and returns the matching artists.
func (c *Client) SearchArtists(ctx context.Context, query string, limit int) ([]Artist, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("type", "artist")
	q.Set("limit", strconv.Itoa(limit))
	var out struct {
		Artists struct {
			Items []Artist `json:"items"`
		} `json:"artists"`
	}
	if err := c.get(ctx, "/search", q, &out); err != nil {
		return nil, err
	}
	return out.Artists.Items, nil
}

// Artist fetches full artist details by id.
func (c *Client) Artist(ctx context.Context, id string) (*Artist, error) {
	var out *Artist
	if err := c.get(ctx, "/artists/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ArtistTopTracks fetches an artist's top tracks.
func (c *Client) ArtistTopTracks(ctx context.Context, id string) ([]Track, error) {
	q := url.Values{}
	q.Set("market", topTracksMarket)
	var out struct {
		Tracks []Track `json:"tracks"`
	}
	if err := c.get(ctx, "/artists/"+url.PathEscape(id)+"/top-tracks", q, &out); err != nil {
		return nil, err
	}
	return out.Tracks, nil
}

// Track fetches a single track by id.
func (c *Client) Track(ctx context.Context, id string) (*Track, error) {
	var out *Track
	if err := c.get(ctx, "/tracks/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AudioFeatures fetches the audio analysis summary for a track. The API
// returns a JSON null for unknown ids, which surfaces here as (nil, nil).
func (c *Client) AudioFeatures(ctx context.Context, trackID string) (*AudioFeatures, error) {
	var out *AudioFeatures
	if err := c.get(ctx, "/audio-features/"+url.PathEscape(trackID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Recommendations fetches track recommendations seeded by the given track ids.
func (c *Client) Recommendations(ctx context.Context, seedTrackIDs []string, limit int) ([]Track, error) {
	q := url.Values{}
	q.Set("seed_tracks", strings.Join(seedTrackIDs, ","))
	q.Set("limit", strconv.Itoa(limit))
	var out struct {
		Tracks []Track `json:"tracks"`
	}
	if err := c.get(ctx, "/recommendations", q, &out); err != nil {
		return nil, err
	}
	return out.Tracks, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apiError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

// apiError converts a non-2xx response into an *APIError, preferring the
// message from Spotify's {"error": {"status", "message"}} envelope.
func apiError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var wire struct {
		Error struct {
			Status  int    `json:"status"`
			Message string `json:"message"`
		} `json:"error"`
	}
	msg := http.StatusText(resp.StatusCode)
	if json.Unmarshal(body, &wire) == nil && wire.Error.Message != "" {
		msg = wire.Error.Message
	}
	return &APIError{Status: resp.StatusCode, Message: msg}
}

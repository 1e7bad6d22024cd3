package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/quaverlabs/spotify-mcp/internal/spotify"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 50

	defaultRecommendLimit = 10
	maxRecommendLimit     = 100

	// Spotify accepts at most five seed tracks per recommendations call.
	maxSeedTracks = 5

	topTracksShown = 5
)

// toolset binds the operation handlers to an API client.
type toolset struct {
	api MusicAPI
}

// SearchTracksInput are the arguments for search_tracks.
type SearchTracksInput struct {
	Query string `json:"query" jsonschema:"search query (song name, artist, etc.)"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results (default 10, max 50)"`
}

// ArtistInfoInput are the arguments for get_artist_info.
type ArtistInfoInput struct {
	ArtistName string `json:"artist_name" jsonschema:"name of the artist to look up"`
}

// AudioFeaturesInput are the arguments for get_audio_features.
type AudioFeaturesInput struct {
	TrackID string `json:"track_id" jsonschema:"Spotify track ID (get this from search_tracks)"`
}

// RecommendationsInput are the arguments for get_recommendations.
type RecommendationsInput struct {
	SeedTrackIDs string `json:"seed_track_ids" jsonschema:"comma-separated Spotify track IDs (up to 5)"`
	Limit        int    `json:"limit,omitempty" jsonschema:"number of recommendations (default 10, max 100)"`
}

// TrackInfoInput are the arguments for get_track.
type TrackInfoInput struct {
	TrackID string `json:"track_id" jsonschema:"Spotify track ID"`
}

func (t *toolset) searchTracks(ctx context.Context, in SearchTracksInput) string {
	limit := clampLimit(in.Limit, defaultSearchLimit, maxSearchLimit)
	tracks, err := t.api.SearchTracks(ctx, in.Query, limit)
	if err != nil {
		return errorText(err)
	}
	if len(tracks) == 0 {
		return fmt.Sprintf("No results found for track name: %q", in.Query)
	}
	return formatTracks(tracks)
}

func (t *toolset) artistInfo(ctx context.Context, in ArtistInfoInput) string {
	artists, err := t.api.SearchArtists(ctx, in.ArtistName, 1)
	if err != nil {
		return errorText(err)
	}
	if len(artists) == 0 {
		return fmt.Sprintf("No artist found with name: %q", in.ArtistName)
	}

	details, err := t.api.Artist(ctx, artists[0].ID)
	if err != nil {
		return errorText(err)
	}
	if details == nil {
		return fmt.Sprintf("Could not retrieve details for artist: %q", in.ArtistName)
	}

	top, err := t.api.ArtistTopTracks(ctx, details.ID)
	if err != nil {
		return errorText(err)
	}
	if len(top) == 0 {
		return fmt.Sprintf("Could not retrieve top tracks for artist: %q", in.ArtistName)
	}

	return formatArtist(details, top)
}

func (t *toolset) audioFeatures(ctx context.Context, in AudioFeaturesInput) string {
	features, err := t.api.AudioFeatures(ctx, in.TrackID)
	if err != nil {
		return errorText(err)
	}
	if features == nil {
		return fmt.Sprintf("No audio features found for track ID: %q", in.TrackID)
	}

	track, err := t.api.Track(ctx, in.TrackID)
	if err != nil {
		return errorText(err)
	}
	if track == nil {
		return fmt.Sprintf("Could not retrieve track information for ID: %q", in.TrackID)
	}

	return formatAudioFeatures(track, features)
}

func (t *toolset) recommendations(ctx context.Context, in RecommendationsInput) string {
	seeds := splitSeeds(in.SeedTrackIDs)
	if len(seeds) == 0 {
		return "Please provide at least one track ID"
	}

	limit := clampLimit(in.Limit, defaultRecommendLimit, maxRecommendLimit)
	tracks, err := t.api.Recommendations(ctx, seeds, limit)
	if err != nil {
		return errorText(err)
	}
	if len(tracks) == 0 {
		return "No recommendations found for the given tracks"
	}
	return formatRecommendations(len(seeds), tracks)
}

func (t *toolset) trackInfo(ctx context.Context, in TrackInfoInput) string {
	track, err := t.api.Track(ctx, in.TrackID)
	if err != nil {
		return errorText(err)
	}
	if track == nil {
		return fmt.Sprintf("No track found with ID: %q", in.TrackID)
	}
	return formatTrack(track)
}

// clampLimit folds a caller-supplied limit into [1, max], defaulting when
// unset or non-positive.
func clampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

// splitSeeds parses a comma-separated id list, dropping blanks and keeping
// at most maxSeedTracks entries.
func splitSeeds(s string) []string {
	var seeds []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		seeds = append(seeds, part)
		if len(seeds) == maxSeedTracks {
			break
		}
	}
	return seeds
}

// errorText folds an outbound call failure into the operation's text result.
func errorText(err error) string {
	var apiErr *spotify.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("Spotify API error: %s (Status: %d)", apiErr.Message, apiErr.Status)
	}
	return fmt.Sprintf("Unexpected error: %v", err)
}

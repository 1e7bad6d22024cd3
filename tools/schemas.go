package tools

import (
	"github.com/anthropics/anthropic-sdk-go"
)

// Argument shapes for the Spotify MCP server's tools. These are authored
// here rather than derived from the server's declared schemas: discovery
// only wraps tools whose names appear in the Schemas table, so the agent
// always presents argument types it has vetted.

type SearchTracksArgs struct {
	Query string `json:"query" jsonschema_description:"Search query (song name, artist, etc.)."`
	Limit int    `json:"limit,omitempty" jsonschema_description:"Maximum number of results (default 10, max 50)."`
}

type ArtistInfoArgs struct {
	ArtistName string `json:"artist_name" jsonschema_description:"Name of the artist to look up."`
}

type AudioFeaturesArgs struct {
	TrackID string `json:"track_id" jsonschema_description:"Spotify track ID (get this from search_tracks)."`
}

type RecommendationsArgs struct {
	SeedTrackIDs string `json:"seed_track_ids" jsonschema_description:"Comma-separated Spotify track IDs (up to 5)."`
	Limit        int    `json:"limit,omitempty" jsonschema_description:"Number of recommendations (default 10, max 100)."`
}

type TrackInfoArgs struct {
	TrackID string `json:"track_id" jsonschema_description:"Spotify track ID."`
}

// Schemas returns the fixed lookup table of hand-authored argument schemas,
// keyed by tool name. Tools discovered without an entry here are skipped.
func Schemas() map[string]anthropic.ToolInputSchemaParam {
	return map[string]anthropic.ToolInputSchemaParam{
		"search_tracks":       GenerateSchema[SearchTracksArgs](),
		"get_artist_info":     GenerateSchema[ArtistInfoArgs](),
		"get_audio_features":  GenerateSchema[AudioFeaturesArgs](),
		"get_recommendations": GenerateSchema[RecommendationsArgs](),
		"get_track":           GenerateSchema[TrackInfoArgs](),
	}
}

package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quaverlabs/spotify-mcp/internal/spotify"
)

func formatTracks(tracks []spotify.Track) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d tracks:\n\n", len(tracks))
	for i, track := range tracks {
		fmt.Fprintf(&b, "%d. %s by %s\n", i+1, track.Name, artistNames(track.Artists))
		fmt.Fprintf(&b, "   Album: %s\n", track.Album.Name)
		fmt.Fprintf(&b, "   Track ID: %s\n", track.ID)
		fmt.Fprintf(&b, "   URI: %s\n", track.URI)
		fmt.Fprintf(&b, "   Preview: %s\n\n", orNA(track.PreviewURL))
	}
	return b.String()
}

func formatArtist(artist *spotify.Artist, top []spotify.Track) string {
	genres := "N/A"
	if len(artist.Genres) > 0 {
		genres = strings.Join(artist.Genres, ", ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Artist: %s\n", artist.Name)
	fmt.Fprintf(&b, "Popularity: %d/100\n", artist.Popularity)
	fmt.Fprintf(&b, "Followers: %s\n", groupThousands(artist.Followers.Total))
	fmt.Fprintf(&b, "Genres: %s\n", genres)
	fmt.Fprintf(&b, "Spotify URI: %s\n\n", artist.URI)

	b.WriteString("Top Tracks:\n")
	for i, track := range top {
		if i == topTracksShown {
			break
		}
		fmt.Fprintf(&b, "%d. %s - %s\n", i+1, track.Name, track.Album.Name)
	}
	return b.String()
}

func formatAudioFeatures(track *spotify.Track, f *spotify.AudioFeatures) string {
	mode := "Minor"
	if f.Mode == 1 {
		mode = "Major"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Audio Features for: %s by %s\n\n", track.Name, firstArtistName(track.Artists))
	fmt.Fprintf(&b, "Tempo: %.1f BPM\n", f.Tempo)
	fmt.Fprintf(&b, "Key: %d (0=C, 1=C#, 2=D, etc.)\n", f.Key)
	fmt.Fprintf(&b, "Mode: %s\n", mode)
	fmt.Fprintf(&b, "Time Signature: %d/4\n", f.TimeSignature)
	fmt.Fprintf(&b, "Duration: %.1f seconds\n\n", float64(f.DurationMS)/1000)

	b.WriteString("Musical Characteristics (0.0 to 1.0):\n")
	fmt.Fprintf(&b, "  Danceability: %.2f\n", f.Danceability)
	fmt.Fprintf(&b, "  Energy: %.2f\n", f.Energy)
	fmt.Fprintf(&b, "  Speechiness: %.2f\n", f.Speechiness)
	fmt.Fprintf(&b, "  Acousticness: %.2f\n", f.Acousticness)
	fmt.Fprintf(&b, "  Instrumentalness: %.2f\n", f.Instrumentalness)
	fmt.Fprintf(&b, "  Liveness: %.2f\n", f.Liveness)
	fmt.Fprintf(&b, "  Valence (positivity): %.2f\n", f.Valence)
	fmt.Fprintf(&b, "  Loudness: %.1f dB\n", f.Loudness)
	return b.String()
}

func formatRecommendations(seedCount int, tracks []spotify.Track) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Recommendations based on %d seed track(s):\n\n", seedCount)
	for i, track := range tracks {
		fmt.Fprintf(&b, "%d. %s by %s\n", i+1, track.Name, artistNames(track.Artists))
		fmt.Fprintf(&b, "   Album: %s\n", track.Album.Name)
		fmt.Fprintf(&b, "   Track ID: %s\n", track.ID)
		fmt.Fprintf(&b, "   Popularity: %d/100\n\n", track.Popularity)
	}
	return b.String()
}

func formatTrack(track *spotify.Track) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Track: %s\n", track.Name)
	fmt.Fprintf(&b, "Artists: %s\n", artistNames(track.Artists))
	fmt.Fprintf(&b, "Album: %s\n", track.Album.Name)
	fmt.Fprintf(&b, "Popularity: %d/100\n", track.Popularity)
	fmt.Fprintf(&b, "Duration: %.1f seconds\n", float64(track.DurationMS)/1000)
	fmt.Fprintf(&b, "Track ID: %s\n", track.ID)
	fmt.Fprintf(&b, "URI: %s\n", track.URI)
	fmt.Fprintf(&b, "Preview: %s\n", orNA(track.PreviewURL))
	return b.String()
}

func artistNames(artists []spotify.SimpleArtist) string {
	names := make([]string, 0, len(artists))
	for _, a := range artists {
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ")
}

func firstArtistName(artists []spotify.SimpleArtist) string {
	if len(artists) == 0 {
		return "Unknown"
	}
	return artists[0].Name
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// groupThousands renders n with comma separators (e.g. 1234567 -> 1,234,567).
func groupThousands(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		s = "-" + s
	}
	return s
}

package spotify

import (
	"context"
	"strings"
)

// GetTrack retrieves catalog information for a single track.
func (c *Client) GetTrack(ctx context.Context, trackID string, market ...string) (Payload, error) {
	if trackID == "" {
		return nil, &ValidationError{Message: "track ID is required"}
	}
	return c.get(ctx, "v1/tracks/"+trackID, marketQuery(market))
}

// GetTracks retrieves catalog information for up to 100 tracks in one
// request.
func (c *Client) GetTracks(ctx context.Context, trackIDs []string, market ...string) (Payload, error) {
	return c.getBatch(ctx, "tracks", trackIDs, marketQuery(market))
}

// GetAudioFeatures retrieves audio feature information for a single
// track.
func (c *Client) GetAudioFeatures(ctx context.Context, trackID string) (Payload, error) {
	if trackID == "" {
		return nil, &ValidationError{Message: "track ID is required"}
	}
	return c.get(ctx, "v1/audio-features/"+trackID, nil)
}

// GetTracksAudioFeatures retrieves audio feature information for up to
// 100 tracks in one request.
func (c *Client) GetTracksAudioFeatures(ctx context.Context, trackIDs []string) (Payload, error) {
	return c.getBatch(ctx, "audio-features", trackIDs, nil)
}

// GetAudioAnalysis retrieves the low-level audio analysis for a single
// track.
func (c *Client) GetAudioAnalysis(ctx context.Context, trackID string) (Payload, error) {
	if trackID == "" {
		return nil, &ValidationError{Message: "track ID is required"}
	}
	return c.get(ctx, "v1/audio-analysis/"+trackID, nil)
}

// Seeds carries the seed entities for a recommendations request. At
// least one seed must be present.
type Seeds struct {
	Artists []string
	Genres  []string
	Tracks  []string
}

func (s Seeds) empty() bool {
	return len(s.Artists)+len(s.Genres)+len(s.Tracks) == 0
}

// GetRecommendations retrieves track recommendations for the given
// seeds. A zero limit is omitted and the remote default applies.
func (c *Client) GetRecommendations(ctx context.Context, seeds Seeds, limit int, market ...string) (Payload, error) {
	if seeds.empty() {
		return nil, &ValidationError{Message: "recommendations require at least one seed"}
	}

	query := marketQuery(market)
	if len(seeds.Artists) > 0 {
		query.Set("seed_artists", strings.Join(seeds.Artists, ","))
	}
	if len(seeds.Genres) > 0 {
		query.Set("seed_genres", strings.Join(seeds.Genres, ","))
	}
	if len(seeds.Tracks) > 0 {
		query.Set("seed_tracks", strings.Join(seeds.Tracks, ","))
	}
	setPage(query, limit, 0)

	return c.get(ctx, "v1/recommendations", query)
}

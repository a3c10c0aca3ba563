package spotify

import (
	"context"
	"strings"
)

// GetArtist retrieves catalog information for a single artist.
func (c *Client) GetArtist(ctx context.Context, artistID string) (Payload, error) {
	if artistID == "" {
		return nil, &ValidationError{Message: "artist ID is required"}
	}
	return c.get(ctx, "v1/artists/"+artistID, nil)
}

// GetArtists retrieves catalog information for up to 100 artists in one
// request.
func (c *Client) GetArtists(ctx context.Context, artistIDs []string) (Payload, error) {
	return c.getBatch(ctx, "artists", artistIDs, nil)
}

// GetArtistAlbums retrieves an artist's albums. includeGroups filters by
// album type (album, single, appears_on, compilation) and is omitted
// when empty.
func (c *Client) GetArtistAlbums(ctx context.Context, artistID string, includeGroups []string, limit, offset int, market ...string) (Payload, error) {
	if artistID == "" {
		return nil, &ValidationError{Message: "artist ID is required"}
	}

	query := marketQuery(market)
	if len(includeGroups) > 0 {
		query.Set("include_groups", strings.Join(includeGroups, ","))
	}
	setPage(query, limit, offset)

	return c.get(ctx, "v1/artists/"+artistID+"/albums", query)
}

// GetArtistTopTracks retrieves an artist's top tracks.
func (c *Client) GetArtistTopTracks(ctx context.Context, artistID string, market ...string) (Payload, error) {
	if artistID == "" {
		return nil, &ValidationError{Message: "artist ID is required"}
	}
	return c.get(ctx, "v1/artists/"+artistID+"/top-tracks", marketQuery(market))
}

package spotify

import (
	"context"
)

// GetAlbum retrieves catalog information for a single album.
func (c *Client) GetAlbum(ctx context.Context, albumID string, market ...string) (Payload, error) {
	if albumID == "" {
		return nil, &ValidationError{Message: "album ID is required"}
	}
	return c.get(ctx, "v1/albums/"+albumID, marketQuery(market))
}

// GetAlbums retrieves catalog information for up to 20 albums in one
// request.
func (c *Client) GetAlbums(ctx context.Context, albumIDs []string, market ...string) (Payload, error) {
	return c.getBatch(ctx, "albums", albumIDs, marketQuery(market))
}

// GetAlbumTracks retrieves an album's tracks with limit/offset
// pass-through.
func (c *Client) GetAlbumTracks(ctx context.Context, albumID string, limit, offset int, market ...string) (Payload, error) {
	if albumID == "" {
		return nil, &ValidationError{Message: "album ID is required"}
	}

	query := marketQuery(market)
	setPage(query, limit, offset)

	return c.get(ctx, "v1/albums/"+albumID+"/tracks", query)
}

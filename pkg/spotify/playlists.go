package spotify

import (
	"context"
	"fmt"
	"net/url"
)

// GetPlaylist retrieves a playlist's metadata and first page of items.
func (c *Client) GetPlaylist(ctx context.Context, playlistID string, market ...string) (Payload, error) {
	if playlistID == "" {
		return nil, &ValidationError{Message: "playlist ID is required"}
	}
	return c.get(ctx, "v1/playlists/"+playlistID, marketQuery(market))
}

// GetPlaylistItems retrieves a playlist's items with limit/offset
// pass-through.
func (c *Client) GetPlaylistItems(ctx context.Context, playlistID string, limit, offset int, market ...string) (Payload, error) {
	if playlistID == "" {
		return nil, &ValidationError{Message: "playlist ID is required"}
	}

	query := marketQuery(market)
	setPage(query, limit, offset)

	return c.get(ctx, "v1/playlists/"+playlistID+"/tracks", query)
}

// GetCategoryPlaylists retrieves the playlists filed under a browse
// category. The page limit ceiling is 50.
func (c *Client) GetCategoryPlaylists(ctx context.Context, categoryID string, limit, offset int) (Payload, error) {
	if categoryID == "" {
		return nil, &ValidationError{Message: "category ID is required"}
	}
	if limit > maxCategoryPlaylists {
		return nil, &ValidationError{
			Message: fmt.Sprintf("category playlists accepts a limit of at most %d, got %d", maxCategoryPlaylists, limit),
		}
	}

	query := url.Values{}
	setPage(query, limit, offset)

	return c.get(ctx, "v1/browse/categories/"+categoryID+"/playlists", query)
}

// GetFeaturedPlaylists retrieves the playlists featured on the browse
// surface. An empty locale is omitted and the remote default applies.
func (c *Client) GetFeaturedPlaylists(ctx context.Context, locale string, limit, offset int) (Payload, error) {
	query := url.Values{}
	if locale != "" {
		query.Set("locale", locale)
	}
	setPage(query, limit, offset)

	return c.get(ctx, "v1/browse/featured-playlists", query)
}

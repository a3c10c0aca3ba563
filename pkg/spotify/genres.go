package spotify

import (
	"context"
)

// GetRecommendationGenres retrieves the genre seeds available for
// recommendation requests.
func (c *Client) GetRecommendationGenres(ctx context.Context) (Payload, error) {
	return c.get(ctx, "v1/recommendations/available-genre-seeds", nil)
}

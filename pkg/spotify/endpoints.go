package spotify

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// batchEndpoint describes a multi-ID endpoint and the ID ceiling the
// remote API enforces per request. Ceilings are checked client-side
// before any network call.
type batchEndpoint struct {
	endpoint string
	ceiling  int
}

var batchEndpoints = map[string]batchEndpoint{
	"tracks":         {endpoint: "v1/tracks", ceiling: 100},
	"audio-features": {endpoint: "v1/audio-features", ceiling: 100},
	"artists":        {endpoint: "v1/artists", ceiling: 100},
	"albums":         {endpoint: "v1/albums", ceiling: 20},
}

// maxCategoryPlaylists is the page size ceiling for category playlist
// listings.
const maxCategoryPlaylists = 50

// getBatch validates the ID list against the resource's ceiling, joins
// the IDs into a single comma-delimited parameter, and dispatches.
func (c *Client) getBatch(ctx context.Context, resource string, ids []string, query url.Values) (Payload, error) {
	be, ok := batchEndpoints[resource]
	if !ok {
		return nil, errors.Newf("unknown batch resource %q", resource)
	}
	if len(ids) == 0 {
		return nil, &ValidationError{Message: resource + " requires at least one ID"}
	}
	if len(ids) > be.ceiling {
		return nil, batchCeilingError(resource, len(ids), be.ceiling)
	}

	if query == nil {
		query = url.Values{}
	}
	query.Set("ids", strings.Join(ids, ","))

	return c.get(ctx, be.endpoint, query)
}

// marketQuery builds a query carrying the optional trailing market
// argument accepted by several accessors. An unset market is omitted
// rather than sent empty.
func marketQuery(market []string) url.Values {
	query := url.Values{}
	if len(market) > 0 && market[0] != "" {
		query.Set("market", market[0])
	}
	return query
}

// setPage adds limit/offset pass-through parameters, omitting zero
// values.
func setPage(query url.Values, limit, offset int) {
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		query.Set("offset", strconv.Itoa(offset))
	}
}

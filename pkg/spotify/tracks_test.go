package spotify

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("id%03d", i)
	}
	return ids
}

func TestGetTracksAtCeiling(t *testing.T) {
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/tracks", r.URL.Path)
		assert.Contains(t, r.URL.Query().Get("ids"), "id000,id001")
		fmt.Fprint(w, `{"tracks":[]}`)
	})
	client := api.client(t)

	_, err := client.GetTracks(context.Background(), makeIDs(100))
	assert.NoError(t, err)
}

func TestGetTracksOverCeiling(t *testing.T) {
	api := newFakeAPI(t, nil)
	client := api.client(t)

	_, err := client.GetTracks(context.Background(), makeIDs(101))
	require.Error(t, err)

	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))

	// The violation is rejected before any network call.
	assert.Equal(t, int32(0), atomic.LoadInt32(&api.tokenCalls))
	assert.Equal(t, int32(0), atomic.LoadInt32(&api.resourceCalls))
}

func TestGetTracksEmpty(t *testing.T) {
	api := newFakeAPI(t, nil)
	client := api.client(t)

	_, err := client.GetTracks(context.Background(), nil)
	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestGetTracksAudioFeaturesCeiling(t *testing.T) {
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/audio-features", r.URL.Path)
		fmt.Fprint(w, `{"audio_features":[]}`)
	})
	client := api.client(t)

	ctx := context.Background()
	_, err := client.GetTracksAudioFeatures(ctx, makeIDs(100))
	assert.NoError(t, err)

	_, err = client.GetTracksAudioFeatures(ctx, makeIDs(101))
	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestGetAudioAnalysis(t *testing.T) {
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/audio-analysis/track1", r.URL.Path)
		fmt.Fprint(w, `{"meta":{"status_code":0}}`)
	})
	client := api.client(t)

	payload, err := client.GetAudioAnalysis(context.Background(), "track1")
	require.NoError(t, err)
	assert.Contains(t, payload, "meta")
}

func TestGetRecommendations(t *testing.T) {
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/recommendations", r.URL.Path)
		query := r.URL.Query()
		assert.Equal(t, "a1,a2", query.Get("seed_artists"))
		assert.Equal(t, "ambient", query.Get("seed_genres"))
		assert.Equal(t, "10", query.Get("limit"))
		_, present := query["seed_tracks"]
		assert.False(t, present, "empty seed list must be omitted")
		fmt.Fprint(w, `{"tracks":[]}`)
	})
	client := api.client(t)

	seeds := Seeds{Artists: []string{"a1", "a2"}, Genres: []string{"ambient"}}
	_, err := client.GetRecommendations(context.Background(), seeds, 10)
	assert.NoError(t, err)
}

func TestGetRecommendationsWithoutSeeds(t *testing.T) {
	api := newFakeAPI(t, nil)
	client := api.client(t)

	_, err := client.GetRecommendations(context.Background(), Seeds{}, 10)
	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Equal(t, int32(0), atomic.LoadInt32(&api.resourceCalls))
}

func TestGetTrackRequiresID(t *testing.T) {
	api := newFakeAPI(t, nil)
	client := api.client(t)

	_, err := client.GetTrack(context.Background(), "")
	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

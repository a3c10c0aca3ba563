// Package main provides the Spotify catalog lookup CLI.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"

	"github.com/soundcrate/catalog/internal/infra/config"
	"github.com/soundcrate/catalog/internal/infra/logger"
	"github.com/soundcrate/catalog/pkg/spotify"
)

var (
	app          = kingpin.New("catalog", "Spotify catalog lookup tool")
	configPath   = app.Flag("config", "Path to a YAML config file").String()
	clientID     = app.Flag("client-id", "Spotify Client ID").Envar("SPOTIFY_CLIENT_ID").String()
	clientSecret = app.Flag("client-secret", "Spotify Client Secret").Envar("SPOTIFY_CLIENT_SECRET").String()
	market       = app.Flag("market", "ISO 3166-1 alpha-2 market code").Envar("SPOTIFY_MARKET").String()
	logLevel     = app.Flag("log-level", "Log level (debug, info, warn, error)").String()

	trackCmd = app.Command("track", "Look up a single track")
	trackID  = trackCmd.Arg("id", "Track ID").Required().String()

	tracksCmd = app.Command("tracks", "Look up up to 100 tracks")
	trackIDs  = tracksCmd.Arg("ids", "Track IDs").Required().Strings()

	featuresCmd = app.Command("audio-features", "Audio features for up to 100 tracks")
	featureIDs  = featuresCmd.Arg("ids", "Track IDs").Required().Strings()

	analysisCmd = app.Command("audio-analysis", "Audio analysis for a single track")
	analysisID  = analysisCmd.Arg("id", "Track ID").Required().String()

	recsCmd        = app.Command("recommendations", "Track recommendations for seed entities")
	recSeedArtists = recsCmd.Flag("seed-artists", "Seed artist IDs").Strings()
	recSeedGenres  = recsCmd.Flag("seed-genres", "Seed genres").Strings()
	recSeedTracks  = recsCmd.Flag("seed-tracks", "Seed track IDs").Strings()
	recLimit       = recsCmd.Flag("limit", "Maximum number of recommendations").Int()

	genresCmd = app.Command("genres", "Available recommendation genre seeds")

	artistCmd = app.Command("artist", "Look up a single artist")
	artistID  = artistCmd.Arg("id", "Artist ID").Required().String()

	artistsCmd = app.Command("artists", "Look up up to 100 artists")
	artistIDs  = artistsCmd.Arg("ids", "Artist IDs").Required().Strings()

	artistAlbumsCmd    = app.Command("artist-albums", "List an artist's albums")
	artistAlbumsID     = artistAlbumsCmd.Arg("id", "Artist ID").Required().String()
	artistAlbumsGroups = artistAlbumsCmd.Flag("include-groups", "Album types to include (album, single, appears_on, compilation)").Strings()
	artistAlbumsLimit  = artistAlbumsCmd.Flag("limit", "Page size").Int()
	artistAlbumsOffset = artistAlbumsCmd.Flag("offset", "Page offset").Int()

	topTracksCmd = app.Command("artist-top-tracks", "An artist's top tracks")
	topTracksID  = topTracksCmd.Arg("id", "Artist ID").Required().String()

	albumCmd = app.Command("album", "Look up a single album")
	albumID  = albumCmd.Arg("id", "Album ID").Required().String()

	albumsCmd = app.Command("albums", "Look up up to 20 albums")
	albumIDs  = albumsCmd.Arg("ids", "Album IDs").Required().Strings()

	albumTracksCmd    = app.Command("album-tracks", "List an album's tracks")
	albumTracksID     = albumTracksCmd.Arg("id", "Album ID").Required().String()
	albumTracksLimit  = albumTracksCmd.Flag("limit", "Page size").Int()
	albumTracksOffset = albumTracksCmd.Flag("offset", "Page offset").Int()

	playlistCmd = app.Command("playlist", "Look up a single playlist")
	playlistID  = playlistCmd.Arg("id", "Playlist ID").Required().String()

	playlistItemsCmd    = app.Command("playlist-items", "List a playlist's items")
	playlistItemsID     = playlistItemsCmd.Arg("id", "Playlist ID").Required().String()
	playlistItemsLimit  = playlistItemsCmd.Flag("limit", "Page size").Int()
	playlistItemsOffset = playlistItemsCmd.Flag("offset", "Page offset").Int()

	categoryCmd    = app.Command("category-playlists", "Playlists filed under a browse category")
	categoryID     = categoryCmd.Arg("id", "Category ID").Required().String()
	categoryLimit  = categoryCmd.Flag("limit", "Page size (max 50)").Int()
	categoryOffset = categoryCmd.Flag("offset", "Page offset").Int()

	featuredCmd    = app.Command("featured-playlists", "Playlists featured on the browse surface")
	featuredLocale = featuredCmd.Flag("locale", "Locale, e.g. sv_SE").String()
	featuredLimit  = featuredCmd.Flag("limit", "Page size").Int()
	featuredOffset = featuredCmd.Flag("offset", "Page offset").Int()
)

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := resolveConfig()
	if err != nil {
		fatal(err)
	}

	if err := logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Output: cfg.Logging.Output,
		File:   cfg.Logging.File,
	}); err != nil {
		fatal(err)
	}

	client, err := spotify.New(spotify.Config{
		ClientID:     cfg.Spotify.ClientID,
		ClientSecret: cfg.Spotify.ClientSecret,
		BaseURL:      cfg.Spotify.BaseURL,
		AccountsURL:  cfg.Spotify.AccountsURL,
	})
	if err != nil {
		fatal(err)
	}

	ctx := context.Background()
	mkt := cfg.Spotify.Market

	var payload spotify.Payload
	switch command {
	case trackCmd.FullCommand():
		payload, err = client.GetTrack(ctx, *trackID, mkt)
	case tracksCmd.FullCommand():
		payload, err = client.GetTracks(ctx, *trackIDs, mkt)
	case featuresCmd.FullCommand():
		if len(*featureIDs) == 1 {
			payload, err = client.GetAudioFeatures(ctx, (*featureIDs)[0])
		} else {
			payload, err = client.GetTracksAudioFeatures(ctx, *featureIDs)
		}
	case analysisCmd.FullCommand():
		payload, err = client.GetAudioAnalysis(ctx, *analysisID)
	case recsCmd.FullCommand():
		seeds := spotify.Seeds{
			Artists: *recSeedArtists,
			Genres:  *recSeedGenres,
			Tracks:  *recSeedTracks,
		}
		payload, err = client.GetRecommendations(ctx, seeds, *recLimit, mkt)
	case genresCmd.FullCommand():
		payload, err = client.GetRecommendationGenres(ctx)
	case artistCmd.FullCommand():
		payload, err = client.GetArtist(ctx, *artistID)
	case artistsCmd.FullCommand():
		payload, err = client.GetArtists(ctx, *artistIDs)
	case artistAlbumsCmd.FullCommand():
		payload, err = client.GetArtistAlbums(ctx, *artistAlbumsID, *artistAlbumsGroups, *artistAlbumsLimit, *artistAlbumsOffset, mkt)
	case topTracksCmd.FullCommand():
		payload, err = client.GetArtistTopTracks(ctx, *topTracksID, mkt)
	case albumCmd.FullCommand():
		payload, err = client.GetAlbum(ctx, *albumID, mkt)
	case albumsCmd.FullCommand():
		payload, err = client.GetAlbums(ctx, *albumIDs, mkt)
	case albumTracksCmd.FullCommand():
		payload, err = client.GetAlbumTracks(ctx, *albumTracksID, *albumTracksLimit, *albumTracksOffset, mkt)
	case playlistCmd.FullCommand():
		payload, err = client.GetPlaylist(ctx, *playlistID, mkt)
	case playlistItemsCmd.FullCommand():
		payload, err = client.GetPlaylistItems(ctx, *playlistItemsID, *playlistItemsLimit, *playlistItemsOffset, mkt)
	case categoryCmd.FullCommand():
		payload, err = client.GetCategoryPlaylists(ctx, *categoryID, *categoryLimit, *categoryOffset)
	case featuredCmd.FullCommand():
		payload, err = client.GetFeaturedPlaylists(ctx, *featuredLocale, *featuredLimit, *featuredOffset)
	}
	if err != nil {
		fatal(err)
	}

	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		fatal(err)
	}
	fmt.Println(string(out))
}

// resolveConfig builds the effective configuration. A --config file is
// authoritative when given; otherwise credentials come from flags and
// environment variables.
func resolveConfig() (*config.Config, error) {
	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			return nil, err
		}
		if *market != "" {
			cfg.Spotify.Market = *market
		}
		if *logLevel != "" {
			cfg.Logging.Level = *logLevel
		}
		return cfg, nil
	}

	cfg := &config.Config{}
	cfg.Spotify.ClientID = *clientID
	cfg.Spotify.ClientSecret = *clientSecret
	cfg.Spotify.Market = *market
	cfg.Spotify.BaseURL = spotify.DefaultBaseURL
	cfg.Spotify.AccountsURL = spotify.DefaultAccountsURL
	cfg.Logging.Level = *logLevel
	cfg.Logging.Output = "stderr"

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// Package spotify provides a client for the Spotify Web API catalog
// endpoints using the OAuth2 client-credentials flow.
//
// The client exchanges its credentials for a bearer token on the first
// request and reuses that token for the lifetime of the instance. All
// accessors return the JSON-decoded response body verbatim; no schema
// is imposed on it.
package spotify

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"
)

const (
	// DefaultBaseURL is the resource API host.
	DefaultBaseURL = "https://api.spotify.com"
	// DefaultAccountsURL is the host serving the token endpoint.
	DefaultAccountsURL = "https://accounts.spotify.com"
)

// Payload is a JSON-decoded response body, passed through to callers
// unchanged.
type Payload = map[string]any

// Config represents Spotify client configuration.
type Config struct {
	ClientID     string
	ClientSecret string
	BaseURL      string       // Optional: resource API host (defaults to DefaultBaseURL, used for testing)
	AccountsURL  string       // Optional: token endpoint host (defaults to DefaultAccountsURL, used for testing)
	HTTPClient   *http.Client // Optional: HTTP client
}

// Client is a Spotify Web API client. It is safe for concurrent use.
type Client struct {
	clientID     string
	clientSecret string
	baseURL      string
	accountsURL  string
	httpClient   *http.Client

	// Guards the memoized authorization header.
	mu   sync.Mutex
	auth string
}

// New creates a new Spotify client.
func New(cfg Config) (*Client, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, errors.New("spotify credentials are required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	accountsURL := cfg.AccountsURL
	if accountsURL == "" {
		accountsURL = DefaultAccountsURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	return &Client{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		baseURL:      strings.TrimRight(baseURL, "/"),
		accountsURL:  strings.TrimRight(accountsURL, "/"),
		httpClient:   httpClient,
	}, nil
}

// authHeader returns the memoized authorization header, performing the
// token exchange on first use. A failed exchange is not memoized, so a
// later call may retry; at most one exchange succeeds per instance.
func (c *Client) authHeader(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.auth != "" {
		return c.auth, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.accountsURL+"/api/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", errors.Wrap(err, "failed to create token request")
	}
	basic := base64.StdEncoding.EncodeToString([]byte(c.clientID + ":" + c.clientSecret))
	req.Header.Set("Authorization", "Basic "+basic)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "failed to send token request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &AuthError{StatusCode: resp.StatusCode}
	}

	var result struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", errors.Wrap(err, "failed to parse token response")
	}
	if result.AccessToken == "" {
		return "", errors.New("token response carried no access_token")
	}

	c.auth = "Bearer " + result.AccessToken
	zlog.Debug().Msg("spotify: access token acquired")

	return c.auth, nil
}

// get performs an authenticated GET against the given endpoint path
// (e.g. "v1/tracks/xyz") and decodes the JSON response body.
func (c *Client) get(ctx context.Context, endpoint string, query url.Values) (Payload, error) {
	header, err := c.authHeader(ctx)
	if err != nil {
		return nil, err
	}

	reqURL := c.baseURL + "/" + endpoint
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Authorization", header)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to send request to %s", endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Endpoint: endpoint}
	}

	var payload Payload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrapf(err, "failed to parse response from %s", endpoint)
	}
	zlog.Debug().Str("endpoint", endpoint).Msg("spotify: request completed")

	return payload, nil
}

// Package strava is a minimal client for the Strava OAuth and athlete APIs.
package strava

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/oauth2"

	"bankapp/internal/config"
)

const (
	defaultOAuthURL = "https://www.strava.com/oauth"
	defaultAPIURL   = "https://www.strava.com/api/v3"

	// Scope is requested on every authorization.
	Scope = "activity:read_all,profile:read_all"
)

// APIError is returned when Strava answers with a non-2xx status.
type APIError struct {
	Op         string
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("strava %s: unexpected status %d: %s", e.Op, e.StatusCode, e.Body)
}

// Client talks to Strava on behalf of the configured OAuth application.
// Token grants go through x/oauth2; athlete API calls are plain JSON requests.
type Client struct {
	httpClient *http.Client
	oauthURL   string // overridable for tests
	apiURL     string // overridable for tests
	oauth      *oauth2.Config
}

// NewClient creates a Strava client for the given application credentials.
func NewClient(httpClient *http.Client, cfg config.StravaConfig) *Client {
	c := &Client{
		httpClient: httpClient,
		apiURL:     defaultAPIURL,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       []string{Scope},
		},
	}
	c.setOAuthURL(defaultOAuthURL)
	return c
}

func (c *Client) setOAuthURL(base string) {
	c.oauthURL = base
	c.oauth.Endpoint = oauth2.Endpoint{
		AuthURL:   base + "/authorize",
		TokenURL:  base + "/token",
		AuthStyle: oauth2.AuthStyleInParams,
	}
}

// Configured reports whether OAuth application credentials were supplied.
func (c *Client) Configured() bool {
	return c.oauth.ClientID != "" && c.oauth.ClientSecret != ""
}

// AuthorizeURL returns the consent page URL carrying the given opaque state.
func (c *Client) AuthorizeURL(state string) string {
	return c.oauth.AuthCodeURL(state, oauth2.SetAuthURLParam("approval_prompt", "force"))
}

// ExchangeCode trades an authorization code for a token grant.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*Token, error) {
	tok, err := c.oauth.Exchange(c.oauthContext(ctx), code)
	if err != nil {
		return nil, fmt.Errorf("strava exchange code: %w", err)
	}
	return newToken(tok), nil
}

// RefreshToken trades a refresh token for a new grant.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (*Token, error) {
	src := c.oauth.TokenSource(c.oauthContext(ctx), &oauth2.Token{RefreshToken: refreshToken})
	tok, err := src.Token()
	if err != nil {
		return nil, fmt.Errorf("strava refresh token: %w", err)
	}
	return newToken(tok), nil
}

// oauthContext makes x/oauth2 use the shared client and its timeout.
func (c *Client) oauthContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
}

// Deauthorize revokes the application's access for the token's athlete.
func (c *Client) Deauthorize(ctx context.Context, accessToken string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.oauthURL+"/deauthorize", nil)
	if err != nil {
		return fmt.Errorf("strava deauthorize: building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	return c.do(req, "deauthorize", nil)
}

// Activities lists the athlete's activities, newest first.
func (c *Client) Activities(ctx context.Context, accessToken string, page, perPage int) ([]Activity, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"/athlete/activities?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("strava activities: building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	var activities []Activity
	if err := c.do(req, "activities", &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// Stats returns the athlete's aggregate totals.
func (c *Client) Stats(ctx context.Context, accessToken string, athleteID int64) (*Stats, error) {
	endpoint := fmt.Sprintf("%s/athletes/%d/stats", c.apiURL, athleteID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("strava stats: building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	var stats Stats
	if err := c.do(req, "stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// do executes the request and decodes a JSON body into out when out is non-nil.
func (c *Client) do(req *http.Request, op string, out interface{}) error {
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("strava %s: http request: %w", op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &APIError{Op: op, StatusCode: resp.StatusCode, Body: string(snippet)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("strava %s: decoding response: %w", op, err)
	}
	return nil
}

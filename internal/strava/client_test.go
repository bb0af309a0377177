package strava

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"bankapp/internal/config"
)

func newTestClient(server *httptest.Server) *Client {
	c := NewClient(server.Client(), config.StravaConfig{
		ClientID:     "12345",
		ClientSecret: "secret",
		RedirectURI:  "http://localhost:3001/api/strava/callback",
	})
	c.setOAuthURL(server.URL + "/oauth")
	c.apiURL = server.URL + "/api/v3"
	return c
}

func TestClient_AuthorizeURL(t *testing.T) {
	c := NewClient(http.DefaultClient, config.StravaConfig{ClientID: "12345", RedirectURI: "http://localhost/cb"})

	raw := c.AuthorizeURL("opaque-state")
	u, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "www.strava.com", u.Host)
	assert.Equal(t, "/oauth/authorize", u.Path)
	q := u.Query()
	assert.Equal(t, "12345", q.Get("client_id"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "http://localhost/cb", q.Get("redirect_uri"))
	assert.Equal(t, "force", q.Get("approval_prompt"))
	assert.Equal(t, Scope, q.Get("scope"))
	assert.Equal(t, "opaque-state", q.Get("state"))
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func TestClient_ExchangeCode(t *testing.T) {
	var got url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/oauth/token", r.URL.Path)
		require.NoError(t, r.ParseForm())
		got = r.PostForm

		writeJSON(w, `{"token_type":"Bearer","access_token":"a1","refresh_token":"r1","expires_at":1700000000,"expires_in":21600,"athlete":{"id":99,"firstname":"Sipho","lastname":"Dlamini"}}`)
	}))
	defer server.Close()

	tok, err := newTestClient(server).ExchangeCode(context.Background(), "the-code")
	require.NoError(t, err)

	assert.Equal(t, "authorization_code", got.Get("grant_type"))
	assert.Equal(t, "the-code", got.Get("code"))
	assert.Equal(t, "12345", got.Get("client_id"))
	assert.Equal(t, "secret", got.Get("client_secret"))

	assert.Equal(t, "a1", tok.AccessToken)
	assert.Equal(t, "r1", tok.RefreshToken)
	assert.Equal(t, int64(1700000000), tok.ExpiresAt)
	require.NotNil(t, tok.Athlete)
	assert.Equal(t, int64(99), tok.Athlete.ID)
	assert.Equal(t, "Sipho", tok.Athlete.FirstName)
}

func TestClient_RefreshToken(t *testing.T) {
	var got url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		got = r.PostForm
		writeJSON(w, `{"token_type":"Bearer","access_token":"a2","refresh_token":"r2","expires_at":1700003600,"expires_in":21600}`)
	}))
	defer server.Close()

	tok, err := newTestClient(server).RefreshToken(context.Background(), "r1")
	require.NoError(t, err)

	assert.Equal(t, "refresh_token", got.Get("grant_type"))
	assert.Equal(t, "r1", got.Get("refresh_token"))
	assert.Equal(t, "12345", got.Get("client_id"))
	assert.Empty(t, got.Get("code"))
	assert.Equal(t, "a2", tok.AccessToken)
	assert.Equal(t, "r2", tok.RefreshToken)
	assert.Equal(t, int64(1700003600), tok.ExpiresAt)
	assert.Nil(t, tok.Athlete)
}

func TestClient_TokenErrors(t *testing.T) {
	t.Run("non-2xx status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"message":"Bad Request"}`))
		}))
		defer server.Close()

		_, err := newTestClient(server).ExchangeCode(context.Background(), "bad")
		var retrieveErr *oauth2.RetrieveError
		require.ErrorAs(t, err, &retrieveErr)
		assert.Equal(t, http.StatusBadRequest, retrieveErr.Response.StatusCode)
		assert.ErrorContains(t, err, "exchange code")
	})

	t.Run("missing access token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, `{}`)
		}))
		defer server.Close()

		_, err := newTestClient(server).RefreshToken(context.Background(), "r1")
		assert.ErrorContains(t, err, "access_token")
	})
}

func TestNewToken_FallsBackToExpiry(t *testing.T) {
	expiry := time.Unix(1700007200, 0)
	tok := newToken(&oauth2.Token{AccessToken: "a3", RefreshToken: "r3", Expiry: expiry})

	assert.Equal(t, int64(1700007200), tok.ExpiresAt)
	assert.Nil(t, tok.Athlete)
}

func TestActivitySummary_Pace(t *testing.T) {
	tests := []struct {
		name  string
		speed float64
		pace  float64
	}{
		{"one_metre_per_second", 1, 1000.0 / 60},
		{"five_minute_km", 1000.0 / 300, 5},
		{"four_minute_km", 1000.0 / 240, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Activity{AverageSpeed: tt.speed}.Summary()
			require.NotNil(t, s.Pace)
			assert.InDelta(t, tt.pace, *s.Pace, 1e-9)
		})
	}

	assert.Nil(t, Activity{}.Summary().Pace)
}

func TestClient_Deauthorize(t *testing.T) {
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/oauth/deauthorize", r.URL.Path)
		auth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	require.NoError(t, newTestClient(server).Deauthorize(context.Background(), "a1"))
	assert.Equal(t, "Bearer a1", auth)
}

func TestClient_Activities(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/athlete/activities", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("per_page"))
		assert.Equal(t, "Bearer a1", r.Header.Get("Authorization"))
		writeJSON(w, `[
			{"id":1,"name":"Morning Run","type":"Run","start_date":"2026-01-02T06:00:00Z","distance":5012.6,
			 "moving_time":1500,"total_elevation_gain":42.4,"average_speed":3.3333,"average_heartrate":151.2},
			{"id":2,"name":"Ride","type":"Ride","start_date":"2026-01-03T06:00:00Z","distance":20000,"moving_time":3600}
		]`)
	}))
	defer server.Close()

	activities, err := newTestClient(server).Activities(context.Background(), "a1", 2, 10)
	require.NoError(t, err)
	require.Len(t, activities, 2)

	run := activities[0].Summary()
	assert.Equal(t, int64(5013), run.Distance)
	assert.Equal(t, int64(42), run.Elevation)
	assert.Equal(t, int64(1500), run.Duration)
	assert.Equal(t, "2026-01-02T06:00:00Z", run.Date)
	require.NotNil(t, run.Pace)
	assert.InDelta(t, 5.0, *run.Pace, 0.01)
	require.NotNil(t, run.HeartRate)
	assert.InDelta(t, 151.2, *run.HeartRate, 0.001)

	ride := activities[1].Summary()
	assert.Nil(t, ride.Pace)
	assert.Nil(t, ride.HeartRate)
}

func TestClient_Stats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/athletes/99/stats", r.URL.Path)
		writeJSON(w, `{
			"all_run_totals":{"count":120,"distance":654321.7,"elevation_gain":8765.4},
			"ytd_run_totals":{"count":12,"distance":54321.2,"elevation_gain":765.5},
			"recent_run_totals":{"count":3,"distance":15000,"elevation_gain":120}
		}`)
	}))
	defer server.Close()

	stats, err := newTestClient(server).Stats(context.Background(), "a1", 99)
	require.NoError(t, err)

	summary := stats.Summary()
	assert.Equal(t, TotalsSummary{Distance: 654322, Activities: 120, Elevation: 8765}, summary.AllTime)
	assert.Equal(t, TotalsSummary{Distance: 54321, Activities: 12, Elevation: 766}, summary.YTD)
	assert.Equal(t, TotalsSummary{Distance: 15000, Activities: 3, Elevation: 120}, summary.Recent)
}

func TestClient_Configured(t *testing.T) {
	assert.True(t, NewClient(http.DefaultClient, config.StravaConfig{ClientID: "1", ClientSecret: "s"}).Configured())
	assert.False(t, NewClient(http.DefaultClient, config.StravaConfig{ClientID: "1"}).Configured())
	assert.False(t, NewClient(http.DefaultClient, config.StravaConfig{}).Configured())
}

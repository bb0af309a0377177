package services

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"bankapp/internal/models"
	"bankapp/internal/pagination"
	"bankapp/internal/strava"
	"bankapp/internal/testutil"
)

const testStateSecret = "state-secret"

// fakeStravaClient is a hand-written stand-in for the Strava API.
type fakeStravaClient struct {
	configured    bool
	exchangeFn    func(ctx context.Context, code string) (*strava.Token, error)
	refreshFn     func(ctx context.Context, refreshToken string) (*strava.Token, error)
	deauthorizeFn func(ctx context.Context, accessToken string) error
	activitiesFn  func(ctx context.Context, accessToken string, page, perPage int) ([]strava.Activity, error)
	statsFn       func(ctx context.Context, accessToken string, athleteID int64) (*strava.Stats, error)

	refreshCalls int
	deauthorized []string
	lastToken    string
}

func (f *fakeStravaClient) Configured() bool { return f.configured }

func (f *fakeStravaClient) AuthorizeURL(state string) string {
	return "https://www.strava.com/oauth/authorize?state=" + url.QueryEscape(state)
}

func (f *fakeStravaClient) ExchangeCode(ctx context.Context, code string) (*strava.Token, error) {
	return f.exchangeFn(ctx, code)
}

func (f *fakeStravaClient) RefreshToken(ctx context.Context, refreshToken string) (*strava.Token, error) {
	f.refreshCalls++
	return f.refreshFn(ctx, refreshToken)
}

func (f *fakeStravaClient) Deauthorize(ctx context.Context, accessToken string) error {
	f.deauthorized = append(f.deauthorized, accessToken)
	if f.deauthorizeFn != nil {
		return f.deauthorizeFn(ctx, accessToken)
	}
	return nil
}

func (f *fakeStravaClient) Activities(ctx context.Context, accessToken string, page, perPage int) ([]strava.Activity, error) {
	f.lastToken = accessToken
	return f.activitiesFn(ctx, accessToken, page, perPage)
}

func (f *fakeStravaClient) Stats(ctx context.Context, accessToken string, athleteID int64) (*strava.Stats, error) {
	f.lastToken = accessToken
	return f.statsFn(ctx, accessToken, athleteID)
}

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestStravaService(t *testing.T, client *fakeStravaClient) (*stravaService, func()) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	svc := NewStravaService(db, client, testStateSecret).(*stravaService)
	svc.now = func() time.Time { return fixedNow }
	return svc, func() { testutil.TeardownTestDB(t, db) }
}

func stateFromURL(t *testing.T, raw string) string {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("invalid auth url: %v", err)
	}
	return u.Query().Get("state")
}

func TestStravaAuthURL(t *testing.T) {
	t.Run("not_configured", func(t *testing.T) {
		svc, done := newTestStravaService(t, &fakeStravaClient{})
		defer done()

		_, err := svc.AuthURL("user-1")
		testutil.AssertAppError(t, err, "STRAVA_NOT_CONFIGURED")
	})

	t.Run("state_round_trips", func(t *testing.T) {
		svc, done := newTestStravaService(t, &fakeStravaClient{configured: true})
		defer done()

		raw, err := svc.AuthURL("user-1")
		testutil.AssertNoError(t, err)

		userID, err := svc.verifyState(stateFromURL(t, raw))
		testutil.AssertNoError(t, err)
		if userID != "user-1" {
			t.Errorf("expected user-1, got %s", userID)
		}
	})
}

func TestStravaVerifyState(t *testing.T) {
	sign := func(secret string, claims jwt.RegisteredClaims) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		if err != nil {
			t.Fatalf("failed to sign: %v", err)
		}
		return s
	}
	valid := jwt.RegisteredClaims{
		Subject:   "user-1",
		Audience:  jwt.ClaimStrings{StateAudience},
		ExpiresAt: jwt.NewNumericDate(fixedNow.Add(time.Minute)),
	}

	t.Run("expired", func(t *testing.T) {
		svc, done := newTestStravaService(t, &fakeStravaClient{configured: true})
		defer done()

		claims := valid
		claims.ExpiresAt = jwt.NewNumericDate(fixedNow.Add(-time.Second))
		_, err := svc.verifyState(sign(testStateSecret, claims))
		testutil.AssertAppError(t, err, "INVALID_TOKEN")
	})

	t.Run("state_older_than_ttl", func(t *testing.T) {
		svc, done := newTestStravaService(t, &fakeStravaClient{configured: true})
		defer done()

		state, err := svc.signState("user-1")
		testutil.AssertNoError(t, err)

		svc.now = func() time.Time { return fixedNow.Add(StateTTL + time.Second) }
		_, err = svc.verifyState(state)
		testutil.AssertAppError(t, err, "INVALID_TOKEN")
	})

	t.Run("wrong_secret", func(t *testing.T) {
		svc, done := newTestStravaService(t, &fakeStravaClient{configured: true})
		defer done()

		_, err := svc.verifyState(sign("other-secret", valid))
		testutil.AssertAppError(t, err, "INVALID_TOKEN")
	})

	t.Run("wrong_audience", func(t *testing.T) {
		svc, done := newTestStravaService(t, &fakeStravaClient{configured: true})
		defer done()

		claims := valid
		claims.Audience = jwt.ClaimStrings{"bankapp"}
		_, err := svc.verifyState(sign(testStateSecret, claims))
		testutil.AssertAppError(t, err, "INVALID_TOKEN")
	})

	t.Run("garbage", func(t *testing.T) {
		svc, done := newTestStravaService(t, &fakeStravaClient{configured: true})
		defer done()

		_, err := svc.verifyState("not-a-jwt")
		testutil.AssertAppError(t, err, "INVALID_TOKEN")
	})
}

func TestStravaHandleCallback(t *testing.T) {
	t.Run("stores_grant", func(t *testing.T) {
		client := &fakeStravaClient{
			configured: true,
			exchangeFn: func(_ context.Context, code string) (*strava.Token, error) {
				if code != "the-code" {
					t.Errorf("expected code the-code, got %s", code)
				}
				return &strava.Token{AccessToken: "a1", RefreshToken: "r1", ExpiresAt: fixedNow.Add(6 * time.Hour).Unix(), Athlete: &strava.Athlete{ID: 77}}, nil
			},
		}
		svc, done := newTestStravaService(t, client)
		defer done()
		user := testutil.CreateTestUser(t, svc.db)

		raw, err := svc.AuthURL(user.ID)
		testutil.AssertNoError(t, err)

		userID, err := svc.HandleCallback(context.Background(), "the-code", stateFromURL(t, raw))
		testutil.AssertNoError(t, err)
		if userID != user.ID {
			t.Errorf("expected %s, got %s", user.ID, userID)
		}

		var settings models.UserSettings
		if err := svc.db.Where("user_id = ?", user.ID).First(&settings).Error; err != nil {
			t.Fatalf("expected settings row: %v", err)
		}
		if !settings.StravaConnected {
			t.Error("expected connected")
		}
		if settings.StravaAccessToken == nil || *settings.StravaAccessToken != "a1" {
			t.Errorf("expected access token a1, got %v", settings.StravaAccessToken)
		}
		if settings.StravaAthleteID == nil || *settings.StravaAthleteID != 77 {
			t.Errorf("expected athlete 77, got %v", settings.StravaAthleteID)
		}
	})

	t.Run("invalid_state_skips_exchange", func(t *testing.T) {
		client := &fakeStravaClient{
			configured: true,
			exchangeFn: func(context.Context, string) (*strava.Token, error) {
				t.Error("exchange should not be called")
				return nil, nil
			},
		}
		svc, done := newTestStravaService(t, client)
		defer done()

		_, err := svc.HandleCallback(context.Background(), "code", "forged")
		testutil.AssertAppError(t, err, "INVALID_TOKEN")
	})

	t.Run("exchange_failure", func(t *testing.T) {
		client := &fakeStravaClient{
			configured: true,
			exchangeFn: func(context.Context, string) (*strava.Token, error) {
				return nil, &strava.APIError{Op: "exchange", StatusCode: 400, Body: "bad code"}
			},
		}
		svc, done := newTestStravaService(t, client)
		defer done()
		user := testutil.CreateTestUser(t, svc.db)
		testutil.CreateTestSettings(t, svc.db, user.ID)

		state, err := svc.signState(user.ID)
		testutil.AssertNoError(t, err)

		_, err = svc.HandleCallback(context.Background(), "code", state)
		testutil.AssertAppError(t, err, "INTEGRATION_ERROR")

		status, err := svc.Status(user.ID)
		testutil.AssertNoError(t, err)
		if status.Connected {
			t.Error("expected still disconnected")
		}
	})
}

func TestStravaStatus(t *testing.T) {
	svc, done := newTestStravaService(t, &fakeStravaClient{configured: true})
	defer done()
	user := testutil.CreateTestUser(t, svc.db)

	status, err := svc.Status(user.ID)
	testutil.AssertNoError(t, err)
	if status.Connected || status.AthleteID != nil {
		t.Errorf("expected disconnected without settings, got %+v", status)
	}

	settings := testutil.CreateTestSettings(t, svc.db, user.ID)
	testutil.ConnectStrava(t, svc.db, settings, fixedNow.Add(time.Hour).Unix())

	status, err = svc.Status(user.ID)
	testutil.AssertNoError(t, err)
	if !status.Connected || status.AthleteID == nil || *status.AthleteID != 4242 {
		t.Errorf("expected connected athlete 4242, got %+v", status)
	}
}

func TestStravaDisconnect(t *testing.T) {
	t.Run("clears_tokens_even_if_revoke_fails", func(t *testing.T) {
		client := &fakeStravaClient{
			configured:    true,
			deauthorizeFn: func(context.Context, string) error { return errors.New("network down") },
		}
		svc, done := newTestStravaService(t, client)
		defer done()
		user := testutil.CreateTestUser(t, svc.db)
		settings := testutil.CreateTestSettings(t, svc.db, user.ID)
		testutil.ConnectStrava(t, svc.db, settings, fixedNow.Add(time.Hour).Unix())

		testutil.AssertNoError(t, svc.Disconnect(context.Background(), user.ID))

		if len(client.deauthorized) != 1 || client.deauthorized[0] != "access-token" {
			t.Errorf("expected deauthorize with stored token, got %v", client.deauthorized)
		}

		var reloaded models.UserSettings
		svc.db.Where("user_id = ?", user.ID).First(&reloaded)
		if reloaded.StravaConnected {
			t.Error("expected disconnected")
		}
		if reloaded.StravaAccessToken != nil || reloaded.StravaRefreshToken != nil ||
			reloaded.StravaTokenExpiresAt != nil || reloaded.StravaAthleteID != nil {
			t.Errorf("expected all strava fields cleared, got %+v", reloaded.StravaLink)
		}
	})

	t.Run("not_connected", func(t *testing.T) {
		svc, done := newTestStravaService(t, &fakeStravaClient{configured: true})
		defer done()
		user := testutil.CreateTestUser(t, svc.db)
		testutil.CreateTestSettings(t, svc.db, user.ID)

		err := svc.Disconnect(context.Background(), user.ID)
		testutil.AssertAppError(t, err, "STRAVA_NOT_CONNECTED")
	})
}

func TestStravaActivities(t *testing.T) {
	avgHR := 150.4

	t.Run("uses_stored_token_when_fresh", func(t *testing.T) {
		client := &fakeStravaClient{
			configured: true,
			activitiesFn: func(_ context.Context, _ string, page, perPage int) ([]strava.Activity, error) {
				if page != 1 || perPage != DefaultActivitiesPageSize {
					t.Errorf("expected page 1 size %d, got %d/%d", DefaultActivitiesPageSize, page, perPage)
				}
				return []strava.Activity{{ID: 1, Name: "Morning Run", Type: "Run", Distance: 5012.6, MovingTime: 1500, AverageSpeed: 3.34, AverageHeartrate: &avgHR}}, nil
			},
		}
		svc, done := newTestStravaService(t, client)
		defer done()
		user := testutil.CreateTestUser(t, svc.db)
		settings := testutil.CreateTestSettings(t, svc.db, user.ID)
		testutil.ConnectStrava(t, svc.db, settings, fixedNow.Add(600*time.Second).Unix())

		activities, err := svc.Activities(context.Background(), user.ID, pagination.PageRequest{})
		testutil.AssertNoError(t, err)

		if client.refreshCalls != 0 {
			t.Errorf("expected no refresh, got %d", client.refreshCalls)
		}
		if client.lastToken != "access-token" {
			t.Errorf("expected stored token, got %s", client.lastToken)
		}
		if len(activities) != 1 || activities[0].Distance != 5013 {
			t.Errorf("unexpected activities: %+v", activities)
		}
	})

	t.Run("refreshes_shortly_before_expiry", func(t *testing.T) {
		client := &fakeStravaClient{
			configured: true,
			refreshFn: func(context.Context, string) (*strava.Token, error) {
				return &strava.Token{AccessToken: "new-access", RefreshToken: "new-refresh", ExpiresAt: fixedNow.Add(6 * time.Hour).Unix()}, nil
			},
			activitiesFn: func(context.Context, string, int, int) ([]strava.Activity, error) {
				return []strava.Activity{}, nil
			},
		}
		svc, done := newTestStravaService(t, client)
		defer done()
		user := testutil.CreateTestUser(t, svc.db)
		settings := testutil.CreateTestSettings(t, svc.db, user.ID)
		testutil.ConnectStrava(t, svc.db, settings, fixedNow.Add(100*time.Second).Unix())

		_, err := svc.Activities(context.Background(), user.ID, pagination.PageRequest{})
		testutil.AssertNoError(t, err)

		if client.refreshCalls != 1 {
			t.Errorf("expected 1 refresh, got %d", client.refreshCalls)
		}
		if client.lastToken != "new-access" {
			t.Errorf("expected refreshed token, got %s", client.lastToken)
		}
	})

	t.Run("refreshes_at_window_edge", func(t *testing.T) {
		client := &fakeStravaClient{
			configured: true,
			refreshFn: func(_ context.Context, refreshToken string) (*strava.Token, error) {
				if refreshToken != "refresh-token" {
					t.Errorf("expected stored refresh token, got %s", refreshToken)
				}
				return &strava.Token{AccessToken: "new-access", RefreshToken: "new-refresh", ExpiresAt: fixedNow.Add(6 * time.Hour).Unix()}, nil
			},
			activitiesFn: func(context.Context, string, int, int) ([]strava.Activity, error) {
				return []strava.Activity{}, nil
			},
		}
		svc, done := newTestStravaService(t, client)
		defer done()
		user := testutil.CreateTestUser(t, svc.db)
		settings := testutil.CreateTestSettings(t, svc.db, user.ID)
		// Expires exactly at the edge of the refresh window.
		testutil.ConnectStrava(t, svc.db, settings, fixedNow.Add(RefreshWindow).Unix())

		_, err := svc.Activities(context.Background(), user.ID, pagination.PageRequest{Page: 2, PageSize: 5})
		testutil.AssertNoError(t, err)

		if client.refreshCalls != 1 {
			t.Errorf("expected 1 refresh, got %d", client.refreshCalls)
		}
		if client.lastToken != "new-access" {
			t.Errorf("expected refreshed token, got %s", client.lastToken)
		}

		var reloaded models.UserSettings
		svc.db.Where("user_id = ?", user.ID).First(&reloaded)
		if reloaded.StravaRefreshToken == nil || *reloaded.StravaRefreshToken != "new-refresh" {
			t.Errorf("expected refreshed token persisted, got %v", reloaded.StravaRefreshToken)
		}
		if reloaded.Version != settings.Version+1 {
			t.Errorf("expected version bump to %d, got %d", settings.Version+1, reloaded.Version)
		}
	})

	t.Run("refresh_failure", func(t *testing.T) {
		client := &fakeStravaClient{
			configured: true,
			refreshFn: func(context.Context, string) (*strava.Token, error) {
				return nil, errors.New("strava unavailable")
			},
		}
		svc, done := newTestStravaService(t, client)
		defer done()
		user := testutil.CreateTestUser(t, svc.db)
		settings := testutil.CreateTestSettings(t, svc.db, user.ID)
		testutil.ConnectStrava(t, svc.db, settings, fixedNow.Add(-time.Hour).Unix())

		_, err := svc.Activities(context.Background(), user.ID, pagination.PageRequest{})
		testutil.AssertAppError(t, err, "INTEGRATION_ERROR")
	})

	t.Run("lost_refresh_race_uses_winner_token", func(t *testing.T) {
		var svc *stravaService
		client := &fakeStravaClient{configured: true}
		client.refreshFn = func(context.Context, string) (*strava.Token, error) {
			// A concurrent request refreshes first.
			svc.db.Model(&models.UserSettings{}).Where("strava_connected = ?", true).Updates(map[string]any{
				"strava_access_token":     "winner-access",
				"strava_token_expires_at": fixedNow.Add(6 * time.Hour).Unix(),
				"version":                 100,
			})
			return &strava.Token{AccessToken: "loser-access", RefreshToken: "loser-refresh", ExpiresAt: fixedNow.Add(6 * time.Hour).Unix()}, nil
		}
		client.activitiesFn = func(context.Context, string, int, int) ([]strava.Activity, error) {
			return nil, nil
		}

		var done func()
		svc, done = newTestStravaService(t, client)
		defer done()
		user := testutil.CreateTestUser(t, svc.db)
		settings := testutil.CreateTestSettings(t, svc.db, user.ID)
		testutil.ConnectStrava(t, svc.db, settings, fixedNow.Unix())

		_, err := svc.Activities(context.Background(), user.ID, pagination.PageRequest{})
		testutil.AssertNoError(t, err)

		if client.lastToken != "winner-access" {
			t.Errorf("expected winner token, got %s", client.lastToken)
		}
	})

	t.Run("not_connected", func(t *testing.T) {
		svc, done := newTestStravaService(t, &fakeStravaClient{configured: true})
		defer done()
		user := testutil.CreateTestUser(t, svc.db)

		_, err := svc.Activities(context.Background(), user.ID, pagination.PageRequest{})
		testutil.AssertAppError(t, err, "STRAVA_NOT_CONNECTED")
	})
}

func TestStravaStats(t *testing.T) {
	client := &fakeStravaClient{
		configured: true,
		statsFn: func(_ context.Context, _ string, athleteID int64) (*strava.Stats, error) {
			if athleteID != 4242 {
				t.Errorf("expected athlete 4242, got %d", athleteID)
			}
			return &strava.Stats{AllRunTotals: strava.Totals{Count: 12, Distance: 60123.7, ElevationGain: 410.4}}, nil
		},
	}
	svc, done := newTestStravaService(t, client)
	defer done()
	user := testutil.CreateTestUser(t, svc.db)
	settings := testutil.CreateTestSettings(t, svc.db, user.ID)
	testutil.ConnectStrava(t, svc.db, settings, fixedNow.Add(time.Hour).Unix())

	stats, err := svc.Stats(context.Background(), user.ID)
	testutil.AssertNoError(t, err)

	if stats.AllTime.Activities != 12 || stats.AllTime.Distance != 60124 || stats.AllTime.Elevation != 410 {
		t.Errorf("unexpected all-time totals: %+v", stats.AllTime)
	}
	if stats.YTD.Activities != 0 {
		t.Errorf("expected empty ytd, got %+v", stats.YTD)
	}
}

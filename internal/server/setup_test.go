package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bankapp/internal/config"
	"bankapp/internal/logger"
	"bankapp/internal/notify"
	"bankapp/internal/quotes"
	"bankapp/internal/services"
	"bankapp/internal/strava"
	"bankapp/internal/testutil"
)

// testApp holds the full application stack for flow tests.
type testApp struct {
	DB        *gorm.DB
	Router    *gin.Engine
	Publisher *recordingPublisher
}

type recordingPublisher struct {
	mu   sync.Mutex
	sent []notify.Notification
}

func (p *recordingPublisher) Publish(_ context.Context, n notify.Notification) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, n)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.sent)
}

type staticQuotes struct{}

func (staticQuotes) Quotes(context.Context) quotes.Result {
	return quotes.Result{Success: true, Fallback: true, Data: []quotes.Quote{}}
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init(config.Test, "error")
}

func testConfig() *config.Config {
	return &config.Config{
		Env:         config.Test,
		FrontendURL: "http://localhost:5173",
		HTTPTimeout: time.Second,
		Server: config.ServerConfig{
			Port:        "0",
			CORSOrigins: []string{"http://localhost:5173"},
		},
		JWT: config.JWTConfig{
			Secret:    "flow-test-secret",
			ExpiresIn: time.Hour,
		},
	}
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	cfg := testConfig()
	publisher := &recordingPublisher{}
	stravaClient := strava.NewClient(http.DefaultClient, cfg.Strava)

	svc := Services{
		Users:      services.NewUserService(db),
		Goals:      services.NewGoalService(db, publisher),
		Settings:   services.NewSettingsService(db),
		Onboarding: services.NewOnboardingService(db),
		Strava:     services.NewStravaService(db, stravaClient, cfg.JWT.Secret),
		Audit:      services.NewAuditService(db),
		Stocks:     staticQuotes{},
		Crypto:     staticQuotes{},
	}

	return &testApp{DB: db, Router: NewRouter(cfg, svc), Publisher: publisher}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var result map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerUser registers a new user and returns the token and user ID.
func (app *testApp) registerUser(t *testing.T, email, password string) (token, userID string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/api/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]any)
	return result["token"].(string), user["id"].(string)
}

// loginUser logs in and returns the token.
func (app *testApp) loginUser(t *testing.T, email, password string) string {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/api/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["token"].(string)
}

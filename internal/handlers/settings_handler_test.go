package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "bankapp/internal/errors"
	"bankapp/internal/models"
	"bankapp/internal/services"
)

func setupSettingsRouter(handler *SettingsHandler) *gin.Engine {
	r := gin.New()
	s := r.Group("/settings", injectUserID(testUserID))
	s.GET("", handler.GetSettings)
	s.PUT("", handler.UpdateSettings)
	s.POST("/initialize", handler.InitializeSettings)
	return r
}

func TestSettingsHandler_GetSettings(t *testing.T) {
	t.Run("returns settings", func(t *testing.T) {
		r := setupSettingsRouter(NewSettingsHandler(&mockSettingsService{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/settings", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		settings := parseJSON(t, rec)["settings"].(map[string]any)
		if settings["daily_limit"] != float64(models.DefaultDailyLimit) {
			t.Errorf("expected default daily limit, got %v", settings["daily_limit"])
		}
		if _, leaked := settings["strava_access_token"]; leaked {
			t.Error("strava tokens must not be serialized")
		}
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		svc := &mockSettingsService{
			getSettingsFn: func(_ string) (*models.UserSettings, error) {
				return nil, apperrors.ErrSettingsNotFound
			},
		}
		r := setupSettingsRouter(NewSettingsHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/settings", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "SETTINGS_NOT_FOUND")
	})
}

func TestSettingsHandler_UpdateSettings(t *testing.T) {
	t.Run("maps partial update", func(t *testing.T) {
		audit := &mockAuditService{}
		var got services.SettingsUpdate
		svc := &mockSettingsService{
			updateSettingsFn: func(userID string, in services.SettingsUpdate) (*models.UserSettings, error) {
				got = in
				return models.NewDefaultSettings(userID), nil
			},
		}
		r := setupSettingsRouter(NewSettingsHandler(svc, audit))

		rec := doRequest(r, "PUT", "/settings", `{"daily_limit":600000,"whatsapp_notifications":true}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.DailyLimit == nil || *got.DailyLimit != 600000 {
			t.Errorf("expected daily limit 600000, got %v", got.DailyLimit)
		}
		if got.WhatsAppNotifications == nil || !*got.WhatsAppNotifications {
			t.Errorf("expected whatsapp true, got %v", got.WhatsAppNotifications)
		}
		if got.MonthlyLimit != nil || got.City != nil {
			t.Errorf("expected absent fields to stay nil, got %+v", got)
		}
		if len(audit.entries) != 1 || audit.entries[0].action != services.ActionUpdateSettings {
			t.Errorf("expected UPDATE_SETTINGS audit entry, got %+v", audit.entries)
		}
	})

	t.Run("returns 400 on limit violation", func(t *testing.T) {
		svc := &mockSettingsService{
			updateSettingsFn: func(_ string, _ services.SettingsUpdate) (*models.UserSettings, error) {
				return nil, services.ValidateLimits(models.Limits{DailyLimit: 2, MonthlyLimit: 1})
			},
		}
		r := setupSettingsRouter(NewSettingsHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/settings", `{"daily_limit":2,"monthly_limit":1}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "LIMIT_ORDER_VIOLATION")
	})

	t.Run("returns 400 on negative limit", func(t *testing.T) {
		r := setupSettingsRouter(NewSettingsHandler(&mockSettingsService{}, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/settings", `{"atm_limit":-1}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestSettingsHandler_InitializeSettings(t *testing.T) {
	t.Run("returns 201 when created", func(t *testing.T) {
		audit := &mockAuditService{}
		r := setupSettingsRouter(NewSettingsHandler(&mockSettingsService{}, audit))

		rec := doRequest(r, "POST", "/settings/initialize", "")

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", rec.Code)
		}
		if len(audit.entries) != 1 || audit.entries[0].action != services.ActionInitializeSettings {
			t.Errorf("expected INITIALIZE_SETTINGS audit entry, got %+v", audit.entries)
		}
	})

	t.Run("returns 200 when existing", func(t *testing.T) {
		audit := &mockAuditService{}
		svc := &mockSettingsService{
			initializeSettingsFn: func(userID string) (*models.UserSettings, bool, error) {
				return models.NewDefaultSettings(userID), false, nil
			},
		}
		r := setupSettingsRouter(NewSettingsHandler(svc, audit))

		rec := doRequest(r, "POST", "/settings/initialize", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if len(audit.entries) != 0 {
			t.Errorf("expected no audit entry, got %+v", audit.entries)
		}
	})
}

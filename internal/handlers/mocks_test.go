package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"bankapp/internal/middleware"
	"bankapp/internal/models"
	"bankapp/internal/pagination"
	"bankapp/internal/services"
	"bankapp/internal/strava"
	"bankapp/internal/validator"
)

const testUserID = "0190a0a0-0000-7000-8000-000000000001"

const testGoalID = "0190a0a0-0000-7000-8000-0000000000aa"

// --- mock services ---

type mockUserService struct {
	createUserFn     func(email, password string) (*models.User, error)
	getUserByEmailFn func(email string) (*models.User, error)
	getUserByIDFn    func(id string) (*models.User, error)
	verifyPasswordFn func(user *models.User, password string) bool
	attemptLoginFn   func(email, password string) (*models.User, error)
}

func (m *mockUserService) CreateUser(email, password string) (*models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(email, password)
	}
	return &models.User{}, nil
}

func (m *mockUserService) GetUserByEmail(email string) (*models.User, error) {
	if m.getUserByEmailFn != nil {
		return m.getUserByEmailFn(email)
	}
	return &models.User{}, nil
}

func (m *mockUserService) GetUserByID(id string) (*models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(id)
	}
	return &models.User{}, nil
}

func (m *mockUserService) VerifyPassword(user *models.User, password string) bool {
	if m.verifyPasswordFn != nil {
		return m.verifyPasswordFn(user, password)
	}
	return true
}

func (m *mockUserService) AttemptLogin(email, password string) (*models.User, error) {
	if m.attemptLoginFn != nil {
		return m.attemptLoginFn(email, password)
	}
	return &models.User{}, nil
}

type mockGoalService struct {
	listGoalsFn  func(userID string) ([]models.Goal, error)
	getGoalFn    func(userID, goalID string) (*models.Goal, error)
	createGoalFn func(userID string, in services.GoalInput) (*models.Goal, error)
	updateGoalFn func(userID, goalID string, in services.GoalUpdate) (*models.Goal, error)
	deleteGoalFn func(userID, goalID string) error
	saveToGoalFn func(userID, goalID string, amount int64) (*models.Goal, error)
}

func (m *mockGoalService) ListGoals(userID string) ([]models.Goal, error) {
	if m.listGoalsFn != nil {
		return m.listGoalsFn(userID)
	}
	return []models.Goal{}, nil
}

func (m *mockGoalService) GetGoal(userID, goalID string) (*models.Goal, error) {
	if m.getGoalFn != nil {
		return m.getGoalFn(userID, goalID)
	}
	return &models.Goal{}, nil
}

func (m *mockGoalService) CreateGoal(userID string, in services.GoalInput) (*models.Goal, error) {
	if m.createGoalFn != nil {
		return m.createGoalFn(userID, in)
	}
	return &models.Goal{}, nil
}

func (m *mockGoalService) UpdateGoal(_ context.Context, userID, goalID string, in services.GoalUpdate) (*models.Goal, error) {
	if m.updateGoalFn != nil {
		return m.updateGoalFn(userID, goalID, in)
	}
	return &models.Goal{}, nil
}

func (m *mockGoalService) DeleteGoal(userID, goalID string) error {
	if m.deleteGoalFn != nil {
		return m.deleteGoalFn(userID, goalID)
	}
	return nil
}

func (m *mockGoalService) SaveToGoal(_ context.Context, userID, goalID string, amount int64) (*models.Goal, error) {
	if m.saveToGoalFn != nil {
		return m.saveToGoalFn(userID, goalID, amount)
	}
	return &models.Goal{}, nil
}

type mockSettingsService struct {
	getSettingsFn        func(userID string) (*models.UserSettings, error)
	updateSettingsFn     func(userID string, in services.SettingsUpdate) (*models.UserSettings, error)
	initializeSettingsFn func(userID string) (*models.UserSettings, bool, error)
}

func (m *mockSettingsService) GetSettings(userID string) (*models.UserSettings, error) {
	if m.getSettingsFn != nil {
		return m.getSettingsFn(userID)
	}
	return models.NewDefaultSettings(userID), nil
}

func (m *mockSettingsService) UpdateSettings(userID string, in services.SettingsUpdate) (*models.UserSettings, error) {
	if m.updateSettingsFn != nil {
		return m.updateSettingsFn(userID, in)
	}
	return models.NewDefaultSettings(userID), nil
}

func (m *mockSettingsService) InitializeSettings(userID string) (*models.UserSettings, bool, error) {
	if m.initializeSettingsFn != nil {
		return m.initializeSettingsFn(userID)
	}
	return models.NewDefaultSettings(userID), true, nil
}

type mockOnboardingService struct {
	getStatusFn         func(userID string) (*services.OnboardingStatus, error)
	saveProfileFn       func(userID string, in services.ProfileInput) (*models.User, error)
	saveAddressFn       func(userID string, in services.AddressInput) (*models.UserSettings, *models.User, error)
	completeFn          func(userID string) (*models.User, error)
	usernameAvailableFn func(username string) (bool, error)
}

func (m *mockOnboardingService) GetStatus(userID string) (*services.OnboardingStatus, error) {
	if m.getStatusFn != nil {
		return m.getStatusFn(userID)
	}
	return &services.OnboardingStatus{}, nil
}

func (m *mockOnboardingService) SaveProfile(userID string, in services.ProfileInput) (*models.User, error) {
	if m.saveProfileFn != nil {
		return m.saveProfileFn(userID, in)
	}
	return &models.User{}, nil
}

func (m *mockOnboardingService) SaveAddress(userID string, in services.AddressInput) (*models.UserSettings, *models.User, error) {
	if m.saveAddressFn != nil {
		return m.saveAddressFn(userID, in)
	}
	return models.NewDefaultSettings(userID), &models.User{}, nil
}

func (m *mockOnboardingService) Complete(userID string) (*models.User, error) {
	if m.completeFn != nil {
		return m.completeFn(userID)
	}
	return &models.User{}, nil
}

func (m *mockOnboardingService) UsernameAvailable(username string) (bool, error) {
	if m.usernameAvailableFn != nil {
		return m.usernameAvailableFn(username)
	}
	return true, nil
}

type mockStravaService struct {
	authURLFn        func(userID string) (string, error)
	handleCallbackFn func(code, state string) (string, error)
	disconnectFn     func(userID string) error
	statusFn         func(userID string) (*services.StravaStatus, error)
	activitiesFn     func(userID string, page pagination.PageRequest) ([]strava.ActivitySummary, error)
	statsFn          func(userID string) (*strava.StatsSummary, error)
}

func (m *mockStravaService) AuthURL(userID string) (string, error) {
	if m.authURLFn != nil {
		return m.authURLFn(userID)
	}
	return "https://www.strava.com/oauth/authorize", nil
}

func (m *mockStravaService) HandleCallback(_ context.Context, code, state string) (string, error) {
	if m.handleCallbackFn != nil {
		return m.handleCallbackFn(code, state)
	}
	return testUserID, nil
}

func (m *mockStravaService) Disconnect(_ context.Context, userID string) error {
	if m.disconnectFn != nil {
		return m.disconnectFn(userID)
	}
	return nil
}

func (m *mockStravaService) Status(userID string) (*services.StravaStatus, error) {
	if m.statusFn != nil {
		return m.statusFn(userID)
	}
	return &services.StravaStatus{}, nil
}

func (m *mockStravaService) Activities(_ context.Context, userID string, page pagination.PageRequest) ([]strava.ActivitySummary, error) {
	if m.activitiesFn != nil {
		return m.activitiesFn(userID, page)
	}
	return []strava.ActivitySummary{}, nil
}

func (m *mockStravaService) Stats(_ context.Context, userID string) (*strava.StatsSummary, error) {
	if m.statsFn != nil {
		return m.statsFn(userID)
	}
	return &strava.StatsSummary{}, nil
}

type auditEntry struct {
	userID, action, resourceType, resourceID string
	changes                                  map[string]any
}

type mockAuditService struct {
	entries []auditEntry
	listFn  func(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error)
}

func (m *mockAuditService) Log(userID, action, resourceType, resourceID, _ string, changes map[string]any) {
	m.entries = append(m.entries, auditEntry{userID, action, resourceType, resourceID, changes})
}

func (m *mockAuditService) ListLogs(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error) {
	if m.listFn != nil {
		return m.listFn(userID, page)
	}
	result := pagination.NewPageResponse[models.AuditLog](nil, page, 0)
	return &result, nil
}

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func injectUserID(uid string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, uid)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var result map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]any, code string) {
	t.Helper()
	if _, ok := result["error"].(string); !ok {
		t.Fatalf("expected error message in response, got: %v", result)
	}
	if result["code"] != code {
		t.Errorf("expected error code %q, got %q", code, result["code"])
	}
}

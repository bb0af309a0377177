package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bankapp/internal/models"
)

// TestPassword is the plain-text password of every fixture user.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:         email,
		PasswordHash:  string(hash),
		AccountStatus: models.AccountStatusPending,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestSettings creates the default settings row for a user.
func CreateTestSettings(t *testing.T, db *gorm.DB, userID string) *models.UserSettings {
	t.Helper()

	settings := models.NewDefaultSettings(userID)
	if err := db.Create(settings).Error; err != nil {
		t.Fatalf("failed to create test settings: %v", err)
	}
	return settings
}

// CreateTestGoal creates an active goal with the given target and current amounts (in cents).
func CreateTestGoal(t *testing.T, db *gorm.DB, userID string, target, current int64) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		UserID:        userID,
		Title:         fmt.Sprintf("Test Goal %d", nextID()),
		TargetAmount:  target,
		CurrentAmount: current,
		Category:      models.DefaultGoalCategory,
		Icon:          models.DefaultGoalIcon,
		Color:         models.DefaultGoalColor,
		Status:        models.GoalStatusActive,
		Version:       1,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}

// ConnectStrava stores a Strava grant on the user's settings row.
func ConnectStrava(t *testing.T, db *gorm.DB, settings *models.UserSettings, expiresAt int64) {
	t.Helper()

	access, refresh, athlete := "access-token", "refresh-token", int64(4242)
	settings.StravaAccessToken = &access
	settings.StravaRefreshToken = &refresh
	settings.StravaTokenExpiresAt = &expiresAt
	settings.StravaAthleteID = &athlete
	settings.StravaConnected = true
	if err := db.Save(settings).Error; err != nil {
		t.Fatalf("failed to connect strava: %v", err)
	}
}

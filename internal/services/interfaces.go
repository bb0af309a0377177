package services

import (
	"context"

	"gorm.io/datatypes"

	"bankapp/internal/models"
	"bankapp/internal/pagination"
	"bankapp/internal/strava"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
}

// GoalInput holds the fields for creating a goal. Zero values for Category,
// Icon, Color and Status are replaced with defaults.
type GoalInput struct {
	Title         string
	Description   *string
	TargetAmount  int64
	CurrentAmount int64
	TargetDate    *datatypes.Date
	Category      string
	Icon          string
	Color         string
	Status        models.GoalStatus
}

// GoalUpdate holds a partial goal update. Only non-nil fields are applied.
type GoalUpdate struct {
	Title         *string
	Description   *string
	TargetAmount  *int64
	CurrentAmount *int64
	TargetDate    *datatypes.Date
	Category      *string
	Icon          *string
	Color         *string
	Status        *models.GoalStatus
}

// GoalServicer defines the contract for savings goal business logic.
type GoalServicer interface {
	ListGoals(userID string) ([]models.Goal, error)
	GetGoal(userID, goalID string) (*models.Goal, error)
	CreateGoal(userID string, in GoalInput) (*models.Goal, error)
	UpdateGoal(ctx context.Context, userID, goalID string, in GoalUpdate) (*models.Goal, error)
	DeleteGoal(userID, goalID string) error
	SaveToGoal(ctx context.Context, userID, goalID string, amount int64) (*models.Goal, error)
}

// SettingsUpdate holds a partial settings update. Only non-nil fields are applied.
type SettingsUpdate struct {
	StreetAddress *string
	City          *string
	PostalCode    *string
	Country       *string

	DailyLimit           *int64
	MonthlyLimit         *int64
	MobileAppLimit       *int64
	InternetBankingLimit *int64
	ATMLimit             *int64

	CardEnabled                      *bool
	ContactlessEnabled               *bool
	OnlinePaymentsEnabled            *bool
	InternationalTransactionsEnabled *bool

	EmailNotifications    *bool
	SMSNotifications      *bool
	WhatsAppNotifications *bool
	InAppNotifications    *bool
}

// SettingsServicer defines the contract for user settings business logic.
type SettingsServicer interface {
	GetSettings(userID string) (*models.UserSettings, error)
	UpdateSettings(userID string, in SettingsUpdate) (*models.UserSettings, error)
	// InitializeSettings returns the existing row, or creates the default one.
	// created reports which happened.
	InitializeSettings(userID string) (settings *models.UserSettings, created bool, err error)
}

// ProfileInput is the first onboarding step.
type ProfileInput struct {
	Username    string
	FirstName   string
	LastName    string
	PhoneNumber *string
	DateOfBirth *datatypes.Date
}

// AddressInput is the second onboarding step. A nil Country keeps the current one.
type AddressInput struct {
	StreetAddress string
	City          string
	PostalCode    string
	Country       *string
}

// OnboardingStatus summarizes where a user is in onboarding.
type OnboardingStatus struct {
	OnboardingCompleted bool                 `json:"onboarding_completed"`
	OnboardingStep      int                  `json:"onboarding_step"`
	AccountStatus       models.AccountStatus `json:"account_status"`
	Profile             *models.User         `json:"profile"`
}

// OnboardingServicer defines the contract for the onboarding flow.
type OnboardingServicer interface {
	GetStatus(userID string) (*OnboardingStatus, error)
	SaveProfile(userID string, in ProfileInput) (*models.User, error)
	SaveAddress(userID string, in AddressInput) (*models.UserSettings, *models.User, error)
	Complete(userID string) (*models.User, error)
	UsernameAvailable(username string) (bool, error)
}

// StravaStatus is the connection state reported to the client.
type StravaStatus struct {
	Connected bool   `json:"connected"`
	AthleteID *int64 `json:"athleteId"`
}

// StravaServicer defines the contract for the Strava OAuth flow and data access.
type StravaServicer interface {
	AuthURL(userID string) (string, error)
	// HandleCallback verifies state, exchanges the code and stores the grant.
	// It returns the user the state was issued for.
	HandleCallback(ctx context.Context, code, state string) (string, error)
	Disconnect(ctx context.Context, userID string) error
	Status(userID string) (*StravaStatus, error)
	Activities(ctx context.Context, userID string, page pagination.PageRequest) ([]strava.ActivitySummary, error)
	Stats(ctx context.Context, userID string) (*strava.StatsSummary, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]any)
	ListLogs(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error)
}

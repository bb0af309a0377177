package models

// Default settings applied when a row is created for a new user.
const (
	DefaultCountry              = "South Africa"
	DefaultDailyLimit           = 500000
	DefaultMonthlyLimit         = 5000000
	DefaultMobileAppLimit       = 300000
	DefaultInternetBankingLimit = 1000000
	DefaultATMLimit             = 200000
)

// Limits groups the five transaction limits, all in cents.
type Limits struct {
	DailyLimit           int64 `gorm:"not null" json:"daily_limit"`
	MonthlyLimit         int64 `gorm:"not null" json:"monthly_limit"`
	MobileAppLimit       int64 `gorm:"not null" json:"mobile_app_limit"`
	InternetBankingLimit int64 `gorm:"not null" json:"internet_banking_limit"`
	ATMLimit             int64 `gorm:"column:atm_limit;not null" json:"atm_limit"`
}

// StravaLink holds the stored OAuth grant for a user's Strava account.
type StravaLink struct {
	StravaAccessToken    *string `gorm:"column:strava_access_token" json:"-"`
	StravaRefreshToken   *string `gorm:"column:strava_refresh_token" json:"-"`
	StravaTokenExpiresAt *int64  `gorm:"column:strava_token_expires_at" json:"-"`
	StravaAthleteID      *int64  `gorm:"column:strava_athlete_id" json:"strava_athlete_id"`
	StravaConnected      bool    `gorm:"column:strava_connected;not null;default:false" json:"strava_connected"`
}

// UserSettings is one-to-one with User. The limit invariants are enforced by
// services.ValidateLimits before every write, not by the database.
type UserSettings struct {
	Base
	UserID        string  `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	StreetAddress *string `gorm:"size:255" json:"street_address"`
	City          *string `gorm:"size:100" json:"city"`
	PostalCode    *string `gorm:"size:20" json:"postal_code"`
	Country       string  `gorm:"size:100;not null" json:"country"`

	Limits `gorm:"embedded"`

	CardEnabled                      bool `gorm:"not null" json:"card_enabled"`
	ContactlessEnabled               bool `gorm:"not null" json:"contactless_enabled"`
	OnlinePaymentsEnabled            bool `gorm:"not null" json:"online_payments_enabled"`
	InternationalTransactionsEnabled bool `gorm:"not null" json:"international_transactions_enabled"`

	EmailNotifications    bool `gorm:"not null" json:"email_notifications"`
	SMSNotifications      bool `gorm:"column:sms_notifications;not null" json:"sms_notifications"`
	WhatsAppNotifications bool `gorm:"column:whatsapp_notifications;not null" json:"whatsapp_notifications"`
	InAppNotifications    bool `gorm:"not null" json:"in_app_notifications"`

	StravaLink `gorm:"embedded"`

	Version int `gorm:"not null;default:1" json:"-"`
}

// TableName pins the table name used by both migrations and AutoMigrate.
func (UserSettings) TableName() string { return "user_settings" }

// NewDefaultSettings returns the settings row every new user starts with.
func NewDefaultSettings(userID string) *UserSettings {
	return &UserSettings{
		UserID:  userID,
		Country: DefaultCountry,
		Limits: Limits{
			DailyLimit:           DefaultDailyLimit,
			MonthlyLimit:         DefaultMonthlyLimit,
			MobileAppLimit:       DefaultMobileAppLimit,
			InternetBankingLimit: DefaultInternetBankingLimit,
			ATMLimit:             DefaultATMLimit,
		},
		CardEnabled:           true,
		ContactlessEnabled:    true,
		OnlinePaymentsEnabled: true,
		EmailNotifications:    true,
		SMSNotifications:      true,
		InAppNotifications:    true,
		Version:               1,
	}
}

// HasAddress reports whether the address onboarding step has been filled in.
func (s *UserSettings) HasAddress() bool {
	return nonEmpty(s.StreetAddress) && nonEmpty(s.City) && nonEmpty(s.PostalCode)
}

func nonEmpty(s *string) bool {
	return s != nil && *s != ""
}

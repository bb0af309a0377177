package services

import (
	"errors"
	"fmt"
	"math"

	"gorm.io/gorm"

	apperrors "bankapp/internal/errors"
	"bankapp/internal/models"
)

// Limit violation reasons reported by ValidateLimits.
const (
	ReasonDailyOverMonthly = "daily>monthly"
	ReasonSumOverMonthly   = "sum>monthly"
)

// ValidateLimits checks the ordering invariants between the transaction limits:
// the daily limit may not exceed the monthly limit, and the daily, mobile app,
// internet banking and ATM limits together may not exceed it either.
func ValidateLimits(l models.Limits) error {
	if l.DailyLimit > l.MonthlyLimit {
		return limitViolation(ReasonDailyOverMonthly,
			fmt.Sprintf("Daily limit (%d) cannot exceed monthly limit (%d)", l.DailyLimit, l.MonthlyLimit))
	}

	remaining := subClamped(l.MonthlyLimit, l.DailyLimit)
	for _, v := range []int64{l.MobileAppLimit, l.InternetBankingLimit, l.ATMLimit} {
		if v > remaining {
			return limitViolation(ReasonSumOverMonthly,
				fmt.Sprintf("Combined daily, mobile app, internet banking and ATM limits cannot exceed monthly limit (%d)", l.MonthlyLimit))
		}
		remaining = subClamped(remaining, v)
	}
	return nil
}

// subClamped returns a-b, clamped to math.MaxInt64. Callers guarantee a >= b
// whenever b is non-negative, so only a negative b can overflow.
func subClamped(a, b int64) int64 {
	if b < 0 && a > math.MaxInt64+b {
		return math.MaxInt64
	}
	return a - b
}

func limitViolation(reason, message string) *apperrors.AppError {
	err := apperrors.WithMessage(apperrors.ErrLimitOrderViolation, message)
	err.Internal = errors.New(reason)
	return err
}

func checkNonNegative(l models.Limits) error {
	for _, f := range []struct {
		name  string
		value int64
	}{
		{"daily_limit", l.DailyLimit},
		{"monthly_limit", l.MonthlyLimit},
		{"mobile_app_limit", l.MobileAppLimit},
		{"internet_banking_limit", l.InternetBankingLimit},
		{"atm_limit", l.ATMLimit},
	} {
		if f.value < 0 {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, f.name+" must not be negative")
		}
	}
	return nil
}

// settingsService handles user settings business logic.
type settingsService struct {
	db *gorm.DB
}

// NewSettingsService creates a new SettingsServicer.
func NewSettingsService(db *gorm.DB) SettingsServicer {
	return &settingsService{db: db}
}

// GetSettings retrieves the user's settings row.
func (s *settingsService) GetSettings(userID string) (*models.UserSettings, error) {
	return findSettings(s.db, userID)
}

// UpdateSettings merges in into the stored row, validates the limits of the
// merged result and writes the changed columns under the version guard.
func (s *settingsService) UpdateSettings(userID string, in SettingsUpdate) (*models.UserSettings, error) {
	settings, err := findSettings(s.db, userID)
	if err != nil {
		return nil, err
	}

	updates := applySettingsUpdate(settings, in)
	if err := checkNonNegative(settings.Limits); err != nil {
		return nil, err
	}
	if err := ValidateLimits(settings.Limits); err != nil {
		return nil, err
	}
	if len(updates) == 0 {
		return settings, nil
	}
	updates["version"] = gorm.Expr("version + 1")

	result := s.db.Model(&models.UserSettings{}).
		Where("id = ? AND version = ?", settings.ID, settings.Version).
		Updates(updates)
	if result.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.ErrConflict
	}

	return findSettings(s.db, userID)
}

// InitializeSettings creates the default settings row if the user has none.
func (s *settingsService) InitializeSettings(userID string) (*models.UserSettings, bool, error) {
	existing, err := findSettings(s.db, userID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, apperrors.ErrSettingsNotFound) {
		return nil, false, err
	}

	settings := models.NewDefaultSettings(userID)
	if err := s.db.Create(settings).Error; err != nil {
		// Lost a race with a concurrent initialize; return the winner's row.
		if existing, findErr := findSettings(s.db, userID); findErr == nil {
			return existing, false, nil
		}
		return nil, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return settings, true, nil
}

// applySettingsUpdate copies the non-nil fields of in onto settings and
// returns the matching column updates.
func applySettingsUpdate(settings *models.UserSettings, in SettingsUpdate) map[string]any {
	updates := map[string]any{}

	setString := func(column string, dst **string, v *string) {
		if v != nil {
			*dst = v
			updates[column] = *v
		}
	}
	setInt := func(column string, dst *int64, v *int64) {
		if v != nil {
			*dst = *v
			updates[column] = *v
		}
	}
	setBool := func(column string, dst *bool, v *bool) {
		if v != nil {
			*dst = *v
			updates[column] = *v
		}
	}

	setString("street_address", &settings.StreetAddress, in.StreetAddress)
	setString("city", &settings.City, in.City)
	setString("postal_code", &settings.PostalCode, in.PostalCode)
	if in.Country != nil {
		settings.Country = *in.Country
		updates["country"] = *in.Country
	}

	setInt("daily_limit", &settings.DailyLimit, in.DailyLimit)
	setInt("monthly_limit", &settings.MonthlyLimit, in.MonthlyLimit)
	setInt("mobile_app_limit", &settings.MobileAppLimit, in.MobileAppLimit)
	setInt("internet_banking_limit", &settings.InternetBankingLimit, in.InternetBankingLimit)
	setInt("atm_limit", &settings.ATMLimit, in.ATMLimit)

	setBool("card_enabled", &settings.CardEnabled, in.CardEnabled)
	setBool("contactless_enabled", &settings.ContactlessEnabled, in.ContactlessEnabled)
	setBool("online_payments_enabled", &settings.OnlinePaymentsEnabled, in.OnlinePaymentsEnabled)
	setBool("international_transactions_enabled", &settings.InternationalTransactionsEnabled, in.InternationalTransactionsEnabled)

	setBool("email_notifications", &settings.EmailNotifications, in.EmailNotifications)
	setBool("sms_notifications", &settings.SMSNotifications, in.SMSNotifications)
	setBool("whatsapp_notifications", &settings.WhatsAppNotifications, in.WhatsAppNotifications)
	setBool("in_app_notifications", &settings.InAppNotifications, in.InAppNotifications)

	return updates
}

// findSettings loads the settings row for a user.
func findSettings(db *gorm.DB, userID string) (*models.UserSettings, error) {
	var settings models.UserSettings
	if err := db.Where("user_id = ?", userID).First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSettingsNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &settings, nil
}

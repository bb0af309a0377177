package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "bankapp/internal/errors"
	"bankapp/internal/models"
	"bankapp/internal/validator"
)

// UsernameRules is the message shown when a username is malformed.
const UsernameRules = "Username must be 3-50 characters and contain only letters, numbers, underscores, or hyphens"

// onboardingService handles the multi-step onboarding flow.
type onboardingService struct {
	db *gorm.DB
}

// NewOnboardingService creates a new OnboardingServicer.
func NewOnboardingService(db *gorm.DB) OnboardingServicer {
	return &onboardingService{db: db}
}

// GetStatus reports the user's onboarding progress and profile.
func (s *onboardingService) GetStatus(userID string) (*OnboardingStatus, error) {
	user, err := findUser(s.db, userID)
	if err != nil {
		return nil, err
	}
	return &OnboardingStatus{
		OnboardingCompleted: user.OnboardingCompleted,
		OnboardingStep:      user.OnboardingStep,
		AccountStatus:       user.AccountStatus,
		Profile:             user,
	}, nil
}

// SaveProfile stores the personal information step.
func (s *onboardingService) SaveProfile(userID string, in ProfileInput) (*models.User, error) {
	username := strings.TrimSpace(in.Username)
	firstName := strings.TrimSpace(in.FirstName)
	lastName := strings.TrimSpace(in.LastName)
	if username == "" || firstName == "" || lastName == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Username, first name, and last name are required")
	}
	if !validator.UsernamePattern.MatchString(username) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, UsernameRules)
	}

	var user *models.User
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var taken int64
		if err := tx.Model(&models.User{}).
			Where("username = ? AND id <> ?", username, userID).
			Count(&taken).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if taken > 0 {
			return apperrors.ErrDuplicateUsername
		}

		current, err := findUser(tx, userID)
		if err != nil {
			return err
		}

		updates := map[string]any{
			"username":        username,
			"first_name":      firstName,
			"last_name":       lastName,
			"phone_number":    "",
			"date_of_birth":   nil,
			"onboarding_step": max(current.OnboardingStep, models.OnboardingStepProfile),
		}
		if in.PhoneNumber != nil {
			updates["phone_number"] = strings.TrimSpace(*in.PhoneNumber)
		}
		if in.DateOfBirth != nil {
			updates["date_of_birth"] = *in.DateOfBirth
		}

		if err := tx.Model(current).Updates(updates).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		user, err = findUser(tx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// SaveAddress stores the address step, creating the settings row if needed.
func (s *onboardingService) SaveAddress(userID string, in AddressInput) (*models.UserSettings, *models.User, error) {
	street := strings.TrimSpace(in.StreetAddress)
	city := strings.TrimSpace(in.City)
	postal := strings.TrimSpace(in.PostalCode)
	if street == "" || city == "" || postal == "" {
		return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Street address, city, and postal code are required")
	}

	var settings *models.UserSettings
	var user *models.User
	err := s.db.Transaction(func(tx *gorm.DB) error {
		current, err := findUser(tx, userID)
		if err != nil {
			return err
		}

		settings, err = findSettings(tx, userID)
		switch {
		case errors.Is(err, apperrors.ErrSettingsNotFound):
			settings = models.NewDefaultSettings(userID)
			settings.StreetAddress, settings.City, settings.PostalCode = &street, &city, &postal
			if in.Country != nil && strings.TrimSpace(*in.Country) != "" {
				settings.Country = strings.TrimSpace(*in.Country)
			}
			if err := tx.Create(settings).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		case err != nil:
			return err
		default:
			updates := map[string]any{
				"street_address": street,
				"city":           city,
				"postal_code":    postal,
				"version":        gorm.Expr("version + 1"),
			}
			if in.Country != nil && strings.TrimSpace(*in.Country) != "" {
				updates["country"] = strings.TrimSpace(*in.Country)
			}
			if err := tx.Model(&models.UserSettings{}).Where("id = ?", settings.ID).Updates(updates).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			if settings, err = findSettings(tx, userID); err != nil {
				return err
			}
		}

		step := max(current.OnboardingStep, models.OnboardingStepAddress)
		if err := tx.Model(current).Update("onboarding_step", step).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		user, err = findUser(tx, userID)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return settings, user, nil
}

// Complete finishes onboarding once the profile and address steps are filled in.
func (s *onboardingService) Complete(userID string) (*models.User, error) {
	user, err := findUser(s.db, userID)
	if err != nil {
		return nil, err
	}

	if user.Username == nil || *user.Username == "" || user.FirstName == "" || user.LastName == "" {
		return nil, apperrors.WithMessage(apperrors.ErrOnboardingIncomplete,
			"Please complete all required steps before finishing onboarding")
	}

	settings, err := findSettings(s.db, userID)
	if err != nil && !errors.Is(err, apperrors.ErrSettingsNotFound) {
		return nil, err
	}
	if settings == nil || !settings.HasAddress() {
		return nil, apperrors.WithMessage(apperrors.ErrOnboardingIncomplete,
			"Please complete address information before finishing onboarding")
	}

	if err := s.db.Model(user).Updates(map[string]any{
		"onboarding_completed": true,
		"onboarding_step":      models.OnboardingStepComplete,
		"account_status":       models.AccountStatusActive,
	}).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return findUser(s.db, userID)
}

// UsernameAvailable reports whether username is well-formed and unused.
func (s *onboardingService) UsernameAvailable(username string) (bool, error) {
	if !validator.UsernamePattern.MatchString(username) {
		return false, apperrors.WithMessage(apperrors.ErrInvalidInput, UsernameRules)
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return count == 0, nil
}

// findUser loads a user by ID.
func findUser(db *gorm.DB, userID string) (*models.User, error) {
	var user models.User
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

package models

import "gorm.io/datatypes"

// AccountStatus tracks where a user is in the account lifecycle.
type AccountStatus string

// Account statuses.
const (
	AccountStatusPending AccountStatus = "pending"
	AccountStatusActive  AccountStatus = "active"
)

// Onboarding steps. A user finishes the profile step and the address step
// before onboarding can be completed.
const (
	OnboardingStepProfile  = 1
	OnboardingStepAddress  = 2
	OnboardingStepComplete = 3
)

// User is a registered customer. Users are never hard-deleted.
type User struct {
	Base
	Email               string          `gorm:"uniqueIndex;not null;size:255" json:"email"`
	PasswordHash        string          `gorm:"not null" json:"-"`
	Username            *string         `gorm:"uniqueIndex;size:50" json:"username"`
	FirstName           string          `gorm:"size:100" json:"first_name"`
	LastName            string          `gorm:"size:100" json:"last_name"`
	PhoneNumber         string          `gorm:"size:20" json:"phone_number"`
	DateOfBirth         *datatypes.Date `json:"date_of_birth"`
	ProfilePictureURL   string          `json:"profile_picture_url"`
	OnboardingStep      int             `gorm:"not null;default:0" json:"onboarding_step"`
	OnboardingCompleted bool            `gorm:"not null;default:false" json:"onboarding_completed"`
	AccountStatus       AccountStatus   `gorm:"size:20;not null;default:'pending'" json:"account_status"`
	Settings            *UserSettings   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Goals               []Goal          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

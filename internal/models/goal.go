package models

import "gorm.io/datatypes"

// GoalStatus is the lifecycle state of a savings goal.
type GoalStatus string

// Goal statuses.
const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusPaused    GoalStatus = "paused"
)

// Valid reports whether s is one of the known statuses.
func (s GoalStatus) Valid() bool {
	switch s {
	case GoalStatusActive, GoalStatusCompleted, GoalStatusPaused:
		return true
	}
	return false
}

// Goal defaults.
const (
	DefaultGoalCategory = "Other"
	DefaultGoalIcon     = "🎯"
	DefaultGoalColor    = "blue"
)

// Goal is a savings target owned by a user. Amounts are in cents.
// Version increments on every write and guards concurrent read-modify-write.
type Goal struct {
	Base
	UserID        string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Title         string          `gorm:"size:255;not null" json:"title"`
	Description   *string         `gorm:"type:text" json:"description"`
	TargetAmount  int64           `gorm:"not null" json:"target_amount"`
	CurrentAmount int64           `gorm:"not null;default:0" json:"current_amount"`
	TargetDate    *datatypes.Date `json:"target_date"`
	Category      string          `gorm:"size:100;not null" json:"category"`
	Icon          string          `gorm:"size:10" json:"icon"`
	Color         string          `gorm:"size:50" json:"color"`
	Status        GoalStatus      `gorm:"size:20;not null" json:"status"`
	Version       int             `gorm:"not null;default:1" json:"version"`
}

// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"bankapp/internal/models"
)

// DateLayout is the wire format for date-only fields.
const DateLayout = "2006-01-02"

// UsernamePattern is the allowed shape of a username.
var UsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,50}$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("goal_status", validateGoalStatus)
		_ = v.RegisterValidation("username", validateUsername)
		_ = v.RegisterValidation("iso_date", validateISODate)
	}
}

func validateGoalStatus(fl validator.FieldLevel) bool {
	return models.GoalStatus(fl.Field().String()).Valid()
}

func validateUsername(fl validator.FieldLevel) bool {
	return UsernamePattern.MatchString(fl.Field().String())
}

// validateISODate accepts a plain date or a full RFC 3339 timestamp.
func validateISODate(fl validator.FieldLevel) bool {
	_, err := ParseDate(fl.Field().String())
	return err == nil
}

// ParseDate parses a date-only or RFC 3339 value and truncates it to the day.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

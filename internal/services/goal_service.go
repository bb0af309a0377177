package services

import (
	"context"
	"errors"
	"math"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "bankapp/internal/errors"
	"bankapp/internal/logger"
	"bankapp/internal/models"
	"bankapp/internal/notify"
)

// goalService handles savings goal business logic.
type goalService struct {
	db        *gorm.DB
	publisher notify.Publisher
}

// NewGoalService creates a new GoalServicer. Completed goals are announced
// through publisher.
func NewGoalService(db *gorm.DB, publisher notify.Publisher) GoalServicer {
	return &goalService{db: db, publisher: publisher}
}

// ListGoals returns all of the user's goals, newest first.
func (s *goalService) ListGoals(userID string) ([]models.Goal, error) {
	goals := []models.Goal{}
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goals, nil
}

// GetGoal retrieves a goal owned by the user.
func (s *goalService) GetGoal(userID, goalID string) (*models.Goal, error) {
	return findGoal(s.db, userID, goalID)
}

// CreateGoal creates a new goal, filling in defaults for omitted fields.
func (s *goalService) CreateGoal(userID string, in GoalInput) (*models.Goal, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title is required")
	}
	if in.TargetAmount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must not be negative")
	}
	if in.CurrentAmount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "current amount must not be negative")
	}

	status := in.Status
	if status == "" {
		status = models.GoalStatusActive
	}
	if !status.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "status must be one of active, completed, paused")
	}

	goal := &models.Goal{
		UserID:        userID,
		Title:         title,
		Description:   in.Description,
		TargetAmount:  in.TargetAmount,
		CurrentAmount: in.CurrentAmount,
		TargetDate:    in.TargetDate,
		Category:      orDefault(in.Category, models.DefaultGoalCategory),
		Icon:          orDefault(in.Icon, models.DefaultGoalIcon),
		Color:         orDefault(in.Color, models.DefaultGoalColor),
		Status:        status,
		Version:       1,
	}

	if err := s.db.Create(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goal, nil
}

// UpdateGoal applies the non-nil fields of in. The write is rejected with
// ErrConflict if the goal changed since it was read.
func (s *goalService) UpdateGoal(ctx context.Context, userID, goalID string, in GoalUpdate) (*models.Goal, error) {
	db := s.db.WithContext(ctx)

	goal, err := findGoal(db, userID, goalID)
	if err != nil {
		return nil, err
	}
	wasCompleted := goal.Status == models.GoalStatusCompleted

	updates := map[string]any{}
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title must not be empty")
		}
		updates["title"] = title
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.TargetAmount != nil {
		if *in.TargetAmount < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must not be negative")
		}
		updates["target_amount"] = *in.TargetAmount
	}
	if in.CurrentAmount != nil {
		if *in.CurrentAmount < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "current amount must not be negative")
		}
		updates["current_amount"] = *in.CurrentAmount
	}
	if in.TargetDate != nil {
		updates["target_date"] = *in.TargetDate
	}
	if in.Category != nil {
		updates["category"] = *in.Category
	}
	if in.Icon != nil {
		updates["icon"] = *in.Icon
	}
	if in.Color != nil {
		updates["color"] = *in.Color
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "status must be one of active, completed, paused")
		}
		updates["status"] = *in.Status
	}

	if len(updates) == 0 {
		return goal, nil
	}
	updates["version"] = gorm.Expr("version + 1")

	result := db.Model(&models.Goal{}).
		Where("id = ? AND user_id = ? AND version = ?", goal.ID, userID, goal.Version).
		Updates(updates)
	if result.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.ErrConflict
	}

	updated, err := findGoal(db, userID, goalID)
	if err != nil {
		return nil, err
	}

	if !wasCompleted && updated.Status == models.GoalStatusCompleted {
		s.notifyCompleted(ctx, updated)
	}
	return updated, nil
}

// DeleteGoal permanently removes a goal owned by the user.
func (s *goalService) DeleteGoal(userID, goalID string) error {
	result := s.db.Where("id = ? AND user_id = ?", goalID, userID).Delete(&models.Goal{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrGoalNotFound
	}
	return nil
}

// SaveToGoal adds amount to the goal's current amount and marks it completed
// once the target is reached. The row is locked for the duration of the
// transaction and the write is guarded by the version column.
func (s *goalService) SaveToGoal(ctx context.Context, userID, goalID string, amount int64) (*models.Goal, error) {
	if amount <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}

	var goal *models.Goal
	var justCompleted bool

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := findGoal(tx.Clauses(clause.Locking{Strength: "UPDATE"}), userID, goalID)
		if err != nil {
			return err
		}

		if amount > math.MaxInt64-current.CurrentAmount {
			return apperrors.WithMessage(apperrors.ErrInvalidAmount, "Amount would overflow the goal balance")
		}
		newAmount := current.CurrentAmount + amount
		status := current.Status
		if newAmount >= current.TargetAmount {
			status = models.GoalStatusCompleted
		}

		result := tx.Model(&models.Goal{}).
			Where("id = ? AND version = ?", current.ID, current.Version).
			Updates(map[string]any{
				"current_amount": newAmount,
				"status":         status,
				"version":        gorm.Expr("version + 1"),
			})
		if result.Error != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrConflict
		}

		justCompleted = current.Status != models.GoalStatusCompleted && status == models.GoalStatusCompleted

		goal, err = findGoal(tx, userID, goalID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if justCompleted {
		s.notifyCompleted(ctx, goal)
	}
	return goal, nil
}

// notifyCompleted publishes a goal.completed notification on the channels the
// user has enabled. Failures are logged only.
func (s *goalService) notifyCompleted(ctx context.Context, goal *models.Goal) {
	if s.publisher == nil {
		return
	}

	channels := notify.Channels{InApp: true}
	var settings models.UserSettings
	err := s.db.WithContext(ctx).Where("user_id = ?", goal.UserID).First(&settings).Error
	switch {
	case err == nil:
		channels = notify.Channels{
			Email:    settings.EmailNotifications,
			SMS:      settings.SMSNotifications,
			WhatsApp: settings.WhatsAppNotifications,
			InApp:    settings.InAppNotifications,
		}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		logger.Get().Warnw("failed to load notification preferences", "error", err, "user_id", goal.UserID)
	}

	if !channels.Any() {
		return
	}

	n := notify.GoalCompleted(goal.UserID, goal.ID, goal.Title, goal.CurrentAmount, goal.TargetAmount, channels)
	if err := s.publisher.Publish(ctx, n); err != nil {
		logger.Get().Errorw("failed to publish notification",
			"error", err,
			"type", n.Type,
			"user_id", goal.UserID,
			"goal_id", goal.ID,
		)
	}
}

// findGoal loads a goal scoped to its owner.
func findGoal(db *gorm.DB, userID, goalID string) (*models.Goal, error) {
	var goal models.Goal
	if err := db.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &goal, nil
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

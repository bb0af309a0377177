package services

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	apperrors "bankapp/internal/errors"
	"bankapp/internal/logger"
	"bankapp/internal/models"
	"bankapp/internal/pagination"
)

// Audit actions.
const (
	ActionCreateGoal         = "CREATE_GOAL"
	ActionUpdateGoal         = "UPDATE_GOAL"
	ActionDeleteGoal         = "DELETE_GOAL"
	ActionSaveToGoal         = "SAVE_TO_GOAL"
	ActionUpdateSettings     = "UPDATE_SETTINGS"
	ActionInitializeSettings = "INITIALIZE_SETTINGS"
	ActionConnectStrava      = "CONNECT_STRAVA"
	ActionDisconnectStrava   = "DISCONNECT_STRAVA"
	ActionCompleteOnboarding = "COMPLETE_ONBOARDING"
	ActionRegister           = "REGISTER"
)

// auditService handles audit log recording.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log records an audit event. Errors are logged but never propagate
// to avoid disrupting the main operation.
func (s *auditService) Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]any) {
	var changesJSON datatypes.JSON
	if changes != nil {
		data, err := json.Marshal(changes)
		if err != nil {
			logger.Get().Errorw("failed to marshal audit log changes", "error", err, "action", action)
			data = []byte("{}")
		}
		changesJSON = datatypes.JSON(data)
	}

	entry := &models.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    ipAddress,
		Changes:      changesJSON,
	}

	if err := s.db.Create(entry).Error; err != nil {
		logger.Get().Errorw("failed to create audit log entry",
			"error", err,
			"user_id", userID,
			"action", action,
			"resource_type", resourceType,
			"resource_id", resourceID,
		)
	}
}

// ListLogs returns the user's audit entries, newest first.
func (s *auditService) ListLogs(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error) {
	page.Defaults()

	base := s.db.Model(&models.AuditLog{}).Where("user_id = ?", userID).Session(&gorm.Session{})

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var logs []models.AuditLog
	if err := base.Scopes(pagination.Paginate(page)).
		Order("created_at DESC").
		Order("id DESC").
		Find(&logs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(logs, page, totalItems)
	return &result, nil
}

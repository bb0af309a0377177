package models

import "gorm.io/datatypes"

// AuditLog records a user-initiated mutation.
type AuditLog struct {
	Base
	UserID       string         `gorm:"type:uuid;not null;index" json:"user_id"`
	Action       string         `gorm:"size:64;not null" json:"action"`
	ResourceType string         `gorm:"size:64;not null" json:"resource_type"`
	ResourceID   string         `gorm:"size:64" json:"resource_id"`
	IPAddress    string         `gorm:"size:64" json:"ip_address"`
	Changes      datatypes.JSON `json:"changes,omitempty"`
}

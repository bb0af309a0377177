// Package models defines the GORM models persisted by the API.
package models

// All returns every model managed by the application, in dependency order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&UserSettings{},
		&Goal{},
		&AuditLog{},
	}
}

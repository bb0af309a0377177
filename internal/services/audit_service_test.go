package services

import (
	"encoding/json"
	"testing"

	"bankapp/internal/models"
	"bankapp/internal/pagination"
	"bankapp/internal/testutil"
)

func TestAuditLog(t *testing.T) {
	t.Run("records_entry_with_changes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAuditService(db)
		user := testutil.CreateTestUser(t, db)

		svc.Log(user.ID, ActionSaveToGoal, "goal", "goal-1", "10.0.0.1", map[string]any{"amount": 2500})

		var entry models.AuditLog
		if err := db.Where("user_id = ?", user.ID).First(&entry).Error; err != nil {
			t.Fatalf("expected audit entry: %v", err)
		}
		if entry.Action != ActionSaveToGoal || entry.ResourceType != "goal" || entry.ResourceID != "goal-1" {
			t.Errorf("unexpected entry: %+v", entry)
		}
		if entry.IPAddress != "10.0.0.1" {
			t.Errorf("expected ip 10.0.0.1, got %s", entry.IPAddress)
		}

		var changes map[string]any
		if err := json.Unmarshal(entry.Changes, &changes); err != nil {
			t.Fatalf("changes should be valid JSON: %v", err)
		}
		if changes["amount"] != float64(2500) {
			t.Errorf("expected amount 2500, got %v", changes["amount"])
		}
	})

	t.Run("nil_changes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAuditService(db)
		user := testutil.CreateTestUser(t, db)

		svc.Log(user.ID, ActionDisconnectStrava, "strava", "", "", nil)

		var count int64
		db.Model(&models.AuditLog{}).Where("user_id = ?", user.ID).Count(&count)
		if count != 1 {
			t.Errorf("expected 1 entry, got %d", count)
		}
	})
}

func TestListAuditLogs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAuditService(db)
	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)

	for i := 0; i < 3; i++ {
		svc.Log(user.ID, ActionCreateGoal, "goal", "", "", nil)
	}
	svc.Log(other.ID, ActionCreateGoal, "goal", "", "", nil)

	result, err := svc.ListLogs(user.ID, pagination.PageRequest{Page: 1, PageSize: 2})
	testutil.AssertNoError(t, err)

	if result.TotalItems != 3 {
		t.Errorf("expected 3 total items, got %d", result.TotalItems)
	}
	if result.TotalPages != 2 {
		t.Errorf("expected 2 pages, got %d", result.TotalPages)
	}
	if len(result.Data) != 2 {
		t.Errorf("expected 2 items on page 1, got %d", len(result.Data))
	}
	for _, entry := range result.Data {
		if entry.UserID != user.ID {
			t.Errorf("expected only own entries, got user %s", entry.UserID)
		}
	}

	second, err := svc.ListLogs(user.ID, pagination.PageRequest{Page: 2, PageSize: 2})
	testutil.AssertNoError(t, err)
	if len(second.Data) != 1 {
		t.Errorf("expected 1 item on page 2, got %d", len(second.Data))
	}
}

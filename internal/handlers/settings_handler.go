package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bankapp/internal/models"
	"bankapp/internal/services"
)

// SettingsHandler handles user settings requests.
type SettingsHandler struct {
	settingsService services.SettingsServicer
	auditService    services.AuditServicer
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService services.SettingsServicer, auditService services.AuditServicer) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService, auditService: auditService}
}

// UpdateSettingsRequest is a partial settings update. Limits are in cents.
type UpdateSettingsRequest struct {
	StreetAddress *string `json:"street_address" binding:"omitempty,max=255"`
	City          *string `json:"city" binding:"omitempty,max=100"`
	PostalCode    *string `json:"postal_code" binding:"omitempty,max=20"`
	Country       *string `json:"country" binding:"omitempty,max=100"`

	DailyLimit           *int64 `json:"daily_limit" binding:"omitempty,min=0"`
	MonthlyLimit         *int64 `json:"monthly_limit" binding:"omitempty,min=0"`
	MobileAppLimit       *int64 `json:"mobile_app_limit" binding:"omitempty,min=0"`
	InternetBankingLimit *int64 `json:"internet_banking_limit" binding:"omitempty,min=0"`
	ATMLimit             *int64 `json:"atm_limit" binding:"omitempty,min=0"`

	CardEnabled                      *bool `json:"card_enabled"`
	ContactlessEnabled               *bool `json:"contactless_enabled"`
	OnlinePaymentsEnabled            *bool `json:"online_payments_enabled"`
	InternationalTransactionsEnabled *bool `json:"international_transactions_enabled"`

	EmailNotifications    *bool `json:"email_notifications"`
	SMSNotifications      *bool `json:"sms_notifications"`
	WhatsAppNotifications *bool `json:"whatsapp_notifications"`
	InAppNotifications    *bool `json:"in_app_notifications"`
}

// SettingsResponse wraps the settings row.
type SettingsResponse struct {
	Settings models.UserSettings `json:"settings"`
}

// GetSettings returns the caller's settings.
// @Summary     Get settings
// @Tags        settings
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} SettingsResponse "Settings"
// @Failure     404 {object} ErrorResponse "Settings not found"
// @Router      /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	settings, err := h.settingsService.GetSettings(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// UpdateSettings applies a partial update. The merged limits must satisfy
// daily <= monthly and daily+mobile+banking+atm <= monthly.
// @Summary     Update settings
// @Tags        settings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateSettingsRequest true "Fields to change"
// @Success     200 {object} SettingsResponse "Updated settings"
// @Failure     400 {object} ErrorResponse "Invalid input or limit violation"
// @Failure     404 {object} ErrorResponse "Settings not found"
// @Failure     409 {object} ErrorResponse "Concurrent modification"
// @Router      /settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	settings, err := h.settingsService.UpdateSettings(userID, services.SettingsUpdate(req))
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.ActionUpdateSettings, "settings", settings.ID, c.ClientIP(),
		map[string]any{"limits": settings.Limits})

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// InitializeSettings creates the default settings row if it does not exist.
// @Summary     Initialize settings
// @Tags        settings
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} SettingsResponse "Existing settings"
// @Success     201 {object} SettingsResponse "Settings created"
// @Router      /settings/initialize [post]
func (h *SettingsHandler) InitializeSettings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	settings, created, err := h.settingsService.InitializeSettings(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
		h.auditService.Log(userID, services.ActionInitializeSettings, "settings", settings.ID, c.ClientIP(), nil)
	}

	c.JSON(status, gin.H{"settings": settings})
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	apperrors "bankapp/internal/errors"
	"bankapp/internal/services"
	"bankapp/internal/validator"
)

// OnboardingHandler handles the three-step onboarding flow.
type OnboardingHandler struct {
	onboardingService services.OnboardingServicer
	auditService      services.AuditServicer
}

// NewOnboardingHandler creates a new OnboardingHandler.
func NewOnboardingHandler(onboardingService services.OnboardingServicer, auditService services.AuditServicer) *OnboardingHandler {
	return &OnboardingHandler{onboardingService: onboardingService, auditService: auditService}
}

// ProfileRequest is onboarding step 1.
type ProfileRequest struct {
	Username    string  `json:"username" binding:"required,username"`
	FirstName   string  `json:"first_name" binding:"required,max=100"`
	LastName    string  `json:"last_name" binding:"required,max=100"`
	PhoneNumber *string `json:"phone_number" binding:"omitempty,max=20"`
	DateOfBirth *string `json:"date_of_birth" binding:"omitempty,iso_date"`
}

// AddressRequest is onboarding step 2.
type AddressRequest struct {
	StreetAddress string  `json:"street_address" binding:"required,max=255"`
	City          string  `json:"city" binding:"required,max=100"`
	PostalCode    string  `json:"postal_code" binding:"required,max=20"`
	Country       *string `json:"country" binding:"omitempty,max=100"`
}

// UsernameAvailability is the response of the username check.
type UsernameAvailability struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

// GetStatus reports the caller's onboarding progress.
// @Summary     Onboarding status
// @Tags        onboarding
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.OnboardingStatus "Status"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /onboarding/status [get]
func (h *OnboardingHandler) GetStatus(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	status, err := h.onboardingService.GetStatus(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// SaveProfile handles onboarding step 1.
// @Summary     Save personal information
// @Tags        onboarding
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ProfileRequest true "Personal information"
// @Success     200 {object} MessageResponse "Saved"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Username already taken"
// @Router      /onboarding/step1 [post]
func (h *OnboardingHandler) SaveProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	in := services.ProfileInput{
		Username:    req.Username,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	}
	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		t, err := validator.ParseDate(*req.DateOfBirth)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "date_of_birth must be YYYY-MM-DD"))
			return
		}
		dob := datatypes.Date(t)
		in.DateOfBirth = &dob
	}

	user, err := h.onboardingService.SaveProfile(userID, in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Personal information saved successfully",
		"user":    user,
	})
}

// SaveAddress handles onboarding step 2.
// @Summary     Save address information
// @Tags        onboarding
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AddressRequest true "Address"
// @Success     200 {object} MessageResponse "Saved"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /onboarding/step2 [post]
func (h *OnboardingHandler) SaveAddress(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	settings, user, err := h.onboardingService.SaveAddress(userID, services.AddressInput(req))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Address information saved successfully",
		"settings": gin.H{
			"street_address": settings.StreetAddress,
			"city":           settings.City,
			"postal_code":    settings.PostalCode,
			"country":        settings.Country,
		},
		"onboarding_step": user.OnboardingStep,
	})
}

// Complete finishes onboarding and activates the account.
// @Summary     Complete onboarding
// @Tags        onboarding
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} MessageResponse "Completed"
// @Failure     400 {object} ErrorResponse "Steps missing"
// @Router      /onboarding/complete [post]
func (h *OnboardingHandler) Complete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.onboardingService.Complete(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.ActionCompleteOnboarding, "user", user.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{
		"message": "Onboarding completed successfully! Welcome to BankApp!",
		"user":    user,
	})
}

// UsernameAvailable checks whether a username can be claimed.
// @Summary     Check username availability
// @Tags        onboarding
// @Produce     json
// @Param       username path string true "Username"
// @Success     200 {object} UsernameAvailability "Availability"
// @Router      /onboarding/username-available/{username} [get]
func (h *OnboardingHandler) UsernameAvailable(c *gin.Context) {
	available, err := h.onboardingService.UsernameAvailable(c.Param("username"))
	if errors.Is(err, apperrors.ErrInvalidInput) {
		c.JSON(http.StatusOK, UsernameAvailability{Available: false, Message: services.UsernameRules})
		return
	}
	if err != nil {
		respondWithError(c, err)
		return
	}

	message := "Username available"
	if !available {
		message = "Username already taken"
	}
	c.JSON(http.StatusOK, UsernameAvailability{Available: available, Message: message})
}

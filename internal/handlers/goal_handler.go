package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	apperrors "bankapp/internal/errors"
	"bankapp/internal/models"
	"bankapp/internal/services"
	"bankapp/internal/validator"
)

// GoalHandler handles savings goal requests.
type GoalHandler struct {
	goalService  services.GoalServicer
	auditService services.AuditServicer
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalService services.GoalServicer, auditService services.AuditServicer) *GoalHandler {
	return &GoalHandler{goalService: goalService, auditService: auditService}
}

// CreateGoalRequest represents the request payload for creating a goal.
// Amounts are in cents.
type CreateGoalRequest struct {
	Title         string  `json:"title" binding:"required,max=255"`
	Description   *string `json:"description"`
	TargetAmount  *int64  `json:"target_amount" binding:"required,min=0"`
	CurrentAmount *int64  `json:"current_amount" binding:"omitempty,min=0"`
	TargetDate    *string `json:"target_date" binding:"omitempty,iso_date"`
	Category      string  `json:"category" binding:"max=100"`
	Icon          string  `json:"icon" binding:"max=10"`
	Color         string  `json:"color" binding:"max=50"`
	Status        string  `json:"status" binding:"omitempty,goal_status"`
}

// UpdateGoalRequest represents a partial goal update. Absent fields are left unchanged.
type UpdateGoalRequest struct {
	Title         *string `json:"title" binding:"omitempty,max=255"`
	Description   *string `json:"description"`
	TargetAmount  *int64  `json:"target_amount" binding:"omitempty,min=0"`
	CurrentAmount *int64  `json:"current_amount" binding:"omitempty,min=0"`
	TargetDate    *string `json:"target_date" binding:"omitempty,iso_date"`
	Category      *string `json:"category" binding:"omitempty,max=100"`
	Icon          *string `json:"icon" binding:"omitempty,max=10"`
	Color         *string `json:"color" binding:"omitempty,max=50"`
	Status        *string `json:"status" binding:"omitempty,goal_status"`
}

// SaveToGoalRequest represents a deposit into a goal, in cents.
type SaveToGoalRequest struct {
	Amount *int64 `json:"amount" binding:"required"`
}

// GoalResponse wraps a single goal.
type GoalResponse struct {
	Goal models.Goal `json:"goal"`
}

// GoalsResponse wraps a goal listing.
type GoalsResponse struct {
	Goals []models.Goal `json:"goals"`
}

// ListGoals returns the user's goals, newest first.
// @Summary     List goals
// @Tags        goals
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} GoalsResponse "Goals"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals [get]
func (h *GoalHandler) ListGoals(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goals, err := h.goalService.ListGoals(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

// GetGoal returns a single goal.
// @Summary     Get goal by ID
// @Tags        goals
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Goal ID"
// @Success     200 {object} GoalResponse "Goal"
// @Failure     400 {object} ErrorResponse "Invalid goal ID"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Router      /goals/{id} [get]
func (h *GoalHandler) GetGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goalID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	goal, err := h.goalService.GetGoal(userID, goalID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

// CreateGoal handles the creation of a new goal.
// @Summary     Create a goal
// @Description Create a savings goal. Category, icon, color and status fall back to defaults.
// @Tags        goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateGoalRequest true "Goal details"
// @Success     201 {object} GoalResponse "Goal created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /goals [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	targetDate, err := parseTargetDate(req.TargetDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	in := services.GoalInput{
		Title:        req.Title,
		Description:  req.Description,
		TargetAmount: *req.TargetAmount,
		TargetDate:   targetDate,
		Category:     req.Category,
		Icon:         req.Icon,
		Color:        req.Color,
		Status:       models.GoalStatus(req.Status),
	}
	if req.CurrentAmount != nil {
		in.CurrentAmount = *req.CurrentAmount
	}

	goal, err := h.goalService.CreateGoal(userID, in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.ActionCreateGoal, "goal", goal.ID, c.ClientIP(),
		map[string]any{"title": goal.Title, "target_amount": goal.TargetAmount})

	c.JSON(http.StatusCreated, gin.H{"goal": goal})
}

// UpdateGoal applies a partial update to a goal.
// @Summary     Update goal
// @Description Only fields present in the body are changed
// @Tags        goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string            true "Goal ID"
// @Param       request body UpdateGoalRequest true "Fields to change"
// @Success     200 {object} GoalResponse "Updated goal"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     409 {object} ErrorResponse "Concurrent modification"
// @Router      /goals/{id} [put]
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goalID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	targetDate, err := parseTargetDate(req.TargetDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	update := services.GoalUpdate{
		Title:         req.Title,
		Description:   req.Description,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		TargetDate:    targetDate,
		Category:      req.Category,
		Icon:          req.Icon,
		Color:         req.Color,
	}
	if req.Status != nil {
		status := models.GoalStatus(*req.Status)
		update.Status = &status
	}

	goal, err := h.goalService.UpdateGoal(c.Request.Context(), userID, goalID, update)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.ActionUpdateGoal, "goal", goal.ID, c.ClientIP(),
		map[string]any{"current_amount": goal.CurrentAmount, "target_amount": goal.TargetAmount, "status": goal.Status})

	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

// DeleteGoal permanently removes a goal.
// @Summary     Delete goal
// @Tags        goals
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Goal ID"
// @Success     200 {object} MessageResponse "Goal deleted"
// @Failure     400 {object} ErrorResponse "Invalid goal ID"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Router      /goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goalID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.goalService.DeleteGoal(userID, goalID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.ActionDeleteGoal, "goal", goalID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, MessageResponse{Message: "Goal deleted successfully"})
}

// SaveToGoal adds money to a goal and completes it once the target is reached.
// @Summary     Save money towards a goal
// @Tags        goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string            true "Goal ID"
// @Param       request body SaveToGoalRequest true "Amount in cents"
// @Success     200 {object} GoalResponse "Updated goal"
// @Failure     400 {object} ErrorResponse "Invalid amount"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     409 {object} ErrorResponse "Concurrent modification"
// @Router      /goals/{id}/save [post]
func (h *GoalHandler) SaveToGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goalID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SaveToGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidAmount, err.Error()))
		return
	}

	goal, err := h.goalService.SaveToGoal(c.Request.Context(), userID, goalID, *req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.ActionSaveToGoal, "goal", goal.ID, c.ClientIP(),
		map[string]any{"amount": *req.Amount, "current_amount": goal.CurrentAmount, "status": goal.Status})

	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

func parseTargetDate(raw *string) (*datatypes.Date, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := validator.ParseDate(*raw)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target_date must be YYYY-MM-DD")
	}
	d := datatypes.Date(t)
	return &d, nil
}

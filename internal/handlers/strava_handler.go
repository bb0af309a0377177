package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"bankapp/internal/logger"
	"bankapp/internal/pagination"
	"bankapp/internal/services"
	"bankapp/internal/strava"
)

// Values of the strava_error query parameter on the frontend redirect.
const (
	StravaErrMissingParams = "missing_params"
	StravaErrInvalidState  = "invalid_state"
	StravaErrAuthFailed    = "auth_failed"
)

// StravaHandler handles the Strava OAuth flow and activity data.
type StravaHandler struct {
	stravaService services.StravaServicer
	auditService  services.AuditServicer
	frontendURL   string
}

// NewStravaHandler creates a new StravaHandler. frontendURL is where the
// OAuth callback sends the browser back to.
func NewStravaHandler(stravaService services.StravaServicer, auditService services.AuditServicer, frontendURL string) *StravaHandler {
	return &StravaHandler{stravaService: stravaService, auditService: auditService, frontendURL: frontendURL}
}

// StravaAuthResponse carries the consent URL.
type StravaAuthResponse struct {
	Success bool   `json:"success"`
	AuthURL string `json:"authUrl"`
}

// StravaStatusResponse is the connection state.
type StravaStatusResponse struct {
	Success   bool   `json:"success"`
	Connected bool   `json:"connected"`
	AthleteID *int64 `json:"athleteId"`
}

// StravaActivitiesResponse is one page of activities.
type StravaActivitiesResponse struct {
	Success    bool                     `json:"success"`
	Activities []strava.ActivitySummary `json:"activities"`
}

// StravaStatsResponse carries run totals.
type StravaStatsResponse struct {
	Success bool                `json:"success"`
	Stats   strava.StatsSummary `json:"stats"`
}

// Auth returns the Strava consent URL for the caller.
// @Summary     Start Strava OAuth
// @Tags        strava
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} StravaAuthResponse "Consent URL"
// @Failure     503 {object} ErrorResponse "Strava not configured"
// @Router      /strava/auth [get]
func (h *StravaHandler) Auth(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	authURL, err := h.stravaService.AuthURL(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, StravaAuthResponse{Success: true, AuthURL: authURL})
}

// Callback completes the OAuth flow and redirects back to the frontend.
// @Summary     Strava OAuth callback
// @Tags        strava
// @Param       code  query string false "Authorization code"
// @Param       state query string false "Signed state"
// @Param       error query string false "Error reported by Strava"
// @Success     302
// @Router      /strava/callback [get]
func (h *StravaHandler) Callback(c *gin.Context) {
	if upstream := c.Query("error"); upstream != "" {
		h.redirectWithError(c, upstream)
		return
	}

	code, state := c.Query("code"), c.Query("state")
	if code == "" || state == "" {
		h.redirectWithError(c, StravaErrMissingParams)
		return
	}

	userID, err := h.stravaService.HandleCallback(c.Request.Context(), code, state)
	if errors.Is(err, services.ErrInvalidState) {
		logger.Get().Warnw("strava callback with invalid state", "error", err, "client_ip", c.ClientIP())
		h.redirectWithError(c, StravaErrInvalidState)
		return
	}
	if err != nil {
		logger.Get().Errorw("strava callback failed", "error", err)
		h.redirectWithError(c, StravaErrAuthFailed)
		return
	}

	h.auditService.Log(userID, services.ActionConnectStrava, "strava", "", c.ClientIP(), nil)

	c.Redirect(http.StatusFound, h.frontendURL+"/health?strava_connected=true")
}

func (h *StravaHandler) redirectWithError(c *gin.Context, reason string) {
	c.Redirect(http.StatusFound, h.frontendURL+"/health?strava_error="+url.QueryEscape(reason))
}

// Disconnect revokes and forgets the caller's Strava grant.
// @Summary     Disconnect Strava
// @Tags        strava
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} MessageResponse "Disconnected"
// @Failure     404 {object} ErrorResponse "Strava not connected"
// @Router      /strava/disconnect [post]
func (h *StravaHandler) Disconnect(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.stravaService.Disconnect(c.Request.Context(), userID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.ActionDisconnectStrava, "strava", "", c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Strava disconnected successfully"})
}

// Status reports whether the caller has connected Strava.
// @Summary     Strava connection status
// @Tags        strava
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} StravaStatusResponse "Status"
// @Router      /strava/status [get]
func (h *StravaHandler) Status(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	status, err := h.stravaService.Status(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, StravaStatusResponse{
		Success:   true,
		Connected: status.Connected,
		AthleteID: status.AthleteID,
	})
}

// Activities returns a page of the caller's recent activities.
// @Summary     Strava activities
// @Tags        strava
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 10, max 100)"
// @Success     200 {object} StravaActivitiesResponse "Activities"
// @Failure     404 {object} ErrorResponse "Strava not connected"
// @Failure     500 {object} ErrorResponse "Upstream failure"
// @Router      /strava/activities [get]
func (h *StravaHandler) Activities(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	activities, err := h.stravaService.Activities(c.Request.Context(), userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, StravaActivitiesResponse{Success: true, Activities: activities})
}

// Stats returns the caller's run totals.
// @Summary     Strava run totals
// @Tags        strava
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} StravaStatsResponse "Totals"
// @Failure     404 {object} ErrorResponse "Strava not connected"
// @Failure     500 {object} ErrorResponse "Upstream failure"
// @Router      /strava/stats [get]
func (h *StravaHandler) Stats(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	stats, err := h.stravaService.Stats(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, StravaStatsResponse{Success: true, Stats: *stats})
}

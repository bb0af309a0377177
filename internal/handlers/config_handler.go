package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bankapp/internal/config"
)

const maskPrefix = "••••••"

// ConfigHandler exposes read-only integration status.
type ConfigHandler struct {
	strava config.StravaConfig
}

// NewConfigHandler creates a new ConfigHandler.
func NewConfigHandler(strava config.StravaConfig) *ConfigHandler {
	return &ConfigHandler{strava: strava}
}

// StravaConfigResponse is the Strava integration status. The client ID is masked.
type StravaConfigResponse struct {
	Configured  bool   `json:"configured"`
	ClientID    string `json:"clientId"`
	RedirectURI string `json:"redirectUri"`
}

// StravaConfig reports whether Strava credentials are configured.
// @Summary     Strava configuration status
// @Tags        config
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} StravaConfigResponse "Status"
// @Router      /config/strava [get]
func (h *ConfigHandler) StravaConfig(c *gin.Context) {
	c.JSON(http.StatusOK, StravaConfigResponse{
		Configured:  h.strava.Configured(),
		ClientID:    maskClientID(h.strava.ClientID),
		RedirectURI: h.strava.RedirectURI,
	})
}

// maskClientID keeps the last four characters.
func maskClientID(id string) string {
	if id == "" {
		return ""
	}
	if len(id) <= 4 {
		return maskPrefix + id
	}
	return maskPrefix + id[len(id)-4:]
}

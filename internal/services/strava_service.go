package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "bankapp/internal/errors"
	"bankapp/internal/logger"
	"bankapp/internal/models"
	"bankapp/internal/pagination"
	"bankapp/internal/strava"
)

const (
	// StateAudience identifies OAuth state tokens so they cannot be used as bearer tokens.
	StateAudience = "strava-oauth"
	// StateTTL bounds how long a user has to finish the consent screen.
	StateTTL = 10 * time.Minute
	// RefreshWindow is how close to expiry a token is refreshed before use.
	RefreshWindow = 300 * time.Second
	// DefaultActivitiesPageSize matches the size of the activity feed.
	DefaultActivitiesPageSize = 10
)

// ErrInvalidState is returned when the OAuth state is forged, expired or malformed.
var ErrInvalidState = apperrors.WithMessage(apperrors.ErrInvalidToken, "Invalid OAuth state")

// StravaClient is the subset of the Strava API used by the service.
type StravaClient interface {
	Configured() bool
	AuthorizeURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*strava.Token, error)
	RefreshToken(ctx context.Context, refreshToken string) (*strava.Token, error)
	Deauthorize(ctx context.Context, accessToken string) error
	Activities(ctx context.Context, accessToken string, page, perPage int) ([]strava.Activity, error)
	Stats(ctx context.Context, accessToken string, athleteID int64) (*strava.Stats, error)
}

// stravaService handles the Strava OAuth flow and token lifecycle.
type stravaService struct {
	db          *gorm.DB
	client      StravaClient
	stateSecret []byte
	now         func() time.Time
}

// NewStravaService creates a new StravaServicer. stateSecret signs the OAuth
// state parameter.
func NewStravaService(db *gorm.DB, client StravaClient, stateSecret string) StravaServicer {
	return &stravaService{
		db:          db,
		client:      client,
		stateSecret: []byte(stateSecret),
		now:         time.Now,
	}
}

// AuthURL builds the Strava consent URL with a signed state bound to userID.
func (s *stravaService) AuthURL(userID string) (string, error) {
	if !s.client.Configured() {
		return "", apperrors.ErrStravaNotConfigured
	}

	state, err := s.signState(userID)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.client.AuthorizeURL(state), nil
}

func (s *stravaService) signState(userID string) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Audience:  jwt.ClaimStrings{StateAudience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(StateTTL)),
		ID:        uuid.NewString(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.stateSecret)
}

func (s *stravaService) verifyState(state string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(state, &claims,
		func(*jwt.Token) (any, error) { return s.stateSecret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(StateAudience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", apperrors.Wrap(ErrInvalidState, err)
	}
	if claims.Subject == "" {
		return "", ErrInvalidState
	}
	return claims.Subject, nil
}

// HandleCallback completes the OAuth flow for the user named in state.
func (s *stravaService) HandleCallback(ctx context.Context, code, state string) (string, error) {
	userID, err := s.verifyState(state)
	if err != nil {
		return "", err
	}

	if _, err := findUser(s.db.WithContext(ctx), userID); err != nil {
		return "", err
	}

	token, err := s.client.ExchangeCode(ctx, code)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrIntegration, err)
	}

	var athleteID *int64
	if token.Athlete != nil {
		athleteID = &token.Athlete.ID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		settings, err := findSettings(tx, userID)
		if errors.Is(err, apperrors.ErrSettingsNotFound) {
			settings = models.NewDefaultSettings(userID)
			if err := tx.Create(settings).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		} else if err != nil {
			return err
		}

		if err := tx.Model(&models.UserSettings{}).
			Where("id = ?", settings.ID).
			Updates(map[string]any{
				"strava_access_token":     token.AccessToken,
				"strava_refresh_token":    token.RefreshToken,
				"strava_token_expires_at": token.ExpiresAt,
				"strava_athlete_id":       athleteID,
				"strava_connected":        true,
				"version":                 gorm.Expr("version + 1"),
			}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return userID, nil
}

// Disconnect revokes the grant at Strava (best effort) and clears the stored tokens.
func (s *stravaService) Disconnect(ctx context.Context, userID string) error {
	settings, err := s.connectedSettings(ctx, userID)
	if err != nil {
		return err
	}

	if settings.StravaAccessToken != nil && *settings.StravaAccessToken != "" {
		if err := s.client.Deauthorize(ctx, *settings.StravaAccessToken); err != nil {
			logger.Get().Warnw("strava deauthorize failed", "error", err, "user_id", userID)
		}
	}

	if err := s.db.WithContext(ctx).Model(&models.UserSettings{}).
		Where("id = ?", settings.ID).
		Updates(map[string]any{
			"strava_access_token":     nil,
			"strava_refresh_token":    nil,
			"strava_token_expires_at": nil,
			"strava_athlete_id":       nil,
			"strava_connected":        false,
			"version":                 gorm.Expr("version + 1"),
		}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// Status reports whether the user has a Strava account connected.
func (s *stravaService) Status(userID string) (*StravaStatus, error) {
	settings, err := findSettings(s.db, userID)
	if errors.Is(err, apperrors.ErrSettingsNotFound) {
		return &StravaStatus{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &StravaStatus{Connected: settings.StravaConnected, AthleteID: settings.StravaAthleteID}, nil
}

// Activities returns one page of the athlete's activities.
func (s *stravaService) Activities(ctx context.Context, userID string, page pagination.PageRequest) ([]strava.ActivitySummary, error) {
	page.DefaultsWith(DefaultActivitiesPageSize)

	accessToken, _, err := s.accessToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	activities, err := s.client.Activities(ctx, accessToken, page.Page, page.PageSize)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrIntegration, err)
	}

	summaries := make([]strava.ActivitySummary, 0, len(activities))
	for _, a := range activities {
		summaries = append(summaries, a.Summary())
	}
	return summaries, nil
}

// Stats returns the athlete's running totals.
func (s *stravaService) Stats(ctx context.Context, userID string) (*strava.StatsSummary, error) {
	accessToken, settings, err := s.accessToken(ctx, userID)
	if err != nil {
		return nil, err
	}
	if settings.StravaAthleteID == nil {
		return nil, apperrors.ErrStravaNotConnected
	}

	stats, err := s.client.Stats(ctx, accessToken, *settings.StravaAthleteID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrIntegration, err)
	}

	summary := stats.Summary()
	return &summary, nil
}

// connectedSettings loads the settings row and requires a live Strava link.
func (s *stravaService) connectedSettings(ctx context.Context, userID string) (*models.UserSettings, error) {
	settings, err := findSettings(s.db.WithContext(ctx), userID)
	if errors.Is(err, apperrors.ErrSettingsNotFound) {
		return nil, apperrors.ErrStravaNotConnected
	}
	if err != nil {
		return nil, err
	}
	if !settings.StravaConnected {
		return nil, apperrors.ErrStravaNotConnected
	}
	return settings, nil
}

// usable reports whether the stored access token is outside the refresh window.
func (s *stravaService) usable(settings *models.UserSettings) bool {
	if settings.StravaAccessToken == nil || *settings.StravaAccessToken == "" || settings.StravaTokenExpiresAt == nil {
		return false
	}
	return *settings.StravaTokenExpiresAt > s.now().Add(RefreshWindow).Unix()
}

// accessToken returns a valid access token, refreshing it first when it is
// expired or about to expire. A refresh that loses the version race re-reads
// the row and uses the winner's token.
func (s *stravaService) accessToken(ctx context.Context, userID string) (string, *models.UserSettings, error) {
	settings, err := s.connectedSettings(ctx, userID)
	if err != nil {
		return "", nil, err
	}
	if s.usable(settings) {
		return *settings.StravaAccessToken, settings, nil
	}

	if settings.StravaRefreshToken == nil || *settings.StravaRefreshToken == "" {
		return "", nil, apperrors.ErrStravaNotConnected
	}

	token, err := s.client.RefreshToken(ctx, *settings.StravaRefreshToken)
	if err != nil {
		return "", nil, apperrors.Wrap(apperrors.ErrIntegration, err)
	}

	result := s.db.WithContext(ctx).Model(&models.UserSettings{}).
		Where("id = ? AND version = ?", settings.ID, settings.Version).
		Updates(map[string]any{
			"strava_access_token":     token.AccessToken,
			"strava_refresh_token":    token.RefreshToken,
			"strava_token_expires_at": token.ExpiresAt,
			"version":                 gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return "", nil, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}

	if result.RowsAffected == 0 {
		fresh, err := s.connectedSettings(ctx, userID)
		if err != nil {
			return "", nil, err
		}
		if s.usable(fresh) {
			return *fresh.StravaAccessToken, fresh, nil
		}
		return "", nil, apperrors.ErrConflict
	}

	settings.StravaAccessToken = &token.AccessToken
	settings.StravaRefreshToken = &token.RefreshToken
	settings.StravaTokenExpiresAt = &token.ExpiresAt
	settings.Version++
	return token.AccessToken, settings, nil
}

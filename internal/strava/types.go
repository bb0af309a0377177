package strava

import (
	"math"

	"golang.org/x/oauth2"
)

// Athlete is the subset of the athlete object returned with a token grant.
type Athlete struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
}

// Token is an OAuth grant returned by the token endpoint.
type Token struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresAt    int64    `json:"expires_at"`
	Athlete      *Athlete `json:"athlete,omitempty"`
}

// newToken reads Strava's grant out of an x/oauth2 token. Strava sends an
// absolute expires_at and, on code exchange, the athlete alongside the
// standard fields.
func newToken(tok *oauth2.Token) *Token {
	t := &Token{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
	}
	if exp, ok := tok.Extra("expires_at").(float64); ok {
		t.ExpiresAt = int64(exp)
	} else if !tok.Expiry.IsZero() {
		t.ExpiresAt = tok.Expiry.Unix()
	}
	if athlete, ok := tok.Extra("athlete").(map[string]any); ok {
		if id, ok := athlete["id"].(float64); ok {
			t.Athlete = &Athlete{ID: int64(id)}
			t.Athlete.FirstName, _ = athlete["firstname"].(string)
			t.Athlete.LastName, _ = athlete["lastname"].(string)
		}
	}
	return t
}

// Activity is a summary activity as returned by /athlete/activities.
type Activity struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Type               string   `json:"type"`
	StartDate          string   `json:"start_date"`
	Distance           float64  `json:"distance"`
	MovingTime         int64    `json:"moving_time"`
	TotalElevationGain float64  `json:"total_elevation_gain"`
	Calories           float64  `json:"calories"`
	AverageSpeed       float64  `json:"average_speed"`
	AverageHeartrate   *float64 `json:"average_heartrate"`
}

// ActivitySummary is the shape served to the frontend. Distance and
// elevation are metres, duration is seconds and pace is minutes per km.
type ActivitySummary struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Date      string   `json:"date"`
	Distance  int64    `json:"distance"`
	Duration  int64    `json:"duration"`
	Elevation int64    `json:"elevation"`
	Calories  float64  `json:"calories"`
	Pace      *float64 `json:"pace"`
	HeartRate *float64 `json:"heartRate"`
}

// Summary converts the activity into its frontend representation.
func (a Activity) Summary() ActivitySummary {
	s := ActivitySummary{
		ID:        a.ID,
		Name:      a.Name,
		Type:      a.Type,
		Date:      a.StartDate,
		Distance:  int64(math.Round(a.Distance)),
		Duration:  a.MovingTime,
		Elevation: int64(math.Round(a.TotalElevationGain)),
		Calories:  a.Calories,
	}
	if a.AverageSpeed > 0 {
		pace := 1000.0 / 60 / a.AverageSpeed
		s.Pace = &pace
	}
	if a.AverageHeartrate != nil && *a.AverageHeartrate > 0 {
		hr := *a.AverageHeartrate
		s.HeartRate = &hr
	}
	return s
}

// Totals is an aggregate block from /athletes/{id}/stats.
type Totals struct {
	Count         int64   `json:"count"`
	Distance      float64 `json:"distance"`
	MovingTime    int64   `json:"moving_time"`
	ElevationGain float64 `json:"elevation_gain"`
}

// Stats is the subset of athlete stats used by the API.
type Stats struct {
	AllRunTotals    Totals `json:"all_run_totals"`
	YTDRunTotals    Totals `json:"ytd_run_totals"`
	RecentRunTotals Totals `json:"recent_run_totals"`
}

// TotalsSummary is a run-totals block served to the frontend.
type TotalsSummary struct {
	Distance   int64 `json:"distance"`
	Activities int64 `json:"activities"`
	Elevation  int64 `json:"elevation"`
}

// StatsSummary groups run totals by period.
type StatsSummary struct {
	AllTime TotalsSummary `json:"allTime"`
	YTD     TotalsSummary `json:"ytd"`
	Recent  TotalsSummary `json:"recent"`
}

// Summary converts the stats into their frontend representation.
func (s Stats) Summary() StatsSummary {
	return StatsSummary{
		AllTime: s.AllRunTotals.summary(),
		YTD:     s.YTDRunTotals.summary(),
		Recent:  s.RecentRunTotals.summary(),
	}
}

func (t Totals) summary() TotalsSummary {
	return TotalsSummary{
		Distance:   int64(math.Round(t.Distance)),
		Activities: t.Count,
		Elevation:  int64(math.Round(t.ElevationGain)),
	}
}

package response_models

import "wellspring/internal/models/db_models"

type SessionResponse struct {
	ID              string `json:"id"`
	Kind            string `json:"kind"`
	ContentID       string `json:"content_id"`
	Status          string `json:"status"`
	StartedAt       int64  `json:"started_at"`
	CompletedAt     *int64 `json:"completed_at,omitempty"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
	PositionSeconds int    `json:"position_seconds,omitempty"`
	MoodBefore      *int   `json:"mood_before,omitempty"`
	MoodAfter       *int   `json:"mood_after,omitempty"`
	Rating          *int   `json:"rating,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

func ToSessionResponse(s *db_models.Session) SessionResponse {
	return SessionResponse{
		ID:              s.ID.String(),
		Kind:            string(s.Kind),
		ContentID:       s.ContentID,
		Status:          string(s.Status),
		StartedAt:       s.StartedAt,
		CompletedAt:     s.CompletedAt,
		DurationMinutes: s.DurationMinutes,
		PositionSeconds: s.PositionSeconds,
		MoodBefore:      s.MoodBefore,
		MoodAfter:       s.MoodAfter,
		Rating:          s.Rating,
		Notes:           s.Notes,
	}
}

type SessionHistoryResponse struct {
	Sessions []SessionResponse `json:"sessions"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
	Total    int64             `json:"total"`
}

type SessionStatsResponse struct {
	Period            string  `json:"period"`
	CompletedSessions int64   `json:"completed_sessions"`
	TotalMinutes      int64   `json:"total_minutes"`
	StreakDays        int     `json:"streak_days"`
	AverageMoodDelta  float64 `json:"average_mood_delta"`
	AverageMinutes    float64 `json:"average_minutes"`
}

package response_models

import "wellspring/internal/models/db_models"

type MoodCheckinResponse struct {
	ID        string `json:"id"`
	Mood      int    `json:"mood"`
	Note      string `json:"note,omitempty"`
	CreatedAt int64  `json:"created_at"`
}

func ToMoodCheckinResponse(m *db_models.MoodCheckin) MoodCheckinResponse {
	return MoodCheckinResponse{
		ID:        m.ID.String(),
		Mood:      m.Mood,
		Note:      m.Note,
		CreatedAt: m.CreatedAt,
	}
}

type MoodHistoryResponse struct {
	Checkins []MoodCheckinResponse `json:"checkins"`
	Page     int                   `json:"page"`
	Limit    int                   `json:"limit"`
	Total    int64                 `json:"total"`
}

type GoalResponse struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	TargetValue  float64 `json:"target_value"`
	CurrentValue float64 `json:"current_value"`
	Unit         string  `json:"unit,omitempty"`
	Status       string  `json:"status"`
	CreatedAt    int64   `json:"created_at"`
	UpdatedAt    int64   `json:"updated_at"`
}

func ToGoalResponse(g *db_models.Goal) GoalResponse {
	return GoalResponse{
		ID:           g.ID.String(),
		Title:        g.Title,
		TargetValue:  g.TargetValue,
		CurrentValue: g.CurrentValue,
		Unit:         g.Unit,
		Status:       string(g.Status),
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}

type ProgressSummaryResponse struct {
	Period             string  `json:"period"`
	MoodCheckins       int64   `json:"mood_checkins"`
	AverageMood        float64 `json:"average_mood"`
	ActiveGoals        int64   `json:"active_goals"`
	CompletedGoals     int64   `json:"completed_goals"`
	MeditationSessions int64   `json:"meditation_sessions"`
	WorkoutSessions    int64   `json:"workout_sessions"`
	TotalMinutes       int64   `json:"total_minutes"`
}

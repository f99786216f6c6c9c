package response_models

import (
	"encoding/json"

	"wellspring/internal/models/db_models"
)

type BadgeResponse struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	EarnedAt    int64  `json:"earned_at"`
}

func ToBadgeResponse(b *db_models.Badge) BadgeResponse {
	return BadgeResponse{
		ID:          b.ID.String(),
		Code:        b.Code,
		Name:        b.Name,
		Description: b.Description,
		EarnedAt:    b.CreatedAt,
	}
}

type LevelResponse struct {
	Level         int   `json:"level"`
	Points        int64 `json:"points"`
	NextLevelAt   int64 `json:"next_level_at"`
	TotalMinutes  int64 `json:"total_minutes"`
	TotalSessions int64 `json:"total_sessions"`
}

type CelebrationResponse struct {
	ID        string          `json:"id"`
	EventType string          `json:"event_type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Viewed    bool            `json:"viewed"`
	CreatedAt int64           `json:"created_at"`
}

func ToCelebrationResponse(c *db_models.Celebration) CelebrationResponse {
	return CelebrationResponse{
		ID:        c.ID.String(),
		EventType: string(c.EventType),
		Data:      json.RawMessage(c.Data),
		Viewed:    c.Viewed,
		CreatedAt: c.CreatedAt,
	}
}

type RewardsResponse struct {
	BadgeCount   int64                 `json:"badge_count"`
	Celebrations []CelebrationResponse `json:"celebrations"`
}

type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	ProfileID   string `json:"profile_id"`
	DisplayName string `json:"display_name"`
	Minutes     int64  `json:"minutes"`
	Sessions    int64  `json:"sessions"`
}

type LeaderboardResponse struct {
	Category string             `json:"category"`
	Period   string             `json:"period"`
	Entries  []LeaderboardEntry `json:"entries"`
}

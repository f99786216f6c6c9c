package response_models

import "wellspring/internal/models/db_models"

type ProfileResponse struct {
	ID                string                      `json:"id"`
	UserID            string                      `json:"user_id"`
	Email             string                      `json:"email"`
	DisplayName       string                      `json:"display_name"`
	Bio               string                      `json:"bio,omitempty"`
	AvatarURL         string                      `json:"avatar_url,omitempty"`
	PreferredLanguage string                      `json:"preferred_language"`
	WellnessGoals     []string                    `json:"wellness_goals"`
	ExperienceLevel   string                      `json:"experience_level"`
	Notifications     db_models.NotificationPrefs `json:"notifications"`
	CreatedAt         int64                       `json:"created_at"`
	UpdatedAt         int64                       `json:"updated_at"`
}

func ToProfileResponse(p *db_models.Profile) ProfileResponse {
	goals := []string(p.WellnessGoals)
	if goals == nil {
		goals = []string{}
	}
	return ProfileResponse{
		ID:                p.ID.String(),
		UserID:            p.UserID.String(),
		Email:             p.Email,
		DisplayName:       p.DisplayName,
		Bio:               p.Bio,
		AvatarURL:         p.AvatarURL,
		PreferredLanguage: p.PreferredLanguage,
		WellnessGoals:     goals,
		ExperienceLevel:   string(p.ExperienceLevel),
		Notifications:     p.Notifications.Data(),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

type LoginResponse struct {
	Token   string           `json:"token"`
	Profile *ProfileResponse `json:"profile,omitempty"`
}

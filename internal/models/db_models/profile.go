package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

type NotificationPrefs struct {
	DailyReminder    bool `json:"daily_reminder"`
	WeeklySummary    bool `json:"weekly_summary"`
	MilestoneAlerts  bool `json:"milestone_alerts"`
	MarketingUpdates bool `json:"marketing_updates"`
}

func DefaultNotificationPrefs() NotificationPrefs {
	return NotificationPrefs{
		DailyReminder:   true,
		WeeklySummary:   true,
		MilestoneAlerts: true,
	}
}

type Profile struct {
	BaseModel
	UserID            uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Email             string    `gorm:"uniqueIndex"`
	DisplayName       string
	Bio               string `gorm:"type:text"`
	AvatarURL         string
	PreferredLanguage string                                   `gorm:"size:2;default:en"`
	WellnessGoals     datatypes.JSONSlice[string]              `gorm:"default:'[]'"`
	ExperienceLevel   ExperienceLevel                          `gorm:"size:16;default:beginner"`
	Notifications     datatypes.JSONType[NotificationPrefs]
}

package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Badge struct {
	BaseModel
	ProfileID   uuid.UUID `gorm:"type:uuid;index:idx_badges_profile_code,unique"`
	Code        string    `gorm:"size:64;index:idx_badges_profile_code,unique"`
	Name        string
	Description string `gorm:"type:text"`
}

type CelebrationEvent string

const (
	EventFirstSession  CelebrationEvent = "first_session"
	EventStreak7       CelebrationEvent = "streak_7"
	EventStreak30      CelebrationEvent = "streak_30"
	EventGoalCompleted CelebrationEvent = "goal_completed"
	EventLevelUp       CelebrationEvent = "level_up"
	EventMinutes100    CelebrationEvent = "minutes_100"
)

func ValidCelebrationEvent(e string) bool {
	switch CelebrationEvent(e) {
	case EventFirstSession, EventStreak7, EventStreak30,
		EventGoalCompleted, EventLevelUp, EventMinutes100:
		return true
	}
	return false
}

// Celebration is created by exactly one triggering event and viewed at
// most once (viewed flips false -> true, never back).
type Celebration struct {
	BaseModel
	ProfileID uuid.UUID        `gorm:"type:uuid;index"`
	EventType CelebrationEvent `gorm:"size:32"`
	Data      datatypes.JSON   `gorm:"default:'{}'"`
	Viewed    bool             `gorm:"default:false"`
}

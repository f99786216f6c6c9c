package db_models

import "github.com/google/uuid"

// MoodCheckin rows are append-only.
type MoodCheckin struct {
	BaseModel
	ProfileID uuid.UUID `gorm:"type:uuid;index"`
	Mood      int       `gorm:"check:mood >= 1 AND mood <= 10"`
	Note      string    `gorm:"type:text"`
}

type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalPaused    GoalStatus = "paused"
	GoalCancelled GoalStatus = "cancelled"
)

type Goal struct {
	BaseModel
	ProfileID    uuid.UUID `gorm:"type:uuid;index"`
	Title        string
	TargetValue  float64
	CurrentValue float64
	Unit         string     `gorm:"size:32"`
	Status       GoalStatus `gorm:"size:16;default:active"`
}

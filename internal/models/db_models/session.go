package db_models

import "github.com/google/uuid"

type SessionKind string

const (
	SessionMeditation SessionKind = "meditation"
	SessionWorkout    SessionKind = "workout"
)

type SessionStatus string

const (
	SessionInProgress SessionStatus = "in_progress"
	SessionCompleted  SessionStatus = "completed"
)

// Session is one timed activity instance. Created on start, finalized on
// complete; completed_at is always >= started_at. Completed sessions are
// immutable except for rating amendments.
type Session struct {
	BaseModel
	ProfileID       uuid.UUID     `gorm:"type:uuid;index:idx_sessions_profile_kind"`
	Kind            SessionKind   `gorm:"size:16;index:idx_sessions_profile_kind"`
	ContentID       string        `gorm:"index"`
	Status          SessionStatus `gorm:"size:16;default:in_progress"`
	StartedAt       int64
	CompletedAt     *int64
	DurationMinutes int
	PositionSeconds int
	MoodBefore      *int
	MoodAfter       *int
	Rating          *int
	Notes           string `gorm:"type:text"`
}

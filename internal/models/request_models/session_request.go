package request_models

type StartSessionRequest struct {
	ContentID string `json:"content_id" binding:"required,min=1,max=128"`
}

type CompleteSessionRequest struct {
	DurationMinutes *int   `json:"duration_minutes" binding:"omitempty,min=1,max=600"`
	Notes           string `json:"notes" binding:"omitempty,max=2000"`
	MoodBefore      *int   `json:"mood_before" binding:"omitempty,min=1,max=10"`
	MoodAfter       *int   `json:"mood_after" binding:"omitempty,min=1,max=10"`
}

type SaveProgressRequest struct {
	PositionSeconds int `json:"position_seconds" binding:"min=0,max=86400"`
}

type RateSessionRequest struct {
	Rating int `json:"rating" binding:"required,min=1,max=5"`
}

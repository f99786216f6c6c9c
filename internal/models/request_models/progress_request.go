package request_models

type MoodCheckinRequest struct {
	Mood int    `json:"mood" binding:"required,min=1,max=10"`
	Note string `json:"note" binding:"omitempty,max=1000"`
}

type CreateGoalRequest struct {
	Title       string  `json:"title" binding:"required,min=1,max=120"`
	TargetValue float64 `json:"target_value" binding:"required,gt=0"`
	Unit        string  `json:"unit" binding:"omitempty,max=32"`
}

type UpdateGoalRequest struct {
	CurrentValue *float64 `json:"current_value" binding:"omitempty,gte=0"`
	Status       *string  `json:"status" binding:"omitempty,oneof=active completed paused cancelled"`
}

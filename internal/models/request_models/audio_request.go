package request_models

type AudioFeedbackRequest struct {
	TrackPath string `json:"track_path" binding:"required,min=1,max=256"`
	Event     string `json:"event" binding:"required,oneof=play pause stop skip like dislike"`
}

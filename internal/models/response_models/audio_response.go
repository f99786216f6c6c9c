package response_models

import "wellspring/internal/models/db_models"

type AudioTrackResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Path            string `json:"path"`
	Kind            string `json:"kind"`
	Category        string `json:"category,omitempty"`
	DurationSeconds int    `json:"duration_seconds,omitempty"`
}

func ToAudioTrackResponse(t *db_models.AudioTrack) AudioTrackResponse {
	return AudioTrackResponse{
		ID:              t.ID.String(),
		Title:           t.Title,
		Path:            t.Path,
		Kind:            string(t.Kind),
		Category:        t.Category,
		DurationSeconds: t.DurationSeconds,
	}
}

package db_models

import "github.com/google/uuid"

type AudioKind string

const (
	AudioCelebrations AudioKind = "celebrations"
	AudioMeditation   AudioKind = "meditation"
	AudioAmbient      AudioKind = "ambient"
)

type AudioTrack struct {
	BaseModel
	Title           string
	Path            string    `gorm:"uniqueIndex"`
	Kind            AudioKind `gorm:"size:16;index"`
	Category        string    `gorm:"size:64;index"`
	DurationSeconds int
}

type AudioEvent string

const (
	AudioPlay    AudioEvent = "play"
	AudioPause   AudioEvent = "pause"
	AudioStop    AudioEvent = "stop"
	AudioSkip    AudioEvent = "skip"
	AudioLike    AudioEvent = "like"
	AudioDislike AudioEvent = "dislike"
)

func ValidAudioEvent(e string) bool {
	switch AudioEvent(e) {
	case AudioPlay, AudioPause, AudioStop, AudioSkip, AudioLike, AudioDislike:
		return true
	}
	return false
}

// AudioFeedback rows are append-only playback events.
type AudioFeedback struct {
	BaseModel
	ProfileID uuid.UUID  `gorm:"type:uuid;index"`
	TrackPath string     `gorm:"index"`
	Event     AudioEvent `gorm:"size:16"`
}

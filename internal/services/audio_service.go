package services

import (
	"context"

	"github.com/google/uuid"

	"wellspring/internal/models/db_models"
	"wellspring/internal/models/request_models"
	"wellspring/internal/models/response_models"
	"wellspring/internal/repositories"
	"wellspring/pkg/logger"
	"wellspring/pkg/utils"
)

type AudioServiceInterface interface {
	ListTracks(ctx context.Context, kind string) ([]response_models.AudioTrackResponse, error)
	ListCategories(ctx context.Context) ([]string, error)
	LogFeedback(ctx context.Context, profileID uuid.UUID, request request_models.AudioFeedbackRequest) error
}

type AudioService struct {
	repo repositories.AudioRepository
	log  *logger.Logger
}

func NewAudioService(repo repositories.AudioRepository, log *logger.Logger) AudioServiceInterface {
	return &AudioService{repo: repo, log: log}
}

func (a *AudioService) ListTracks(ctx context.Context, kind string) ([]response_models.AudioTrackResponse, error) {
	switch db_models.AudioKind(kind) {
	case db_models.AudioCelebrations, db_models.AudioMeditation, db_models.AudioAmbient:
	default:
		return nil, utils.ErrInvalidInput
	}

	tracks, err := a.repo.ListTracksByKind(ctx, db_models.AudioKind(kind))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.AudioTrackResponse, 0, len(tracks))
	for i := range tracks {
		items = append(items, response_models.ToAudioTrackResponse(&tracks[i]))
	}
	return items, nil
}

func (a *AudioService) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := a.repo.ListCategories(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}

func (a *AudioService) LogFeedback(ctx context.Context, profileID uuid.UUID, request request_models.AudioFeedbackRequest) error {
	if !db_models.ValidAudioEvent(request.Event) {
		return utils.ErrInvalidInput
	}

	feedback := &db_models.AudioFeedback{
		ProfileID: profileID,
		TrackPath: request.TrackPath,
		Event:     db_models.AudioEvent(request.Event),
	}
	if err := a.repo.InsertFeedback(ctx, feedback); err != nil {
		return utils.ErrDatabaseError
	}

	a.log.Debug("audio feedback logged", "profile_id", profileID, "event", request.Event)
	return nil
}

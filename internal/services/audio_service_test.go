package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellspring/internal/models/db_models"
	"wellspring/internal/models/request_models"
	"wellspring/internal/repositories"
	"wellspring/pkg/utils"
)

func TestAudioCatalog(t *testing.T) {
	db := newTestDB(t)
	svc := NewAudioService(repositories.NewAudioRepository(db), testLogger())
	ctx := context.Background()

	seed := []db_models.AudioTrack{
		{Title: "Rain", Path: "ambient/rain.mp3", Kind: db_models.AudioAmbient, Category: "nature", DurationSeconds: 600},
		{Title: "Forest", Path: "ambient/forest.mp3", Kind: db_models.AudioAmbient, Category: "nature", DurationSeconds: 480},
		{Title: "Fanfare", Path: "celebrations/fanfare.mp3", Kind: db_models.AudioCelebrations, Category: "wins"},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	ambient, err := svc.ListTracks(ctx, "ambient")
	require.NoError(t, err)
	require.Len(t, ambient, 2)
	assert.Equal(t, "Forest", ambient[0].Title)

	celebrations, err := svc.ListTracks(ctx, "celebrations")
	require.NoError(t, err)
	assert.Len(t, celebrations, 1)

	_, err = svc.ListTracks(ctx, "podcasts")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	categories, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"nature", "wins"}, categories)
}

func TestLogAudioFeedback(t *testing.T) {
	db := newTestDB(t)
	svc := NewAudioService(repositories.NewAudioRepository(db), testLogger())
	profile := createTestProfile(t, db, "listener@example.com")
	ctx := context.Background()

	err := svc.LogFeedback(ctx, profile.ID, request_models.AudioFeedbackRequest{
		TrackPath: "ambient/rain.mp3",
		Event:     "like",
	})
	require.NoError(t, err)

	var n int64
	require.NoError(t, db.Model(&db_models.AudioFeedback{}).Where("profile_id = ?", profile.ID).Count(&n).Error)
	assert.Equal(t, int64(1), n)

	err = svc.LogFeedback(ctx, profile.ID, request_models.AudioFeedbackRequest{TrackPath: "x", Event: "rewind"})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

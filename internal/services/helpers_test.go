package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"wellspring/internal/infra"
	"wellspring/internal/models/db_models"
	"wellspring/internal/repositories"
	"wellspring/pkg/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db))
	return db
}

func createTestProfile(t *testing.T, db *gorm.DB, email string) *db_models.Profile {
	t.Helper()

	profile := &db_models.Profile{
		UserID:            uuid.New(),
		Email:             email,
		DisplayName:       "Test User",
		PreferredLanguage: "en",
		ExperienceLevel:   db_models.ExperienceBeginner,
	}
	require.NoError(t, repositories.NewProfileRepository(db).Insert(context.Background(), profile))
	return profile
}

func testLogger() *logger.Logger {
	return logger.NewNop()
}

// recordingNotifier captures milestone callbacks for assertions.
type recordingNotifier struct {
	mu    sync.Mutex
	calls []db_models.SessionKind
}

func (r *recordingNotifier) SessionCompleted(_ context.Context, _ uuid.UUID, kind db_models.SessionKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, kind)
}

func (r *recordingNotifier) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

package progress_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wellspring/internal/api/controllers"
	"wellspring/internal/repositories"
	"wellspring/internal/services"
	"wellspring/pkg/logger"
	"wellspring/pkg/utils"
)

var Module = fx.Provide(
	provideCheckinRepo,
	provideGoalRepo,
	provideMoodEmbeddingRepo,
	provideProgressService,
	provideProgressController)

func provideCheckinRepo(db *gorm.DB) repositories.CheckinRepository {
	return repositories.NewCheckinRepository(db)
}

func provideGoalRepo(db *gorm.DB) repositories.GoalRepository {
	return repositories.NewGoalRepository(db)
}

func provideMoodEmbeddingRepo(db *gorm.DB) repositories.MoodEmbeddingRepository {
	return repositories.NewMoodEmbeddingRepository(db)
}

func provideProgressService(
	checkinRepo repositories.CheckinRepository,
	goalRepo repositories.GoalRepository,
	sessionRepo repositories.SessionRepository,
	embeddings utils.EmbeddingClientInterface,
	embeddingRepo repositories.MoodEmbeddingRepository,
	log *logger.Logger,
) services.ProgressServiceInterface {
	return services.NewProgressService(checkinRepo, goalRepo, sessionRepo, embeddings, embeddingRepo, log)
}

func provideProgressController(progressService services.ProgressServiceInterface) *controllers.ProgressController {
	return controllers.NewProgressController(progressService)
}

package gamification_fx

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wellspring/internal/api/controllers"
	"wellspring/internal/repositories"
	"wellspring/internal/services"
	"wellspring/pkg/logger"
)

var Module = fx.Provide(
	provideGamificationRepo, provideGamificationService, provideGamificationController)

func provideGamificationRepo(db *gorm.DB) repositories.GamificationRepository {
	return repositories.NewGamificationRepository(db)
}

func provideGamificationService(
	repo repositories.GamificationRepository,
	sessionRepo repositories.SessionRepository,
	cache *redis.Client,
	log *logger.Logger,
) services.GamificationServiceInterface {
	return services.NewGamificationService(repo, sessionRepo, cache, log)
}

func provideGamificationController(gamificationService services.GamificationServiceInterface) *controllers.GamificationController {
	return controllers.NewGamificationController(gamificationService)
}

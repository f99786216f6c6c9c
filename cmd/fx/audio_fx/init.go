package audio_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wellspring/internal/api/controllers"
	"wellspring/internal/repositories"
	"wellspring/internal/services"
	"wellspring/pkg/logger"
)

var Module = fx.Provide(
	provideAudioRepo, provideAudioService, provideAudioController)

func provideAudioRepo(db *gorm.DB) repositories.AudioRepository {
	return repositories.NewAudioRepository(db)
}

func provideAudioService(repo repositories.AudioRepository, log *logger.Logger) services.AudioServiceInterface {
	return services.NewAudioService(repo, log)
}

func provideAudioController(audioService services.AudioServiceInterface) *controllers.AudioController {
	return controllers.NewAudioController(audioService)
}

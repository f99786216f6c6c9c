package auth_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wellspring/internal/api/controllers"
	"wellspring/internal/repositories"
	"wellspring/internal/services"
	"wellspring/pkg/identity"
	"wellspring/pkg/logger"
	mem "wellspring/pkg/memcache"
)

var Module = fx.Provide(
	provideProfileRepo, provideAuthService, provideAuthController)

func provideProfileRepo(db *gorm.DB) repositories.ProfileRepository {
	return repositories.NewProfileRepository(db)
}

func provideAuthService(
	provider identity.Provider,
	profileRepo repositories.ProfileRepository,
	mailService services.IMailService,
	resetTokens mem.ResetTokenStore,
	log *logger.Logger,
) services.AuthServiceInterface {
	return services.NewAuthService(provider, profileRepo, mailService, resetTokens, log)
}

func provideAuthController(authService services.AuthServiceInterface) *controllers.AuthController {
	return controllers.NewAuthController(authService)
}

package wellness_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wellspring/internal/api/controllers"
	"wellspring/internal/repositories"
	"wellspring/internal/services"
	"wellspring/pkg/logger"
)

var Module = fx.Provide(
	provideSessionRepo,
	provideSessionSet,
	provideMeditationController,
	provideWorkoutController)

// SessionSet carries the two kind-bound session services so downstream
// consumers can ask for both without ambiguity.
type SessionSet struct {
	Meditation services.SessionServiceInterface
	Workout    services.SessionServiceInterface
}

func provideSessionRepo(db *gorm.DB) repositories.SessionRepository {
	return repositories.NewSessionRepository(db)
}

func provideSessionSet(
	sessionRepo repositories.SessionRepository,
	gamificationService services.GamificationServiceInterface,
	log *logger.Logger,
) *SessionSet {
	return &SessionSet{
		Meditation: services.NewMeditationService(sessionRepo, gamificationService, log),
		Workout:    services.NewWorkoutService(sessionRepo, gamificationService, log),
	}
}

func provideMeditationController(set *SessionSet) *controllers.MeditationController {
	return controllers.NewMeditationController(set.Meditation)
}

func provideWorkoutController(set *SessionSet) *controllers.WorkoutController {
	return controllers.NewWorkoutController(set.Workout)
}

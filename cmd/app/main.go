package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wellspring/cmd/fx/ai_fx"
	"wellspring/cmd/fx/audio_fx"
	"wellspring/cmd/fx/auth_fx"
	"wellspring/cmd/fx/db_fx"
	"wellspring/cmd/fx/gamification_fx"
	"wellspring/cmd/fx/identity_fx"
	"wellspring/cmd/fx/logger_fx"
	"wellspring/cmd/fx/mail_fx"
	"wellspring/cmd/fx/memcache_fx"
	"wellspring/cmd/fx/progress_fx"
	"wellspring/cmd/fx/redis_fx"
	"wellspring/cmd/fx/wellness_fx"
	"wellspring/internal/api/controllers"
	"wellspring/internal/infra"
	"wellspring/internal/repositories"
	"wellspring/pkg/identity"
	mem "wellspring/pkg/memcache"
	"wellspring/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		logger_fx.Module,
		db_fx.Module,
		redis_fx.Module,
		identity_fx.Module,
		mail_fx.Module,
		memcache_fx.Module,
		auth_fx.Module,
		wellness_fx.Module,
		progress_fx.Module,
		gamification_fx.Module,
		ai_fx.Module,
		audio_fx.Module,

		fx.Provide(controllers.NewHealthController),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB, limiter *middleware.RateLimiter, resetTokens mem.ResetTokenStore) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			limiter.Stop()
			resetTokens.Stop()
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

type RouterDeps struct {
	fx.In

	HealthController       *controllers.HealthController
	AuthController         *controllers.AuthController
	MeditationController   *controllers.MeditationController
	WorkoutController      *controllers.WorkoutController
	ProgressController     *controllers.ProgressController
	GamificationController *controllers.GamificationController
	AIController           *controllers.AIController
	AudioController        *controllers.AudioController

	IdentityProvider identity.Provider
	ProfileRepo      repositories.ProfileRepository
}

func ProvideRouter(deps RouterDeps) (*gin.Engine, *middleware.RateLimiter) {
	if os.Getenv("APP_ENV") == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(middleware.TraceIDMiddleware())

	limiter := middleware.NewRateLimiter(middleware.DefaultRateLimiterConfig())
	r.Use(limiter.Middleware())

	RegisterRoutes(r, deps)

	return r, limiter
}

func RegisterRoutes(r *gin.Engine, deps RouterDeps) {
	authRequired := middleware.AuthMiddleware(deps.IdentityProvider)
	profileRequired := middleware.ProfileMiddleware(deps.ProfileRepo)

	r.GET("/health", deps.HealthController.Check)

	v1 := r.Group("/api/v1")
	v1.GET("/health", deps.HealthController.Check)

	auth := v1.Group("/auth")
	auth.POST("/signup", deps.AuthController.SignUp)
	auth.POST("/login", deps.AuthController.Login)
	auth.POST("/forgot-password", deps.AuthController.ForgotPassword)
	auth.POST("/reset-password", deps.AuthController.ResetPassword)
	auth.POST("/register", authRequired, deps.AuthController.Register)
	auth.GET("/me", authRequired, deps.AuthController.Me)
	auth.PUT("/preferences", authRequired, deps.AuthController.UpdatePreferences)
	auth.DELETE("/account", authRequired, deps.AuthController.DeleteAccount)

	ai := v1.Group("/ai", authRequired, profileRequired)
	ai.POST("/mood-analysis", deps.AIController.AnalyzeMood)
	ai.POST("/chat", deps.AIController.Chat)
	ai.GET("/report", deps.AIController.Report)

	meditation := v1.Group("/wellness/meditation", authRequired, profileRequired)
	meditation.POST("/sessions", deps.MeditationController.Start)
	meditation.POST("/sessions/:id/complete", deps.MeditationController.Complete)
	meditation.PUT("/sessions/:id/progress", deps.MeditationController.SaveProgress)
	meditation.POST("/sessions/:id/rate", deps.MeditationController.Rate)
	meditation.GET("/history", deps.MeditationController.History)
	meditation.GET("/stats", deps.MeditationController.Stats)

	workout := v1.Group("/wellness/workout", authRequired, profileRequired)
	workout.POST("/sessions", deps.WorkoutController.Start)
	workout.POST("/sessions/:id/complete", deps.WorkoutController.Complete)
	workout.PUT("/sessions/:id/progress", deps.WorkoutController.SaveProgress)
	workout.POST("/sessions/:id/rate", deps.WorkoutController.Rate)
	workout.GET("/history", deps.WorkoutController.History)
	workout.GET("/stats", deps.WorkoutController.Stats)

	progress := v1.Group("/wellness/progress", authRequired, profileRequired)
	progress.POST("/checkins", deps.ProgressController.LogMoodCheckin)
	progress.GET("/checkins", deps.ProgressController.MoodHistory)
	progress.POST("/goals", deps.ProgressController.CreateGoal)
	progress.PUT("/goals/:id", deps.ProgressController.UpdateGoal)
	progress.GET("/goals", deps.ProgressController.ListGoals)
	progress.GET("/summary", deps.ProgressController.Summary)

	gamification := v1.Group("/wellness/gamification")
	gamification.GET("/leaderboard", deps.GamificationController.Leaderboard)
	gamification.GET("/badges", authRequired, profileRequired, deps.GamificationController.Badges)
	gamification.GET("/level", authRequired, profileRequired, deps.GamificationController.Level)
	gamification.GET("/rewards", authRequired, profileRequired, deps.GamificationController.Rewards)
	gamification.POST("/milestone", authRequired, profileRequired, deps.GamificationController.TriggerMilestone)
	gamification.POST("/celebrations/:id/viewed", authRequired, profileRequired, deps.GamificationController.MarkCelebrationViewed)

	audio := v1.Group("/audio", authRequired)
	audio.GET("/celebrations", deps.AudioController.ListCelebrations)
	audio.GET("/meditation", deps.AudioController.ListMeditation)
	audio.GET("/ambient", deps.AudioController.ListAmbient)
	audio.GET("/categories", deps.AudioController.Categories)
	audio.POST("/feedback", profileRequired, deps.AudioController.Feedback)
}

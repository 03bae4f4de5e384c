package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/vocabquest/server/config"
	"github.com/vocabquest/server/database"
	adminctrl "github.com/vocabquest/server/internal/controller/admin"
	userctrl "github.com/vocabquest/server/internal/controller/user"
	"github.com/vocabquest/server/internal/logger"
	"github.com/vocabquest/server/internal/model"
	"github.com/vocabquest/server/internal/repository"
	"github.com/vocabquest/server/internal/scheduler"
	"github.com/vocabquest/server/internal/service"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title VocabQuest API
// @version 1.0
// @description Vocabulary learning API with unit-based mini games, XP progression, leaderboards and parent reports.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewAccountRepository,
			repository.NewUnitRepository,
			repository.NewAttemptRepository,
			repository.NewProgressRepository,
			repository.NewLeaderboardRepository,
			repository.NewParentLinkRepository,
			repository.NewContentRepository,
		),

		fx.Provide(
			service.NewUnitService,
			service.NewAttemptService,
			service.NewLeaderboardService,
			service.NewParentService,
			service.NewGeminiContentGenerator,
			service.NewContentService,
			service.NewAdminService,
		),

		fx.Provide(
			userctrl.NewStudyController,
			userctrl.NewParentController,
			adminctrl.NewAdminController,
			scheduler.NewScheduler,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(StartScheduler),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer wires the controllers under /api/v1 and ties
// the HTTP server to the fx lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	studyCtrl *userctrl.StudyController,
	parentCtrl *userctrl.ParentController,
	adminCtrl *adminctrl.AdminController,
) {
	apiGroup := router.Group("/api/v1")
	studyCtrl.RegisterRoutes(apiGroup)
	parentCtrl.RegisterRoutes(apiGroup)

	adminGroup := router.Group("/api/v1/admin")
	adminCtrl.RegisterRoutes(adminGroup)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("VocabQuest API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

// StartScheduler ties the background jobs to the fx lifecycle.
func StartScheduler(lc fx.Lifecycle, sched *scheduler.Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return sched.Start()
		},
		OnStop: func(ctx context.Context) error {
			return sched.Stop()
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Account{},
		&model.Unit{},
		&model.Word{},
		&model.Attempt{},
		&model.ProgressRecord{},
		&model.LeaderboardEntry{},
		&model.ParentLink{},
		&model.GeneratedContent{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

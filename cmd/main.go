package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Lorikeets/config"
	"github.com/lshigami/Lorikeets/database"
	_ "github.com/lshigami/Lorikeets/docs" // Swagger docs - auto-generated
	adminctrl "github.com/lshigami/Lorikeets/internal/controller/admin"
	userctrl "github.com/lshigami/Lorikeets/internal/controller/user"
	"github.com/lshigami/Lorikeets/internal/logger"
	"github.com/lshigami/Lorikeets/internal/model"
	"github.com/lshigami/Lorikeets/internal/repository"
	"github.com/lshigami/Lorikeets/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Mastery & Grading API
// @version 1.0
// @description API for taking graded tests and tracking paragraph and chapter mastery.
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.url http://example.com/support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewTestRepository,
			repository.NewAttemptRepository,
			repository.NewAnswerRepository,
			repository.NewChapterRepository,
			repository.NewParagraphMasteryRepository,
			repository.NewChapterMasteryRepository,
			repository.NewMasteryHistoryRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewQuestionGrader,
			service.NewAttemptScorer,
			service.NewMasteryHistoryRecorder,
			service.NewParagraphMasteryService,
			service.NewChapterMasteryService,
			service.NewAttemptService,
			service.NewUserTestService,
			service.NewAdminTestService,
			service.NewMasteryQueryService,
		),

		// API Controllers Layer
		fx.Provide(
			adminctrl.NewAdminTestController,
			userctrl.NewTestController,
			userctrl.NewAttemptController,
			userctrl.NewMasteryController,
		),

		// Invokers - Functions that are executed by Fx
		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.DebugMode)

	r := gin.New()

	// Custom logger using Zerolog for Gin
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	// CORS Configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI
	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	adminTestCtrl *adminctrl.AdminTestController,
	testCtrl *userctrl.TestController,
	attemptCtrl *userctrl.AttemptController,
	masteryCtrl *userctrl.MasteryController,
) {
	// Admin Routes (prefixed with /api/v1/admin)
	adminAPIGroup := router.Group("/api/v1/admin")
	{
		adminAPIGroup.POST("/tests", adminTestCtrl.CreateTest)
		adminAPIGroup.POST("/chapters", adminTestCtrl.CreateChapter)
		adminAPIGroup.POST("/attempts/:attempt_id/questions/:question_id/review", adminTestCtrl.ReviewAnswer)
	}

	// User Routes (prefixed with /api/v1)
	userAPIGroup := router.Group("/api/v1")
	{
		// Chapter and test browsing
		userAPIGroup.GET("/chapters/:chapter_id", testCtrl.GetChapter)
		userAPIGroup.GET("/tests", testCtrl.GetAllTests)
		userAPIGroup.GET("/tests/:test_id", testCtrl.GetTestDetails)

		// Test Attempts
		userAPIGroup.POST("/tests/:test_id/attempts", attemptCtrl.StartAttempt)
		userAPIGroup.GET("/tests/:test_id/my-attempts", attemptCtrl.GetStudentAttempts) // Student ID from query
		userAPIGroup.POST("/attempts/:attempt_id/questions/:question_id/answer", attemptCtrl.RecordAnswer)
		userAPIGroup.POST("/attempts/:attempt_id/answers", attemptCtrl.SubmitAnswers)
		userAPIGroup.POST("/attempts/:attempt_id/complete", attemptCtrl.CompleteAttempt)
		userAPIGroup.GET("/attempts/:attempt_id", attemptCtrl.GetAttempt)

		// Mastery
		userAPIGroup.GET("/students/:student_id/paragraphs/:paragraph_id/mastery", masteryCtrl.GetParagraphMastery)
		userAPIGroup.GET("/students/:student_id/chapters/:chapter_id/mastery", masteryCtrl.GetChapterMastery)
		userAPIGroup.GET("/students/:student_id/chapters/:chapter_id/mastery/history", masteryCtrl.GetChapterMasteryHistory)
		userAPIGroup.GET("/students/:student_id/paragraphs/:paragraph_id/mastery/history", masteryCtrl.GetParagraphMasteryHistory)
	}

	// HTTP Server Setup and Lifecycle
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Mastery & Grading API server starting on port %s", cfg.Server.Port)
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

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Chapter{},
		&model.Paragraph{},
		&model.Test{},
		&model.Question{},
		&model.Option{},
		&model.TestAttempt{},
		&model.Answer{},
		&model.ParagraphMastery{},
		&model.ChapterMastery{},
		&model.MasteryHistory{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

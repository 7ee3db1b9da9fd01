package main

import (
	"context"
	"os"

	"github.com/careerconnect/careerconnect/internal/config"
	"github.com/careerconnect/careerconnect/internal/database"
	"github.com/careerconnect/careerconnect/internal/handlers"
	"github.com/careerconnect/careerconnect/internal/middleware"
	"github.com/careerconnect/careerconnect/internal/realtime"
	"github.com/careerconnect/careerconnect/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// .env is optional outside local dev.
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file loaded")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	log.Info().Msg("database connection established")

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.UploadDir).Msg("create upload dir")
	}

	ctx := context.Background()
	llmService, err := services.NewLLMService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatal().Err(err).Msg("llm client failed")
	}

	authService := services.NewAuthService(db, cfg.JWTSecret, cfg.TokenTTL)
	jobService := services.NewJobService(db)
	appService := services.NewApplicationService(db)
	dashService := services.NewDashboardService(db)
	messageService := services.NewMessageService(services.NewMessageRepo(db))

	// Presence: in-process map by default, shared Redis store when REDIS_ADDR
	// is set so direct delivery works across multiple instances.
	var presence realtime.PresenceStore = realtime.NewMemoryPresence()
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		presence = realtime.NewRedisPresence(rdb)
		log.Info().Str("addr", cfg.RedisAddr).Msg("using redis presence store")
	}

	strategy := realtime.DropOffline
	if cfg.BroadcastFallback {
		strategy = realtime.FallbackBroadcast
		log.Warn().Msg("broadcast fallback enabled: offline-targeted notifications go to everyone")
	}

	hub := realtime.NewHub(presence, authService, log)
	hub.AttachRelay(realtime.NewRelay(presence, hub, strategy, log))

	authHandler := handlers.NewAuthHandler(authService)
	jobHandler := handlers.NewJobHandler(jobService)
	appHandler := handlers.NewApplicationHandler(appService, cfg.UploadDir)
	dashHandler := handlers.NewDashboardHandler(dashService)
	aiHandler := handlers.NewAIHandler(llmService)
	messageHandler := handlers.NewMessageHandler(messageService)
	wsHandler := handlers.NewWSHandler(hub, cfg.AllowedOrigins, log)

	r := gin.Default()
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = cfg.AllowedOrigins
	corsCfg.AllowCredentials = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsCfg))

	r.Static("/uploads", cfg.UploadDir)
	r.GET("/ws", wsHandler.Connect)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		api.POST("/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/users/:id", authHandler.GetUser)

		api.POST("/jobs", jobHandler.Create)
		api.GET("/jobs", jobHandler.List)
		api.GET("/jobs/search", jobHandler.Search)
		api.GET("/jobs/:id", jobHandler.Get)
		api.PUT("/jobs/:id", jobHandler.Update)
		api.DELETE("/jobs/:id", jobHandler.Delete)

		api.POST("/apply", appHandler.Apply)
		api.PUT("/application/status/:id", appHandler.UpdateStatus)

		api.GET("/dashboard/jobseeker", dashHandler.Jobseeker)
		api.GET("/dashboard/recruiter", dashHandler.Recruiter)
		api.GET("/dashboard/recruiter/analytics", dashHandler.Analytics)

		api.POST("/messages/send", messageHandler.Send)
		api.GET("/messages/conversation", messageHandler.Conversation)
		api.POST("/messages/read", messageHandler.MarkRead)

		ai := api.Group("/ai", middleware.RateLimit(rate.Limit(1), 5))
		{
			ai.POST("/generate-jobdesc", aiHandler.GenerateJobDesc)
			ai.POST("/summarize-jobdesc", aiHandler.SummarizeJobDesc)
			ai.POST("/interview-questions", aiHandler.InterviewQuestions)
			ai.POST("/salary-guidance", aiHandler.SalaryGuidance)
			ai.POST("/resume-match", aiHandler.ResumeMatch)
		}
	}

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

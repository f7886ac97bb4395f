package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"wigu/internal/cache"
	"wigu/internal/config"
	"wigu/internal/repository"
	"wigu/internal/service"
	"wigu/internal/transport/rest"
	"wigu/internal/transport/ws"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading config from environment")
	}

	ctx := context.Background()
	cfg := config.Load()

	// AI config and model settings
	aiConfig := config.DefaultAIConfig()
	log.Printf("AI Config:")
	log.Printf("  Insights:      %s", aiConfig.Models.Insights)
	log.Printf("  Synthesis:     %s", aiConfig.Models.Synthesis)
	log.Printf("  Five Insights: %s", aiConfig.Models.FiveInsights)
	if aiConfig.IsEnabled() {
		log.Println("  API Key:       configured")
	} else {
		log.Println("  API Key:       NOT SET (using rule-based generation)")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Repositories
	sessionRepo := repository.NewSessionRepo(db)
	responseRepo := repository.NewResponseRepo(db)
	invitationRepo := repository.NewInvitationRepo(db)
	advisorRepo := repository.NewAdvisorResponseRepo(db)
	insightRepo := repository.NewInsightRepo(db)
	synthesisRepo := repository.NewSynthesisRepo(db)
	progressRepo := repository.NewProgressRepo(db)

	// Caches
	progressCache := cache.NewProgressCache(rdb)
	themeCache := cache.NewThemeCache(rdb)
	synthesisCache := cache.NewSynthesisCache(rdb)

	// Services (wsHub implements service.Broadcaster)
	themes := service.NewThemeExtractor()
	authSvc := service.NewAuthService()
	generationSvc := service.NewGenerationService(themes)
	progressSvc := service.NewProgressService(progressRepo, progressCache)
	sessionSvc := service.NewSessionService(sessionRepo, progressSvc, wsHub)
	responseSvc := service.NewResponseService(responseRepo, themeCache, themes, progressSvc, wsHub)
	advisorSvc := service.NewAdvisorService(invitationRepo, advisorRepo, themeCache, themes, authSvc, wsHub)
	insightSvc := service.NewInsightService(insightRepo, responseRepo, generationSvc, progressSvc, wsHub)
	synthesisSvc := service.NewSynthesisService(synthesisRepo, responseRepo, advisorRepo, insightRepo, synthesisCache, generationSvc, wsHub)

	container := &rest.Container{
		AuthService:      authSvc,
		SessionService:   sessionSvc,
		ResponseService:  responseSvc,
		AdvisorService:   advisorSvc,
		InsightService:   insightSvc,
		SynthesisService: synthesisSvc,
		ProgressService:  progressSvc,
		WSHub:            wsHub,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  POST/GET /v1/sessions")
		log.Println("  POST/GET /v1/sessions/{id}/responses")
		log.Println("  POST/GET /v1/sessions/{id}/advisors")
		log.Println("  POST/GET /v1/sessions/{id}/insights")
		log.Println("  POST/GET /v1/sessions/{id}/synthesis")
		log.Println("  POST/GET /v1/sessions/{id}/five-insights")
		log.Println("  GET  /v1/sessions/{id}/progress")
		log.Println("  WS  /v1/ws/sessions/{id}/owner")
		log.Println("  WS  /v1/ws/sessions/{id}/advisor")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

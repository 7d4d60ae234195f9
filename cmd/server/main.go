package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"deepmirror/internal/cache"
	"deepmirror/internal/config"
	"deepmirror/internal/repository"
	"deepmirror/internal/service"
	"deepmirror/internal/transport/rest"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, reading environment directly")
	}

	aiConfig := config.DefaultAIConfig()
	log.Printf("AI Config:")
	log.Printf("  Model:     %s", aiConfig.Model)
	log.Printf("  Timeout:   %dms", aiConfig.TimeoutMS)
	if aiConfig.IsEnabled() {
		log.Println("  API Key:   configured")
	} else {
		log.Println("  API Key:   NOT SET (analysis requests will fail)")
	}

	// MongoDB connection
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017/deepmirror"
		log.Println("Warning: MONGO_URI not set, using default")
	}

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
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

	db := mongoClient.Database("deepmirror")

	// Redis connection
	redisAddr := os.Getenv("REDIS_URI")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
		log.Println("Warning: REDIS_URI not set, using default")
	}
	redisAddr = strings.TrimPrefix(redisAddr, "redis://")

	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Repositories
	sessionRepo := repository.NewSessionRepo(db)
	aiLogRepo := repository.NewAILogRepo(db)

	// Caches. The claim TTL sits above the provider timeout so a crashed
	// holder cannot block a session forever.
	claimTTL := time.Duration(aiConfig.TimeoutMS)*time.Millisecond + 30*time.Second
	claim := cache.NewInvocationClaim(rdb, claimTTL)
	metricsCache := cache.NewMetricsCache(rdb)

	// Services
	llmClient := service.NewAnthropicClient(aiConfig)
	analysisSvc := service.NewAnalysisService(aiConfig, sessionRepo, aiLogRepo, claim, metricsCache, llmClient)

	container := &rest.Container{
		SessionRepo:     sessionRepo,
		MetricsCache:    metricsCache,
		AnalysisService: analysisSvc,
	}
	router := rest.NewRouter(container)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

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

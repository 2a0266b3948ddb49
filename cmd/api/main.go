package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	handlerHttp "github.com/mikiasgoitom/Vendora/internal/handler/http"
	redisclient "github.com/mikiasgoitom/Vendora/internal/infrastructure/cache"
	"github.com/mikiasgoitom/Vendora/internal/infrastructure/config"
	database "github.com/mikiasgoitom/Vendora/internal/infrastructure/database"
	"github.com/mikiasgoitom/Vendora/internal/infrastructure/jwt"
	"github.com/mikiasgoitom/Vendora/internal/infrastructure/logger"
	"github.com/mikiasgoitom/Vendora/internal/infrastructure/repository/mongodb"
	"github.com/mikiasgoitom/Vendora/internal/infrastructure/store"
	"github.com/mikiasgoitom/Vendora/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/Vendora/internal/infrastructure/validator"
	"github.com/mikiasgoitom/Vendora/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	dbName := os.Getenv("MONGODB_DB_NAME")
	if dbName == "" {
		log.Fatal("MONGODB_DB_NAME environment variable not set")
	}
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()
	db := mongoClient.Client.Database(dbName)

	// Initialize Gin router
	router := gin.Default()

	// Dependency Injection: Repositories
	postRepo := mongodb.NewPostRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	interactionRepo := mongodb.NewInteractionRepository(db)
	actorDirectory := mongodb.NewActorDirectory(db)

	// Optional Dependency Injection: Redis profile cache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		rdb, err := redisclient.NewRedisFromURL(context.Background(), redisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisclient.Close(rdb)
		actorDirectory.SetProfileCache(store.NewProfileCacheStore(rdb))
	}

	// Dependency Injection: Services
	appConfig := config.NewConfig()
	appLogger := logger.NewLogrusLogger()
	appValidator := validator.NewValidator(appConfig.GetMaxCommentLength())
	uuidGenerator := uuidgen.NewGenerator()
	jwtManager := jwt.NewManager(jwtSecret, 24*time.Hour)

	// Dependency Injection: Usecases
	likeUsecase := usecase.NewLikeUsecase(interactionRepo, commentRepo, postRepo, actorDirectory, appConfig, appLogger)
	commentUsecase := usecase.NewCommentUseCase(commentRepo, postRepo, actorDirectory, appValidator, appConfig, appLogger)
	shareUsecase := usecase.NewShareUseCase(postRepo, actorDirectory, appValidator, uuidGenerator, appConfig, appLogger)

	// Setup API routes
	appRouter := handlerHttp.NewRouter(likeUsecase, commentUsecase, shareUsecase, jwtManager)
	appRouter.SetupRoutes(router)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

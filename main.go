package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/abivignesh701/fittrack/config"
	"github.com/abivignesh701/fittrack/controllers"
	"github.com/abivignesh701/fittrack/helpers"
	"github.com/abivignesh701/fittrack/logger"
	"github.com/abivignesh701/fittrack/middleware"
	"github.com/abivignesh701/fittrack/routes"
	"github.com/abivignesh701/fittrack/services"
)

func main() {
	logger.Init()
	defer logger.Close()

	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, using system env vars")
	}

	cfg := config.Load()
	helpers.SetJWTKey(cfg.JWTSecret)

	db, err := config.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}

	dietService := services.NewDietService(db)
	workoutService := services.NewWorkoutService(db)
	userService := services.NewUserService(db)
	progressService := services.NewProgressService(dietService, workoutService)
	nutritionClient := services.NewNutritionClient(cfg.NinjaAPIKey)
	exerciseClient := services.NewExerciseClient(cfg.RapidAPIKey, cfg.RapidAPIHost)

	r := gin.Default()
	r.Use(middleware.CORS(cfg.CORSOrigin))

	api := r.Group("/api")
	routes.SetupRoutes(api, routes.Controllers{
		Auth:    controllers.NewAuthController(userService),
		Diet:    controllers.NewDietController(dietService, nutritionClient),
		Workout: controllers.NewWorkoutController(workoutService, exerciseClient),
		User:    controllers.NewUserController(userService, progressService),
	})

	logger.Info("Server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server failed to start", zap.Error(err))
	}
}

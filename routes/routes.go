package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/abivignesh701/fittrack/controllers"
	"github.com/abivignesh701/fittrack/middleware"
)

// Controllers bundles everything the route table mounts.
type Controllers struct {
	Auth    *controllers.AuthController
	Diet    *controllers.DietController
	Workout *controllers.WorkoutController
	User    *controllers.UserController
}

func SetupRoutes(router *gin.RouterGroup, c Controllers) {
	auth := router.Group("/auth")
	{
		auth.POST("/signup", c.Auth.Signup())
		auth.POST("/login", c.Auth.Login())
		auth.POST("/forgot-password", c.Auth.ForgotPassword())
		auth.POST("/reset-password", c.Auth.ResetPassword())
	}

	protected := router.Group("/")
	protected.Use(middleware.Authenticate())
	{
		diet := protected.Group("/diet")
		{
			diet.GET("/plan", c.Diet.GetPlan())
			diet.POST("/log-meal", c.Diet.LogMeal())
			diet.GET("/history", c.Diet.GetHistory())
			diet.GET("/today", c.Diet.GetToday())
			diet.PUT("/water-intake", c.Diet.UpdateWaterIntake())
			diet.DELETE("/meal/:logId/:mealId", c.Diet.DeleteMeal())
		}

		workouts := protected.Group("/workouts")
		{
			workouts.GET("/exercises", c.Workout.GetExercises())
			workouts.GET("/exercises/search", c.Workout.SearchExercises())
			workouts.GET("/bodyparts", c.Workout.GetBodyParts())
			workouts.POST("/log", c.Workout.LogWorkout())
			workouts.GET("/history", c.Workout.GetHistory())
			workouts.GET("/today", c.Workout.GetToday())
			workouts.PUT("/exercise/:logId/:exerciseId", c.Workout.UpdateExercise())
		}

		user := protected.Group("/user")
		{
			user.GET("/profile", c.User.GetProfile())
			user.PUT("/profile", c.User.UpdateProfile())
			user.GET("/progress", c.User.GetProgress())
		}
	}
}

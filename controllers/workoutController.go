package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abivignesh701/fittrack/models"
	"github.com/abivignesh701/fittrack/services"
)

// WorkoutController handles exercise lookups and workout log endpoints.
type WorkoutController struct {
	workouts  *services.WorkoutService
	exercises *services.ExerciseClient
}

func NewWorkoutController(workouts *services.WorkoutService, exercises *services.ExerciseClient) *WorkoutController {
	return &WorkoutController{workouts: workouts, exercises: exercises}
}

// GetExercises lists exercises, optionally filtered by bodyPart, target or
// equipment.
func (wc *WorkoutController) GetExercises() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID := getUserID(c); userID == "" {
			return
		}
		filter := services.ExerciseFilter{
			BodyPart:  c.Query("bodyPart"),
			Target:    c.Query("target"),
			Equipment: c.Query("equipment"),
			Limit:     c.Query("limit"),
			Offset:    c.Query("offset"),
		}

		items, err := wc.exercises.List(c.Request.Context(), filter)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Error fetching exercises", err)
			return
		}
		respondList(c, items, len(items))
	}
}

func (wc *WorkoutController) SearchExercises() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID := getUserID(c); userID == "" {
			return
		}
		name := c.Query("name")
		if name == "" {
			respondError(c, http.StatusBadRequest, "Please provide a search query", nil)
			return
		}

		items, err := wc.exercises.SearchByName(c.Request.Context(), name)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Error searching exercises", err)
			return
		}
		respondList(c, items, len(items))
	}
}

func (wc *WorkoutController) GetBodyParts() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID := getUserID(c); userID == "" {
			return
		}
		parts, err := wc.exercises.BodyParts(c.Request.Context())
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Error fetching body parts", err)
			return
		}
		respondOK(c, parts, "")
	}
}

func (wc *WorkoutController) LogWorkout() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		var body struct {
			Date        string            `json:"date"`
			Exercises   []models.Exercise `json:"exercises"`
			WorkoutType string            `json:"workoutType"`
			Intensity   string            `json:"intensity"`
			Notes       string            `json:"notes"`
		}
		if err := c.BindJSON(&body); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body", err)
			return
		}

		date := time.Now()
		if body.Date != "" {
			if parsed, ok := parseDate(body.Date); ok {
				date = parsed
			}
		}

		log, err := wc.workouts.LogWorkout(c.Request.Context(), userID, date, body.Exercises, body.WorkoutType, body.Intensity, body.Notes)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Error logging workout", err)
			return
		}
		respondOK(c, log, "Workout logged successfully")
	}
}

func (wc *WorkoutController) GetHistory() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		start, end, limit := historyParams(c)

		logs, err := wc.workouts.History(c.Request.Context(), userID, start, end, limit)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Error fetching workout history", err)
			return
		}
		respondList(c, logs, len(logs))
	}
}

func (wc *WorkoutController) GetToday() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		log, err := wc.workouts.Today(c.Request.Context(), userID)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Error fetching today's workout", err)
			return
		}
		respondOK(c, log, "")
	}
}

// UpdateExercise toggles the completed flag on one exercise in a log.
func (wc *WorkoutController) UpdateExercise() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		var body struct {
			Completed bool `json:"completed"`
		}
		if err := c.BindJSON(&body); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body", err)
			return
		}

		log, err := wc.workouts.SetExerciseCompleted(c.Request.Context(), userID, c.Param("logId"), c.Param("exerciseId"), body.Completed)
		if errors.Is(err, services.ErrLogNotFound) {
			respondError(c, http.StatusNotFound, "Workout log not found", nil)
			return
		}
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Error updating exercise", err)
			return
		}
		respondOK(c, log, "Exercise updated successfully")
	}
}

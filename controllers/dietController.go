package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abivignesh701/fittrack/services"
)

// DietController handles nutrition search and diet log endpoints.
type DietController struct {
	diet      *services.DietService
	nutrition *services.NutritionClient
}

func NewDietController(diet *services.DietService, nutrition *services.NutritionClient) *DietController {
	return &DietController{diet: diet, nutrition: nutrition}
}

// GetPlan proxies a free-text food query to the nutrition lookup API.
func (dc *DietController) GetPlan() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID := getUserID(c); userID == "" {
			return
		}
		query := c.Query("query")
		if query == "" {
			respondError(c, http.StatusBadRequest, "Please provide a food query", nil)
			return
		}

		items, err := dc.nutrition.Search(c.Request.Context(), query)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Error fetching nutrition data", err)
			return
		}
		respondOK(c, items, "")
	}
}

func (dc *DietController) LogMeal() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		var body struct {
			Date string             `json:"date"`
			Meal services.MealInput `json:"meal"`
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

		log, err := dc.diet.LogMeal(c.Request.Context(), userID, date, body.Meal)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Error logging meal", err)
			return
		}
		respondOK(c, log, "Meal logged successfully")
	}
}

func (dc *DietController) GetHistory() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		start, end, limit := historyParams(c)

		logs, err := dc.diet.History(c.Request.Context(), userID, start, end, limit)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Error fetching diet history", err)
			return
		}
		respondList(c, logs, len(logs))
	}
}

func (dc *DietController) GetToday() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		log, err := dc.diet.Today(c.Request.Context(), userID)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Error fetching today's diet", err)
			return
		}
		respondOK(c, log, "")
	}
}

func (dc *DietController) UpdateWaterIntake() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		var body struct {
			Amount float64 `json:"amount"`
			Date   string  `json:"date"`
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

		log, err := dc.diet.AddWaterIntake(c.Request.Context(), userID, date, body.Amount)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Error updating water intake", err)
			return
		}
		respondOK(c, log, "Water intake updated")
	}
}

func (dc *DietController) DeleteMeal() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		logID := c.Param("logId")
		mealID := c.Param("mealId")

		log, err := dc.diet.DeleteMeal(c.Request.Context(), userID, logID, mealID)
		if errors.Is(err, services.ErrLogNotFound) {
			respondError(c, http.StatusNotFound, "Diet log not found", nil)
			return
		}
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Error deleting meal", err)
			return
		}
		respondOK(c, log, "Meal deleted successfully")
	}
}

// historyParams parses the shared startDate/endDate/limit query params.
func historyParams(c *gin.Context) (start, end *time.Time, limit int64) {
	limit = 30
	if l := c.Query("limit"); l != "" {
		if n, err := strconv.ParseInt(l, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}
	if s := c.Query("startDate"); s != "" {
		if t, ok := parseDate(s); ok {
			start = &t
		}
	}
	if e := c.Query("endDate"); e != "" {
		if t, ok := parseDate(e); ok {
			end = &t
		}
	}
	return start, end, limit
}

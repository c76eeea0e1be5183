package services

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/abivignesh701/fittrack/models"
)

// MealInput is the wire shape of a meal being logged. Numeric fields are
// declared as any because the nutrition API returns placeholder strings for
// non-premium callers (e.g. "Only available for premium subscribers.").
type MealInput struct {
	Name     string `json:"name"`
	MealType string `json:"mealType"`
	Calories any    `json:"calories"`
	Protein  any    `json:"protein"`
	Carbs    any    `json:"carbs"`
	Fat      any    `json:"fat"`
	Fiber    any    `json:"fiber"`
	Sugar    any    `json:"sugar"`
	Time     string `json:"time"`
}

var mealTypes = map[string]bool{
	"breakfast": true,
	"lunch":     true,
	"dinner":    true,
	"snack":     true,
}

// SanitizeMeal coerces a raw meal payload into a storable Meal. Missing or
// non-numeric values become 0, an absent name becomes "Unknown Food" and an
// absent or unknown meal type becomes "snack".
func SanitizeMeal(in MealInput, now time.Time) models.Meal {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = "Unknown Food"
	}

	mealType := strings.ToLower(strings.TrimSpace(in.MealType))
	if !mealTypes[mealType] {
		mealType = "snack"
	}

	timeStr := strings.TrimSpace(in.Time)
	if timeStr == "" {
		timeStr = now.Format("3:04:05 PM")
	}

	return models.Meal{
		ID:       primitive.NewObjectID(),
		Name:     name,
		MealType: mealType,
		Calories: coerceNumber(in.Calories),
		Protein:  coerceNumber(in.Protein),
		Carbs:    coerceNumber(in.Carbs),
		Fat:      coerceNumber(in.Fat),
		Fiber:    coerceNumber(in.Fiber),
		Sugar:    coerceNumber(in.Sugar),
		Time:     timeStr,
	}
}

// coerceNumber converts whatever JSON decoding produced into a float64,
// treating anything unparseable as 0.
func coerceNumber(v any) float64 {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Meal is an entry embedded in a DietLog. It has no lifecycle of its own.
type Meal struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	MealType string             `bson:"meal_type" json:"mealType"` // breakfast | lunch | dinner | snack
	Calories float64            `bson:"calories" json:"calories"`
	Protein  float64            `bson:"protein,omitempty" json:"protein"`
	Carbs    float64            `bson:"carbs,omitempty" json:"carbs"`
	Fat      float64            `bson:"fat,omitempty" json:"fat"`
	Fiber    float64            `bson:"fiber,omitempty" json:"fiber"`
	Sugar    float64            `bson:"sugar,omitempty" json:"sugar"`
	Time     string             `bson:"time" json:"time"`
}

// DietLog is the single diet document for one user and one calendar day.
type DietLog struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        string             `bson:"user_id" json:"userId"`
	Date          time.Time          `bson:"date" json:"date"`
	Meals         []Meal             `bson:"meals" json:"meals"`
	TotalCalories float64            `bson:"total_calories" json:"totalCalories"`
	TotalProtein  float64            `bson:"total_protein" json:"totalProtein"`
	TotalCarbs    float64            `bson:"total_carbs" json:"totalCarbs"`
	TotalFat      float64            `bson:"total_fat" json:"totalFat"`
	WaterIntake   float64            `bson:"water_intake" json:"waterIntake"` // in ml
	Notes         string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}

// ComputeTotals recalculates the derived totals from the full meals slice.
// Services call this before every persist; totals are never set directly.
func (d *DietLog) ComputeTotals() {
	var calories, protein, carbs, fat float64
	for _, m := range d.Meals {
		calories += m.Calories
		protein += m.Protein
		carbs += m.Carbs
		fat += m.Fat
	}
	d.TotalCalories = calories
	d.TotalProtein = protein
	d.TotalCarbs = carbs
	d.TotalFat = fat
}

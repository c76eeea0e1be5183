package services

import (
	"encoding/json"
	"testing"
	"time"
)

func TestSanitizeMealCoercesPlaceholderStrings(t *testing.T) {
	// Non-premium nutrition API responses carry strings in numeric fields.
	in := MealInput{
		Name:     "brisket",
		MealType: "dinner",
		Calories: "Only available for premium subscribers.",
		Protein:  "premium",
		Carbs:    12.5,
		Fat:      json.Number("3.2"),
	}
	meal := SanitizeMeal(in, time.Now())

	if meal.Calories != 0 {
		t.Errorf("Calories = %v, want 0", meal.Calories)
	}
	if meal.Protein != 0 {
		t.Errorf("Protein = %v, want 0", meal.Protein)
	}
	if meal.Carbs != 12.5 {
		t.Errorf("Carbs = %v, want 12.5", meal.Carbs)
	}
	if meal.Fat != 3.2 {
		t.Errorf("Fat = %v, want 3.2", meal.Fat)
	}
}

func TestSanitizeMealNumericStringsParse(t *testing.T) {
	meal := SanitizeMeal(MealInput{Name: "rice", Calories: "210"}, time.Now())
	if meal.Calories != 210 {
		t.Errorf("Calories = %v, want 210", meal.Calories)
	}
}

func TestSanitizeMealDefaults(t *testing.T) {
	now := time.Date(2024, 3, 14, 9, 26, 53, 0, time.UTC)
	meal := SanitizeMeal(MealInput{}, now)

	if meal.Name != "Unknown Food" {
		t.Errorf("Name = %q, want \"Unknown Food\"", meal.Name)
	}
	if meal.MealType != "snack" {
		t.Errorf("MealType = %q, want snack", meal.MealType)
	}
	if meal.Time != "9:26:53 AM" {
		t.Errorf("Time = %q, want 9:26:53 AM", meal.Time)
	}
	if meal.ID.IsZero() {
		t.Error("expected a generated meal id")
	}
}

func TestSanitizeMealUnknownMealType(t *testing.T) {
	meal := SanitizeMeal(MealInput{Name: "toast", MealType: "brunch"}, time.Now())
	if meal.MealType != "snack" {
		t.Errorf("MealType = %q, want snack", meal.MealType)
	}
}

func TestCoerceNumber(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want float64
	}{
		{"float", 42.5, 42.5},
		{"int", 7, 7},
		{"numeric string", "18.25", 18.25},
		{"padded string", " 90 ", 90},
		{"placeholder string", "Only available for premium subscribers.", 0},
		{"nil", nil, 0},
		{"bool", true, 0},
		{"json number", json.Number("64"), 64},
		{"bad json number", json.Number("x"), 0},
	}
	for _, tc := range cases {
		if got := coerceNumber(tc.in); got != tc.want {
			t.Errorf("%s: coerceNumber(%v) = %v, want %v", tc.name, tc.in, got, tc.want)
		}
	}
}

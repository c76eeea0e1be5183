package models

import "testing"

func TestDietLogComputeTotals(t *testing.T) {
	log := DietLog{
		Meals: []Meal{
			{Name: "Oats", MealType: "breakfast", Calories: 350, Protein: 12, Carbs: 60, Fat: 6},
			{Name: "Chicken salad", MealType: "lunch", Calories: 520, Protein: 42, Carbs: 18, Fat: 28},
		},
	}
	log.ComputeTotals()

	if log.TotalCalories != 870 {
		t.Errorf("TotalCalories = %v, want 870", log.TotalCalories)
	}
	if log.TotalProtein != 54 {
		t.Errorf("TotalProtein = %v, want 54", log.TotalProtein)
	}
	if log.TotalCarbs != 78 {
		t.Errorf("TotalCarbs = %v, want 78", log.TotalCarbs)
	}
	if log.TotalFat != 34 {
		t.Errorf("TotalFat = %v, want 34", log.TotalFat)
	}
}

func TestDietLogComputeTotalsAfterEachAppend(t *testing.T) {
	log := DietLog{Meals: []Meal{}}

	meals := []Meal{
		{Name: "Toast", MealType: "breakfast", Calories: 200, Protein: 6},
		{Name: "Apple", MealType: "snack", Calories: 95},
		{Name: "Pasta", MealType: "dinner", Calories: 600, Protein: 20},
	}

	var wantCalories, wantProtein float64
	for _, m := range meals {
		log.Meals = append(log.Meals, m)
		log.ComputeTotals()
		wantCalories += m.Calories
		wantProtein += m.Protein

		if log.TotalCalories != wantCalories {
			t.Fatalf("after appending %s: TotalCalories = %v, want %v", m.Name, log.TotalCalories, wantCalories)
		}
		if log.TotalProtein != wantProtein {
			t.Fatalf("after appending %s: TotalProtein = %v, want %v", m.Name, log.TotalProtein, wantProtein)
		}
	}
}

func TestDietLogComputeTotalsEmpty(t *testing.T) {
	log := DietLog{Meals: []Meal{}}
	log.ComputeTotals()

	if log.TotalCalories != 0 || log.TotalProtein != 0 || log.TotalCarbs != 0 || log.TotalFat != 0 {
		t.Errorf("expected all totals zero for empty meals, got %+v", log)
	}
}

func TestDietLogComputeTotalsSelfHeals(t *testing.T) {
	// Stale totals from a prior bad write must be replaced, not adjusted.
	log := DietLog{
		Meals:         []Meal{{Name: "Rice", MealType: "lunch", Calories: 300}},
		TotalCalories: 9999,
		TotalProtein:  -5,
	}
	log.ComputeTotals()

	if log.TotalCalories != 300 {
		t.Errorf("TotalCalories = %v, want 300", log.TotalCalories)
	}
	if log.TotalProtein != 0 {
		t.Errorf("TotalProtein = %v, want 0", log.TotalProtein)
	}
}

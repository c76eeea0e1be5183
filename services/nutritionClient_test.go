package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNutritionSearchParsesResponse(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Api-Key"); got != "demo" {
			t.Errorf("X-Api-Key = %q, want demo", got)
		}
		if got := r.URL.Query().Get("query"); got != "1 cup rice" {
			t.Errorf("query = %q, want \"1 cup rice\"", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
  {"name": "rice", "calories": 205.4, "protein_g": 4.2, "carbohydrates_total_g": 44.6, "fat_total_g": 0.4, "fiber_g": 0.6, "sugar_g": 0.1}
]`))
	}))
	defer ts.Close()

	c := &NutritionClient{APIKey: "demo", BaseURL: ts.URL, HTTPClient: ts.Client()}

	items, err := c.Search(context.Background(), "1 cup rice")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Name != "rice" {
		t.Errorf("name = %q, want rice", items[0].Name)
	}
	if items[0].Calories != 205.4 {
		t.Errorf("calories = %v, want 205.4", items[0].Calories)
	}
}

func TestNutritionSearchToleratesPremiumPlaceholders(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
  {"name": "brisket", "calories": "Only available for premium subscribers.", "protein_g": 21.2, "fat_total_g": "Only available for premium subscribers."}
]`))
	}))
	defer ts.Close()

	c := &NutritionClient{APIKey: "demo", BaseURL: ts.URL, HTTPClient: ts.Client()}

	items, err := c.Search(context.Background(), "brisket")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	// The placeholder must survive decode; sanitization downstream zeroes it.
	meal := SanitizeMeal(MealInput{
		Name:     items[0].Name,
		Calories: items[0].Calories,
		Protein:  items[0].Protein,
		Fat:      items[0].Fat,
	}, time.Now())
	if meal.Calories != 0 {
		t.Errorf("sanitized calories = %v, want 0", meal.Calories)
	}
	if meal.Protein != 21.2 {
		t.Errorf("sanitized protein = %v, want 21.2", meal.Protein)
	}
}

func TestNutritionSearchErrorStatus(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad key", http.StatusUnauthorized)
	}))
	defer ts.Close()

	c := &NutritionClient{APIKey: "bad", BaseURL: ts.URL, HTTPClient: ts.Client()}

	if _, err := c.Search(context.Background(), "rice"); err == nil {
		t.Fatal("expected error for 401 response")
	}
}

package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestExerciseListFilterPicksPath(t *testing.T) {
	t.Parallel()

	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if got := r.Header.Get("X-RapidAPI-Key"); got != "demo" {
			t.Errorf("X-RapidAPI-Key = %q, want demo", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
  {"name": "barbell squat", "bodyPart": "upper legs", "equipment": "barbell", "target": "quads", "gifUrl": "https://example.com/squat.gif"}
]`))
	}))
	defer ts.Close()

	c := &ExerciseClient{APIKey: "demo", APIHost: "exercisedb.p.rapidapi.com", BaseURL: ts.URL, HTTPClient: ts.Client()}

	items, err := c.List(context.Background(), ExerciseFilter{BodyPart: "upper legs"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if gotPath != "/exercises/bodyPart/upper%20legs" && gotPath != "/exercises/bodyPart/upper legs" {
		t.Errorf("path = %q, want body part path", gotPath)
	}
	if len(items) != 1 || items[0].Target != "quads" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestExerciseListDefaultsPagination(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("limit"); got != "10" {
			t.Errorf("limit = %q, want 10", got)
		}
		if got := r.URL.Query().Get("offset"); got != "0" {
			t.Errorf("offset = %q, want 0", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	c := &ExerciseClient{APIKey: "demo", APIHost: "exercisedb.p.rapidapi.com", BaseURL: ts.URL, HTTPClient: ts.Client()}

	if _, err := c.List(context.Background(), ExerciseFilter{}); err != nil {
		t.Fatalf("list: %v", err)
	}
}

func TestExerciseBodyParts(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/exercises/bodyPartList" {
			t.Errorf("path = %q, want /exercises/bodyPartList", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`["back", "cardio", "chest"]`))
	}))
	defer ts.Close()

	c := &ExerciseClient{APIKey: "demo", APIHost: "exercisedb.p.rapidapi.com", BaseURL: ts.URL, HTTPClient: ts.Client()}

	parts, err := c.BodyParts(context.Background())
	if err != nil {
		t.Fatalf("body parts: %v", err)
	}
	if len(parts) != 3 || parts[0] != "back" {
		t.Fatalf("unexpected parts: %v", parts)
	}
}

func TestExerciseSearchErrorStatus(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer ts.Close()

	c := &ExerciseClient{APIKey: "demo", APIHost: "exercisedb.p.rapidapi.com", BaseURL: ts.URL, HTTPClient: ts.Client()}

	if _, err := c.SearchByName(context.Background(), "squat"); err == nil {
		t.Fatal("expected error for 429 response")
	}
}

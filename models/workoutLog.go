package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultSets = 3
	DefaultReps = 12
)

// Exercise is an entry embedded in a WorkoutLog. Metadata fields typically come
// from the exercise database API.
type Exercise struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	BodyPart       string             `bson:"body_part,omitempty" json:"bodyPart,omitempty"`
	Equipment      string             `bson:"equipment,omitempty" json:"equipment,omitempty"`
	Target         string             `bson:"target,omitempty" json:"target,omitempty"`
	GifURL         string             `bson:"gif_url,omitempty" json:"gifUrl,omitempty"`
	Sets           int                `bson:"sets" json:"sets"`
	Reps           int                `bson:"reps" json:"reps"`
	Duration       float64            `bson:"duration,omitempty" json:"duration,omitempty"` // in seconds
	CaloriesBurned float64            `bson:"calories_burned,omitempty" json:"caloriesBurned,omitempty"`
	Completed      bool               `bson:"completed" json:"completed"`
}

// WorkoutLog is the single workout document for one user and one calendar day.
type WorkoutLog struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID              string             `bson:"user_id" json:"userId"`
	Date                time.Time          `bson:"date" json:"date"`
	Exercises           []Exercise         `bson:"exercises" json:"exercises"`
	TotalDuration       float64            `bson:"total_duration" json:"totalDuration"` // in minutes
	TotalCaloriesBurned float64            `bson:"total_calories_burned" json:"totalCaloriesBurned"`
	WorkoutType         string             `bson:"workout_type" json:"workoutType"` // strength | cardio | flexibility | mixed
	Intensity           string             `bson:"intensity" json:"intensity"`      // low | medium | high
	Notes               string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt           time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt           time.Time          `bson:"updated_at" json:"updated_at"`
}

// ComputeTotals recalculates the derived totals from the full exercises slice.
// Durations are stored in seconds; TotalDuration is minutes, so the sum is
// divided by 60 without truncation. Completion flags do not affect totals.
func (w *WorkoutLog) ComputeTotals() {
	var seconds, burned float64
	for _, ex := range w.Exercises {
		seconds += ex.Duration
		burned += ex.CaloriesBurned
	}
	w.TotalDuration = seconds / 60
	w.TotalCaloriesBurned = burned
}

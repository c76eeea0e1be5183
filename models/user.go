package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Username      *string            `bson:"username" json:"username" validate:"required,min=2,max=100"`
	Email         *string            `bson:"email" json:"email" validate:"required,email"`
	Password      *string            `bson:"password" json:"password,omitempty" validate:"required,min=6"`
	Age           int                `bson:"age,omitempty" json:"age,omitempty"`
	Gender        string             `bson:"gender,omitempty" json:"gender,omitempty"`
	Weight        float64            `bson:"weight,omitempty" json:"weight,omitempty"` // kg
	Height        float64            `bson:"height,omitempty" json:"height,omitempty"` // cm
	FitnessGoals  string             `bson:"fitness_goals,omitempty" json:"fitnessGoals,omitempty"`
	DietaryPrefs  string             `bson:"dietary_preferences,omitempty" json:"dietaryPreferences,omitempty"`
	TargetCal     float64            `bson:"target_calories,omitempty" json:"targetCalories,omitempty"`
	Token         *string            `bson:"token,omitempty" json:"token,omitempty"`
	Refresh_token *string            `bson:"refresh_token,omitempty" json:"refresh_token,omitempty"`
	Reset_token   *string            `bson:"reset_token,omitempty" json:"-"`
	Reset_expires *time.Time         `bson:"reset_expires,omitempty" json:"-"`
	Created_at    time.Time          `bson:"created_at" json:"created_at"`
	Updated_at    time.Time          `bson:"updated_at" json:"updated_at"`
	User_id       string             `bson:"user_id" json:"user_id"`
}

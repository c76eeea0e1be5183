package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/abivignesh701/fittrack/models"
)

// UserService owns the users collection.
type UserService struct {
	users *mongo.Collection
}

func NewUserService(db *mongo.Database) *UserService {
	return &UserService{users: db.Collection("users")}
}

// ProfileUpdate carries the editable profile fields. Zero values mean
// "keep the stored value", mirroring the falsy-retain merge on the frontend.
type ProfileUpdate struct {
	Username     string  `json:"username"`
	Age          int     `json:"age"`
	Gender       string  `json:"gender"`
	Weight       float64 `json:"weight"`
	Height       float64 `json:"height"`
	FitnessGoals string  `json:"fitnessGoals"`
	DietaryPrefs string  `json:"dietaryPreferences"`
	TargetCal    float64 `json:"targetCalories"`
}

func (s *UserService) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()
	_, err := s.users.InsertOne(ctx, user)
	return err
}

func (s *UserService) CountByEmail(ctx context.Context, email string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()
	return s.users.CountDocuments(ctx, bson.M{"email": email})
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) FindByUserID(ctx context.Context, userID string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"user_id": userID}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile merges the provided fields into the stored profile, keeping
// the stored value wherever the incoming one is zero.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in ProfileUpdate) (*models.User, error) {
	user, err := s.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Username != "" {
		user.Username = &in.Username
	}
	if in.Age != 0 {
		user.Age = in.Age
	}
	if in.Gender != "" {
		user.Gender = in.Gender
	}
	if in.Weight != 0 {
		user.Weight = in.Weight
	}
	if in.Height != 0 {
		user.Height = in.Height
	}
	if in.FitnessGoals != "" {
		user.FitnessGoals = in.FitnessGoals
	}
	if in.DietaryPrefs != "" {
		user.DietaryPrefs = in.DietaryPrefs
	}
	if in.TargetCal != 0 {
		user.TargetCal = in.TargetCal
	}
	user.Updated_at = time.Now()

	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()
	_, err = s.users.ReplaceOne(ctx, bson.M{"user_id": userID}, user)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateTokens stores freshly issued tokens on the user document.
func (s *UserService) UpdateTokens(ctx context.Context, userID, token, refreshToken string) error {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "token", Value: token},
		{Key: "refresh_token", Value: refreshToken},
		{Key: "updated_at", Value: time.Now()},
	}}}
	_, err := s.users.UpdateOne(ctx, bson.M{"user_id": userID}, update)
	return err
}

// SetResetToken stores a password-reset token with its expiry.
func (s *UserService) SetResetToken(ctx context.Context, userID, token string, expires time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "reset_token", Value: token},
		{Key: "reset_expires", Value: expires},
		{Key: "updated_at", Value: time.Now()},
	}}}
	_, err := s.users.UpdateOne(ctx, bson.M{"user_id": userID}, update)
	return err
}

// FindByResetToken resolves a pending password-reset token.
func (s *UserService) FindByResetToken(ctx context.Context, token string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"reset_token": token}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ResetPassword replaces the password hash and clears the reset token.
func (s *UserService) ResetPassword(ctx context.Context, userID, hashedPassword string) error {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "password", Value: hashedPassword},
		{Key: "reset_token", Value: nil},
		{Key: "reset_expires", Value: nil},
		{Key: "updated_at", Value: time.Now()},
	}}}
	_, err := s.users.UpdateOne(ctx, bson.M{"user_id": userID}, update)
	return err
}

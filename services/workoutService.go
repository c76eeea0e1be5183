package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/abivignesh701/fittrack/logger"
	"github.com/abivignesh701/fittrack/models"
	"go.uber.org/zap"
)

// WorkoutService owns the workout_logs collection: one document per user per day.
type WorkoutService struct {
	logs *mongo.Collection
}

func NewWorkoutService(db *mongo.Database) *WorkoutService {
	return &WorkoutService{logs: db.Collection("workout_logs")}
}

func (s *WorkoutService) findForDay(ctx context.Context, userID string, date time.Time) (*models.WorkoutLog, error) {
	start, end := DayBounds(date)
	var log models.WorkoutLog
	err := s.logs.FindOne(ctx, bson.M{
		"user_id": userID,
		"date":    bson.M{"$gte": start, "$lt": end},
	}).Decode(&log)
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func (s *WorkoutService) save(ctx context.Context, log *models.WorkoutLog) error {
	log.ComputeTotals()
	log.UpdatedAt = time.Now()
	_, err := s.logs.ReplaceOne(ctx, bson.M{"_id": log.ID}, log)
	return err
}

// normalizeExercises assigns ids and backfills the sets/reps defaults.
func normalizeExercises(exercises []models.Exercise) []models.Exercise {
	out := make([]models.Exercise, 0, len(exercises))
	for _, ex := range exercises {
		if ex.ID.IsZero() {
			ex.ID = primitive.NewObjectID()
		}
		if ex.Sets <= 0 {
			ex.Sets = models.DefaultSets
		}
		if ex.Reps <= 0 {
			ex.Reps = models.DefaultReps
		}
		out = append(out, ex)
	}
	return out
}

// LogWorkout appends one or more exercises to the day's log, creating it when
// absent. Provided metadata overwrites the stored value only when non-empty.
func (s *WorkoutService) LogWorkout(ctx context.Context, userID string, date time.Time, exercises []models.Exercise, workoutType, intensity, notes string) (*models.WorkoutLog, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	exercises = normalizeExercises(exercises)

	log, err := s.findForDay(ctx, userID, date)
	if errors.Is(err, mongo.ErrNoDocuments) {
		now := time.Now()
		created := &models.WorkoutLog{
			ID:          primitive.NewObjectID(),
			UserID:      userID,
			Date:        StartOfDay(date),
			Exercises:   exercises,
			WorkoutType: defaultString(workoutType, "mixed"),
			Intensity:   defaultString(intensity, "medium"),
			Notes:       notes,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		created.ComputeTotals()
		if _, err := s.logs.InsertOne(ctx, created); err != nil {
			return nil, err
		}
		return created, nil
	}
	if err != nil {
		return nil, err
	}

	log.Exercises = append(log.Exercises, exercises...)
	if workoutType != "" {
		log.WorkoutType = workoutType
	}
	if intensity != "" {
		log.Intensity = intensity
	}
	if notes != "" {
		log.Notes = notes
	}
	if err := s.save(ctx, log); err != nil {
		return nil, err
	}
	logger.Info("workout logged", zap.String("user_id", userID), zap.Int("exercises", len(exercises)))
	return log, nil
}

func defaultString(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

// SetExerciseCompleted flips the completed flag on one embedded exercise.
// Totals are calorie/duration sums, so this never recomputes anything visible,
// but the write still goes through the shared save path. An unknown exercise
// id is a no-op.
func (s *WorkoutService) SetExerciseCompleted(ctx context.Context, userID, logID, exerciseID string, completed bool) (*models.WorkoutLog, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	logObjID, err := primitive.ObjectIDFromHex(logID)
	if err != nil {
		return nil, ErrLogNotFound
	}

	var log models.WorkoutLog
	err = s.logs.FindOne(ctx, bson.M{"_id": logObjID, "user_id": userID}).Decode(&log)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrLogNotFound
	}
	if err != nil {
		return nil, err
	}

	for i := range log.Exercises {
		if log.Exercises[i].ID.Hex() == exerciseID {
			log.Exercises[i].Completed = completed
			if err := s.save(ctx, &log); err != nil {
				return nil, err
			}
			break
		}
	}
	return &log, nil
}

// History returns the user's logs most-recent-first, optionally bounded by
// start/end dates, capped at limit.
func (s *WorkoutService) History(ctx context.Context, userID string, start, end *time.Time, limit int64) ([]models.WorkoutLog, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	filter := bson.M{"user_id": userID}
	if start != nil || end != nil {
		dateFilter := bson.M{}
		if start != nil {
			dateFilter["$gte"] = *start
		}
		if end != nil {
			dateFilter["$lte"] = *end
		}
		filter["date"] = dateFilter
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}}).SetLimit(limit)
	cursor, err := s.logs.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.WorkoutLog
	err = cursor.All(ctx, &out)
	return out, err
}

// Today returns the current day's log, or a zeroed placeholder so callers
// never have to nil-check.
func (s *WorkoutService) Today(ctx context.Context, userID string) (*models.WorkoutLog, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	log, err := s.findForDay(ctx, userID, time.Now())
	if errors.Is(err, mongo.ErrNoDocuments) {
		return EmptyWorkoutLog(userID, time.Now()), nil
	}
	if err != nil {
		return nil, err
	}
	return log, nil
}

// EmptyWorkoutLog is the default-shaped placeholder for a day with no document.
func EmptyWorkoutLog(userID string, date time.Time) *models.WorkoutLog {
	return &models.WorkoutLog{
		UserID:    userID,
		Date:      date,
		Exercises: []models.Exercise{},
	}
}

// FindSince returns all logs with date >= since, most recent first.
func (s *WorkoutService) FindSince(ctx context.Context, userID string, since time.Time) ([]models.WorkoutLog, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := s.logs.Find(ctx, bson.M{
		"user_id": userID,
		"date":    bson.M{"$gte": since},
	}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.WorkoutLog
	err = cursor.All(ctx, &out)
	return out, err
}

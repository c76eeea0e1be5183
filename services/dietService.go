package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/abivignesh701/fittrack/logger"
	"github.com/abivignesh701/fittrack/models"
	"go.uber.org/zap"
)

const dbTimeout = 10 * time.Second

// DietService owns the diet_logs collection: one document per user per day.
type DietService struct {
	logs *mongo.Collection
}

func NewDietService(db *mongo.Database) *DietService {
	return &DietService{logs: db.Collection("diet_logs")}
}

// findForDay returns the user's diet log for the calendar day containing date,
// or mongo.ErrNoDocuments.
func (s *DietService) findForDay(ctx context.Context, userID string, date time.Time) (*models.DietLog, error) {
	start, end := DayBounds(date)
	var log models.DietLog
	err := s.logs.FindOne(ctx, bson.M{
		"user_id": userID,
		"date":    bson.M{"$gte": start, "$lt": end},
	}).Decode(&log)
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// save recomputes the derived totals and writes the whole document back.
// Recompute always runs over the full meals slice so stale totals self-heal.
func (s *DietService) save(ctx context.Context, log *models.DietLog) error {
	log.ComputeTotals()
	log.UpdatedAt = time.Now()
	_, err := s.logs.ReplaceOne(ctx, bson.M{"_id": log.ID}, log)
	return err
}

// LogMeal appends a sanitized meal to the day's log, creating the log if the
// user has not logged anything that day yet.
func (s *DietService) LogMeal(ctx context.Context, userID string, date time.Time, in MealInput) (*models.DietLog, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	meal := SanitizeMeal(in, time.Now())

	log, err := s.findForDay(ctx, userID, date)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return s.createForDay(ctx, userID, date, []models.Meal{meal}, 0)
	}
	if err != nil {
		return nil, err
	}

	log.Meals = append(log.Meals, meal)
	if err := s.save(ctx, log); err != nil {
		return nil, err
	}
	logger.Info("meal logged", zap.String("user_id", userID), zap.String("meal", meal.Name))
	return log, nil
}

func (s *DietService) createForDay(ctx context.Context, userID string, date time.Time, meals []models.Meal, water float64) (*models.DietLog, error) {
	now := time.Now()
	log := &models.DietLog{
		ID:          primitive.NewObjectID(),
		UserID:      userID,
		Date:        StartOfDay(date),
		Meals:       meals,
		WaterIntake: water,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	log.ComputeTotals()
	if _, err := s.logs.InsertOne(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

// AddWaterIntake increments the day's water counter, creating an otherwise
// empty log when the day has no document yet.
func (s *DietService) AddWaterIntake(ctx context.Context, userID string, date time.Time, amount float64) (*models.DietLog, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	log, err := s.findForDay(ctx, userID, date)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return s.createForDay(ctx, userID, date, []models.Meal{}, amount)
	}
	if err != nil {
		return nil, err
	}

	log.WaterIntake += amount
	if err := s.save(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

// DeleteMeal removes a meal by id and recomputes totals. An unknown mealID is
// a no-op; an unknown or foreign logID is ErrLogNotFound.
func (s *DietService) DeleteMeal(ctx context.Context, userID, logID, mealID string) (*models.DietLog, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	logObjID, err := primitive.ObjectIDFromHex(logID)
	if err != nil {
		return nil, ErrLogNotFound
	}

	var log models.DietLog
	err = s.logs.FindOne(ctx, bson.M{"_id": logObjID, "user_id": userID}).Decode(&log)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrLogNotFound
	}
	if err != nil {
		return nil, err
	}

	kept := log.Meals[:0]
	for _, m := range log.Meals {
		if m.ID.Hex() != mealID {
			kept = append(kept, m)
		}
	}
	log.Meals = kept

	if err := s.save(ctx, &log); err != nil {
		return nil, err
	}
	return &log, nil
}

// History returns the user's logs most-recent-first, optionally bounded by
// start/end dates, capped at limit.
func (s *DietService) History(ctx context.Context, userID string, start, end *time.Time, limit int64) ([]models.DietLog, error) {
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

	var out []models.DietLog
	err = cursor.All(ctx, &out)
	return out, err
}

// Today returns the current day's log, or a zeroed placeholder so callers
// never have to nil-check.
func (s *DietService) Today(ctx context.Context, userID string) (*models.DietLog, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	log, err := s.findForDay(ctx, userID, time.Now())
	if errors.Is(err, mongo.ErrNoDocuments) {
		return EmptyDietLog(userID, time.Now()), nil
	}
	if err != nil {
		return nil, err
	}
	return log, nil
}

// EmptyDietLog is the default-shaped placeholder for a day with no document.
func EmptyDietLog(userID string, date time.Time) *models.DietLog {
	return &models.DietLog{
		UserID: userID,
		Date:   date,
		Meals:  []models.Meal{},
	}
}

// FindSince returns all logs with date >= since, most recent first. Used by
// the progress summary.
func (s *DietService) FindSince(ctx context.Context, userID string, since time.Time) ([]models.DietLog, error) {
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

	var out []models.DietLog
	err = cursor.All(ctx, &out)
	return out, err
}

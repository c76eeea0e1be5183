package services

import (
	"context"
	"math"
	"time"

	"github.com/abivignesh701/fittrack/models"
)

// ProgressSummary is the aggregate view over a trailing window of days.
type ProgressSummary struct {
	TotalCaloriesConsumed float64             `json:"totalCaloriesConsumed"`
	TotalCaloriesBurned   float64             `json:"totalCaloriesBurned"`
	TotalWorkouts         int                 `json:"totalWorkouts"`
	AvgCaloriesPerDay     int                 `json:"avgCaloriesPerDay"`
	Streak                int                 `json:"streak"`
	DietLogs              []models.DietLog    `json:"dietLogs"`
	WorkoutLogs           []models.WorkoutLog `json:"workoutLogs"`
}

// ProgressService composes diet and workout history into summary statistics.
type ProgressService struct {
	diet     *DietService
	workouts *WorkoutService
}

func NewProgressService(diet *DietService, workouts *WorkoutService) *ProgressService {
	return &ProgressService{diet: diet, workouts: workouts}
}

// Summary fetches both histories for the trailing window and reduces them.
func (s *ProgressService) Summary(ctx context.Context, userID string, days int) (*ProgressSummary, error) {
	since := time.Now().AddDate(0, 0, -days)

	dietLogs, err := s.diet.FindSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	workoutLogs, err := s.workouts.FindSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	summary := BuildSummary(dietLogs, workoutLogs, time.Now())
	return &summary, nil
}

// BuildSummary reduces fetched logs into the progress payload. Pure so the
// math is testable without a database.
func BuildSummary(dietLogs []models.DietLog, workoutLogs []models.WorkoutLog, now time.Time) ProgressSummary {
	var consumed, burned float64
	for _, log := range dietLogs {
		consumed += log.TotalCalories
	}
	for _, log := range workoutLogs {
		burned += log.TotalCaloriesBurned
	}

	avg := 0
	if len(dietLogs) > 0 {
		avg = int(math.Round(consumed / float64(len(dietLogs))))
	}

	return ProgressSummary{
		TotalCaloriesConsumed: consumed,
		TotalCaloriesBurned:   burned,
		TotalWorkouts:         len(workoutLogs),
		AvgCaloriesPerDay:     avg,
		Streak:                ComputeStreak(workoutLogs, now),
		DietLogs:              topN(dietLogs, 7),
		WorkoutLogs:           topN(workoutLogs, 7),
	}
}

// ComputeStreak counts consecutive workout days walking backward from today,
// scanning at most 365 days. A day with no activity ends the scan unless it is
// today itself: a miss at offset 0 neither counts nor breaks, so a streak that
// is still alive from yesterday is reported before today's workout is logged.
func ComputeStreak(workoutLogs []models.WorkoutLog, now time.Time) int {
	today := StartOfDay(now)

	streak := 0
	for i := 0; i < 365; i++ {
		checkDate := today.AddDate(0, 0, -i)

		hasActivity := false
		for _, log := range workoutLogs {
			if StartOfDay(log.Date).Equal(checkDate) {
				hasActivity = true
				break
			}
		}

		if hasActivity {
			streak++
		} else if i > 0 {
			break
		}
	}
	return streak
}

func topN[T any](logs []T, n int) []T {
	if len(logs) > n {
		return logs[:n]
	}
	return logs
}

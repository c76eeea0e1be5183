package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/abivignesh701/fittrack/models"
)

func workoutOn(day time.Time) models.WorkoutLog {
	return models.WorkoutLog{Date: day, TotalCaloriesBurned: 100}
}

func daysAgo(now time.Time, n int) time.Time {
	return StartOfDay(now).AddDate(0, 0, -n)
}

func TestComputeStreakStopsAtGap(t *testing.T) {
	now := time.Date(2024, 5, 20, 14, 0, 0, 0, time.UTC)
	// Workouts today, yesterday and 3 days ago; the gap 2 days ago ends the
	// streak at 2.
	logs := []models.WorkoutLog{
		workoutOn(daysAgo(now, 0)),
		workoutOn(daysAgo(now, 1)),
		workoutOn(daysAgo(now, 3)),
	}

	require.Equal(t, 2, ComputeStreak(logs, now))
}

func TestComputeStreakToleratesMissingToday(t *testing.T) {
	now := time.Date(2024, 5, 20, 8, 0, 0, 0, time.UTC)
	// Nothing logged today yet, but yesterday and the day before count: a
	// miss at offset 0 neither breaks nor increments.
	logs := []models.WorkoutLog{
		workoutOn(daysAgo(now, 1)),
		workoutOn(daysAgo(now, 2)),
	}

	require.Equal(t, 2, ComputeStreak(logs, now))
}

func TestComputeStreakNoActivity(t *testing.T) {
	now := time.Date(2024, 5, 20, 8, 0, 0, 0, time.UTC)
	require.Equal(t, 0, ComputeStreak(nil, now))
}

func TestComputeStreakIgnoresTimeOfDay(t *testing.T) {
	now := time.Date(2024, 5, 20, 23, 59, 0, 0, time.UTC)
	logs := []models.WorkoutLog{
		{Date: time.Date(2024, 5, 20, 6, 15, 0, 0, time.UTC)},
		{Date: time.Date(2024, 5, 19, 22, 40, 0, 0, time.UTC)},
	}

	require.Equal(t, 2, ComputeStreak(logs, now))
}

func TestBuildSummaryTotals(t *testing.T) {
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	dietLogs := []models.DietLog{
		{Date: daysAgo(now, 0), TotalCalories: 1800},
		{Date: daysAgo(now, 1), TotalCalories: 2100},
		{Date: daysAgo(now, 2), TotalCalories: 1500},
	}
	workoutLogs := []models.WorkoutLog{
		workoutOn(daysAgo(now, 0)),
		workoutOn(daysAgo(now, 1)),
	}

	summary := BuildSummary(dietLogs, workoutLogs, now)

	require.Equal(t, float64(5400), summary.TotalCaloriesConsumed)
	require.Equal(t, float64(200), summary.TotalCaloriesBurned)
	require.Equal(t, 2, summary.TotalWorkouts)
	require.Equal(t, 1800, summary.AvgCaloriesPerDay)
	require.Equal(t, 2, summary.Streak)
}

func TestBuildSummaryAvgRoundsToNearest(t *testing.T) {
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	dietLogs := []models.DietLog{
		{Date: daysAgo(now, 0), TotalCalories: 1000},
		{Date: daysAgo(now, 1), TotalCalories: 1001},
	}

	summary := BuildSummary(dietLogs, nil, now)
	require.Equal(t, 1001, summary.AvgCaloriesPerDay) // 1000.5 rounds up
}

func TestBuildSummaryNoDietLogs(t *testing.T) {
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	summary := BuildSummary(nil, nil, now)

	require.Equal(t, 0, summary.AvgCaloriesPerDay)
	require.Equal(t, float64(0), summary.TotalCaloriesConsumed)
}

func TestBuildSummaryCapsDisplayedLogsAtSeven(t *testing.T) {
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	var dietLogs []models.DietLog
	for i := 0; i < 10; i++ {
		dietLogs = append(dietLogs, models.DietLog{Date: daysAgo(now, i), TotalCalories: 2000})
	}

	summary := BuildSummary(dietLogs, nil, now)

	require.Len(t, summary.DietLogs, 7)
	// Summary numbers still cover the full fetched window.
	require.Equal(t, float64(20000), summary.TotalCaloriesConsumed)
	// Most recent first is preserved.
	require.Equal(t, daysAgo(now, 0), summary.DietLogs[0].Date)
}

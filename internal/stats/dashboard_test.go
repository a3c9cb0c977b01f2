package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"arnold/tracker/internal/domain"
)

func TestDashboardEmptyLog(t *testing.T) {
	got := Dashboard(nil, domain.UserProfile{}, day(t, "2025-06-07"))
	assert.Equal(t, DashboardStats{MostTrainedSplit: "N/A"}, got)
}

func TestTotalVolumeSkipsInvalidSets(t *testing.T) {
	workouts := []domain.Workout{
		training("2025-06-05", "Pierna", exercise("Sentadilla",
			set("100", "5"), // 500
			set("80", ""),   // no reps, contributes 0
			set("0", "12"),  // no weight, contributes 0
			set("oops", "8"),
		)),
	}
	assert.Equal(t, 500.0, TotalVolume(workouts))
	assert.GreaterOrEqual(t, TotalVolume(workouts), 0.0)
}

func TestTotalVolumeZeroWhenNothingValid(t *testing.T) {
	workouts := []domain.Workout{
		training("2025-06-05", "Pierna", exercise("Sentadilla", set("", ""), set("-20", "5"))),
	}
	assert.Equal(t, 0.0, TotalVolume(workouts))
}

func TestAttendanceRateTrailingWindow(t *testing.T) {
	workouts := []domain.Workout{
		session("2025-06-05"),
		restDay("2025-06-04"), // rest entries count as attended days
		session("2025-06-03"),
		session("2025-03-01"), // far outside the 30-day window
	}
	got := Dashboard(workouts, domain.UserProfile{}, day(t, "2025-06-07"))
	assert.Equal(t, 10, got.AttendanceRate) // round(3/30*100)
}

func TestProgressPercentageBothWeeksEmpty(t *testing.T) {
	// Entries exist, but all outside the two comparison weeks: 0, not 100.
	workouts := []domain.Workout{session("2025-03-01")}
	got := Dashboard(workouts, domain.UserProfile{}, day(t, "2025-06-07"))
	assert.Equal(t, 0, got.ProgressPercentage)
	assert.Equal(t, 0, got.ThisWeekVolume)
	assert.Equal(t, 0, got.LastWeekVolume)
}

func TestProgressPercentageFirstTrainedWeek(t *testing.T) {
	workouts := []domain.Workout{
		training("2025-06-05", "Pierna", exercise("Sentadilla", set("100", "5"))),
	}
	got := Dashboard(workouts, domain.UserProfile{}, day(t, "2025-06-07"))
	assert.Equal(t, 100, got.ProgressPercentage)
	assert.Equal(t, 500, got.ThisWeekVolume)
}

func TestProgressPercentageWeekOverWeek(t *testing.T) {
	workouts := []domain.Workout{
		// Last week: [May 24, May 31): 1000
		training("2025-05-28", "Pierna", exercise("Sentadilla", set("100", "10"))),
		// This week: [May 31, Jun 7]: 1500
		training("2025-06-04", "Pierna", exercise("Sentadilla", set("100", "15"))),
	}
	got := Dashboard(workouts, domain.UserProfile{}, day(t, "2025-06-07"))
	assert.Equal(t, 50, got.ProgressPercentage)
	assert.Equal(t, 1500, got.ThisWeekVolume)
	assert.Equal(t, 1000, got.LastWeekVolume)
}

func TestMostTrainedSplitDeterministicTie(t *testing.T) {
	workouts := []domain.Workout{
		session("2025-06-02"),
		training("2025-06-03", "Pierna", exercise("Sentadilla", set("100", "5"))),
	}
	got := Dashboard(workouts, domain.UserProfile{}, day(t, "2025-06-07"))
	assert.Equal(t, "Pecho y Espalda", got.MostTrainedSplit)
}

func TestDashboardUsesProfileRestAllowance(t *testing.T) {
	workouts := []domain.Workout{
		restDay("2025-06-06"),
		session("2025-06-07"),
		session("2025-06-05"),
	}
	strict := Dashboard(workouts, domain.UserProfile{RestDaysPerWeek: 0}, day(t, "2025-06-07"))
	lenient := Dashboard(workouts, domain.UserProfile{RestDaysPerWeek: 1}, day(t, "2025-06-07"))
	assert.Equal(t, 1, strict.CurrentStreak)
	assert.Equal(t, 2, lenient.CurrentStreak)
}

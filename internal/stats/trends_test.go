package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arnold/tracker/internal/domain"
)

// Windows relative to today=2025-06-07: recent is [2025-05-08, 2025-06-07],
// older is [2025-04-08, 2025-05-08).

func TestPerformanceTrendsClassification(t *testing.T) {
	workouts := []domain.Workout{
		// Improving on weight: 100 -> 110 (+10%).
		training("2025-04-20", "Pecho y Espalda", exercise("Press Banca", set("100", "5"))),
		training("2025-06-01", "Pecho y Espalda", exercise("Press Banca", set("110", "5"))),

		// Declining on weight: 120 -> 100 (-16.7%).
		training("2025-04-22", "Pierna", exercise("Sentadilla", set("120", "5"))),
		training("2025-06-02", "Pierna", exercise("Sentadilla", set("100", "5"))),

		// New: recent only.
		training("2025-06-03", "Hombros y Brazos", exercise("Press Militar", set("40", "10"))),

		// Neutral: unchanged weight, volume change inside thresholds.
		training("2025-04-25", "Pierna", exercise("Prensa", set("180", "10"))),
		training("2025-06-04", "Pierna", exercise("Prensa", set("180", "10"))),
	}
	got := PerformanceTrends(workouts, day(t, "2025-06-07"))

	require.Len(t, got.Improving, 1)
	assert.Equal(t, TrendChange{Name: "Press Banca", Change: 10, Old: 100, New: 110, Metric: MetricWeight}, got.Improving[0])

	require.Len(t, got.Declining, 1)
	assert.Equal(t, "Sentadilla", got.Declining[0].Name)
	assert.Equal(t, 17, got.Declining[0].Change)
	assert.Equal(t, MetricWeight, got.Declining[0].Metric)

	assert.Equal(t, []string{"Press Militar"}, got.New)

	// Neutral exercises still appear in the raw trend list.
	names := make([]string, 0, len(got.Trends))
	for _, tr := range got.Trends {
		names = append(names, tr.Name)
	}
	assert.Contains(t, names, "Prensa")
}

func TestPerformanceTrendsVolumeFallback(t *testing.T) {
	// Max weight flat, average session volume up 50%: volume classification.
	workouts := []domain.Workout{
		training("2025-04-20", "Pecho y Espalda", exercise("Press Banca", set("100", "4"))),  // avg 400
		training("2025-06-01", "Pecho y Espalda", exercise("Press Banca", set("100", "6"))),  // avg 600
	}
	got := PerformanceTrends(workouts, day(t, "2025-06-07"))
	require.Len(t, got.Improving, 1)
	assert.Equal(t, MetricVolume, got.Improving[0].Metric)
	assert.Equal(t, 50, got.Improving[0].Change)
}

func TestPerformanceTrendsWeightCheckWinsOverVolume(t *testing.T) {
	// Weight up 20% and volume up 20%: reported as a weight improvement.
	workouts := []domain.Workout{
		training("2025-04-20", "Pierna", exercise("Sentadilla", set("100", "5"))),
		training("2025-06-01", "Pierna", exercise("Sentadilla", set("120", "5"))),
	}
	got := PerformanceTrends(workouts, day(t, "2025-06-07"))
	require.Len(t, got.Improving, 1)
	assert.Equal(t, MetricWeight, got.Improving[0].Metric)
	assert.Equal(t, 20, got.Improving[0].Change)
}

func TestPerformanceTrendsThresholdUsesUnroundedChange(t *testing.T) {
	// 100 -> 105.4 is +5.4%: above the 5% threshold even though it rounds to 5.
	workouts := []domain.Workout{
		training("2025-04-20", "Pierna", exercise("Sentadilla", set("100", "5"))),
		training("2025-06-01", "Pierna", exercise("Sentadilla", set("105.4", "5"))),
	}
	got := PerformanceTrends(workouts, day(t, "2025-06-07"))
	require.Len(t, got.Improving, 1)
	assert.Equal(t, 5, got.Improving[0].Change)

	// Exactly +5.0% is not an improvement: strictly greater than threshold.
	flat := []domain.Workout{
		training("2025-04-20", "Pierna", exercise("Sentadilla", set("100", "5"))),
		training("2025-06-01", "Pierna", exercise("Sentadilla", set("105", "5"))),
	}
	assert.Empty(t, PerformanceTrends(flat, day(t, "2025-06-07")).Improving)
}

func TestPerformanceTrendsOlderOnlyExerciseOmitted(t *testing.T) {
	workouts := []domain.Workout{
		training("2025-04-20", "Pierna", exercise("Peso Muerto Rumano", set("140", "5"))),
	}
	got := PerformanceTrends(workouts, day(t, "2025-06-07"))
	assert.Empty(t, got.Improving)
	assert.Empty(t, got.Declining)
	assert.Empty(t, got.New)
	assert.Empty(t, got.Trends)
}

func TestPerformanceTrendsEmptyLog(t *testing.T) {
	got := PerformanceTrends(nil, day(t, "2025-06-07"))
	assert.Empty(t, got.Improving)
	assert.Empty(t, got.Declining)
	assert.Empty(t, got.New)
	assert.Empty(t, got.Trends)
}

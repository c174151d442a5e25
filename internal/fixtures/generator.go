// Package fixtures generates plausible demo and test data: athletes,
// training load series, wearable metrics and muscle loads. Used by
// tests and by the demo seeding of fresh environments.
package fixtures

import (
	"time"

	"github.com/trainsight/backend/internal/finisher"
	"github.com/trainsight/backend/internal/prs"
	"github.com/trainsight/backend/internal/readiness"
	"github.com/trainsight/backend/internal/workload"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

// AthleteProfile drives the shape of the generated data so that series
// for the same athlete hang together (a strong athlete gets heavier
// lifts and higher jump heights).
type AthleteProfile struct {
	UserID       string
	Name         string
	BaseHRV      float64
	BaseSleepMin float64
	BaseJumpCm   float64
	Squat1RM     float64
}

// Athlete generates a random athlete profile.
func Athlete() AthleteProfile {
	return AthleteProfile{
		UserID:       uuid.NewString(),
		Name:         gofakeit.Name(),
		BaseHRV:      gofakeit.Float64Range(45, 95),
		BaseSleepMin: gofakeit.Float64Range(360, 480),
		BaseJumpCm:   gofakeit.Float64Range(25, 48),
		Squat1RM:     gofakeit.Float64Range(80, 180),
	}
}

// DailyLoadSeries generates a dense load series ending at endDay, with
// roughly 4 training days a week around the athlete's habitual volume.
func DailyLoadSeries(athlete AthleteProfile, days int, endDay time.Time) []workload.DailyLoad {
	series := make([]workload.DailyLoad, 0, days)
	for i := days - 1; i >= 0; i-- {
		var load float64
		if gofakeit.Float32Range(0, 1) < 0.57 {
			load = gofakeit.Float64Range(200, 800)
		}
		series = append(series, workload.DailyLoad{
			Date: endDay.AddDate(0, 0, -i),
			Load: load,
		})
	}
	return series
}

// DailyMetrics generates wearable metrics for the last days up to endDay.
func DailyMetrics(athlete AthleteProfile, days int, endDay time.Time) []readiness.DailyMetric {
	metrics := make([]readiness.DailyMetric, 0, days)
	for i := days - 1; i >= 0; i-- {
		metrics = append(metrics, readiness.DailyMetric{
			UserID:       athlete.UserID,
			Date:         endDay.AddDate(0, 0, -i),
			HRVRmssd:     athlete.BaseHRV + gofakeit.Float64Range(-12, 12),
			SleepMinutes: athlete.BaseSleepMin + gofakeit.Float64Range(-60, 45),
		})
	}
	return metrics
}

// MuscleLoads generates one day of per-muscle load for the athlete.
func MuscleLoads(athlete AthleteProfile, day time.Time, muscles ...string) []finisher.MuscleLoadEntry {
	if len(muscles) == 0 {
		muscles = []string{"quads", "hamstrings", "glutes", "hip_flexors", "lower_back"}
	}
	entries := make([]finisher.MuscleLoadEntry, 0, len(muscles))
	for _, muscle := range muscles {
		entries = append(entries, finisher.MuscleLoadEntry{
			UserID:    athlete.UserID,
			Date:      day,
			Muscle:    muscle,
			LoadScore: gofakeit.Float64Range(10, 120),
		})
	}
	return entries
}

// Observation generates a squat set near the athlete's max.
func Observation(athlete AthleteProfile, at time.Time) prs.Observation {
	reps := gofakeit.Number(1, 8)
	// heavier sets get fewer reps
	weight := athlete.Squat1RM * gofakeit.Float64Range(0.6, 0.95) / (1 + float64(reps)/30)
	return prs.Observation{
		UserID:    athlete.UserID,
		Exercise:  "back-squat",
		Weight:    weight,
		Reps:      reps,
		Timestamp: at,
	}
}

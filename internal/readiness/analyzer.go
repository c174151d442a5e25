package readiness

import (
	"context"
	"errors"
	"time"

	"github.com/trainsight/backend/internal/telemetry/tracing"
)

// Analyzer assembles the recovery inputs for a user day and scores them.
type Analyzer struct {
	repo metricsRepo
}

func NewAnalyzer(repo metricsRepo) *Analyzer {
	return &Analyzer{repo: repo}
}

// Readiness computes the four factor readiness score for the given user
// day. Absent inputs are not an error, they simply contribute nothing.
func (a *Analyzer) Readiness(ctx context.Context, userID string, day time.Time) (_ *Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "readinessAnalyzer.readiness")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	result := &Result{
		UserID: userID,
		Date:   day,
	}

	metric, err := a.repo.GetDailyMetric(ctx, userID, day)
	switch {
	case err == nil:
		result.HRVRmssd = metric.HRVRmssd
		result.SleepMinutes = metric.SleepMinutes
	case errors.Is(err, ErrDailyMetricNotFound):
		// no wearable data for the day
	default:
		return nil, err
	}

	soreness, err := a.repo.GetSorenessEntry(ctx, userID, day)
	switch {
	case err == nil:
		result.SorenessScore = soreness.Score
	case errors.Is(err, ErrSorenessEntryNotFound):
	default:
		return nil, err
	}

	jump, err := a.repo.GetJumpTest(ctx, userID, day)
	switch {
	case err == nil:
		result.JumpHeightCm = jump.HeightCm
	case errors.Is(err, ErrJumpTestNotFound):
	default:
		return nil, err
	}

	result.ReadinessScore = FourFactorScore(FourFactorInput{
		HRVRmssd:      result.HRVRmssd,
		SleepMinutes:  result.SleepMinutes,
		SorenessScore: result.SorenessScore,
		JumpHeightCm:  result.JumpHeightCm,
	})

	return result, nil
}

func (a *Analyzer) LogSoreness(ctx context.Context, entry SorenessEntry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "readinessAnalyzer.logSoreness")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := entry.Validate(); err != nil {
		return err
	}

	return a.repo.UpsertSorenessEntry(ctx, entry)
}

func (a *Analyzer) LogJumpTest(ctx context.Context, jump JumpTest) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "readinessAnalyzer.logJumpTest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := jump.Validate(); err != nil {
		return err
	}

	return a.repo.AddJumpTest(ctx, jump)
}

package workload

import (
	"context"
	"time"

	"github.com/trainsight/backend/internal/telemetry/tracing"
)

// Analyzer computes rolling load windows over a user's training history.
type Analyzer struct {
	repo loadSeriesRepo
}

func NewAnalyzer(repo loadSeriesRepo) *Analyzer {
	return &Analyzer{repo: repo}
}

// Windows loads the training days in [from, to], densifies the series
// so that rest days carry load 0, and computes the rolling aggregates.
func (a *Analyzer) Windows(ctx context.Context, userID string, from, to time.Time, opts Options) (_ []Window, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workloadAnalyzer.windows")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	sparse, err := a.repo.GetDailyLoadSeries(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	return ComputeWindows(densify(sparse, from, to), opts), nil
}

// densify expands a sparse per-day series into one entry per calendar
// day in [from, to]. Rest days get load 0, which matters for the
// rolling averages: a week off must pull the acute load down.
func densify(sparse []DailyLoad, from, to time.Time) []DailyLoad {
	loadByDay := make(map[string]float64, len(sparse))
	for _, d := range sparse {
		loadByDay[d.Date.Format(time.DateOnly)] = d.Load
	}

	var series []DailyLoad
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		series = append(series, DailyLoad{
			Date: day,
			Load: loadByDay[day.Format(time.DateOnly)],
		})
	}
	return series
}

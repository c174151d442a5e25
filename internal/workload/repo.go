package workload

import (
	"context"
	"time"

	"github.com/trainsight/backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo reads training load rows from postgres. Only days with actual
// training have rows, gap filling happens in the analyzer.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) GetDailyLoadSeries(ctx context.Context, userID string, from, to time.Time) (_ []DailyLoad, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workloadRepo.getDailyLoadSeries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT date, load
			FROM daily_load
			WHERE user_id = $1 AND date >= $2 AND date <= $3
			ORDER BY date`,
		userID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var series []DailyLoad
	for rows.Next() {
		var d DailyLoad
		if err := rows.Scan(&d.Date, &d.Load); err != nil {
			return nil, err
		}
		series = append(series, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return series, nil
}

func (r *Repo) AddDailyLoad(ctx context.Context, userID string, load DailyLoad) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workloadRepo.addDailyLoad")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx,
		`INSERT INTO daily_load (user_id, date, load)
			VALUES ($1, $2, $3)
			ON CONFLICT (user_id, date)
			DO UPDATE SET load = EXCLUDED.load`,
		userID, load.Date, load.Load,
	)
	return err
}

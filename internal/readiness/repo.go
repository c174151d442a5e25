package readiness

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/trainsight/backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo stores and retrieves per-day recovery inputs in postgres.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) GetDailyMetric(ctx context.Context, userID string, day time.Time) (_ *DailyMetric, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "readinessRepo.getDailyMetric")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var metric DailyMetric
	err = r.db.QueryRow(ctx,
		`SELECT user_id, date, hrv_rmssd, sleep_minutes
			FROM daily_metric
			WHERE user_id = $1 AND date = $2`,
		userID, day,
	).Scan(&metric.UserID, &metric.Date, &metric.HRVRmssd, &metric.SleepMinutes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDailyMetricNotFound
		}
		return nil, err
	}

	return &metric, nil
}

func (r *Repo) GetSorenessEntry(ctx context.Context, userID string, day time.Time) (_ *SorenessEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "readinessRepo.getSorenessEntry")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var entry SorenessEntry
	err = r.db.QueryRow(ctx,
		`SELECT user_id, date, score
			FROM soreness_entry
			WHERE user_id = $1 AND date = $2`,
		userID, day,
	).Scan(&entry.UserID, &entry.Date, &entry.Score)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSorenessEntryNotFound
		}
		return nil, err
	}

	return &entry, nil
}

func (r *Repo) GetJumpTest(ctx context.Context, userID string, day time.Time) (_ *JumpTest, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "readinessRepo.getJumpTest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var jump JumpTest
	err = r.db.QueryRow(ctx,
		`SELECT user_id, date, height_cm
			FROM jump_test
			WHERE user_id = $1 AND date = $2
			ORDER BY height_cm DESC
			LIMIT 1`,
		userID, day,
	).Scan(&jump.UserID, &jump.Date, &jump.HeightCm)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrJumpTestNotFound
		}
		return nil, err
	}

	return &jump, nil
}

// UpsertSorenessEntry writes a soreness entry for the user day. One row
// per (user, day), last write wins. Single statement, no read first.
func (r *Repo) UpsertSorenessEntry(ctx context.Context, entry SorenessEntry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "readinessRepo.upsertSorenessEntry")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx,
		`INSERT INTO soreness_entry (user_id, date, score)
			VALUES ($1, $2, $3)
			ON CONFLICT (user_id, date)
			DO UPDATE SET score = EXCLUDED.score`,
		entry.UserID, entry.Date, entry.Score,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("soreness entry for user [%s] not stored", entry.UserID)
	}

	return nil
}

func (r *Repo) AddJumpTest(ctx context.Context, jump JumpTest) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "readinessRepo.addJumpTest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx,
		`INSERT INTO jump_test (user_id, date, height_cm) VALUES ($1, $2, $3)`,
		jump.UserID, jump.Date, jump.HeightCm,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("jump test for user [%s] not stored", jump.UserID)
	}

	return nil
}

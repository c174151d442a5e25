package prs

import (
	"context"
	"errors"

	"github.com/trainsight/backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo stores personal records in postgres, one row per
// (user, exercise, type).
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) GetBest(ctx context.Context, userID, exercise string, recordType RecordType) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "prsRepo.getBest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var record Record
	err = r.db.QueryRow(ctx,
		`SELECT id, user_id, exercise, type, value, achieved_at
			FROM personal_record
			WHERE user_id = $1 AND exercise = $2 AND type = $3`,
		userID, exercise, recordType,
	).Scan(&record.ID, &record.UserID, &record.Exercise, &record.Type, &record.Value, &record.AchievedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	return &record, nil
}

func (r *Repo) ListBest(ctx context.Context, userID, exercise string) (_ []Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "prsRepo.listBest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, exercise, type, value, achieved_at
			FROM personal_record
			WHERE user_id = $1 AND exercise = $2
			ORDER BY type`,
		userID, exercise,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var record Record
		if err := rows.Scan(
			&record.ID, &record.UserID, &record.Exercise,
			&record.Type, &record.Value, &record.AchievedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Upsert writes a record if it beats the stored one. The improvement
// check lives in the statement itself so that concurrent observations
// cannot downgrade a record between a read and a write. Returns
// ErrNotImproved when the stored record already holds a higher value.
func (r *Repo) Upsert(ctx context.Context, record Record) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "prsRepo.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var stored Record
	err = r.db.QueryRow(ctx,
		`INSERT INTO personal_record (user_id, exercise, type, value, achieved_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (user_id, exercise, type)
			DO UPDATE SET value = EXCLUDED.value, achieved_at = EXCLUDED.achieved_at
			WHERE EXCLUDED.value > personal_record.value
			RETURNING id, user_id, exercise, type, value, achieved_at`,
		record.UserID, record.Exercise, record.Type, record.Value, record.AchievedAt,
	).Scan(&stored.ID, &stored.UserID, &stored.Exercise, &stored.Type, &stored.Value, &stored.AchievedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotImproved
		}
		return nil, err
	}

	return &stored, nil
}

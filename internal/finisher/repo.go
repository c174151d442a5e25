package finisher

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/trainsight/backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo reads sessions, muscle loads and protocol definitions, and
// writes finisher assignments.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) GetSession(ctx context.Context, sessionID int) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "finisherRepo.getSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var session Session
	err = r.db.QueryRow(ctx,
		`SELECT id, user_id, date FROM training_session WHERE id = $1`,
		sessionID,
	).Scan(&session.ID, &session.UserID, &session.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	return &session, nil
}

func (r *Repo) GetMuscleLoad(ctx context.Context, userID string, day time.Time) (_ []MuscleLoadEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "finisherRepo.getMuscleLoad")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT user_id, date, muscle, load_score
			FROM muscle_load
			WHERE user_id = $1 AND date = $2`,
		userID, day,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []MuscleLoadEntry
	for rows.Next() {
		var entry MuscleLoadEntry
		if err := rows.Scan(&entry.UserID, &entry.Date, &entry.Muscle, &entry.LoadScore); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *Repo) ListProtocols(ctx context.Context) (_ []Protocol, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "finisherRepo.listProtocols")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT id, name, muscle_targets, steps, duration_minutes
			FROM mobility_protocol
			ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var protocols []Protocol
	for rows.Next() {
		protocol, err := scanProtocol(rows)
		if err != nil {
			return nil, err
		}
		protocols = append(protocols, *protocol)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return protocols, nil
}

func (r *Repo) GetProtocol(ctx context.Context, id int) (_ *Protocol, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "finisherRepo.getProtocol")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	row := r.db.QueryRow(ctx,
		`SELECT id, name, muscle_targets, steps, duration_minutes
			FROM mobility_protocol
			WHERE id = $1`,
		id,
	)

	protocol, err := scanProtocol(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProtocolNotFound
		}
		return nil, err
	}

	return protocol, nil
}

// UpsertAssignment stores the protocol for a session, replacing any
// previous assignment. Single statement, no read first.
func (r *Repo) UpsertAssignment(ctx context.Context, assignment Assignment) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "finisherRepo.upsertAssignment")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx,
		`INSERT INTO session_finisher (session_id, protocol_id, auto_assigned)
			VALUES ($1, $2, $3)
			ON CONFLICT (session_id)
			DO UPDATE SET protocol_id = EXCLUDED.protocol_id, auto_assigned = EXCLUDED.auto_assigned`,
		assignment.SessionID, assignment.ProtocolID, assignment.AutoAssigned,
	)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProtocol(row rowScanner) (*Protocol, error) {
	var protocol Protocol
	var stepsJson []byte
	if err := row.Scan(
		&protocol.ID, &protocol.Name, &protocol.MuscleTargets,
		&stepsJson, &protocol.DurationMinutes,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(stepsJson, &protocol.Steps); err != nil {
		return nil, err
	}
	return &protocol, nil
}

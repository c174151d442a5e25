package finisher

import (
	"context"
	"time"

	"github.com/trainsight/backend/internal/telemetry/metrics"
	"github.com/trainsight/backend/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

const eventFinisherAssigned = "finisherAssigned"

// AssignmentResult is an assignment together with the chosen protocol.
type AssignmentResult struct {
	Assignment Assignment `json:"assignment"`
	Protocol   Protocol   `json:"protocol"`
	Score      float64    `json:"score"`
}

// Service assigns mobility protocols to finished training sessions.
type Service struct {
	repo           sessionsRepo
	catalog        *Catalog
	publisher      eventPublisher
	metricsManager *metrics.Manager
}

func NewService(
	repo sessionsRepo,
	catalog *Catalog,
	publisher eventPublisher,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:           repo,
		catalog:        catalog,
		publisher:      publisher,
		metricsManager: metricsManager,
	}
}

// AutoAssign picks the protocol best matching the session day's muscle
// load and stores it for the session. Without muscle load data for the
// day there is nothing to rank and ErrNoMuscleLoadData comes back, a
// deliberately different outcome from a zero score.
func (s *Service) AutoAssign(ctx context.Context, sessionID int) (_ *AssignmentResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "finisherService.autoAssign")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	session, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.GetMuscleLoad(ctx, session.UserID, session.Date)
	if err != nil {
		return nil, err
	}

	protocols, err := s.catalog.ListProtocols(ctx)
	if err != nil {
		return nil, err
	}

	protocol, score, err := SelectProtocol(entries, protocols)
	if err != nil {
		return nil, err
	}

	assignment := Assignment{
		SessionID:    sessionID,
		ProtocolID:   protocol.ID,
		AutoAssigned: true,
	}
	if err := s.repo.UpsertAssignment(ctx, assignment); err != nil {
		return nil, err
	}

	s.metricsManager.CounterFinishersAssigned.WithLabelValues("true").Inc()
	log.Debugf(
		"finisher [%s] auto assigned to session [%d] with score %.2f",
		protocol.Name, sessionID, score,
	)

	s.publisher.Publish(ctx, session.UserID, eventFinisherAssigned, map[string]any{
		"sessionId":  sessionID,
		"protocolId": protocol.ID,
		"score":      score,
	})

	return &AssignmentResult{
		Assignment: assignment,
		Protocol:   *protocol,
		Score:      score,
	}, nil
}

// Assign stores a manually picked protocol for a session. No selection
// runs, no event goes out, the coach made the call.
func (s *Service) Assign(ctx context.Context, sessionID, protocolID int) (_ *AssignmentResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "finisherService.assign")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.repo.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}

	protocol, err := s.catalog.GetProtocol(ctx, protocolID)
	if err != nil {
		return nil, err
	}

	assignment := Assignment{
		SessionID:    sessionID,
		ProtocolID:   protocolID,
		AutoAssigned: false,
	}
	if err := s.repo.UpsertAssignment(ctx, assignment); err != nil {
		return nil, err
	}

	s.metricsManager.CounterFinishersAssigned.WithLabelValues("false").Inc()

	return &AssignmentResult{
		Assignment: assignment,
		Protocol:   *protocol,
	}, nil
}

// Protocols lists the full protocol catalog.
func (s *Service) Protocols(ctx context.Context) ([]Protocol, error) {
	return s.catalog.ListProtocols(ctx)
}

// MuscleLoad exposes the raw per-muscle load for a user day.
func (s *Service) MuscleLoad(ctx context.Context, userID string, day time.Time) ([]MuscleLoadEntry, error) {
	return s.repo.GetMuscleLoad(ctx, userID, day)
}

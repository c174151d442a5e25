package prs

import (
	"context"
	"errors"

	"github.com/trainsight/backend/internal/telemetry/metrics"
	"github.com/trainsight/backend/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

const eventNewPersonalRecord = "newPersonalRecord"

// Service runs PR detection over incoming observations and notifies
// the user about new records.
type Service struct {
	repo           recordsRepo
	publisher      eventPublisher
	metricsManager *metrics.Manager
}

func NewService(repo recordsRepo, publisher eventPublisher, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		publisher:      publisher,
		metricsManager: metricsManager,
	}
}

// Detect checks an observation against the user's stored records and
// upserts every record type the observation improves. Returns the new
// records, empty when nothing was beaten. Event publishing is best
// effort and never fails the detection.
func (s *Service) Detect(ctx context.Context, obs Observation) (_ []Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "prsService.detect")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := obs.Validate(); err != nil {
		return nil, err
	}

	var newRecords []Record
	for _, candidate := range Candidates(obs) {
		best, err := s.repo.GetBest(ctx, obs.UserID, obs.Exercise, candidate.Type)
		if err != nil && !errors.Is(err, ErrRecordNotFound) {
			return nil, err
		}

		if !Improves(candidate.Value, best) {
			continue
		}

		stored, err := s.repo.Upsert(ctx, Record{
			UserID:     obs.UserID,
			Exercise:   obs.Exercise,
			Type:       candidate.Type,
			Value:      candidate.Value,
			AchievedAt: obs.Timestamp,
		})
		if err != nil {
			if errors.Is(err, ErrNotImproved) {
				// a concurrent observation got there first
				log.Debugf(
					"pr [%s] for user [%s] ex [%s] beaten concurrently, skipping",
					candidate.Type, obs.UserID, obs.Exercise,
				)
				continue
			}
			return nil, err
		}

		newRecords = append(newRecords, *stored)
		s.metricsManager.CounterPRsDetected.WithLabelValues(string(candidate.Type)).Inc()
		s.publisher.Publish(ctx, obs.UserID, eventNewPersonalRecord, map[string]any{
			"exercise": stored.Exercise,
			"type":     stored.Type,
			"value":    stored.Value,
		})
	}

	return newRecords, nil
}

func (s *Service) Best(ctx context.Context, userID, exercise string) ([]Record, error) {
	return s.repo.ListBest(ctx, userID, exercise)
}

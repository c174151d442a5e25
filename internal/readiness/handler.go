package readiness

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/trainsight/backend/internal/telemetry/metrics"
	"github.com/trainsight/backend/internal/telemetry/tracing"
	"github.com/trainsight/backend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=readiness_test

type metricsRepo interface {
	GetDailyMetric(ctx context.Context, userID string, day time.Time) (*DailyMetric, error)
	GetSorenessEntry(ctx context.Context, userID string, day time.Time) (*SorenessEntry, error)
	GetJumpTest(ctx context.Context, userID string, day time.Time) (*JumpTest, error)
	UpsertSorenessEntry(ctx context.Context, entry SorenessEntry) error
	AddJumpTest(ctx context.Context, jump JumpTest) error
}

type LogSorenessResponse struct {
	UserID string `json:"userId"`
	Score  int    `json:"score"`
}

type Handler struct {
	analyzer       *Analyzer
	metricsManager *metrics.Manager
}

func NewHandler(repo metricsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		analyzer:       NewAnalyzer(repo),
		metricsManager: metricsManager,
	}
}

// dayFromQuery reads an optional ?date=YYYY-MM-DD param, defaulting to today.
func dayFromQuery(r *http.Request) (time.Time, error) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse(time.DateOnly, dateStr)
}

func (handler *Handler) HandleGetReadiness(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.readiness.get")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["userID"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	day, err := dayFromQuery(r)
	if err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	result, err := handler.analyzer.Readiness(ctx, userID, day)
	if err != nil {
		log.Errorf("failed to compute readiness for user [%s]: %s", userID, err)
		http.Error(w, "failed to compute readiness", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterReadinessComputed.Inc()

	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("failed to marshal readiness result: %s", err)
		http.Error(w, "failed to compute readiness", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, resultJson)
}

func (handler *Handler) HandleLogSoreness(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.readiness.logSoreness")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var entry SorenessEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Tracef("log soreness, unmarshal json params: %s", err)
		http.Error(w, "log soreness failed", http.StatusBadRequest)
		return
	}

	if entry.Date.IsZero() {
		now := time.Now()
		entry.Date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	if err := entry.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.analyzer.LogSoreness(ctx, entry); err != nil {
		log.Errorf("failed to log soreness for user [%s]: %s", entry.UserID, err)
		http.Error(w, "error, failed to log soreness", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterSorenessEntries.Inc()
	log.Debugf("soreness [%d] logged for user [%s]", entry.Score, entry.UserID)

	respJson, err := json.Marshal(LogSorenessResponse{UserID: entry.UserID, Score: entry.Score})
	if err != nil {
		log.Errorf("failed to marshal log soreness response: %s", err)
		http.Error(w, "error, failed to log soreness", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *Handler) HandleLogJumpTest(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.readiness.logJumpTest")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var jump JumpTest
	if err := json.NewDecoder(r.Body).Decode(&jump); err != nil {
		log.Tracef("log jump test, unmarshal json params: %s", err)
		http.Error(w, "log jump test failed", http.StatusBadRequest)
		return
	}

	if jump.Date.IsZero() {
		now := time.Now()
		jump.Date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	if err := jump.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.analyzer.LogJumpTest(ctx, jump); err != nil {
		log.Errorf("failed to log jump test for user [%s]: %s", jump.UserID, err)
		http.Error(w, "error, failed to log jump test", http.StatusInternalServerError)
		return
	}

	jumpJson, err := json.Marshal(jump)
	if err != nil {
		log.Errorf("failed to marshal jump test: %s", err)
		http.Error(w, "error, failed to log jump test", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, jumpJson, http.StatusCreated)
}

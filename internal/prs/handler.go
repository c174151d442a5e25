package prs

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/trainsight/backend/internal/telemetry/tracing"
	"github.com/trainsight/backend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=prs_test

type recordsRepo interface {
	GetBest(ctx context.Context, userID, exercise string, recordType RecordType) (*Record, error)
	ListBest(ctx context.Context, userID, exercise string) ([]Record, error)
	Upsert(ctx context.Context, record Record) (*Record, error)
}

type eventPublisher interface {
	Publish(ctx context.Context, userID, eventName string, payload any)
}

type ObservationResponse struct {
	NewRecords []Record `json:"newRecords"`
}

type BestResponse struct {
	UserID   string   `json:"userId"`
	Exercise string   `json:"exercise"`
	Records  []Record `json:"records"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) HandleObservation(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.prs.observation")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var obs Observation
	if err := json.NewDecoder(r.Body).Decode(&obs); err != nil {
		log.Tracef("new observation, unmarshal json params: %s", err)
		http.Error(w, "add observation failed", http.StatusBadRequest)
		return
	}

	if obs.Timestamp.IsZero() {
		obs.Timestamp = time.Now()
	}

	if err := obs.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	newRecords, err := handler.service.Detect(ctx, obs)
	if err != nil {
		log.Errorf("failed to detect prs for user [%s] ex [%s]: %s", obs.UserID, obs.Exercise, err)
		http.Error(w, "error, failed to process observation", http.StatusInternalServerError)
		return
	}

	if newRecords == nil {
		newRecords = []Record{}
	}

	respJson, err := json.Marshal(ObservationResponse{NewRecords: newRecords})
	if err != nil {
		log.Errorf("failed to marshal observation response: %s", err)
		http.Error(w, "error, failed to process observation", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *Handler) HandleGetBest(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.prs.getBest")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["userID"]
	exercise := vars["exercise"]
	if userID == "" || exercise == "" {
		http.Error(w, "error, user id or exercise empty", http.StatusBadRequest)
		return
	}

	records, err := handler.service.Best(ctx, userID, exercise)
	if err != nil {
		log.Errorf("failed to get prs for user [%s] ex [%s]: %s", userID, exercise, err)
		http.Error(w, "error, failed to get records", http.StatusInternalServerError)
		return
	}

	if records == nil {
		records = []Record{}
	}

	respJson, err := json.Marshal(BestResponse{
		UserID:   userID,
		Exercise: exercise,
		Records:  records,
	})
	if err != nil {
		log.Errorf("failed to marshal records: %s", err)
		http.Error(w, "error, failed to get records", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

package finisher

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/trainsight/backend/internal/telemetry/tracing"
	"github.com/trainsight/backend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=finisher_test

type sessionsRepo interface {
	GetSession(ctx context.Context, sessionID int) (*Session, error)
	GetMuscleLoad(ctx context.Context, userID string, day time.Time) ([]MuscleLoadEntry, error)
	UpsertAssignment(ctx context.Context, assignment Assignment) error
}

type protocolsRepo interface {
	ListProtocols(ctx context.Context) ([]Protocol, error)
	GetProtocol(ctx context.Context, id int) (*Protocol, error)
}

type eventPublisher interface {
	Publish(ctx context.Context, userID, eventName string, payload any)
}

type AssignRequest struct {
	ProtocolID int `json:"protocolId"`
}

type ProtocolsResponse struct {
	Protocols []Protocol `json:"protocols"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func sessionIDFromRequest(r *http.Request) (int, error) {
	vars := mux.Vars(r)
	idStr := vars["sessionID"]
	if idStr == "" {
		return 0, errors.New("session id empty")
	}
	return strconv.Atoi(idStr)
}

func (handler *Handler) HandleAutoAssign(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.finisher.autoAssign")
	defer span.End()

	sessionID, err := sessionIDFromRequest(r)
	if err != nil {
		http.Error(w, "error, invalid session id", http.StatusBadRequest)
		return
	}

	result, err := handler.service.AutoAssign(ctx, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, ErrSessionNotFound):
			http.Error(w, "session not found", http.StatusNotFound)
		case errors.Is(err, ErrNoMuscleLoadData):
			http.Error(w, "no muscle load data for session day", http.StatusNotFound)
		case errors.Is(err, ErrNoProtocolsDefined):
			http.Error(w, "no mobility protocols defined", http.StatusNotFound)
		default:
			log.Errorf("failed to auto assign finisher to session [%d]: %s", sessionID, err)
			http.Error(w, "error, failed to assign finisher", http.StatusInternalServerError)
		}
		return
	}

	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("failed to marshal finisher assignment: %s", err)
		http.Error(w, "error, failed to assign finisher", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resultJson, http.StatusCreated)
}

func (handler *Handler) HandleAssign(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.finisher.assign")
	defer span.End()

	sessionID, err := sessionIDFromRequest(r)
	if err != nil {
		http.Error(w, "error, invalid session id", http.StatusBadRequest)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("assign finisher, unmarshal json params: %s", err)
		http.Error(w, "assign finisher failed", http.StatusBadRequest)
		return
	}

	result, err := handler.service.Assign(ctx, sessionID, req.ProtocolID)
	if err != nil {
		switch {
		case errors.Is(err, ErrSessionNotFound):
			http.Error(w, "session not found", http.StatusNotFound)
		case errors.Is(err, ErrProtocolNotFound):
			http.Error(w, "protocol not found", http.StatusNotFound)
		default:
			log.Errorf("failed to assign finisher [%d] to session [%d]: %s", req.ProtocolID, sessionID, err)
			http.Error(w, "error, failed to assign finisher", http.StatusInternalServerError)
		}
		return
	}

	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("failed to marshal finisher assignment: %s", err)
		http.Error(w, "error, failed to assign finisher", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resultJson, http.StatusCreated)
}

func (handler *Handler) HandleListProtocols(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.finisher.listProtocols")
	defer span.End()

	protocols, err := handler.service.Protocols(ctx)
	if err != nil {
		log.Errorf("failed to list protocols: %s", err)
		http.Error(w, "error, failed to list protocols", http.StatusInternalServerError)
		return
	}

	if protocols == nil {
		protocols = []Protocol{}
	}

	respJson, err := json.Marshal(ProtocolsResponse{Protocols: protocols})
	if err != nil {
		log.Errorf("failed to marshal protocols: %s", err)
		http.Error(w, "error, failed to list protocols", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

package workload

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/trainsight/backend/internal/charts"
	"github.com/trainsight/backend/internal/telemetry/tracing"
	"github.com/trainsight/backend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=workload_test

type loadSeriesRepo interface {
	GetDailyLoadSeries(ctx context.Context, userID string, from, to time.Time) ([]DailyLoad, error)
	AddDailyLoad(ctx context.Context, userID string, load DailyLoad) error
}

const defaultWindowRangeDays = 90

// WindowView is one day of the windows response, rounded for display.
type WindowView struct {
	Date       string   `json:"date"`
	DailyLoad  float64  `json:"dailyLoad"`
	Acute7d    float64  `json:"acute7d"`
	Chronic28d float64  `json:"chronic28d"`
	ACWR       float64  `json:"acwr"`
	RiskZone   RiskZone `json:"riskZone"`
}

type WindowsResponse struct {
	UserID  string       `json:"userId"`
	Windows []WindowView `json:"windows"`
}

type AddLoadRequest struct {
	UserID string    `json:"userId"`
	Date   time.Time `json:"date"`
	Load   float64   `json:"load"`
}

type Handler struct {
	repo     loadSeriesRepo
	analyzer *Analyzer
}

func NewHandler(repo loadSeriesRepo) *Handler {
	return &Handler{
		repo:     repo,
		analyzer: NewAnalyzer(repo),
	}
}

func (handler *Handler) HandleGetWindows(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workload.windows")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["userID"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	now := time.Now()
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	from := to.AddDate(0, 0, -defaultWindowRangeDays)
	var err error
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		if from, err = time.Parse(time.DateOnly, fromStr); err != nil {
			http.Error(w, "error, invalid from date", http.StatusBadRequest)
			return
		}
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		if to, err = time.Parse(time.DateOnly, toStr); err != nil {
			http.Error(w, "error, invalid to date", http.StatusBadRequest)
			return
		}
	}
	if from.After(to) {
		http.Error(w, "error, from date after to date", http.StatusBadRequest)
		return
	}

	opts := Options{
		ActualDayCountDivisor: r.URL.Query().Get("divisor") == "actual",
	}

	windows, err := handler.analyzer.Windows(ctx, userID, from, to, opts)
	if err != nil {
		log.Errorf("failed to compute load windows for user [%s]: %s", userID, err)
		http.Error(w, "failed to compute load windows", http.StatusInternalServerError)
		return
	}

	resp := WindowsResponse{
		UserID:  userID,
		Windows: make([]WindowView, 0, len(windows)),
	}
	for _, win := range windows {
		resp.Windows = append(resp.Windows, WindowView{
			Date:       win.Date.Format(time.DateOnly),
			DailyLoad:  Round2(win.DailyLoad),
			Acute7d:    Round2(win.Acute7d),
			Chronic28d: Round2(win.Chronic28d),
			ACWR:       Round2(win.ACWR),
			RiskZone:   ClassifyACWR(win.ACWR),
		})
	}

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal load windows: %s", err)
		http.Error(w, "failed to compute load windows", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

// HandleGetChart serves the ACWR series in the {x, y} shape the mobile
// charting views consume directly.
func (handler *Handler) HandleGetChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workload.chart")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["userID"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	now := time.Now()
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	from := to.AddDate(0, 0, -defaultWindowRangeDays)

	windows, err := handler.analyzer.Windows(ctx, userID, from, to, Options{})
	if err != nil {
		log.Errorf("failed to compute load chart for user [%s]: %s", userID, err)
		http.Error(w, "failed to compute load chart", http.StatusInternalServerError)
		return
	}

	records := make([]map[string]any, 0, len(windows))
	for _, win := range windows {
		records = append(records, map[string]any{
			"date":     win.Date.Format(time.DateOnly),
			"acwr":     Round2(win.ACWR),
			"riskZone": ClassifyACWR(win.ACWR),
		})
	}

	respJson, err := json.Marshal(charts.Series(records, "date", "acwr", "riskZone"))
	if err != nil {
		log.Errorf("failed to marshal load chart: %s", err)
		http.Error(w, "failed to compute load chart", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleAddLoad(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workload.addLoad")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req AddLoadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("add daily load, unmarshal json params: %s", err)
		http.Error(w, "add daily load failed", http.StatusBadRequest)
		return
	}

	if req.UserID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}
	if req.Load < 0 {
		http.Error(w, "error, load cannot be negative", http.StatusBadRequest)
		return
	}
	if req.Date.IsZero() {
		now := time.Now()
		req.Date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	if err := handler.repo.AddDailyLoad(ctx, req.UserID, DailyLoad{Date: req.Date, Load: req.Load}); err != nil {
		log.Errorf("failed to add daily load for user [%s]: %s", req.UserID, err)
		http.Error(w, "error, failed to add daily load", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponse(w, pkg.ContentType.JSON, `{"added":true}`, http.StatusCreated)
}

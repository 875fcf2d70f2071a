package main

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/voyago/tripcost/internal/metrics"
	"github.com/voyago/tripcost/planner"
	"github.com/voyago/tripcost/types"
)

// api holds the HTTP handlers. The HTTP surface is deliberately thin: it
// validates nothing beyond JSON shape and delegates to the planner.
type api struct {
	planner *planner.Planner
	metrics *metrics.Collector
	logger  *zap.Logger
}

func newAPI(p *planner.Planner, m *metrics.Collector, logger *zap.Logger) *api {
	return &api{
		planner: p,
		metrics: m,
		logger:  logger.With(zap.String("component", "api")),
	}
}

func (a *api) routes() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", a.handleHealth)
	mux.HandleFunc("/v1/estimates", a.handleEstimate)
	mux.HandleFunc("/v1/season", a.handleSeason)
	return a.instrument(mux)
}

// statusRecorder captures the response status for metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (a *api) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		if a.metrics != nil {
			a.metrics.RecordHTTPRequest(r.Method, r.URL.Path, rec.status, time.Since(start))
		}
	})
}

func (a *api) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *api) handleEstimate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, types.NewError(types.ErrInvalidRequest, "method not allowed").WithHTTPStatus(http.StatusMethodNotAllowed))
		return
	}

	var req types.TravelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, types.NewError(types.ErrInvalidRequest, "invalid request body").WithCause(err).WithHTTPStatus(http.StatusBadRequest))
		return
	}

	resp, err := a.planner.ProcessTravelRequest(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *api) handleSeason(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, types.NewError(types.ErrInvalidRequest, "method not allowed").WithHTTPStatus(http.StatusMethodNotAllowed))
		return
	}

	q := r.URL.Query()
	vibe, err := types.ParseVibe(q.Get("vibe"))
	if err != nil {
		writeError(w, err)
		return
	}
	start, err := types.ParseDate(q.Get("date"))
	if err != nil {
		writeError(w, err)
		return
	}

	rec, err := a.planner.GetSeasonRecommendation(vibe, q.Get("destination"), start)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps planner errors onto HTTP responses. Structured errors
// carry their own status; anything else is an internal error.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := types.ErrInternalError
	message := "internal error"

	if e, ok := err.(*types.Error); ok {
		code = e.Code
		message = e.Message
		if e.HTTPStatus != 0 {
			status = e.HTTPStatus
		} else if types.IsValidation(err) {
			status = http.StatusBadRequest
		}
	}

	writeJSON(w, status, map[string]any{
		"error": map[string]any{
			"code":    code,
			"message": message,
		},
	})
}

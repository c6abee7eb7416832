package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	housinghttp "github.com/hallaoui/ferme-ops/internal/housing/delivery/http"
	"github.com/hallaoui/ferme-ops/internal/occupancy"
)

// OccupancyHandler handles HTTP requests for sector occupancy
type OccupancyHandler struct {
	service *occupancy.Service

	reconcileCounter   *prometheus.CounterVec
	correctionsCounter prometheus.Counter
	occupancyRate      *prometheus.GaugeVec
	reconcileLatency   prometheus.Histogram
}

// NewOccupancyHandler creates a new occupancy handler
func NewOccupancyHandler(service *occupancy.Service) *OccupancyHandler {
	reconcileCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "housing_service_reconcile_total",
			Help: "Total number of occupancy reconciliation passes",
		},
		[]string{"trigger"},
	)

	correctionsCounter := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "housing_service_corrections_total",
			Help: "Total number of room occupancy corrections applied",
		},
	)

	occupancyRate := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "housing_service_occupancy_rate",
			Help: "Last computed occupancy rate per sector",
		},
		[]string{"ferme_id"},
	)

	reconcileLatency := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "housing_service_reconcile_duration_seconds",
			Help:    "Duration of occupancy reconciliation passes in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	prometheus.MustRegister(reconcileCounter)
	prometheus.MustRegister(correctionsCounter)
	prometheus.MustRegister(occupancyRate)
	prometheus.MustRegister(reconcileLatency)

	return &OccupancyHandler{
		service:            service,
		reconcileCounter:   reconcileCounter,
		correctionsCounter: correctionsCounter,
		occupancyRate:      occupancyRate,
		reconcileLatency:   reconcileLatency,
	}
}

// GetStats handles GET /api/occupancy/{fermeId}/stats
func (h *OccupancyHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	fermeID, err := h.pathFermeID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid ferme ID")
		return
	}

	if !h.canAccessFerme(r, fermeID) {
		h.respondError(w, http.StatusForbidden, "Cannot view occupancy of another ferme")
		return
	}

	stats, err := h.service.Stats(r.Context(), fermeID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.occupancyRate.WithLabelValues(strconv.FormatUint(uint64(fermeID), 10)).Set(float64(stats.OccupancyRate))
	h.respondJSON(w, http.StatusOK, stats)
}

// Reconcile handles POST /api/occupancy/{fermeId}/reconcile
func (h *OccupancyHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	fermeID, err := h.pathFermeID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid ferme ID")
		return
	}

	if !h.canAccessFerme(r, fermeID) {
		h.respondError(w, http.StatusForbidden, "Cannot reconcile another ferme")
		return
	}

	start := time.Now()
	result, err := h.service.ReconcileFerme(r.Context(), fermeID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.reconcileLatency.Observe(time.Since(start).Seconds())
	h.reconcileCounter.WithLabelValues("manual").Inc()
	h.correctionsCounter.Add(float64(result.Applied))
	h.occupancyRate.WithLabelValues(strconv.FormatUint(uint64(fermeID), 10)).Set(float64(result.Stats.OccupancyRate))

	h.respondJSON(w, http.StatusOK, result)
}

// ObserveBackgroundPass records metrics for a debounced reconciliation pass
func (h *OccupancyHandler) ObserveBackgroundPass(result *occupancy.ReconcileResult, elapsed time.Duration) {
	h.reconcileLatency.Observe(elapsed.Seconds())
	h.reconcileCounter.WithLabelValues("event").Inc()
	h.correctionsCounter.Add(float64(result.Applied))
	h.occupancyRate.WithLabelValues(strconv.FormatUint(uint64(result.FermeID), 10)).Set(float64(result.Stats.OccupancyRate))
}

func (h *OccupancyHandler) canAccessFerme(r *http.Request, fermeID uint) bool {
	role, _ := r.Context().Value(housinghttp.RoleKey).(string)
	if role == "superadmin" {
		return true
	}
	own, ok := r.Context().Value(housinghttp.FermeIDKey).(uint)
	return ok && own == fermeID
}

func (h *OccupancyHandler) pathFermeID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["fermeId"], 10, 32)
	return uint(id), err
}

func (h *OccupancyHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *OccupancyHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all occupancy routes
func (h *OccupancyHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/occupancy/{fermeId}/stats", housinghttp.AuthMiddleware(h.GetStats)).Methods("GET")
	router.HandleFunc("/api/occupancy/{fermeId}/reconcile", housinghttp.AuthMiddleware(h.Reconcile)).Methods("POST")
}

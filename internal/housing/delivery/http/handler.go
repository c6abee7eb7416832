package http

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hallaoui/ferme-ops/internal/housing/domain"
	"github.com/hallaoui/ferme-ops/internal/housing/usecase/command"
	"github.com/hallaoui/ferme-ops/internal/housing/usecase/query"
	"github.com/hallaoui/ferme-ops/kafka"
	"github.com/hallaoui/ferme-ops/pkg/logger"
)

// HousingHandler handles HTTP requests for sectors, workers and rooms
type HousingHandler struct {
	// Command handlers
	createFermeHandler      *command.CreateFermeHandler
	updateFermeHandler      *command.UpdateFermeHandler
	deleteFermeHandler      *command.DeleteFermeHandler
	createWorkerHandler     *command.CreateWorkerHandler
	updateWorkerHandler     *command.UpdateWorkerHandler
	deactivateWorkerHandler *command.DeactivateWorkerHandler
	deleteWorkerHandler     *command.DeleteWorkerHandler
	createRoomHandler       *command.CreateRoomHandler
	updateRoomHandler       *command.UpdateRoomHandler
	deleteRoomHandler       *command.DeleteRoomHandler

	// Query handlers
	listFermesHandler  *query.ListFermesHandler
	getFermeHandler    *query.GetFermeHandler
	listWorkersHandler *query.ListWorkersHandler
	getWorkerHandler   *query.GetWorkerHandler
	listRoomsHandler   *query.ListRoomsHandler
	getRoomHandler     *query.GetRoomHandler

	workerRepo     domain.WorkerRepository
	roomRepo       domain.RoomRepository
	kafkaPublisher *kafka.Publisher

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	totalWorkers   prometheus.Gauge
	totalRooms     prometheus.Gauge
}

// NewHousingHandler creates a new housing handler
func NewHousingHandler(
	fermeRepo domain.FermeRepository,
	workerRepo domain.WorkerRepository,
	roomRepo domain.RoomRepository,
	kafkaPublisher *kafka.Publisher,
) *HousingHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "housing_service_requests_total",
			Help: "Total number of requests to housing service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "housing_service_request_duration_seconds",
			Help:    "Duration of housing service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	totalWorkers := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "housing_service_workers",
			Help: "Number of registered workers",
		},
	)

	totalRooms := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "housing_service_rooms",
			Help: "Number of registered rooms",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(totalWorkers)
	prometheus.MustRegister(totalRooms)

	return &HousingHandler{
		createFermeHandler:      command.NewCreateFermeHandler(fermeRepo),
		updateFermeHandler:      command.NewUpdateFermeHandler(fermeRepo),
		deleteFermeHandler:      command.NewDeleteFermeHandler(fermeRepo),
		createWorkerHandler:     command.NewCreateWorkerHandler(workerRepo),
		updateWorkerHandler:     command.NewUpdateWorkerHandler(workerRepo),
		deactivateWorkerHandler: command.NewDeactivateWorkerHandler(workerRepo),
		deleteWorkerHandler:     command.NewDeleteWorkerHandler(workerRepo),
		createRoomHandler:       command.NewCreateRoomHandler(roomRepo),
		updateRoomHandler:       command.NewUpdateRoomHandler(roomRepo),
		deleteRoomHandler:       command.NewDeleteRoomHandler(roomRepo),
		listFermesHandler:       query.NewListFermesHandler(fermeRepo),
		getFermeHandler:         query.NewGetFermeHandler(fermeRepo),
		listWorkersHandler:      query.NewListWorkersHandler(workerRepo),
		getWorkerHandler:        query.NewGetWorkerHandler(workerRepo),
		listRoomsHandler:        query.NewListRoomsHandler(roomRepo),
		getRoomHandler:          query.NewGetRoomHandler(roomRepo),
		workerRepo:              workerRepo,
		roomRepo:                roomRepo,
		kafkaPublisher:          kafkaPublisher,
		requestCounter:          requestCounter,
		requestLatency:          requestLatency,
		totalWorkers:            totalWorkers,
		totalRooms:              totalRooms,
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *HousingHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

func (h *HousingHandler) publishHousingChanged(ctx context.Context, fermeID, entityID uint, entity, action string) {
	if h.kafkaPublisher == nil {
		return
	}
	event := kafka.HousingChangedEvent{
		EventType: kafka.EventTypeHousingChanged,
		FermeID:   fermeID,
		Entity:    entity,
		EntityID:  entityID,
		Action:    action,
	}
	if err := h.kafkaPublisher.PublishHousingChanged(ctx, event); err != nil {
		logger.Error(ctx).Err(err).
			Uint("ferme_id", fermeID).
			Str("entity", entity).
			Str("action", action).
			Msg("Failed to publish housing changed event")
	}
}

// CreateFerme handles POST /api/fermes (superadmin only)
func (h *HousingHandler) CreateFerme(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Nom          string `json:"nom"`
		Localisation string `json:"localisation"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ferme, err := h.createFermeHandler.Handle(command.CreateFermeCommand{
		Nom:          req.Nom,
		Localisation: req.Localisation,
	})
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respondJSON(w, http.StatusCreated, ferme)
}

// ListFermes handles GET /api/fermes
func (h *HousingHandler) ListFermes(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	fermes, err := h.listFermesHandler.Handle(query.ListFermesQuery{Limit: limit, Offset: offset})
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, fermes)
}

// GetFerme handles GET /api/fermes/{id}
func (h *HousingHandler) GetFerme(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid ferme ID")
		return
	}

	ferme, err := h.getFermeHandler.Handle(query.GetFermeQuery{ID: id})
	if err != nil {
		h.respondError(w, http.StatusNotFound, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, ferme)
}

// UpdateFerme handles PUT /api/fermes/{id} (superadmin only)
func (h *HousingHandler) UpdateFerme(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid ferme ID")
		return
	}

	var req struct {
		Nom          string `json:"nom"`
		Localisation string `json:"localisation"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ferme, err := h.updateFermeHandler.Handle(command.UpdateFermeCommand{
		ID:           id,
		Nom:          req.Nom,
		Localisation: req.Localisation,
	})
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, ferme)
}

// DeleteFerme handles DELETE /api/fermes/{id} (superadmin only)
func (h *HousingHandler) DeleteFerme(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid ferme ID")
		return
	}

	if err := h.deleteFermeHandler.Handle(command.DeleteFermeCommand{ID: id}); err != nil {
		h.respondError(w, http.StatusNotFound, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Ferme deleted successfully"})
}

// CreateWorker handles POST /api/workers
func (h *HousingHandler) CreateWorker(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FermeID    uint       `json:"ferme_id"`
		Nom        string     `json:"nom"`
		CIN        string     `json:"cin"`
		Telephone  string     `json:"telephone"`
		Sexe       string     `json:"sexe"`
		Age        int        `json:"age"`
		Chambre    string     `json:"chambre"`
		DateEntree *time.Time `json:"date_entree"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !canAccessFerme(r.Context(), req.FermeID) {
		h.respondError(w, http.StatusForbidden, "Cannot manage workers of another ferme")
		return
	}

	cmd := command.CreateWorkerCommand{
		FermeID:   req.FermeID,
		Nom:       req.Nom,
		CIN:       req.CIN,
		Telephone: req.Telephone,
		Sexe:      req.Sexe,
		Age:       req.Age,
		Chambre:   req.Chambre,
	}
	if req.DateEntree != nil {
		cmd.DateEntree = *req.DateEntree
	}

	worker, err := h.createWorkerHandler.Handle(cmd)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.publishHousingChanged(r.Context(), worker.FermeID, worker.ID, "worker", "created")
	h.updateHousingMetrics()
	h.respondJSON(w, http.StatusCreated, worker)
}

// ListWorkers handles GET /api/workers
func (h *HousingHandler) ListWorkers(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	fermeID, _ := strconv.ParseUint(r.URL.Query().Get("ferme_id"), 10, 32)

	q := query.ListWorkersQuery{
		FermeID: uint(fermeID),
		Statut:  r.URL.Query().Get("statut"),
		Limit:   limit,
		Offset:  offset,
	}

	// Sector admins only ever see their own sector
	if role, _ := r.Context().Value(RoleKey).(string); role != "superadmin" {
		own, _ := r.Context().Value(FermeIDKey).(uint)
		q.FermeID = own
	}

	workers, err := h.listWorkersHandler.Handle(q)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, workers)
}

// GetWorker handles GET /api/workers/{id}
func (h *HousingHandler) GetWorker(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid worker ID")
		return
	}

	worker, err := h.getWorkerHandler.Handle(query.GetWorkerQuery{ID: id})
	if err != nil {
		h.respondError(w, http.StatusNotFound, err.Error())
		return
	}

	if !canAccessFerme(r.Context(), worker.FermeID) {
		h.respondError(w, http.StatusForbidden, "Cannot view workers of another ferme")
		return
	}

	h.respondJSON(w, http.StatusOK, worker)
}

// UpdateWorker handles PUT /api/workers/{id}
func (h *HousingHandler) UpdateWorker(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid worker ID")
		return
	}

	existing, err := h.getWorkerHandler.Handle(query.GetWorkerQuery{ID: id})
	if err != nil {
		h.respondError(w, http.StatusNotFound, err.Error())
		return
	}
	if !canAccessFerme(r.Context(), existing.FermeID) {
		h.respondError(w, http.StatusForbidden, "Cannot manage workers of another ferme")
		return
	}

	var req struct {
		Nom       string `json:"nom"`
		Telephone string `json:"telephone"`
		Age       int    `json:"age"`
		Chambre   string `json:"chambre"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	worker, err := h.updateWorkerHandler.Handle(command.UpdateWorkerCommand{
		ID:        id,
		Nom:       req.Nom,
		Telephone: req.Telephone,
		Age:       req.Age,
		Chambre:   req.Chambre,
	})
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.publishHousingChanged(r.Context(), worker.FermeID, worker.ID, "worker", "updated")
	h.respondJSON(w, http.StatusOK, worker)
}

// DeactivateWorker handles PUT /api/workers/{id}/deactivate
func (h *HousingHandler) DeactivateWorker(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid worker ID")
		return
	}

	existing, err := h.getWorkerHandler.Handle(query.GetWorkerQuery{ID: id})
	if err != nil {
		h.respondError(w, http.StatusNotFound, err.Error())
		return
	}
	if !canAccessFerme(r.Context(), existing.FermeID) {
		h.respondError(w, http.StatusForbidden, "Cannot manage workers of another ferme")
		return
	}

	worker, err := h.deactivateWorkerHandler.Handle(command.DeactivateWorkerCommand{ID: id})
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.publishHousingChanged(r.Context(), worker.FermeID, worker.ID, "worker", "updated")
	h.respondJSON(w, http.StatusOK, worker)
}

// DeleteWorker handles DELETE /api/workers/{id}
func (h *HousingHandler) DeleteWorker(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid worker ID")
		return
	}

	existing, err := h.getWorkerHandler.Handle(query.GetWorkerQuery{ID: id})
	if err != nil {
		h.respondError(w, http.StatusNotFound, err.Error())
		return
	}
	if !canAccessFerme(r.Context(), existing.FermeID) {
		h.respondError(w, http.StatusForbidden, "Cannot manage workers of another ferme")
		return
	}

	worker, err := h.deleteWorkerHandler.Handle(command.DeleteWorkerCommand{ID: id})
	if err != nil {
		h.respondError(w, http.StatusNotFound, err.Error())
		return
	}

	h.publishHousingChanged(r.Context(), worker.FermeID, worker.ID, "worker", "deleted")
	h.updateHousingMetrics()
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Worker deleted successfully"})
}

// CreateRoom handles POST /api/rooms
func (h *HousingHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FermeID        uint   `json:"ferme_id"`
		Numero         string `json:"numero"`
		Genre          string `json:"genre"`
		CapaciteTotale int    `json:"capacite_totale"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !canAccessFerme(r.Context(), req.FermeID) {
		h.respondError(w, http.StatusForbidden, "Cannot manage rooms of another ferme")
		return
	}

	room, err := h.createRoomHandler.Handle(command.CreateRoomCommand{
		FermeID:        req.FermeID,
		Numero:         req.Numero,
		Genre:          req.Genre,
		CapaciteTotale: req.CapaciteTotale,
	})
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.publishHousingChanged(r.Context(), room.FermeID, room.ID, "room", "created")
	h.updateHousingMetrics()
	h.respondJSON(w, http.StatusCreated, room)
}

// ListRooms handles GET /api/rooms
func (h *HousingHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	fermeID, _ := strconv.ParseUint(r.URL.Query().Get("ferme_id"), 10, 32)

	q := query.ListRoomsQuery{
		FermeID: uint(fermeID),
		Limit:   limit,
		Offset:  offset,
	}

	if role, _ := r.Context().Value(RoleKey).(string); role != "superadmin" {
		own, _ := r.Context().Value(FermeIDKey).(uint)
		q.FermeID = own
	}

	rooms, err := h.listRoomsHandler.Handle(q)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, rooms)
}

// GetRoom handles GET /api/rooms/{id}
func (h *HousingHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid room ID")
		return
	}

	room, err := h.getRoomHandler.Handle(query.GetRoomQuery{ID: id})
	if err != nil {
		h.respondError(w, http.StatusNotFound, err.Error())
		return
	}

	if !canAccessFerme(r.Context(), room.FermeID) {
		h.respondError(w, http.StatusForbidden, "Cannot view rooms of another ferme")
		return
	}

	h.respondJSON(w, http.StatusOK, room)
}

// UpdateRoom handles PUT /api/rooms/{id}
func (h *HousingHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid room ID")
		return
	}

	existing, err := h.getRoomHandler.Handle(query.GetRoomQuery{ID: id})
	if err != nil {
		h.respondError(w, http.StatusNotFound, err.Error())
		return
	}
	if !canAccessFerme(r.Context(), existing.FermeID) {
		h.respondError(w, http.StatusForbidden, "Cannot manage rooms of another ferme")
		return
	}

	var req struct {
		CapaciteTotale int `json:"capacite_totale"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	room, err := h.updateRoomHandler.Handle(command.UpdateRoomCommand{
		ID:             id,
		CapaciteTotale: req.CapaciteTotale,
	})
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.publishHousingChanged(r.Context(), room.FermeID, room.ID, "room", "updated")
	h.respondJSON(w, http.StatusOK, room)
}

// DeleteRoom handles DELETE /api/rooms/{id}
func (h *HousingHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid room ID")
		return
	}

	existing, err := h.getRoomHandler.Handle(query.GetRoomQuery{ID: id})
	if err != nil {
		h.respondError(w, http.StatusNotFound, err.Error())
		return
	}
	if !canAccessFerme(r.Context(), existing.FermeID) {
		h.respondError(w, http.StatusForbidden, "Cannot manage rooms of another ferme")
		return
	}

	room, err := h.deleteRoomHandler.Handle(command.DeleteRoomCommand{ID: id})
	if err != nil {
		h.respondError(w, http.StatusConflict, err.Error())
		return
	}

	h.publishHousingChanged(r.Context(), room.FermeID, room.ID, "room", "deleted")
	h.updateHousingMetrics()
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Room deleted successfully"})
}

// HealthCheck handles GET /health
func (h *HousingHandler) HealthCheck(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			h.respondJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}

		h.respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	}
}

func (h *HousingHandler) updateHousingMetrics() {
	if count, err := h.workerRepo.Count(); err == nil {
		h.totalWorkers.Set(float64(count))
	}
	if count, err := h.roomRepo.Count(); err == nil {
		h.totalRooms.Set(float64(count))
	}
}

func (h *HousingHandler) pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	return uint(id), err
}

func (h *HousingHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *HousingHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all housing routes
func (h *HousingHandler) RegisterRoutes(router *mux.Router) {
	// Ferme routes
	router.HandleFunc("/api/fermes", h.metricsMiddleware("/api/fermes", AuthMiddleware(h.ListFermes))).Methods("GET")
	router.HandleFunc("/api/fermes", h.metricsMiddleware("/api/fermes", SuperAdminMiddleware(h.CreateFerme))).Methods("POST")
	router.HandleFunc("/api/fermes/{id}", h.metricsMiddleware("/api/fermes/{id}", AuthMiddleware(h.GetFerme))).Methods("GET")
	router.HandleFunc("/api/fermes/{id}", h.metricsMiddleware("/api/fermes/{id}", SuperAdminMiddleware(h.UpdateFerme))).Methods("PUT")
	router.HandleFunc("/api/fermes/{id}", h.metricsMiddleware("/api/fermes/{id}", SuperAdminMiddleware(h.DeleteFerme))).Methods("DELETE")

	// Worker routes
	router.HandleFunc("/api/workers", h.metricsMiddleware("/api/workers", AuthMiddleware(h.ListWorkers))).Methods("GET")
	router.HandleFunc("/api/workers", h.metricsMiddleware("/api/workers", AuthMiddleware(h.CreateWorker))).Methods("POST")
	router.HandleFunc("/api/workers/{id}", h.metricsMiddleware("/api/workers/{id}", AuthMiddleware(h.GetWorker))).Methods("GET")
	router.HandleFunc("/api/workers/{id}", h.metricsMiddleware("/api/workers/{id}", AuthMiddleware(h.UpdateWorker))).Methods("PUT")
	router.HandleFunc("/api/workers/{id}", h.metricsMiddleware("/api/workers/{id}", AuthMiddleware(h.DeleteWorker))).Methods("DELETE")
	router.HandleFunc("/api/workers/{id}/deactivate", h.metricsMiddleware("/api/workers/{id}/deactivate", AuthMiddleware(h.DeactivateWorker))).Methods("PUT")

	// Room routes
	router.HandleFunc("/api/rooms", h.metricsMiddleware("/api/rooms", AuthMiddleware(h.ListRooms))).Methods("GET")
	router.HandleFunc("/api/rooms", h.metricsMiddleware("/api/rooms", AuthMiddleware(h.CreateRoom))).Methods("POST")
	router.HandleFunc("/api/rooms/{id}", h.metricsMiddleware("/api/rooms/{id}", AuthMiddleware(h.GetRoom))).Methods("GET")
	router.HandleFunc("/api/rooms/{id}", h.metricsMiddleware("/api/rooms/{id}", AuthMiddleware(h.UpdateRoom))).Methods("PUT")
	router.HandleFunc("/api/rooms/{id}", h.metricsMiddleware("/api/rooms/{id}", AuthMiddleware(h.DeleteRoom))).Methods("DELETE")
}

// RegisterHealthCheck registers health check endpoint
func (h *HousingHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", h.HealthCheck(db)).Methods("GET")
}

package http

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hallaoui/ferme-ops/internal/stock/domain"
	"github.com/hallaoui/ferme-ops/internal/stock/usecase/command"
	"github.com/hallaoui/ferme-ops/internal/stock/usecase/query"
	"github.com/hallaoui/ferme-ops/kafka"
	"github.com/hallaoui/ferme-ops/pkg/logger"
)

// StockHandler handles HTTP requests for the stock ledger
type StockHandler struct {
	// Command handlers
	addStockHandler        *command.AddStockHandler
	confirmAdditionHandler *command.ConfirmAdditionHandler
	createTransferHandler  *command.CreateTransferHandler
	confirmTransferHandler *command.ConfirmTransferHandler

	// Query handlers
	getStockHandler      *query.GetStockHandler
	listStockHandler     *query.ListStockHandler
	listTransfersHandler *query.ListTransfersHandler
	listAdditionsHandler *query.ListAdditionsHandler
	statsHandler         *query.GetStatsHandler

	transferRepo   domain.TransferRepository
	additionRepo   domain.AdditionRepository
	kafkaPublisher *kafka.Publisher

	requestCounter   *prometheus.CounterVec
	requestLatency   *prometheus.HistogramVec
	pendingTransfers prometheus.Gauge
	pendingAdditions prometheus.Gauge
}

// NewStockHandler creates a new stock handler
func NewStockHandler(
	stockRepo domain.StockRepository,
	transferRepo domain.TransferRepository,
	additionRepo domain.AdditionRepository,
	kafkaPublisher *kafka.Publisher,
) *StockHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stock_service_requests_total",
			Help: "Total number of requests to stock service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stock_service_request_duration_seconds",
			Help:    "Duration of stock service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	pendingTransfers := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "stock_service_pending_transfers",
			Help: "Number of transfers awaiting confirmation",
		},
	)

	pendingAdditions := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "stock_service_pending_additions",
			Help: "Number of additions awaiting confirmation",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(pendingTransfers)
	prometheus.MustRegister(pendingAdditions)

	return &StockHandler{
		addStockHandler:        command.NewAddStockHandler(stockRepo, additionRepo),
		confirmAdditionHandler: command.NewConfirmAdditionHandler(additionRepo),
		createTransferHandler:  command.NewCreateTransferHandler(stockRepo, transferRepo),
		confirmTransferHandler: command.NewConfirmTransferHandler(transferRepo),
		getStockHandler:        query.NewGetStockHandler(stockRepo),
		listStockHandler:       query.NewListStockHandler(stockRepo),
		listTransfersHandler:   query.NewListTransfersHandler(transferRepo),
		listAdditionsHandler:   query.NewListAdditionsHandler(additionRepo),
		statsHandler:           query.NewGetStatsHandler(stockRepo, transferRepo, additionRepo),
		transferRepo:           transferRepo,
		additionRepo:           additionRepo,
		kafkaPublisher:         kafkaPublisher,
		requestCounter:         requestCounter,
		requestLatency:         requestLatency,
		pendingTransfers:       pendingTransfers,
		pendingAdditions:       pendingAdditions,
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
func (h *StockHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

func (h *StockHandler) publishStockMovement(ctx context.Context, event kafka.StockMovementEvent) {
	if h.kafkaPublisher == nil {
		return
	}
	if err := h.kafkaPublisher.PublishStockMovement(ctx, event); err != nil {
		logger.Error(ctx).Err(err).
			Str("movement_type", event.MovementType).
			Uint("reference_id", event.ReferenceID).
			Msg("Failed to publish stock movement event")
	}
}

// AddStock handles POST /api/stock
func (h *StockHandler) AddStock(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SecteurID uint   `json:"secteur_id"`
		Item      string `json:"item"`
		Quantity  int    `json:"quantity"`
		Unit      string `json:"unit"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	actor := h.actor(r)
	if !actor.IsSuperAdmin() && actor.SecteurID != req.SecteurID {
		h.respondError(w, http.StatusForbidden, "Cannot add stock to another secteur")
		return
	}

	result, err := h.addStockHandler.Handle(command.AddStockCommand{
		Actor:     actor,
		SecteurID: req.SecteurID,
		Item:      req.Item,
		Quantity:  req.Quantity,
		Unit:      req.Unit,
	})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.updatePendingMetrics()
	h.respondJSON(w, http.StatusCreated, result)
}

// GetStock handles GET /api/stock?secteur_id=&item= and plain listing
func (h *StockHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	secteurID, _ := strconv.ParseUint(r.URL.Query().Get("secteur_id"), 10, 32)
	item := r.URL.Query().Get("item")

	if !isSuperAdmin(r.Context()) {
		secteurID = uint64(actorSecteur(r.Context()))
	}

	if item != "" {
		stock, err := h.getStockHandler.Handle(query.GetStockQuery{SecteurID: uint(secteurID), Item: item})
		if err != nil {
			h.respondDomainError(w, err)
			return
		}
		h.respondJSON(w, http.StatusOK, stock)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	stocks, err := h.listStockHandler.Handle(query.ListStockQuery{
		SecteurID: uint(secteurID),
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, stocks)
}

// CreateTransfer handles POST /api/transfers
func (h *StockHandler) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FromSecteurID uint   `json:"from_secteur_id"`
		ToSecteurID   uint   `json:"to_secteur_id"`
		Item          string `json:"item"`
		Quantity      int    `json:"quantity"`
		Unit          string `json:"unit"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !isSuperAdmin(r.Context()) {
		own := actorSecteur(r.Context())
		if own != req.FromSecteurID && own != req.ToSecteurID {
			h.respondError(w, http.StatusForbidden, "Cannot transfer between other secteurs")
			return
		}
	}

	transfer, err := h.createTransferHandler.Handle(command.CreateTransferCommand{
		FromSecteurID: req.FromSecteurID,
		ToSecteurID:   req.ToSecteurID,
		Item:          req.Item,
		Quantity:      req.Quantity,
		Unit:          req.Unit,
	})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.updatePendingMetrics()
	h.respondJSON(w, http.StatusCreated, transfer)
}

// ConfirmTransfer handles POST /api/transfers/{id}/confirm
func (h *StockHandler) ConfirmTransfer(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid transfer ID")
		return
	}

	existing, err := h.transferRepo.FindByID(id)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	// Only the receiving secteur's administrator approves the move
	if !isSuperAdmin(r.Context()) && actorSecteur(r.Context()) != existing.ToSecteurID {
		h.respondError(w, http.StatusForbidden, "Only the receiving secteur can confirm this transfer")
		return
	}

	transfer, err := h.confirmTransferHandler.Handle(command.ConfirmTransferCommand{ID: id})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.publishStockMovement(r.Context(), kafka.StockMovementEvent{
		EventType:     kafka.EventTypeTransferConfirmed,
		MovementType:  "transfer",
		ReferenceID:   transfer.ID,
		FromSecteurID: transfer.FromSecteurID,
		ToSecteurID:   transfer.ToSecteurID,
		Item:          transfer.Item,
		Quantity:      transfer.Quantity,
		Unit:          transfer.Unit,
	})
	h.updatePendingMetrics()
	h.respondJSON(w, http.StatusOK, transfer)
}

// ListTransfers handles GET /api/transfers
func (h *StockHandler) ListTransfers(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	secteurID, _ := strconv.ParseUint(r.URL.Query().Get("secteur_id"), 10, 32)

	if !isSuperAdmin(r.Context()) {
		secteurID = uint64(actorSecteur(r.Context()))
	}

	transfers, err := h.listTransfersHandler.Handle(query.ListTransfersQuery{
		SecteurID: uint(secteurID),
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, transfers)
}

// ConfirmAddition handles POST /api/additions/{id}/confirm
func (h *StockHandler) ConfirmAddition(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid addition ID")
		return
	}

	existing, err := h.additionRepo.FindByID(id)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	// Only the owning secteur's administrator approves the credit
	if actorSecteur(r.Context()) != existing.SecteurID {
		h.respondError(w, http.StatusForbidden, "Only the owning secteur can confirm this addition")
		return
	}

	addition, err := h.confirmAdditionHandler.Handle(command.ConfirmAdditionCommand{ID: id})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.publishStockMovement(r.Context(), kafka.StockMovementEvent{
		EventType:    kafka.EventTypeAdditionConfirmed,
		MovementType: "addition",
		ReferenceID:  addition.ID,
		ToSecteurID:  addition.SecteurID,
		Item:         addition.Item,
		Quantity:     addition.Quantity,
		Unit:         addition.Unit,
	})
	h.updatePendingMetrics()
	h.respondJSON(w, http.StatusOK, addition)
}

// ListAdditions handles GET /api/additions
func (h *StockHandler) ListAdditions(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	secteurID, _ := strconv.ParseUint(r.URL.Query().Get("secteur_id"), 10, 32)

	if !isSuperAdmin(r.Context()) {
		secteurID = uint64(actorSecteur(r.Context()))
	}

	additions, err := h.listAdditionsHandler.Handle(query.ListAdditionsQuery{
		SecteurID: uint(secteurID),
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, additions)
}

// GetStats handles GET /api/stock/stats (superadmin only)
func (h *StockHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	if !isSuperAdmin(r.Context()) {
		h.respondError(w, http.StatusForbidden, "Superadmin access required")
		return
	}

	threshold, _ := strconv.Atoi(r.URL.Query().Get("low_stock_threshold"))

	stats, err := h.statsHandler.Handle(query.GetStatsQuery{LowStockThreshold: threshold})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, stats)
}

// HealthCheck handles GET /health
func (h *StockHandler) HealthCheck(db *sql.DB) http.HandlerFunc {
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

func (h *StockHandler) actor(r *http.Request) command.Actor {
	userID, _ := r.Context().Value(UserIDKey).(uint)
	role, _ := r.Context().Value(RoleKey).(string)
	return command.Actor{
		UserID:    userID,
		Role:      role,
		SecteurID: actorSecteur(r.Context()),
	}
}

func (h *StockHandler) updatePendingMetrics() {
	if count, err := h.transferRepo.CountByStatus(domain.StatusPending); err == nil {
		h.pendingTransfers.Set(float64(count))
	}
	if count, err := h.additionRepo.CountByStatus(domain.StatusPending); err == nil {
		h.pendingAdditions.Set(float64(count))
	}
}

func (h *StockHandler) pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	return uint(id), err
}

// respondDomainError maps ledger errors onto HTTP statuses
func (h *StockHandler) respondDomainError(w http.ResponseWriter, err error) {
	var insufficient *domain.InsufficientStockError
	switch {
	case errors.As(err, &insufficient):
		h.respondJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":     err.Error(),
			"item":      insufficient.Item,
			"requested": insufficient.Requested,
			"available": insufficient.Available,
		})
	case errors.Is(err, domain.ErrValidation):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidState):
		h.respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		h.respondError(w, http.StatusNotFound, err.Error())
	default:
		h.respondError(w, http.StatusInternalServerError, err.Error())
	}
}

func (h *StockHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *StockHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all stock routes
func (h *StockHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/stock", h.metricsMiddleware("/api/stock", AuthMiddleware(h.GetStock))).Methods("GET")
	router.HandleFunc("/api/stock", h.metricsMiddleware("/api/stock", AuthMiddleware(h.AddStock))).Methods("POST")
	router.HandleFunc("/api/stock/stats", h.metricsMiddleware("/api/stock/stats", AuthMiddleware(h.GetStats))).Methods("GET")

	router.HandleFunc("/api/transfers", h.metricsMiddleware("/api/transfers", AuthMiddleware(h.ListTransfers))).Methods("GET")
	router.HandleFunc("/api/transfers", h.metricsMiddleware("/api/transfers", AuthMiddleware(h.CreateTransfer))).Methods("POST")
	router.HandleFunc("/api/transfers/{id}/confirm", h.metricsMiddleware("/api/transfers/{id}/confirm", AuthMiddleware(h.ConfirmTransfer))).Methods("POST")

	router.HandleFunc("/api/additions", h.metricsMiddleware("/api/additions", AuthMiddleware(h.ListAdditions))).Methods("GET")
	router.HandleFunc("/api/additions/{id}/confirm", h.metricsMiddleware("/api/additions/{id}/confirm", AuthMiddleware(h.ConfirmAddition))).Methods("POST")
}

// RegisterHealthCheck registers health check endpoint
func (h *StockHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", h.HealthCheck(db)).Methods("GET")
}

package http

import (
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/laminate-stock/internal/ledger/domain"
	"github.com/tair/laminate-stock/internal/ledger/usecase/command"
	"github.com/tair/laminate-stock/internal/ledger/usecase/query"
	userdomain "github.com/tair/laminate-stock/internal/user/domain"
	"github.com/tair/laminate-stock/kafka"
	"github.com/tair/laminate-stock/pkg/logger"
)

// LedgerHandler handles HTTP requests for laminates and stock transactions
type LedgerHandler struct {
	// Command handlers
	addLaminateHandler    *command.AddLaminateHandler
	updateLaminateHandler *command.UpdateLaminateHandler
	deleteLaminateHandler *command.DeleteLaminateHandler
	clearAllHandler       *command.ClearAllLaminatesHandler
	addTxHandler          *command.AddTransactionHandler
	addBulkHandler        *command.AddBulkTransactionsHandler
	updateTxHandler       *command.UpdateTransactionHandler
	deleteTxHandler       *command.DeleteTransactionHandler

	// Query handlers
	getLaminateHandler   *query.GetLaminateHandler
	listLaminatesHandler *query.ListLaminatesHandler
	listTxHandler        *query.ListTransactionsHandler
	lowStockHandler      *query.LowStockHandler
	topSellingHandler    *query.TopSellingHandler
	statsHandler         *query.GetStatsHandler
	reportHandler        *query.ReportHandler

	laminates    domain.LaminateRepository
	transactions domain.TransactionRepository
	users        userdomain.UserRepository
	publisher    *kafka.Publisher // nil when event publishing is disabled

	requestCounter   *prometheus.CounterVec
	requestLatency   *prometheus.HistogramVec
	trackedLaminates prometheus.Gauge
	lowStockGauge    prometheus.Gauge
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(
	laminates domain.LaminateRepository,
	transactions domain.TransactionRepository,
	users userdomain.UserRepository,
	publisher *kafka.Publisher,
) *LedgerHandler {
	recalculate := command.NewRecalculateStockHandler(laminates, transactions)

	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_service_requests_total",
			Help: "Total number of requests to ledger service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ledger_service_request_duration_seconds",
			Help:    "Duration of ledger service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	trackedLaminates := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_service_laminates_total",
			Help: "Number of laminates tracked by the ledger",
		},
	)

	lowStockGauge := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_service_low_stock_laminates",
			Help: "Number of laminates at or below the low stock threshold",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(trackedLaminates)
	prometheus.MustRegister(lowStockGauge)

	return &LedgerHandler{
		addLaminateHandler:    command.NewAddLaminateHandler(laminates),
		updateLaminateHandler: command.NewUpdateLaminateHandler(laminates),
		deleteLaminateHandler: command.NewDeleteLaminateHandler(laminates, transactions),
		clearAllHandler:       command.NewClearAllLaminatesHandler(laminates, transactions),
		addTxHandler:          command.NewAddTransactionHandler(laminates, transactions, recalculate),
		addBulkHandler:        command.NewAddBulkTransactionsHandler(laminates, transactions, recalculate),
		updateTxHandler:       command.NewUpdateTransactionHandler(laminates, transactions, recalculate),
		deleteTxHandler:       command.NewDeleteTransactionHandler(transactions, recalculate),
		getLaminateHandler:    query.NewGetLaminateHandler(laminates),
		listLaminatesHandler:  query.NewListLaminatesHandler(laminates),
		listTxHandler:         query.NewListTransactionsHandler(transactions),
		lowStockHandler:       query.NewLowStockHandler(laminates),
		topSellingHandler:     query.NewTopSellingHandler(laminates, transactions),
		statsHandler:          query.NewGetStatsHandler(laminates, transactions),
		reportHandler:         query.NewReportHandler(laminates, transactions),
		laminates:             laminates,
		transactions:          transactions,
		users:                 users,
		publisher:             publisher,
		requestCounter:        requestCounter,
		requestLatency:        requestLatency,
		trackedLaminates:      trackedLaminates,
		lowStockGauge:         lowStockGauge,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
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
func (h *LedgerHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// statusForError maps domain errors to HTTP status codes
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrLaminateNotFound),
		errors.Is(err, domain.ErrTransactionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrHasTransactions):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnknownLaminate),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidKind):
		return http.StatusBadRequest
	}

	var pe *domain.PersistenceError
	if errors.As(err, &pe) {
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}

// --- LAMINATE ENDPOINTS ---

// ListLaminates handles GET /api/laminates
func (h *LedgerHandler) ListLaminates(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	laminates, err := h.listLaminatesHandler.Handle(query.ListLaminatesQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list laminates")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list laminates"})
		return
	}

	h.updateStockMetrics()
	respondJSON(w, http.StatusOK, Response{Success: true, Data: laminates})
}

// GetLaminate handles GET /api/laminates/{id}
func (h *LedgerHandler) GetLaminate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid laminate ID"})
		return
	}

	laminate, err := h.getLaminateHandler.Handle(query.GetLaminateQuery{ID: id})
	if err != nil {
		respondJSON(w, statusForError(err), Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: laminate})
}

// AddLaminate handles POST /api/laminates
func (h *LedgerHandler) AddLaminate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Brand         string `json:"brand"`
		CatalogNumber string `json:"catalog_number"`
		Finish        string `json:"finish"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	laminate, err := h.addLaminateHandler.Handle(command.AddLaminateCommand{
		Brand:         req.Brand,
		CatalogNumber: req.CatalogNumber,
		Finish:        req.Finish,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to add laminate")
		respondJSON(w, statusForError(err), Response{Success: false, Error: err.Error()})
		return
	}

	h.updateStockMetrics()
	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Laminate added successfully",
		Data:    laminate,
	})
}

// UpdateLaminate handles PUT /api/laminates/{id}
func (h *LedgerHandler) UpdateLaminate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid laminate ID"})
		return
	}

	var req struct {
		Brand         *string `json:"brand"`
		CatalogNumber *string `json:"catalog_number"`
		Finish        *string `json:"finish"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	laminate, err := h.updateLaminateHandler.Handle(command.UpdateLaminateCommand{
		ID:            id,
		Brand:         req.Brand,
		CatalogNumber: req.CatalogNumber,
		Finish:        req.Finish,
	})
	if err != nil {
		respondJSON(w, statusForError(err), Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Laminate updated successfully",
		Data:    laminate,
	})
}

// DeleteLaminate handles DELETE /api/laminates/{id}
func (h *LedgerHandler) DeleteLaminate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid laminate ID"})
		return
	}

	if err := h.deleteLaminateHandler.Handle(command.DeleteLaminateCommand{ID: id}); err != nil {
		respondJSON(w, statusForError(err), Response{Success: false, Error: err.Error()})
		return
	}

	h.updateStockMetrics()
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Laminate deleted successfully"})
}

// ClearAllLaminates handles DELETE /api/laminates
func (h *LedgerHandler) ClearAllLaminates(w http.ResponseWriter, r *http.Request) {
	if err := h.clearAllHandler.Handle(command.ClearAllLaminatesCommand{}); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to clear inventory")
		respondJSON(w, statusForError(err), Response{Success: false, Error: err.Error()})
		return
	}

	logger.Logger.Warn().Msg("All laminates and transactions cleared")
	h.updateStockMetrics()
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "All inventory data cleared"})
}

// --- TRANSACTION ENDPOINTS ---

// ListTransactions handles GET /api/transactions
func (h *LedgerHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	filter := domain.TransactionFilter{
		Kind:         q.Get("kind"),
		DateFrom:     q.Get("from"),
		DateTo:       q.Get("to"),
		CustomerName: q.Get("customer"),
	}
	if raw := q.Get("laminate_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid laminate ID"})
			return
		}
		filter.LaminateID = uint(id)
	}

	transactions, err := h.listTxHandler.Handle(query.ListTransactionsQuery{
		Filter: filter,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list transactions")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list transactions"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: transactions})
}

// AddTransaction handles POST /api/transactions
func (h *LedgerHandler) AddTransaction(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Kind         string `json:"kind"`
		LaminateID   uint   `json:"laminate_id"`
		Date         string `json:"date"`
		Quantity     int    `json:"quantity"`
		CustomerName string `json:"customer_name"`
		Remarks      string `json:"remarks"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	transaction, err := h.addTxHandler.Handle(command.AddTransactionCommand{
		Kind:         req.Kind,
		LaminateID:   req.LaminateID,
		Date:         req.Date,
		Quantity:     req.Quantity,
		CustomerName: req.CustomerName,
		Remarks:      req.Remarks,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to add transaction")
		respondJSON(w, statusForError(err), Response{Success: false, Error: err.Error()})
		return
	}

	h.publishTransactionEvents(r, transaction)
	h.updateStockMetrics()
	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Transaction recorded successfully",
		Data:    transaction,
	})
}

// AddBulkTransactions handles POST /api/transactions/bulk
func (h *LedgerHandler) AddBulkTransactions(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Kind         string `json:"kind"`
		Date         string `json:"date"`
		CustomerName string `json:"customer_name"`
		Remarks      string `json:"remarks"`
		Lines        []struct {
			LaminateID uint `json:"laminate_id"`
			Quantity   int  `json:"quantity"`
		} `json:"lines"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	lines := make([]command.BulkLine, 0, len(req.Lines))
	for _, line := range req.Lines {
		lines = append(lines, command.BulkLine{LaminateID: line.LaminateID, Quantity: line.Quantity})
	}

	inserted, err := h.addBulkHandler.Handle(command.AddBulkTransactionsCommand{
		Kind:         req.Kind,
		Date:         req.Date,
		CustomerName: req.CustomerName,
		Remarks:      req.Remarks,
		Lines:        lines,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Int("inserted", len(inserted)).Msg("Bulk transaction batch failed")
		respondJSON(w, statusForError(err), Response{
			Success: false,
			Error:   err.Error(),
			Data:    inserted,
		})
		return
	}

	for i := range inserted {
		h.publishTransactionEvents(r, &inserted[i])
	}
	h.updateStockMetrics()
	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: fmt.Sprintf("%d transactions recorded successfully", len(inserted)),
		Data:    inserted,
	})
}

// UpdateTransaction handles PUT /api/transactions/{id}
func (h *LedgerHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid transaction ID"})
		return
	}

	var req struct {
		LaminateID   *uint   `json:"laminate_id"`
		Date         *string `json:"date"`
		Quantity     *int    `json:"quantity"`
		CustomerName *string `json:"customer_name"`
		Remarks      *string `json:"remarks"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	transaction, err := h.updateTxHandler.Handle(command.UpdateTransactionCommand{
		ID:           id,
		LaminateID:   req.LaminateID,
		Date:         req.Date,
		Quantity:     req.Quantity,
		CustomerName: req.CustomerName,
		Remarks:      req.Remarks,
	})
	if err != nil {
		respondJSON(w, statusForError(err), Response{Success: false, Error: err.Error()})
		return
	}

	h.publishStockEvent(r, transaction.LaminateID)
	h.updateStockMetrics()
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Transaction updated successfully",
		Data:    transaction,
	})
}

// DeleteTransaction handles DELETE /api/transactions/{id}
func (h *LedgerHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid transaction ID"})
		return
	}

	// Resolve the transaction first so the stock event can still name
	// the affected laminate after the row is gone
	tx, err := h.transactions.FindByID(id)
	if err != nil {
		respondJSON(w, statusForError(err), Response{Success: false, Error: err.Error()})
		return
	}

	if err := h.deleteTxHandler.Handle(command.DeleteTransactionCommand{ID: id}); err != nil {
		respondJSON(w, statusForError(err), Response{Success: false, Error: err.Error()})
		return
	}

	h.publishStockEvent(r, tx.LaminateID)
	h.updateStockMetrics()
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Transaction deleted successfully"})
}

// --- DASHBOARD ENDPOINTS ---

// GetStats handles GET /api/dashboard/stats
func (h *LedgerHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsHandler.Handle(query.GetStatsQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to build ledger stats")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to build stats"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: stats})
}

// GetLowStock handles GET /api/dashboard/low-stock
func (h *LedgerHandler) GetLowStock(w http.ResponseWriter, r *http.Request) {
	q := query.LowStockQuery{}
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		threshold, err := strconv.Atoi(raw)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid threshold"})
			return
		}
		q.Threshold = &threshold
	}

	laminates, err := h.lowStockHandler.Handle(q)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to query low stock")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to query low stock"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: laminates})
}

// GetTopSelling handles GET /api/dashboard/top-selling
func (h *LedgerHandler) GetTopSelling(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := h.topSellingHandler.Handle(query.TopSellingQuery{Limit: limit})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to query top selling laminates")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to query top selling"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: entries})
}

// --- REPORT ENDPOINTS ---

// GetReport handles GET /api/reports
func (h *LedgerHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.buildReport(r)
	if err != nil {
		respondJSON(w, statusForError(err), Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: report})
}

// ExportReport handles GET /api/reports/export, streaming the report as CSV
func (h *LedgerHandler) ExportReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.buildReport(r)
	if err != nil {
		respondJSON(w, statusForError(err), Response{Success: false, Error: err.Error()})
		return
	}

	filename := fmt.Sprintf("%s-report-%s.csv", report.Kind, time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	writer := csv.NewWriter(w)
	_ = writer.Write([]string{"date", "kind", "brand", "catalog_number", "finish", "quantity", "customer", "remarks"})
	for _, row := range report.Rows {
		_ = writer.Write([]string{
			row.Transaction.Date,
			row.Transaction.Kind,
			row.Brand,
			row.Catalog,
			row.Finish,
			strconv.Itoa(row.Transaction.Quantity),
			row.Transaction.CustomerName,
			row.Transaction.Remarks,
		})
	}
	_ = writer.Write([]string{"total", "", "", "", "", strconv.Itoa(report.TotalQuantity), "", ""})
	writer.Flush()

	if err := writer.Error(); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to stream report CSV")
	}
}

func (h *LedgerHandler) buildReport(r *http.Request) (*query.Report, error) {
	q := r.URL.Query()
	return h.reportHandler.Handle(query.ReportQuery{
		Kind:         q.Get("kind"),
		DateFrom:     q.Get("from"),
		DateTo:       q.Get("to"),
		CustomerName: q.Get("customer"),
	})
}

// --- EVENT PUBLISHING ---

// publishTransactionEvents emits the transaction event followed by the
// stock event for the affected laminate. Publishing failures are logged
// and never fail the request; the database remains the source of truth.
func (h *LedgerHandler) publishTransactionEvents(r *http.Request, tx *domain.Transaction) {
	if h.publisher == nil {
		return
	}

	event := kafka.TransactionRecordedEvent{
		EventID:       uuid.New().String(),
		EventType:     kafka.EventTypeTransactionRecorded,
		TransactionID: tx.ID,
		Kind:          tx.Kind,
		LaminateID:    tx.LaminateID,
		Quantity:      tx.Quantity,
		BatchRef:      tx.BatchRef,
		Timestamp:     time.Now(),
	}
	if err := h.publisher.PublishTransactionRecorded(r.Context(), event); err != nil {
		logger.Logger.Error().Err(err).Uint("transaction_id", uint(tx.ID)).Msg("Failed to publish transaction event")
	}

	h.publishStockEvent(r, tx.LaminateID)
}

func (h *LedgerHandler) publishStockEvent(r *http.Request, laminateID uint) {
	if h.publisher == nil {
		return
	}

	laminate, err := h.laminates.FindByID(laminateID)
	if err != nil {
		logger.Logger.Error().Err(err).Uint("laminate_id", laminateID).Msg("Failed to load laminate for stock event")
		return
	}

	event := kafka.StockRecalculatedEvent{
		EventID:      uuid.New().String(),
		EventType:    kafka.EventTypeStockRecalculated,
		LaminateID:   laminate.ID,
		Brand:        laminate.Brand,
		Catalog:      laminate.CatalogNumber,
		CurrentStock: laminate.CurrentStock,
		LowStock:     laminate.IsLowStock(query.DefaultLowStockThreshold),
		Threshold:    query.DefaultLowStockThreshold,
		Timestamp:    time.Now(),
	}
	if err := h.publisher.PublishStockRecalculated(r.Context(), event); err != nil {
		logger.Logger.Error().Err(err).Uint("laminate_id", laminateID).Msg("Failed to publish stock event")
	}
}

// updateStockMetrics refreshes the laminate gauges
func (h *LedgerHandler) updateStockMetrics() {
	if count, err := h.laminates.Count(); err == nil {
		h.trackedLaminates.Set(float64(count))
	}
	if low, err := h.laminates.FindLowStock(query.DefaultLowStockThreshold); err == nil {
		h.lowStockGauge.Set(float64(len(low)))
	}
}

func pathID(r *http.Request, key string) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)[key], 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// RegisterRoutes registers all ledger routes
func (h *LedgerHandler) RegisterRoutes(router *mux.Router) {
	perm := func(page string, next http.HandlerFunc) http.HandlerFunc {
		return RequirePermission(h.users, page, next)
	}

	// Inventory page
	router.HandleFunc("/api/laminates", h.metricsMiddleware("/api/laminates", perm(userdomain.PageInventory, h.ListLaminates))).Methods("GET")
	router.HandleFunc("/api/laminates", h.metricsMiddleware("/api/laminates", perm(userdomain.PageInventory, h.AddLaminate))).Methods("POST")
	router.HandleFunc("/api/laminates/{id}", h.metricsMiddleware("/api/laminates/{id}", perm(userdomain.PageInventory, h.GetLaminate))).Methods("GET")
	router.HandleFunc("/api/laminates/{id}", h.metricsMiddleware("/api/laminates/{id}", perm(userdomain.PageInventory, h.UpdateLaminate))).Methods("PUT")
	router.HandleFunc("/api/laminates/{id}", h.metricsMiddleware("/api/laminates/{id}", perm(userdomain.PageInventory, h.DeleteLaminate))).Methods("DELETE")

	// Settings page owns the destructive reset
	router.HandleFunc("/api/laminates", h.metricsMiddleware("/api/laminates", perm(userdomain.PageSettings, h.ClearAllLaminates))).Methods("DELETE")

	// Transactions page
	router.HandleFunc("/api/transactions", h.metricsMiddleware("/api/transactions", perm(userdomain.PageTransactions, h.ListTransactions))).Methods("GET")
	router.HandleFunc("/api/transactions", h.metricsMiddleware("/api/transactions", perm(userdomain.PageTransactions, h.AddTransaction))).Methods("POST")
	router.HandleFunc("/api/transactions/bulk", h.metricsMiddleware("/api/transactions/bulk", perm(userdomain.PageTransactions, h.AddBulkTransactions))).Methods("POST")
	router.HandleFunc("/api/transactions/{id}", h.metricsMiddleware("/api/transactions/{id}", perm(userdomain.PageTransactions, h.UpdateTransaction))).Methods("PUT")
	router.HandleFunc("/api/transactions/{id}", h.metricsMiddleware("/api/transactions/{id}", perm(userdomain.PageTransactions, h.DeleteTransaction))).Methods("DELETE")

	// Dashboard page
	router.HandleFunc("/api/dashboard/stats", h.metricsMiddleware("/api/dashboard/stats", perm(userdomain.PageDashboard, h.GetStats))).Methods("GET")
	router.HandleFunc("/api/dashboard/low-stock", h.metricsMiddleware("/api/dashboard/low-stock", perm(userdomain.PageDashboard, h.GetLowStock))).Methods("GET")
	router.HandleFunc("/api/dashboard/top-selling", h.metricsMiddleware("/api/dashboard/top-selling", perm(userdomain.PageDashboard, h.GetTopSelling))).Methods("GET")

	// Reports page
	router.HandleFunc("/api/reports", h.metricsMiddleware("/api/reports", perm(userdomain.PageReports, h.GetReport))).Methods("GET")
	router.HandleFunc("/api/reports/export", h.metricsMiddleware("/api/reports/export", perm(userdomain.PageReports, h.ExportReport))).Methods("GET")
}

// RegisterHealthCheck registers health check endpoint
func (h *LedgerHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{Success: false, Error: "Database unavailable"})
			return
		}

		respondJSON(w, http.StatusOK, Response{Success: true, Message: "Ledger service is healthy"})
	}).Methods("GET")
}

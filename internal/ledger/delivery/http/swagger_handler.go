package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation for the laminate stock service
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	// Swagger UI
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// AddLaminate godoc
// @Summary Add new laminate
// @Description Register a new laminate sheet with zero starting stock
// @Tags Laminates
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{brand=string,catalog_number=string,finish=string} true "Laminate data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 403 {object} object{success=bool,error=string}
// @Router /api/laminates [post]
func (h *LedgerHandler) AddLaminateDoc() {}

// ListLaminates godoc
// @Summary List all laminates
// @Description Get all laminate sheets with their derived stock levels
// @Tags Laminates
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} object{success=bool,data=array}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/laminates [get]
func (h *LedgerHandler) ListLaminatesDoc() {}

// GetLaminate godoc
// @Summary Get laminate by ID
// @Tags Laminates
// @Security BearerAuth
// @Produce json
// @Param id path int true "Laminate ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/laminates/{id} [get]
func (h *LedgerHandler) GetLaminateDoc() {}

// UpdateLaminate godoc
// @Summary Update laminate details
// @Description Update brand, catalog number or finish. Stock is derived and cannot be set here.
// @Tags Laminates
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Laminate ID"
// @Param request body object{brand=string,catalog_number=string,finish=string} true "Fields to update"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/laminates/{id} [put]
func (h *LedgerHandler) UpdateLaminateDoc() {}

// DeleteLaminate godoc
// @Summary Delete laminate
// @Description Delete a laminate. Rejected while transactions still reference it.
// @Tags Laminates
// @Security BearerAuth
// @Produce json
// @Param id path int true "Laminate ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Failure 409 {object} object{success=bool,error=string}
// @Router /api/laminates/{id} [delete]
func (h *LedgerHandler) DeleteLaminateDoc() {}

// ClearAllLaminates godoc
// @Summary Clear all inventory data
// @Description Remove every transaction and laminate. Transactions go first so a failure cannot orphan them.
// @Tags Laminates
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,message=string}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/laminates [delete]
func (h *LedgerHandler) ClearAllLaminatesDoc() {}

// AddTransaction godoc
// @Summary Record a stock movement
// @Description Record a purchase or sale. The laminate's stock is re-derived from history afterwards.
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{kind=string,laminate_id=int,date=string,quantity=int,customer_name=string,remarks=string} true "Transaction data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/transactions [post]
func (h *LedgerHandler) AddTransactionDoc() {}

// AddBulkTransactions godoc
// @Summary Record a batch of stock movements
// @Description Record several movements of the same kind sharing one date and customer. The whole batch is validated before any line is written.
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{kind=string,date=string,customer_name=string,remarks=string,lines=array} true "Batch data"
// @Success 201 {object} object{success=bool,message=string,data=array}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/transactions/bulk [post]
func (h *LedgerHandler) AddBulkTransactionsDoc() {}

// ListTransactions godoc
// @Summary List transactions
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param laminate_id query int false "Filter by laminate"
// @Param kind query string false "purchase or sale"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Param customer query string false "Customer name contains"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} object{success=bool,data=array}
// @Router /api/transactions [get]
func (h *LedgerHandler) ListTransactionsDoc() {}

// UpdateTransaction godoc
// @Summary Update a transaction
// @Description Update a transaction's fields. Moving it to another laminate re-derives stock on both sides. Kind is immutable.
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Transaction ID"
// @Param request body object{laminate_id=int,date=string,quantity=int,customer_name=string,remarks=string} true "Fields to update"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/transactions/{id} [put]
func (h *LedgerHandler) UpdateTransactionDoc() {}

// DeleteTransaction godoc
// @Summary Delete a transaction
// @Description Delete a transaction and re-derive the affected laminate's stock
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/transactions/{id} [delete]
func (h *LedgerHandler) DeleteTransactionDoc() {}

// GetStats godoc
// @Summary Ledger statistics
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=object}
// @Router /api/dashboard/stats [get]
func (h *LedgerHandler) GetStatsDoc() {}

// GetLowStock godoc
// @Summary Laminates at or below the low stock threshold
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Param threshold query int false "Threshold (default: 2)"
// @Success 200 {object} object{success=bool,data=array}
// @Router /api/dashboard/low-stock [get]
func (h *LedgerHandler) GetLowStockDoc() {}

// GetTopSelling godoc
// @Summary Best selling laminates
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Limit (default: 5)"
// @Success 200 {object} object{success=bool,data=array}
// @Router /api/dashboard/top-selling [get]
func (h *LedgerHandler) GetTopSellingDoc() {}

// GetReport godoc
// @Summary Dated purchase or sales report
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param kind query string true "purchase or sale"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Param customer query string false "Customer name (sales only)"
// @Success 200 {object} object{success=bool,data=object}
// @Router /api/reports [get]
func (h *LedgerHandler) GetReportDoc() {}

// ExportReport godoc
// @Summary Export report as CSV
// @Tags Reports
// @Security BearerAuth
// @Produce text/csv
// @Param kind query string true "purchase or sale"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Param customer query string false "Customer name (sales only)"
// @Success 200 {string} string "CSV report"
// @Router /api/reports/export [get]
func (h *LedgerHandler) ExportReportDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{success=bool,message=string}
// @Failure 503 {object} object{success=bool,error=string}
// @Router /health [get]
func (h *LedgerHandler) HealthCheckDoc() {}

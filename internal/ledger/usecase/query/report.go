package query

import (
	"fmt"
	"time"

	"github.com/tair/laminate-stock/internal/ledger/domain"
)

// ReportQuery builds a dated sales or purchases report, optionally
// narrowed to one customer (sales only)
type ReportQuery struct {
	Kind         string // purchase or sale
	DateFrom     string
	DateTo       string
	CustomerName string
}

// ReportRow is one transaction with its laminate resolved for display
type ReportRow struct {
	Transaction domain.Transaction `json:"transaction"`
	Brand       string             `json:"brand"`
	Catalog     string             `json:"catalog_number"`
	Finish      string             `json:"finish"`
}

// Report is the assembled report with its quantity total
type Report struct {
	Kind          string      `json:"kind"`
	DateFrom      string      `json:"date_from"`
	DateTo        string      `json:"date_to"`
	Rows          []ReportRow `json:"rows"`
	TotalQuantity int         `json:"total_quantity"`
}

// ReportHandler handles report query
type ReportHandler struct {
	laminates    domain.LaminateRepository
	transactions domain.TransactionRepository
}

// NewReportHandler creates a new report handler
func NewReportHandler(laminates domain.LaminateRepository, transactions domain.TransactionRepository) *ReportHandler {
	return &ReportHandler{laminates: laminates, transactions: transactions}
}

// Handle executes the report query
func (h *ReportHandler) Handle(query ReportQuery) (*Report, error) {
	if !domain.ValidKind(query.Kind) {
		return nil, fmt.Errorf("report: %w", domain.ErrInvalidKind)
	}
	for _, date := range []string{query.DateFrom, query.DateTo} {
		if date == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
		}
	}
	if query.CustomerName != "" && query.Kind != domain.KindSale {
		return nil, fmt.Errorf("report: customer filter applies to sales only")
	}

	filter := domain.TransactionFilter{
		Kind:         query.Kind,
		DateFrom:     query.DateFrom,
		DateTo:       query.DateTo,
		CustomerName: query.CustomerName,
	}

	transactions, err := h.transactions.FindAll(filter, 10000, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	// Resolve laminate display fields once per distinct laminate
	resolved := make(map[uint]*domain.Laminate)

	report := &Report{
		Kind:     query.Kind,
		DateFrom: query.DateFrom,
		DateTo:   query.DateTo,
		Rows:     make([]ReportRow, 0, len(transactions)),
	}

	for _, transaction := range transactions {
		laminate, ok := resolved[transaction.LaminateID]
		if !ok {
			laminate, err = h.laminates.FindByID(transaction.LaminateID)
			if err != nil {
				laminate = &domain.Laminate{}
			}
			resolved[transaction.LaminateID] = laminate
		}

		report.Rows = append(report.Rows, ReportRow{
			Transaction: transaction,
			Brand:       laminate.Brand,
			Catalog:     laminate.CatalogNumber,
			Finish:      laminate.Finish,
		})
		report.TotalQuantity += transaction.Quantity
	}

	return report, nil
}

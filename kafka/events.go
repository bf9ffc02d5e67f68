package kafka

import "time"

// TransactionRecordedEvent is emitted after a transaction mutation
// (add, bulk add, update, delete) has been persisted
type TransactionRecordedEvent struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	TransactionID uint      `json:"transaction_id"`
	Kind          string    `json:"kind"`
	LaminateID    uint      `json:"laminate_id"`
	Quantity      int       `json:"quantity"`
	BatchRef      string    `json:"batch_ref,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// StockRecalculatedEvent is emitted after a laminate's stock has been
// re-derived from its transaction history
type StockRecalculatedEvent struct {
	EventID      string    `json:"event_id"`
	EventType    string    `json:"event_type"`
	LaminateID   uint      `json:"laminate_id"`
	Brand        string    `json:"brand"`
	Catalog      string    `json:"catalog_number"`
	CurrentStock int       `json:"current_stock"`
	LowStock     bool      `json:"low_stock"`
	Threshold    int       `json:"threshold"`
	Timestamp    time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeTransactionRecorded = "transaction.recorded"
	EventTypeStockRecalculated   = "stock.recalculated"
)

// Kafka topics
const (
	TopicTransactionRecorded = "transaction-recorded"
	TopicStockRecalculated   = "stock-recalculated"
)

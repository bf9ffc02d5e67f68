package domain

import "errors"

// Ledger error taxonomy. Usecase handlers wrap these with context via
// fmt.Errorf("...: %w", err) so callers can branch with errors.Is.
var (
	// ErrLaminateNotFound is returned when a laminate id does not resolve
	ErrLaminateNotFound = errors.New("laminate not found")

	// ErrTransactionNotFound is returned when a transaction id does not resolve
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrUnknownLaminate is returned when a transaction references a
	// laminate that does not exist
	ErrUnknownLaminate = errors.New("transaction references unknown laminate")

	// ErrInvalidQuantity is returned when a transaction quantity is below 1
	ErrInvalidQuantity = errors.New("quantity must be at least 1")

	// ErrInvalidKind is returned for a transaction kind other than purchase or sale
	ErrInvalidKind = errors.New("invalid transaction kind")

	// ErrHasTransactions is returned when deleting a laminate that still
	// has recorded transactions
	ErrHasTransactions = errors.New("laminate has existing transactions")
)

// PersistenceError wraps a failure from the backing store. The ledger
// never retries; the original error stays reachable through Unwrap.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return "persistence: " + e.Op + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/tair/laminate-stock/internal/ledger/domain"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "laminate not found",
			err:  fmt.Errorf("get laminate: %w", domain.ErrLaminateNotFound),
			want: http.StatusNotFound,
		},
		{
			name: "transaction not found",
			err:  fmt.Errorf("delete transaction: %w", domain.ErrTransactionNotFound),
			want: http.StatusNotFound,
		},
		{
			name: "delete guard conflict",
			err:  fmt.Errorf("delete laminate 3: %w", domain.ErrHasTransactions),
			want: http.StatusConflict,
		},
		{
			name: "unknown laminate reference",
			err:  fmt.Errorf("add transaction: %w", domain.ErrUnknownLaminate),
			want: http.StatusBadRequest,
		},
		{
			name: "invalid quantity",
			err:  fmt.Errorf("bulk line 2: %w", domain.ErrInvalidQuantity),
			want: http.StatusBadRequest,
		},
		{
			name: "invalid kind",
			err:  domain.ErrInvalidKind,
			want: http.StatusBadRequest,
		},
		{
			name: "persistence failure",
			err:  &domain.PersistenceError{Op: "create transaction", Err: errors.New("connection reset")},
			want: http.StatusInternalServerError,
		},
		{
			name: "wrapped persistence failure",
			err:  fmt.Errorf("bulk line 1: %w", &domain.PersistenceError{Op: "create transaction", Err: errors.New("connection reset")}),
			want: http.StatusInternalServerError,
		},
		{
			name: "plain validation error",
			err:  errors.New("brand is required"),
			want: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusForError(tt.err); got != tt.want {
				t.Errorf("statusForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

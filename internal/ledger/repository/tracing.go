package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tair/laminate-stock/internal/ledger/domain"
)

var tracer = otel.Tracer("ledger-repository")

// GormTransactionRepositoryWithTracing wraps GormTransactionRepository with tracing
type GormTransactionRepositoryWithTracing struct {
	*GormTransactionRepository
}

// NewGormTransactionRepositoryWithTracing creates a new repository with tracing
func NewGormTransactionRepositoryWithTracing(db *gorm.DB) *GormTransactionRepositoryWithTracing {
	return &GormTransactionRepositoryWithTracing{
		GormTransactionRepository: NewGormTransactionRepository(db),
	}
}

// CreateWithContext records the insert under a span
func (r *GormTransactionRepositoryWithTracing) CreateWithContext(ctx context.Context, transaction *domain.Transaction) error {
	_, span := tracer.Start(ctx, "repository.CreateTransaction",
		trace.WithAttributes(
			attribute.String("transaction.kind", transaction.Kind),
			attribute.Int("transaction.laminate_id", int(transaction.LaminateID)),
			attribute.Int("transaction.quantity", transaction.Quantity),
		),
	)
	defer span.End()

	err := r.GormTransactionRepository.Create(transaction)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("transaction.id", int(transaction.ID)))
	return nil
}

// NetQuantityWithContext records the stock re-derivation under a span
func (r *GormTransactionRepositoryWithTracing) NetQuantityWithContext(ctx context.Context, laminateID uint) (int, error) {
	_, span := tracer.Start(ctx, "repository.NetQuantity",
		trace.WithAttributes(
			attribute.Int("laminate.id", int(laminateID)),
		),
	)
	defer span.End()

	total, err := r.GormTransactionRepository.NetQuantity(laminateID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	span.SetAttributes(attribute.Int("laminate.net_quantity", total))
	return total, nil
}

// GormLaminateRepositoryWithTracing wraps GormLaminateRepository with tracing
type GormLaminateRepositoryWithTracing struct {
	*GormLaminateRepository
}

// NewGormLaminateRepositoryWithTracing creates a new repository with tracing
func NewGormLaminateRepositoryWithTracing(db *gorm.DB) *GormLaminateRepositoryWithTracing {
	return &GormLaminateRepositoryWithTracing{
		GormLaminateRepository: NewGormLaminateRepository(db),
	}
}

// FindByIDWithContext records the lookup under a span
func (r *GormLaminateRepositoryWithTracing) FindByIDWithContext(ctx context.Context, id uint) (*domain.Laminate, error) {
	_, span := tracer.Start(ctx, "repository.FindLaminateByID",
		trace.WithAttributes(
			attribute.Int("laminate.id", int(id)),
		),
	)
	defer span.End()

	laminate, err := r.GormLaminateRepository.FindByID(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return laminate, nil
}

// UpdateStockWithContext records the materialized stock write under a span
func (r *GormLaminateRepositoryWithTracing) UpdateStockWithContext(ctx context.Context, id uint, stock int) error {
	_, span := tracer.Start(ctx, "repository.UpdateStock",
		trace.WithAttributes(
			attribute.Int("laminate.id", int(id)),
			attribute.Int("laminate.stock", stock),
		),
	)
	defer span.End()

	err := r.GormLaminateRepository.UpdateStock(id, stock)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

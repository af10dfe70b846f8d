package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/waheedcycles/cycleshop-api/internal/domain/entity"
)

// ReceiptRepository defines the interface for receipt data operations.
// Receipt creation is split into header and items so the service layer
// can compensate when the second write fails.
type ReceiptRepository interface {
	// Create inserts the receipt header only (no items)
	Create(ctx context.Context, receipt *entity.Receipt) error
	// CreateItems inserts all line items for a receipt in one batch
	CreateItems(ctx context.Context, items []entity.ReceiptItem) error
	// Delete removes a receipt header (compensation for failed item writes)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)
	// GetWithItems retrieves a receipt with its line items preloaded
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)
	// List returns receipts with items preloaded, newest first
	List(ctx context.Context, params *ReceiptFilterParams) ([]entity.Receipt, error)
}

// ReceiptFilterParams contains filtering parameters for receipt queries.
// StartDate is inclusive, EndDate is exclusive.
type ReceiptFilterParams struct {
	StartDate *time.Time
	EndDate   *time.Time
	Search    string
}

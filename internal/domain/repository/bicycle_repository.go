package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/waheedcycles/cycleshop-api/internal/domain/entity"
	"github.com/waheedcycles/cycleshop-api/internal/domain/enum"
	"github.com/waheedcycles/cycleshop-api/pkg/pagination"
)

// BicycleRepository defines the interface for bicycle data operations
type BicycleRepository interface {
	Create(ctx context.Context, bicycle *entity.Bicycle) error
	CreateBatch(ctx context.Context, bicycles []entity.Bicycle) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Bicycle, error)
	Update(ctx context.Context, bicycle *entity.Bicycle) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error
	List(ctx context.Context, params *BicycleFilterParams) ([]entity.Bicycle, int64, error)
}

// BicycleFilterParams contains filtering parameters for bicycle queries
type BicycleFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Category   *enum.BikeCategory
	MinPrice   *int64 // In paise
	MaxPrice   *int64 // In paise
	SortBy     string
	SortOrder  string
}

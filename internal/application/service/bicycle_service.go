package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/waheedcycles/cycleshop-api/internal/domain/entity"
	"github.com/waheedcycles/cycleshop-api/internal/domain/enum"
	"github.com/waheedcycles/cycleshop-api/internal/domain/repository"
	"github.com/waheedcycles/cycleshop-api/pkg/apperror"
)

// BicycleService handles bicycle catalog operations
type BicycleService struct {
	bicycleRepo repository.BicycleRepository
}

// NewBicycleService creates a new bicycle service
func NewBicycleService(bicycleRepo repository.BicycleRepository) *BicycleService {
	return &BicycleService{bicycleRepo: bicycleRepo}
}

// CreateBicycleInput represents the input for creating a bicycle
type CreateBicycleInput struct {
	Name        string
	Category    enum.BikeCategory
	Price       decimal.Decimal // In rupees
	Description string
	Features    string
	ImageURL    *string
}

// CreateBicycle adds a new bicycle to the catalog
func (s *BicycleService) CreateBicycle(ctx context.Context, input *CreateBicycleInput) (*entity.Bicycle, error) {
	if !input.Category.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid bicycle category")
	}
	if input.Price.IsNegative() {
		return nil, apperror.NewBadRequestError("Price cannot be negative")
	}

	bicycle := &entity.Bicycle{
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
		Features:    input.Features,
		ImageURL:    input.ImageURL,
	}
	bicycle.SetPriceFromDecimal(input.Price)

	if err := s.bicycleRepo.Create(ctx, bicycle); err != nil {
		return nil, err
	}
	return bicycle, nil
}

// GetBicycle retrieves a bicycle by ID
func (s *BicycleService) GetBicycle(ctx context.Context, id uuid.UUID) (*entity.Bicycle, error) {
	bicycle, err := s.bicycleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bicycle == nil {
		return nil, apperror.NewNotFoundError("Bicycle")
	}
	return bicycle, nil
}

// UpdateBicycleInput represents the input for updating a bicycle.
// Nil fields are left unchanged.
type UpdateBicycleInput struct {
	Name        *string
	Category    *enum.BikeCategory
	Price       *decimal.Decimal
	Description *string
	Features    *string
	ImageURL    *string
}

// UpdateBicycle updates an existing bicycle
func (s *BicycleService) UpdateBicycle(ctx context.Context, id uuid.UUID, input *UpdateBicycleInput) (*entity.Bicycle, error) {
	bicycle, err := s.bicycleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bicycle == nil {
		return nil, apperror.NewNotFoundError("Bicycle")
	}

	if input.Name != nil {
		bicycle.Name = *input.Name
	}
	if input.Category != nil {
		if !input.Category.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid bicycle category")
		}
		bicycle.Category = *input.Category
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, apperror.NewBadRequestError("Price cannot be negative")
		}
		bicycle.SetPriceFromDecimal(*input.Price)
	}
	if input.Description != nil {
		bicycle.Description = *input.Description
	}
	if input.Features != nil {
		bicycle.Features = *input.Features
	}
	if input.ImageURL != nil {
		bicycle.ImageURL = input.ImageURL
	}

	if err := s.bicycleRepo.Update(ctx, bicycle); err != nil {
		return nil, err
	}
	return bicycle, nil
}

// DeleteBicycle removes a bicycle from the catalog
func (s *BicycleService) DeleteBicycle(ctx context.Context, id uuid.UUID) error {
	bicycle, err := s.bicycleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if bicycle == nil {
		return apperror.NewNotFoundError("Bicycle")
	}
	return s.bicycleRepo.Delete(ctx, id)
}

// ListBicycles returns bicycles matching the filter
func (s *BicycleService) ListBicycles(ctx context.Context, params *repository.BicycleFilterParams) ([]entity.Bicycle, int64, error) {
	return s.bicycleRepo.List(ctx, params)
}

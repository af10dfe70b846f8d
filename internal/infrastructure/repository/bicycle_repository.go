package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/waheedcycles/cycleshop-api/internal/domain/entity"
	domainRepo "github.com/waheedcycles/cycleshop-api/internal/domain/repository"
	"gorm.io/gorm"
)

type bicycleRepository struct {
	db *gorm.DB
}

// NewBicycleRepository creates a new bicycle repository
func NewBicycleRepository(db *gorm.DB) domainRepo.BicycleRepository {
	return &bicycleRepository{db: db}
}

func (r *bicycleRepository) Create(ctx context.Context, bicycle *entity.Bicycle) error {
	return r.db.WithContext(ctx).Create(bicycle).Error
}

func (r *bicycleRepository) CreateBatch(ctx context.Context, bicycles []entity.Bicycle) error {
	if len(bicycles) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&bicycles).Error
}

func (r *bicycleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bicycle, error) {
	var bicycle entity.Bicycle
	err := r.db.WithContext(ctx).First(&bicycle, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &bicycle, err
}

func (r *bicycleRepository) Update(ctx context.Context, bicycle *entity.Bicycle) error {
	return r.db.WithContext(ctx).Save(bicycle).Error
}

func (r *bicycleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Bicycle{}, "id = ?", id).Error
}

func (r *bicycleRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("1 = 1").
		Unscoped().
		Delete(&entity.Bicycle{}).Error
}

func (r *bicycleRepository) List(ctx context.Context, params *domainRepo.BicycleFilterParams) ([]entity.Bicycle, int64, error) {
	var bicycles []entity.Bicycle
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Bicycle{})

	if params.Search != "" {
		query = query.Where("name ILIKE ? OR description ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Category != nil {
		query = query.Where("category = ?", *params.Category)
	}

	if params.MinPrice != nil {
		query = query.Where("price >= ?", *params.MinPrice)
	}

	if params.MaxPrice != nil {
		query = query.Where("price <= ?", *params.MaxPrice)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Sorting, restricted to known columns
	sortBy := "created_at"
	switch params.SortBy {
	case "name", "price", "created_at":
		sortBy = params.SortBy
	}
	sortOrder := "DESC"
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order(sortBy + " " + sortOrder).
		Find(&bicycles).Error

	return bicycles, total, err
}

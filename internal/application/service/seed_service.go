package service

import (
	"context"

	"github.com/waheedcycles/cycleshop-api/internal/domain/entity"
	"github.com/waheedcycles/cycleshop-api/internal/domain/enum"
	"github.com/waheedcycles/cycleshop-api/internal/domain/repository"
)

// SeedService resets the catalog to a known demo state
type SeedService struct {
	bicycleRepo repository.BicycleRepository
}

// NewSeedService creates a new seed service
func NewSeedService(bicycleRepo repository.BicycleRepository) *SeedService {
	return &SeedService{bicycleRepo: bicycleRepo}
}

// demoBicycles returns the demo catalog. Prices are in paise.
func demoBicycles() []entity.Bicycle {
	return []entity.Bicycle{
		{
			Name:        "Mountain Blaze Pro",
			Category:    enum.CategoryMountain,
			Price:       129900,
			Description: "Professional-grade mountain bike with full suspension and advanced shock absorption for extreme terrain.",
			Features:    `Full Suspension, 29" Wheels, Hydraulic Disc Brakes, Carbon Frame, Lightweight`,
		},
		{
			Name:        "Urban Commuter X",
			Category:    enum.CategoryCity,
			Price:       59900,
			Description: "Perfect for city commuting with lightweight frame and comfortable riding position.",
			Features:    `26" Wheels, Aluminum Frame, 21 Speed, Fenders, Cargo Rack`,
		},
		{
			Name:        "Road Racer Elite",
			Category:    enum.CategoryRoad,
			Price:       159900,
			Description: "High-performance road bike designed for speed and efficiency on paved surfaces.",
			Features:    "Drop Bars, 700c Wheels, 16 Speed, Carbon Frame, Lightweight",
		},
		{
			Name:        "Kids Adventure",
			Category:    enum.CategoryKids,
			Price:       29900,
			Description: "Safe and fun bicycle designed specifically for children aged 6-12.",
			Features:    `Training Wheels, 20" Wheels, Single Speed, Steel Frame, Colorful`,
		},
		{
			Name:        "Hybrid Explorer",
			Category:    enum.CategoryCity,
			Price:       79900,
			Description: "Versatile bike suitable for both road and light trail riding.",
			Features:    `27.5" Wheels, Front Suspension, 21 Speed, Hybrid Tires, Comfortable Seat`,
		},
		{
			Name:        "BMX Stunt King",
			Category:    enum.CategoryKids,
			Price:       39900,
			Description: "Durable BMX bike perfect for tricks, stunts, and freestyle riding.",
			Features:    `20" Wheels, Steel Frame, Single Speed, Pegs Included, Trick Ready`,
		},
		{
			Name:        "Cruiser Vintage Style",
			Category:    enum.CategoryCity,
			Price:       54900,
			Description: "Classic vintage-inspired cruiser for relaxed, comfortable rides.",
			Features:    `26" Wheels, Comfortable Seat, 7 Speed, Fenders, Basket Compatible`,
		},
		{
			Name:        "Electric Thunder",
			Category:    enum.CategoryElectric,
			Price:       219900,
			Description: "Powerful electric bicycle with long-range battery for effortless commuting.",
			Features:    "Electric Motor, 50km Range, USB Charging, LCD Display, Pedal Assist",
		},
		{
			Name:        "Gravel Adventure",
			Category:    enum.CategoryMountain,
			Price:       89900,
			Description: "Perfect for gravel roads and mixed terrain adventures.",
			Features:    "Gravel Tires, Aluminum Frame, 18 Speed, Disc Brakes, Drop Bars",
		},
		{
			Name:        "Folding Compact",
			Category:    enum.CategoryCity,
			Price:       44900,
			Description: "Portable folding bike ideal for travel and multi-modal commuting.",
			Features:    `Folds Compact, 20" Wheels, 8 Speed, Lightweight, Carry Bag Included`,
		},
	}
}

// SeedDemoData replaces the entire catalog with the demo bicycles and
// returns the freshly inserted rows.
func (s *SeedService) SeedDemoData(ctx context.Context) ([]entity.Bicycle, error) {
	if err := s.bicycleRepo.DeleteAll(ctx); err != nil {
		return nil, err
	}

	bicycles := demoBicycles()
	if err := s.bicycleRepo.CreateBatch(ctx, bicycles); err != nil {
		return nil, err
	}

	return bicycles, nil
}

// ClearCatalog removes every bicycle from the catalog
func (s *SeedService) ClearCatalog(ctx context.Context) error {
	return s.bicycleRepo.DeleteAll(ctx)
}

package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/waheedcycles/cycleshop-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Bicycle represents a bicycle in the shop catalog
type Bicycle struct {
	ID          uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	Name        string            `gorm:"size:255;not null" json:"name"`
	Category    enum.BikeCategory `gorm:"size:50;not null;index" json:"category"`
	Price       int64             `gorm:"not null;default:0" json:"-"` // Stored in paise
	Description string            `gorm:"type:text" json:"description"`
	Features    string            `gorm:"type:text" json:"features"`
	ImageURL    *string           `gorm:"size:500" json:"image_url,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	DeletedAt   gorm.DeletedAt    `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new bicycle
func (b *Bicycle) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Bicycle model
func (Bicycle) TableName() string {
	return "bicycles"
}

// PriceDecimal returns the price in rupees
func (b *Bicycle) PriceDecimal() decimal.Decimal {
	return decimal.New(b.Price, -2)
}

// SetPriceFromDecimal sets the price from a rupee value
func (b *Bicycle) SetPriceFromDecimal(price decimal.Decimal) {
	b.Price = price.Round(2).Shift(2).IntPart()
}

// BicycleJSON is a helper struct for JSON marshaling with decimal prices
type BicycleJSON struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Category    enum.BikeCategory `json:"category"`
	Price       float64           `json:"price"` // Decimal value for JSON
	Description string            `json:"description"`
	Features    string            `json:"features"`
	ImageURL    *string           `json:"image_url,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// MarshalJSON converts Bicycle to JSON with decimal prices
func (b Bicycle) MarshalJSON() ([]byte, error) {
	price, _ := b.PriceDecimal().Float64()
	return json.Marshal(BicycleJSON{
		ID:          b.ID,
		Name:        b.Name,
		Category:    b.Category,
		Price:       price,
		Description: b.Description,
		Features:    b.Features,
		ImageURL:    b.ImageURL,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	})
}

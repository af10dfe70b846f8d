package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Receipt represents a finalized sale. Receipts are immutable once created:
// there is no update path and no soft delete.
type Receipt struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ReceiptNo      string    `gorm:"size:50;unique;not null" json:"receipt_no"`
	CustomerName   *string   `gorm:"size:255" json:"customer_name,omitempty"`
	CustomerPhone  *string   `gorm:"size:50" json:"customer_phone,omitempty"`
	Subtotal       int64     `gorm:"not null;default:0" json:"-"` // Stored in paise
	DiscountAmount int64     `gorm:"not null;default:0" json:"-"` // Stored in paise
	DiscountPct    float64   `gorm:"not null;default:0" json:"discount_pct"`
	GSTEnabled     bool      `gorm:"not null;default:false" json:"gst_enabled"`
	GSTRate        float64   `gorm:"not null;default:0" json:"gst_rate"`
	GSTAmount      int64     `gorm:"not null;default:0" json:"-"` // Stored in paise
	GrandTotal     int64     `gorm:"not null;default:0" json:"-"` // Stored in paise
	Notes          *string   `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`

	// Relationships
	Items []ReceiptItem `gorm:"foreignKey:ReceiptID;constraint:OnDelete:CASCADE" json:"items"`
}

// BeforeCreate generates a UUID before creating a new receipt
func (r *Receipt) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Receipt model
func (Receipt) TableName() string {
	return "receipts"
}

// TaxableAmount returns the amount GST was computed on, in paise
func (r *Receipt) TaxableAmount() int64 {
	return r.Subtotal - r.DiscountAmount
}

// CGST returns the central GST half of the tax, in paise
func (r *Receipt) CGST() int64 {
	return r.GSTAmount / 2
}

// SGST returns the state GST half of the tax, in paise.
// CGST + SGST always reconstructs GSTAmount exactly.
func (r *Receipt) SGST() int64 {
	return r.GSTAmount - r.CGST()
}

// ReceiptItem represents a single line on a receipt
type ReceiptItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ReceiptID uuid.UUID `gorm:"type:uuid;not null;index" json:"receipt_id"`
	ItemName  string    `gorm:"size:255;not null" json:"item_name"`
	UnitPrice int64     `gorm:"not null;default:0" json:"-"` // Stored in paise
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	Amount    int64     `gorm:"not null;default:0" json:"-"` // Stored in paise
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new receipt item
func (i *ReceiptItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ReceiptItem model
func (ReceiptItem) TableName() string {
	return "receipt_items"
}

func paiseToFloat(p int64) float64 {
	f, _ := decimal.New(p, -2).Float64()
	return f
}

// ReceiptJSON is a helper struct for JSON marshaling with decimal amounts
type ReceiptJSON struct {
	ID             uuid.UUID     `json:"id"`
	ReceiptNo      string        `json:"receipt_no"`
	CustomerName   *string       `json:"customer_name,omitempty"`
	CustomerPhone  *string       `json:"customer_phone,omitempty"`
	Subtotal       float64       `json:"subtotal"`
	DiscountAmount float64       `json:"discount_amount"`
	DiscountPct    float64       `json:"discount_pct"`
	TaxableAmount  float64       `json:"taxable_amount"`
	GSTEnabled     bool          `json:"gst_enabled"`
	GSTRate        float64       `json:"gst_rate"`
	GSTAmount      float64       `json:"gst_amount"`
	CGST           float64       `json:"cgst"`
	SGST           float64       `json:"sgst"`
	GrandTotal     float64       `json:"grand_total"`
	Notes          *string       `json:"notes,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	Items          []ReceiptItem `json:"items"`
}

// MarshalJSON converts Receipt to JSON with decimal amounts
func (r Receipt) MarshalJSON() ([]byte, error) {
	return json.Marshal(ReceiptJSON{
		ID:             r.ID,
		ReceiptNo:      r.ReceiptNo,
		CustomerName:   r.CustomerName,
		CustomerPhone:  r.CustomerPhone,
		Subtotal:       paiseToFloat(r.Subtotal),
		DiscountAmount: paiseToFloat(r.DiscountAmount),
		DiscountPct:    r.DiscountPct,
		TaxableAmount:  paiseToFloat(r.TaxableAmount()),
		GSTEnabled:     r.GSTEnabled,
		GSTRate:        r.GSTRate,
		GSTAmount:      paiseToFloat(r.GSTAmount),
		CGST:           paiseToFloat(r.CGST()),
		SGST:           paiseToFloat(r.SGST()),
		GrandTotal:     paiseToFloat(r.GrandTotal),
		Notes:          r.Notes,
		CreatedAt:      r.CreatedAt,
		Items:          r.Items,
	})
}

// ReceiptItemJSON is a helper struct for JSON marshaling with decimal amounts
type ReceiptItemJSON struct {
	ID        uuid.UUID `json:"id"`
	ReceiptID uuid.UUID `json:"receipt_id"`
	ItemName  string    `json:"item_name"`
	UnitPrice float64   `json:"unit_price"`
	Quantity  int       `json:"quantity"`
	Amount    float64   `json:"amount"`
}

// MarshalJSON converts ReceiptItem to JSON with decimal amounts
func (i ReceiptItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(ReceiptItemJSON{
		ID:        i.ID,
		ReceiptID: i.ReceiptID,
		ItemName:  i.ItemName,
		UnitPrice: paiseToFloat(i.UnitPrice),
		Quantity:  i.Quantity,
		Amount:    paiseToFloat(i.Amount),
	})
}

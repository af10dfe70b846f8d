package billing

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Billing errors returned by draft mutators
var (
	ErrNegativeUnitPrice = errors.New("unit price cannot be negative")
	ErrEmptyItemName     = errors.New("item name is required")
)

var (
	hundred = decimal.NewFromInt(100)
	two     = decimal.NewFromInt(2)
)

// LineItem is one product/price/quantity entry in a receipt draft.
type LineItem struct {
	ID        string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// Amount returns unit price times quantity for this line.
func (li LineItem) Amount() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Draft is the mutable cart state for one checkout session. Mutators clamp
// out-of-range input; nothing is persisted until the draft is turned into a
// receipt.
type Draft struct {
	Items           []LineItem
	CustomerName    string
	CustomerPhone   string
	DiscountEnabled bool
	DiscountPercent decimal.Decimal
	GSTEnabled      bool
	GSTRate         decimal.Decimal
	Notes           string
}

// AddItem appends a line item to the draft, merging quantities when an item
// with the same ID is already present. Negative prices are rejected at the
// point of entry and leave the draft untouched.
func (d *Draft) AddItem(item LineItem) error {
	if item.Name == "" {
		return ErrEmptyItemName
	}
	if item.UnitPrice.IsNegative() {
		return ErrNegativeUnitPrice
	}
	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	for i := range d.Items {
		if d.Items[i].ID != "" && d.Items[i].ID == item.ID {
			d.Items[i].Quantity += item.Quantity
			return nil
		}
	}
	d.Items = append(d.Items, item)
	return nil
}

// SetQuantity sets the quantity of the line with the given ID. Quantities are
// clamped to zero, and a zero quantity removes the line.
func (d *Draft) SetQuantity(id string, qty int) {
	if qty < 0 {
		qty = 0
	}
	for i := range d.Items {
		if d.Items[i].ID == id {
			if qty == 0 {
				d.Items = append(d.Items[:i], d.Items[i+1:]...)
			} else {
				d.Items[i].Quantity = qty
			}
			return
		}
	}
}

// SetDiscount toggles the discount and sets its percentage, clamped to [0,100].
func (d *Draft) SetDiscount(enabled bool, percent decimal.Decimal) {
	d.DiscountEnabled = enabled
	d.DiscountPercent = clampPercent(percent)
}

// SetGST toggles GST and sets its rate, clamped to [0,100].
func (d *Draft) SetGST(enabled bool, rate decimal.Decimal) {
	d.GSTEnabled = enabled
	d.GSTRate = clampPercent(rate)
}

func clampPercent(p decimal.Decimal) decimal.Decimal {
	if p.IsNegative() {
		return decimal.Zero
	}
	if p.GreaterThan(hundred) {
		return hundred
	}
	return p
}

// Totals is the monetary breakdown of a draft. Discount applies to the
// subtotal first; GST is computed on the post-discount taxable amount and
// split into two equal halves (CGST/SGST) whose sum reconstructs GSTAmount
// exactly.
type Totals struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxableAmount  decimal.Decimal
	GSTAmount      decimal.Decimal
	CGST           decimal.Decimal
	SGST           decimal.Decimal
	GrandTotal     decimal.Decimal
}

// Compute derives the totals for a draft. The order is fixed policy:
// discount before tax, never the reverse.
func Compute(d *Draft) Totals {
	subtotal := decimal.Zero
	for _, item := range d.Items {
		subtotal = subtotal.Add(item.Amount())
	}

	discount := decimal.Zero
	if d.DiscountEnabled {
		discount = subtotal.Mul(clampPercent(d.DiscountPercent)).Div(hundred)
	}

	taxable := subtotal.Sub(discount)

	gst := decimal.Zero
	if d.GSTEnabled {
		gst = taxable.Mul(clampPercent(d.GSTRate)).Div(hundred)
	}
	cgst := gst.Div(two)
	sgst := gst.Sub(cgst)

	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		TaxableAmount:  taxable,
		GSTAmount:      gst,
		CGST:           cgst,
		SGST:           sgst,
		GrandTotal:     taxable.Add(gst),
	}
}

// ToPaise converts a rupee amount to integer paise, rounding to the nearest
// paisa. Persisted monetary values are always stored in paise.
func ToPaise(d decimal.Decimal) int64 {
	return d.Round(2).Shift(2).IntPart()
}

// FromPaise converts integer paise back to a rupee amount.
func FromPaise(p int64) decimal.Decimal {
	return decimal.New(p, -2)
}

package billing

import (
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newDraft(t *testing.T) *Draft {
	t.Helper()
	draft := &Draft{}
	require.NoError(t, draft.AddItem(LineItem{ID: "b1", Name: "Mountain Blaze Pro", UnitPrice: d("1000"), Quantity: 2}))
	require.NoError(t, draft.AddItem(LineItem{ID: "b2", Name: "Kids Adventure", UnitPrice: d("500"), Quantity: 1}))
	return draft
}

func TestComputeDiscountBeforeGST(t *testing.T) {
	draft := newDraft(t)
	draft.SetDiscount(true, d("10"))
	draft.SetGST(true, d("18"))

	totals := Compute(draft)

	assert.True(t, totals.Subtotal.Equal(d("2500")), "subtotal: %s", totals.Subtotal)
	assert.True(t, totals.DiscountAmount.Equal(d("250")), "discount: %s", totals.DiscountAmount)
	assert.True(t, totals.TaxableAmount.Equal(d("2250")), "taxable: %s", totals.TaxableAmount)
	assert.True(t, totals.GSTAmount.Equal(d("405")), "gst: %s", totals.GSTAmount)
	assert.True(t, totals.CGST.Equal(d("202.5")), "cgst: %s", totals.CGST)
	assert.True(t, totals.SGST.Equal(d("202.5")), "sgst: %s", totals.SGST)
	assert.True(t, totals.GrandTotal.Equal(d("2655")), "grand total: %s", totals.GrandTotal)
}

func TestComputeWithoutDiscount(t *testing.T) {
	draft := newDraft(t)
	draft.SetGST(true, d("18"))

	totals := Compute(draft)

	assert.True(t, totals.DiscountAmount.IsZero())
	assert.True(t, totals.TaxableAmount.Equal(d("2500")))
	assert.True(t, totals.GSTAmount.Equal(d("450")))
	assert.True(t, totals.GrandTotal.Equal(d("2950")))
}

func TestComputeEmptyDraft(t *testing.T) {
	totals := Compute(&Draft{})

	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.GrandTotal.IsZero())
}

func TestComputeFullDiscount(t *testing.T) {
	draft := newDraft(t)
	draft.SetDiscount(true, d("100"))
	draft.SetGST(true, d("18"))

	totals := Compute(draft)

	assert.True(t, totals.TaxableAmount.IsZero())
	assert.True(t, totals.GSTAmount.IsZero())
	assert.True(t, totals.GrandTotal.IsZero())
}

func TestComputeDisabledTogglesIgnoreRates(t *testing.T) {
	draft := newDraft(t)
	draft.SetDiscount(false, d("50"))
	draft.SetGST(false, d("18"))

	totals := Compute(draft)

	assert.True(t, totals.DiscountAmount.IsZero())
	assert.True(t, totals.GSTAmount.IsZero())
	assert.True(t, totals.GrandTotal.Equal(totals.Subtotal))
}

func TestDiscountAppliesBeforeTaxNotAfter(t *testing.T) {
	draft := newDraft(t)
	draft.SetDiscount(true, d("10"))
	draft.SetGST(true, d("18"))

	totals := Compute(draft)

	// GST is charged on the discounted amount, not the full subtotal.
	// Taxing the undiscounted 2500 would give 2250 + 450 = 2700.
	taxOnFullSubtotal := d("2500").Mul(d("0.9")).Add(d("2500").Mul(d("0.18")))
	assert.True(t, taxOnFullSubtotal.Equal(d("2700")))
	assert.False(t, totals.GrandTotal.Equal(taxOnFullSubtotal))
	assert.True(t, totals.GrandTotal.Equal(d("2655")))
	assert.True(t, totals.GSTAmount.Equal(d("405")))
}

func TestGSTSplitReconstructsExactly(t *testing.T) {
	draft := &Draft{}
	require.NoError(t, draft.AddItem(LineItem{ID: "x", Name: "Odd", UnitPrice: d("33.33"), Quantity: 1}))
	draft.SetGST(true, d("18"))

	totals := Compute(draft)

	assert.True(t, totals.CGST.Add(totals.SGST).Equal(totals.GSTAmount))
}

func TestAddItemMergesSameID(t *testing.T) {
	draft := &Draft{}
	require.NoError(t, draft.AddItem(LineItem{ID: "b1", Name: "Bike", UnitPrice: d("100"), Quantity: 1}))
	require.NoError(t, draft.AddItem(LineItem{ID: "b1", Name: "Bike", UnitPrice: d("100"), Quantity: 2}))

	require.Len(t, draft.Items, 1)
	assert.Equal(t, 3, draft.Items[0].Quantity)
}

func TestAddItemRejectsNegativePrice(t *testing.T) {
	draft := &Draft{}
	err := draft.AddItem(LineItem{ID: "b1", Name: "Bike", UnitPrice: d("-1"), Quantity: 1})

	assert.ErrorIs(t, err, ErrNegativeUnitPrice)
	assert.Empty(t, draft.Items)
}

func TestAddItemRejectsEmptyName(t *testing.T) {
	draft := &Draft{}
	err := draft.AddItem(LineItem{ID: "b1", UnitPrice: d("1"), Quantity: 1})

	assert.ErrorIs(t, err, ErrEmptyItemName)
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	draft := &Draft{}
	require.NoError(t, draft.AddItem(LineItem{ID: "b1", Name: "Bike", UnitPrice: d("100"), Quantity: 0}))

	assert.Equal(t, 1, draft.Items[0].Quantity)
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	draft := newDraft(t)
	draft.SetQuantity("b1", 0)

	require.Len(t, draft.Items, 1)
	assert.Equal(t, "b2", draft.Items[0].ID)
}

func TestSetQuantityClampsNegative(t *testing.T) {
	draft := newDraft(t)
	draft.SetQuantity("b1", -5)

	require.Len(t, draft.Items, 1)
}

func TestPercentClamping(t *testing.T) {
	draft := newDraft(t)
	draft.SetDiscount(true, d("150"))
	assert.True(t, draft.DiscountPercent.Equal(d("100")))

	draft.SetGST(true, d("-5"))
	assert.True(t, draft.GSTRate.IsZero())
}

func TestToPaiseRounds(t *testing.T) {
	assert.Equal(t, int64(265500), ToPaise(d("2655")))
	assert.Equal(t, int64(20250), ToPaise(d("202.5")))
	assert.Equal(t, int64(3333), ToPaise(d("33.333")))
	assert.Equal(t, int64(0), ToPaise(decimal.Zero))
}

func TestFromPaiseRoundTrips(t *testing.T) {
	assert.True(t, FromPaise(20250).Equal(d("202.5")))
	assert.True(t, FromPaise(ToPaise(d("129.99"))).Equal(d("129.99")))
}

func TestReceiptNumberFormat(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
	no := ReceiptNumber("WCS", now)

	assert.Regexp(t, regexp.MustCompile(`^WCS-\d{8}-\d{4}$`), no)
	assert.Contains(t, no, "-20250314-")
}

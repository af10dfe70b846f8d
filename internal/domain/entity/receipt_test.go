package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGSTSplitReconstructsExactly(t *testing.T) {
	for _, gst := range []int64{0, 1, 333, 40500, 40501} {
		r := Receipt{GSTAmount: gst}
		assert.Equal(t, gst, r.CGST()+r.SGST(), "GST %d paise", gst)
	}
}

func TestTaxableAmountIsSubtotalLessDiscount(t *testing.T) {
	r := Receipt{Subtotal: 250000, DiscountAmount: 25000}
	assert.Equal(t, int64(225000), r.TaxableAmount())
}

func TestReceiptJSONEmitsRupees(t *testing.T) {
	r := Receipt{
		ReceiptNo:      "WCS-20250314-0001",
		Subtotal:       250000,
		DiscountAmount: 25000,
		GSTAmount:      40500,
		GrandTotal:     265500,
	}

	data, err := json.Marshal(&r)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))

	assert.InDelta(t, 2500.0, out["subtotal"], 0.001)
	assert.InDelta(t, 2655.0, out["grand_total"], 0.001)
	assert.InDelta(t, 2250.0, out["taxable_amount"], 0.001)
	assert.InDelta(t, 202.5, out["cgst"], 0.001)
	assert.InDelta(t, 202.5, out["sgst"], 0.001)
}

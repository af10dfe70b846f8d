package whatsapp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleMessage() ReceiptMessage {
	return ReceiptMessage{
		Shop: ShopInfo{
			Name:    "WAHEED Cycle Shop",
			Address: "Main Road, Near Bus Stand",
			Phone:   "+91 98765 43210",
		},
		ReceiptNo:  "WCS-20250314-0042",
		Date:       "2025-03-14",
		Customer:   "Asha",
		Items:      []ItemLine{{Label: "Mountain Blaze Pro x2", Amount: "₹2,598"}},
		Subtotal:   "₹2,598",
		Discount:   "-₹259.80 (10%)",
		GST:        "₹420.88 (18%)",
		GrandTotal: "₹2,759.08",
	}
}

func TestTextIncludesAllSections(t *testing.T) {
	text := sampleMessage().Text()

	assert.Contains(t, text, "*WAHEED Cycle Shop*")
	assert.Contains(t, text, "📍 Main Road, Near Bus Stand")
	assert.Contains(t, text, "*Receipt No:* WCS-20250314-0042")
	assert.Contains(t, text, "*Customer:* Asha")
	assert.Contains(t, text, "• Mountain Blaze Pro x2 = ₹2,598")
	assert.Contains(t, text, "*Discount:* -₹259.80 (10%)")
	assert.Contains(t, text, "*GST:* ₹420.88 (18%)")
	assert.Contains(t, text, "*Grand Total:* ₹2,759.08")
	assert.Contains(t, text, "🚴")
}

func TestTextHidesOptionalLines(t *testing.T) {
	msg := sampleMessage()
	msg.Customer = ""
	msg.Discount = ""
	msg.GST = ""

	text := msg.Text()

	assert.NotContains(t, text, "*Customer:*")
	assert.NotContains(t, text, "*Discount:*")
	assert.NotContains(t, text, "*GST:*")
}

func TestLinkWithPhone(t *testing.T) {
	link := Link("91", "+91 98765-43210", "hello world")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/919876543210?text="), link)
	assert.Contains(t, link, "hello%20world")
	assert.NotContains(t, link, "+")
}

func TestLinkPrefixesLocalNumber(t *testing.T) {
	link := Link("91", "98765 43210", "hi")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/919876543210?text="), link)
}

func TestLinkKeepsLocalNumberStartingWithCountryCode(t *testing.T) {
	// A ten-digit local number that happens to start with 91 still gets
	// the country code prepended.
	link := Link("91", "9198765432", "hi")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/919198765432?text="), link)
}

func TestLinkWithoutPhone(t *testing.T) {
	link := Link("91", "", "hi")

	assert.Equal(t, "https://wa.me/?text=hi", link)
}

func TestLinkEncodesMessageText(t *testing.T) {
	link := Link("91", "9876543210", "*Total:* ₹100 & more")

	assert.NotContains(t, link, " ")
	assert.NotContains(t, link, "&")
	assert.Contains(t, link, "%26")
}

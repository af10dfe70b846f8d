// Package whatsapp composes receipt share messages and wa.me deep links.
// This is pure URL construction; no delivery confirmation exists or is
// tracked.
package whatsapp

import (
	"net/url"
	"strings"
)

const baseURL = "https://wa.me/"

var divider = strings.Repeat("━", 16)

// ShopInfo is the business header placed at the top of a share message.
type ShopInfo struct {
	Name    string
	Address string
	Phone   string
}

// ItemLine is one pre-formatted item row ("Mountain Blaze Pro x2" / "₹2,598").
type ItemLine struct {
	Label  string
	Amount string
}

// ReceiptMessage carries the already-formatted values of a receipt. The
// builder never recomputes totals; callers pass exactly what was persisted.
type ReceiptMessage struct {
	Shop       ShopInfo
	ReceiptNo  string
	Date       string
	Customer   string
	Items      []ItemLine
	Subtotal   string
	Discount   string // empty hides the line, e.g. "-₹250 (10%)"
	GST        string // empty hides the line, e.g. "₹405 (18%)"
	GrandTotal string
}

// Text renders the plain-text message body.
func (m ReceiptMessage) Text() string {
	var b strings.Builder

	b.WriteString("*" + m.Shop.Name + "*\n")
	if m.Shop.Address != "" {
		b.WriteString("📍 " + m.Shop.Address + "\n")
	}
	if m.Shop.Phone != "" {
		b.WriteString("📞 " + m.Shop.Phone + "\n")
	}
	b.WriteString(divider + "\n")
	b.WriteString("*Receipt No:* " + m.ReceiptNo + "\n")
	b.WriteString("*Date:* " + m.Date + "\n")
	if m.Customer != "" {
		b.WriteString("*Customer:* " + m.Customer + "\n")
	}
	b.WriteString(divider + "\n\n*Items:*\n")

	for _, item := range m.Items {
		b.WriteString("• " + item.Label + " = " + item.Amount + "\n")
	}

	b.WriteString("\n" + divider + "\n")
	b.WriteString("*Subtotal:* " + m.Subtotal + "\n")
	if m.Discount != "" {
		b.WriteString("*Discount:* " + m.Discount + "\n")
	}
	if m.GST != "" {
		b.WriteString("*GST:* " + m.GST + "\n")
	}
	b.WriteString(divider + "\n")
	b.WriteString("*Grand Total:* " + m.GrandTotal + "\n")
	b.WriteString(divider + "\n\n")
	b.WriteString("_Thank you for shopping with us!_ 🚴")

	return b.String()
}

// Link builds the wa.me deep link for the message. The phone number is
// stripped to digits; local numbers get the country code prepended while
// numbers stored in international form keep it as-is. When no phone is
// known the phoneless share form is returned.
func Link(countryCode, phone, text string) string {
	encoded := encode(text)
	digits := stripNonDigits(phone)
	if digits == "" {
		return baseURL + "?text=" + encoded
	}
	// Ten digits or fewer is a local number; longer numbers starting with
	// the country code already carry it.
	if len(digits) <= 10 || !strings.HasPrefix(digits, countryCode) {
		digits = countryCode + digits
	}
	return baseURL + digits + "?text=" + encoded
}

// encode percent-encodes text for a query value, using %20 for spaces.
func encode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/waheedcycles/cycleshop-api/internal/config"
	"github.com/waheedcycles/cycleshop-api/internal/domain/entity"
	"github.com/waheedcycles/cycleshop-api/internal/domain/repository"
	"github.com/waheedcycles/cycleshop-api/pkg/printer"
)

// PrinterService handles receipt formatting, thermal printing and the
// printable HTML rendering. All output reproduces stored amounts exactly;
// nothing here recomputes totals.
type PrinterService struct {
	printer     printer.Printer
	receiptRepo repository.ReceiptRepository
	shop        config.ShopConfig
	printerType string
}

// NewPrinterService creates a new printer service
func NewPrinterService(
	p printer.Printer,
	receiptRepo repository.ReceiptRepository,
	shop config.ShopConfig,
	printerType string,
) *PrinterService {
	return &PrinterService{
		printer:     p,
		receiptRepo: receiptRepo,
		shop:        shop,
		printerType: printerType,
	}
}

// PrinterStatus returns the current printer status information
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// PrintReceipt fetches a receipt and sends it to the thermal printer
func (s *PrinterService) PrintReceipt(ctx context.Context, id uuid.UUID) error {
	receipt, err := s.getReceipt(ctx, id)
	if err != nil {
		return err
	}

	data := s.FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (receipt %s): %v", id, err)
		return fmt.Errorf("failed to print receipt: %w", err)
	}
	return nil
}

func (s *PrinterService) getReceipt(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	receipt, err := s.receiptRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, fmt.Errorf("receipt %s not found", id)
	}
	return receipt, nil
}

// FormatReceipt converts a receipt into ESC/POS bytes
func (s *PrinterService) FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(32) // 58mm paper = 32 chars

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(s.shop.Name).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if s.shop.Address != "" {
		doc.Text(s.shop.Address)
	}
	if s.shop.Phone != "" {
		doc.Text(s.shop.Phone)
	}
	if s.shop.GSTIN != "" {
		doc.TextF("GSTIN: %s", s.shop.GSTIN)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	doc.KeyValue("Receipt:", r.ReceiptNo).
		KeyValue("Date:", r.CreatedAt.UTC().Add(time.Duration(s.shop.TimezoneOffsetMinutes)*time.Minute).Format("2006-01-02 15:04"))

	if r.CustomerName != nil {
		doc.KeyValue("Customer:", *r.CustomerName)
	}
	if r.CustomerPhone != nil {
		doc.KeyValue("Phone:", *r.CustomerPhone)
	}

	doc.Separator('-')

	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.ItemName, paiseString(item.Amount))
		if item.Quantity > 1 {
			doc.TextF("  @ %s each", paiseString(item.UnitPrice))
		}
	}

	doc.Separator('-')

	doc.KeyValue("Subtotal:", paiseString(r.Subtotal))
	if r.DiscountAmount > 0 {
		doc.KeyValue(fmt.Sprintf("Discount %g%%:", r.DiscountPct), "-"+paiseString(r.DiscountAmount))
	}
	if r.GSTEnabled && r.GSTAmount > 0 {
		doc.KeyValue(fmt.Sprintf("CGST %g%%:", r.GSTRate/2), paiseString(r.CGST())).
			KeyValue(fmt.Sprintf("SGST %g%%:", r.GSTRate/2), paiseString(r.SGST()))
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", paiseString(r.GrandTotal)).
		SetBold(false)

	doc.Separator('-')

	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you for shopping with us!").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}

var receiptTemplate = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Receipt {{.ReceiptNo}}</title>
<style>
body { font-family: 'Courier New', monospace; max-width: 420px; margin: 0 auto; padding: 16px; }
.header { text-align: center; border-bottom: 2px dashed #000; padding-bottom: 8px; }
.header h1 { margin: 0; font-size: 20px; }
.meta { margin: 12px 0; }
table { width: 100%; border-collapse: collapse; }
th, td { text-align: left; padding: 4px 0; }
td.amount, th.amount { text-align: right; }
.totals { border-top: 2px dashed #000; margin-top: 8px; padding-top: 8px; }
.totals div { display: flex; justify-content: space-between; }
.grand { font-weight: bold; font-size: 16px; border-top: 1px solid #000; margin-top: 4px; padding-top: 4px; }
.footer { text-align: center; margin-top: 16px; border-top: 2px dashed #000; padding-top: 8px; }
@media print { body { padding: 0; } }
</style>
</head>
<body>
<div class="header">
<h1>{{.ShopName}}</h1>
{{if .ShopAddress}}<div>{{.ShopAddress}}</div>{{end}}
{{if .ShopPhone}}<div>{{.ShopPhone}}</div>{{end}}
{{if .GSTIN}}<div>GSTIN: {{.GSTIN}}</div>{{end}}
</div>
<div class="meta">
<div><strong>Receipt No:</strong> {{.ReceiptNo}}</div>
<div><strong>Date:</strong> {{.Date}}</div>
{{if .CustomerName}}<div><strong>Customer:</strong> {{.CustomerName}}</div>{{end}}
{{if .CustomerPhone}}<div><strong>Phone:</strong> {{.CustomerPhone}}</div>{{end}}
</div>
<table>
<tr><th>Item</th><th>Qty</th><th class="amount">Amount</th></tr>
{{range .Items}}<tr><td>{{.Name}}</td><td>{{.Quantity}}</td><td class="amount">{{.Amount}}</td></tr>
{{end}}</table>
<div class="totals">
<div><span>Subtotal</span><span>{{.Subtotal}}</span></div>
{{if .Discount}}<div><span>Discount ({{.DiscountPct}}%)</span><span>-{{.Discount}}</span></div>{{end}}
{{if .ShowGST}}<div><span>CGST ({{.HalfRate}}%)</span><span>{{.CGST}}</span></div>
<div><span>SGST ({{.HalfRate}}%)</span><span>{{.SGST}}</span></div>{{end}}
<div class="grand"><span>Grand Total</span><span>{{.GrandTotal}}</span></div>
</div>
{{if .Notes}}<div class="meta"><strong>Notes:</strong> {{.Notes}}</div>{{end}}
<div class="footer">Thank you for shopping with us!</div>
<script>window.onload = function() { window.print(); };</script>
</body>
</html>
`))

type htmlItem struct {
	Name     string
	Quantity int
	Amount   string
}

type htmlReceipt struct {
	ShopName      string
	ShopAddress   string
	ShopPhone     string
	GSTIN         string
	ReceiptNo     string
	Date          string
	CustomerName  string
	CustomerPhone string
	Items         []htmlItem
	Subtotal      string
	Discount      string
	DiscountPct   float64
	ShowGST       bool
	HalfRate      float64
	CGST          string
	SGST          string
	GrandTotal    string
	Notes         string
}

// RenderReceiptHTML produces the printable HTML document for a receipt
func (s *PrinterService) RenderReceiptHTML(ctx context.Context, id uuid.UUID) ([]byte, error) {
	r, err := s.getReceipt(ctx, id)
	if err != nil {
		return nil, err
	}

	data := htmlReceipt{
		ShopName:    s.shop.Name,
		ShopAddress: s.shop.Address,
		ShopPhone:   s.shop.Phone,
		GSTIN:       s.shop.GSTIN,
		ReceiptNo:   r.ReceiptNo,
		Date:        r.CreatedAt.UTC().Add(time.Duration(s.shop.TimezoneOffsetMinutes) * time.Minute).Format("2006-01-02 15:04"),
		Subtotal:    paiseString(r.Subtotal),
		DiscountPct: r.DiscountPct,
		GrandTotal:  paiseString(r.GrandTotal),
	}
	if r.CustomerName != nil {
		data.CustomerName = *r.CustomerName
	}
	if r.CustomerPhone != nil {
		data.CustomerPhone = *r.CustomerPhone
	}
	if r.Notes != nil {
		data.Notes = *r.Notes
	}
	if r.DiscountAmount > 0 {
		data.Discount = paiseString(r.DiscountAmount)
	}
	if r.GSTEnabled && r.GSTAmount > 0 {
		data.ShowGST = true
		data.HalfRate = r.GSTRate / 2
		data.CGST = paiseString(r.CGST())
		data.SGST = paiseString(r.SGST())
	}
	for _, item := range r.Items {
		data.Items = append(data.Items, htmlItem{
			Name:     item.ItemName,
			Quantity: item.Quantity,
			Amount:   paiseString(item.Amount),
		})
	}

	var buf bytes.Buffer
	if err := receiptTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render receipt: %w", err)
	}
	return buf.Bytes(), nil
}

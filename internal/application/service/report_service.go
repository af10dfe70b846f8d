package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/waheedcycles/cycleshop-api/internal/config"
	"github.com/waheedcycles/cycleshop-api/internal/domain/entity"
	"github.com/waheedcycles/cycleshop-api/internal/domain/repository"
	"github.com/waheedcycles/cycleshop-api/pkg/billing"
	"github.com/waheedcycles/cycleshop-api/pkg/period"
	"github.com/xuri/excelize/v2"
)

// ReportService exports sales data as downloadable files
type ReportService struct {
	receiptRepo repository.ReceiptRepository
	resolver    *period.Resolver
	now         func() time.Time
}

// NewReportService creates a new report service
func NewReportService(receiptRepo repository.ReceiptRepository, shop config.ShopConfig) *ReportService {
	return &ReportService{
		receiptRepo: receiptRepo,
		resolver:    period.NewResolver(shop.TimezoneOffsetMinutes),
		now:         time.Now,
	}
}

// ExportFile is a generated report ready to stream to the client
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

var reportHeader = []string{
	"Receipt No", "Date", "Customer Name", "Customer Phone",
	"Subtotal", "Discount %", "Discount Amount", "GST Rate", "GST Amount",
	"Grand Total", "Notes",
}

// ExportCSV exports all receipts in the period as CSV. Every field is
// quoted, with embedded quotes doubled.
func (s *ReportService) ExportCSV(ctx context.Context, kind period.Kind, customStart, customEnd string) (*ExportFile, error) {
	receipts, err := s.loadReceipts(ctx, kind, customStart, customEnd)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writeCSVRow(&buf, reportHeader)
	for _, r := range receipts {
		writeCSVRow(&buf, s.reportRow(&r))
	}

	return &ExportFile{
		Name:        s.fileName(kind, "csv"),
		ContentType: "text/csv",
		Data:        buf.Bytes(),
	}, nil
}

// ExportXLSX exports all receipts in the period as an Excel workbook
func (s *ReportService) ExportXLSX(ctx context.Context, kind period.Kind, customStart, customEnd string) (*ExportFile, error) {
	receipts, err := s.loadReceipts(ctx, kind, customStart, customEnd)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sales Report"
	f.SetSheetName("Sheet1", sheet)

	for col, title := range reportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, title)
	}
	for row, r := range receipts {
		for col, value := range s.reportRow(&r) {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return &ExportFile{
		Name:        s.fileName(kind, "xlsx"),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        buf.Bytes(),
	}, nil
}

func (s *ReportService) loadReceipts(ctx context.Context, kind period.Kind, customStart, customEnd string) ([]entity.Receipt, error) {
	rng := s.resolver.Resolve(kind, s.now(), customStart, customEnd)
	return s.receiptRepo.List(ctx, &repository.ReceiptFilterParams{
		StartDate: &rng.Start,
		EndDate:   &rng.End,
	})
}

func (s *ReportService) fileName(kind period.Kind, ext string) string {
	return fmt.Sprintf("sales_report_%s_%s.%s", kind, s.resolver.LocalDate(s.now()), ext)
}

func (s *ReportService) reportRow(r *entity.Receipt) []string {
	return []string{
		r.ReceiptNo,
		s.resolver.LocalDate(r.CreatedAt),
		deref(r.CustomerName),
		deref(r.CustomerPhone),
		paiseString(r.Subtotal),
		fmt.Sprintf("%g", r.DiscountPct),
		paiseString(r.DiscountAmount),
		fmt.Sprintf("%g", r.GSTRate),
		paiseString(r.GSTAmount),
		paiseString(r.GrandTotal),
		deref(r.Notes),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func paiseString(p int64) string {
	return billing.FromPaise(p).StringFixed(2)
}

// writeCSVRow writes one record with every field quoted. encoding/csv only
// quotes when it must, and the export format quotes unconditionally.
func writeCSVRow(buf *bytes.Buffer, fields []string) {
	for i, field := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strings.ReplaceAll(field, `"`, `""`))
		buf.WriteByte('"')
	}
	buf.WriteString("\r\n")
}

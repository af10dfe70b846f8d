package service

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waheedcycles/cycleshop-api/internal/domain/entity"
	"github.com/waheedcycles/cycleshop-api/pkg/period"
	"github.com/xuri/excelize/v2"
)

func newReportService(repo *fakeReceiptRepo, now time.Time) *ReportService {
	svc := NewReportService(repo, testShopConfig())
	svc.now = func() time.Time { return now }
	return svc
}

func seedReceipt(repo *fakeReceiptRepo, r entity.Receipt) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	repo.headers[r.ID] = &r
	repo.numbers[r.ReceiptNo] = true
}

func TestExportCSVQuotesEveryField(t *testing.T) {
	repo := newFakeReceiptRepo()
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	seedReceipt(repo, entity.Receipt{
		ReceiptNo:      "WCS-20250314-0001",
		CustomerName:   str(`Asha "AK" Kumar`),
		Subtotal:       250000,
		DiscountPct:    10,
		DiscountAmount: 25000,
		GSTRate:        18,
		GSTAmount:      40500,
		GrandTotal:     265500,
		CreatedAt:      now,
	})
	svc := newReportService(repo, now)

	file, err := svc.ExportCSV(context.Background(), period.Today, "", "")

	require.NoError(t, err)
	assert.Equal(t, "sales_report_today_2025-03-14.csv", file.Name)
	assert.Equal(t, "text/csv", file.ContentType)

	lines := strings.Split(string(file.Data), "\r\n")
	require.Len(t, lines, 3) // header, one record, trailing empty
	assert.Equal(t, `"Receipt No","Date","Customer Name","Customer Phone","Subtotal","Discount %","Discount Amount","GST Rate","GST Amount","Grand Total","Notes"`, lines[0])
	assert.Equal(t, `"WCS-20250314-0001","2025-03-14","Asha ""AK"" Kumar","","2500.00","10","250.00","18","405.00","2655.00",""`, lines[1])
	assert.Empty(t, lines[2])
}

func TestExportCSVEmptyPeriodHasHeaderOnly(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	svc := newReportService(newFakeReceiptRepo(), now)

	file, err := svc.ExportCSV(context.Background(), period.Today, "", "")

	require.NoError(t, err)
	assert.Equal(t, `"Receipt No","Date","Customer Name","Customer Phone","Subtotal","Discount %","Discount Amount","GST Rate","GST Amount","Grand Total","Notes"`+"\r\n", string(file.Data))
}

func TestExportXLSXProducesWorkbook(t *testing.T) {
	repo := newFakeReceiptRepo()
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	seedReceipt(repo, entity.Receipt{
		ReceiptNo:  "WCS-20250314-0001",
		Subtotal:   100000,
		GrandTotal: 100000,
		CreatedAt:  now,
	})
	svc := newReportService(repo, now)

	file, err := svc.ExportXLSX(context.Background(), period.Today, "", "")

	require.NoError(t, err)
	assert.Equal(t, "sales_report_today_2025-03-14.xlsx", file.Name)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", file.ContentType)
	require.NotEmpty(t, file.Data)

	wb, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Sales Report")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Receipt No", rows[0][0])
	assert.Equal(t, "WCS-20250314-0001", rows[1][0])
	assert.Equal(t, "1000.00", rows[1][9])
}

func TestWriteCSVRowDoublesEmbeddedQuotes(t *testing.T) {
	var buf bytes.Buffer
	writeCSVRow(&buf, []string{`say "hi"`, "plain", ""})
	assert.Equal(t, `"say ""hi""","plain",""`+"\r\n", buf.String())
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waheedcycles/cycleshop-api/internal/application/service"
	"github.com/waheedcycles/cycleshop-api/internal/config"
	"github.com/waheedcycles/cycleshop-api/internal/domain/entity"
	"github.com/waheedcycles/cycleshop-api/internal/domain/repository"
)

// stubReceiptRepo serves a fixed receipt list regardless of the range
type stubReceiptRepo struct {
	receipts []entity.Receipt
}

func (s *stubReceiptRepo) Create(ctx context.Context, r *entity.Receipt) error       { return nil }
func (s *stubReceiptRepo) CreateItems(ctx context.Context, i []entity.ReceiptItem) error { return nil }
func (s *stubReceiptRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }
func (s *stubReceiptRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	return nil, nil
}
func (s *stubReceiptRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	return nil, nil
}
func (s *stubReceiptRepo) List(ctx context.Context, params *repository.ReceiptFilterParams) ([]entity.Receipt, error) {
	return s.receipts, nil
}

type stubAnalyticsRepo struct{}

func (s *stubAnalyticsRepo) TopItems(ctx context.Context, start, end time.Time, limit int) ([]repository.TopItemResult, error) {
	return nil, nil
}

func strPtr(s string) *string { return &s }

func analyticsRouter(receipts []entity.Receipt) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := service.NewAnalyticsService(
		&stubReceiptRepo{receipts: receipts},
		&stubAnalyticsRepo{},
		config.ShopConfig{TimezoneOffsetMinutes: 330},
	)
	h := NewAnalyticsHandler(svc)

	router := gin.New()
	router.GET("/analytics", h.Get)
	return router
}

func analyticsReceipts(t *testing.T, router *gin.Engine, url string) []map[string]interface{} {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	var data struct {
		Receipts []map[string]interface{} `json:"receipts"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &data))
	return data.Receipts
}

func TestAnalyticsSearchNarrowsReceiptList(t *testing.T) {
	now := time.Now().UTC()
	router := analyticsRouter([]entity.Receipt{
		{ReceiptNo: "WCS-20250314-0001", CustomerName: strPtr("Asha"), CreatedAt: now},
		{ReceiptNo: "WCS-20250314-0002", CustomerName: strPtr("Bilal"), CreatedAt: now},
	})

	receipts := analyticsReceipts(t, router, "/analytics?search=asha")

	require.Len(t, receipts, 1)
	assert.Equal(t, "WCS-20250314-0001", receipts[0]["receipt_no"])
}

func TestAnalyticsMinTotalNarrowsReceiptList(t *testing.T) {
	now := time.Now().UTC()
	router := analyticsRouter([]entity.Receipt{
		{ReceiptNo: "WCS-20250314-0001", GrandTotal: 100000, CreatedAt: now},
		{ReceiptNo: "WCS-20250314-0002", GrandTotal: 300000, CreatedAt: now},
	})

	// min_total is rupees, receipts store paise
	receipts := analyticsReceipts(t, router, "/analytics?min_total=2000")

	require.Len(t, receipts, 1)
	assert.Equal(t, "WCS-20250314-0002", receipts[0]["receipt_no"])
}

func TestAnalyticsWithoutFiltersKeepsFullList(t *testing.T) {
	now := time.Now().UTC()
	router := analyticsRouter([]entity.Receipt{
		{ReceiptNo: "WCS-20250314-0001", CreatedAt: now},
		{ReceiptNo: "WCS-20250314-0002", CreatedAt: now},
	})

	receipts := analyticsReceipts(t, router, "/analytics")

	assert.Len(t, receipts, 2)
}

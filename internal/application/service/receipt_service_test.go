package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waheedcycles/cycleshop-api/internal/config"
	"github.com/waheedcycles/cycleshop-api/internal/domain/entity"
	"github.com/waheedcycles/cycleshop-api/internal/domain/repository"
	"github.com/waheedcycles/cycleshop-api/pkg/apperror"
	"gorm.io/gorm"
)

// fakeReceiptRepo is an in-memory ReceiptRepository for service tests
type fakeReceiptRepo struct {
	headers map[uuid.UUID]*entity.Receipt
	items   map[uuid.UUID][]entity.ReceiptItem
	numbers map[string]bool

	failCreateTimes int // fail Create with a duplicate-key error this many times
	failCreateItems bool
	createCalls     int
}

func newFakeReceiptRepo() *fakeReceiptRepo {
	return &fakeReceiptRepo{
		headers: make(map[uuid.UUID]*entity.Receipt),
		items:   make(map[uuid.UUID][]entity.ReceiptItem),
		numbers: make(map[string]bool),
	}
}

func (f *fakeReceiptRepo) Create(ctx context.Context, r *entity.Receipt) error {
	f.createCalls++
	if f.failCreateTimes > 0 {
		f.failCreateTimes--
		return gorm.ErrDuplicatedKey
	}
	if f.numbers[r.ReceiptNo] {
		return gorm.ErrDuplicatedKey
	}
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	r.CreatedAt = time.Now()
	stored := *r
	f.headers[r.ID] = &stored
	f.numbers[r.ReceiptNo] = true
	return nil
}

func (f *fakeReceiptRepo) CreateItems(ctx context.Context, items []entity.ReceiptItem) error {
	if f.failCreateItems {
		return errors.New("insert failed")
	}
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		f.items[items[i].ReceiptID] = append(f.items[items[i].ReceiptID], items[i])
	}
	return nil
}

func (f *fakeReceiptRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if r, ok := f.headers[id]; ok {
		delete(f.numbers, r.ReceiptNo)
	}
	delete(f.headers, id)
	delete(f.items, id)
	return nil
}

func (f *fakeReceiptRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	r, ok := f.headers[id]
	if !ok {
		return nil, nil
	}
	return r, nil
}

func (f *fakeReceiptRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	r, ok := f.headers[id]
	if !ok {
		return nil, nil
	}
	out := *r
	out.Items = f.items[id]
	return &out, nil
}

func (f *fakeReceiptRepo) List(ctx context.Context, params *repository.ReceiptFilterParams) ([]entity.Receipt, error) {
	var out []entity.Receipt
	for id, r := range f.headers {
		if params.StartDate != nil && r.CreatedAt.Before(*params.StartDate) {
			continue
		}
		if params.EndDate != nil && !r.CreatedAt.Before(*params.EndDate) {
			continue
		}
		rc := *r
		rc.Items = f.items[id]
		out = append(out, rc)
	}
	return out, nil
}

func testShopConfig() config.ShopConfig {
	return config.ShopConfig{
		Name:                  "WAHEED Cycle Shop",
		Address:               "Main Road",
		Phone:                 "+91 98765 43210",
		ReceiptPrefix:         "WCS",
		WhatsAppCountryCode:   "91",
		TimezoneOffsetMinutes: 330,
	}
}

func checkoutInput() *CreateReceiptInput {
	return &CreateReceiptInput{
		Items: []CreateReceiptItemInput{
			{ID: "b1", Name: "Mountain Blaze Pro", UnitPrice: decimal.NewFromInt(1000), Quantity: 2},
			{ID: "b2", Name: "Kids Adventure", UnitPrice: decimal.NewFromInt(500), Quantity: 1},
		},
		CustomerName:    "Asha",
		CustomerPhone:   "+91 98765 43210",
		DiscountEnabled: true,
		DiscountPercent: decimal.NewFromInt(10),
		GSTEnabled:      true,
		GSTRate:         decimal.NewFromInt(18),
	}
}

func TestCreateReceiptPersistsHeaderAndItems(t *testing.T) {
	repo := newFakeReceiptRepo()
	svc := NewReceiptService(repo, testShopConfig())

	receipt, err := svc.CreateReceipt(context.Background(), checkoutInput())
	require.NoError(t, err)
	require.NotNil(t, receipt)

	assert.Regexp(t, `^WCS-\d{8}-\d{4}$`, receipt.ReceiptNo)
	assert.Equal(t, int64(250000), receipt.Subtotal)
	assert.Equal(t, int64(25000), receipt.DiscountAmount)
	assert.Equal(t, int64(40500), receipt.GSTAmount)
	assert.Equal(t, int64(265500), receipt.GrandTotal)
	assert.Equal(t, int64(20250), receipt.CGST())
	assert.Equal(t, int64(20250), receipt.SGST())
	require.Len(t, receipt.Items, 2)
	assert.Equal(t, int64(200000), receipt.Items[0].Amount)
}

func TestCreateReceiptNumberUsesShopLocalDate(t *testing.T) {
	repo := newFakeReceiptRepo()
	svc := NewReceiptService(repo, testShopConfig())
	// 19:00 UTC March 14 is already March 15 in the shop's timezone.
	svc.now = func() time.Time { return time.Date(2025, 3, 14, 19, 0, 0, 0, time.UTC) }

	receipt, err := svc.CreateReceipt(context.Background(), checkoutInput())

	require.NoError(t, err)
	assert.Contains(t, receipt.ReceiptNo, "-20250315-")
}

func TestCreateReceiptRejectsEmptyCart(t *testing.T) {
	repo := newFakeReceiptRepo()
	svc := NewReceiptService(repo, testShopConfig())

	_, err := svc.CreateReceipt(context.Background(), &CreateReceiptInput{})

	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 400, appErr.Code)
	assert.Empty(t, repo.headers)
}

func TestCreateReceiptRejectsNegativePrice(t *testing.T) {
	repo := newFakeReceiptRepo()
	svc := NewReceiptService(repo, testShopConfig())

	input := checkoutInput()
	input.Items[0].UnitPrice = decimal.NewFromInt(-10)

	_, err := svc.CreateReceipt(context.Background(), input)

	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
	assert.Empty(t, repo.headers)
}

func TestCreateReceiptRetriesOnceOnNumberCollision(t *testing.T) {
	repo := newFakeReceiptRepo()
	repo.failCreateTimes = 1
	svc := NewReceiptService(repo, testShopConfig())

	receipt, err := svc.CreateReceipt(context.Background(), checkoutInput())

	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.Equal(t, 2, repo.createCalls)
}

func TestCreateReceiptGivesUpAfterSecondCollision(t *testing.T) {
	repo := newFakeReceiptRepo()
	repo.failCreateTimes = 2
	svc := NewReceiptService(repo, testShopConfig())

	_, err := svc.CreateReceipt(context.Background(), checkoutInput())

	require.Error(t, err)
	assert.Equal(t, 2, repo.createCalls)
	assert.Empty(t, repo.headers)
}

func TestCreateReceiptCompensatesWhenItemsFail(t *testing.T) {
	repo := newFakeReceiptRepo()
	repo.failCreateItems = true
	svc := NewReceiptService(repo, testShopConfig())

	_, err := svc.CreateReceipt(context.Background(), checkoutInput())

	require.Error(t, err)
	// The orphaned header must be gone
	assert.Empty(t, repo.headers)
}

func TestCreateReceiptMergesDuplicateCartLines(t *testing.T) {
	repo := newFakeReceiptRepo()
	svc := NewReceiptService(repo, testShopConfig())

	input := &CreateReceiptInput{
		Items: []CreateReceiptItemInput{
			{ID: "b1", Name: "Bike", UnitPrice: decimal.NewFromInt(100), Quantity: 1},
			{ID: "b1", Name: "Bike", UnitPrice: decimal.NewFromInt(100), Quantity: 2},
		},
	}

	receipt, err := svc.CreateReceipt(context.Background(), input)

	require.NoError(t, err)
	require.Len(t, receipt.Items, 1)
	assert.Equal(t, 3, receipt.Items[0].Quantity)
	assert.Equal(t, int64(30000), receipt.GrandTotal)
}

func TestGetReceiptNotFound(t *testing.T) {
	svc := NewReceiptService(newFakeReceiptRepo(), testShopConfig())

	_, err := svc.GetReceipt(context.Background(), uuid.New())

	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestShareLinkTargetsCustomerPhone(t *testing.T) {
	repo := newFakeReceiptRepo()
	svc := NewReceiptService(repo, testShopConfig())

	receipt, err := svc.CreateReceipt(context.Background(), checkoutInput())
	require.NoError(t, err)

	link, err := svc.ShareLink(context.Background(), receipt.ID)
	require.NoError(t, err)

	assert.Contains(t, link, "https://wa.me/919876543210?text=")
	assert.Contains(t, link, "WCS-")
}

func TestShareLinkWithoutPhoneUsesPhonelessForm(t *testing.T) {
	repo := newFakeReceiptRepo()
	svc := NewReceiptService(repo, testShopConfig())

	input := checkoutInput()
	input.CustomerPhone = ""
	receipt, err := svc.CreateReceipt(context.Background(), input)
	require.NoError(t, err)

	link, err := svc.ShareLink(context.Background(), receipt.ID)
	require.NoError(t, err)

	assert.Contains(t, link, "https://wa.me/?text=")
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/waheedcycles/cycleshop-api/internal/config"
	"github.com/waheedcycles/cycleshop-api/internal/domain/entity"
	"github.com/waheedcycles/cycleshop-api/internal/domain/repository"
	"github.com/waheedcycles/cycleshop-api/pkg/apperror"
	"github.com/waheedcycles/cycleshop-api/pkg/billing"
	"github.com/waheedcycles/cycleshop-api/pkg/period"
	"github.com/waheedcycles/cycleshop-api/pkg/whatsapp"
	"gorm.io/gorm"
)

// ReceiptService finalizes sales into immutable receipts
type ReceiptService struct {
	receiptRepo repository.ReceiptRepository
	shop        config.ShopConfig
	resolver    *period.Resolver
	now         func() time.Time
}

// NewReceiptService creates a new receipt service
func NewReceiptService(receiptRepo repository.ReceiptRepository, shop config.ShopConfig) *ReceiptService {
	return &ReceiptService{
		receiptRepo: receiptRepo,
		shop:        shop,
		resolver:    period.NewResolver(shop.TimezoneOffsetMinutes),
		now:         time.Now,
	}
}

// CreateReceiptItemInput represents one line of a checkout
type CreateReceiptItemInput struct {
	ID        string
	Name      string
	UnitPrice decimal.Decimal // In rupees
	Quantity  int
}

// CreateReceiptInput represents the checkout payload
type CreateReceiptInput struct {
	Items           []CreateReceiptItemInput
	CustomerName    string
	CustomerPhone   string
	DiscountEnabled bool
	DiscountPercent decimal.Decimal
	GSTEnabled      bool
	GSTRate         decimal.Decimal
	Notes           string
}

// CreateReceipt computes totals for the cart, assigns a receipt number and
// persists header plus items. The header and item inserts are separate
// writes; if the items fail the header is deleted so no half-written
// receipt survives.
func (s *ReceiptService) CreateReceipt(ctx context.Context, input *CreateReceiptInput) (*entity.Receipt, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Receipt must contain at least one item")
	}

	draft := &billing.Draft{
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		Notes:         input.Notes,
	}
	draft.SetDiscount(input.DiscountEnabled, input.DiscountPercent)
	draft.SetGST(input.GSTEnabled, input.GSTRate)

	for _, item := range input.Items {
		err := draft.AddItem(billing.LineItem{
			ID:        item.ID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
		switch {
		case errors.Is(err, billing.ErrEmptyItemName):
			return nil, apperror.NewBadRequestError("Item name is required")
		case errors.Is(err, billing.ErrNegativeUnitPrice):
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Item %q has a negative price", item.Name))
		case err != nil:
			return nil, err
		}
	}

	totals := billing.Compute(draft)
	discountPct, _ := draft.DiscountPercent.Float64()
	gstRate, _ := draft.GSTRate.Float64()
	if !draft.DiscountEnabled {
		discountPct = 0
	}
	if !draft.GSTEnabled {
		gstRate = 0
	}

	receipt := &entity.Receipt{
		CustomerName:   optional(input.CustomerName),
		CustomerPhone:  optional(input.CustomerPhone),
		Subtotal:       billing.ToPaise(totals.Subtotal),
		DiscountAmount: billing.ToPaise(totals.DiscountAmount),
		DiscountPct:    discountPct,
		GSTEnabled:     draft.GSTEnabled,
		GSTRate:        gstRate,
		GSTAmount:      billing.ToPaise(totals.GSTAmount),
		GrandTotal:     billing.ToPaise(totals.GrandTotal),
		Notes:          optional(input.Notes),
	}

	if err := s.insertWithRetry(ctx, receipt); err != nil {
		return nil, err
	}

	items := make([]entity.ReceiptItem, 0, len(draft.Items))
	for _, li := range draft.Items {
		items = append(items, entity.ReceiptItem{
			ReceiptID: receipt.ID,
			ItemName:  li.Name,
			UnitPrice: billing.ToPaise(li.UnitPrice),
			Quantity:  li.Quantity,
			Amount:    billing.ToPaise(li.Amount()),
		})
	}

	if err := s.receiptRepo.CreateItems(ctx, items); err != nil {
		// Compensate: remove the orphaned header so the failure is clean
		if delErr := s.receiptRepo.Delete(ctx, receipt.ID); delErr != nil {
			log.Printf("failed to delete receipt header %s after item insert failure: %v (original error: %v)",
				receipt.ID, delErr, err)
		}
		return nil, err
	}

	return s.receiptRepo.GetWithItems(ctx, receipt.ID)
}

// insertWithRetry inserts the receipt header, regenerating the receipt
// number once if it collides with an existing one. The number carries the
// shop-local date, not the server clock's.
func (s *ReceiptService) insertWithRetry(ctx context.Context, receipt *entity.Receipt) error {
	receipt.ReceiptNo = billing.ReceiptNumber(s.shop.ReceiptPrefix, s.resolver.Local(s.now()))
	err := s.receiptRepo.Create(ctx, receipt)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}

	receipt.ID = uuid.Nil
	receipt.ReceiptNo = billing.ReceiptNumber(s.shop.ReceiptPrefix, s.resolver.Local(s.now()))
	return s.receiptRepo.Create(ctx, receipt)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// GetReceipt retrieves a receipt with its items
func (s *ReceiptService) GetReceipt(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	receipt, err := s.receiptRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}
	return receipt, nil
}

// ListReceipts returns receipts matching the filter, newest first
func (s *ReceiptService) ListReceipts(ctx context.Context, params *repository.ReceiptFilterParams) ([]entity.Receipt, error) {
	return s.receiptRepo.List(ctx, params)
}

// ShareLink builds a WhatsApp deep link carrying the receipt as a formatted
// text message. The link targets the customer's phone when one is on file.
func (s *ReceiptService) ShareLink(ctx context.Context, id uuid.UUID) (string, error) {
	receipt, err := s.GetReceipt(ctx, id)
	if err != nil {
		return "", err
	}

	items := make([]whatsapp.ItemLine, 0, len(receipt.Items))
	for _, item := range receipt.Items {
		items = append(items, whatsapp.ItemLine{
			Label:  fmt.Sprintf("%s x%d", item.ItemName, item.Quantity),
			Amount: billing.FormatINR(item.Amount),
		})
	}

	msg := whatsapp.ReceiptMessage{
		Shop: whatsapp.ShopInfo{
			Name:    s.shop.Name,
			Address: s.shop.Address,
			Phone:   s.shop.Phone,
		},
		ReceiptNo:  receipt.ReceiptNo,
		Date:       s.resolver.LocalDate(receipt.CreatedAt),
		Items:      items,
		Subtotal:   billing.FormatINR(receipt.Subtotal),
		GrandTotal: billing.FormatINR(receipt.GrandTotal),
	}
	if receipt.CustomerName != nil {
		msg.Customer = *receipt.CustomerName
	}
	if receipt.DiscountAmount > 0 {
		msg.Discount = fmt.Sprintf("-%s (%g%%)", billing.FormatINR(receipt.DiscountAmount), receipt.DiscountPct)
	}
	if receipt.GSTEnabled && receipt.GSTAmount > 0 {
		msg.GST = fmt.Sprintf("%s (%g%%)", billing.FormatINR(receipt.GSTAmount), receipt.GSTRate)
	}

	phone := ""
	if receipt.CustomerPhone != nil {
		phone = *receipt.CustomerPhone
	}
	return whatsapp.Link(s.shop.WhatsAppCountryCode, phone, msg.Text()), nil
}

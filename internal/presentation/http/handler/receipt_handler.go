package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/waheedcycles/cycleshop-api/internal/application/service"
	"github.com/waheedcycles/cycleshop-api/internal/domain/repository"
	"github.com/waheedcycles/cycleshop-api/internal/presentation/http/dto/request"
	"github.com/waheedcycles/cycleshop-api/internal/presentation/http/dto/response"
	"github.com/waheedcycles/cycleshop-api/pkg/period"
)

// ReceiptHandler handles receipt-related HTTP requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
	printerService *service.PrinterService
	resolver       *period.Resolver
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(
	receiptService *service.ReceiptService,
	printerService *service.PrinterService,
	resolver *period.Resolver,
) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
		printerService: printerService,
		resolver:       resolver,
	}
}

// Create handles checkout: compute totals and persist a new receipt
func (h *ReceiptHandler) Create(c *gin.Context) {
	var req request.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateReceiptInput{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		DiscountEnabled: req.DiscountEnabled,
		DiscountPercent: decimal.NewFromFloat(req.DiscountPercent),
		GSTEnabled:      req.GSTEnabled,
		GSTRate:         decimal.NewFromFloat(req.GSTRate),
		Notes:           req.Notes,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, service.CreateReceiptItemInput{
			ID:        item.ID,
			Name:      item.Name,
			UnitPrice: decimal.NewFromFloat(item.UnitPrice),
			Quantity:  item.Quantity,
		})
	}

	receipt, err := h.receiptService.CreateReceipt(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Receipt created successfully", receipt)
}

// List handles listing receipts with optional date-range and search filters
func (h *ReceiptHandler) List(c *gin.Context) {
	params := &repository.ReceiptFilterParams{
		Search: c.Query("search"),
	}

	if p := c.Query("period"); p != "" {
		rng := h.resolver.Resolve(period.ParseKind(p), time.Now(),
			c.Query("start_date"), c.Query("end_date"))
		params.StartDate = &rng.Start
		params.EndDate = &rng.End
	}

	receipts, err := h.receiptService.ListReceipts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipts retrieved successfully", receipts)
}

// Get handles retrieving a single receipt with its items
func (h *ReceiptHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	receipt, err := h.receiptService.GetReceipt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt retrieved successfully", receipt)
}

// Print sends a receipt to the thermal printer
func (h *ReceiptHandler) Print(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	if err := h.printerService.PrintReceipt(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt sent to printer", nil)
}

// Render returns the printable HTML document for a receipt
func (h *ReceiptHandler) Render(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	html, err := h.printerService.RenderReceiptHTML(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

// Share returns the WhatsApp deep link for a receipt
func (h *ReceiptHandler) Share(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	link, err := h.receiptService.ShareLink(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Share link generated", gin.H{"link": link})
}

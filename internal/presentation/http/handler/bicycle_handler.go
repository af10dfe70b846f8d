package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/waheedcycles/cycleshop-api/internal/application/service"
	"github.com/waheedcycles/cycleshop-api/internal/domain/enum"
	"github.com/waheedcycles/cycleshop-api/internal/domain/repository"
	"github.com/waheedcycles/cycleshop-api/internal/presentation/http/dto/request"
	"github.com/waheedcycles/cycleshop-api/internal/presentation/http/dto/response"
	"github.com/waheedcycles/cycleshop-api/pkg/billing"
	"github.com/waheedcycles/cycleshop-api/pkg/pagination"
)

// BicycleHandler handles bicycle catalog HTTP requests
type BicycleHandler struct {
	bicycleService *service.BicycleService
}

// NewBicycleHandler creates a new bicycle handler
func NewBicycleHandler(bicycleService *service.BicycleService) *BicycleHandler {
	return &BicycleHandler{bicycleService: bicycleService}
}

// List handles the public catalog listing with search and filters
func (h *BicycleHandler) List(c *gin.Context) {
	var filter struct {
		Page      int     `form:"page"`
		PerPage   int     `form:"per_page"`
		Search    string  `form:"search"`
		Category  string  `form:"category"`
		MinPrice  float64 `form:"min_price"`
		MaxPrice  float64 `form:"max_price"`
		SortBy    string  `form:"sort_by"`
		SortOrder string  `form:"sort_order"`
	}
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.BicycleFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:    filter.Search,
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
	}

	if filter.Category != "" {
		category := enum.BikeCategory(filter.Category)
		if !category.IsValid() {
			response.BadRequest(c, "Invalid category")
			return
		}
		params.Category = &category
	}
	if filter.MinPrice > 0 {
		min := billing.ToPaise(decimal.NewFromFloat(filter.MinPrice))
		params.MinPrice = &min
	}
	if filter.MaxPrice > 0 {
		max := billing.ToPaise(decimal.NewFromFloat(filter.MaxPrice))
		params.MaxPrice = &max
	}

	bicycles, total, err := h.bicycleService.ListBicycles(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(bicycles,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total))
	response.SuccessWithPagination(c, 200, "Bicycles retrieved successfully", result)
}

// Get handles retrieving a single bicycle
func (h *BicycleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bicycle ID")
		return
	}

	bicycle, err := h.bicycleService.GetBicycle(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bicycle retrieved successfully", bicycle)
}

// Create handles adding a bicycle to the catalog
func (h *BicycleHandler) Create(c *gin.Context) {
	var req request.CreateBicycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	bicycle, err := h.bicycleService.CreateBicycle(c.Request.Context(), &service.CreateBicycleInput{
		Name:        req.Name,
		Category:    enum.BikeCategory(req.Category),
		Price:       decimal.NewFromFloat(req.Price),
		Description: req.Description,
		Features:    req.Features,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bicycle created successfully", bicycle)
}

// Update handles a partial bicycle update
func (h *BicycleHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bicycle ID")
		return
	}

	var req request.UpdateBicycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateBicycleInput{
		Name:        req.Name,
		Description: req.Description,
		Features:    req.Features,
		ImageURL:    req.ImageURL,
	}
	if req.Category != nil {
		category := enum.BikeCategory(*req.Category)
		input.Category = &category
	}
	if req.Price != nil {
		price := decimal.NewFromFloat(*req.Price)
		input.Price = &price
	}

	bicycle, err := h.bicycleService.UpdateBicycle(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bicycle updated successfully", bicycle)
}

// Delete handles removing a bicycle from the catalog
func (h *BicycleHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bicycle ID")
		return
	}

	if err := h.bicycleService.DeleteBicycle(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bicycle deleted successfully", nil)
}

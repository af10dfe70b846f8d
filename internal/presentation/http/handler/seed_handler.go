package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/waheedcycles/cycleshop-api/internal/application/service"
	"github.com/waheedcycles/cycleshop-api/internal/presentation/http/dto/response"
)

// SeedHandler handles demo-data seeding HTTP requests
type SeedHandler struct {
	seedService *service.SeedService
}

// NewSeedHandler creates a new seed handler
func NewSeedHandler(seedService *service.SeedService) *SeedHandler {
	return &SeedHandler{seedService: seedService}
}

// Seed replaces the catalog with the demo bicycles
func (h *SeedHandler) Seed(c *gin.Context) {
	bicycles, err := h.seedService.SeedDemoData(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, fmt.Sprintf("Successfully added %d demo bicycles", len(bicycles)), bicycles)
}

// Clear removes every bicycle from the catalog
func (h *SeedHandler) Clear(c *gin.Context) {
	if err := h.seedService.ClearCatalog(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "All bicycles have been cleared", nil)
}

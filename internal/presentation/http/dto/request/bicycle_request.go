package request

// CreateBicycleRequest represents a request to add a bicycle to the catalog
type CreateBicycleRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=255"`
	Category    string  `json:"category" binding:"required"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	Description string  `json:"description"`
	Features    string  `json:"features"`
	ImageURL    *string `json:"image_url"`
}

// UpdateBicycleRequest represents a partial bicycle update.
// Omitted fields are left unchanged.
type UpdateBicycleRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Description *string  `json:"description"`
	Features    *string  `json:"features"`
	ImageURL    *string  `json:"image_url"`
}

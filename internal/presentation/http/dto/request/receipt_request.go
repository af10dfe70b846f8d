package request

// ReceiptItemRequest represents one line of a checkout
type ReceiptItemRequest struct {
	ID        string  `json:"id"`
	Name      string  `json:"name" binding:"required"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// CreateReceiptRequest represents a checkout request
type CreateReceiptRequest struct {
	Items           []ReceiptItemRequest `json:"items" binding:"required,min=1,dive"`
	CustomerName    string               `json:"customer_name"`
	CustomerPhone   string               `json:"customer_phone"`
	DiscountEnabled bool                 `json:"discount_enabled"`
	DiscountPercent float64              `json:"discount_percent" binding:"gte=0,lte=100"`
	GSTEnabled      bool                 `json:"gst_enabled"`
	GSTRate         float64              `json:"gst_rate" binding:"gte=0,lte=100"`
	Notes           string               `json:"notes"`
}

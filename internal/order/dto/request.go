package dto

type CreateOrderRequest struct {
	SKU             string `json:"sku" binding:"required"`
	ModelNumber     string `json:"model_number"`
	ProductName     string `json:"product_name" binding:"required"`
	Quantity        int    `json:"quantity" binding:"required,gt=0"`
	DestinationType string `json:"destination_type" binding:"required,oneof=company amazon"`
	CompanyID       string `json:"company_id"`
	Notes           string `json:"notes"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

package dto

type CreateShipmentRequest struct {
	ShipmentNumber string `json:"shipment_number" binding:"required"`
	Notes          string `json:"notes"`
}

type AdvanceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

package dto

type CreateShipmentInput struct {
	ShipmentNumber string
	Notes          string
}

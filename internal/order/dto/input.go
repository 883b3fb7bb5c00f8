package dto

import "github.com/ShivamTripathi028/ibis-stock-sync/internal/model"

type CreateOrderInput struct {
	ShipmentID      string
	SKU             string
	ModelNumber     string
	ProductName     string
	Quantity        int
	DestinationType model.Destination
	CompanyID       string
	Notes           string
}

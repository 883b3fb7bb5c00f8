package dto

import "github.com/ShivamTripathi028/ibis-stock-sync/internal/model"

// ShipmentDetail is the detail view payload: the shipment plus its orders
// partitioned by destination, the way the dashboard renders them.
type ShipmentDetail struct {
	Shipment      *model.Shipment `json:"shipment"`
	CompanyOrders []model.Order   `json:"company_orders"`
	AmazonOrders  []model.Order   `json:"amazon_orders"`
}

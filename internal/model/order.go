package model

import "time"

type Order struct {
	ID              string      `db:"id" json:"id"`
	ShipmentID      string      `db:"shipment_id" json:"shipment_id"`
	SKU             string      `db:"sku" json:"sku"`
	ModelNumber     *string     `db:"model_number" json:"model_number"`
	ProductName     string      `db:"product_name" json:"product_name"`
	Quantity        int         `db:"quantity" json:"quantity"`
	DestinationType Destination `db:"destination_type" json:"destination_type"`
	CompanyID       *string     `db:"company_id" json:"company_id"`
	Status          OrderStatus `db:"status" json:"status"`
	Notes           *string     `db:"notes" json:"notes"`
	CreatedAt       time.Time   `db:"created_at" json:"created_at"`

	// Joined display data, not columns of the orders table.
	CompanyName    *string `db:"company_name" json:"company_name,omitempty"`
	ShipmentNumber *string `db:"shipment_number" json:"shipment_number,omitempty"`
}

// CascadesToInStock reports whether receiving the owning shipment moves this
// order into Amazon stock. Only freshly added Amazon orders qualify; orders
// already progressed past pending keep their status.
func (o *Order) CascadesToInStock() bool {
	return o.DestinationType == DestinationAmazon && o.Status == OrderPending
}

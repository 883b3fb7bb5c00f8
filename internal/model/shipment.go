package model

import "time"

type Shipment struct {
	ID             string         `db:"id" json:"id"`
	ShipmentNumber string         `db:"shipment_number" json:"shipment_number"`
	Status         ShipmentStatus `db:"status" json:"status"`
	Notes          *string        `db:"notes" json:"notes"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updated_at"`
}

package model

import "errors"

// Transition rules live here, decoupled from persistence. Repositories only
// ever write statuses that passed these checks.

var (
	ErrInvalidShipmentStatus  = errors.New("invalid shipment status")
	ErrShipmentStatusFinal    = errors.New("shipment is already received")
	ErrShipmentStatusNotNext  = errors.New("shipment status must advance one step at a time")
	ErrInvalidOrderStatus     = errors.New("status not valid for this destination")
	ErrOrderStatusNotAllowed  = errors.New("order status change not allowed")
	ErrInvalidDestinationType = errors.New("invalid destination type")
)

type ShipmentStatus string

const (
	ShipmentOpen     ShipmentStatus = "open"
	ShipmentOrdered  ShipmentStatus = "ordered"
	ShipmentReceived ShipmentStatus = "received"
)

func (s ShipmentStatus) Valid() bool {
	switch s {
	case ShipmentOpen, ShipmentOrdered, ShipmentReceived:
		return true
	}
	return false
}

// Next returns the immediate successor in open -> ordered -> received.
// received is terminal.
func (s ShipmentStatus) Next() (ShipmentStatus, bool) {
	switch s {
	case ShipmentOpen:
		return ShipmentOrdered, true
	case ShipmentOrdered:
		return ShipmentReceived, true
	}
	return "", false
}

// AdvanceShipmentStatus validates a transition from current to target.
// Only the immediate successor is admitted: no reverse moves, no skipping.
func AdvanceShipmentStatus(current, target ShipmentStatus) error {
	if !target.Valid() {
		return ErrInvalidShipmentStatus
	}
	next, ok := current.Next()
	if !ok {
		return ErrShipmentStatusFinal
	}
	if target != next {
		return ErrShipmentStatusNotNext
	}
	return nil
}

type Destination string

const (
	DestinationCompany Destination = "company"
	DestinationAmazon  Destination = "amazon"
)

func (d Destination) Valid() bool {
	return d == DestinationCompany || d == DestinationAmazon
}

type OrderStatus string

const (
	OrderPending     OrderStatus = "pending"
	OrderDelivered   OrderStatus = "delivered"
	OrderInStock     OrderStatus = "in-stock"
	OrderSold        OrderStatus = "sold"
	OrderInOfficeUse OrderStatus = "in-office-use"
)

// ValidOrderStatus reports whether s belongs to the destination's status set.
// Company orders move pending -> delivered; Amazon orders move through
// pending, in-stock, sold and in-office-use.
func ValidOrderStatus(d Destination, s OrderStatus) bool {
	switch d {
	case DestinationCompany:
		return s == OrderPending || s == OrderDelivered
	case DestinationAmazon:
		return s == OrderPending || s == OrderInStock || s == OrderSold || s == OrderInOfficeUse
	}
	return false
}

// SetOrderStatus validates a manual status change. A same-status call is
// allowed so the operator can rewrite notes without touching the lifecycle.
func SetOrderStatus(d Destination, current, target OrderStatus) error {
	if !ValidOrderStatus(d, target) {
		return ErrInvalidOrderStatus
	}
	if current == target {
		return nil
	}
	switch d {
	case DestinationCompany:
		// delivered is terminal and the only manual target.
		if current != OrderPending || target != OrderDelivered {
			return ErrOrderStatusNotAllowed
		}
	case DestinationAmazon:
		// The stocked states are freely interchangeable; pending is only
		// assigned at creation or by the received cascade.
		if target == OrderPending {
			return ErrOrderStatusNotAllowed
		}
	default:
		return ErrInvalidDestinationType
	}
	return nil
}

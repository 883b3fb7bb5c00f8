package model

import (
	"errors"
	"testing"
)

func TestAdvanceShipmentStatus(t *testing.T) {
	cases := []struct {
		name    string
		current ShipmentStatus
		target  ShipmentStatus
		wantErr error
	}{
		{"open to ordered", ShipmentOpen, ShipmentOrdered, nil},
		{"ordered to received", ShipmentOrdered, ShipmentReceived, nil},
		{"open to received skips ordered", ShipmentOpen, ShipmentReceived, ErrShipmentStatusNotNext},
		{"ordered back to open", ShipmentOrdered, ShipmentOpen, ErrShipmentStatusNotNext},
		{"received back to open", ShipmentReceived, ShipmentOpen, ErrShipmentStatusFinal},
		{"received back to ordered", ShipmentReceived, ShipmentOrdered, ErrShipmentStatusFinal},
		{"received is terminal", ShipmentReceived, ShipmentReceived, ErrShipmentStatusFinal},
		{"open to open", ShipmentOpen, ShipmentOpen, ErrShipmentStatusNotNext},
		{"unknown target", ShipmentOpen, ShipmentStatus("shipped"), ErrInvalidShipmentStatus},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := AdvanceShipmentStatus(tc.current, tc.target)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("AdvanceShipmentStatus(%q, %q) = %v, want %v", tc.current, tc.target, err, tc.wantErr)
			}
		})
	}
}

func TestShipmentStatusNext(t *testing.T) {
	if next, ok := ShipmentOpen.Next(); !ok || next != ShipmentOrdered {
		t.Fatalf("open.Next() = %q, %v", next, ok)
	}
	if next, ok := ShipmentOrdered.Next(); !ok || next != ShipmentReceived {
		t.Fatalf("ordered.Next() = %q, %v", next, ok)
	}
	if _, ok := ShipmentReceived.Next(); ok {
		t.Fatal("received should have no successor")
	}
}

func TestSetOrderStatus(t *testing.T) {
	cases := []struct {
		name    string
		dest    Destination
		current OrderStatus
		target  OrderStatus
		wantErr error
	}{
		{"company pending to delivered", DestinationCompany, OrderPending, OrderDelivered, nil},
		{"company delivered is terminal", DestinationCompany, OrderDelivered, OrderPending, ErrOrderStatusNotAllowed},
		{"company cannot take amazon status", DestinationCompany, OrderPending, OrderInStock, ErrInvalidOrderStatus},
		{"company notes-only rewrite", DestinationCompany, OrderDelivered, OrderDelivered, nil},
		{"amazon pending to in-stock", DestinationAmazon, OrderPending, OrderInStock, nil},
		{"amazon in-stock to sold", DestinationAmazon, OrderInStock, OrderSold, nil},
		{"amazon in-stock to in-office-use", DestinationAmazon, OrderInStock, OrderInOfficeUse, nil},
		{"amazon sold back to in-stock", DestinationAmazon, OrderSold, OrderInStock, nil},
		{"amazon cannot go back to pending", DestinationAmazon, OrderInStock, OrderPending, ErrOrderStatusNotAllowed},
		{"amazon cannot take delivered", DestinationAmazon, OrderInStock, OrderDelivered, ErrInvalidOrderStatus},
		{"amazon notes-only rewrite", DestinationAmazon, OrderSold, OrderSold, nil},
		{"unknown status rejected", DestinationAmazon, OrderInStock, OrderStatus("returned"), ErrInvalidOrderStatus},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := SetOrderStatus(tc.dest, tc.current, tc.target)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("SetOrderStatus(%q, %q, %q) = %v, want %v", tc.dest, tc.current, tc.target, err, tc.wantErr)
			}
		})
	}
}

func TestCascadesToInStock(t *testing.T) {
	cases := []struct {
		name  string
		order Order
		want  bool
	}{
		{"amazon pending cascades", Order{DestinationType: DestinationAmazon, Status: OrderPending}, true},
		{"amazon in-stock untouched", Order{DestinationType: DestinationAmazon, Status: OrderInStock}, false},
		{"amazon sold untouched", Order{DestinationType: DestinationAmazon, Status: OrderSold}, false},
		{"company pending untouched", Order{DestinationType: DestinationCompany, Status: OrderPending}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.order.CascadesToInStock(); got != tc.want {
				t.Fatalf("CascadesToInStock() = %v, want %v", got, tc.want)
			}
		})
	}
}

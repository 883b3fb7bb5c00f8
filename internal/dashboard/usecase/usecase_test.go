package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/ShivamTripathi028/ibis-stock-sync/internal/model"
	"github.com/ShivamTripathi028/ibis-stock-sync/internal/order"
	"github.com/ShivamTripathi028/ibis-stock-sync/internal/shipment"
	"go.uber.org/zap"
)

type fakeShipmentRepo struct {
	shipment.Repository
	shipments []model.Shipment
}

func (f *fakeShipmentRepo) CountAll(_ context.Context) (int, error) {
	return len(f.shipments), nil
}

func (f *fakeShipmentRepo) CountByStatus(_ context.Context, status model.ShipmentStatus) (int, error) {
	count := 0
	for _, s := range f.shipments {
		if s.Status == status {
			count++
		}
	}
	return count, nil
}

type fakeOrderRepo struct {
	order.Repository
	orders []model.Order
}

func (f *fakeOrderRepo) CountByDestination(_ context.Context, d model.Destination) (int, error) {
	count := 0
	for _, o := range f.orders {
		if o.DestinationType == d {
			count++
		}
	}
	return count, nil
}

func (f *fakeOrderRepo) CountByDestinationAndStatus(_ context.Context, d model.Destination, s model.OrderStatus) (int, error) {
	count := 0
	for _, o := range f.orders {
		if o.DestinationType == d && o.Status == s {
			count++
		}
	}
	return count, nil
}

func TestStats(t *testing.T) {
	shipments := &fakeShipmentRepo{shipments: []model.Shipment{
		{Status: model.ShipmentOpen},
		{Status: model.ShipmentOrdered},
		{Status: model.ShipmentReceived},
	}}
	orders := &fakeOrderRepo{orders: []model.Order{
		{DestinationType: model.DestinationAmazon, Status: model.OrderPending},
		{DestinationType: model.DestinationAmazon, Status: model.OrderInStock},
		{DestinationType: model.DestinationCompany, Status: model.OrderPending},
		{DestinationType: model.DestinationCompany, Status: model.OrderDelivered},
	}}

	uc := NewDashboardUseCase(shipments, orders, nil, time.Minute, zap.NewNop())

	stats, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.TotalShipments != 3 {
		t.Errorf("totalShipments = %d, want 3", stats.TotalShipments)
	}
	if stats.OpenShipments != 1 || stats.OrderedShipments != 1 || stats.ReceivedShipments != 1 {
		t.Errorf("shipment breakdown = %d/%d/%d, want 1/1/1",
			stats.OpenShipments, stats.OrderedShipments, stats.ReceivedShipments)
	}
	if stats.AmazonStock != 2 {
		t.Errorf("amazonStock = %d, want 2", stats.AmazonStock)
	}
	if stats.InStock != 1 {
		t.Errorf("inStock = %d, want 1", stats.InStock)
	}
	if stats.CompanyOrders != 2 {
		t.Errorf("companyOrders = %d, want 2", stats.CompanyOrders)
	}
	if stats.PendingOrders != 1 {
		t.Errorf("pendingOrders = %d, want 1", stats.PendingOrders)
	}
}

func TestStatsEmptyStore(t *testing.T) {
	uc := NewDashboardUseCase(&fakeShipmentRepo{}, &fakeOrderRepo{}, nil, time.Minute, zap.NewNop())

	stats, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalShipments != 0 || stats.AmazonStock != 0 || stats.CompanyOrders != 0 {
		t.Fatalf("empty store should report zero counts, got %+v", stats)
	}
}

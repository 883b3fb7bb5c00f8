package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/ShivamTripathi028/ibis-stock-sync/internal/company"
	"github.com/ShivamTripathi028/ibis-stock-sync/internal/model"
	"github.com/ShivamTripathi028/ibis-stock-sync/internal/order"
	"github.com/ShivamTripathi028/ibis-stock-sync/internal/order/dto"
	"github.com/ShivamTripathi028/ibis-stock-sync/internal/shipment"
	"go.uber.org/zap"
)

type fakeOrderRepo struct {
	order.Repository
	byID map[string]*model.Order

	created *model.Order
	updated *model.Order
}

func (f *fakeOrderRepo) Create(_ context.Context, o *model.Order) error {
	cp := *o
	f.created = &cp
	return nil
}

func (f *fakeOrderRepo) FindByID(_ context.Context, id string) (*model.Order, error) {
	o, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id string, status model.OrderStatus, notes *string) error {
	o, ok := f.byID[id]
	if !ok {
		return errors.New("no such order")
	}
	o.Status = status
	o.Notes = notes
	f.updated = o
	return nil
}

type fakeShipmentRepo struct {
	shipment.Repository
	ids map[string]bool
}

func (f *fakeShipmentRepo) FindByID(_ context.Context, id string) (*model.Shipment, error) {
	if !f.ids[id] {
		return nil, nil
	}
	return &model.Shipment{ID: id, Status: model.ShipmentOpen}, nil
}

type fakeCompanyRepo struct {
	company.Repository
	ids map[string]bool
}

func (f *fakeCompanyRepo) FindByID(_ context.Context, id string) (*model.Company, error) {
	if !f.ids[id] {
		return nil, nil
	}
	return &model.Company{ID: id, Name: "ACME"}, nil
}

func newTestUseCase(repo *fakeOrderRepo) order.UseCase {
	shipments := &fakeShipmentRepo{ids: map[string]bool{"s1": true}}
	companies := &fakeCompanyRepo{ids: map[string]bool{"c1": true}}
	return NewOrderUseCase(repo, shipments, companies, nil, zap.NewNop())
}

func validInput() *dto.CreateOrderInput {
	return &dto.CreateOrderInput{
		ShipmentID:      "s1",
		SKU:             "RAK-123",
		ProductName:     "WisGate Edge Gateway",
		Quantity:        1,
		DestinationType: model.DestinationCompany,
		CompanyID:       "c1",
	}
}

func TestCreateOrderValidation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*dto.CreateOrderInput)
		wantErr error
	}{
		{"zero quantity", func(in *dto.CreateOrderInput) { in.Quantity = 0 }, order.ErrInvalidQuantity},
		{"negative quantity", func(in *dto.CreateOrderInput) { in.Quantity = -1 }, order.ErrInvalidQuantity},
		{"company order without company", func(in *dto.CreateOrderInput) { in.CompanyID = "" }, order.ErrCompanyRequired},
		{"company order with unknown company", func(in *dto.CreateOrderInput) { in.CompanyID = "ghost" }, order.ErrCompanyNotFound},
		{"unknown shipment", func(in *dto.CreateOrderInput) { in.ShipmentID = "ghost" }, order.ErrShipmentNotFound},
		{"unknown destination", func(in *dto.CreateOrderInput) { in.DestinationType = "warehouse" }, model.ErrInvalidDestinationType},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeOrderRepo{}
			uc := newTestUseCase(repo)

			in := validInput()
			tc.mutate(in)

			_, err := uc.Create(context.Background(), in)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
			if repo.created != nil {
				t.Fatal("order was persisted despite validation failure")
			}
		})
	}
}

func TestCreateCompanyOrder(t *testing.T) {
	repo := &fakeOrderRepo{}
	uc := newTestUseCase(repo)

	o, err := uc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Status != model.OrderPending {
		t.Fatalf("status = %q, want pending", o.Status)
	}
	if o.CompanyID == nil || *o.CompanyID != "c1" {
		t.Fatalf("company_id = %v, want c1", o.CompanyID)
	}
}

func TestCreateAmazonOrderIgnoresCompany(t *testing.T) {
	repo := &fakeOrderRepo{}
	uc := newTestUseCase(repo)

	in := validInput()
	in.DestinationType = model.DestinationAmazon
	in.CompanyID = "c1" // selected before switching destination; must be dropped

	o, err := uc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.CompanyID != nil {
		t.Fatalf("amazon order should carry no company reference, got %q", *o.CompanyID)
	}
	if o.Status != model.OrderPending {
		t.Fatalf("status = %q, want pending", o.Status)
	}
}

func TestSetStatusCompanyOrder(t *testing.T) {
	repo := &fakeOrderRepo{byID: map[string]*model.Order{
		"o1": {ID: "o1", DestinationType: model.DestinationCompany, Status: model.OrderPending},
	}}
	uc := newTestUseCase(repo)

	o, err := uc.SetStatus(context.Background(), "o1", model.OrderDelivered, "left at reception")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Status != model.OrderDelivered {
		t.Fatalf("status = %q, want delivered", o.Status)
	}
	if o.Notes == nil || *o.Notes != "left at reception" {
		t.Fatalf("notes = %v, want updated", o.Notes)
	}

	// delivered is terminal
	if _, err := uc.SetStatus(context.Background(), "o1", model.OrderPending, ""); !errors.Is(err, model.ErrOrderStatusNotAllowed) {
		t.Fatalf("err = %v, want ErrOrderStatusNotAllowed", err)
	}
}

func TestSetStatusAmazonOrder(t *testing.T) {
	repo := &fakeOrderRepo{byID: map[string]*model.Order{
		"o1": {ID: "o1", DestinationType: model.DestinationAmazon, Status: model.OrderInStock},
	}}
	uc := newTestUseCase(repo)

	// the stocked states are freely interchangeable
	if _, err := uc.SetStatus(context.Background(), "o1", model.OrderSold, ""); err != nil {
		t.Fatalf("in-stock -> sold: %v", err)
	}
	if _, err := uc.SetStatus(context.Background(), "o1", model.OrderInOfficeUse, ""); err != nil {
		t.Fatalf("sold -> in-office-use: %v", err)
	}

	// but pending is not a manual target
	if _, err := uc.SetStatus(context.Background(), "o1", model.OrderPending, ""); !errors.Is(err, model.ErrOrderStatusNotAllowed) {
		t.Fatalf("err = %v, want ErrOrderStatusNotAllowed", err)
	}

	// and company statuses are out of reach at the type level
	if _, err := uc.SetStatus(context.Background(), "o1", model.OrderDelivered, ""); !errors.Is(err, model.ErrInvalidOrderStatus) {
		t.Fatalf("err = %v, want ErrInvalidOrderStatus", err)
	}
}

func TestSetStatusClearsNotes(t *testing.T) {
	notes := "old"
	repo := &fakeOrderRepo{byID: map[string]*model.Order{
		"o1": {ID: "o1", DestinationType: model.DestinationAmazon, Status: model.OrderInStock, Notes: &notes},
	}}
	uc := newTestUseCase(repo)

	o, err := uc.SetStatus(context.Background(), "o1", model.OrderInStock, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Notes != nil {
		t.Fatalf("notes = %q, want cleared", *o.Notes)
	}
}

func TestSetStatusUnknownOrder(t *testing.T) {
	repo := &fakeOrderRepo{}
	uc := newTestUseCase(repo)

	if _, err := uc.SetStatus(context.Background(), "ghost", model.OrderSold, ""); !errors.Is(err, order.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

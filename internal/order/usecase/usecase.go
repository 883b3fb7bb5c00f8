package usecase

import (
	"context"
	"time"

	"github.com/ShivamTripathi028/ibis-stock-sync/internal/company"
	"github.com/ShivamTripathi028/ibis-stock-sync/internal/events"
	"github.com/ShivamTripathi028/ibis-stock-sync/internal/model"
	"github.com/ShivamTripathi028/ibis-stock-sync/internal/order"
	"github.com/ShivamTripathi028/ibis-stock-sync/internal/order/dto"
	"github.com/ShivamTripathi028/ibis-stock-sync/internal/shipment"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type orderUseCase struct {
	repo      order.Repository
	shipments shipment.Repository
	companies company.Repository
	publisher *events.Publisher
	logger    *zap.Logger
}

func NewOrderUseCase(repo order.Repository, shipments shipment.Repository, companies company.Repository, pub *events.Publisher, log *zap.Logger) order.UseCase {
	return &orderUseCase{
		repo:      repo,
		shipments: shipments,
		companies: companies,
		publisher: pub,
		logger:    log,
	}
}

func (uc *orderUseCase) Create(ctx context.Context, input *dto.CreateOrderInput) (*model.Order, error) {
	if input.Quantity <= 0 {
		return nil, order.ErrInvalidQuantity
	}
	if !input.DestinationType.Valid() {
		return nil, model.ErrInvalidDestinationType
	}

	s, err := uc.shipments.FindByID(ctx, input.ShipmentID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, order.ErrShipmentNotFound
	}

	// Destination fixes the company reference at creation: required for
	// company orders, forced null for Amazon stock.
	var companyID *string
	if input.DestinationType == model.DestinationCompany {
		if input.CompanyID == "" {
			return nil, order.ErrCompanyRequired
		}
		c, err := uc.companies.FindByID(ctx, input.CompanyID)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, order.ErrCompanyNotFound
		}
		companyID = &input.CompanyID
	}

	o := &model.Order{
		ID:              uuid.New().String(),
		ShipmentID:      input.ShipmentID,
		SKU:             input.SKU,
		ModelNumber:     optional(input.ModelNumber),
		ProductName:     input.ProductName,
		Quantity:        input.Quantity,
		DestinationType: input.DestinationType,
		CompanyID:       companyID,
		Status:          model.OrderPending,
		Notes:           optional(input.Notes),
		CreatedAt:       time.Now().UTC(),
	}

	if err := uc.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	uc.publisher.Publish(ctx, events.OrderCreated, map[string]interface{}{
		"order_id":         o.ID,
		"shipment_id":      o.ShipmentID,
		"sku":              o.SKU,
		"destination_type": o.DestinationType,
	})

	return o, nil
}

func (uc *orderUseCase) SetStatus(ctx context.Context, id string, status model.OrderStatus, notes string) (*model.Order, error) {
	o, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, order.ErrNotFound
	}

	if err := model.SetOrderStatus(o.DestinationType, o.Status, status); err != nil {
		return nil, err
	}

	newNotes := optional(notes)
	if err := uc.repo.UpdateStatus(ctx, id, status, newNotes); err != nil {
		return nil, err
	}

	previous := o.Status
	o.Status = status
	o.Notes = newNotes

	if previous != status {
		uc.publisher.Publish(ctx, events.OrderStatusChanged, map[string]interface{}{
			"order_id":         o.ID,
			"shipment_id":      o.ShipmentID,
			"destination_type": o.DestinationType,
			"from":             previous,
			"to":               status,
		})
	}

	return o, nil
}

func (uc *orderUseCase) ListCompanyOrders(ctx context.Context, companyID string) ([]model.Order, error) {
	return uc.repo.FindCompanyOrders(ctx, &dto.CompanyOrderFilters{CompanyID: companyID})
}

func (uc *orderUseCase) ListAmazonOrders(ctx context.Context, status, search string) ([]model.Order, error) {
	return uc.repo.FindAmazonOrders(ctx, &dto.AmazonOrderFilters{
		Status: model.OrderStatus(status),
		Search: search,
	})
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

package usecase

import (
	"context"
	"time"

	"github.com/ShivamTripathi028/ibis-stock-sync/internal/events"
	"github.com/ShivamTripathi028/ibis-stock-sync/internal/model"
	"github.com/ShivamTripathi028/ibis-stock-sync/internal/order"
	"github.com/ShivamTripathi028/ibis-stock-sync/internal/shipment"
	"github.com/ShivamTripathi028/ibis-stock-sync/internal/shipment/dto"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type shipmentUseCase struct {
	repo      shipment.Repository
	orders    order.Repository
	publisher *events.Publisher
	logger    *zap.Logger
}

func NewShipmentUseCase(repo shipment.Repository, orders order.Repository, pub *events.Publisher, log *zap.Logger) shipment.UseCase {
	return &shipmentUseCase{
		repo:      repo,
		orders:    orders,
		publisher: pub,
		logger:    log,
	}
}

func (uc *shipmentUseCase) Create(ctx context.Context, input *dto.CreateShipmentInput) (*model.Shipment, error) {
	now := time.Now().UTC()

	s := &model.Shipment{
		ID:             uuid.New().String(),
		ShipmentNumber: input.ShipmentNumber,
		Status:         model.ShipmentOpen,
		Notes:          optional(input.Notes),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}

	uc.publisher.Publish(ctx, events.ShipmentCreated, map[string]interface{}{
		"shipment_id":     s.ID,
		"shipment_number": s.ShipmentNumber,
	})

	return s, nil
}

func (uc *shipmentUseCase) List(ctx context.Context) ([]model.Shipment, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *shipmentUseCase) Detail(ctx context.Context, id string) (*dto.ShipmentDetail, error) {
	s, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, shipment.ErrNotFound
	}

	orders, err := uc.orders.FindByShipment(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &dto.ShipmentDetail{
		Shipment:      s,
		CompanyOrders: []model.Order{},
		AmazonOrders:  []model.Order{},
	}
	for _, o := range orders {
		switch o.DestinationType {
		case model.DestinationCompany:
			detail.CompanyOrders = append(detail.CompanyOrders, o)
		case model.DestinationAmazon:
			detail.AmazonOrders = append(detail.AmazonOrders, o)
		}
	}
	return detail, nil
}

func (uc *shipmentUseCase) AdvanceStatus(ctx context.Context, id string, target model.ShipmentStatus) (*model.Shipment, error) {
	s, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, shipment.ErrNotFound
	}

	if err := model.AdvanceShipmentStatus(s.Status, target); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	previous := s.Status

	var cascaded int64
	if target == model.ShipmentReceived {
		cascaded, err = uc.repo.MarkReceived(ctx, id, now)
	} else {
		err = uc.repo.UpdateStatus(ctx, id, target, now)
	}
	if err != nil {
		return nil, err
	}

	s.Status = target
	s.UpdatedAt = now

	uc.logger.Info("shipment status advanced",
		zap.String("shipment_id", id),
		zap.String("from", string(previous)),
		zap.String("to", string(target)),
		zap.Int64("cascaded_orders", cascaded),
	)

	uc.publisher.Publish(ctx, events.ShipmentStatusChanged, map[string]interface{}{
		"shipment_id":     s.ID,
		"shipment_number": s.ShipmentNumber,
		"from":            previous,
		"to":              target,
		"cascaded_orders": cascaded,
	})

	return s, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

package shipment

import (
	"context"
	"errors"

	"github.com/ShivamTripathi028/ibis-stock-sync/internal/model"
	"github.com/ShivamTripathi028/ibis-stock-sync/internal/shipment/dto"
)

var ErrNotFound = errors.New("shipment not found")

type UseCase interface {
	Create(ctx context.Context, input *dto.CreateShipmentInput) (*model.Shipment, error)
	List(ctx context.Context) ([]model.Shipment, error)
	Detail(ctx context.Context, id string) (*dto.ShipmentDetail, error)
	AdvanceStatus(ctx context.Context, id string, target model.ShipmentStatus) (*model.Shipment, error)
}

package shipment

import (
	"context"
	"time"

	"github.com/ShivamTripathi028/ibis-stock-sync/internal/model"
)

type Repository interface {
	Create(ctx context.Context, s *model.Shipment) error
	FindByID(ctx context.Context, id string) (*model.Shipment, error)
	FindAll(ctx context.Context) ([]model.Shipment, error)

	// UpdateStatus writes a single status value. Callers are expected to
	// have validated the transition already.
	UpdateStatus(ctx context.Context, id string, status model.ShipmentStatus, updatedAt time.Time) error

	// MarkReceived sets the shipment to received and flips its pending
	// Amazon orders to in-stock in one transaction. Returns how many
	// orders were cascaded.
	MarkReceived(ctx context.Context, id string, updatedAt time.Time) (int64, error)

	CountAll(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status model.ShipmentStatus) (int, error)
}

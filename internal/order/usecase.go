package order

import (
	"context"
	"errors"

	"github.com/ShivamTripathi028/ibis-stock-sync/internal/model"
	"github.com/ShivamTripathi028/ibis-stock-sync/internal/order/dto"
)

var (
	ErrNotFound         = errors.New("order not found")
	ErrShipmentNotFound = errors.New("shipment not found")
	ErrCompanyNotFound  = errors.New("company not found")
	ErrCompanyRequired  = errors.New("company is required for company orders")
	ErrInvalidQuantity  = errors.New("quantity must be a positive integer")
)

type UseCase interface {
	Create(ctx context.Context, input *dto.CreateOrderInput) (*model.Order, error)

	// SetStatus applies a manual status change together with a notes
	// rewrite. An empty notes string clears the field.
	SetStatus(ctx context.Context, id string, status model.OrderStatus, notes string) (*model.Order, error)

	ListCompanyOrders(ctx context.Context, companyID string) ([]model.Order, error)
	ListAmazonOrders(ctx context.Context, status, search string) ([]model.Order, error)
}

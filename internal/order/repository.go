package order

import (
	"context"

	"github.com/ShivamTripathi028/ibis-stock-sync/internal/model"
	"github.com/ShivamTripathi028/ibis-stock-sync/internal/order/dto"
)

type Repository interface {
	Create(ctx context.Context, o *model.Order) error
	FindByID(ctx context.Context, id string) (*model.Order, error)

	// FindByShipment returns every order of one shipment, enriched with the
	// referenced company name where the destination is a company.
	FindByShipment(ctx context.Context, shipmentID string) ([]model.Order, error)

	FindCompanyOrders(ctx context.Context, f *dto.CompanyOrderFilters) ([]model.Order, error)
	FindAmazonOrders(ctx context.Context, f *dto.AmazonOrderFilters) ([]model.Order, error)

	UpdateStatus(ctx context.Context, id string, status model.OrderStatus, notes *string) error

	CountByDestination(ctx context.Context, d model.Destination) (int, error)
	CountByDestinationAndStatus(ctx context.Context, d model.Destination, s model.OrderStatus) (int, error)
	CountByCompany(ctx context.Context, companyID string) (int, error)
}

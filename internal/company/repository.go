package company

import (
	"context"

	"github.com/ShivamTripathi028/ibis-stock-sync/internal/model"
)

type Repository interface {
	Create(ctx context.Context, c *model.Company) error
	FindByID(ctx context.Context, id string) (*model.Company, error)
	FindAll(ctx context.Context) ([]model.Company, error)
	Update(ctx context.Context, c *model.Company) error
	Delete(ctx context.Context, id string) error
}

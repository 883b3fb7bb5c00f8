package company

import (
	"context"
	"errors"

	"github.com/ShivamTripathi028/ibis-stock-sync/internal/company/dto"
	"github.com/ShivamTripathi028/ibis-stock-sync/internal/model"
)

var (
	ErrNotFound = errors.New("company not found")
	// ErrInUse guards company deletion while orders still reference it;
	// the schema backs this with ON DELETE RESTRICT.
	ErrInUse = errors.New("company is referenced by existing orders")
)

type UseCase interface {
	Create(ctx context.Context, input *dto.CompanyInput) (*model.Company, error)
	List(ctx context.Context) ([]model.Company, error)
	Update(ctx context.Context, id string, input *dto.CompanyInput) (*model.Company, error)
	Delete(ctx context.Context, id string) error
}

package usecase

import (
	"context"
	"time"

	"github.com/ShivamTripathi028/ibis-stock-sync/internal/company"
	"github.com/ShivamTripathi028/ibis-stock-sync/internal/company/dto"
	"github.com/ShivamTripathi028/ibis-stock-sync/internal/model"
	"github.com/ShivamTripathi028/ibis-stock-sync/internal/order"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type companyUseCase struct {
	repo   company.Repository
	orders order.Repository
	logger *zap.Logger
}

func NewCompanyUseCase(repo company.Repository, orders order.Repository, log *zap.Logger) company.UseCase {
	return &companyUseCase{
		repo:   repo,
		orders: orders,
		logger: log,
	}
}

func (uc *companyUseCase) Create(ctx context.Context, input *dto.CompanyInput) (*model.Company, error) {
	c := &model.Company{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Contact:   optional(input.Contact),
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *companyUseCase) List(ctx context.Context) ([]model.Company, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *companyUseCase) Update(ctx context.Context, id string, input *dto.CompanyInput) (*model.Company, error) {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, company.ErrNotFound
	}

	c.Name = input.Name
	c.Contact = optional(input.Contact)

	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *companyUseCase) Delete(ctx context.Context, id string) error {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return company.ErrNotFound
	}

	// Orders keep their company reference for display, so a referenced
	// company cannot be removed.
	refs, err := uc.orders.CountByCompany(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		uc.logger.Warn("refusing to delete referenced company",
			zap.String("company_id", id),
			zap.Int("referencing_orders", refs),
		)
		return company.ErrInUse
	}

	return uc.repo.Delete(ctx, id)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/ShivamTripathi028/ibis-stock-sync/internal/company"
	"github.com/ShivamTripathi028/ibis-stock-sync/internal/company/dto"
	"github.com/ShivamTripathi028/ibis-stock-sync/internal/model"
	"github.com/ShivamTripathi028/ibis-stock-sync/internal/order"
	"go.uber.org/zap"
)

type fakeCompanyRepo struct {
	company.Repository
	byID    map[string]*model.Company
	deleted []string
}

func (f *fakeCompanyRepo) Create(_ context.Context, c *model.Company) error {
	cp := *c
	f.byID[c.ID] = &cp
	return nil
}

func (f *fakeCompanyRepo) FindByID(_ context.Context, id string) (*model.Company, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCompanyRepo) Update(_ context.Context, c *model.Company) error {
	cp := *c
	f.byID[c.ID] = &cp
	return nil
}

func (f *fakeCompanyRepo) Delete(_ context.Context, id string) error {
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeOrderRepo struct {
	order.Repository
	refs map[string]int
}

func (f *fakeOrderRepo) CountByCompany(_ context.Context, companyID string) (int, error) {
	return f.refs[companyID], nil
}

func TestDeleteRejectsReferencedCompany(t *testing.T) {
	repo := &fakeCompanyRepo{byID: map[string]*model.Company{
		"c1": {ID: "c1", Name: "ACME"},
	}}
	orders := &fakeOrderRepo{refs: map[string]int{"c1": 2}}
	uc := NewCompanyUseCase(repo, orders, zap.NewNop())

	err := uc.Delete(context.Background(), "c1")
	if !errors.Is(err, company.ErrInUse) {
		t.Fatalf("err = %v, want ErrInUse", err)
	}
	if len(repo.deleted) != 0 {
		t.Fatal("referenced company was deleted")
	}
}

func TestDeleteUnreferencedCompany(t *testing.T) {
	repo := &fakeCompanyRepo{byID: map[string]*model.Company{
		"c1": {ID: "c1", Name: "ACME"},
	}}
	orders := &fakeOrderRepo{refs: map[string]int{}}
	uc := NewCompanyUseCase(repo, orders, zap.NewNop())

	if err := uc.Delete(context.Background(), "c1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != "c1" {
		t.Fatalf("deleted = %v, want [c1]", repo.deleted)
	}

	if err := uc.Delete(context.Background(), "c1"); !errors.Is(err, company.ErrNotFound) {
		t.Fatalf("second delete: err = %v, want ErrNotFound", err)
	}
}

func TestUpdateCompany(t *testing.T) {
	contact := "old@acme.test"
	repo := &fakeCompanyRepo{byID: map[string]*model.Company{
		"c1": {ID: "c1", Name: "ACME", Contact: &contact},
	}}
	uc := NewCompanyUseCase(repo, &fakeOrderRepo{refs: map[string]int{}}, zap.NewNop())

	c, err := uc.Update(context.Background(), "c1", &dto.CompanyInput{Name: "ACME Corp"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Name != "ACME Corp" {
		t.Fatalf("name = %q, want ACME Corp", c.Name)
	}
	if c.Contact != nil {
		t.Fatalf("empty contact should clear the field, got %q", *c.Contact)
	}

	if _, err := uc.Update(context.Background(), "ghost", &dto.CompanyInput{Name: "X"}); !errors.Is(err, company.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

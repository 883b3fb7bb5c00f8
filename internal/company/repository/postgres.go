package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ShivamTripathi028/ibis-stock-sync/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, c *model.Company) error {
	query := `
        INSERT INTO companies (id, name, contact, created_at)
        VALUES (:id, :name, :contact, :created_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Company, error) {
	var c model.Company
	query := `SELECT * FROM companies WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &c, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Company, error) {
	var companies []model.Company
	query := `SELECT * FROM companies ORDER BY name ASC`
	err := r.DB.SelectContext(ctx, &companies, query)
	return companies, err
}

func (r *PGRepository) Update(ctx context.Context, c *model.Company) error {
	query := `UPDATE companies SET name = :name, contact = :contact WHERE id = :id`
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM companies WHERE id = $1`, id)
	return err
}

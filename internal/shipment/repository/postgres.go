package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ShivamTripathi028/ibis-stock-sync/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, s *model.Shipment) error {
	query := `
        INSERT INTO shipments (id, shipment_number, status, notes, created_at, updated_at)
        VALUES (:id, :shipment_number, :status, :notes, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, s)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Shipment, error) {
	var s model.Shipment
	query := `SELECT * FROM shipments WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &s, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Shipment, error) {
	var shipments []model.Shipment
	query := `SELECT * FROM shipments ORDER BY created_at DESC`
	err := r.DB.SelectContext(ctx, &shipments, query)
	return shipments, err
}

func (r *PGRepository) UpdateStatus(ctx context.Context, id string, status model.ShipmentStatus, updatedAt time.Time) error {
	query := `UPDATE shipments SET status = $1, updated_at = $2 WHERE id = $3`
	_, err := r.DB.ExecContext(ctx, query, status, updatedAt, id)
	return err
}

// MarkReceived covers the shipment write and the Amazon-order cascade with a
// single transaction so a partial failure cannot leave the shipment received
// while its orders stay pending.
func (r *PGRepository) MarkReceived(ctx context.Context, id string, updatedAt time.Time) (int64, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`UPDATE shipments SET status = $1, updated_at = $2 WHERE id = $3`,
		model.ShipmentReceived, updatedAt, id,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update shipment status: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE orders SET status = $1 WHERE shipment_id = $2 AND destination_type = $3 AND status = $4`,
		model.OrderInStock, id, model.DestinationAmazon, model.OrderPending,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to cascade amazon orders: %w", err)
	}

	cascaded, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return cascaded, nil
}

func (r *PGRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `SELECT count(*) FROM shipments`)
	return count, err
}

func (r *PGRepository) CountByStatus(ctx context.Context, status model.ShipmentStatus) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `SELECT count(*) FROM shipments WHERE status = $1`, status)
	return count, err
}

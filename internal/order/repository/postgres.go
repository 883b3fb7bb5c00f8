package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/ShivamTripathi028/ibis-stock-sync/internal/model"
	"github.com/ShivamTripathi028/ibis-stock-sync/internal/order/dto"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, o *model.Order) error {
	query := `
        INSERT INTO orders (id, shipment_id, sku, model_number, product_name, quantity, destination_type, company_id, status, notes, created_at)
        VALUES (:id, :shipment_id, :sku, :model_number, :product_name, :quantity, :destination_type, :company_id, :status, :notes, :created_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, o)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Order, error) {
	var o model.Order
	query := `SELECT * FROM orders WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &o, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *PGRepository) FindByShipment(ctx context.Context, shipmentID string) ([]model.Order, error) {
	var orders []model.Order
	query := `
        SELECT o.*, c.name AS company_name
        FROM orders o
        LEFT JOIN companies c ON c.id = o.company_id
        WHERE o.shipment_id = $1
        ORDER BY o.created_at ASC
    `
	err := r.DB.SelectContext(ctx, &orders, query, shipmentID)
	return orders, err
}

func (r *PGRepository) FindCompanyOrders(ctx context.Context, f *dto.CompanyOrderFilters) ([]model.Order, error) {
	conditions := []string{"o.destination_type = :destination_type"}
	args := map[string]interface{}{
		"destination_type": model.DestinationCompany,
	}

	if f.CompanyID != "" {
		conditions = append(conditions, "o.company_id = :company_id")
		args["company_id"] = f.CompanyID
	}

	query := `
        SELECT o.*, c.name AS company_name, s.shipment_number AS shipment_number
        FROM orders o
        LEFT JOIN companies c ON c.id = o.company_id
        JOIN shipments s ON s.id = o.shipment_id
        WHERE ` + strings.Join(conditions, " AND ") + `
        ORDER BY o.created_at DESC
    `

	return r.selectNamed(ctx, query, args)
}

func (r *PGRepository) FindAmazonOrders(ctx context.Context, f *dto.AmazonOrderFilters) ([]model.Order, error) {
	conditions := []string{"o.destination_type = :destination_type"}
	args := map[string]interface{}{
		"destination_type": model.DestinationAmazon,
	}

	if f.Status != "" {
		conditions = append(conditions, "o.status = :status")
		args["status"] = f.Status
	}
	if f.Search != "" {
		conditions = append(conditions, "(o.sku ILIKE :search OR o.product_name ILIKE :search)")
		args["search"] = "%" + f.Search + "%"
	}

	query := `
        SELECT o.*, s.shipment_number AS shipment_number
        FROM orders o
        JOIN shipments s ON s.id = o.shipment_id
        WHERE ` + strings.Join(conditions, " AND ") + `
        ORDER BY o.created_at DESC
    `

	return r.selectNamed(ctx, query, args)
}

func (r *PGRepository) selectNamed(ctx context.Context, query string, args map[string]interface{}) ([]model.Order, error) {
	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer nstmt.Close()

	var orders []model.Order
	if err := nstmt.SelectContext(ctx, &orders, args); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *PGRepository) UpdateStatus(ctx context.Context, id string, status model.OrderStatus, notes *string) error {
	query := `UPDATE orders SET status = $1, notes = $2 WHERE id = $3`
	_, err := r.DB.ExecContext(ctx, query, status, notes, id)
	return err
}

func (r *PGRepository) CountByDestination(ctx context.Context, d model.Destination) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `SELECT count(*) FROM orders WHERE destination_type = $1`, d)
	return count, err
}

func (r *PGRepository) CountByDestinationAndStatus(ctx context.Context, d model.Destination, s model.OrderStatus) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count,
		`SELECT count(*) FROM orders WHERE destination_type = $1 AND status = $2`, d, s)
	return count, err
}

func (r *PGRepository) CountByCompany(ctx context.Context, companyID string) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `SELECT count(*) FROM orders WHERE company_id = $1`, companyID)
	return count, err
}

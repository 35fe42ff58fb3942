package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CellkomStore/cellkom_store_app/internal/apperrors"
	"github.com/CellkomStore/cellkom_store_app/internal/core/domain"
	portsrepo "github.com/CellkomStore/cellkom_store_app/internal/core/ports/repositories"
)

type PgxServiceOrderRepository struct {
	db *pgxpool.Pool
}

func newPgxServiceOrderRepository(db *pgxpool.Pool) portsrepo.ServiceOrderRepositoryFacade {
	return &PgxServiceOrderRepository{db: db}
}

var _ portsrepo.ServiceOrderRepositoryFacade = (*PgxServiceOrderRepository)(nil)

const serviceOrderColumns = `
	order_id, order_no, customer_id, customer_name, device_name, complaint, diagnosis,
	status, received_date, completed_date, service_fee, initial_payment,
	created_at, created_by, last_updated_at, last_updated_by`

func scanServiceOrder(row pgx.Row) (*domain.ServiceOrder, error) {
	var o domain.ServiceOrder
	err := row.Scan(
		&o.OrderID,
		&o.OrderNo,
		&o.CustomerID,
		&o.CustomerName,
		&o.DeviceName,
		&o.Complaint,
		&o.Diagnosis,
		&o.Status,
		&o.ReceivedDate,
		&o.CompletedDate,
		&o.ServiceFee,
		&o.InitialPayment,
		&o.CreatedAt,
		&o.CreatedBy,
		&o.LastUpdatedAt,
		&o.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *PgxServiceOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.ServiceOrder, error) {
	query := `SELECT ` + serviceOrderColumns + ` FROM service_orders WHERE order_id = $1;`
	order, err := scanServiceOrder(r.db.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: service order %s", apperrors.ErrNotFound, orderID)
		}
		return nil, fmt.Errorf("failed to find service order %s: %w", orderID, err)
	}
	return order, nil
}

func (r *PgxServiceOrderRepository) FindOrderByOrderNo(ctx context.Context, orderNo string) (*domain.ServiceOrder, error) {
	query := `SELECT ` + serviceOrderColumns + ` FROM service_orders WHERE order_no = $1;`
	order, err := scanServiceOrder(r.db.QueryRow(ctx, query, orderNo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: service order %s", apperrors.ErrNotFound, orderNo)
		}
		return nil, fmt.Errorf("failed to find service order by number %s: %w", orderNo, err)
	}
	return order, nil
}

func (r *PgxServiceOrderRepository) ListOrders(ctx context.Context, status *domain.ServiceStatus, limit int, offset int) ([]domain.ServiceOrder, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + serviceOrderColumns + ` FROM service_orders`
	args := []any{}
	if status != nil {
		args = append(args, *status)
		query += ` WHERE status = $1`
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(` ORDER BY received_date DESC LIMIT $%d OFFSET $%d;`, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query service orders: %w", err)
	}
	defer rows.Close()

	orders := []domain.ServiceOrder{}
	for rows.Next() {
		order, err := scanServiceOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service order row: %w", err)
		}
		orders = append(orders, *order)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating service order rows: %w", rows.Err())
	}
	return orders, nil
}

func (r *PgxServiceOrderRepository) SaveOrder(ctx context.Context, order domain.ServiceOrder) error {
	query := `
		INSERT INTO service_orders (` + serviceOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.db.Exec(ctx, query,
		order.OrderID,
		order.OrderNo,
		order.CustomerID,
		order.CustomerName,
		order.DeviceName,
		order.Complaint,
		order.Diagnosis,
		order.Status,
		order.ReceivedDate,
		order.CompletedDate,
		order.ServiceFee,
		order.InitialPayment,
		order.CreatedAt,
		order.CreatedBy,
		order.LastUpdatedAt,
		order.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save service order: %w", err)
	}
	return nil
}

func (r *PgxServiceOrderRepository) UpdateOrder(ctx context.Context, order domain.ServiceOrder) error {
	query := `
		UPDATE service_orders
		SET diagnosis = $1, status = $2, completed_date = $3, service_fee = $4,
		    initial_payment = $5, last_updated_at = $6, last_updated_by = $7
		WHERE order_id = $8;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		order.Diagnosis,
		order.Status,
		order.CompletedDate,
		order.ServiceFee,
		order.InitialPayment,
		order.LastUpdatedAt,
		order.LastUpdatedBy,
		order.OrderID,
	)
	if err != nil {
		return fmt.Errorf("failed to update service order %s: %w", order.OrderID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: service order %s", apperrors.ErrNotFound, order.OrderID)
	}
	return nil
}

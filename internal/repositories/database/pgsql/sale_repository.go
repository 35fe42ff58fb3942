package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CellkomStore/cellkom_store_app/internal/apperrors"
	"github.com/CellkomStore/cellkom_store_app/internal/core/domain"
	portsrepo "github.com/CellkomStore/cellkom_store_app/internal/core/ports/repositories"
	"github.com/CellkomStore/cellkom_store_app/internal/utils/pagination"
)

type PgxSaleRepository struct {
	BaseRepository
}

func newPgxSaleRepository(db *pgxpool.Pool) portsrepo.SaleRepositoryFacade {
	return &PgxSaleRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

const saleColumns = `
	sale_id, invoice_no, customer_id, customer_name, sale_date, total_amount,
	initial_payment, payment_method, created_at, created_by, last_updated_at, last_updated_by`

func scanSale(row pgx.Row) (*domain.Sale, error) {
	var s domain.Sale
	err := row.Scan(
		&s.SaleID,
		&s.InvoiceNo,
		&s.CustomerID,
		&s.CustomerName,
		&s.SaleDate,
		&s.TotalAmount,
		&s.InitialPayment,
		&s.PaymentMethod,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE sale_id = $1;`
	sale, err := scanSale(r.Pool.QueryRow(ctx, query, saleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: sale %s", apperrors.ErrNotFound, saleID)
		}
		return nil, fmt.Errorf("failed to find sale %s: %w", saleID, err)
	}

	items, err := r.loadItems(ctx, []string{saleID})
	if err != nil {
		return nil, err
	}
	sale.Items = items[saleID]
	return sale, nil
}

func (r *PgxSaleRepository) ListSales(ctx context.Context, limit int, nextToken *string) ([]domain.Sale, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + saleColumns + ` FROM sales`
	args := []any{}

	if nextToken != nil && *nextToken != "" {
		tokenDate, tokenID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		query += ` WHERE (sale_date, sale_id) < ($1, $2)`
		args = append(args, tokenDate, tokenID)
	}

	args = append(args, limit+1)
	query += fmt.Sprintf(` ORDER BY sale_date DESC, sale_id DESC LIMIT $%d;`, len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	sales := []domain.Sale{}
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan sale row: %w", err)
		}
		sales = append(sales, *sale)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating sale rows: %w", rows.Err())
	}

	var token *string
	if len(sales) > limit {
		sales = sales[:limit]
		last := sales[len(sales)-1]
		encoded := pagination.EncodeToken(last.SaleDate, last.SaleID)
		token = &encoded
	}

	if len(sales) == 0 {
		return sales, nil, nil
	}

	saleIDs := make([]string, len(sales))
	for i := range sales {
		saleIDs[i] = sales[i].SaleID
	}
	items, err := r.loadItems(ctx, saleIDs)
	if err != nil {
		return nil, nil, err
	}
	for i := range sales {
		sales[i].Items = items[sales[i].SaleID]
	}

	return sales, token, nil
}

// SaveSale persists the sale header, its line items and the matching stock
// decrements in one transaction. The stock_qty >= 0 constraint aborts the
// whole sale when any product runs short, leaving no partial state behind.
func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	insertSale := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, insertSale,
		sale.SaleID,
		sale.InvoiceNo,
		sale.CustomerID,
		sale.CustomerName,
		sale.SaleDate,
		sale.TotalAmount,
		sale.InitialPayment,
		sale.PaymentMethod,
		sale.CreatedAt,
		sale.CreatedBy,
		sale.LastUpdatedAt,
		sale.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("%w: sale %s", apperrors.ErrDuplicate, sale.SaleID)
		}
		return fmt.Errorf("failed to insert sale: %w", err)
	}

	insertItem := `
		INSERT INTO sale_items (sale_item_id, sale_id, product_id, name, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	decrementStock := `
		UPDATE products SET stock_qty = stock_qty - $1, last_updated_at = NOW(), last_updated_by = $2
		WHERE product_id = $3;
	`
	for _, item := range sale.Items {
		_, err = tx.Exec(ctx, insertItem,
			item.SaleItemID,
			item.SaleID,
			item.ProductID,
			item.Name,
			item.Quantity,
			item.UnitPrice,
			item.Subtotal,
		)
		if err != nil {
			return fmt.Errorf("failed to insert sale item: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, decrementStock, item.Quantity, sale.CreatedBy, item.ProductID)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == checkViolationCode {
				return fmt.Errorf("%w: insufficient stock for product %s", apperrors.ErrValidation, item.ProductID)
			}
			return fmt.Errorf("failed to decrement stock for product %s: %w", item.ProductID, err)
		}
		if cmdTag.RowsAffected() == 0 {
			return fmt.Errorf("%w: product %s", apperrors.ErrNotFound, item.ProductID)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxSaleRepository) loadItems(ctx context.Context, saleIDs []string) (map[string][]domain.SaleItem, error) {
	query := `
		SELECT sale_item_id, sale_id, product_id, name, quantity, unit_price, subtotal
		FROM sale_items
		WHERE sale_id = ANY($1)
		ORDER BY sale_item_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, saleIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query sale items: %w", err)
	}
	defer rows.Close()

	items := make(map[string][]domain.SaleItem)
	for rows.Next() {
		var item domain.SaleItem
		err := rows.Scan(
			&item.SaleItemID,
			&item.SaleID,
			&item.ProductID,
			&item.Name,
			&item.Quantity,
			&item.UnitPrice,
			&item.Subtotal,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale item row: %w", err)
		}
		items[item.SaleID] = append(items[item.SaleID], item)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating sale item rows: %w", rows.Err())
	}
	return items, nil
}

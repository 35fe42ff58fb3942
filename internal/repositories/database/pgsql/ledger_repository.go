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

const uniqueViolationCode = "23505"

type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(db *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

const ledgerEntryColumns = `
	entry_id, kind, customer_name, transaction_date, total_amount, paid_amount,
	remaining_amount, status, details, created_at, created_by, last_updated_at, last_updated_by`

func scanLedgerEntry(row pgx.Row) (*domain.LedgerEntry, error) {
	var e domain.LedgerEntry
	err := row.Scan(
		&e.EntryID,
		&e.Kind,
		&e.CustomerName,
		&e.TransactionDate,
		&e.TotalAmount,
		&e.PaidAmount,
		&e.RemainingAmount,
		&e.Status,
		&e.Details,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PgxLedgerRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerEntryColumns + ` FROM ledger_entries WHERE entry_id = $1;`
	entry, err := scanLedgerEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: ledger entry %s", apperrors.ErrNotFound, entryID)
		}
		return nil, fmt.Errorf("failed to find ledger entry %s: %w", entryID, err)
	}

	payments, err := r.loadPayments(ctx, []string{entryID})
	if err != nil {
		return nil, err
	}
	entry.Payments = payments[entryID]
	return entry, nil
}

func (r *PgxLedgerRepository) ListEntries(ctx context.Context, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	query := `SELECT ` + ledgerEntryColumns + ` FROM ledger_entries`
	args := []any{}

	if nextToken != nil && *nextToken != "" {
		tokenDate, tokenID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		query += ` WHERE (transaction_date, entry_id) < ($1, $2)`
		args = append(args, tokenDate, tokenID)
	}

	query += ` ORDER BY transaction_date DESC, entry_id DESC`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT $%d`, len(args)+1)
		args = append(args, limit+1) // One extra row signals another page
	}
	query += `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query ledger entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.LedgerEntry{}
	for rows.Next() {
		entry, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan ledger entry row: %w", err)
		}
		entries = append(entries, *entry)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating ledger entry rows: %w", rows.Err())
	}

	var token *string
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		encoded := pagination.EncodeToken(last.TransactionDate, last.EntryID)
		token = &encoded
	}

	if len(entries) == 0 {
		return entries, nil, nil
	}

	entryIDs := make([]string, len(entries))
	for i := range entries {
		entryIDs[i] = entries[i].EntryID
	}
	payments, err := r.loadPayments(ctx, entryIDs)
	if err != nil {
		return nil, nil, err
	}
	for i := range entries {
		entries[i].Payments = payments[entries[i].EntryID]
	}

	return entries, token, nil
}

func (r *PgxLedgerRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	insertEntry := `
		INSERT INTO ledger_entries (` + ledgerEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, insertEntry,
		entry.EntryID,
		entry.Kind,
		entry.CustomerName,
		entry.TransactionDate,
		entry.TotalAmount,
		entry.PaidAmount,
		entry.RemainingAmount,
		entry.Status,
		entry.Details,
		entry.CreatedAt,
		entry.CreatedBy,
		entry.LastUpdatedAt,
		entry.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("%w: ledger entry %s", apperrors.ErrDuplicate, entry.EntryID)
		}
		return fmt.Errorf("failed to insert ledger entry: %w", err)
	}

	for _, payment := range entry.Payments {
		if err := insertPayment(ctx, tx, payment); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// AppendPayment updates the entry's derived amounts and inserts the payment
// row in a single transaction, so the history can never drift from the
// totals it must sum to.
func (r *PgxLedgerRepository) AppendPayment(ctx context.Context, entry domain.LedgerEntry, payment domain.Payment) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	updateEntry := `
		UPDATE ledger_entries
		SET paid_amount = $1, remaining_amount = $2, status = $3,
		    last_updated_at = $4, last_updated_by = $5
		WHERE entry_id = $6;
	`
	cmdTag, err := tx.Exec(ctx, updateEntry,
		entry.PaidAmount,
		entry.RemainingAmount,
		entry.Status,
		entry.LastUpdatedAt,
		entry.LastUpdatedBy,
		entry.EntryID,
	)
	if err != nil {
		return fmt.Errorf("failed to update ledger entry %s: %w", entry.EntryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: ledger entry %s", apperrors.ErrNotFound, entry.EntryID)
	}

	if err := insertPayment(ctx, tx, payment); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func insertPayment(ctx context.Context, tx pgx.Tx, payment domain.Payment) error {
	query := `
		INSERT INTO ledger_payments (payment_id, entry_id, amount, paid_at, received_by)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := tx.Exec(ctx, query,
		payment.PaymentID,
		payment.EntryID,
		payment.Amount,
		payment.PaidAt,
		payment.ReceivedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert ledger payment: %w", err)
	}
	return nil
}

// loadPayments fetches the payment history for the given entries, keyed by
// entry ID and ordered by payment time.
func (r *PgxLedgerRepository) loadPayments(ctx context.Context, entryIDs []string) (map[string][]domain.Payment, error) {
	query := `
		SELECT payment_id, entry_id, amount, paid_at, received_by
		FROM ledger_payments
		WHERE entry_id = ANY($1)
		ORDER BY paid_at ASC, payment_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger payments: %w", err)
	}
	defer rows.Close()

	payments := make(map[string][]domain.Payment)
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.PaymentID, &p.EntryID, &p.Amount, &p.PaidAt, &p.ReceivedBy); err != nil {
			return nil, fmt.Errorf("failed to scan ledger payment row: %w", err)
		}
		payments[p.EntryID] = append(payments[p.EntryID], p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating ledger payment rows: %w", rows.Err())
	}
	return payments, nil
}

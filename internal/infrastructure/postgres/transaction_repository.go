package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/facturacion-api/internal/domain"
	"github.com/jhoicas/facturacion-api/internal/domain/entity"
	"github.com/jhoicas/facturacion-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

const transactionColumns = `id, user_id, description, category, date, type, amount, total, additional_taxes, created_at, updated_at`

// TransactionRepo implementación de TransactionRepository.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador.
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste un ingreso o gasto.
func (r *TransactionRepo) Create(ctx context.Context, t *entity.Transaction) error {
	taxes, err := encodeTaxesColumn(t.AdditionalTaxes)
	if err != nil {
		return fmt.Errorf("encode transaction taxes: %w", err)
	}
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::jsonb, $10, $11)`
	_, err = r.q.Exec(ctx, query,
		t.ID, t.UserID, t.Description, nullIfEmpty(t.Category), t.Date, t.Type,
		t.Amount, t.Total, taxes, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// Update reemplaza los campos editables.
func (r *TransactionRepo) Update(ctx context.Context, t *entity.Transaction) error {
	taxes, err := encodeTaxesColumn(t.AdditionalTaxes)
	if err != nil {
		return fmt.Errorf("encode transaction taxes: %w", err)
	}
	query := `
		UPDATE transactions
		SET description = $3, category = $4, date = $5, type = $6,
		    amount = $7, total = $8, additional_taxes = $9::jsonb, updated_at = $10
		WHERE id = $1 AND user_id = $2`
	tag, err := r.q.Exec(ctx, query,
		t.ID, t.UserID, t.Description, nullIfEmpty(t.Category), t.Date, t.Type,
		t.Amount, t.Total, taxes, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la transacción del usuario.
func (r *TransactionRepo) Delete(ctx context.Context, userID, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	tag, err := r.q.Exec(ctx, `DELETE FROM transactions WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID obtiene una transacción del usuario; nil, nil si no existe.
func (r *TransactionRepo) GetByID(ctx context.Context, userID, id string) (*entity.Transaction, error) {
	if !validID(id) {
		return nil, nil
	}
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1 AND user_id = $2`
	t, err := scanTransaction(r.q.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return t, nil
}

// ListByUserID lista las transacciones del usuario, más recientes primero.
func (r *TransactionRepo) ListByUserID(ctx context.Context, userID string) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1 ORDER BY date DESC, created_at DESC`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func scanTransaction(row pgx.Row) (*entity.Transaction, error) {
	var t entity.Transaction
	var category *string
	var rawTaxes []byte
	if err := row.Scan(
		&t.ID, &t.UserID, &t.Description, &category, &t.Date, &t.Type,
		&t.Amount, &t.Total, &rawTaxes, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if category != nil {
		t.Category = *category
	}
	t.AdditionalTaxes = decodeTaxesColumn("transactions", t.ID, rawTaxes)
	return &t, nil
}

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

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

const quoteColumns = `id, user_id, number, client_name, date, status, subtotal, total, additional_taxes, created_at, updated_at`

// QuoteRepo implementación de QuoteRepository.
type QuoteRepo struct {
	q Querier
}

// NewQuoteRepository construye el adaptador.
func NewQuoteRepository(q Querier) *QuoteRepo {
	return &QuoteRepo{q: q}
}

func (r *QuoteRepo) Create(ctx context.Context, qt *entity.Quote) error {
	taxes, err := encodeTaxesColumn(qt.AdditionalTaxes)
	if err != nil {
		return fmt.Errorf("encode quote taxes: %w", err)
	}
	query := `
		INSERT INTO quotes (` + quoteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::jsonb, $10, $11)`
	_, err = r.q.Exec(ctx, query,
		qt.ID, qt.UserID, qt.Number, qt.ClientName, qt.Date, qt.Status,
		qt.Subtotal, qt.Total, taxes, qt.CreatedAt, qt.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: número de presupuesto %q ya existe", domain.ErrConflict, qt.Number)
		}
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

func (r *QuoteRepo) Update(ctx context.Context, qt *entity.Quote) error {
	taxes, err := encodeTaxesColumn(qt.AdditionalTaxes)
	if err != nil {
		return fmt.Errorf("encode quote taxes: %w", err)
	}
	query := `
		UPDATE quotes
		SET number = $3, client_name = $4, date = $5, status = $6,
		    subtotal = $7, total = $8, additional_taxes = $9::jsonb, updated_at = $10
		WHERE id = $1 AND user_id = $2`
	tag, err := r.q.Exec(ctx, query,
		qt.ID, qt.UserID, qt.Number, qt.ClientName, qt.Date, qt.Status,
		qt.Subtotal, qt.Total, taxes, qt.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: número de presupuesto %q ya existe", domain.ErrConflict, qt.Number)
		}
		return fmt.Errorf("update quote: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *QuoteRepo) Delete(ctx context.Context, userID, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	tag, err := r.q.Exec(ctx, `DELETE FROM quotes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *QuoteRepo) GetByID(ctx context.Context, userID, id string) (*entity.Quote, error) {
	if !validID(id) {
		return nil, nil
	}
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE id = $1 AND user_id = $2`
	qt, err := scanQuote(r.q.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote: %w", err)
	}
	return qt, nil
}

func (r *QuoteRepo) ListByUserID(ctx context.Context, userID string) ([]*entity.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE user_id = $1 ORDER BY date DESC, created_at DESC`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Quote
	for rows.Next() {
		qt, err := scanQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		list = append(list, qt)
	}
	return list, rows.Err()
}

func scanQuote(row pgx.Row) (*entity.Quote, error) {
	var qt entity.Quote
	var rawTaxes []byte
	if err := row.Scan(
		&qt.ID, &qt.UserID, &qt.Number, &qt.ClientName, &qt.Date, &qt.Status,
		&qt.Subtotal, &qt.Total, &rawTaxes, &qt.CreatedAt, &qt.UpdatedAt,
	); err != nil {
		return nil, err
	}
	qt.AdditionalTaxes = decodeTaxesColumn("quotes", qt.ID, rawTaxes)
	return &qt, nil
}

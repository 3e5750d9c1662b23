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

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

const invoiceColumns = `id, user_id, number, client_name, date, status, subtotal, total, additional_taxes, created_at, updated_at`

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la factura con sus líneas de impuestos en JSONB.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	taxes, err := encodeTaxesColumn(inv.AdditionalTaxes)
	if err != nil {
		return fmt.Errorf("encode invoice taxes: %w", err)
	}
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::jsonb, $10, $11)`
	_, err = r.q.Exec(ctx, query,
		inv.ID, inv.UserID, inv.Number, inv.ClientName, inv.Date, inv.Status,
		inv.Subtotal, inv.Total, taxes, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: número de factura %q ya existe", domain.ErrConflict, inv.Number)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// Update reemplaza los campos editables de la factura.
func (r *InvoiceRepo) Update(ctx context.Context, inv *entity.Invoice) error {
	taxes, err := encodeTaxesColumn(inv.AdditionalTaxes)
	if err != nil {
		return fmt.Errorf("encode invoice taxes: %w", err)
	}
	query := `
		UPDATE invoices
		SET number           = $3,
		    client_name      = $4,
		    date             = $5,
		    status           = $6,
		    subtotal         = $7,
		    total            = $8,
		    additional_taxes = $9::jsonb,
		    updated_at       = $10
		WHERE id = $1 AND user_id = $2`
	tag, err := r.q.Exec(ctx, query,
		inv.ID, inv.UserID, inv.Number, inv.ClientName, inv.Date, inv.Status,
		inv.Subtotal, inv.Total, taxes, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: número de factura %q ya existe", domain.ErrConflict, inv.Number)
		}
		return fmt.Errorf("update invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la factura del usuario.
func (r *InvoiceRepo) Delete(ctx context.Context, userID, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	tag, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID obtiene una factura del usuario por ID; nil, nil si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, userID, id string) (*entity.Invoice, error) {
	if !validID(id) {
		return nil, nil
	}
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1 AND user_id = $2`
	inv, err := scanInvoice(r.q.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// ListByUserID lista todas las facturas del usuario, más recientes primero.
func (r *InvoiceRepo) ListByUserID(ctx context.Context, userID string) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE user_id = $1 ORDER BY date DESC, created_at DESC`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	var rawTaxes []byte
	if err := row.Scan(
		&inv.ID, &inv.UserID, &inv.Number, &inv.ClientName, &inv.Date, &inv.Status,
		&inv.Subtotal, &inv.Total, &rawTaxes, &inv.CreatedAt, &inv.UpdatedAt,
	); err != nil {
		return nil, err
	}
	inv.AdditionalTaxes = decodeTaxesColumn("invoices", inv.ID, rawTaxes)
	return &inv, nil
}

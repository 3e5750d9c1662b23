package repository

import (
	"context"

	"github.com/jhoicas/facturacion-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice.
// Todas las operaciones van acotadas al usuario propietario.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	Update(ctx context.Context, invoice *entity.Invoice) error
	// Delete devuelve domain.ErrNotFound si la factura no existe o no es del usuario.
	Delete(ctx context.Context, userID, id string) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, userID, id string) (*entity.Invoice, error)
	// ListByUserID devuelve todas las facturas del usuario, más recientes primero.
	// Las líneas de impuestos mal formadas se devuelven vacías.
	ListByUserID(ctx context.Context, userID string) ([]*entity.Invoice, error)
}

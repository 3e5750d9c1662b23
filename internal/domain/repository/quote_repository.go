package repository

import (
	"context"

	"github.com/jhoicas/facturacion-api/internal/domain/entity"
)

// QuoteRepository puerto de persistencia para presupuestos.
type QuoteRepository interface {
	Create(ctx context.Context, quote *entity.Quote) error
	Update(ctx context.Context, quote *entity.Quote) error
	Delete(ctx context.Context, userID, id string) error
	GetByID(ctx context.Context, userID, id string) (*entity.Quote, error)
	ListByUserID(ctx context.Context, userID string) ([]*entity.Quote, error)
}

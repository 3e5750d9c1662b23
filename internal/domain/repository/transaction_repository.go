package repository

import (
	"context"

	"github.com/jhoicas/facturacion-api/internal/domain/entity"
)

// TransactionRepository puerto de persistencia para ingresos y gastos.
type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	Update(ctx context.Context, tx *entity.Transaction) error
	Delete(ctx context.Context, userID, id string) error
	GetByID(ctx context.Context, userID, id string) (*entity.Transaction, error)
	ListByUserID(ctx context.Context, userID string) ([]*entity.Transaction, error)
}

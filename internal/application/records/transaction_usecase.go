package records

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/facturacion-api/internal/application/dto"
	"github.com/jhoicas/facturacion-api/internal/domain"
	"github.com/jhoicas/facturacion-api/internal/domain/entity"
	"github.com/jhoicas/facturacion-api/internal/domain/repository"
)

// ListTransactions devuelve ingresos y gastos del usuario.
func (uc *UseCase) ListTransactions(ctx context.Context, userID string) ([]dto.TransactionResponse, error) {
	list, err := uc.transactions.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listar transacciones: %w", err)
	}
	out := make([]dto.TransactionResponse, 0, len(list))
	for _, t := range list {
		out = append(out, toTransactionResponse(t))
	}
	return out, nil
}

// CreateTransaction registra un ingreso o gasto.
func (uc *UseCase) CreateTransaction(ctx context.Context, userID string, in dto.TransactionRequest) (*dto.TransactionResponse, error) {
	t := &entity.Transaction{ID: uuid.New().String(), UserID: userID}
	if err := applyTransaction(t, in); err != nil {
		return nil, err
	}
	now := uc.now()
	t.CreatedAt, t.UpdatedAt = now, now

	if err := uc.transactions.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("crear transacción: %w", err)
	}
	uc.notifier.Notify(ctx, userID, entity.EventTransactionCreated)
	out := toTransactionResponse(t)
	return &out, nil
}

// UpdateTransaction reemplaza los datos de una transacción existente del usuario.
func (uc *UseCase) UpdateTransaction(ctx context.Context, userID, id string, in dto.TransactionRequest) (*dto.TransactionResponse, error) {
	var updated *entity.Transaction
	err := uc.tx.Run(ctx, func(s repository.Stores) error {
		t, err := s.Transactions.GetByID(ctx, userID, id)
		if err != nil {
			return err
		}
		if t == nil {
			return domain.ErrNotFound
		}
		if err := applyTransaction(t, in); err != nil {
			return err
		}
		t.UpdatedAt = uc.now()
		if err := s.Transactions.Update(ctx, t); err != nil {
			return err
		}
		updated = t
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("actualizar transacción: %w", err)
	}
	uc.notifier.Notify(ctx, userID, entity.EventTransactionUpdated)
	out := toTransactionResponse(updated)
	return &out, nil
}

// DeleteTransaction elimina la transacción del usuario.
func (uc *UseCase) DeleteTransaction(ctx context.Context, userID, id string) error {
	if err := uc.transactions.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("eliminar transacción: %w", err)
	}
	uc.notifier.Notify(ctx, userID, entity.EventTransactionDeleted)
	return nil
}

func applyTransaction(t *entity.Transaction, in dto.TransactionRequest) error {
	if !entity.ValidTransactionType(in.Type) {
		return fmt.Errorf("%w: tipo %q", domain.ErrInvalidInput, in.Type)
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return err
	}
	taxes, err := taxesFromDTO(in.AdditionalTaxes)
	if err != nil {
		return err
	}
	t.Description = in.Description
	t.Category = in.Category
	t.Date = date
	t.Type = in.Type
	t.Amount = in.Amount
	t.AdditionalTaxes = taxes
	t.Total = totalOf(in.Amount, taxes)
	return nil
}

func toTransactionResponse(t *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:              t.ID,
		Description:     t.Description,
		Category:        t.Category,
		Date:            t.Date.Format(dto.DateLayout),
		Type:            t.Type,
		Amount:          t.Amount,
		Total:           t.Total,
		AdditionalTaxes: taxesToDTO(t.AdditionalTaxes),
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

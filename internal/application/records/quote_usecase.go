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

// ListQuotes devuelve los presupuestos del usuario.
func (uc *UseCase) ListQuotes(ctx context.Context, userID string) ([]dto.QuoteResponse, error) {
	list, err := uc.quotes.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listar presupuestos: %w", err)
	}
	out := make([]dto.QuoteResponse, 0, len(list))
	for _, q := range list {
		out = append(out, toQuoteResponse(q))
	}
	return out, nil
}

// CreateQuote persiste un presupuesto nuevo.
func (uc *UseCase) CreateQuote(ctx context.Context, userID string, in dto.QuoteRequest) (*dto.QuoteResponse, error) {
	q := &entity.Quote{ID: uuid.New().String(), UserID: userID}
	if err := applyQuote(q, in); err != nil {
		return nil, err
	}
	now := uc.now()
	q.CreatedAt, q.UpdatedAt = now, now

	if err := uc.quotes.Create(ctx, q); err != nil {
		return nil, fmt.Errorf("crear presupuesto: %w", err)
	}
	uc.notifier.Notify(ctx, userID, entity.EventQuoteCreated)
	out := toQuoteResponse(q)
	return &out, nil
}

// UpdateQuote reemplaza los datos de un presupuesto; así se marca aceptado o rechazado.
func (uc *UseCase) UpdateQuote(ctx context.Context, userID, id string, in dto.QuoteRequest) (*dto.QuoteResponse, error) {
	var updated *entity.Quote
	err := uc.tx.Run(ctx, func(s repository.Stores) error {
		q, err := s.Quotes.GetByID(ctx, userID, id)
		if err != nil {
			return err
		}
		if q == nil {
			return domain.ErrNotFound
		}
		if err := applyQuote(q, in); err != nil {
			return err
		}
		q.UpdatedAt = uc.now()
		if err := s.Quotes.Update(ctx, q); err != nil {
			return err
		}
		updated = q
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("actualizar presupuesto: %w", err)
	}
	uc.notifier.Notify(ctx, userID, entity.EventQuoteUpdated)
	out := toQuoteResponse(updated)
	return &out, nil
}

// DeleteQuote elimina el presupuesto del usuario.
func (uc *UseCase) DeleteQuote(ctx context.Context, userID, id string) error {
	if err := uc.quotes.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("eliminar presupuesto: %w", err)
	}
	uc.notifier.Notify(ctx, userID, entity.EventQuoteDeleted)
	return nil
}

func applyQuote(q *entity.Quote, in dto.QuoteRequest) error {
	if !entity.ValidQuoteStatus(in.Status) {
		return fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, in.Status)
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return err
	}
	taxes, err := taxesFromDTO(in.AdditionalTaxes)
	if err != nil {
		return err
	}
	q.Number = in.Number
	q.ClientName = in.ClientName
	q.Date = date
	q.Status = in.Status
	q.Subtotal = in.Subtotal
	q.AdditionalTaxes = taxes
	q.Total = totalOf(in.Subtotal, taxes)
	return nil
}

func toQuoteResponse(q *entity.Quote) dto.QuoteResponse {
	return dto.QuoteResponse{
		ID:              q.ID,
		Number:          q.Number,
		ClientName:      q.ClientName,
		Date:            q.Date.Format(dto.DateLayout),
		Status:          q.Status,
		Subtotal:        q.Subtotal,
		Total:           q.Total,
		AdditionalTaxes: taxesToDTO(q.AdditionalTaxes),
		CreatedAt:       q.CreatedAt,
		UpdatedAt:       q.UpdatedAt,
	}
}

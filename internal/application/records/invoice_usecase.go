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

// ListInvoices devuelve las facturas del usuario.
func (uc *UseCase) ListInvoices(ctx context.Context, userID string) ([]dto.InvoiceResponse, error) {
	list, err := uc.invoices.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listar facturas: %w", err)
	}
	out := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, toInvoiceResponse(inv))
	}
	return out, nil
}

// CreateInvoice valida, calcula el total y persiste la factura.
func (uc *UseCase) CreateInvoice(ctx context.Context, userID string, in dto.InvoiceRequest) (*dto.InvoiceResponse, error) {
	inv := &entity.Invoice{ID: uuid.New().String(), UserID: userID}
	if err := applyInvoice(inv, in); err != nil {
		return nil, err
	}
	now := uc.now()
	inv.CreatedAt, inv.UpdatedAt = now, now

	if err := uc.invoices.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("crear factura: %w", err)
	}
	uc.notifier.Notify(ctx, userID, entity.EventInvoiceCreated)
	out := toInvoiceResponse(inv)
	return &out, nil
}

// UpdateInvoice reemplaza los datos de una factura existente del usuario.
func (uc *UseCase) UpdateInvoice(ctx context.Context, userID, id string, in dto.InvoiceRequest) (*dto.InvoiceResponse, error) {
	var updated *entity.Invoice
	err := uc.tx.Run(ctx, func(s repository.Stores) error {
		inv, err := s.Invoices.GetByID(ctx, userID, id)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		if err := applyInvoice(inv, in); err != nil {
			return err
		}
		inv.UpdatedAt = uc.now()
		if err := s.Invoices.Update(ctx, inv); err != nil {
			return err
		}
		updated = inv
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("actualizar factura: %w", err)
	}
	uc.notifier.Notify(ctx, userID, entity.EventInvoiceUpdated)
	out := toInvoiceResponse(updated)
	return &out, nil
}

// DeleteInvoice elimina la factura; domain.ErrNotFound si no existe o no es del usuario.
func (uc *UseCase) DeleteInvoice(ctx context.Context, userID, id string) error {
	if err := uc.invoices.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("eliminar factura: %w", err)
	}
	uc.notifier.Notify(ctx, userID, entity.EventInvoiceDeleted)
	return nil
}

func applyInvoice(inv *entity.Invoice, in dto.InvoiceRequest) error {
	if !entity.ValidInvoiceStatus(in.Status) {
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
	inv.Number = in.Number
	inv.ClientName = in.ClientName
	inv.Date = date
	inv.Status = in.Status
	inv.Subtotal = in.Subtotal
	inv.AdditionalTaxes = taxes
	inv.Total = totalOf(in.Subtotal, taxes)
	return nil
}

func toInvoiceResponse(inv *entity.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:              inv.ID,
		Number:          inv.Number,
		ClientName:      inv.ClientName,
		Date:            inv.Date.Format(dto.DateLayout),
		Status:          inv.Status,
		Subtotal:        inv.Subtotal,
		Total:           inv.Total,
		AdditionalTaxes: taxesToDTO(inv.AdditionalTaxes),
		CreatedAt:       inv.CreatedAt,
		UpdatedAt:       inv.UpdatedAt,
	}
}

package repository

import (
	"context"
	"time"

	"github.com/jhoicas/facturacion-api/internal/domain/entity"
)

// DashboardStateRepository persiste la marca de cambios por usuario.
type DashboardStateRepository interface {
	// Touch registra un evento en una sola operación atómica (upsert).
	// El UpdatedAt almacenado avanza estrictamente aunque at no sea mayor que el anterior.
	Touch(ctx context.Context, userID, eventType string, at time.Time) (*entity.DashboardState, error)

	// GetOrCreate devuelve el estado, creándolo con entity.EventInitial si no existía.
	GetOrCreate(ctx context.Context, userID string, at time.Time) (*entity.DashboardState, error)
}

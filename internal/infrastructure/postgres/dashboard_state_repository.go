package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/facturacion-api/internal/domain/entity"
	"github.com/jhoicas/facturacion-api/internal/domain/repository"
)

var _ repository.DashboardStateRepository = (*DashboardStateRepo)(nil)

// DashboardStateRepo marca de cambios por usuario en la tabla dashboard_state.
type DashboardStateRepo struct {
	q Querier
}

// NewDashboardStateRepository construye el adaptador.
func NewDashboardStateRepository(q Querier) *DashboardStateRepo {
	return &DashboardStateRepo{q: q}
}

// Touch hace el upsert en una sola sentencia. updated_at nunca retrocede ni se repite:
// si el reloj no avanzó al menos 1ms desde la última marca, se usa anterior + 1ms.
func (r *DashboardStateRepo) Touch(ctx context.Context, userID, eventType string, at time.Time) (*entity.DashboardState, error) {
	const query = `
		INSERT INTO dashboard_state (user_id, last_event_type, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET last_event_type = EXCLUDED.last_event_type,
		    updated_at      = GREATEST(EXCLUDED.updated_at, dashboard_state.updated_at + INTERVAL '1 millisecond')
		RETURNING user_id, last_event_type, updated_at`
	var st entity.DashboardState
	err := r.q.QueryRow(ctx, query, userID, eventType, at.UTC().Truncate(time.Millisecond)).
		Scan(&st.UserID, &st.LastEventType, &st.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert dashboard_state: %w", err)
	}
	return &st, nil
}

// GetOrCreate inserta el estado inicial si falta (sin pisar uno existente) y lo lee.
func (r *DashboardStateRepo) GetOrCreate(ctx context.Context, userID string, at time.Time) (*entity.DashboardState, error) {
	const insert = `
		INSERT INTO dashboard_state (user_id, last_event_type, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO NOTHING`
	if _, err := r.q.Exec(ctx, insert, userID, entity.EventInitial, at.UTC().Truncate(time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init dashboard_state: %w", err)
	}

	const query = `SELECT user_id, last_event_type, updated_at FROM dashboard_state WHERE user_id = $1`
	var st entity.DashboardState
	if err := r.q.QueryRow(ctx, query, userID).Scan(&st.UserID, &st.LastEventType, &st.UpdatedAt); err != nil {
		return nil, fmt.Errorf("get dashboard_state: %w", err)
	}
	return &st, nil
}

package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/facturacion-api/internal/domain/entity"
	"github.com/jhoicas/facturacion-api/internal/domain/repository"
)

// StateNotifier mantiene la marca de cambios por usuario que sondean los clientes.
type StateNotifier struct {
	repo repository.DashboardStateRepository
	now  func() time.Time
	log  zerolog.Logger
}

// NewStateNotifier construye el notificador sobre el repositorio de estado.
func NewStateNotifier(repo repository.DashboardStateRepository, log zerolog.Logger) *StateNotifier {
	return &StateNotifier{repo: repo, now: time.Now, log: log}
}

// WithClock sustituye el reloj (tests).
func (n *StateNotifier) WithClock(now func() time.Time) *StateNotifier {
	n.now = now
	return n
}

// Touch registra eventType para el usuario y avanza su updated_at.
func (n *StateNotifier) Touch(ctx context.Context, userID, eventType string) (*entity.DashboardState, error) {
	st, err := n.repo.Touch(ctx, userID, eventType, n.now())
	if err != nil {
		return nil, fmt.Errorf("dashboard state touch: %w", err)
	}
	return st, nil
}

// Notify es Touch para las rutas de escritura: un fallo se registra y no se propaga.
func (n *StateNotifier) Notify(ctx context.Context, userID, eventType string) {
	if _, err := n.Touch(ctx, userID, eventType); err != nil {
		n.log.Warn().Err(err).
			Str("user_id", userID).
			Str("event", eventType).
			Msg("no se pudo actualizar el estado del dashboard")
	}
}

// Read devuelve el estado del usuario; si no existía lo crea con entity.EventInitial.
func (n *StateNotifier) Read(ctx context.Context, userID string) (*entity.DashboardState, error) {
	st, err := n.repo.GetOrCreate(ctx, userID, n.now())
	if err != nil {
		return nil, fmt.Errorf("dashboard state read: %w", err)
	}
	return st, nil
}

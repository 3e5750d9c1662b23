// Package dashboard contiene los casos de uso del dashboard fiscal: resumen por periodo
// con caché en memoria y la marca de cambios que sondean los clientes.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/facturacion-api/internal/application/dto"
	"github.com/jhoicas/facturacion-api/internal/domain/entity"
	"github.com/jhoicas/facturacion-api/internal/domain/fiscal"
	"github.com/jhoicas/facturacion-api/internal/domain/repository"
)

// LastEventUnavailable se devuelve en el estado cuando el almacenamiento falla.
const LastEventUnavailable = "unavailable"

// DashboardUseCase calcula el resumen fiscal de un usuario para un periodo.
//
// Flujo: caché → (fallo o refresco forzado) lectura concurrente de facturas,
// transacciones y presupuestos → fiscal.Aggregate → DTO → caché.
type DashboardUseCase struct {
	invoices     repository.InvoiceRepository
	transactions repository.TransactionRepository
	quotes       repository.QuoteRepository
	cache        *ResultCache
	notifier     *StateNotifier
	policy       fiscal.FallbackPolicy
	now          func() time.Time
	log          zerolog.Logger
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	invoices repository.InvoiceRepository,
	transactions repository.TransactionRepository,
	quotes repository.QuoteRepository,
	cache *ResultCache,
	notifier *StateNotifier,
	policy fiscal.FallbackPolicy,
	log zerolog.Logger,
) *DashboardUseCase {
	return &DashboardUseCase{
		invoices:     invoices,
		transactions: transactions,
		quotes:       quotes,
		cache:        cache,
		notifier:     notifier,
		policy:       policy,
		now:          time.Now,
		log:          log,
	}
}

// GetSummary devuelve el resumen del periodo. Nunca falla: ante un error de
// almacenamiento registra el error y devuelve el esquema a cero con year/period.
func (uc *DashboardUseCase) GetSummary(
	ctx context.Context,
	userID, year, period string,
	forceRefresh bool,
) dto.DashboardSummaryDTO {
	spec := fiscal.ParsePeriod(year, period)
	if !spec.Valid() {
		uc.log.Warn().
			Str("user_id", userID).
			Str("year", year).
			Str("period", period).
			Msg("periodo no reconocido, resumen vacío")
		return uc.empty(spec)
	}

	key := CacheKey{UserID: userID, Year: spec.Year, Period: spec.Period}
	out, hit, err := uc.cache.GetOrCompute(ctx, key, forceRefresh, func(ctx context.Context) (dto.DashboardSummaryDTO, error) {
		return uc.compute(ctx, userID, spec)
	})
	if err != nil {
		uc.log.Error().Err(err).
			Str("user_id", userID).
			Str("year", spec.Year).
			Str("period", spec.Period).
			Msg("no se pudo calcular el resumen fiscal")
		return uc.empty(spec)
	}
	out.Cached = hit
	return out
}

func (uc *DashboardUseCase) compute(ctx context.Context, userID string, spec fiscal.PeriodSpec) (dto.DashboardSummaryDTO, error) {
	var (
		invoices     []*entity.Invoice
		transactions []*entity.Transaction
		quotes       []*entity.Quote
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if invoices, err = uc.invoices.ListByUserID(gctx, userID); err != nil {
			return fmt.Errorf("facturas: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if transactions, err = uc.transactions.ListByUserID(gctx, userID); err != nil {
			return fmt.Errorf("transacciones: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if quotes, err = uc.quotes.ListByUserID(gctx, userID); err != nil {
			return fmt.Errorf("presupuestos: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return dto.DashboardSummaryDTO{}, fmt.Errorf("dashboard: %w", err)
	}

	s := fiscal.Aggregate(invoices, transactions, quotes, spec, uc.policy)
	return toSummaryDTO(s, spec, uc.now()), nil
}

// empty resumen a cero; no se guarda en caché.
func (uc *DashboardUseCase) empty(spec fiscal.PeriodSpec) dto.DashboardSummaryDTO {
	return toSummaryDTO(fiscal.Aggregate(nil, nil, nil, spec, uc.policy), spec, uc.now())
}

// GetStatus devuelve la marca de cambios del usuario en milisegundos.
// Si el almacenamiento falla responde updated_at=0 para que el cliente no refresque en bucle.
func (uc *DashboardUseCase) GetStatus(ctx context.Context, userID string) dto.DashboardStatusDTO {
	st, err := uc.notifier.Read(ctx, userID)
	if err != nil {
		uc.log.Error().Err(err).Str("user_id", userID).Msg("no se pudo leer el estado del dashboard")
		return dto.DashboardStatusDTO{UpdatedAt: 0, LastEvent: LastEventUnavailable}
	}
	return dto.DashboardStatusDTO{UpdatedAt: st.UpdatedAt.UnixMilli(), LastEvent: st.LastEventType}
}

// ClearCache borra los resúmenes cacheados del usuario y avanza su marca de cambios.
func (uc *DashboardUseCase) ClearCache(ctx context.Context, userID string) dto.CacheClearDTO {
	n := uc.cache.ClearUser(userID)
	uc.notifier.Notify(ctx, userID, entity.EventCacheCleared)
	uc.log.Info().Str("user_id", userID).Int("entries", n).Msg("caché del dashboard vaciada")
	return dto.CacheClearDTO{EntriesDeleted: n}
}

func toSummaryDTO(s fiscal.Summary, spec fiscal.PeriodSpec, generatedAt time.Time) dto.DashboardSummaryDTO {
	quarters := make([]dto.QuarterDTO, len(s.ByQuarter))
	for i, q := range s.ByQuarter {
		quarters[i] = dto.QuarterDTO{
			Quarter:        q.Quarter,
			Income:         q.Income,
			Expenses:       q.Expenses,
			VATRepercutido: q.VATRepercutido,
			VATSoportado:   q.VATSoportado,
		}
	}
	return dto.DashboardSummaryDTO{
		Year:        spec.Year,
		Period:      spec.Period,
		PeriodLabel: spec.Label(),
		GeneratedAt: generatedAt,

		Income:         s.Income,
		IncomeGross:    s.IncomeGross,
		VATRepercutido: s.VATRepercutido,
		IRPFIncome:     s.IRPFIncome,

		Expenses:      s.Expenses,
		ExpensesGross: s.ExpensesGross,
		VATSoportado:  s.VATSoportado,
		IRPFExpenses:  s.IRPFExpenses,

		VATBalance:          s.VATBalance,
		VATBalanceSigned:    s.VATBalanceSigned,
		IRPFBalance:         s.IRPFBalance,
		GrossBalance:        s.GrossBalance,
		VATAdjustedBalance:  s.VATAdjustedBalance,
		IRPFAdjustedBalance: s.IRPFAdjustedBalance,
		NetBalance:          s.NetBalance,

		PendingInvoicesCount: s.PendingInvoicesCount,
		PendingInvoicesTotal: s.PendingInvoicesTotal,
		PendingQuotesCount:   s.PendingQuotesCount,
		PendingQuotesTotal:   s.PendingQuotesTotal,
		AcceptedQuotesCount:  s.AcceptedQuotesCount,
		RejectedQuotesCount:  s.RejectedQuotesCount,
		QuoteConversionRate:  s.QuoteConversionRate,

		InvoiceCount:           s.InvoiceCount,
		PaidInvoiceCount:       s.PaidInvoiceCount,
		TransactionCount:       s.TransactionCount,
		ExpenseCount:           s.ExpenseCount,
		IncomeTransactionCount: s.IncomeTransactionCount,
		QuoteCount:             s.QuoteCount,

		ByQuarter: quarters,
	}
}

package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturacion-api/internal/application/dashboard"
	"github.com/jhoicas/facturacion-api/internal/application/dto"
	"github.com/jhoicas/facturacion-api/internal/application/records"
	"github.com/jhoicas/facturacion-api/internal/domain/entity"
	"github.com/jhoicas/facturacion-api/internal/domain/fiscal"
	"github.com/jhoicas/facturacion-api/internal/domain/repository"
	apphttp "github.com/jhoicas/facturacion-api/internal/interfaces/http"
)

// newAPI monta la API completa sobre almacenes en memoria.
func newAPI(t *testing.T) *fiber.App {
	t.Helper()
	invoices := newMemRepo(func(v *entity.Invoice) (string, string) { return v.UserID, v.ID })
	transactions := newMemRepo(func(v *entity.Transaction) (string, string) { return v.UserID, v.ID })
	quotes := newMemRepo(func(v *entity.Quote) (string, string) { return v.UserID, v.ID })
	stores := repository.Stores{Invoices: invoices, Transactions: transactions, Quotes: quotes}

	notifier := dashboard.NewStateNotifier(&memState{states: map[string]entity.DashboardState{}}, zerolog.Nop())
	dashboardUC := dashboard.NewDashboardUseCase(
		invoices, transactions, quotes,
		dashboard.NewResultCache(dashboard.DefaultCacheTTL), notifier, fiscal.FallbackPolicy{}, zerolog.Nop(),
	)
	recordsUC := records.NewUseCase(invoices, transactions, quotes, inlineTx{stores}, notifier)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{DashboardUC: dashboardUC, RecordsUC: recordsUC, JWTSecret: testJWTSecret})
	return app
}

func call(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", bearer(t, testUserID))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func paidInvoice() map[string]any {
	return map[string]any{
		"number":      "F-2025-001",
		"client_name": "Talleres Ruiz S.L.",
		"date":        "2025-05-05",
		"status":      "paid",
		"subtotal":    1000,
		"additional_taxes": []map[string]any{
			{"name": "IVA", "amount": 21, "isPercentage": true},
		},
	}
}

// ── Dashboard ─────────────────────────────────────────────────────────────────

func TestDashboard_SinDatosDevuelveEsquemaCompleto(t *testing.T) {
	app := newAPI(t)
	resp := call(t, app, http.MethodGet, "/api/stats/dashboard?year=2025&period=q2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[dto.DashboardSummaryDTO](t, resp)
	assert.Equal(t, "q2", out.Period)
	assert.True(t, out.Income.IsZero())
	assert.Len(t, out.ByQuarter, 4)
}

func TestDashboard_PeriodoInvalidoTambienResponde200(t *testing.T) {
	app := newAPI(t)
	resp := call(t, app, http.MethodGet, "/api/stats/dashboard?year=2025&period=semestre", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[dto.DashboardSummaryDTO](t, resp)
	assert.True(t, out.NetBalance.IsZero())
}

func TestDashboard_FacturaCreadaAvanzaEstadoYResumen(t *testing.T) {
	app := newAPI(t)

	before := decode[dto.DashboardStatusDTO](t, call(t, app, http.MethodGet, "/api/dashboard-status", nil))
	assert.Equal(t, entity.EventInitial, before.LastEvent)

	// primer resumen queda en caché
	first := decode[dto.DashboardSummaryDTO](t, call(t, app, http.MethodGet, "/api/stats/dashboard?year=2025&period=all", nil))
	assert.True(t, first.Income.IsZero())

	time.Sleep(2 * time.Millisecond)
	resp := call(t, app, http.MethodPost, "/api/invoices", paidInvoice())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.InvoiceResponse](t, resp)
	assert.Equal(t, "1210", created.Total.String())

	after := decode[dto.DashboardStatusDTO](t, call(t, app, http.MethodGet, "/api/dashboard-status", nil))
	assert.Equal(t, entity.EventInvoiceCreated, after.LastEvent)
	assert.Greater(t, after.UpdatedAt, before.UpdatedAt)

	cached := decode[dto.DashboardSummaryDTO](t, call(t, app, http.MethodGet, "/api/stats/dashboard?year=2025&period=all", nil))
	assert.True(t, cached.Cached, "la escritura no invalida la caché")
	assert.True(t, cached.Income.IsZero())

	fresh := decode[dto.DashboardSummaryDTO](t, call(t, app, http.MethodGet, "/api/stats/dashboard?year=2025&period=all&forceRefresh=true", nil))
	assert.False(t, fresh.Cached)
	assert.Equal(t, "1000", fresh.Income.String())
	assert.Equal(t, "210", fresh.VATRepercutido.String())
}

func TestDashboard_LimpiarCache(t *testing.T) {
	app := newAPI(t)
	call(t, app, http.MethodGet, "/api/stats/dashboard?year=2025&period=all", nil).Body.Close()
	call(t, app, http.MethodGet, "/api/stats/dashboard?year=2025&period=q1", nil).Body.Close()

	resp := call(t, app, http.MethodPost, "/api/stats/dashboard-cached/clear", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.CacheClearDTO](t, resp)
	assert.Equal(t, 2, out.EntriesDeleted)

	st := decode[dto.DashboardStatusDTO](t, call(t, app, http.MethodGet, "/api/dashboard-status", nil))
	assert.Equal(t, entity.EventCacheCleared, st.LastEvent)
}

// ── Registros ─────────────────────────────────────────────────────────────────

func TestInvoices_ValidacionDevuelveCampos(t *testing.T) {
	app := newAPI(t)
	body := paidInvoice()
	delete(body, "number")
	body["status"] = "borrador"

	resp := call(t, app, http.MethodPost, "/api/invoices", body)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	out := decode[dto.ValidationErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", out.Code)
	assert.Equal(t, "required", out.Fields["number"])
	assert.Equal(t, "oneof", out.Fields["status"])
}

func TestInvoices_PorcentajeFueraDeRango(t *testing.T) {
	app := newAPI(t)
	body := paidInvoice()
	body["additional_taxes"] = []map[string]any{{"name": "IVA", "amount": 150, "isPercentage": true}}

	resp := call(t, app, http.MethodPost, "/api/invoices", body)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestInvoices_ActualizarYEliminar(t *testing.T) {
	app := newAPI(t)
	created := decode[dto.InvoiceResponse](t, call(t, app, http.MethodPost, "/api/invoices", paidInvoice()))

	body := paidInvoice()
	body["status"] = "pending"
	resp := call(t, app, http.MethodPut, "/api/invoices/"+created.ID, body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[dto.InvoiceResponse](t, resp)
	assert.Equal(t, "pending", updated.Status)

	resp = call(t, app, http.MethodDelete, "/api/invoices/"+created.ID, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = call(t, app, http.MethodDelete, "/api/invoices/"+created.ID, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	list := decode[[]dto.InvoiceResponse](t, call(t, app, http.MethodGet, "/api/invoices", nil))
	assert.Empty(t, list)
}

func TestTransactions_Crear(t *testing.T) {
	app := newAPI(t)
	resp := call(t, app, http.MethodPost, "/api/transactions", map[string]any{
		"description": "Material de oficina",
		"date":        "2025-02-10",
		"type":        "expense",
		"amount":      100,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	out := decode[dto.TransactionResponse](t, resp)
	assert.Equal(t, "100", out.Total.String())
}

func TestQuotes_ActualizarInexistente404(t *testing.T) {
	app := newAPI(t)
	resp := call(t, app, http.MethodPut, "/api/quotes/no-existe", map[string]any{
		"number":      "P-001",
		"client_name": "Estudio Norte",
		"date":        "2025-03-01",
		"status":      "accepted",
		"subtotal":    500,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

package fiscal_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturacion-api/internal/domain"
	"github.com/jhoicas/facturacion-api/internal/domain/entity"
	"github.com/jhoicas/facturacion-api/internal/domain/fiscal"
)

var tolerance = decimal.RequireFromString("0.01")

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func iva(rate string) entity.AdditionalTax {
	return entity.AdditionalTax{Name: "IVA", Amount: dec(rate), IsPercentage: true}
}

func irpf(rate string) entity.AdditionalTax {
	return entity.AdditionalTax{Name: "IRPF", Amount: dec(rate), IsPercentage: true}
}

func assertMoney(t *testing.T, want string, got decimal.Decimal, msg string) {
	t.Helper()
	diff := got.Sub(dec(want)).Abs()
	assert.True(t, diff.LessThanOrEqual(tolerance), "%s: esperado %s, obtenido %s", msg, want, got.String())
}

func TestExtractTaxes_SoloIVA(t *testing.T) {
	b := fiscal.ExtractTaxes(dec("1210"), []entity.AdditionalTax{iva("21")})

	assertMoney(t, "1000", b.BaseAmount, "base")
	assertMoney(t, "210", b.VATAmount, "IVA")
	assert.True(t, b.IRPFAmount.IsZero())
}

// Para cualquier total con IVA porcentual, base + IVA == total (tolerancia 0.01).
func TestExtractTaxes_BaseMasIVAIgualTotal(t *testing.T) {
	totals := []string{"0", "0.01", "1", "99.99", "100", "121", "1234.56", "999999.99", "-50"}
	rates := []string{"4", "10", "21", "0"}
	for _, total := range totals {
		for _, rate := range rates {
			b := fiscal.ExtractTaxes(dec(total), []entity.AdditionalTax{iva(rate)})
			sum := b.BaseAmount.Add(b.VATAmount)
			assert.True(t, sum.Sub(dec(total)).Abs().LessThanOrEqual(tolerance),
				"total=%s iva=%s: base+iva=%s", total, rate, sum)
		}
	}
}

// IRPF negativo porcentual sobre base 1000 → 150 retenidos, en positivo.
func TestExtractTaxes_IRPFNegativoSobreBase(t *testing.T) {
	taxes := []entity.AdditionalTax{irpf("-15")}
	total := fiscal.TotalFromBase(dec("1000"), taxes)
	assertMoney(t, "850", total, "total con retención")

	b := fiscal.ExtractTaxes(total, taxes)
	assertMoney(t, "1000", b.BaseAmount, "base")
	assertMoney(t, "150", b.IRPFAmount, "IRPF")
}

func TestExtractTaxes_IVAeIRPF(t *testing.T) {
	taxes := []entity.AdditionalTax{iva("21"), irpf("-15")}
	total := fiscal.TotalFromBase(dec("1000"), taxes)
	assertMoney(t, "1060", total, "1000 + 210 - 150")

	b := fiscal.ExtractTaxes(total, taxes)
	assertMoney(t, "1000", b.BaseAmount, "base")
	assertMoney(t, "210", b.VATAmount, "IVA")
	assertMoney(t, "150", b.IRPFAmount, "IRPF")
}

// El IRPF es retención aunque venga con signo positivo.
func TestExtractTaxes_IRPFPositivoSeTrataComoRetencion(t *testing.T) {
	b := fiscal.ExtractTaxes(dec("850"), []entity.AdditionalTax{irpf("15")})
	assertMoney(t, "1000", b.BaseAmount, "base")
	assertMoney(t, "150", b.IRPFAmount, "IRPF")
}

func TestExtractTaxes_ImportesFijos(t *testing.T) {
	taxes := []entity.AdditionalTax{
		{Name: "IVA", Amount: dec("42"), IsPercentage: false},
		{Name: "IRPF", Amount: dec("-30"), IsPercentage: false},
	}
	b := fiscal.ExtractTaxes(dec("212"), taxes)
	assertMoney(t, "200", b.BaseAmount, "base = 212 - 42 + 30")
	assertMoney(t, "42", b.VATAmount, "IVA")
	assertMoney(t, "30", b.IRPFAmount, "IRPF")
}

func TestExtractTaxes_SinImpuestos(t *testing.T) {
	b := fiscal.ExtractTaxes(dec("500"), nil)
	assert.True(t, b.BaseAmount.Equal(dec("500")))
	assert.True(t, b.VATAmount.IsZero())
	assert.True(t, b.IRPFAmount.IsZero())
	assert.True(t, b.OtherTaxAmount.IsZero())
}

// Duplicados por nombre: gana la última línea.
func TestExtractTaxes_DuplicadosGanaElUltimo(t *testing.T) {
	b := fiscal.ExtractTaxes(dec("1100"), []entity.AdditionalTax{iva("21"), iva("10")})
	assertMoney(t, "1000", b.BaseAmount, "base con IVA 10%")
	assertMoney(t, "100", b.VATAmount, "IVA 10%")
}

func TestExtractTaxes_OtrosRecargos(t *testing.T) {
	taxes := []entity.AdditionalTax{iva("21"), {Name: "Recargo equivalencia", Amount: dec("5.2"), IsPercentage: true}}
	total := fiscal.TotalFromBase(dec("100"), taxes)
	b := fiscal.ExtractTaxes(total, taxes)
	assertMoney(t, "100", b.BaseAmount, "base")
	assertMoney(t, "21", b.VATAmount, "IVA")
	assertMoney(t, "5.2", b.OtherTaxAmount, "recargo")
}

func TestFallbackPolicy_SoloSinLineas(t *testing.T) {
	policy := fiscal.FallbackPolicy{VATRate: dec("21"), IRPFRate: dec("15")}

	b := policy.Extract(dec("1210"), nil, false)
	assertMoney(t, "1000", b.BaseAmount, "base estimada")
	assertMoney(t, "210", b.VATAmount, "IVA estimado")
	assert.True(t, b.IRPFAmount.IsZero(), "sin retención si withholding=false")

	b = policy.Extract(dec("1060"), nil, true)
	assertMoney(t, "1000", b.BaseAmount, "base estimada con retención")
	assertMoney(t, "150", b.IRPFAmount, "IRPF estimado")

	// con líneas explícitas la política no interviene
	b = policy.Extract(dec("1100"), []entity.AdditionalTax{iva("10")}, true)
	assertMoney(t, "100", b.VATAmount, "IVA explícito")
	assert.True(t, b.IRPFAmount.IsZero())
}

func TestFallbackPolicy_Desactivada(t *testing.T) {
	var policy fiscal.FallbackPolicy
	assert.False(t, policy.Enabled())

	b := policy.Extract(dec("1210"), nil, true)
	assert.True(t, b.BaseAmount.Equal(dec("1210")))
}

func TestKindOf(t *testing.T) {
	cases := map[string]fiscal.TaxKind{
		"IVA":            fiscal.TaxVAT,
		"iva":            fiscal.TaxVAT,
		"I.V.A.":         fiscal.TaxVAT,
		"IVA 21%":        fiscal.TaxVAT,
		"IVA reducido":   fiscal.TaxVAT,
		"IRPF":           fiscal.TaxIRPF,
		"irpf 15%":       fiscal.TaxIRPF,
		"Retención IRPF": fiscal.TaxIRPF,
		"Ecotasa":        fiscal.TaxOther,
		"":               fiscal.TaxOther,
		"Tasa IVA":       fiscal.TaxOther,
	}
	for name, want := range cases {
		assert.Equal(t, want, fiscal.KindOf(name), "nombre %q", name)
	}
}

func TestCanonicalTaxName(t *testing.T) {
	assert.Equal(t, "RETENCION IRPF", fiscal.CanonicalTaxName("  Retención   irpf "))
	assert.Equal(t, "IVA", fiscal.CanonicalTaxName("i.v.a."))
}

func TestDecodeTaxes(t *testing.T) {
	taxes, err := fiscal.DecodeTaxes([]byte(`[{"name":"IVA","amount":21,"isPercentage":true},{"name":"IRPF","amount":"-15","isPercentage":true}]`))
	require.NoError(t, err)
	require.Len(t, taxes, 2)
	assert.Equal(t, "IVA", taxes[0].Name)
	assert.True(t, taxes[1].Amount.Equal(dec("-15")))

	// serializado dentro de un string JSON
	taxes, err = fiscal.DecodeTaxes([]byte(`"[{\"name\":\"IVA\",\"amount\":10,\"isPercentage\":true}]"`))
	require.NoError(t, err)
	require.Len(t, taxes, 1)

	for _, empty := range []string{"", "null", "  "} {
		taxes, err = fiscal.DecodeTaxes([]byte(empty))
		require.NoError(t, err)
		assert.Nil(t, taxes)
	}
}

func TestDecodeTaxes_MalFormado(t *testing.T) {
	inputs := []string{
		`{not json`,
		`{"name":"IVA"}`,
		`[{"name":"","amount":21,"isPercentage":true}]`,
		`[{"name":"   ","amount":21,"isPercentage":true}]`,
		`[{"name":"IVA","amount":250,"isPercentage":true}]`,
		`[{"name":"IVA","amount":"abc","isPercentage":true}]`,
	}
	for _, in := range inputs {
		_, err := fiscal.DecodeTaxes([]byte(in))
		require.Error(t, err, "entrada %q", in)
		assert.True(t, errors.Is(err, domain.ErrInvalidTaxes), "entrada %q debe envolver ErrInvalidTaxes", in)
	}
}

func TestEncodeTaxes_NilComoArray(t *testing.T) {
	raw, err := fiscal.EncodeTaxes(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

package fiscal

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturacion-api/internal/domain/entity"
)

// TaxBreakdown descomposición de un importe con impuestos incluidos.
// IRPFAmount se expresa siempre en positivo (importe retenido).
type TaxBreakdown struct {
	BaseAmount     decimal.Decimal
	VATAmount      decimal.Decimal
	IRPFAmount     decimal.Decimal
	OtherTaxAmount decimal.Decimal // recargos con nombre libre, con su signo
}

// ExtractTaxes separa la base imponible de los impuestos a partir del total.
//
// La base se recupera invirtiendo la invariante total = base + Σ contribuciones:
//
//	base = (total - Σ fijos) / (1 + Σ porcentajes/100)
//
// donde el porcentaje de IRPF cuenta en negativo. Con solo IVA queda
// base = total / (1 + iva/100) y vat = total - base. El IRPF se calcula sobre la base.
// Sin líneas de impuesto, base = total. No redondea.
func ExtractTaxes(total decimal.Decimal, taxes []entity.AdditionalTax) TaxBreakdown {
	taxes = effectiveTaxes(taxes)
	if len(taxes) == 0 {
		return TaxBreakdown{BaseAmount: total}
	}

	var pctSum, fixedSum decimal.Decimal
	for _, t := range taxes {
		v := signed(KindOf(t.Name), t.Amount)
		if t.IsPercentage {
			pctSum = pctSum.Add(v)
		} else {
			fixedSum = fixedSum.Add(v)
		}
	}

	base := total.Sub(fixedSum)
	if divisor := decimal.NewFromInt(1).Add(pctSum.Div(hundred)); divisor.IsPositive() {
		base = base.Div(divisor)
	}

	out := TaxBreakdown{BaseAmount: base}
	for _, t := range taxes {
		kind := KindOf(t.Name)
		v := t.Amount
		if t.IsPercentage {
			v = base.Mul(t.Amount).Div(hundred)
		}
		switch kind {
		case TaxVAT:
			out.VATAmount = out.VATAmount.Add(v)
		case TaxIRPF:
			out.IRPFAmount = out.IRPFAmount.Add(v.Abs())
		default:
			out.OtherTaxAmount = out.OtherTaxAmount.Add(v)
		}
	}
	return out
}

// FallbackPolicy tipos planos estimados para registros sin ninguna línea de impuesto.
// Un tipo cero desactiva su parte del fallback.
type FallbackPolicy struct {
	VATRate  decimal.Decimal // p. ej. 21
	IRPFRate decimal.Decimal // p. ej. 15, solo para ingresos facturados
}

// Enabled indica si la política aplica algún tipo.
func (p FallbackPolicy) Enabled() bool {
	return p.VATRate.IsPositive() || p.IRPFRate.IsPositive()
}

// Extract descompone total con sus impuestos; si el registro no trae ninguna línea
// y la política está activa, usa los tipos planos como si fueran líneas explícitas.
// withholding indica si al registro le aplica retención de IRPF (facturas cobradas).
func (p FallbackPolicy) Extract(total decimal.Decimal, taxes []entity.AdditionalTax, withholding bool) TaxBreakdown {
	if len(taxes) > 0 || !p.Enabled() {
		return ExtractTaxes(total, taxes)
	}
	var synthetic []entity.AdditionalTax
	if p.VATRate.IsPositive() {
		synthetic = append(synthetic, entity.AdditionalTax{Name: entity.TaxNameIVA, Amount: p.VATRate, IsPercentage: true})
	}
	if withholding && p.IRPFRate.IsPositive() {
		synthetic = append(synthetic, entity.AdditionalTax{Name: entity.TaxNameIRPF, Amount: p.IRPFRate.Neg(), IsPercentage: true})
	}
	return ExtractTaxes(total, synthetic)
}

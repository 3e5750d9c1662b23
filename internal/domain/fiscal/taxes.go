// Package fiscal contiene el núcleo puro del dashboard fiscal: descomposición de
// impuestos (IVA/IRPF), filtrado por periodo y agregación del resumen.
// No tiene dependencias de infraestructura.
package fiscal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/facturacion-api/internal/domain"
	"github.com/jhoicas/facturacion-api/internal/domain/entity"
)

var (
	hundred        = decimal.NewFromInt(100)
	maxPercentRate = decimal.NewFromInt(100)
	minPercentRate = decimal.NewFromInt(-100)
)

// TaxKind clasifica una línea de impuesto por su nombre.
type TaxKind int

const (
	TaxOther TaxKind = iota
	TaxVAT
	TaxIRPF
)

var validate = newTaxValidator()

func newTaxValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		t := sl.Current().Interface().(entity.AdditionalTax)
		if strings.TrimSpace(t.Name) == "" {
			sl.ReportError(t.Name, "Name", "name", "notblank", "")
		}
		if t.IsPercentage && (t.Amount.LessThan(minPercentRate) || t.Amount.GreaterThan(maxPercentRate)) {
			sl.ReportError(t.Amount, "Amount", "amount", "pct_range", "")
		}
	}, entity.AdditionalTax{})
	return v
}

// CanonicalTaxName normaliza un nombre de impuesto: sin tildes, sin puntos, en mayúsculas.
// "i.v.a." → "IVA", "Retención IRPF" → "RETENCION IRPF".
func CanonicalTaxName(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, err := transform.String(t, strings.TrimSpace(name))
	if err != nil {
		s = strings.TrimSpace(name)
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Join(strings.Fields(s), " ")
	return cases.Upper(language.Spanish).String(s)
}

// KindOf clasifica el impuesto por la primera palabra de su nombre canónico,
// de modo que "IVA 21%" o "IVA reducido" cuentan como IVA.
func KindOf(name string) TaxKind {
	words := strings.Fields(CanonicalTaxName(name))
	if len(words) == 0 {
		return TaxOther
	}
	for _, w := range words {
		switch strings.TrimRight(w, "%0123456789,") {
		case entity.TaxNameIVA:
			return TaxVAT
		case entity.TaxNameIRPF:
			return TaxIRPF
		}
		// solo se mira más allá de la primera palabra para prefijos del tipo "Retención IRPF"
		if w != "RETENCION" {
			break
		}
	}
	return TaxOther
}

// ValidateTaxes comprueba cada línea con el validador de esquema.
func ValidateTaxes(taxes []entity.AdditionalTax) error {
	for i, t := range taxes {
		if err := validate.Struct(t); err != nil {
			return fmt.Errorf("%w: línea %d: %v", domain.ErrInvalidTaxes, i, err)
		}
	}
	return nil
}

// DecodeTaxes parsea y valida la columna JSON de impuestos adicionales.
// Acepta el array directamente o serializado dentro de un string JSON.
// Vacío o null devuelve nil sin error.
func DecodeTaxes(raw []byte) ([]entity.AdditionalTax, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidTaxes, err)
		}
		return DecodeTaxes([]byte(inner))
	}
	var taxes []entity.AdditionalTax
	if err := json.Unmarshal(raw, &taxes); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidTaxes, err)
	}
	if err := ValidateTaxes(taxes); err != nil {
		return nil, err
	}
	return taxes, nil
}

// EncodeTaxes serializa las líneas para la columna JSONB. nil se guarda como [].
func EncodeTaxes(taxes []entity.AdditionalTax) ([]byte, error) {
	if taxes == nil {
		taxes = []entity.AdditionalTax{}
	}
	return json.Marshal(taxes)
}

// effectiveTaxes elimina duplicados por nombre canónico: gana la última aparición,
// conservando la posición de la primera.
func effectiveTaxes(taxes []entity.AdditionalTax) []entity.AdditionalTax {
	if len(taxes) < 2 {
		return taxes
	}
	idx := make(map[string]int, len(taxes))
	out := make([]entity.AdditionalTax, 0, len(taxes))
	for _, t := range taxes {
		key := CanonicalTaxName(t.Name)
		if i, ok := idx[key]; ok {
			out[i] = t
			continue
		}
		idx[key] = len(out)
		out = append(out, t)
	}
	return out
}

// signed aplica el signo fiscal: el IRPF siempre resta (retención).
func signed(kind TaxKind, v decimal.Decimal) decimal.Decimal {
	if kind == TaxIRPF {
		return v.Abs().Neg()
	}
	return v
}

// TotalFromBase calcula el total que cumple la invariante total = base + Σ contribuciones.
func TotalFromBase(base decimal.Decimal, taxes []entity.AdditionalTax) decimal.Decimal {
	total := base
	for _, t := range effectiveTaxes(taxes) {
		v := t.Amount
		if t.IsPercentage {
			v = base.Mul(t.Amount).Div(hundred)
		}
		total = total.Add(signed(KindOf(t.Name), v))
	}
	return total
}

package fiscal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/facturacion-api/internal/domain/fiscal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

// Cada mes pertenece a exactamente un trimestre y los cuatro cubren el año sin huecos.
func TestQuarter_ParticionaLosDoceMeses(t *testing.T) {
	claims := map[int]int{}
	for m := time.January; m <= time.December; m++ {
		d := date(2025, m, 15)
		owners := 0
		for q := 1; q <= 4; q++ {
			spec := fiscal.ParsePeriod("2025", "q"+string(rune('0'+q)))
			if spec.Includes(d) {
				owners++
				claims[q]++
			}
		}
		assert.Equal(t, 1, owners, "el mes %s debe pertenecer a un único trimestre", m)
	}
	for q := 1; q <= 4; q++ {
		assert.Equal(t, 3, claims[q], "el trimestre %d debe tener tres meses", q)
	}

	assert.Equal(t, 1, fiscal.Quarter(date(2025, time.March, 31)))
	assert.Equal(t, 2, fiscal.Quarter(date(2025, time.April, 1)))
	assert.Equal(t, 3, fiscal.Quarter(date(2025, time.September, 30)))
	assert.Equal(t, 4, fiscal.Quarter(date(2025, time.October, 1)))
}

func TestPeriodSpec_Includes(t *testing.T) {
	march := date(2025, time.March, 10)

	cases := []struct {
		year, period string
		want         bool
	}{
		{"2025", "all", true},
		{"2025", "", true},
		{"2024", "all", false},
		{"2025", "q1", true},
		{"2025", "Q1", true},
		{"2025", "q2", false},
		{"2025", "m3", true},
		{"2025", "m4", false},
		{"", "all", true},
		{"", "q1", true},
		{"all", "m3", true},
		{"2025", "q5", false},
		{"2025", "m13", false},
		{"2025", "m0", false},
		{"2025", "semestre", false},
		{"20x5", "all", false},
	}
	for _, c := range cases {
		spec := fiscal.ParsePeriod(c.year, c.period)
		assert.Equal(t, c.want, spec.Includes(march), "year=%q period=%q", c.year, c.period)
	}
}

func TestParsePeriod_NoReconocidoFallaCerrado(t *testing.T) {
	spec := fiscal.ParsePeriod("2025", "trimestre2")
	assert.False(t, spec.Valid())
	for m := time.January; m <= time.December; m++ {
		assert.False(t, spec.Includes(date(2025, m, 1)))
	}

	assert.True(t, fiscal.ParsePeriod("2025", "m12").Valid())
	assert.Equal(t, "all", fiscal.ParsePeriod("2025", "  ").Period)
}

func TestPeriodSpec_Label(t *testing.T) {
	assert.Equal(t, "2º trimestre 2025", fiscal.ParsePeriod("2025", "q2").Label())
	assert.Equal(t, "Marzo 2025", fiscal.ParsePeriod("2025", "m3").Label())
	assert.Equal(t, "Año 2025", fiscal.ParsePeriod("2025", "all").Label())
	assert.Equal(t, "Histórico", fiscal.ParsePeriod("", "all").Label())
	assert.Equal(t, "Diciembre", fiscal.ParsePeriod("", "m12").Label())
	assert.Equal(t, "Periodo no válido", fiscal.ParsePeriod("2025", "x").Label())
}

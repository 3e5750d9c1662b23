package fiscal

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// PeriodAll periodo por defecto: el año completo (o todo el histórico sin año).
const PeriodAll = "all"

var (
	quarterRe = regexp.MustCompile(`^q([1-4])$`)
	monthRe   = regexp.MustCompile(`^m([1-9]|1[0-2])$`)
)

type periodKind int

const (
	kindAll periodKind = iota
	kindQuarter
	kindMonth
)

// PeriodSpec periodo solicitado: año opcional + "all" | "qN" | "mN".
// Se construye por petición con ParsePeriod y nunca se persiste.
type PeriodSpec struct {
	Year   string // tal como llegó (sin espacios); vacío = sin filtro de año
	Period string // normalizado en minúsculas

	year    int
	hasYear bool
	kind    periodKind
	index   int // trimestre 1..4 o mes 1..12
	valid   bool
}

// ParsePeriod interpreta los parámetros de consulta. Un periodo o año no reconocido
// produce un PeriodSpec no válido que excluye todas las fechas.
func ParsePeriod(year, period string) PeriodSpec {
	p := PeriodSpec{
		Year:   strings.TrimSpace(year),
		Period: strings.ToLower(strings.TrimSpace(period)),
		valid:  true,
	}
	if p.Period == "" {
		p.Period = PeriodAll
	}

	if p.Year != "" && !strings.EqualFold(p.Year, PeriodAll) {
		y, err := strconv.Atoi(p.Year)
		if err != nil || y < 1 || y > 9999 {
			p.valid = false
		} else {
			p.year, p.hasYear = y, true
		}
	} else {
		p.Year = ""
	}

	switch {
	case p.Period == PeriodAll:
		p.kind = kindAll
	case quarterRe.MatchString(p.Period):
		p.kind = kindQuarter
		p.index, _ = strconv.Atoi(quarterRe.FindStringSubmatch(p.Period)[1])
	case monthRe.MatchString(p.Period):
		p.kind = kindMonth
		p.index, _ = strconv.Atoi(monthRe.FindStringSubmatch(p.Period)[1])
	default:
		p.valid = false
	}
	return p
}

// Valid indica si año y periodo se reconocieron.
func (p PeriodSpec) Valid() bool { return p.valid }

// Quarter devuelve el trimestre natural (1..4) de la fecha.
func Quarter(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}

// Includes decide si la fecha pertenece al periodo. Falla cerrado: un PeriodSpec
// no válido no incluye nada.
func (p PeriodSpec) Includes(t time.Time) bool {
	if !p.valid {
		return false
	}
	if p.hasYear && t.Year() != p.year {
		return false
	}
	switch p.kind {
	case kindQuarter:
		return Quarter(t) == p.index
	case kindMonth:
		return int(t.Month()) == p.index
	default:
		return true
	}
}

var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// Label devuelve una etiqueta legible del periodo, ej: "2º trimestre 2025", "Marzo 2025".
func (p PeriodSpec) Label() string {
	if !p.valid {
		return "Periodo no válido"
	}
	var label string
	switch p.kind {
	case kindQuarter:
		label = fmt.Sprintf("%dº trimestre", p.index)
	case kindMonth:
		label = monthNames[p.index-1]
	default:
		if !p.hasYear {
			return "Histórico"
		}
		return fmt.Sprintf("Año %d", p.year)
	}
	if p.hasYear {
		label = fmt.Sprintf("%s %d", label, p.year)
	}
	return label
}

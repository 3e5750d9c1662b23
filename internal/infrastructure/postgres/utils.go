package postgres

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/facturacion-api/internal/domain/entity"
	"github.com/jhoicas/facturacion-api/internal/domain/fiscal"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}
	return strings.Contains(err.Error(), pgerrcode.UniqueViolation)
}

// validID evita mandar a PostgreSQL un id que no es UUID (fallaría con 22P02).
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// nullIfEmpty devuelve nil para strings vacíos (columnas opcionales).
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// decodeTaxesColumn interpreta la columna additional_taxes. Un valor mal formado
// se registra y se trata como "sin impuestos" para no romper el listado.
func decodeTaxesColumn(table, id string, raw []byte) []entity.AdditionalTax {
	taxes, err := fiscal.DecodeTaxes(raw)
	if err != nil {
		log.Warn().Err(err).
			Str("table", table).
			Str("id", id).
			Msg("additional_taxes mal formado, se ignora")
		return nil
	}
	return taxes
}

// encodeTaxesColumn serializa las líneas para el parámetro ::jsonb.
func encodeTaxesColumn(taxes []entity.AdditionalTax) (string, error) {
	raw, err := fiscal.EncodeTaxes(taxes)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/chilaquiles-api/internal/domain"
)

const uniqueViolation = "23505"

// writeError traduce errores de escritura del driver a errores de dominio.
// Una sentencia con RETURNING que no devuelve fila es ErrUnexpectedRows.
func writeError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %w", op, domain.ErrUsernameExists)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domain.ErrUnexpectedRows)
	}
	return fmt.Errorf("%s: %w", op, err)
}

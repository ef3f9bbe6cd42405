package sqlite

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/almacen-api/internal/domain"
	sqlitedriver "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// isUniqueViolation verifica si un error del driver es una violación de
// constraint UNIQUE (SQLITE_CONSTRAINT_UNIQUE = 2067).
func isUniqueViolation(err error) bool {
	var serr *sqlitedriver.Error
	if errors.As(err, &serr) {
		return serr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// storeErr clasifica un error del driver: los no clasificados se envuelven en
// domain.ErrStore para que el texto crudo del backend no cruce capas.
func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrStore, op, err)
}

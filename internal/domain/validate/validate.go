package validate

import (
	"fmt"
	"strings"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Guardas puras de entrada. Se invocan antes de cualquier mutación al store;
// fallan con domain.ErrInvalidInput sin tocar la persistencia.

// NonEmpty falla si el valor queda vacío después de recortar espacios.
func NonEmpty(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s no puede estar vacío", domain.ErrInvalidInput, field)
	}
	return nil
}

// MaxBytes falla si el valor excede max bytes (no runas: los límites de
// almacenamiento y de bcrypt se miden en bytes).
func MaxBytes(value string, max int, field string) error {
	if len(value) > max {
		return fmt.Errorf("%w: %s no puede superar %d bytes", domain.ErrInvalidInput, field, max)
	}
	return nil
}

// NonNegativeInt falla si el valor es negativo.
func NonNegativeInt(value int, field string) error {
	if value < 0 {
		return fmt.Errorf("%w: %s no puede ser negativo", domain.ErrInvalidInput, field)
	}
	return nil
}

// NonNegativeDecimal falla si el valor es negativo.
func NonNegativeDecimal(value decimal.Decimal, field string) error {
	if value.IsNegative() {
		return fmt.Errorf("%w: %s no puede ser negativo", domain.ErrInvalidInput, field)
	}
	return nil
}

package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost factor de trabajo bcrypt por defecto.
const DefaultCost = 12

// MaxLength límite de bcrypt sobre el texto plano, en bytes. Los callers deben
// rechazar passwords más largos en validación antes de llamar a Hash.
const MaxLength = 72

// Hasher genera y verifica hashes bcrypt con un costo configurable.
// El hash es autocontenido (sal y costo embebidos), así que Verify no necesita
// el costo con el que se generó.
type Hasher struct {
	cost int
}

// NewHasher construye el hasher. Un costo fuera del rango de bcrypt es un error
// de programación: se corrige al construir, no en cada Hash.
func NewHasher(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return Hasher{cost: cost}
}

// Hash produce el hash bcrypt del texto plano. No expone camino de error a los
// callers: bcrypt solo falla con entradas que violan MaxLength, y esas se
// rechazan en validación antes de llegar acá.
func (h Hasher) Hash(plain string) string {
	out, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		panic(fmt.Sprintf("password: hash bcrypt: %v", err))
	}
	return string(out)
}

// Verify compara el texto plano contra un hash almacenado. Devuelve false para
// hashes malformados en lugar de propagar el error.
func (h Hasher) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

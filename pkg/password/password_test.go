package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashYVerify(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash := h.Hash("secreto123")
	require.NotEmpty(t, hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"), "el hash debe ser bcrypt autocontenido")

	assert.True(t, h.Verify("secreto123", hash))
	assert.False(t, h.Verify("otinto", hash))
}

func TestHashEsSalado(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)
	// Dos hashes del mismo texto no coinciden: la sal va embebida.
	assert.NotEqual(t, h.Hash("mismo"), h.Hash("mismo"))
}

func TestVerifyHashMalformado(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)
	assert.False(t, h.Verify("lo-que-sea", "no-es-un-hash"))
	assert.False(t, h.Verify("lo-que-sea", ""))
}

func TestCostoFueraDeRangoUsaElDefault(t *testing.T) {
	h := NewHasher(99)
	assert.Equal(t, DefaultCost, h.cost)

	h = NewHasher(-1)
	assert.Equal(t, DefaultCost, h.cost)
}

func TestVerifyIndependienteDelCostoConfigurado(t *testing.T) {
	// El costo vive dentro del hash: un hasher con otro costo verifica igual.
	hash := NewHasher(bcrypt.MinCost).Hash("clave")
	assert.True(t, NewHasher(12).Verify("clave", hash))
}

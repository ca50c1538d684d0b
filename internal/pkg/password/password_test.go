package password

import (
	"testing"

	"hrms/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher() *Hasher {
	conf := &config.Configuration{}
	conf.Security.BcryptCost = bcrypt.MinCost
	return NewHasher(conf)
}

func TestHasher_HashAndCompare(t *testing.T) {
	h := newTestHasher()

	hashed, err := h.Hash("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hashed)
	assert.NoError(t, h.Compare(hashed, "password123"))
	assert.ErrorIs(t, h.Compare(hashed, "wrong"), ErrMismatch)
}

func TestHasher_SaltsEveryHash(t *testing.T) {
	h := newTestHasher()

	first, err := h.Hash("same")
	require.NoError(t, err)
	second, err := h.Hash("same")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestNewHasher_FallsBackToDefaultCost(t *testing.T) {
	h := NewHasher(&config.Configuration{})
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
}

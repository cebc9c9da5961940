package auth

import (
	"testing"

	"stationhub/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHasher() *bcryptHasher {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4}, // MinCost keeps the tests fast.
	}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher()

	hash, err := hasher.Hash("correct horse battery")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.True(t, hasher.Check("correct horse battery", hash))
	assert.False(t, hasher.Check("wrong password", hash))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher()

	first, err := hasher.Hash("same password")
	require.NoError(t, err)
	second, err := hasher.Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_CheckWithMalformedHash(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher()
	assert.False(t, hasher.Check("anything", "not-a-bcrypt-hash"))
}

func TestBcryptHasher_DefaultCostWhenUnconfigured(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(&config.Config{}).(*bcryptHasher)
	assert.Equal(t, 10, hasher.cost) // bcrypt.DefaultCost
}

func TestValidatePasswordStrength(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "long enough", password: "password123", wantErr: false},
		{name: "exactly minimum", password: "12345678", wantErr: false},
		{name: "too short", password: "1234567", wantErr: true},
		{name: "empty", password: "", wantErr: true},
		{name: "multibyte counted as runes", password: "كلمةسرقوية", wantErr: false},
		{name: "over 72 bytes rejected", password: string(make([]byte, 80)), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := hasher.ValidatePasswordStrength(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

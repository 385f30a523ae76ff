package auth

import (
	"testing"

	"shiptrack/config"

	"github.com/stretchr/testify/assert"
)

func newHasherTestConfig(cost int) *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{BcryptCost: cost}

	return cfg
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(newHasherTestConfig(4))

	hash, err := hasher.Hash("hunter2")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "hunter2", hash)

	assert.True(t, hasher.Check("hunter2", hash))
	assert.False(t, hasher.Check("wrong", hash))
}

func TestBcryptHasher_SamePasswordDifferentHashes(t *testing.T) {
	hasher := NewBcryptHasher(newHasherTestConfig(4))

	first, err := hasher.Hash("hunter2")
	assert.NoError(t, err)
	second, err := hasher.Hash("hunter2")
	assert.NoError(t, err)

	// A fresh salt per call means equal passwords never share a hash.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("hunter2", first))
	assert.True(t, hasher.Check("hunter2", second))
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	hasher := NewBcryptHasher(newHasherTestConfig(4))

	assert.False(t, hasher.Check("hunter2", ""))
	assert.False(t, hasher.Check("hunter2", "not-a-bcrypt-hash"))
}

func TestBcryptHasher_DefaultCostFallback(t *testing.T) {
	// Nil auth config and non-positive cost both fall back to the default.
	hasher := NewBcryptHasher(&config.Config{})

	hash, err := hasher.Hash("hunter2")
	assert.NoError(t, err)
	assert.True(t, hasher.Check("hunter2", hash))
}

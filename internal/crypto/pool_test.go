package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPoolOrder(t *testing.T) {
	// Custom symbols come first; later duplicates are dropped, keeping
	// first-occurrence order.
	pool := buildPool(Config{
		CustomSymbols:    "@ab",
		IncludeLowercase: true,
	})

	assert.Equal(t, "@abcdefghijklmnopqrstuvwxyz", string(pool))
}

func TestBuildPoolClassOrder(t *testing.T) {
	pool := buildPool(Config{
		IncludeNumbers:   true,
		IncludeLowercase: true,
		IncludeUppercase: true,
	})

	assert.Equal(t, lowercaseChars+uppercaseChars+numberChars, string(pool))
}

func TestBuildPoolExcludeSimilar(t *testing.T) {
	pool := buildPool(Config{
		IncludeNumbers:   true,
		IncludeLowercase: true,
		IncludeUppercase: true,
		ExcludeSimilar:   true,
		CustomSymbols:    "|`@",
	})

	for _, r := range similarChars {
		assert.NotContains(t, string(pool), string(r))
	}
	// @ plus 25 lowercase (no l), 24 uppercase (no O, I), 8 digits (no 0, 1).
	assert.Len(t, pool, 58)
}

func TestLetterPool(t *testing.T) {
	assert.Empty(t, letterPool(Config{IncludeNumbers: true, CustomSymbols: "abc"}))

	letters := letterPool(Config{IncludeLowercase: true, IncludeUppercase: true})
	assert.Len(t, letters, 52)

	filtered := letterPool(Config{
		IncludeLowercase: true,
		IncludeUppercase: true,
		ExcludeSimilar:   true,
	})
	assert.Len(t, filtered, 49)
	assert.NotContains(t, string(filtered), "l")
	assert.NotContains(t, string(filtered), "I")
	assert.NotContains(t, string(filtered), "O")
}

func TestPoolSize(t *testing.T) {
	assert.Equal(t, 0, PoolSize(Config{}))
	assert.Equal(t, 62, PoolSize(DefaultConfig()))
	assert.Equal(t, 3, PoolSize(Config{CustomSymbols: "@@##$"}))
}

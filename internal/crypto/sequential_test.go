package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequentialTripletTable(t *testing.T) {
	// 24 alphabetic windows (abc..xyz) and 7 numeric windows (123..789).
	assert.Len(t, sequentialTriplets, 31)
	assert.True(t, sequentialTriplets["abc"])
	assert.True(t, sequentialTriplets["xyz"])
	assert.True(t, sequentialTriplets["123"])
	assert.True(t, sequentialTriplets["789"])
	assert.False(t, sequentialTriplets["012"])
	assert.False(t, sequentialTriplets["890"])
}

func TestIsSequential(t *testing.T) {
	tests := []struct {
		name   string
		window string
		want   bool
	}{
		{"forward alphabetic", "abc", true},
		{"reversed alphabetic", "cba", true},
		{"forward uppercase", "ABC", true},
		{"mixed case", "aBc", true},
		{"alphabet end", "xyz", true},
		{"alphabet end reversed", "zyx", true},
		{"forward numeric", "123", true},
		{"reversed numeric", "321", true},
		{"numeric end", "789", true},
		{"zero never sequential", "012", false},
		{"shuffled letters", "acb", false},
		{"repeated letters", "aab", false},
		{"non-adjacent run", "ace", false},
		{"symbols", "@#$", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := []rune(tt.window)
			assert.Equal(t, tt.want, isSequential(w[0], w[1], w[2]))
		})
	}
}

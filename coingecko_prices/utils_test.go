package coingecko_prices

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAddresses(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "case and whitespace collapse",
			input:    []string{"0xABC ", "0xabc"},
			expected: []string{"0xabc"},
		},
		{
			name:     "order preserved",
			input:    []string{"0xDEF", "0xAbC", "0xdef"},
			expected: []string{"0xdef", "0xabc"},
		},
		{
			name:     "blank entries dropped",
			input:    []string{"", "  ", "0x1"},
			expected: []string{"0x1"},
		},
		{
			name:     "empty input",
			input:    []string{},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeAddresses(tt.input))
		})
	}
}

func TestNormalizeAddresses_Idempotent(t *testing.T) {
	input := []string{"0xABC ", " 0xDef", "0xabc"}
	once := normalizeAddresses(input)
	twice := normalizeAddresses(once)
	assert.Equal(t, once, twice)
}

func TestPriceCacheKey(t *testing.T) {
	assert.Equal(t, "price:ethereum:0xabc", priceCacheKey("ethereum", "0xabc"))
}

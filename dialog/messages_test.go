package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumberDropsTrailingZeros(t *testing.T) {
	assert.Equal(t, "480", formatNumber(480))
	assert.Equal(t, "150.5", formatNumber(150.5))
	assert.Equal(t, "4.5", formatNumber(4.5))
	assert.Equal(t, "0", formatNumber(0))
}

func TestPickFallsBackToPortuguese(t *testing.T) {
	assert.Equal(t, "olá", pick(LangPT, "olá", "hello"))
	assert.Equal(t, "hello", pick(LangEN, "olá", "hello"))
	assert.Equal(t, "olá", pick(Language("fr"), "olá", "hello"))
}

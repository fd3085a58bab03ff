package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean_NormalizaNFC(t *testing.T) {
	decomposed := "jos\u0065\u0301" // e + acento combinado
	composed := "jos\u00e9"
	assert.Equal(t, composed, Clean("  "+decomposed+" "))
}

func TestBlank(t *testing.T) {
	assert.True(t, Blank(""))
	assert.True(t, Blank(" \t\n"))
	assert.False(t, Blank(" a "))
	assert.True(t, AnyBlank("a", " ", "b"))
	assert.False(t, AnyBlank("a", "b"))
}

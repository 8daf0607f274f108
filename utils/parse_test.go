package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptionalInt(t *testing.T) {
	v := ParseOptionalInt("42")
	require.NotNil(t, v)
	assert.Equal(t, 42, *v)

	assert.Nil(t, ParseOptionalInt(""))
	assert.Nil(t, ParseOptionalInt("abc"))
	assert.Nil(t, ParseOptionalInt("4.2"))
}

func TestParseOptionalFloat(t *testing.T) {
	v := ParseOptionalFloat("49.99")
	require.NotNil(t, v)
	assert.Equal(t, 49.99, *v)

	v = ParseOptionalFloat("100")
	require.NotNil(t, v)
	assert.Equal(t, 100.0, *v)

	assert.Nil(t, ParseOptionalFloat(""))
	assert.Nil(t, ParseOptionalFloat("cheap"))
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate(" 2025-01-31 ")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-31", date.Format("2006-01-02"))

	empty, err := ParseDate("")
	require.NoError(t, err)
	assert.True(t, empty.IsZero())

	_, err = ParseDate("31/01/2025")
	assert.Error(t, err)
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 12.35, RoundWithTwoDecimalPlace(12.3456))
	assert.Equal(t, 1.5, RoundWithTwoDecimalPlace(1.499999))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, 6)
	assert.Regexp(t, "^[A-Za-z0-9]{6}$", id)
}

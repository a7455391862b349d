package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviousMonthBounds(t *testing.T) {
	start, end, err := previousMonthBounds("2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-01", start)
	assert.Equal(t, "2026-02-28", end)
}

func TestPreviousMonthBoundsJanuary(t *testing.T) {
	start, end, err := previousMonthBounds("2026-01-01")
	require.NoError(t, err)
	assert.Equal(t, "2025-12-01", start)
	assert.Equal(t, "2025-12-31", end)
}

func TestPreviousMonthBoundsLeapYear(t *testing.T) {
	start, end, err := previousMonthBounds("2024-03-31")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01", start)
	assert.Equal(t, "2024-02-29", end)
}

func TestPreviousMonthBoundsInvalidDate(t *testing.T) {
	_, _, err := previousMonthBounds("31/03/2024")
	assert.Error(t, err)
}

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlot(t *testing.T) {
	day, at, err := ParseSlot("2025-01-10", "10:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), day)
	assert.Equal(t, time.Date(2025, 1, 10, 10, 30, 0, 0, time.UTC), at)

	_, _, err = ParseSlot("10/01/2025", "10:30")
	assert.Error(t, err)

	_, _, err = ParseSlot("2025-01-10", "25:00")
	assert.Error(t, err)
}

func TestBeginningOfDay(t *testing.T) {
	at := time.Date(2025, 1, 10, 18, 45, 12, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), BeginningOfDay(at))
}

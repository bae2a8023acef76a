package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_FallsBackOnUnknownZone(t *testing.T) {
	assert.Equal(t, Location(DefaultTimezone).String(), Location("Mars/Olympus").String())
	assert.Equal(t, "UTC", Location("UTC").String())
}

func TestISOWeekday(t *testing.T) {
	monday := time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		assert.Equal(t, i+1, ISOWeekday(monday.AddDate(0, 0, i)))
	}
}

func TestParseDay(t *testing.T) {
	day, err := ParseDay("2024-06-05", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 3, ISOWeekday(day))

	_, err = ParseDay("05/06/2024", time.UTC)
	assert.Error(t, err)
}

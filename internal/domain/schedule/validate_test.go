package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-api/internal/apperr"
)

func TestValidate_WorkingDayAccepted(t *testing.T) {
	assert.NoError(t, Validate(Proposal{DayOfWeek: 3, StartTime: "09:00", EndTime: "17:00"}))
}

func TestValidate_ReversedWindowRejected(t *testing.T) {
	err := Validate(Proposal{DayOfWeek: 3, StartTime: "17:00", EndTime: "09:00"})

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []apperr.FieldError{{Field: "end_time", Message: "end_time must be after start_time."}}, verr.Fields)
}

func TestValidate_EndMustBeStrictlyAfterStart(t *testing.T) {
	cases := []struct {
		start, end string
		ok         bool
	}{
		{"09:00", "09:00", false},
		{"09:00:01", "09:00", false},
		{"09:00", "09:00:01", true},
		{"00:00", "23:59:59", true},
		{"12:30", "12:29", false},
	}

	for _, tc := range cases {
		err := Validate(Proposal{DayOfWeek: 1, StartTime: tc.start, EndTime: tc.end})
		if tc.ok {
			assert.NoError(t, err, "%s-%s", tc.start, tc.end)
		} else {
			assert.True(t, apperr.IsValidation(err), "%s-%s", tc.start, tc.end)
		}
	}
}

func TestValidate_DayOfWeekBounds(t *testing.T) {
	for day := -1; day <= 9; day++ {
		err := Validate(Proposal{DayOfWeek: day, StartTime: "09:00", EndTime: "10:00"})
		if day >= 1 && day <= 7 {
			assert.NoError(t, err, "day %d", day)
		} else {
			assert.True(t, apperr.IsValidation(err), "day %d", day)
		}
	}
}

func TestValidate_AccumulatesEveryFailure(t *testing.T) {
	err := Validate(Proposal{DayOfWeek: 0, StartTime: "nine", EndTime: "25:00"})

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 3)
	assert.True(t, verr.Has("day_of_week"))
	assert.True(t, verr.Has("start_time"))
	assert.True(t, verr.Has("end_time"))
}

func TestNormalize(t *testing.T) {
	p := Normalize(Proposal{DayOfWeek: 2, StartTime: "9:05", EndTime: "18:00:30"})
	assert.Equal(t, "09:05:00", p.StartTime)
	assert.Equal(t, "18:00:30", p.EndTime)
}

func TestClockOn(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	c, err := ParseClock("14:30")
	require.NoError(t, err)

	got := c.On(time.Date(2024, 5, 6, 22, 0, 0, 0, loc))
	assert.Equal(t, time.Date(2024, 5, 6, 14, 30, 0, 0, loc), got)
}

package servicefabric

import (
	"errors"
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestTimeOfDayUpperBoundary(t *testing.T) {
	timeOfDay, err := NewTimeOfDay(23, 59)

	require.NoError(t, err)
	assert.Equal(t, int32(23), timeOfDay.Hour)
	assert.Equal(t, int32(59), timeOfDay.Minute)
	assert.Equal(t, "23:59", timeOfDay.String())
}

func TestTimeOfDayHourOutOfRange(t *testing.T) {
	timeOfDay, err := NewTimeOfDay(24, 0)

	assert.Nil(t, timeOfDay)

	var rangeError *validation.ArgumentOutOfRangeError
	require.True(t, errors.As(err, &rangeError))
	assert.Equal(t, "hour", rangeError.Param)
}

func TestTimeOfDayRanges(t *testing.T) {
	tests := []struct {
		hour      int32
		minute    int32
		wantParam string
	}{
		{0, 0, ""},
		{23, 0, ""},
		{0, 59, ""},
		{-1, 0, "hour"},
		{24, 0, "hour"},
		{0, -1, "minute"},
		{0, 60, "minute"},
	}

	for _, tt := range tests {
		_, err := NewTimeOfDay(tt.hour, tt.minute)

		if tt.wantParam == "" {
			assert.NoError(t, err, "%d:%d", tt.hour, tt.minute)
			continue
		}

		var rangeError *validation.ArgumentOutOfRangeError
		if assert.True(t, errors.As(err, &rangeError), "%d:%d", tt.hour, tt.minute) {
			assert.Equal(t, tt.wantParam, rangeError.Param)
		}
	}
}

func TestTimeOfDayBefore(t *testing.T) {
	morning := TimeOfDay{Hour: 9, Minute: 30}
	evening := TimeOfDay{Hour: 21, Minute: 0}

	assert.True(t, morning.Before(evening))
	assert.False(t, evening.Before(morning))
	assert.False(t, morning.Before(morning))
}

func TestChaosScheduleTimeRange(t *testing.T) {
	timeRange, err := NewChaosScheduleTimeRangeUtc(TimeOfDay{Hour: 22}, TimeOfDay{Hour: 2, Minute: 30})
	require.NoError(t, err)
	assert.Equal(t, int32(22), timeRange.StartTime.Hour)

	_, err = NewChaosScheduleTimeRangeUtc(TimeOfDay{Hour: 1}, TimeOfDay{Minute: 75})
	assert.True(t, errors.Is(err, validation.ErrArgumentOutOfRange))
}

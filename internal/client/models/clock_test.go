package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	c, err := ParseClock("07:05")
	require.NoError(t, err)
	assert.Equal(t, Clock{Hour: 7, Minute: 5}, c)
	assert.Equal(t, "07:05", c.String())

	for _, bad := range []string{"", "25:00", "12:5", "-1:00", "aa:bb", "1200"} {
		_, err := ParseClock(bad)
		assert.ErrorIs(t, err, ErrValidation, bad)
	}
}

func TestSleepDuration(t *testing.T) {
	wake := Clock{Hour: 7, Minute: 0}
	assert.Equal(t, 8.5, SleepDuration(AssumedBedTime, wake))

	assert.Equal(t, 2.0, SleepDuration(Clock{Hour: 22, Minute: 0}, Clock{Hour: 0, Minute: 0}))
	assert.Equal(t, 0.0, SleepDuration(Clock{Hour: 6, Minute: 0}, Clock{Hour: 6, Minute: 0}))
	assert.Equal(t, 7.3, SleepDuration(Clock{Hour: 23, Minute: 40}, Clock{Hour: 7, Minute: 0}))
}

func TestClock_Format12(t *testing.T) {
	assert.Equal(t, "12:00 AM", Clock{Hour: 0, Minute: 0}.Format12())
	assert.Equal(t, "7:05 AM", Clock{Hour: 7, Minute: 5}.Format12())
	assert.Equal(t, "12:30 PM", Clock{Hour: 12, Minute: 30}.Format12())
	assert.Equal(t, "10:30 PM", AssumedBedTime.Format12())
}

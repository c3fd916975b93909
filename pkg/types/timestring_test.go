package types_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CapacityService/pkg/types"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := types.NewTimeStringFromString("08:30")
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("08:30"), ts)

	// Значение с секундами усекается до HH:MM
	ts, err = types.NewTimeStringFromString("08:30:00")
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("08:30"), ts)

	_, err = types.NewTimeStringFromString("25:00")
	assert.Error(t, err)

	_, err = types.NewTimeStringFromString("8am")
	assert.Error(t, err)
}

func TestTimeStringOrdering(t *testing.T) {
	assert.True(t, types.TimeString("08:00").IsBefore("08:30"))
	assert.True(t, types.TimeString("09:00").IsAfter("08:30"))
	assert.False(t, types.TimeString("08:30").IsBefore("08:30"))
}

func TestTimeStringAddMinutes(t *testing.T) {
	next, err := types.TimeString("08:00").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("08:30"), next)

	next, err = types.TimeString("09:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:15"), next)
}

func TestTimeStringScan(t *testing.T) {
	var ts types.TimeString

	require.NoError(t, ts.Scan("08:00:00"))
	assert.Equal(t, types.TimeString("08:00"), ts)

	require.NoError(t, ts.Scan([]byte("12:30")))
	assert.Equal(t, types.TimeString("12:30"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 1, 1, 9, 15, 0, 0, time.UTC)))
	assert.Equal(t, types.TimeString("09:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.Equal(t, types.TimeString(""), ts)

	assert.Error(t, ts.Scan(42))
}

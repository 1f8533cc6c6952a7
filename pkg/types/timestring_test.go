package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	require.NoError(t, TimeString("09:00").Validate())
	require.NoError(t, TimeString("23:59:59").Validate())

	require.Error(t, TimeString("9:00").Validate())
	require.Error(t, TimeString("25:00").Validate())
	require.Error(t, TimeString("09:61").Validate())
	require.Error(t, TimeString("").Validate())
	require.Error(t, TimeString("morning").Validate())
}

func TestTimeString_WithSeconds(t *testing.T) {
	require.Equal(t, TimeString("09:00:00"), TimeString("09:00").WithSeconds())
	// значение с секундами не трогается
	require.Equal(t, TimeString("17:30:15"), TimeString("17:30:15").WithSeconds())
}

func TestTimeString_IsBefore(t *testing.T) {
	require.True(t, TimeString("09:00").IsBefore("17:00"))
	require.False(t, TimeString("17:00").IsBefore("09:00"))
	require.False(t, TimeString("09:00").IsBefore("09:00"))
	// смешанные формы сравниваются корректно
	require.True(t, TimeString("09:00").IsBefore("09:00:30"))
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 9, 10, 14, 5, 33, 0, time.UTC))
	require.Equal(t, TimeString("14:05"), ts)

	parsed, err := NewTimeStringFromString("14:05")
	require.NoError(t, err)
	require.Equal(t, TimeString("14:05"), parsed)

	_, err = NewTimeStringFromString("bad")
	require.ErrorIs(t, err, ErrInvalidTimeString)
}

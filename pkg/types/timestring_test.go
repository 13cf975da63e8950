package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "full form", input: "10:30:00", want: "10:30:00"},
		{name: "short form normalized", input: "10:30", want: "10:30:00"},
		{name: "single digit hour", input: "9:15", want: "09:15:00"},
		{name: "with seconds", input: "21:30:45", want: "21:30:45"},
		{name: "trailing garbage ignored", input: "13:45:00.000", want: "13:45:00"},
		{name: "empty", input: "", wantErr: true},
		{name: "no colon", input: "1030", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "second out of range", input: "10:30:60", wantErr: true},
		{name: "not a time", input: "half past ten", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeStringComparisons(t *testing.T) {
	opening := TimeString("10:30:00")
	closing := TimeString("21:30:00")

	assert.True(t, opening.IsBefore(closing))
	assert.True(t, closing.IsAfter(opening))
	assert.False(t, opening.IsBefore(opening))
	assert.False(t, opening.IsAfter(opening))

	// Нормализованная короткая форма сравнивается корректно с границей
	normalized, err := NewTimeStringFromString("10:30")
	require.NoError(t, err)
	assert.False(t, normalized.IsBefore(opening))
}

func TestTimeStringAt(t *testing.T) {
	ts := TimeString("18:45:30")
	date := time.Date(2026, time.September, 4, 0, 0, 0, 0, time.UTC)

	instant, err := ts.At(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.September, 4, 18, 45, 30, 0, time.UTC), instant)
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts := TimeString("21:00:00")

	got, err := ts.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("21:45:00"), got)
}

func TestTimeStringScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:30:00"))
	assert.Equal(t, TimeString("10:30:00"), ts)

	require.NoError(t, ts.Scan([]byte("21:30")))
	assert.Equal(t, TimeString("21:30:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, time.September, 4, 12, 15, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("12:15:00"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeStringValue(t *testing.T) {
	v, err := TimeString("10:30:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:30:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

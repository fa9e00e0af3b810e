package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	cases := []struct {
		input   string
		wantErr bool
	}{
		{input: "09:00"},
		{input: "00:00"},
		{input: "23:59"},
		{input: "14:35"},
		{input: "9:00", wantErr: true}, // не канонический вид
		{input: "24:00", wantErr: true},
		{input: "10:60", wantErr: true},
		{input: "10", wantErr: true},
		{input: "", wantErr: true},
		{input: "abc", wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			ts, err := NewTimeStringFromString(c.input)
			if c.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.input, ts.String())
		})
	}
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2025, 8, 1, 14, 35, 59, 0, time.UTC)
	assert.Equal(t, TimeString("14:35"), NewTimeString(moment))
}

func TestTimeString_Minutes(t *testing.T) {
	cases := []struct {
		input    TimeString
		expected int
	}{
		{input: "00:00", expected: 0},
		{input: "00:15", expected: 15},
		{input: "09:05", expected: 545},
		{input: "14:35", expected: 875},
		{input: "23:59", expected: 1439},
	}

	for _, c := range cases {
		minutes, err := c.input.Minutes()
		require.NoError(t, err)
		assert.Equal(t, c.expected, minutes)
	}
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:00").IsAfter("09:59"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	result, err := TimeString("09:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), result)

	result, err = TimeString("23:30").AddMinutes(-30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:00"), result)

	// Выход за пределы суток
	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = TimeString("00:10").AddMinutes(-20)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_IsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("10:00").IsZero())
}

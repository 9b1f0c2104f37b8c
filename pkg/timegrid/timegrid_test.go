package timegrid

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinutes(t *testing.T) {
	tests := []struct {
		label    string
		expected int
	}{
		{"12:00 AM", 0},
		{"12:30 AM", 30},
		{"01:00 AM", 60},
		{"09:00 AM", 540},
		{"09:20 AM", 560},
		{"9:20 AM", 560},
		{"12:00 PM", 720},
		{"01:00 PM", 780},
		{"06:00 PM", 1080},
		{"11:59 PM", 1439},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := ToMinutes(tt.label)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestToMinutes_Invalid(t *testing.T) {
	tests := []string{
		"",
		"09:00",    // missing AM/PM
		"09:00 XM", // unknown period
		"13:00 PM", // hour out of range
		"00:00 AM", // hour out of range
		"09:60 AM", // minute out of range
		"0900 AM",  // no colon
		"aa:bb AM", // not numeric
		"09:00 AM PM",
	}

	for _, label := range tests {
		t.Run(label, func(t *testing.T) {
			_, err := ToMinutes(label)
			assert.ErrorIs(t, err, ErrInvalidLabel)
		})
	}
}

func TestToLabel(t *testing.T) {
	assert.Equal(t, "12:00 AM", ToLabel(0))
	assert.Equal(t, "09:00 AM", ToLabel(540))
	assert.Equal(t, "09:40 AM", ToLabel(580))
	assert.Equal(t, "12:00 PM", ToLabel(720))
	assert.Equal(t, "06:00 PM", ToLabel(1080))
	assert.Equal(t, "11:59 PM", ToLabel(1439))

	// Wraps past midnight instead of erroring
	assert.Equal(t, "12:10 AM", ToLabel(1450))
	assert.Equal(t, "12:00 AM", ToLabel(MinutesPerDay))
}

func TestToLabel_RoundTrip(t *testing.T) {
	for m := 0; m < MinutesPerDay; m++ {
		label := ToLabel(m)
		got, err := ToMinutes(label)
		require.NoError(t, err, "label %q", label)
		require.Equal(t, m, got, "label %q", label)
	}
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		minutes, step, expected int
	}{
		{545, 10, 550},
		{550, 10, 550}, // already on the grid
		{551, 10, 560},
		{0, 10, 0},
		{7, 5, 10},
		{560, 0, 560}, // degenerate step leaves input untouched
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.minutes, tt.step), func(t *testing.T) {
			assert.Equal(t, tt.expected, Quantize(tt.minutes, tt.step))
		})
	}
}

func TestSlotLabel_EncodeParse(t *testing.T) {
	label := EncodeSlotLabel(610, 2)
	assert.Equal(t, "10:10 AMs2", label)

	start, seat, err := ParseSlotLabel(label)
	require.NoError(t, err)
	assert.Equal(t, 610, start)
	assert.Equal(t, 2, seat)
}

func TestParseSlotLabel_Invalid(t *testing.T) {
	tests := []string{
		"",
		"10:10 AM",   // no seat separator
		"10:10 AMs",  // empty ordinal
		"10:10 AMs0", // ordinal must be positive
		"10:10 AMs-1",
		"10:10s1", // time portion unparsable
	}

	for _, label := range tests {
		t.Run(label, func(t *testing.T) {
			_, _, err := ParseSlotLabel(label)
			assert.ErrorIs(t, err, ErrInvalidSlotLabel)
		})
	}
}

// Package timegrid converts between 12-hour wall-clock labels ("HH:MM AM/PM")
// and minute offsets since midnight, and quantizes offsets to a slot grid.
// All functions are pure.
package timegrid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is the number of minutes in a wall-clock day.
const MinutesPerDay = 24 * 60

// slotSeparator splits the time portion of a slot label from the seat ordinal.
// The time portion never contains this byte.
const slotSeparator = "s"

var (
	// ErrInvalidLabel is returned when a time label cannot be parsed
	ErrInvalidLabel = errors.New("timegrid: invalid time label")

	// ErrInvalidSlotLabel is returned when a slot label cannot be parsed
	ErrInvalidSlotLabel = errors.New("timegrid: invalid slot label")
)

// ToMinutes parses a "HH:MM AM/PM" label into minutes since midnight (0-1439).
func ToMinutes(label string) (int, error) {
	parts := strings.Split(strings.TrimSpace(label), " ")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q: missing AM/PM token", ErrInvalidLabel, label)
	}

	period := parts[1]
	if period != "AM" && period != "PM" {
		return 0, fmt.Errorf("%w: %q: unknown period %q", ErrInvalidLabel, label, period)
	}

	hhmm := strings.Split(parts[0], ":")
	if len(hhmm) != 2 {
		return 0, fmt.Errorf("%w: %q: expected HH:MM", ErrInvalidLabel, label)
	}

	hours, err := strconv.Atoi(hhmm[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: bad hour: %v", ErrInvalidLabel, label, err)
	}
	minutes, err := strconv.Atoi(hhmm[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: bad minute: %v", ErrInvalidLabel, label, err)
	}

	if hours < 1 || hours > 12 {
		return 0, fmt.Errorf("%w: %q: hour out of range", ErrInvalidLabel, label)
	}
	if minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q: minute out of range", ErrInvalidLabel, label)
	}

	if period == "PM" && hours != 12 {
		hours += 12
	}
	if period == "AM" && hours == 12 {
		hours = 0
	}

	return hours*60 + minutes, nil
}

// ToLabel formats minutes since midnight as a "HH:MM AM/PM" label.
// Minutes are taken modulo a day, so values past midnight wrap instead of erroring.
func ToLabel(minutes int) string {
	minutes %= MinutesPerDay
	if minutes < 0 {
		minutes += MinutesPerDay
	}

	hours := minutes / 60
	mins := minutes % 60

	period := "AM"
	if hours >= 12 {
		period = "PM"
	}

	displayHours := hours % 12
	if displayHours == 0 {
		displayHours = 12
	}

	return fmt.Sprintf("%02d:%02d %s", displayHours, mins, period)
}

// Quantize rounds minutes up to the next multiple of step.
func Quantize(minutes, step int) int {
	if step <= 0 {
		return minutes
	}
	return ((minutes + step - 1) / step) * step
}

// EncodeSlotLabel encodes a slot start offset and a 1-based seat ordinal into
// the persisted wire format, e.g. "10:10 AMs2".
func EncodeSlotLabel(startMinutes, seatOrdinal int) string {
	return ToLabel(startMinutes) + slotSeparator + strconv.Itoa(seatOrdinal)
}

// ParseSlotLabel splits a slot label into its start offset and seat ordinal.
func ParseSlotLabel(label string) (startMinutes, seatOrdinal int, err error) {
	idx := strings.Index(label, slotSeparator)
	if idx < 0 {
		return 0, 0, fmt.Errorf("%w: %q: missing seat separator", ErrInvalidSlotLabel, label)
	}

	startMinutes, err = ToMinutes(label[:idx])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %v", ErrInvalidSlotLabel, label, err)
	}

	seatOrdinal, err = strconv.Atoi(label[idx+len(slotSeparator):])
	if err != nil || seatOrdinal < 1 {
		return 0, 0, fmt.Errorf("%w: %q: bad seat ordinal", ErrInvalidSlotLabel, label)
	}

	return startMinutes, seatOrdinal, nil
}

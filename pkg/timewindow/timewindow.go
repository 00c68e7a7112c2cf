// Package timewindow works with wall-clock "HH:mm" strings as integer
// minute offsets from midnight.
package timewindow

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const MinutesPerDay = 24 * 60

var (
	ErrInvalidFormat = errors.New("неверный формат времени, ожидается HH:mm")
	ErrInvalidWindow = errors.New("некорректный интервал времени")
)

var clockRegex = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

// Parse returns the number of minutes since midnight (0–1439).
func Parse(s string) (int, error) {
	if !clockRegex.MatchString(s) {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidFormat)
	}

	hh, mm, _ := strings.Cut(s, ":")
	hours, _ := strconv.Atoi(hh)
	minutes, _ := strconv.Atoi(mm)

	return hours*60 + minutes, nil
}

// Format is the inverse of Parse and always zero-pads the hour.
func Format(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func IsBefore(a, b string) (bool, error) {
	am, bm, err := parsePair(a, b)
	if err != nil {
		return false, err
	}
	return am < bm, nil
}

// DurationMinutes returns minutes(b) - minutes(a); the result may be negative.
func DurationMinutes(a, b string) (int, error) {
	am, bm, err := parsePair(a, b)
	if err != nil {
		return 0, err
	}
	return bm - am, nil
}

func Contains(outerStart, outerEnd, innerStart, innerEnd string) (bool, error) {
	outerFrom, outerTo, err := parsePair(outerStart, outerEnd)
	if err != nil {
		return false, err
	}
	innerFrom, innerTo, err := parsePair(innerStart, innerEnd)
	if err != nil {
		return false, err
	}
	return innerFrom >= outerFrom && innerTo <= outerTo, nil
}

// Overlaps reports whether the half-open ranges [aStart,aEnd) and
// [bStart,bEnd) share at least one minute.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// Validate checks a working window with an optional break. Empty strings
// mean "absent"; the break must be given as a pair and lie inside the window.
func Validate(start, end, breakStart, breakEnd string) error {
	startMin, endMin, err := parsePair(start, end)
	if err != nil {
		return err
	}

	if startMin >= endMin {
		return fmt.Errorf("время начала должно быть раньше времени окончания: %w", ErrInvalidWindow)
	}

	if breakStart == "" && breakEnd == "" {
		return nil
	}

	if breakStart == "" || breakEnd == "" {
		return fmt.Errorf("перерыв должен иметь и начало, и окончание: %w", ErrInvalidWindow)
	}

	breakStartMin, breakEndMin, err := parsePair(breakStart, breakEnd)
	if err != nil {
		return err
	}

	if breakStartMin >= breakEndMin {
		return fmt.Errorf("начало перерыва должно быть раньше его окончания: %w", ErrInvalidWindow)
	}

	if breakStartMin < startMin || breakEndMin > endMin {
		return fmt.Errorf("перерыв должен находиться внутри рабочего времени: %w", ErrInvalidWindow)
	}

	return nil
}

func parsePair(a, b string) (int, int, error) {
	am, err := Parse(a)
	if err != nil {
		return 0, 0, err
	}
	bm, err := Parse(b)
	if err != nil {
		return 0, 0, err
	}
	return am, bm, nil
}

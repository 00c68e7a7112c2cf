package service

import (
	"fmt"

	"consultcare/internal/domain"
	"consultcare/pkg/timewindow"
)

type minuteRange struct {
	start, end int
}

// GenerateSlots splits the resolved working window into consecutive slots of
// duration minutes, starting at the window start. A candidate is dropped when
// it overlaps the break or any booked range, or when it would run past the
// end of the window. The result depends only on the arguments.
func GenerateSlots(resolved domain.ResolvedDaySchedule, duration int, booked []domain.TimeRange) ([]domain.Slot, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("%d: %w", duration, domain.ErrInvalidDuration)
	}

	slots := make([]domain.Slot, 0)
	if !resolved.IsAvailable {
		return slots, nil
	}

	start, err := timewindow.Parse(resolved.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := timewindow.Parse(resolved.EndTime)
	if err != nil {
		return nil, err
	}

	blocked := make([]minuteRange, 0, len(booked)+1)
	if resolved.HasBreak() {
		r, err := parseRange(resolved.BreakStart, resolved.BreakEnd)
		if err != nil {
			return nil, err
		}
		blocked = append(blocked, r)
	}
	for _, b := range booked {
		r, err := parseRange(b.Start, b.End)
		if err != nil {
			return nil, fmt.Errorf("занятый интервал %s-%s: %w", b.Start, b.End, err)
		}
		blocked = append(blocked, r)
	}

	for t := start; t+duration <= end; t += duration {
		if overlapsAny(t, t+duration, blocked) {
			continue
		}
		slots = append(slots, domain.Slot{
			StartTime: timewindow.Format(t),
			EndTime:   timewindow.Format(t + duration),
		})
	}

	return slots, nil
}

func parseRange(from, to string) (minuteRange, error) {
	start, err := timewindow.Parse(from)
	if err != nil {
		return minuteRange{}, err
	}
	end, err := timewindow.Parse(to)
	if err != nil {
		return minuteRange{}, err
	}
	return minuteRange{start: start, end: end}, nil
}

func overlapsAny(start, end int, ranges []minuteRange) bool {
	for _, r := range ranges {
		if timewindow.Overlaps(start, end, r.start, r.end) {
			return true
		}
	}
	return false
}

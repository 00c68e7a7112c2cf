package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"consultcare/pkg/timewindow"
)

const (
	DefaultSlotDuration = 30
	MinSlotDuration     = 15
	MaxSlotDuration     = 120
)

type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays is ordered Monday-first; a Weekday's position here is its index
// in WorkingDays.
var Weekdays = [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func (w Weekday) Index() (int, bool) {
	for i, d := range Weekdays {
		if d == w {
			return i, true
		}
	}
	return 0, false
}

// WeekdayOf derives the weekday from the calendar date without any locale lookup.
func WeekdayOf(date time.Time) Weekday {
	return Weekdays[(int(date.Weekday())+6)%7]
}

type WorkingDay struct {
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	BreakStart  string `json:"break_start,omitempty"`
	BreakEnd    string `json:"break_end,omitempty"`
	IsAvailable bool   `json:"is_available"`
}

// DefaultWorkingDay is the placeholder stored for weekdays nobody configured.
func DefaultWorkingDay() WorkingDay {
	return WorkingDay{
		StartTime:   "08:00",
		EndTime:     "17:00",
		IsAvailable: false,
	}
}

func (d WorkingDay) Validate() error {
	return timewindow.Validate(d.StartTime, d.EndTime, d.BreakStart, d.BreakEnd)
}

// WorkingDays always holds all seven days, indexed Monday-first.
type WorkingDays [7]WorkingDay

func NewWorkingDays() WorkingDays {
	var days WorkingDays
	for i := range days {
		days[i] = DefaultWorkingDay()
	}
	return days
}

func (w WorkingDays) Day(d Weekday) WorkingDay {
	i, ok := d.Index()
	if !ok {
		return DefaultWorkingDay()
	}
	return w[i]
}

// Apply validates the supplied days and overwrites the matching entries.
// Days that are not supplied keep their current value.
func (w WorkingDays) Apply(days map[Weekday]WorkingDay) (WorkingDays, error) {
	merged := w
	for _, name := range Weekdays {
		day, ok := days[name]
		if !ok {
			continue
		}
		if err := day.Validate(); err != nil {
			return w, fmt.Errorf("%s: %w", name, err)
		}
		i, _ := name.Index()
		merged[i] = day
	}

	for name := range days {
		if _, ok := name.Index(); !ok {
			return w, fmt.Errorf("неизвестный день недели %q: %w", name, ErrInvalidInput)
		}
	}

	return merged, nil
}

func (w WorkingDays) Validate() error {
	for i, day := range w {
		if err := day.Validate(); err != nil {
			return fmt.Errorf("%s: %w", Weekdays[i], err)
		}
	}
	return nil
}

func (w WorkingDays) MarshalJSON() ([]byte, error) {
	m := make(map[Weekday]WorkingDay, len(w))
	for i, day := range w {
		m[Weekdays[i]] = day
	}
	return json.Marshal(m)
}

func (w *WorkingDays) UnmarshalJSON(data []byte) error {
	var m map[Weekday]WorkingDay
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}

	days, err := NewWorkingDays().Apply(m)
	if err != nil {
		return err
	}

	*w = days
	return nil
}

type WeeklySchedule struct {
	ID                  uuid.UUID   `json:"id"`
	ConsultantID        uuid.UUID   `json:"consultant_id"`
	WorkingDays         WorkingDays `json:"working_days"`
	DefaultSlotDuration int         `json:"default_slot_duration"`
	EffectiveFrom       time.Time   `json:"effective_from"`
	EffectiveTo         *time.Time  `json:"effective_to,omitempty"`
	Notes               string      `json:"notes,omitempty"`
	CreatedBy           Actor       `json:"created_by"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

// IsEffectiveOn reports whether date falls inside [EffectiveFrom, EffectiveTo].
func (s WeeklySchedule) IsEffectiveOn(date time.Time) bool {
	d := NormalizeDate(date)
	if d.Before(NormalizeDate(s.EffectiveFrom)) {
		return false
	}
	if s.EffectiveTo != nil && d.After(NormalizeDate(*s.EffectiveTo)) {
		return false
	}
	return true
}

func (s WeeklySchedule) DayFor(date time.Time) WorkingDay {
	return s.WorkingDays.Day(WeekdayOf(date))
}

func ValidateSlotDuration(minutes int) error {
	if minutes < MinSlotDuration || minutes > MaxSlotDuration {
		return fmt.Errorf("%d: %w", minutes, ErrInvalidDuration)
	}
	return nil
}

func ValidateEffectiveRange(from time.Time, to *time.Time) error {
	if to != nil && NormalizeDate(*to).Before(NormalizeDate(from)) {
		return fmt.Errorf("effective_to раньше effective_from: %w", ErrInvalidWindow)
	}
	return nil
}

type CreateWeeklyScheduleDTO struct {
	ConsultantID        uuid.UUID              `json:"consultant_id" binding:"required"`
	WorkingDays         map[Weekday]WorkingDay `json:"working_days"`
	DefaultSlotDuration int                    `json:"default_slot_duration"`
	EffectiveFrom       string                 `json:"effective_from"`
	EffectiveTo         *string                `json:"effective_to"`
	Notes               string                 `json:"notes"`
}

// UpdateWeeklyScheduleDTO is a partial update. Supplied weekdays replace
// the stored ones; an empty EffectiveTo clears the end of the range.
type UpdateWeeklyScheduleDTO struct {
	WorkingDays         map[Weekday]WorkingDay `json:"working_days"`
	DefaultSlotDuration *int                   `json:"default_slot_duration"`
	EffectiveFrom       *string                `json:"effective_from"`
	EffectiveTo         *string                `json:"effective_to"`
	Notes               *string                `json:"notes"`
}

type WeeklyScheduleFilter struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

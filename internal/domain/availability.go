package domain

import (
	"time"

	"github.com/google/uuid"
)

type ScheduleSource string

const (
	SourceOverride ScheduleSource = "override"
	SourceWeekly   ScheduleSource = "weekly"
	SourceNone     ScheduleSource = "none"
)

// ResolvedDaySchedule is the effective working window of one consultant on
// one date. It is derived on every request and never stored.
type ResolvedDaySchedule struct {
	Date         time.Time      `json:"date"`
	ConsultantID uuid.UUID      `json:"consultant_id"`
	Source       ScheduleSource `json:"source"`
	StartTime    string         `json:"start_time,omitempty"`
	EndTime      string         `json:"end_time,omitempty"`
	BreakStart   string         `json:"break_start,omitempty"`
	BreakEnd     string         `json:"break_end,omitempty"`
	IsAvailable  bool           `json:"is_available"`
	SlotDuration int            `json:"slot_duration"`
}

func (r ResolvedDaySchedule) HasBreak() bool {
	return r.BreakStart != "" && r.BreakEnd != ""
}

type Slot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// TimeRange is an occupied interval, [Start, End) in HH:mm.
type TimeRange struct {
	Start string `json:"start_time"`
	End   string `json:"end_time"`
}

type DayAvailability struct {
	Date         string         `json:"date"`
	ConsultantID uuid.UUID      `json:"consultant_id"`
	Source       ScheduleSource `json:"source"`
	IsAvailable  bool           `json:"is_available"`
	SlotDuration int            `json:"slot_duration"`
	Slots        []Slot         `json:"available_slots"`
	TotalSlots   int            `json:"total_slots"`
}

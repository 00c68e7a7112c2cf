package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"consultcare/pkg/timewindow"
)

// ScheduleOverride replaces one calendar day of a consultant's weekly
// schedule. Without working hours it is a blackout for the whole day.
type ScheduleOverride struct {
	ID           uuid.UUID `json:"id"`
	ConsultantID uuid.UUID `json:"consultant_id"`
	OverrideDate time.Time `json:"override_date"`
	StartTime    string    `json:"start_time,omitempty"`
	EndTime      string    `json:"end_time,omitempty"`
	BreakStart   string    `json:"break_start,omitempty"`
	BreakEnd     string    `json:"break_end,omitempty"`
	Reason       string    `json:"reason"`
	CreatedBy    Actor     `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (o ScheduleOverride) IsBlackout() bool {
	return o.StartTime == ""
}

func (o ScheduleOverride) Validate() error {
	if strings.TrimSpace(o.Reason) == "" {
		return fmt.Errorf("не указана причина: %w", ErrInvalidInput)
	}

	if (o.StartTime == "") != (o.EndTime == "") {
		return fmt.Errorf("время начала и окончания указываются вместе: %w", ErrInvalidWindow)
	}

	if o.IsBlackout() {
		if o.BreakStart != "" || o.BreakEnd != "" {
			return fmt.Errorf("перерыв без рабочего времени: %w", ErrInvalidWindow)
		}
		return nil
	}

	return timewindow.Validate(o.StartTime, o.EndTime, o.BreakStart, o.BreakEnd)
}

type CreateOverrideDTO struct {
	ConsultantID uuid.UUID `json:"consultant_id" binding:"required"`
	OverrideDate string    `json:"override_date" binding:"required"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	BreakStart   string    `json:"break_start"`
	BreakEnd     string    `json:"break_end"`
	Reason       string    `json:"reason" binding:"required"`
}

// UpdateOverrideDTO is a partial update; an empty string clears a time field.
type UpdateOverrideDTO struct {
	OverrideDate *string `json:"override_date"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
	BreakStart   *string `json:"break_start"`
	BreakEnd     *string `json:"break_end"`
	Reason       *string `json:"reason"`
}

type OverrideFilter struct {
	ConsultantID uuid.UUID  `json:"consultant_id"`
	From         *time.Time `json:"from"`
	To           *time.Time `json:"to"`
}

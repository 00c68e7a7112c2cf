package domain

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment is owned by the booking service; scheduling only reads the
// time ranges of appointments that still occupy the consultant.
type Appointment struct {
	ID              uuid.UUID         `json:"id"`
	ConsultantID    uuid.UUID         `json:"consultant_id"`
	CustomerID      uuid.UUID         `json:"customer_id"`
	AppointmentDate time.Time         `json:"appointment_date"`
	StartTime       string            `json:"start_time"`
	EndTime         string            `json:"end_time"`
	Status          AppointmentStatus `json:"status"`
}

func (a Appointment) Occupies() bool {
	return a.Status != AppointmentStatusCancelled
}

func (a Appointment) Range() TimeRange {
	return TimeRange{Start: a.StartTime, End: a.EndTime}
}

// BookedRanges keeps the ranges of appointments that still occupy the
// consultant, in input order.
func BookedRanges(appointments []Appointment) []TimeRange {
	booked := make([]TimeRange, 0, len(appointments))
	for _, a := range appointments {
		if a.Occupies() {
			booked = append(booked, a.Range())
		}
	}
	return booked
}

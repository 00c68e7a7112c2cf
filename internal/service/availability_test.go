package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"

	"consultcare/internal/domain"
)

func TestAvailability_ScenarioA_WeeklyTemplate(t *testing.T) {
	env := newTestEnv(t)
	env.mondayTemplate(t, 60)

	day, err := env.services.Availability.GenerateAvailableSlots(context.Background(), env.consultantID, mustDate(t, "2025-06-09"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"09:00-10:00", "10:00-11:00", "11:00-12:00",
		"13:00-14:00", "14:00-15:00", "15:00-16:00", "16:00-17:00",
	}
	if got := slotStrings(day.Slots); !equalStrings(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if day.Source != domain.SourceWeekly || !day.IsAvailable || day.TotalSlots != 7 {
		t.Errorf("unexpected day summary: %+v", day)
	}
}

func TestAvailability_ScenarioB_OverrideHours(t *testing.T) {
	env := newTestEnv(t)
	env.mondayTemplate(t, 60)

	_, err := env.services.Override.Create(context.Background(), env.staff.ID, domain.CreateOverrideDTO{
		ConsultantID: env.consultantID,
		OverrideDate: "2025-06-09",
		StartTime:    "10:00",
		EndTime:      "12:00",
		Reason:       "конференция",
	})
	if err != nil {
		t.Fatalf("create override: %v", err)
	}

	day, err := env.services.Availability.GenerateAvailableSlots(context.Background(), env.consultantID, mustDate(t, "2025-06-09"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"10:00-11:00", "11:00-12:00"}
	if got := slotStrings(day.Slots); !equalStrings(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if day.Source != domain.SourceOverride {
		t.Errorf("expected override source, got %s", day.Source)
	}
	if day.SlotDuration != 60 {
		t.Errorf("override day should use the template slot duration, got %d", day.SlotDuration)
	}
}

func TestAvailability_ScenarioC_Blackout(t *testing.T) {
	env := newTestEnv(t)
	env.mondayTemplate(t, 60)
	ctx := context.Background()

	_, err := env.services.Override.Create(ctx, env.staff.ID, domain.CreateOverrideDTO{
		ConsultantID: env.consultantID,
		OverrideDate: "2025-06-09",
		Reason:       "больничный",
	})
	if err != nil {
		t.Fatalf("create override: %v", err)
	}

	resolved, err := env.services.Availability.Resolve(ctx, env.consultantID, mustDate(t, "2025-06-09"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved.IsAvailable || resolved.Source != domain.SourceOverride {
		t.Errorf("expected unavailable override day, got %+v", resolved)
	}
	if resolved.StartTime != "" || resolved.BreakStart != "" {
		t.Errorf("weekly data must not leak into a blackout, got %+v", resolved)
	}

	day, err := env.services.Availability.GenerateAvailableSlots(ctx, env.consultantID, mustDate(t, "2025-06-09"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(day.Slots) != 0 {
		t.Errorf("expected no slots, got %v", slotStrings(day.Slots))
	}
	if env.appointments.calls != 0 {
		t.Error("bookings should not be read for an unavailable day")
	}
}

func TestAvailability_ScenarioD_Booking(t *testing.T) {
	env := newTestEnv(t)
	env.mondayTemplate(t, 30)

	date := mustDate(t, "2025-06-09")
	env.appointments.byDate[bookingKey(env.consultantID, date)] = []domain.Appointment{
		{ConsultantID: env.consultantID, AppointmentDate: date, StartTime: "11:00", EndTime: "11:30", Status: domain.AppointmentStatusConfirmed},
	}

	day, err := env.services.Availability.GenerateAvailableSlots(context.Background(), env.consultantID, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := map[string]bool{}
	for _, s := range slotStrings(day.Slots) {
		got[s] = true
	}
	if got["11:00-11:30"] {
		t.Error("booked slot must be absent")
	}
	if !got["10:30-11:00"] || !got["11:30-12:00"] {
		t.Errorf("neighbouring slots must be present, got %v", slotStrings(day.Slots))
	}
}

func TestAvailability_OverrideReplacesBreak(t *testing.T) {
	env := newTestEnv(t)
	env.mondayTemplate(t, 60)
	ctx := context.Background()

	// Override without a break: the template break must not be merged in.
	_, err := env.services.Override.Create(ctx, env.staff.ID, domain.CreateOverrideDTO{
		ConsultantID: env.consultantID,
		OverrideDate: "2025-06-09",
		StartTime:    "11:00",
		EndTime:      "14:00",
		Reason:       "смена графика",
	})
	if err != nil {
		t.Fatalf("create override: %v", err)
	}

	resolved, err := env.services.Availability.Resolve(ctx, env.consultantID, mustDate(t, "2025-06-09"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved.HasBreak() {
		t.Errorf("expected no break, got %s-%s", resolved.BreakStart, resolved.BreakEnd)
	}
}

func TestAvailability_UnavailableWeekday(t *testing.T) {
	env := newTestEnv(t)
	env.mondayTemplate(t, 60)

	// 2025-06-10 is a Tuesday, filled with the unavailable placeholder.
	resolved, err := env.services.Availability.Resolve(context.Background(), env.consultantID, mustDate(t, "2025-06-10"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved.IsAvailable || resolved.Source != domain.SourceWeekly {
		t.Errorf("expected unavailable weekly day, got %+v", resolved)
	}
}

func TestAvailability_EffectiveRangeGatesTemplate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.services.WeeklySchedule.Create(ctx, env.staff.ID, domain.CreateWeeklyScheduleDTO{
		ConsultantID: env.consultantID,
		WorkingDays: map[domain.Weekday]domain.WorkingDay{
			domain.Monday: {StartTime: "09:00", EndTime: "17:00", IsAvailable: true},
		},
		EffectiveFrom: "2025-06-02",
		EffectiveTo:   strPtr("2025-06-16"),
	})
	if err != nil {
		t.Fatalf("create weekly schedule: %v", err)
	}

	tests := map[string]bool{
		"2025-05-26": false,
		"2025-06-02": true,
		"2025-06-16": true,
		"2025-06-23": false,
	}
	for date, want := range tests {
		resolved, err := env.services.Availability.Resolve(ctx, env.consultantID, mustDate(t, date))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", date, err)
		}
		if resolved.IsAvailable != want {
			t.Errorf("%s: expected available=%v, got %+v", date, want, resolved)
		}
	}
}

func TestAvailability_NoSchedule(t *testing.T) {
	env := newTestEnv(t)

	resolved, err := env.services.Availability.Resolve(context.Background(), env.consultantID, mustDate(t, "2025-06-09"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved.IsAvailable || resolved.Source != domain.SourceNone {
		t.Errorf("expected unavailable with no source, got %+v", resolved)
	}
	if resolved.SlotDuration != domain.DefaultSlotDuration {
		t.Errorf("expected default slot duration, got %d", resolved.SlotDuration)
	}
}

func TestAvailability_UnknownConsultant(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.services.Availability.Resolve(context.Background(), uuid.New(), mustDate(t, "2025-06-09"))
	if !errors.Is(err, domain.ErrConsultantNotFound) || !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrConsultantNotFound, got %v", err)
	}
}

func TestAvailability_CancelledAppointmentFreesSlot(t *testing.T) {
	env := newTestEnv(t)
	env.mondayTemplate(t, 30)

	date := mustDate(t, "2025-06-09")
	env.appointments.byDate[bookingKey(env.consultantID, date)] = []domain.Appointment{
		{ConsultantID: env.consultantID, AppointmentDate: date, StartTime: "09:00", EndTime: "09:30", Status: domain.AppointmentStatusPending},
		{ConsultantID: env.consultantID, AppointmentDate: date, StartTime: "10:00", EndTime: "10:30", Status: domain.AppointmentStatusCancelled},
	}

	day, err := env.services.Availability.GenerateAvailableSlots(context.Background(), env.consultantID, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := map[string]bool{}
	for _, s := range slotStrings(day.Slots) {
		got[s] = true
	}
	if got["09:00-09:30"] {
		t.Error("pending appointment must block its slot")
	}
	if !got["10:00-10:30"] {
		t.Errorf("cancelled appointment must not block its slot, got %v", slotStrings(day.Slots))
	}
}

func TestAvailability_InactiveConsultant(t *testing.T) {
	env := newTestEnv(t)
	inactive := uuid.New()
	env.consultants.active[inactive] = false

	_, err := env.services.Availability.GenerateAvailableSlots(context.Background(), inactive, mustDate(t, "2025-06-09"))
	if !errors.Is(err, domain.ErrConsultantNotFound) {
		t.Errorf("expected ErrConsultantNotFound, got %v", err)
	}

	_, err = env.services.Override.Create(context.Background(), env.staff.ID, domain.CreateOverrideDTO{
		ConsultantID: inactive,
		OverrideDate: "2025-06-10",
		Reason:       "отпуск",
	})
	if !errors.Is(err, domain.ErrConsultantNotFound) {
		t.Errorf("override for inactive consultant: expected ErrConsultantNotFound, got %v", err)
	}
}

func TestAvailability_ResolveIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	env.mondayTemplate(t, 60)
	ctx := context.Background()
	date := mustDate(t, "2025-06-09")

	first, err := env.services.Availability.Resolve(ctx, env.consultantID, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := env.services.Availability.Resolve(ctx, env.consultantID, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated resolve differs: %+v vs %+v", first, second)
	}
}

func TestAvailability_ResolveRange(t *testing.T) {
	env := newTestEnv(t)
	env.mondayTemplate(t, 60)
	ctx := context.Background()

	_, err := env.services.Override.Create(ctx, env.staff.ID, domain.CreateOverrideDTO{
		ConsultantID: env.consultantID,
		OverrideDate: "2025-06-12",
		StartTime:    "10:00",
		EndTime:      "14:00",
		Reason:       "дополнительный прием",
	})
	if err != nil {
		t.Fatalf("create override: %v", err)
	}

	days, err := env.services.Availability.ResolveRange(ctx, env.consultantID, mustDate(t, "2025-06-09"), mustDate(t, "2025-06-16"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 8 {
		t.Fatalf("expected 8 days, got %d", len(days))
	}

	for _, d := range days {
		date := domain.FormatDate(d.Date)
		switch date {
		case "2025-06-09", "2025-06-16":
			if !d.IsAvailable || d.Source != domain.SourceWeekly {
				t.Errorf("%s: expected weekly working day, got %+v", date, d)
			}
		case "2025-06-12":
			if !d.IsAvailable || d.Source != domain.SourceOverride || d.StartTime != "10:00" {
				t.Errorf("%s: expected override day, got %+v", date, d)
			}
		default:
			if d.IsAvailable {
				t.Errorf("%s: expected day off, got %+v", date, d)
			}
		}
	}

	single, err := env.services.Availability.Resolve(ctx, env.consultantID, mustDate(t, "2025-06-12"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(*single, days[3]) {
		t.Errorf("range and single resolve disagree: %+v vs %+v", *single, days[3])
	}
}

func TestAvailability_ResolveRangeBounds(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.services.Availability.ResolveRange(ctx, env.consultantID, mustDate(t, "2025-06-10"), mustDate(t, "2025-06-09"))
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for reversed range, got %v", err)
	}

	_, err = env.services.Availability.ResolveRange(ctx, env.consultantID, mustDate(t, "2025-06-01"), mustDate(t, "2025-07-15"))
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for oversized range, got %v", err)
	}
}

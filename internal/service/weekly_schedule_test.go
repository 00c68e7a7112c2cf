package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"consultcare/internal/domain"
	"consultcare/internal/storage"
)

func TestWeeklySchedule_CreateFillsDefaults(t *testing.T) {
	env := newTestEnv(t)

	schedule, err := env.services.WeeklySchedule.Create(context.Background(), env.staff.ID, domain.CreateWeeklyScheduleDTO{
		ConsultantID: env.consultantID,
		WorkingDays: map[domain.Weekday]domain.WorkingDay{
			domain.Wednesday: {StartTime: "10:00", EndTime: "18:00", IsAvailable: true},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if schedule.ID == uuid.Nil {
		t.Error("expected an id")
	}
	if schedule.DefaultSlotDuration != domain.DefaultSlotDuration {
		t.Errorf("expected default slot duration, got %d", schedule.DefaultSlotDuration)
	}
	if !schedule.EffectiveFrom.Equal(domain.NormalizeDate(testNow)) {
		t.Errorf("effective_from should default to today, got %v", schedule.EffectiveFrom)
	}
	for _, w := range domain.Weekdays {
		if w == domain.Wednesday {
			continue
		}
		if schedule.WorkingDays.Day(w) != domain.DefaultWorkingDay() {
			t.Errorf("%s should hold the placeholder, got %+v", w, schedule.WorkingDays.Day(w))
		}
	}

	want := domain.Actor{UserID: env.staff.ID, Role: domain.UserRoleStaff, Name: env.staff.FullName}
	if schedule.CreatedBy != want {
		t.Errorf("expected actor %+v, got %+v", want, schedule.CreatedBy)
	}
}

func TestWeeklySchedule_CreateTwiceFails(t *testing.T) {
	env := newTestEnv(t)
	env.mondayTemplate(t, 60)

	_, err := env.services.WeeklySchedule.Create(context.Background(), env.staff.ID, domain.CreateWeeklyScheduleDTO{
		ConsultantID: env.consultantID,
	})
	if !errors.Is(err, domain.ErrAlreadyExists) || !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestWeeklySchedule_StorageConstraintBacksGuard(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// A concurrent writer inserted a row after the guard ran; the repository
	// reports the unique violation the same way.
	env.weekly.err = domain.ErrAlreadyExists
	_, err := env.services.WeeklySchedule.Create(ctx, env.staff.ID, domain.CreateWeeklyScheduleDTO{ConsultantID: env.consultantID})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestWeeklySchedule_CreateValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		dto     domain.CreateWeeklyScheduleDTO
		wantErr error
		mention string
	}{
		{
			name: "break outside window names weekday",
			dto: domain.CreateWeeklyScheduleDTO{
				ConsultantID: env.consultantID,
				WorkingDays: map[domain.Weekday]domain.WorkingDay{
					domain.Friday: {StartTime: "09:00", EndTime: "13:00", BreakStart: "12:30", BreakEnd: "13:30", IsAvailable: true},
				},
			},
			wantErr: domain.ErrInvalidWindow,
			mention: "friday",
		},
		{
			name: "malformed time",
			dto: domain.CreateWeeklyScheduleDTO{
				ConsultantID: env.consultantID,
				WorkingDays: map[domain.Weekday]domain.WorkingDay{
					domain.Monday: {StartTime: "9am", EndTime: "17:00"},
				},
			},
			wantErr: domain.ErrInvalidFormat,
			mention: "monday",
		},
		{
			name:    "slot duration too short",
			dto:     domain.CreateWeeklyScheduleDTO{ConsultantID: env.consultantID, DefaultSlotDuration: 10},
			wantErr: domain.ErrInvalidDuration,
		},
		{
			name:    "bad effective date",
			dto:     domain.CreateWeeklyScheduleDTO{ConsultantID: env.consultantID, EffectiveFrom: "01/06/2025"},
			wantErr: domain.ErrInvalidDate,
		},
		{
			name: "effective_to before effective_from",
			dto: domain.CreateWeeklyScheduleDTO{
				ConsultantID:  env.consultantID,
				EffectiveFrom: "2025-06-10",
				EffectiveTo:   strPtr("2025-06-01"),
			},
			wantErr: domain.ErrInvalidWindow,
		},
		{
			name:    "unknown consultant",
			dto:     domain.CreateWeeklyScheduleDTO{ConsultantID: uuid.New()},
			wantErr: domain.ErrConsultantNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.services.WeeklySchedule.Create(ctx, env.staff.ID, tt.dto)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.mention != "" && !strings.Contains(err.Error(), tt.mention) {
				t.Errorf("error should mention %s, got %q", tt.mention, err.Error())
			}
		})
	}

	if len(env.weekly.items) != 0 {
		t.Errorf("failed creates must not write, found %d records", len(env.weekly.items))
	}
}

func TestWeeklySchedule_CreateUnknownActor(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.services.WeeklySchedule.Create(context.Background(), uuid.New(), domain.CreateWeeklyScheduleDTO{
		ConsultantID: env.consultantID,
	})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestWeeklySchedule_UpdateMergesWeekdays(t *testing.T) {
	env := newTestEnv(t)
	created := env.mondayTemplate(t, 60)

	updated, err := env.services.WeeklySchedule.Update(context.Background(), env.consultantID, domain.UpdateWeeklyScheduleDTO{
		WorkingDays: map[domain.Weekday]domain.WorkingDay{
			domain.Tuesday: {StartTime: "14:00", EndTime: "20:00", IsAvailable: true},
		},
		DefaultSlotDuration: intPtr(45),
		Notes:               strPtr("вечерние приемы по вторникам"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.WorkingDays.Day(domain.Monday) != created.WorkingDays.Day(domain.Monday) {
		t.Errorf("monday must be retained, got %+v", updated.WorkingDays.Day(domain.Monday))
	}
	if got := updated.WorkingDays.Day(domain.Tuesday); got.StartTime != "14:00" || !got.IsAvailable {
		t.Errorf("tuesday must be replaced, got %+v", got)
	}
	if updated.DefaultSlotDuration != 45 {
		t.Errorf("expected 45, got %d", updated.DefaultSlotDuration)
	}
	if updated.CreatedBy != created.CreatedBy {
		t.Error("created_by must not change on update")
	}

	stored, err := env.services.WeeklySchedule.Get(context.Background(), env.consultantID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.WorkingDays != updated.WorkingDays || stored.Notes != updated.Notes {
		t.Error("update was not persisted")
	}
}

func TestWeeklySchedule_UpdateClearsEffectiveTo(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.services.WeeklySchedule.Create(ctx, env.staff.ID, domain.CreateWeeklyScheduleDTO{
		ConsultantID:  env.consultantID,
		EffectiveFrom: "2025-06-01",
		EffectiveTo:   strPtr("2025-06-30"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := env.services.WeeklySchedule.Update(ctx, env.consultantID, domain.UpdateWeeklyScheduleDTO{
		EffectiveTo: strPtr(""),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.EffectiveTo != nil {
		t.Errorf("expected open-ended schedule, got %v", updated.EffectiveTo)
	}
}

func TestWeeklySchedule_UpdateInvalidKeepsStored(t *testing.T) {
	env := newTestEnv(t)
	created := env.mondayTemplate(t, 60)

	_, err := env.services.WeeklySchedule.Update(context.Background(), env.consultantID, domain.UpdateWeeklyScheduleDTO{
		WorkingDays: map[domain.Weekday]domain.WorkingDay{
			domain.Monday: {StartTime: "17:00", EndTime: "09:00", IsAvailable: true},
		},
	})
	if !errors.Is(err, domain.ErrInvalidWindow) {
		t.Fatalf("expected ErrInvalidWindow, got %v", err)
	}

	stored := env.weekly.items[env.consultantID]
	if stored.WorkingDays != created.WorkingDays {
		t.Error("invalid update must not be persisted")
	}
}

func TestWeeklySchedule_UpdateMissing(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.services.WeeklySchedule.Update(context.Background(), env.consultantID, domain.UpdateWeeklyScheduleDTO{})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestWeeklySchedule_DeleteArchives(t *testing.T) {
	env := newTestEnv(t)
	created := env.mondayTemplate(t, 60)
	ctx := context.Background()

	if err := env.services.WeeklySchedule.Delete(ctx, env.consultantID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := env.services.WeeklySchedule.Get(ctx, env.consultantID); !errors.Is(err, domain.ErrScheduleNotFound) {
		t.Errorf("expected ErrScheduleNotFound after delete, got %v", err)
	}

	var archived domain.WeeklySchedule
	if err := env.archive.GetJSON(ctx, storage.WeeklyScheduleKey(env.consultantID, created.ID), &archived); err != nil {
		t.Fatalf("expected archived copy: %v", err)
	}
	if archived.ID != created.ID || archived.WorkingDays != created.WorkingDays {
		t.Errorf("archived copy differs: %+v", archived)
	}

	if err := env.services.WeeklySchedule.Delete(ctx, env.consultantID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestWeeklySchedule_DeleteAbortsWhenArchiveFails(t *testing.T) {
	env := newTestEnv(t)
	env.mondayTemplate(t, 60)
	env.archive.err = errors.New("bucket unavailable")

	if err := env.services.WeeklySchedule.Delete(context.Background(), env.consultantID); err == nil {
		t.Fatal("expected error when archive fails")
	}
	if _, ok := env.weekly.items[env.consultantID]; !ok {
		t.Error("schedule must be kept when archiving fails")
	}
}

func TestWeeklySchedule_List(t *testing.T) {
	env := newTestEnv(t)
	env.mondayTemplate(t, 60)

	schedules, total, err := env.services.WeeklySchedule.List(context.Background(), domain.WeeklyScheduleFilter{Limit: 1000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 || len(schedules) != 1 {
		t.Errorf("expected one schedule, got %d of %d", len(schedules), total)
	}
}

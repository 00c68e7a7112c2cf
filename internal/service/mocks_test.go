package service

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"consultcare/config"
	"consultcare/internal/domain"
	"consultcare/internal/repository"
)

// Map-backed repositories. They enforce the same unique keys as the SQL schema.

type mockWeeklyRepo struct {
	items map[uuid.UUID]domain.WeeklySchedule
	err   error
}

func newMockWeeklyRepo() *mockWeeklyRepo {
	return &mockWeeklyRepo{items: make(map[uuid.UUID]domain.WeeklySchedule)}
}

func (m *mockWeeklyRepo) Create(_ context.Context, s domain.WeeklySchedule) (uuid.UUID, error) {
	if m.err != nil {
		return uuid.Nil, m.err
	}
	if _, ok := m.items[s.ConsultantID]; ok {
		return uuid.Nil, domain.ErrAlreadyExists
	}
	s.ID = uuid.New()
	m.items[s.ConsultantID] = s
	return s.ID, nil
}

func (m *mockWeeklyRepo) GetByConsultantID(_ context.Context, consultantID uuid.UUID) (*domain.WeeklySchedule, error) {
	if m.err != nil {
		return nil, m.err
	}
	s, ok := m.items[consultantID]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (m *mockWeeklyRepo) Update(_ context.Context, s domain.WeeklySchedule) error {
	if _, ok := m.items[s.ConsultantID]; !ok {
		return domain.ErrScheduleNotFound
	}
	m.items[s.ConsultantID] = s
	return nil
}

func (m *mockWeeklyRepo) Delete(_ context.Context, consultantID uuid.UUID) error {
	if _, ok := m.items[consultantID]; !ok {
		return domain.ErrScheduleNotFound
	}
	delete(m.items, consultantID)
	return nil
}

func (m *mockWeeklyRepo) ExistsByConsultantID(_ context.Context, consultantID uuid.UUID) (bool, error) {
	_, ok := m.items[consultantID]
	return ok, nil
}

func (m *mockWeeklyRepo) List(_ context.Context, filter domain.WeeklyScheduleFilter) ([]domain.WeeklySchedule, int, error) {
	all := make([]domain.WeeklySchedule, 0, len(m.items))
	for _, s := range m.items {
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })

	total := len(all)
	if filter.Offset >= total {
		return []domain.WeeklySchedule{}, total, nil
	}
	end := filter.Offset + filter.Limit
	if end > total {
		end = total
	}
	return all[filter.Offset:end], total, nil
}

type mockOverrideRepo struct {
	items map[uuid.UUID]domain.ScheduleOverride
}

func newMockOverrideRepo() *mockOverrideRepo {
	return &mockOverrideRepo{items: make(map[uuid.UUID]domain.ScheduleOverride)}
}

func (m *mockOverrideRepo) taken(consultantID uuid.UUID, date time.Time, excludeID *uuid.UUID) bool {
	for _, o := range m.items {
		if excludeID != nil && o.ID == *excludeID {
			continue
		}
		if o.ConsultantID == consultantID && o.OverrideDate.Equal(domain.NormalizeDate(date)) {
			return true
		}
	}
	return false
}

func (m *mockOverrideRepo) Create(_ context.Context, o domain.ScheduleOverride) (uuid.UUID, error) {
	if m.taken(o.ConsultantID, o.OverrideDate, nil) {
		return uuid.Nil, domain.ErrConflict
	}
	o.ID = uuid.New()
	m.items[o.ID] = o
	return o.ID, nil
}

func (m *mockOverrideRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.ScheduleOverride, error) {
	o, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (m *mockOverrideRepo) Update(_ context.Context, o domain.ScheduleOverride) error {
	if _, ok := m.items[o.ID]; !ok {
		return domain.ErrOverrideNotFound
	}
	if m.taken(o.ConsultantID, o.OverrideDate, &o.ID) {
		return domain.ErrConflict
	}
	m.items[o.ID] = o
	return nil
}

func (m *mockOverrideRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.items[id]; !ok {
		return domain.ErrOverrideNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *mockOverrideRepo) FindByConsultantAndDate(_ context.Context, consultantID uuid.UUID, date time.Time) (*domain.ScheduleOverride, error) {
	for _, o := range m.items {
		if o.ConsultantID == consultantID && o.OverrideDate.Equal(domain.NormalizeDate(date)) {
			return &o, nil
		}
	}
	return nil, nil
}

func (m *mockOverrideRepo) ListByConsultant(_ context.Context, filter domain.OverrideFilter) ([]domain.ScheduleOverride, error) {
	result := make([]domain.ScheduleOverride, 0)
	for _, o := range m.items {
		if o.ConsultantID != filter.ConsultantID {
			continue
		}
		if filter.From != nil && o.OverrideDate.Before(domain.NormalizeDate(*filter.From)) {
			continue
		}
		if filter.To != nil && o.OverrideDate.After(domain.NormalizeDate(*filter.To)) {
			continue
		}
		result = append(result, o)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].OverrideDate.Before(result[j].OverrideDate) })
	return result, nil
}

func (m *mockOverrideRepo) ExistsForDate(_ context.Context, consultantID uuid.UUID, date time.Time, excludeID *uuid.UUID) (bool, error) {
	return m.taken(consultantID, date, excludeID), nil
}

// mockConsultantRepo maps a consultant id to its is_active flag.
type mockConsultantRepo struct {
	active map[uuid.UUID]bool
}

func (m *mockConsultantRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Consultant, error) {
	active, ok := m.active[id]
	if !ok {
		return nil, nil
	}
	return &domain.Consultant{ID: id, IsActive: active}, nil
}

type mockUserRepo struct {
	users map[uuid.UUID]domain.User
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

type mockAppointmentRepo struct {
	byDate map[string][]domain.Appointment
	calls  int
}

func bookingKey(consultantID uuid.UUID, date time.Time) string {
	return consultantID.String() + "/" + domain.FormatDate(date)
}

func (m *mockAppointmentRepo) ListByDate(_ context.Context, consultantID uuid.UUID, date time.Time) ([]domain.Appointment, error) {
	m.calls++
	return m.byDate[bookingKey(consultantID, date)], nil
}

type mockArchive struct {
	objects map[string][]byte
	err     error
}

func (m *mockArchive) PutJSON(_ context.Context, key string, v interface{}) error {
	if m.err != nil {
		return m.err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.objects[key] = data
	return nil
}

func (m *mockArchive) GetJSON(_ context.Context, key string, v interface{}) error {
	data, ok := m.objects[key]
	if !ok {
		return errors.New("object not found")
	}
	return json.Unmarshal(data, v)
}

// testEnv wires the services over the mocks with a fixed clock.
type testEnv struct {
	services     *Services
	weekly       *mockWeeklyRepo
	overrides    *mockOverrideRepo
	appointments *mockAppointmentRepo
	consultants  *mockConsultantRepo
	archive      *mockArchive
	consultantID uuid.UUID
	staff        domain.User
}

// testNow is Monday 2025-06-09, 08:30 UTC.
var testNow = time.Date(2025, 6, 9, 8, 30, 0, 0, time.UTC)

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	consultantID := uuid.New()
	staff := domain.User{
		ID:       uuid.New(),
		FullName: "Анна Смирнова",
		Email:    "anna@example.com",
		Role:     domain.UserRoleStaff,
		IsActive: true,
	}

	env := &testEnv{
		weekly:       newMockWeeklyRepo(),
		overrides:    newMockOverrideRepo(),
		appointments: &mockAppointmentRepo{byDate: make(map[string][]domain.Appointment)},
		consultants:  &mockConsultantRepo{active: map[uuid.UUID]bool{consultantID: true}},
		archive:      &mockArchive{objects: make(map[string][]byte)},
		consultantID: consultantID,
		staff:        staff,
	}

	repos := &repository.Repositories{
		User:           &mockUserRepo{users: map[uuid.UUID]domain.User{staff.ID: staff}},
		Consultant:     env.consultants,
		Appointment:    env.appointments,
		WeeklySchedule: env.weekly,
		Override:       env.overrides,
	}

	env.services = NewServices(Deps{
		Repos:  repos,
		Logger: zap.NewNop(),
		Config: &config.Config{
			JWT:          config.JWTConfig{SigningKey: "test-key", AccessTokenTTL: 15 * time.Minute},
			Availability: config.AvailabilityConfig{MaxRangeDays: 31},
		},
		Archive: env.archive,
		Now:     func() time.Time { return testNow },
	})

	return env
}

// mondayTemplate creates the weekly schedule used by the end-to-end scenarios:
// Monday 09:00-17:00 with a 12:00-13:00 break.
func (e *testEnv) mondayTemplate(t *testing.T, slotDuration int) *domain.WeeklySchedule {
	t.Helper()

	schedule, err := e.services.WeeklySchedule.Create(context.Background(), e.staff.ID, domain.CreateWeeklyScheduleDTO{
		ConsultantID: e.consultantID,
		WorkingDays: map[domain.Weekday]domain.WorkingDay{
			domain.Monday: {
				StartTime:   "09:00",
				EndTime:     "17:00",
				BreakStart:  "12:00",
				BreakEnd:    "13:00",
				IsAvailable: true,
			},
		},
		DefaultSlotDuration: slotDuration,
		EffectiveFrom:       "2025-06-01",
	})
	if err != nil {
		t.Fatalf("create weekly schedule: %v", err)
	}
	return schedule
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %s: %v", s, err)
	}
	return d
}

func slotStrings(slots []domain.Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.StartTime + "-" + s.EndTime
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

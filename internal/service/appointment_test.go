package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Murugadoss7/dental-app/internal/domain"
	"github.com/Murugadoss7/dental-app/internal/lock"
)

type appointmentFixture struct {
	svc       *AppointmentServiceImpl
	repo      *fakeAppointmentRepo
	settings  *fakeSettingsRepo
	doctorID  uuid.UUID
	patientID uuid.UUID
}

func newAppointmentFixture(t *testing.T) *appointmentFixture {
	t.Helper()

	allDays := []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
	working := make([]domain.WorkingHours, 0, len(allDays))
	for _, day := range allDays {
		working = append(working, domain.WorkingHours{
			Day: day, StartTime: "09:00", EndTime: "17:00", IsWorking: true,
		})
	}

	doctorRepo := newFakeDoctorRepo()
	doctor, err := doctorRepo.Create(context.Background(), domain.Doctor{
		FirstName:    "Anita",
		LastName:     "Rao",
		WorkingHours: working,
	})
	require.NoError(t, err)

	patientRepo := newFakePatientRepo()
	patient, err := patientRepo.Create(context.Background(), domain.Patient{
		FirstName: "Ravi",
		LastName:  "Kumar",
	})
	require.NoError(t, err)

	settingsRepo := &fakeSettingsRepo{settings: &domain.ClinicSettings{
		ID:                 uuid.New(),
		SlotDuration:       30,
		BufferTime:         0,
		AdvanceBookingDays: 30,
		WorkingDays:        allDays,
		WorkingHours:       domain.WorkingWindow{StartTime: "09:00", EndTime: "17:00"},
	}}

	repo := newFakeAppointmentRepo()
	svc := NewAppointmentService(repo, doctorRepo, patientRepo, settingsRepo, lock.NewNoopLocker(), zap.NewNop())

	return &appointmentFixture{
		svc:       svc,
		repo:      repo,
		settings:  settingsRepo,
		doctorID:  doctor.ID,
		patientID: patient.ID,
	}
}

// slotAt anchors a slot start HH:mm on tomorrow's date in UTC, safely inside
// the booking horizon.
func slotAt(hour, minute int) time.Time {
	tomorrow := time.Now().UTC().AddDate(0, 0, 1)
	return time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), hour, minute, 0, 0, time.UTC)
}

func (f *appointmentFixture) createDTO(start time.Time) domain.CreateAppointmentDTO {
	return domain.CreateAppointmentDTO{
		PatientID: f.patientID.String(),
		DoctorID:  f.doctorID.String(),
		StartTime: start,
		EndTime:   start.Add(30 * time.Minute),
		Reason:    "toothache",
	}
}

func TestAppointmentCreate(t *testing.T) {
	f := newAppointmentFixture(t)

	resp, err := f.svc.Create(context.Background(), f.createDTO(slotAt(9, 0)))
	require.NoError(t, err)

	assert.Equal(t, domain.AppointmentStatusScheduled, resp.Status)
	assert.Nil(t, resp.PreviousAppointmentID)
	assert.Equal(t, "Anita", resp.Doctor.FirstName)
	assert.Equal(t, "Ravi", resp.Patient.FirstName)
}

func TestAppointmentCreate_RejectsPartialSlot(t *testing.T) {
	f := newAppointmentFixture(t)

	// 15 minutes inside a 30-minute slot: contained, but not an exact match.
	dto := f.createDTO(slotAt(9, 0))
	dto.EndTime = dto.StartTime.Add(15 * time.Minute)

	_, err := f.svc.Create(context.Background(), dto)
	assert.ErrorIs(t, err, domain.ErrSlotNotAvailable)
}

func TestAppointmentCreate_RejectsOffGridStart(t *testing.T) {
	f := newAppointmentFixture(t)

	_, err := f.svc.Create(context.Background(), f.createDTO(slotAt(9, 10)))
	assert.ErrorIs(t, err, domain.ErrSlotNotAvailable)
}

func TestAppointmentCreate_RejectsDoubleBooking(t *testing.T) {
	f := newAppointmentFixture(t)

	_, err := f.svc.Create(context.Background(), f.createDTO(slotAt(10, 0)))
	require.NoError(t, err)

	_, err = f.svc.Create(context.Background(), f.createDTO(slotAt(10, 0)))
	assert.ErrorIs(t, err, domain.ErrSlotNotAvailable)
}

func TestAppointmentCreate_AdjacentSlotsDoNotConflict(t *testing.T) {
	f := newAppointmentFixture(t)

	_, err := f.svc.Create(context.Background(), f.createDTO(slotAt(10, 0)))
	require.NoError(t, err)

	// [10:30, 11:00) shares only the boundary instant with [10:00, 10:30).
	_, err = f.svc.Create(context.Background(), f.createDTO(slotAt(10, 30)))
	assert.NoError(t, err)
}

func TestAppointmentCreate_SettingsMissing(t *testing.T) {
	f := newAppointmentFixture(t)
	f.settings.settings = nil

	_, err := f.svc.Create(context.Background(), f.createDTO(slotAt(9, 0)))
	assert.ErrorIs(t, err, domain.ErrSettingsNotConfigured)
}

func TestAppointmentCreate_UnknownPatient(t *testing.T) {
	f := newAppointmentFixture(t)

	dto := f.createDTO(slotAt(9, 0))
	dto.PatientID = uuid.NewString()

	_, err := f.svc.Create(context.Background(), dto)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAppointmentCreate_AdvanceBookingBoundary(t *testing.T) {
	f := newAppointmentFixture(t)
	f.settings.settings.AdvanceBookingDays = 5

	onBoundary := time.Now().UTC().AddDate(0, 0, 5)
	onBoundary = time.Date(onBoundary.Year(), onBoundary.Month(), onBoundary.Day(), 9, 0, 0, 0, time.UTC)
	_, err := f.svc.Create(context.Background(), f.createDTO(onBoundary))
	assert.NoError(t, err, "start on the last allowed day should be accepted")

	beyond := onBoundary.AddDate(0, 0, 1)
	_, err = f.svc.Create(context.Background(), f.createDTO(beyond))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAppointmentCancel_FreesSlot(t *testing.T) {
	f := newAppointmentFixture(t)

	created, err := f.svc.Create(context.Background(), f.createDTO(slotAt(11, 0)))
	require.NoError(t, err)

	cancelled, err := f.svc.Cancel(context.Background(), created.ID, domain.CancelAppointmentDTO{
		CancelledReason: "patient request",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.AppointmentStatusCancelled, cancelled.Status)
	require.NotNil(t, cancelled.CancelledReason)
	assert.Equal(t, "patient request", *cancelled.CancelledReason)

	_, err = f.svc.Create(context.Background(), f.createDTO(slotAt(11, 0)))
	assert.NoError(t, err, "cancelled appointment should stop blocking its slot")
}

func TestAppointmentReschedule(t *testing.T) {
	f := newAppointmentFixture(t)

	created, err := f.svc.Create(context.Background(), f.createDTO(slotAt(9, 0)))
	require.NoError(t, err)

	moved, err := f.svc.Reschedule(context.Background(), created.ID, domain.RescheduleAppointmentDTO{
		NewStartTime: slotAt(14, 0),
		NewEndTime:   slotAt(14, 30),
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, moved.ID, "reschedule mutates the record in place")
	assert.Equal(t, domain.AppointmentStatusRescheduled, moved.Status)
	require.NotNil(t, moved.PreviousAppointmentID)
	assert.Equal(t, created.ID, *moved.PreviousAppointmentID)

	// The old interval is free again, the new one blocks.
	_, err = f.svc.Create(context.Background(), f.createDTO(slotAt(9, 0)))
	assert.NoError(t, err)
	_, err = f.svc.Create(context.Background(), f.createDTO(slotAt(14, 0)))
	assert.ErrorIs(t, err, domain.ErrSlotNotAvailable)
}

func TestAppointmentReschedule_KeepsFirstAncestor(t *testing.T) {
	f := newAppointmentFixture(t)

	created, err := f.svc.Create(context.Background(), f.createDTO(slotAt(9, 0)))
	require.NoError(t, err)

	_, err = f.svc.Reschedule(context.Background(), created.ID, domain.RescheduleAppointmentDTO{
		NewStartTime: slotAt(10, 0),
		NewEndTime:   slotAt(10, 30),
	})
	require.NoError(t, err)

	moved, err := f.svc.Reschedule(context.Background(), created.ID, domain.RescheduleAppointmentDTO{
		NewStartTime: slotAt(15, 0),
		NewEndTime:   slotAt(15, 30),
	})
	require.NoError(t, err)

	require.NotNil(t, moved.PreviousAppointmentID)
	assert.Equal(t, created.ID, *moved.PreviousAppointmentID,
		"chain always points at the first appointment, not the previous hop")
}

func TestAppointmentReschedule_RejectsOccupiedTarget(t *testing.T) {
	f := newAppointmentFixture(t)

	first, err := f.svc.Create(context.Background(), f.createDTO(slotAt(9, 0)))
	require.NoError(t, err)
	_, err = f.svc.Create(context.Background(), f.createDTO(slotAt(9, 30)))
	require.NoError(t, err)

	_, err = f.svc.Reschedule(context.Background(), first.ID, domain.RescheduleAppointmentDTO{
		NewStartTime: slotAt(9, 30),
		NewEndTime:   slotAt(10, 0),
	})
	assert.ErrorIs(t, err, domain.ErrSlotNotAvailable)
}

func TestAppointmentUpdate_SameSlotExcludesSelf(t *testing.T) {
	f := newAppointmentFixture(t)

	created, err := f.svc.Create(context.Background(), f.createDTO(slotAt(9, 0)))
	require.NoError(t, err)

	// Re-submitting the appointment's own bounds must not trip the conflict
	// check against itself.
	start := slotAt(9, 0)
	end := slotAt(9, 30)
	updated, err := f.svc.Update(context.Background(), created.ID, domain.UpdateAppointmentDTO{
		StartTime: &start,
		EndTime:   &end,
	})
	require.NoError(t, err)
	assert.True(t, updated.StartTime.Equal(start))
}

func TestAppointmentUpdate_NotesOnlySkipsSlotCheck(t *testing.T) {
	f := newAppointmentFixture(t)

	created, err := f.svc.Create(context.Background(), f.createDTO(slotAt(9, 0)))
	require.NoError(t, err)

	// Break the doctor's schedule so any slot re-check would fail.
	f.settings.settings.SlotDuration = 45

	notes := "bring previous x-rays"
	updated, err := f.svc.Update(context.Background(), created.ID, domain.UpdateAppointmentDTO{Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, notes, updated.Notes)
}

func TestAppointmentList_FiltersByStatus(t *testing.T) {
	f := newAppointmentFixture(t)

	created, err := f.svc.Create(context.Background(), f.createDTO(slotAt(9, 0)))
	require.NoError(t, err)
	_, err = f.svc.Create(context.Background(), f.createDTO(slotAt(10, 0)))
	require.NoError(t, err)

	_, err = f.svc.Cancel(context.Background(), created.ID, domain.CancelAppointmentDTO{CancelledReason: "no show"})
	require.NoError(t, err)

	status := domain.AppointmentStatusScheduled
	list, total, err := f.svc.List(context.Background(), domain.AppointmentFilter{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, list, 1)
	assert.Equal(t, domain.AppointmentStatusScheduled, list[0].Status)
}

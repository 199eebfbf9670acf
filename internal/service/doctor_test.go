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
)

func newDoctorService(t *testing.T) (*DoctorServiceImpl, *fakeDoctorRepo, *fakeSettingsRepo, *fakeAppointmentRepo) {
	t.Helper()
	doctorRepo := newFakeDoctorRepo()
	settingsRepo := &fakeSettingsRepo{settings: &domain.ClinicSettings{
		ID:                 uuid.New(),
		SlotDuration:       30,
		BufferTime:         0,
		AdvanceBookingDays: 30,
	}}
	appointmentRepo := newFakeAppointmentRepo()
	svc := NewDoctorService(doctorRepo, settingsRepo, appointmentRepo, zap.NewNop())
	return svc, doctorRepo, settingsRepo, appointmentRepo
}

func validDoctorDTO() domain.CreateDoctorDTO {
	return domain.CreateDoctorDTO{
		FirstName:      "anita",
		LastName:       "rao",
		Email:          "anita.rao@example.com",
		ContactNumber:  "+14155552671",
		Specialization: "Orthodontics",
		WorkingHours: []domain.WorkingHours{
			{Day: "monday", StartTime: "09:00", EndTime: "12:00", IsWorking: true},
		},
	}
}

func TestDoctorCreate_FormatsNames(t *testing.T) {
	svc, _, _, _ := newDoctorService(t)

	created, err := svc.Create(context.Background(), validDoctorDTO())
	require.NoError(t, err)
	assert.Equal(t, "Anita", created.FirstName)
	assert.Equal(t, "Rao", created.LastName)
}

func TestDoctorCreate_RejectsBadEmail(t *testing.T) {
	svc, _, _, _ := newDoctorService(t)

	dto := validDoctorDTO()
	dto.Email = "not-an-email"

	_, err := svc.Create(context.Background(), dto)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDoctorCreate_RejectsBadScheduleEntry(t *testing.T) {
	svc, _, _, _ := newDoctorService(t)

	dto := validDoctorDTO()
	dto.WorkingHours = append(dto.WorkingHours, domain.WorkingHours{
		Day: "monday", StartTime: "9am", EndTime: "12:00", IsWorking: true,
	})

	_, err := svc.Create(context.Background(), dto)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDoctorGetAvailableSlots(t *testing.T) {
	svc, _, _, appointmentRepo := newDoctorService(t)

	created, err := svc.Create(context.Background(), validDoctorDTO())
	require.NoError(t, err)

	// 2025-06-02 is a Monday.
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	slots, err := svc.GetAvailableSlots(context.Background(), created.ID, date)
	require.NoError(t, err)
	require.Len(t, slots, 6, "09:00-12:00 with 30-minute slots and no buffer")

	// Occupy the first slot and it disappears from the list.
	_, err = appointmentRepo.Create(context.Background(), domain.Appointment{
		DoctorID:  created.ID,
		PatientID: uuid.New(),
		StartTime: slots[0].StartTime,
		EndTime:   slots[0].EndTime,
		Status:    domain.AppointmentStatusScheduled,
	})
	require.NoError(t, err)

	remaining, err := svc.GetAvailableSlots(context.Background(), created.ID, date)
	require.NoError(t, err)
	assert.Len(t, remaining, 5)
	assert.True(t, remaining[0].StartTime.Equal(slots[1].StartTime))
}

func TestDoctorGetAvailableSlots_SettingsMissing(t *testing.T) {
	svc, _, settingsRepo, _ := newDoctorService(t)
	settingsRepo.settings = nil

	created, err := svc.Create(context.Background(), validDoctorDTO())
	require.NoError(t, err)

	_, err = svc.GetAvailableSlots(context.Background(), created.ID, time.Now())
	assert.ErrorIs(t, err, domain.ErrSettingsNotConfigured)
}

func TestDoctorGetAvailableSlots_UnknownDoctor(t *testing.T) {
	svc, _, _, _ := newDoctorService(t)

	_, err := svc.GetAvailableSlots(context.Background(), uuid.New(), time.Now())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDoctorUpdate_PatchesSchedule(t *testing.T) {
	svc, _, _, _ := newDoctorService(t)

	created, err := svc.Create(context.Background(), validDoctorDTO())
	require.NoError(t, err)

	newHours := []domain.WorkingHours{
		{Day: "friday", StartTime: "10:00", EndTime: "16:00", IsWorking: true},
	}
	updated, err := svc.Update(context.Background(), created.ID, domain.UpdateDoctorDTO{
		WorkingHours: &newHours,
	})
	require.NoError(t, err)

	require.Len(t, updated.WorkingHours, 1)
	assert.Equal(t, "friday", updated.WorkingHours[0].Day)
	assert.Equal(t, "anita.rao@example.com", updated.Email, "untouched fields survive the patch")
}

package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Murugadoss7/dental-app/internal/domain"
)

type fakeSettingsRepo struct {
	settings *domain.ClinicSettings
}

func (r *fakeSettingsRepo) Create(_ context.Context, settings domain.ClinicSettings) (*domain.ClinicSettings, error) {
	if r.settings != nil {
		return nil, domain.ErrSettingsExist
	}
	settings.ID = uuid.New()
	settings.CreatedAt = time.Now()
	settings.UpdatedAt = settings.CreatedAt
	r.settings = &settings
	copied := settings
	return &copied, nil
}

func (r *fakeSettingsRepo) Get(_ context.Context) (*domain.ClinicSettings, error) {
	if r.settings == nil {
		return nil, domain.ErrNotFound
	}
	copied := *r.settings
	return &copied, nil
}

func (r *fakeSettingsRepo) Update(_ context.Context, settings domain.ClinicSettings) error {
	if r.settings == nil {
		return domain.ErrNotFound
	}
	settings.ID = r.settings.ID
	r.settings = &settings
	return nil
}

type fakeDoctorRepo struct {
	doctors map[uuid.UUID]domain.Doctor
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{doctors: make(map[uuid.UUID]domain.Doctor)}
}

func (r *fakeDoctorRepo) Create(_ context.Context, doctor domain.Doctor) (*domain.Doctor, error) {
	doctor.ID = uuid.New()
	r.doctors[doctor.ID] = doctor
	copied := doctor
	return &copied, nil
}

func (r *fakeDoctorRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Doctor, error) {
	doctor, ok := r.doctors[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := doctor
	return &copied, nil
}

func (r *fakeDoctorRepo) Update(_ context.Context, doctor domain.Doctor) error {
	if _, ok := r.doctors[doctor.ID]; !ok {
		return domain.ErrNotFound
	}
	r.doctors[doctor.ID] = doctor
	return nil
}

func (r *fakeDoctorRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.doctors[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.doctors, id)
	return nil
}

func (r *fakeDoctorRepo) List(_ context.Context, _ string, _, _ int) ([]domain.Doctor, error) {
	out := make([]domain.Doctor, 0, len(r.doctors))
	for _, d := range r.doctors {
		out = append(out, d)
	}
	return out, nil
}

type fakePatientRepo struct {
	patients map[uuid.UUID]domain.Patient
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{patients: make(map[uuid.UUID]domain.Patient)}
}

func (r *fakePatientRepo) Create(_ context.Context, patient domain.Patient) (*domain.Patient, error) {
	patient.ID = uuid.New()
	r.patients[patient.ID] = patient
	copied := patient
	return &copied, nil
}

func (r *fakePatientRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Patient, error) {
	patient, ok := r.patients[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := patient
	return &copied, nil
}

func (r *fakePatientRepo) Update(_ context.Context, patient domain.Patient) error {
	if _, ok := r.patients[patient.ID]; !ok {
		return domain.ErrNotFound
	}
	r.patients[patient.ID] = patient
	return nil
}

func (r *fakePatientRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.patients[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.patients, id)
	return nil
}

func (r *fakePatientRepo) List(_ context.Context, _ domain.PatientFilter) ([]domain.Patient, error) {
	out := make([]domain.Patient, 0, len(r.patients))
	for _, p := range r.patients {
		out = append(out, p)
	}
	return out, nil
}

type fakeAppointmentRepo struct {
	appointments map[uuid.UUID]domain.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: make(map[uuid.UUID]domain.Appointment)}
}

func (r *fakeAppointmentRepo) Create(_ context.Context, appointment domain.Appointment) (*domain.Appointment, error) {
	appointment.ID = uuid.New()
	appointment.CreatedAt = time.Now()
	appointment.UpdatedAt = appointment.CreatedAt
	r.appointments[appointment.ID] = appointment
	copied := appointment
	return &copied, nil
}

func (r *fakeAppointmentRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Appointment, error) {
	appointment, ok := r.appointments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := appointment
	return &copied, nil
}

func (r *fakeAppointmentRepo) Update(_ context.Context, appointment domain.Appointment) error {
	if _, ok := r.appointments[appointment.ID]; !ok {
		return domain.ErrNotFound
	}
	appointment.UpdatedAt = time.Now()
	r.appointments[appointment.ID] = appointment
	return nil
}

func (r *fakeAppointmentRepo) List(_ context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	var out []domain.Appointment
	for _, a := range r.appointments {
		if filter.DoctorID != nil && a.DoctorID != *filter.DoctorID {
			continue
		}
		if filter.PatientID != nil && a.PatientID != *filter.PatientID {
			continue
		}
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAppointmentRepo) CountByFilter(ctx context.Context, filter domain.AppointmentFilter) (int, error) {
	list, err := r.List(ctx, filter)
	if err != nil {
		return 0, err
	}
	return len(list), nil
}

func (r *fakeAppointmentRepo) HasConflict(_ context.Context, doctorID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (bool, error) {
	for _, a := range r.appointments {
		if a.DoctorID != doctorID || !a.Status.Blocking() {
			continue
		}
		if excludeID != nil && a.ID == *excludeID {
			continue
		}
		if a.StartTime.Before(end) && a.EndTime.After(start) {
			return true, nil
		}
	}
	return false, nil
}

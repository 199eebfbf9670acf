package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Murugadoss7/dental-app/internal/domain"
)

// DB is the subset of pgxpool.Pool the repositories use. pgxmock satisfies it
// in tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Repositories struct {
	Settings    SettingsRepository
	Doctor      DoctorRepository
	Patient     PatientRepository
	Appointment AppointmentRepository
	Treatment   TreatmentRepository
	Catalog     CatalogRepository
}

func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Settings:    NewSettingsRepository(db),
		Doctor:      NewDoctorRepository(db),
		Patient:     NewPatientRepository(db),
		Appointment: NewAppointmentRepository(db),
		Treatment:   NewTreatmentRepository(db),
		Catalog:     NewCatalogRepository(db),
	}
}

// SettingsRepository stores the single clinic settings row. Get returns
// domain.ErrNotFound when the clinic has not been configured yet.
type SettingsRepository interface {
	Create(ctx context.Context, settings domain.ClinicSettings) (*domain.ClinicSettings, error)
	Get(ctx context.Context) (*domain.ClinicSettings, error)
	Update(ctx context.Context, settings domain.ClinicSettings) error
}

type DoctorRepository interface {
	Create(ctx context.Context, doctor domain.Doctor) (*domain.Doctor, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Doctor, error)
	Update(ctx context.Context, doctor domain.Doctor) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, search string, limit, offset int) ([]domain.Doctor, error)
}

type PatientRepository interface {
	Create(ctx context.Context, patient domain.Patient) (*domain.Patient, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error)
	Update(ctx context.Context, patient domain.Patient) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter domain.PatientFilter) ([]domain.Patient, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment domain.Appointment) (*domain.Appointment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	Update(ctx context.Context, appointment domain.Appointment) error
	List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error)
	CountByFilter(ctx context.Context, filter domain.AppointmentFilter) (int, error)
	// HasConflict reports whether any blocking appointment for the doctor
	// overlaps [start, end) on half-open interval semantics, optionally
	// excluding one appointment id.
	HasConflict(ctx context.Context, doctorID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (bool, error)
}

type TreatmentRepository interface {
	Create(ctx context.Context, treatment domain.Treatment) (*domain.Treatment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Treatment, error)
	Update(ctx context.Context, treatment domain.Treatment) error
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]domain.Treatment, error)

	CreatePrescription(ctx context.Context, prescription domain.Prescription) (*domain.Prescription, error)
	ListPrescriptionsByTreatment(ctx context.Context, treatmentID uuid.UUID) ([]domain.Prescription, error)

	CreatePlan(ctx context.Context, plan domain.TreatmentPlan) (*domain.TreatmentPlan, error)
	GetPlanByID(ctx context.Context, id uuid.UUID) (*domain.TreatmentPlan, error)
	UpdatePlan(ctx context.Context, plan domain.TreatmentPlan) error
	ListPlansByPatient(ctx context.Context, patientID uuid.UUID) ([]domain.TreatmentPlan, error)
}

type CatalogRepository interface {
	Create(ctx context.Context, item domain.DentalCatalogItem) (*domain.DentalCatalogItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DentalCatalogItem, error)
	Update(ctx context.Context, item domain.DentalCatalogItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter domain.CatalogFilter) ([]domain.DentalCatalogItem, error)
}

package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Murugadoss7/dental-app/internal/domain"
	"github.com/Murugadoss7/dental-app/internal/lock"
	"github.com/Murugadoss7/dental-app/internal/repository"
	"github.com/Murugadoss7/dental-app/internal/schedule"
	"github.com/Murugadoss7/dental-app/internal/storage"
)

type Deps struct {
	Repos       *repository.Repositories
	Logger      *zap.Logger
	Locker      lock.Locker
	FileStorage storage.FileStorage
}

type Services struct {
	Settings    SettingsService
	Doctor      DoctorService
	Patient     PatientService
	Appointment AppointmentService
	Treatment   TreatmentService
	Catalog     CatalogService
}

func NewServices(deps Deps) *Services {
	return &Services{
		Settings:    NewSettingsService(deps.Repos.Settings, deps.Logger),
		Doctor:      NewDoctorService(deps.Repos.Doctor, deps.Repos.Settings, deps.Repos.Appointment, deps.Logger),
		Patient:     NewPatientService(deps.Repos.Patient, deps.Logger),
		Appointment: NewAppointmentService(deps.Repos.Appointment, deps.Repos.Doctor, deps.Repos.Patient, deps.Repos.Settings, deps.Locker, deps.Logger),
		Treatment:   NewTreatmentService(deps.Repos.Treatment, deps.Repos.Patient, deps.Repos.Doctor, deps.FileStorage, deps.Logger),
		Catalog:     NewCatalogService(deps.Repos.Catalog, deps.Logger),
	}
}

type SettingsService interface {
	Create(ctx context.Context, dto domain.CreateClinicSettingsDTO) (*domain.ClinicSettings, error)
	Get(ctx context.Context) (*domain.ClinicSettings, error)
	Update(ctx context.Context, dto domain.UpdateClinicSettingsDTO) (*domain.ClinicSettings, error)
}

type DoctorService interface {
	Create(ctx context.Context, dto domain.CreateDoctorDTO) (*domain.Doctor, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Doctor, error)
	Update(ctx context.Context, id uuid.UUID, dto domain.UpdateDoctorDTO) (*domain.Doctor, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, search string, limit, offset int) ([]domain.Doctor, error)
	GetAvailableSlots(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]schedule.Slot, error)
}

type PatientService interface {
	Create(ctx context.Context, dto domain.CreatePatientDTO) (*domain.Patient, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error)
	Update(ctx context.Context, id uuid.UUID, dto domain.UpdatePatientDTO) (*domain.Patient, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter domain.PatientFilter) ([]domain.Patient, error)
}

type AppointmentService interface {
	Create(ctx context.Context, dto domain.CreateAppointmentDTO) (*domain.AppointmentResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AppointmentResponse, error)
	Update(ctx context.Context, id uuid.UUID, dto domain.UpdateAppointmentDTO) (*domain.AppointmentResponse, error)
	Cancel(ctx context.Context, id uuid.UUID, dto domain.CancelAppointmentDTO) (*domain.AppointmentResponse, error)
	Reschedule(ctx context.Context, id uuid.UUID, dto domain.RescheduleAppointmentDTO) (*domain.AppointmentResponse, error)
	List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.AppointmentResponse, int, error)
}

type TreatmentService interface {
	Create(ctx context.Context, dto domain.CreateTreatmentDTO) (*domain.Treatment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Treatment, error)
	Update(ctx context.Context, id uuid.UUID, dto domain.UpdateTreatmentDTO) (*domain.Treatment, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]domain.Treatment, error)
	UploadAttachment(ctx context.Context, treatmentID uuid.UUID, data []byte, filename string) (string, error)

	CreatePrescription(ctx context.Context, dto domain.CreatePrescriptionDTO) (*domain.Prescription, error)
	ListPrescriptionsByTreatment(ctx context.Context, treatmentID uuid.UUID) ([]domain.Prescription, error)

	CreatePlan(ctx context.Context, dto domain.CreateTreatmentPlanDTO) (*domain.TreatmentPlan, error)
	UpdatePlan(ctx context.Context, id uuid.UUID, dto domain.UpdateTreatmentPlanDTO) (*domain.TreatmentPlan, error)
	ListPlansByPatient(ctx context.Context, patientID uuid.UUID) ([]domain.TreatmentPlan, error)
}

type CatalogService interface {
	Create(ctx context.Context, dto domain.CreateCatalogItemDTO) (*domain.DentalCatalogItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DentalCatalogItem, error)
	Update(ctx context.Context, id uuid.UUID, dto domain.UpdateCatalogItemDTO) (*domain.DentalCatalogItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter domain.CatalogFilter) ([]domain.DentalCatalogItem, error)
}

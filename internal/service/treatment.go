package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Murugadoss7/dental-app/internal/domain"
	"github.com/Murugadoss7/dental-app/internal/repository"
	"github.com/Murugadoss7/dental-app/internal/storage"
)

type TreatmentServiceImpl struct {
	repo        repository.TreatmentRepository
	patientRepo repository.PatientRepository
	doctorRepo  repository.DoctorRepository
	fileStorage storage.FileStorage
	logger      *zap.Logger
}

func NewTreatmentService(
	repo repository.TreatmentRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	fileStorage storage.FileStorage,
	logger *zap.Logger,
) *TreatmentServiceImpl {
	return &TreatmentServiceImpl{
		repo:        repo,
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

func (s *TreatmentServiceImpl) Create(ctx context.Context, dto domain.CreateTreatmentDTO) (*domain.Treatment, error) {
	patientID, err := uuid.Parse(dto.PatientID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid patient id", domain.ErrValidation)
	}
	doctorID, err := uuid.Parse(dto.DoctorID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid doctor id", domain.ErrValidation)
	}

	if _, err := s.patientRepo.GetByID(ctx, patientID); err != nil {
		return nil, err
	}
	if _, err := s.doctorRepo.GetByID(ctx, doctorID); err != nil {
		return nil, err
	}

	date := dto.Date
	if date.IsZero() {
		date = time.Now()
	}

	treatment := domain.Treatment{
		PatientID:        patientID,
		DoctorID:         doctorID,
		Date:             date,
		ChiefComplaint:   dto.ChiefComplaint,
		Diagnosis:        dto.Diagnosis,
		ClinicalFindings: dto.ClinicalFindings,
		TreatmentNotes:   dto.TreatmentNotes,
		TeethInvolved:    dto.TeethInvolved,
	}

	created, err := s.repo.Create(ctx, treatment)
	if err != nil {
		s.logger.Error("failed to create treatment", zap.Error(err))
		return nil, err
	}

	s.logger.Info("treatment created",
		zap.String("id", created.ID.String()),
		zap.String("patient_id", patientID.String()))

	return created, nil
}

func (s *TreatmentServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Treatment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TreatmentServiceImpl) Update(ctx context.Context, id uuid.UUID, dto domain.UpdateTreatmentDTO) (*domain.Treatment, error) {
	treatment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.ChiefComplaint != nil {
		treatment.ChiefComplaint = *dto.ChiefComplaint
	}
	if dto.Diagnosis != nil {
		treatment.Diagnosis = *dto.Diagnosis
	}
	if dto.ClinicalFindings != nil {
		treatment.ClinicalFindings = *dto.ClinicalFindings
	}
	if dto.TreatmentNotes != nil {
		treatment.TreatmentNotes = *dto.TreatmentNotes
	}
	if dto.TeethInvolved != nil {
		treatment.TeethInvolved = *dto.TeethInvolved
	}

	if err := s.repo.Update(ctx, *treatment); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("failed to update treatment", zap.String("id", id.String()), zap.Error(err))
		}
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *TreatmentServiceImpl) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]domain.Treatment, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListByPatient(ctx, patientID, limit, offset)
}

// UploadAttachment stores the file and appends its object key to the
// treatment record. The returned key is what clients use to fetch a
// presigned URL later.
func (s *TreatmentServiceImpl) UploadAttachment(ctx context.Context, treatmentID uuid.UUID, data []byte, filename string) (string, error) {
	if s.fileStorage == nil {
		return "", errors.New("file storage is not configured")
	}

	treatment, err := s.repo.GetByID(ctx, treatmentID)
	if err != nil {
		return "", err
	}

	objectKey, err := s.fileStorage.UploadFile(ctx, data, filename)
	if err != nil {
		s.logger.Error("failed to upload attachment",
			zap.String("treatment_id", treatmentID.String()),
			zap.Error(err))
		return "", err
	}

	treatment.Attachments = append(treatment.Attachments, objectKey)
	if err := s.repo.Update(ctx, *treatment); err != nil {
		s.logger.Error("failed to link attachment", zap.String("treatment_id", treatmentID.String()), zap.Error(err))
		return "", err
	}

	return objectKey, nil
}

func (s *TreatmentServiceImpl) CreatePrescription(ctx context.Context, dto domain.CreatePrescriptionDTO) (*domain.Prescription, error) {
	treatmentID, err := uuid.Parse(dto.TreatmentID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid treatment id", domain.ErrValidation)
	}

	if _, err := s.repo.GetByID(ctx, treatmentID); err != nil {
		return nil, err
	}

	prescription := domain.Prescription{
		TreatmentID: treatmentID,
		Medications: dto.Medications,
		Date:        time.Now(),
	}

	created, err := s.repo.CreatePrescription(ctx, prescription)
	if err != nil {
		s.logger.Error("failed to create prescription", zap.Error(err))
		return nil, err
	}

	return created, nil
}

func (s *TreatmentServiceImpl) ListPrescriptionsByTreatment(ctx context.Context, treatmentID uuid.UUID) ([]domain.Prescription, error) {
	return s.repo.ListPrescriptionsByTreatment(ctx, treatmentID)
}

func (s *TreatmentServiceImpl) CreatePlan(ctx context.Context, dto domain.CreateTreatmentPlanDTO) (*domain.TreatmentPlan, error) {
	patientID, err := uuid.Parse(dto.PatientID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid patient id", domain.ErrValidation)
	}

	if _, err := s.patientRepo.GetByID(ctx, patientID); err != nil {
		return nil, err
	}
	if dto.EndDate != nil && dto.EndDate.Before(dto.StartDate) {
		return nil, fmt.Errorf("%w: end_date must not be before start_date", domain.ErrValidation)
	}

	plan := domain.TreatmentPlan{
		PatientID:  patientID,
		Procedures: dto.Procedures,
		StartDate:  dto.StartDate,
		EndDate:    dto.EndDate,
	}

	created, err := s.repo.CreatePlan(ctx, plan)
	if err != nil {
		s.logger.Error("failed to create treatment plan", zap.Error(err))
		return nil, err
	}

	return created, nil
}

func (s *TreatmentServiceImpl) UpdatePlan(ctx context.Context, id uuid.UUID, dto domain.UpdateTreatmentPlanDTO) (*domain.TreatmentPlan, error) {
	plan, err := s.repo.GetPlanByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.Procedures != nil {
		plan.Procedures = *dto.Procedures
	}
	if dto.StartDate != nil {
		plan.StartDate = *dto.StartDate
	}
	if dto.EndDate != nil {
		plan.EndDate = dto.EndDate
	}
	if plan.EndDate != nil && plan.EndDate.Before(plan.StartDate) {
		return nil, fmt.Errorf("%w: end_date must not be before start_date", domain.ErrValidation)
	}

	if err := s.repo.UpdatePlan(ctx, *plan); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("failed to update treatment plan", zap.String("id", id.String()), zap.Error(err))
		}
		return nil, err
	}

	return s.repo.GetPlanByID(ctx, id)
}

func (s *TreatmentServiceImpl) ListPlansByPatient(ctx context.Context, patientID uuid.UUID) ([]domain.TreatmentPlan, error) {
	return s.repo.ListPlansByPatient(ctx, patientID)
}

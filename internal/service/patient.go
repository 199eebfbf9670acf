package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Murugadoss7/dental-app/internal/domain"
	"github.com/Murugadoss7/dental-app/internal/repository"
	"github.com/Murugadoss7/dental-app/pkg/validator"
)

type PatientServiceImpl struct {
	repo   repository.PatientRepository
	logger *zap.Logger
}

func NewPatientService(repo repository.PatientRepository, logger *zap.Logger) *PatientServiceImpl {
	return &PatientServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *PatientServiceImpl) Create(ctx context.Context, dto domain.CreatePatientDTO) (*domain.Patient, error) {
	if dto.Email != "" && !validator.ValidateEmail(dto.Email) {
		return nil, fmt.Errorf("%w: invalid email", domain.ErrValidation)
	}
	if !validator.ValidatePhone(dto.ContactNumber) {
		return nil, fmt.Errorf("%w: invalid contact number", domain.ErrValidation)
	}

	patient := domain.Patient{
		FirstName:      validator.FormatName(dto.FirstName),
		LastName:       validator.FormatName(dto.LastName),
		Email:          dto.Email,
		ContactNumber:  dto.ContactNumber,
		DateOfBirth:    dto.DateOfBirth,
		Address:        dto.Address,
		MedicalHistory: dto.MedicalHistory,
	}

	created, err := s.repo.Create(ctx, patient)
	if err != nil {
		s.logger.Error("failed to create patient", zap.Error(err))
		return nil, err
	}

	s.logger.Info("patient created", zap.String("id", created.ID.String()))
	return created, nil
}

func (s *PatientServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PatientServiceImpl) Update(ctx context.Context, id uuid.UUID, dto domain.UpdatePatientDTO) (*domain.Patient, error) {
	patient, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.FirstName != nil {
		patient.FirstName = validator.FormatName(*dto.FirstName)
	}
	if dto.LastName != nil {
		patient.LastName = validator.FormatName(*dto.LastName)
	}
	if dto.Email != nil {
		if *dto.Email != "" && !validator.ValidateEmail(*dto.Email) {
			return nil, fmt.Errorf("%w: invalid email", domain.ErrValidation)
		}
		patient.Email = *dto.Email
	}
	if dto.ContactNumber != nil {
		if !validator.ValidatePhone(*dto.ContactNumber) {
			return nil, fmt.Errorf("%w: invalid contact number", domain.ErrValidation)
		}
		patient.ContactNumber = *dto.ContactNumber
	}
	if dto.DateOfBirth != nil {
		patient.DateOfBirth = dto.DateOfBirth
	}
	if dto.Address != nil {
		patient.Address = *dto.Address
	}
	if dto.MedicalHistory != nil {
		patient.MedicalHistory = *dto.MedicalHistory
	}

	if err := s.repo.Update(ctx, *patient); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("failed to update patient", zap.String("id", id.String()), zap.Error(err))
		}
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *PatientServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("failed to delete patient", zap.String("id", id.String()), zap.Error(err))
		}
		return err
	}

	s.logger.Info("patient deleted", zap.String("id", id.String()))
	return nil
}

func (s *PatientServiceImpl) List(ctx context.Context, filter domain.PatientFilter) ([]domain.Patient, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.repo.List(ctx, filter)
}

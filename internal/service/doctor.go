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
	"github.com/Murugadoss7/dental-app/internal/schedule"
	"github.com/Murugadoss7/dental-app/pkg/validator"
)

type DoctorServiceImpl struct {
	repo            repository.DoctorRepository
	settingsRepo    repository.SettingsRepository
	appointmentRepo repository.AppointmentRepository
	logger          *zap.Logger
}

func NewDoctorService(
	repo repository.DoctorRepository,
	settingsRepo repository.SettingsRepository,
	appointmentRepo repository.AppointmentRepository,
	logger *zap.Logger,
) *DoctorServiceImpl {
	return &DoctorServiceImpl{
		repo:            repo,
		settingsRepo:    settingsRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

func (s *DoctorServiceImpl) Create(ctx context.Context, dto domain.CreateDoctorDTO) (*domain.Doctor, error) {
	if !validator.ValidateEmail(dto.Email) {
		return nil, fmt.Errorf("%w: invalid email", domain.ErrValidation)
	}
	if !validator.ValidatePhone(dto.ContactNumber) {
		return nil, fmt.Errorf("%w: invalid contact number", domain.ErrValidation)
	}
	if err := validateScheduleEntries(dto.WorkingHours, dto.BreakHours); err != nil {
		return nil, err
	}

	doctor := domain.Doctor{
		FirstName:      validator.FormatName(dto.FirstName),
		LastName:       validator.FormatName(dto.LastName),
		Email:          dto.Email,
		ContactNumber:  dto.ContactNumber,
		Specialization: dto.Specialization,
		WorkingHours:   dto.WorkingHours,
		BreakHours:     dto.BreakHours,
	}

	created, err := s.repo.Create(ctx, doctor)
	if err != nil {
		if !errors.Is(err, domain.ErrValidation) {
			s.logger.Error("failed to create doctor", zap.Error(err))
		}
		return nil, err
	}

	s.logger.Info("doctor created", zap.String("id", created.ID.String()))
	return created, nil
}

func (s *DoctorServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Doctor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *DoctorServiceImpl) Update(ctx context.Context, id uuid.UUID, dto domain.UpdateDoctorDTO) (*domain.Doctor, error) {
	doctor, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.FirstName != nil {
		doctor.FirstName = validator.FormatName(*dto.FirstName)
	}
	if dto.LastName != nil {
		doctor.LastName = validator.FormatName(*dto.LastName)
	}
	if dto.Email != nil {
		if !validator.ValidateEmail(*dto.Email) {
			return nil, fmt.Errorf("%w: invalid email", domain.ErrValidation)
		}
		doctor.Email = *dto.Email
	}
	if dto.ContactNumber != nil {
		if !validator.ValidatePhone(*dto.ContactNumber) {
			return nil, fmt.Errorf("%w: invalid contact number", domain.ErrValidation)
		}
		doctor.ContactNumber = *dto.ContactNumber
	}
	if dto.Specialization != nil {
		doctor.Specialization = *dto.Specialization
	}
	if dto.WorkingHours != nil {
		doctor.WorkingHours = *dto.WorkingHours
	}
	if dto.BreakHours != nil {
		doctor.BreakHours = *dto.BreakHours
	}

	if err := validateScheduleEntries(doctor.WorkingHours, doctor.BreakHours); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, *doctor); err != nil {
		if !errors.Is(err, domain.ErrValidation) {
			s.logger.Error("failed to update doctor", zap.String("id", id.String()), zap.Error(err))
		}
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *DoctorServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("failed to delete doctor", zap.String("id", id.String()), zap.Error(err))
		}
		return err
	}

	s.logger.Info("doctor deleted", zap.String("id", id.String()))
	return nil
}

func (s *DoctorServiceImpl) List(ctx context.Context, search string, limit, offset int) ([]domain.Doctor, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, search, limit, offset)
}

// GetAvailableSlots returns the bookable intervals for a doctor on a date:
// every generated slot whose interval is not occupied by a blocking
// appointment.
func (s *DoctorServiceImpl) GetAvailableSlots(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]schedule.Slot, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrSettingsNotConfigured
		}
		return nil, err
	}

	doctor, err := s.repo.GetByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	slots, err := schedule.GenerateSlots(doctor.WorkingHours, doctor.BreakHours, settings, date)
	if err != nil {
		s.logger.Error("failed to generate slots",
			zap.String("doctor_id", doctorID.String()),
			zap.Error(err))
		return nil, err
	}

	available := make([]schedule.Slot, 0, len(slots))
	for _, slot := range slots {
		conflict, err := s.appointmentRepo.HasConflict(ctx, doctorID, slot.StartTime, slot.EndTime, nil)
		if err != nil {
			return nil, err
		}
		if !conflict {
			available = append(available, slot)
		}
	}

	return available, nil
}

func validateScheduleEntries(working []domain.WorkingHours, breaks []domain.BreakHours) error {
	for _, entry := range working {
		if !weekdays[entry.Day] {
			return fmt.Errorf("%w: unknown weekday %q in working hours", domain.ErrValidation, entry.Day)
		}
		if err := validateClockTime(entry.StartTime); err != nil {
			return err
		}
		if err := validateClockTime(entry.EndTime); err != nil {
			return err
		}
	}
	for _, entry := range breaks {
		if !weekdays[entry.Day] {
			return fmt.Errorf("%w: unknown weekday %q in break hours", domain.ErrValidation, entry.Day)
		}
		if err := validateClockTime(entry.StartTime); err != nil {
			return err
		}
		if err := validateClockTime(entry.EndTime); err != nil {
			return err
		}
	}
	return nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Murugadoss7/dental-app/internal/domain"
	"github.com/Murugadoss7/dental-app/internal/lock"
	"github.com/Murugadoss7/dental-app/internal/metrics"
	"github.com/Murugadoss7/dental-app/internal/repository"
	"github.com/Murugadoss7/dental-app/internal/schedule"
)

type AppointmentServiceImpl struct {
	repo         repository.AppointmentRepository
	doctorRepo   repository.DoctorRepository
	patientRepo  repository.PatientRepository
	settingsRepo repository.SettingsRepository
	locker       lock.Locker
	logger       *zap.Logger
}

func NewAppointmentService(
	repo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	settingsRepo repository.SettingsRepository,
	locker lock.Locker,
	logger *zap.Logger,
) *AppointmentServiceImpl {
	return &AppointmentServiceImpl{
		repo:         repo,
		doctorRepo:   doctorRepo,
		patientRepo:  patientRepo,
		settingsRepo: settingsRepo,
		locker:       locker,
		logger:       logger,
	}
}

func (s *AppointmentServiceImpl) Create(ctx context.Context, dto domain.CreateAppointmentDTO) (*domain.AppointmentResponse, error) {
	patientID, err := uuid.Parse(dto.PatientID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid patient id", domain.ErrValidation)
	}
	doctorID, err := uuid.Parse(dto.DoctorID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid doctor id", domain.ErrValidation)
	}
	if !dto.EndTime.After(dto.StartTime) {
		return nil, fmt.Errorf("%w: end_time must be after start_time", domain.ErrValidation)
	}

	if _, err := s.patientRepo.GetByID(ctx, patientID); err != nil {
		return nil, err
	}
	doctor, err := s.doctorRepo.GetByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrSettingsNotConfigured
		}
		return nil, err
	}

	if err := checkAdvanceBooking(dto.StartTime, settings.AdvanceBookingDays, time.Now()); err != nil {
		metrics.RecordBooking("create", metrics.OutcomeRejected)
		return nil, err
	}

	appointment := domain.Appointment{
		PatientID: patientID,
		DoctorID:  doctorID,
		StartTime: dto.StartTime,
		EndTime:   dto.EndTime,
		Reason:    dto.Reason,
		Notes:     dto.Notes,
		Status:    domain.AppointmentStatusScheduled,
	}

	var created *domain.Appointment
	err = s.locker.WithDoctorLock(ctx, doctorID, func(ctx context.Context) error {
		if err := s.checkSlot(ctx, doctor, settings, dto.StartTime, dto.EndTime, nil); err != nil {
			return err
		}
		created, err = s.repo.Create(ctx, appointment)
		return err
	})
	if err != nil {
		if errors.Is(err, lock.ErrLockNotAcquired) {
			err = domain.ErrSlotNotAvailable
		}
		if errors.Is(err, domain.ErrSlotNotAvailable) {
			metrics.RecordBooking("create", metrics.OutcomeRejected)
		} else {
			s.logger.Error("failed to create appointment", zap.Error(err))
			metrics.RecordBooking("create", metrics.OutcomeError)
		}
		return nil, err
	}

	metrics.RecordBooking("create", metrics.OutcomeBooked)
	s.logger.Info("appointment created",
		zap.String("id", created.ID.String()),
		zap.String("doctor_id", doctorID.String()),
		zap.Time("start_time", created.StartTime))

	return s.enrich(ctx, created)
}

func (s *AppointmentServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.AppointmentResponse, error) {
	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, appointment)
}

func (s *AppointmentServiceImpl) Update(ctx context.Context, id uuid.UUID, dto domain.UpdateAppointmentDTO) (*domain.AppointmentResponse, error) {
	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	timeChanged := false
	if dto.DoctorID != nil {
		doctorID, err := uuid.Parse(*dto.DoctorID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid doctor id", domain.ErrValidation)
		}
		if doctorID != appointment.DoctorID {
			if _, err := s.doctorRepo.GetByID(ctx, doctorID); err != nil {
				return nil, err
			}
			appointment.DoctorID = doctorID
			timeChanged = true
		}
	}
	if dto.StartTime != nil {
		appointment.StartTime = *dto.StartTime
		timeChanged = true
	}
	if dto.EndTime != nil {
		appointment.EndTime = *dto.EndTime
		timeChanged = true
	}
	if dto.Reason != nil {
		appointment.Reason = *dto.Reason
	}
	if dto.Notes != nil {
		appointment.Notes = *dto.Notes
	}
	if dto.Status != nil {
		appointment.Status = *dto.Status
	}

	if !appointment.EndTime.After(appointment.StartTime) {
		return nil, fmt.Errorf("%w: end_time must be after start_time", domain.ErrValidation)
	}

	persist := func(ctx context.Context) error {
		if timeChanged && appointment.Status.Blocking() {
			doctor, err := s.doctorRepo.GetByID(ctx, appointment.DoctorID)
			if err != nil {
				return err
			}
			settings, err := s.settingsRepo.Get(ctx)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return domain.ErrSettingsNotConfigured
				}
				return err
			}
			excludeID := appointment.ID
			if err := s.checkSlot(ctx, doctor, settings, appointment.StartTime, appointment.EndTime, &excludeID); err != nil {
				return err
			}
		}
		return s.repo.Update(ctx, *appointment)
	}

	if timeChanged {
		err = s.locker.WithDoctorLock(ctx, appointment.DoctorID, persist)
		if errors.Is(err, lock.ErrLockNotAcquired) {
			err = domain.ErrSlotNotAvailable
		}
	} else {
		err = persist(ctx)
	}
	if err != nil {
		if errors.Is(err, domain.ErrSlotNotAvailable) {
			metrics.RecordBooking("update", metrics.OutcomeRejected)
		} else if !errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrValidation) {
			s.logger.Error("failed to update appointment", zap.String("id", id.String()), zap.Error(err))
			metrics.RecordBooking("update", metrics.OutcomeError)
		}
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, updated)
}

// Cancel marks the appointment cancelled and records the mandatory reason.
// The interval stops blocking other bookings through the status change alone.
func (s *AppointmentServiceImpl) Cancel(ctx context.Context, id uuid.UUID, dto domain.CancelAppointmentDTO) (*domain.AppointmentResponse, error) {
	if dto.CancelledReason == "" {
		return nil, fmt.Errorf("%w: cancelled_reason is required", domain.ErrValidation)
	}

	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	appointment.Status = domain.AppointmentStatusCancelled
	appointment.CancelledReason = &dto.CancelledReason

	if err := s.repo.Update(ctx, *appointment); err != nil {
		s.logger.Error("failed to cancel appointment", zap.String("id", id.String()), zap.Error(err))
		metrics.RecordBooking("cancel", metrics.OutcomeError)
		return nil, err
	}

	metrics.RecordBooking("cancel", metrics.OutcomeCancelled)
	s.logger.Info("appointment cancelled", zap.String("id", id.String()))

	return s.enrich(ctx, appointment)
}

// Reschedule moves the appointment to a new interval in place. The record
// keeps its identity; PreviousAppointmentID points at the first appointment
// in the chain, however many times the record has moved.
func (s *AppointmentServiceImpl) Reschedule(ctx context.Context, id uuid.UUID, dto domain.RescheduleAppointmentDTO) (*domain.AppointmentResponse, error) {
	if !dto.NewEndTime.After(dto.NewStartTime) {
		return nil, fmt.Errorf("%w: new_end_time must be after new_start_time", domain.ErrValidation)
	}

	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	doctor, err := s.doctorRepo.GetByID(ctx, appointment.DoctorID)
	if err != nil {
		return nil, err
	}
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrSettingsNotConfigured
		}
		return nil, err
	}

	if err := checkAdvanceBooking(dto.NewStartTime, settings.AdvanceBookingDays, time.Now()); err != nil {
		metrics.RecordBooking("reschedule", metrics.OutcomeRejected)
		return nil, err
	}

	ancestor := appointment.ID
	if appointment.PreviousAppointmentID != nil {
		ancestor = *appointment.PreviousAppointmentID
	}

	appointment.StartTime = dto.NewStartTime
	appointment.EndTime = dto.NewEndTime
	appointment.Status = domain.AppointmentStatusRescheduled
	appointment.PreviousAppointmentID = &ancestor
	if dto.Reason != nil {
		appointment.Reason = *dto.Reason
	}

	err = s.locker.WithDoctorLock(ctx, appointment.DoctorID, func(ctx context.Context) error {
		excludeID := appointment.ID
		if err := s.checkSlot(ctx, doctor, settings, dto.NewStartTime, dto.NewEndTime, &excludeID); err != nil {
			return err
		}
		return s.repo.Update(ctx, *appointment)
	})
	if err != nil {
		if errors.Is(err, lock.ErrLockNotAcquired) {
			err = domain.ErrSlotNotAvailable
		}
		if errors.Is(err, domain.ErrSlotNotAvailable) {
			metrics.RecordBooking("reschedule", metrics.OutcomeRejected)
		} else {
			s.logger.Error("failed to reschedule appointment", zap.String("id", id.String()), zap.Error(err))
			metrics.RecordBooking("reschedule", metrics.OutcomeError)
		}
		return nil, err
	}

	metrics.RecordBooking("reschedule", metrics.OutcomeRescheduled)
	s.logger.Info("appointment rescheduled",
		zap.String("id", id.String()),
		zap.Time("start_time", dto.NewStartTime))

	return s.enrich(ctx, appointment)
}

func (s *AppointmentServiceImpl) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.AppointmentResponse, int, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	appointments, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountByFilter(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]domain.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		resp, err := s.enrich(ctx, &appointments[i])
		if err != nil {
			return nil, 0, err
		}
		responses = append(responses, *resp)
	}

	return responses, total, nil
}

// checkSlot verifies that [start, end) is a bookable interval for the doctor:
// it must coincide exactly with a generated slot, last exactly the configured
// slot duration, and overlap no blocking appointment. All three rejections
// surface as the same error.
func (s *AppointmentServiceImpl) checkSlot(
	ctx context.Context,
	doctor *domain.Doctor,
	settings *domain.ClinicSettings,
	start, end time.Time,
	excludeID *uuid.UUID,
) error {
	slots, err := schedule.GenerateSlots(doctor.WorkingHours, doctor.BreakHours, settings, start)
	if err != nil {
		return err
	}

	match := false
	for _, slot := range slots {
		if slot.StartTime.Equal(start) && slot.EndTime.Equal(end) {
			match = true
			break
		}
	}
	if !match {
		return domain.ErrSlotNotAvailable
	}

	if end.Sub(start) != time.Duration(settings.SlotDuration)*time.Minute {
		return domain.ErrSlotNotAvailable
	}

	conflict, err := s.repo.HasConflict(ctx, doctor.ID, start, end, excludeID)
	if err != nil {
		return err
	}
	if conflict {
		return domain.ErrSlotNotAvailable
	}

	return nil
}

// checkAdvanceBooking rejects start dates beyond the booking horizon. The
// horizon is measured in whole days; a start on the last allowed day passes.
func checkAdvanceBooking(start time.Time, advanceDays int, now time.Time) error {
	latest := now.AddDate(0, 0, advanceDays)
	latestDay := time.Date(latest.Year(), latest.Month(), latest.Day(), 0, 0, 0, 0, latest.Location())
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, latest.Location())
	if startDay.After(latestDay) {
		return fmt.Errorf("%w: appointments can be booked at most %d days in advance", domain.ErrValidation, advanceDays)
	}
	return nil
}

func (s *AppointmentServiceImpl) enrich(ctx context.Context, appointment *domain.Appointment) (*domain.AppointmentResponse, error) {
	resp := &domain.AppointmentResponse{
		Appointment: *appointment,
		Patient:     domain.ParticipantInfo{ID: appointment.PatientID.String()},
		Doctor:      domain.ParticipantInfo{ID: appointment.DoctorID.String()},
	}

	if patient, err := s.patientRepo.GetByID(ctx, appointment.PatientID); err == nil {
		resp.Patient.FirstName = patient.FirstName
		resp.Patient.LastName = patient.LastName
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	if doctor, err := s.doctorRepo.GetByID(ctx, appointment.DoctorID); err == nil {
		resp.Doctor.FirstName = doctor.FirstName
		resp.Doctor.LastName = doctor.LastName
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	return resp, nil
}

package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Murugadoss7/dental-app/internal/domain"
	"github.com/Murugadoss7/dental-app/internal/repository"
)

type SettingsServiceImpl struct {
	repo   repository.SettingsRepository
	logger *zap.Logger
}

func NewSettingsService(repo repository.SettingsRepository, logger *zap.Logger) *SettingsServiceImpl {
	return &SettingsServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *SettingsServiceImpl) Create(ctx context.Context, dto domain.CreateClinicSettingsDTO) (*domain.ClinicSettings, error) {
	if _, err := s.repo.Get(ctx); err == nil {
		return nil, domain.ErrSettingsExist
	} else if !errors.Is(err, domain.ErrNotFound) {
		s.logger.Error("failed to check existing settings", zap.Error(err))
		return nil, err
	}

	if err := validateWorkingWindow(dto.WorkingHours); err != nil {
		return nil, err
	}
	if err := validateWeekdays(dto.WorkingDays); err != nil {
		return nil, err
	}

	settings := domain.ClinicSettings{
		SlotDuration:       dto.SlotDuration,
		BufferTime:         dto.BufferTime,
		AdvanceBookingDays: dto.AdvanceBookingDays,
		WorkingDays:        dto.WorkingDays,
		WorkingHours:       dto.WorkingHours,
	}

	created, err := s.repo.Create(ctx, settings)
	if err != nil {
		if errors.Is(err, domain.ErrSettingsExist) {
			return nil, err
		}
		s.logger.Error("failed to create settings", zap.Error(err))
		return nil, err
	}

	s.logger.Info("clinic settings created",
		zap.Int("slot_duration", created.SlotDuration),
		zap.Int("buffer_time", created.BufferTime))

	return created, nil
}

func (s *SettingsServiceImpl) Get(ctx context.Context) (*domain.ClinicSettings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrSettingsNotConfigured
		}
		s.logger.Error("failed to get settings", zap.Error(err))
		return nil, err
	}
	return settings, nil
}

func (s *SettingsServiceImpl) Update(ctx context.Context, dto domain.UpdateClinicSettingsDTO) (*domain.ClinicSettings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrSettingsNotConfigured
		}
		s.logger.Error("failed to get settings for update", zap.Error(err))
		return nil, err
	}

	if dto.SlotDuration != nil {
		if *dto.SlotDuration <= 0 {
			return nil, fmt.Errorf("%w: slot_duration must be positive", domain.ErrValidation)
		}
		settings.SlotDuration = *dto.SlotDuration
	}
	if dto.BufferTime != nil {
		if *dto.BufferTime < 0 {
			return nil, fmt.Errorf("%w: buffer_time must not be negative", domain.ErrValidation)
		}
		settings.BufferTime = *dto.BufferTime
	}
	if dto.AdvanceBookingDays != nil {
		if *dto.AdvanceBookingDays <= 0 {
			return nil, fmt.Errorf("%w: advance_booking_days must be positive", domain.ErrValidation)
		}
		settings.AdvanceBookingDays = *dto.AdvanceBookingDays
	}
	if dto.WorkingDays != nil {
		if err := validateWeekdays(*dto.WorkingDays); err != nil {
			return nil, err
		}
		settings.WorkingDays = *dto.WorkingDays
	}
	if dto.WorkingHours != nil {
		if err := validateWorkingWindow(*dto.WorkingHours); err != nil {
			return nil, err
		}
		settings.WorkingHours = *dto.WorkingHours
	}

	if err := s.repo.Update(ctx, *settings); err != nil {
		s.logger.Error("failed to update settings", zap.Error(err))
		return nil, err
	}

	return s.repo.Get(ctx)
}

var weekdays = map[string]bool{
	"monday":    true,
	"tuesday":   true,
	"wednesday": true,
	"thursday":  true,
	"friday":    true,
	"saturday":  true,
	"sunday":    true,
}

func validateWeekdays(days []string) error {
	for _, day := range days {
		if !weekdays[day] {
			return fmt.Errorf("%w: unknown weekday %q", domain.ErrValidation, day)
		}
	}
	return nil
}

func validateWorkingWindow(window domain.WorkingWindow) error {
	if err := validateClockTime(window.StartTime); err != nil {
		return err
	}
	return validateClockTime(window.EndTime)
}

func validateClockTime(value string) error {
	if len(value) != 5 || value[2] != ':' {
		return fmt.Errorf("%w: time %q must be in HH:mm format", domain.ErrValidation, value)
	}
	for _, c := range []byte{value[0], value[1], value[3], value[4]} {
		if c < '0' || c > '9' {
			return fmt.Errorf("%w: time %q must be in HH:mm format", domain.ErrValidation, value)
		}
	}
	hh := int(value[0]-'0')*10 + int(value[1]-'0')
	mm := int(value[3]-'0')*10 + int(value[4]-'0')
	if hh > 23 || mm > 59 {
		return fmt.Errorf("%w: time %q is out of range", domain.ErrValidation, value)
	}
	return nil
}

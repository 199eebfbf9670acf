package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Murugadoss7/dental-app/internal/domain"
)

func newSettingsDTO() domain.CreateClinicSettingsDTO {
	return domain.CreateClinicSettingsDTO{
		SlotDuration:       30,
		BufferTime:         10,
		AdvanceBookingDays: 30,
		WorkingDays:        []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
		WorkingHours:       domain.WorkingWindow{StartTime: "09:00", EndTime: "18:00"},
	}
}

func TestSettingsCreate(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{}, zap.NewNop())

	created, err := svc.Create(context.Background(), newSettingsDTO())
	require.NoError(t, err)
	assert.Equal(t, 30, created.SlotDuration)
	assert.Equal(t, 10, created.BufferTime)
}

func TestSettingsCreate_SecondCreateRejected(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{}, zap.NewNop())

	_, err := svc.Create(context.Background(), newSettingsDTO())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), newSettingsDTO())
	assert.ErrorIs(t, err, domain.ErrSettingsExist)
}

func TestSettingsCreate_RejectsBadWeekday(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{}, zap.NewNop())

	dto := newSettingsDTO()
	dto.WorkingDays = []string{"monday", "funday"}

	_, err := svc.Create(context.Background(), dto)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSettingsCreate_RejectsBadClockTime(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{}, zap.NewNop())

	dto := newSettingsDTO()
	dto.WorkingHours.EndTime = "25:00"

	_, err := svc.Create(context.Background(), dto)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSettingsGet_NotConfigured(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{}, zap.NewNop())

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, domain.ErrSettingsNotConfigured)
}

func TestSettingsUpdate_PartialPatch(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{}, zap.NewNop())

	_, err := svc.Create(context.Background(), newSettingsDTO())
	require.NoError(t, err)

	newDuration := 45
	updated, err := svc.Update(context.Background(), domain.UpdateClinicSettingsDTO{
		SlotDuration: &newDuration,
	})
	require.NoError(t, err)

	assert.Equal(t, 45, updated.SlotDuration)
	assert.Equal(t, 10, updated.BufferTime, "untouched fields survive the patch")
}

func TestSettingsUpdate_NotConfigured(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{}, zap.NewNop())

	newDuration := 45
	_, err := svc.Update(context.Background(), domain.UpdateClinicSettingsDTO{SlotDuration: &newDuration})
	assert.ErrorIs(t, err, domain.ErrSettingsNotConfigured)
}

func TestSettingsUpdate_RejectsNonPositiveDuration(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{}, zap.NewNop())

	_, err := svc.Create(context.Background(), newSettingsDTO())
	require.NoError(t, err)

	zero := 0
	_, err = svc.Update(context.Background(), domain.UpdateClinicSettingsDTO{SlotDuration: &zero})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

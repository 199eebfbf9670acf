package domain

import (
	"time"

	"github.com/google/uuid"
)

// WorkingWindow is the clinic-wide working window in HH:mm wall-clock time.
type WorkingWindow struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// ClinicSettings is the clinic-wide booking policy. At most one instance
// exists: created once, updated in place, never deleted.
type ClinicSettings struct {
	ID                 uuid.UUID     `json:"id"`
	SlotDuration       int           `json:"slot_duration"`
	BufferTime         int           `json:"buffer_time"`
	AdvanceBookingDays int           `json:"advance_booking_days"`
	WorkingDays        []string      `json:"working_days"`
	WorkingHours       WorkingWindow `json:"working_hours"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

type CreateClinicSettingsDTO struct {
	SlotDuration       int           `json:"slot_duration" binding:"required,gt=0"`
	BufferTime         int           `json:"buffer_time" binding:"gte=0"`
	AdvanceBookingDays int           `json:"advance_booking_days" binding:"required,gt=0"`
	WorkingDays        []string      `json:"working_days" binding:"required,min=1"`
	WorkingHours       WorkingWindow `json:"working_hours" binding:"required"`
}

type UpdateClinicSettingsDTO struct {
	SlotDuration       *int           `json:"slot_duration,omitempty"`
	BufferTime         *int           `json:"buffer_time,omitempty"`
	AdvanceBookingDays *int           `json:"advance_booking_days,omitempty"`
	WorkingDays        *[]string      `json:"working_days,omitempty"`
	WorkingHours       *WorkingWindow `json:"working_hours,omitempty"`
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled   AppointmentStatus = "scheduled"
	AppointmentStatusCompleted   AppointmentStatus = "completed"
	AppointmentStatusCancelled   AppointmentStatus = "cancelled"
	AppointmentStatusRescheduled AppointmentStatus = "rescheduled"
)

// Blocking reports whether an appointment in this status still occupies its
// slot for conflict purposes. Rescheduled appointments keep blocking: the
// record was moved, not freed.
func (s AppointmentStatus) Blocking() bool {
	return s == AppointmentStatusScheduled || s == AppointmentStatusRescheduled
}

type Appointment struct {
	ID                    uuid.UUID         `json:"id"`
	PatientID             uuid.UUID         `json:"patient_id"`
	DoctorID              uuid.UUID         `json:"doctor_id"`
	StartTime             time.Time         `json:"start_time"`
	EndTime               time.Time         `json:"end_time"`
	Reason                string            `json:"reason"`
	Notes                 string            `json:"notes"`
	Status                AppointmentStatus `json:"status"`
	CancelledReason       *string           `json:"cancelled_reason,omitempty"`
	PreviousAppointmentID *uuid.UUID        `json:"previous_appointment_id,omitempty"`
	CreatedAt             time.Time         `json:"created_at"`
	UpdatedAt             time.Time         `json:"updated_at"`
}

// AppointmentResponse is an appointment enriched with name snapshots of the
// linked doctor and patient. The join happens at read time, nothing is stored.
type AppointmentResponse struct {
	Appointment
	Patient ParticipantInfo `json:"patient"`
	Doctor  ParticipantInfo `json:"doctor"`
}

type CreateAppointmentDTO struct {
	PatientID string    `json:"patient_id" binding:"required"`
	DoctorID  string    `json:"doctor_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
	Reason    string    `json:"reason" binding:"required"`
	Notes     string    `json:"notes"`
}

type UpdateAppointmentDTO struct {
	DoctorID  *string            `json:"doctor_id,omitempty"`
	StartTime *time.Time         `json:"start_time,omitempty"`
	EndTime   *time.Time         `json:"end_time,omitempty"`
	Reason    *string            `json:"reason,omitempty"`
	Notes     *string            `json:"notes,omitempty"`
	Status    *AppointmentStatus `json:"status,omitempty" binding:"omitempty,oneof=scheduled completed cancelled rescheduled"`
}

type CancelAppointmentDTO struct {
	CancelledReason string `json:"cancelled_reason" binding:"required"`
}

type RescheduleAppointmentDTO struct {
	NewStartTime time.Time `json:"new_start_time" binding:"required"`
	NewEndTime   time.Time `json:"new_end_time" binding:"required"`
	Reason       *string   `json:"reason,omitempty"`
}

type AppointmentFilter struct {
	DoctorID  *uuid.UUID         `json:"doctor_id"`
	PatientID *uuid.UUID         `json:"patient_id"`
	Status    *AppointmentStatus `json:"status"`
	StartDate *time.Time         `json:"start_date"`
	EndDate   *time.Time         `json:"end_date"`
	Limit     int                `json:"limit"`
	Offset    int                `json:"offset"`
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// WorkingHours is a per-weekday availability window for a doctor. Several
// entries may exist for the same day; slot generation uses the first entry
// with IsWorking set, in slice order.
type WorkingHours struct {
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsWorking bool   `json:"is_working"`
}

// BreakHours is a per-weekday exclusion window within a working day.
type BreakHours struct {
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type Doctor struct {
	ID             uuid.UUID      `json:"id"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	Email          string         `json:"email"`
	ContactNumber  string         `json:"contact_number"`
	Specialization string         `json:"specialization"`
	WorkingHours   []WorkingHours `json:"working_hours"`
	BreakHours     []BreakHours   `json:"break_hours"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

type CreateDoctorDTO struct {
	FirstName      string         `json:"first_name" binding:"required"`
	LastName       string         `json:"last_name" binding:"required"`
	Email          string         `json:"email" binding:"required,email"`
	ContactNumber  string         `json:"contact_number" binding:"required"`
	Specialization string         `json:"specialization" binding:"required"`
	WorkingHours   []WorkingHours `json:"working_hours"`
	BreakHours     []BreakHours   `json:"break_hours"`
}

type UpdateDoctorDTO struct {
	FirstName      *string         `json:"first_name,omitempty"`
	LastName       *string         `json:"last_name,omitempty"`
	Email          *string         `json:"email,omitempty"`
	ContactNumber  *string         `json:"contact_number,omitempty"`
	Specialization *string         `json:"specialization,omitempty"`
	WorkingHours   *[]WorkingHours `json:"working_hours,omitempty"`
	BreakHours     *[]BreakHours   `json:"break_hours,omitempty"`
}

// ParticipantInfo is the minimal name projection of a doctor or patient
// attached to appointment responses. When the linked record is missing only
// the identifier is exposed.
type ParticipantInfo struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

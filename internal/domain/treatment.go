package domain

import (
	"time"

	"github.com/google/uuid"
)

type Medication struct {
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	Duration     string `json:"duration"`
	Instructions string `json:"instructions"`
}

type ProcedureStatus string

const (
	ProcedureStatusPlanned   ProcedureStatus = "planned"
	ProcedureStatusCompleted ProcedureStatus = "completed"
	ProcedureStatusCancelled ProcedureStatus = "cancelled"
)

type ProcedurePriority string

const (
	ProcedurePriorityHigh   ProcedurePriority = "high"
	ProcedurePriorityMedium ProcedurePriority = "medium"
	ProcedurePriorityLow    ProcedurePriority = "low"
)

type Procedure struct {
	Description   string            `json:"description"`
	EstimatedCost float64           `json:"estimated_cost"`
	Status        ProcedureStatus   `json:"status"`
	Priority      ProcedurePriority `json:"priority"`
}

// Treatment is a clinical record of a single visit. Attachments hold object
// storage keys of uploaded files (X-rays, scans).
type Treatment struct {
	ID               uuid.UUID `json:"id"`
	PatientID        uuid.UUID `json:"patient_id"`
	DoctorID         uuid.UUID `json:"doctor_id"`
	Date             time.Time `json:"date"`
	ChiefComplaint   string    `json:"chief_complaint"`
	Diagnosis        string    `json:"diagnosis"`
	ClinicalFindings string    `json:"clinical_findings"`
	TreatmentNotes   string    `json:"treatment_notes"`
	TeethInvolved    []string  `json:"teeth_involved"`
	Attachments      []string  `json:"attachments,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type CreateTreatmentDTO struct {
	PatientID        string    `json:"patient_id" binding:"required"`
	DoctorID         string    `json:"doctor_id" binding:"required"`
	Date             time.Time `json:"date"`
	ChiefComplaint   string    `json:"chief_complaint" binding:"required"`
	Diagnosis        string    `json:"diagnosis"`
	ClinicalFindings string    `json:"clinical_findings"`
	TreatmentNotes   string    `json:"treatment_notes"`
	TeethInvolved    []string  `json:"teeth_involved"`
}

type UpdateTreatmentDTO struct {
	ChiefComplaint   *string   `json:"chief_complaint,omitempty"`
	Diagnosis        *string   `json:"diagnosis,omitempty"`
	ClinicalFindings *string   `json:"clinical_findings,omitempty"`
	TreatmentNotes   *string   `json:"treatment_notes,omitempty"`
	TeethInvolved    *[]string `json:"teeth_involved,omitempty"`
}

type Prescription struct {
	ID          uuid.UUID    `json:"id"`
	TreatmentID uuid.UUID    `json:"treatment_id"`
	Medications []Medication `json:"medications"`
	Date        time.Time    `json:"date"`
}

type CreatePrescriptionDTO struct {
	TreatmentID string       `json:"treatment_id" binding:"required"`
	Medications []Medication `json:"medications" binding:"required,min=1"`
}

type TreatmentPlan struct {
	ID         uuid.UUID   `json:"id"`
	PatientID  uuid.UUID   `json:"patient_id"`
	Procedures []Procedure `json:"procedures"`
	StartDate  time.Time   `json:"start_date"`
	EndDate    *time.Time  `json:"end_date,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type CreateTreatmentPlanDTO struct {
	PatientID  string      `json:"patient_id" binding:"required"`
	Procedures []Procedure `json:"procedures" binding:"required,min=1"`
	StartDate  time.Time   `json:"start_date" binding:"required"`
	EndDate    *time.Time  `json:"end_date,omitempty"`
}

type UpdateTreatmentPlanDTO struct {
	Procedures *[]Procedure `json:"procedures,omitempty"`
	StartDate  *time.Time   `json:"start_date,omitempty"`
	EndDate    *time.Time   `json:"end_date,omitempty"`
}

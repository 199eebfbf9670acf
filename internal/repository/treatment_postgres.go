package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Murugadoss7/dental-app/internal/domain"
)

type TreatmentRepo struct {
	db DB
}

func NewTreatmentRepository(db DB) *TreatmentRepo {
	return &TreatmentRepo{db: db}
}

const treatmentColumns = `id, patient_id, doctor_id, date, chief_complaint, diagnosis, clinical_findings, treatment_notes, teeth_involved, attachments, created_at, updated_at`

func (r *TreatmentRepo) Create(ctx context.Context, treatment domain.Treatment) (*domain.Treatment, error) {
	query := `
		INSERT INTO treatments (id, patient_id, doctor_id, date, chief_complaint, diagnosis, clinical_findings, treatment_notes, teeth_involved, attachments, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
		RETURNING created_at, updated_at
	`

	treatment.ID = uuid.New()
	now := time.Now().UTC()

	err := r.db.QueryRow(ctx, query,
		treatment.ID,
		treatment.PatientID,
		treatment.DoctorID,
		treatment.Date,
		treatment.ChiefComplaint,
		treatment.Diagnosis,
		treatment.ClinicalFindings,
		treatment.TreatmentNotes,
		treatment.TeethInvolved,
		treatment.Attachments,
		now,
	).Scan(&treatment.CreatedAt, &treatment.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert treatment: %w", err)
	}

	return &treatment, nil
}

func (r *TreatmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Treatment, error) {
	query := `SELECT ` + treatmentColumns + ` FROM treatments WHERE id = $1`

	t, err := scanTreatment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select treatment: %w", err)
	}

	return t, nil
}

func (r *TreatmentRepo) Update(ctx context.Context, treatment domain.Treatment) error {
	query := `
		UPDATE treatments
		SET chief_complaint = $1, diagnosis = $2, clinical_findings = $3, treatment_notes = $4, teeth_involved = $5, attachments = $6, updated_at = $7
		WHERE id = $8
	`

	tag, err := r.db.Exec(ctx, query,
		treatment.ChiefComplaint,
		treatment.Diagnosis,
		treatment.ClinicalFindings,
		treatment.TreatmentNotes,
		treatment.TeethInvolved,
		treatment.Attachments,
		time.Now().UTC(),
		treatment.ID,
	)
	if err != nil {
		return fmt.Errorf("update treatment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *TreatmentRepo) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]domain.Treatment, error) {
	query := `SELECT ` + treatmentColumns + ` FROM treatments WHERE patient_id = $1 ORDER BY date DESC`
	args := []any{patientID}

	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if offset > 0 {
		args = append(args, offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select treatments: %w", err)
	}
	defer rows.Close()

	var treatments []domain.Treatment
	for rows.Next() {
		t, err := scanTreatment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan treatment: %w", err)
		}
		treatments = append(treatments, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate treatments: %w", err)
	}

	return treatments, nil
}

func (r *TreatmentRepo) CreatePrescription(ctx context.Context, prescription domain.Prescription) (*domain.Prescription, error) {
	query := `
		INSERT INTO prescriptions (id, treatment_id, medications, date)
		VALUES ($1, $2, $3, $4)
	`

	prescription.ID = uuid.New()
	if prescription.Date.IsZero() {
		prescription.Date = time.Now().UTC()
	}

	_, err := r.db.Exec(ctx, query,
		prescription.ID,
		prescription.TreatmentID,
		prescription.Medications,
		prescription.Date,
	)
	if err != nil {
		return nil, fmt.Errorf("insert prescription: %w", err)
	}

	return &prescription, nil
}

func (r *TreatmentRepo) ListPrescriptionsByTreatment(ctx context.Context, treatmentID uuid.UUID) ([]domain.Prescription, error) {
	query := `SELECT id, treatment_id, medications, date FROM prescriptions WHERE treatment_id = $1 ORDER BY date DESC`

	rows, err := r.db.Query(ctx, query, treatmentID)
	if err != nil {
		return nil, fmt.Errorf("select prescriptions: %w", err)
	}
	defer rows.Close()

	var prescriptions []domain.Prescription
	for rows.Next() {
		var p domain.Prescription
		if err := rows.Scan(&p.ID, &p.TreatmentID, &p.Medications, &p.Date); err != nil {
			return nil, fmt.Errorf("scan prescription: %w", err)
		}
		prescriptions = append(prescriptions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate prescriptions: %w", err)
	}

	return prescriptions, nil
}

func (r *TreatmentRepo) CreatePlan(ctx context.Context, plan domain.TreatmentPlan) (*domain.TreatmentPlan, error) {
	query := `
		INSERT INTO treatment_plans (id, patient_id, procedures, start_date, end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING created_at, updated_at
	`

	plan.ID = uuid.New()
	now := time.Now().UTC()

	err := r.db.QueryRow(ctx, query,
		plan.ID,
		plan.PatientID,
		plan.Procedures,
		plan.StartDate,
		plan.EndDate,
		now,
	).Scan(&plan.CreatedAt, &plan.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert treatment plan: %w", err)
	}

	return &plan, nil
}

func (r *TreatmentRepo) GetPlanByID(ctx context.Context, id uuid.UUID) (*domain.TreatmentPlan, error) {
	query := `SELECT id, patient_id, procedures, start_date, end_date, created_at, updated_at FROM treatment_plans WHERE id = $1`

	var p domain.TreatmentPlan
	err := r.db.QueryRow(ctx, query, id).Scan(&p.ID, &p.PatientID, &p.Procedures, &p.StartDate, &p.EndDate, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select treatment plan: %w", err)
	}

	return &p, nil
}

func (r *TreatmentRepo) UpdatePlan(ctx context.Context, plan domain.TreatmentPlan) error {
	query := `
		UPDATE treatment_plans
		SET procedures = $1, start_date = $2, end_date = $3, updated_at = $4
		WHERE id = $5
	`

	tag, err := r.db.Exec(ctx, query,
		plan.Procedures,
		plan.StartDate,
		plan.EndDate,
		time.Now().UTC(),
		plan.ID,
	)
	if err != nil {
		return fmt.Errorf("update treatment plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *TreatmentRepo) ListPlansByPatient(ctx context.Context, patientID uuid.UUID) ([]domain.TreatmentPlan, error) {
	query := `SELECT id, patient_id, procedures, start_date, end_date, created_at, updated_at FROM treatment_plans WHERE patient_id = $1 ORDER BY start_date DESC`

	rows, err := r.db.Query(ctx, query, patientID)
	if err != nil {
		return nil, fmt.Errorf("select treatment plans: %w", err)
	}
	defer rows.Close()

	var plans []domain.TreatmentPlan
	for rows.Next() {
		var p domain.TreatmentPlan
		if err := rows.Scan(&p.ID, &p.PatientID, &p.Procedures, &p.StartDate, &p.EndDate, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan treatment plan: %w", err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate treatment plans: %w", err)
	}

	return plans, nil
}

func scanTreatment(row pgx.Row) (*domain.Treatment, error) {
	var t domain.Treatment
	err := row.Scan(
		&t.ID,
		&t.PatientID,
		&t.DoctorID,
		&t.Date,
		&t.ChiefComplaint,
		&t.Diagnosis,
		&t.ClinicalFindings,
		&t.TreatmentNotes,
		&t.TeethInvolved,
		&t.Attachments,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

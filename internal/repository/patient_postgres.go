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

type PatientRepo struct {
	db DB
}

func NewPatientRepository(db DB) *PatientRepo {
	return &PatientRepo{db: db}
}

const patientColumns = `id, first_name, last_name, email, contact_number, date_of_birth, address, medical_history, created_at, updated_at`

func (r *PatientRepo) Create(ctx context.Context, patient domain.Patient) (*domain.Patient, error) {
	query := `
		INSERT INTO patients (id, first_name, last_name, email, contact_number, date_of_birth, address, medical_history, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING created_at, updated_at
	`

	patient.ID = uuid.New()
	now := time.Now().UTC()

	err := r.db.QueryRow(ctx, query,
		patient.ID,
		patient.FirstName,
		patient.LastName,
		patient.Email,
		patient.ContactNumber,
		patient.DateOfBirth,
		patient.Address,
		patient.MedicalHistory,
		now,
	).Scan(&patient.CreatedAt, &patient.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert patient: %w", err)
	}

	return &patient, nil
}

func (r *PatientRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM patients WHERE id = $1`

	p, err := scanPatient(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select patient: %w", err)
	}

	return p, nil
}

func (r *PatientRepo) Update(ctx context.Context, patient domain.Patient) error {
	query := `
		UPDATE patients
		SET first_name = $1, last_name = $2, email = $3, contact_number = $4, date_of_birth = $5, address = $6, medical_history = $7, updated_at = $8
		WHERE id = $9
	`

	tag, err := r.db.Exec(ctx, query,
		patient.FirstName,
		patient.LastName,
		patient.Email,
		patient.ContactNumber,
		patient.DateOfBirth,
		patient.Address,
		patient.MedicalHistory,
		time.Now().UTC(),
		patient.ID,
	)
	if err != nil {
		return fmt.Errorf("update patient: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *PatientRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PatientRepo) List(ctx context.Context, filter domain.PatientFilter) ([]domain.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM patients`
	var args []any

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += ` WHERE first_name ILIKE $1 OR last_name ILIKE $1 OR contact_number ILIKE $1`
	}
	query += ` ORDER BY last_name, first_name`

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select patients: %w", err)
	}
	defer rows.Close()

	var patients []domain.Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan patient: %w", err)
		}
		patients = append(patients, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate patients: %w", err)
	}

	return patients, nil
}

func scanPatient(row pgx.Row) (*domain.Patient, error) {
	var p domain.Patient
	err := row.Scan(
		&p.ID,
		&p.FirstName,
		&p.LastName,
		&p.Email,
		&p.ContactNumber,
		&p.DateOfBirth,
		&p.Address,
		&p.MedicalHistory,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

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

type DoctorRepo struct {
	db DB
}

func NewDoctorRepository(db DB) *DoctorRepo {
	return &DoctorRepo{db: db}
}

const doctorColumns = `id, first_name, last_name, email, contact_number, specialization, working_hours, break_hours, created_at, updated_at`

func (r *DoctorRepo) Create(ctx context.Context, doctor domain.Doctor) (*domain.Doctor, error) {
	query := `
		INSERT INTO doctors (id, first_name, last_name, email, contact_number, specialization, working_hours, break_hours, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING created_at, updated_at
	`

	doctor.ID = uuid.New()
	now := time.Now().UTC()

	err := r.db.QueryRow(ctx, query,
		doctor.ID,
		doctor.FirstName,
		doctor.LastName,
		doctor.Email,
		doctor.ContactNumber,
		doctor.Specialization,
		doctor.WorkingHours,
		doctor.BreakHours,
		now,
	).Scan(&doctor.CreatedAt, &doctor.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: doctor with this email already exists", domain.ErrValidation)
		}
		return nil, fmt.Errorf("insert doctor: %w", err)
	}

	return &doctor, nil
}

func (r *DoctorRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Doctor, error) {
	query := `SELECT ` + doctorColumns + ` FROM doctors WHERE id = $1`

	d, err := scanDoctor(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select doctor: %w", err)
	}

	return d, nil
}

func (r *DoctorRepo) Update(ctx context.Context, doctor domain.Doctor) error {
	query := `
		UPDATE doctors
		SET first_name = $1, last_name = $2, email = $3, contact_number = $4, specialization = $5, working_hours = $6, break_hours = $7, updated_at = $8
		WHERE id = $9
	`

	tag, err := r.db.Exec(ctx, query,
		doctor.FirstName,
		doctor.LastName,
		doctor.Email,
		doctor.ContactNumber,
		doctor.Specialization,
		doctor.WorkingHours,
		doctor.BreakHours,
		time.Now().UTC(),
		doctor.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: doctor with this email already exists", domain.ErrValidation)
		}
		return fmt.Errorf("update doctor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *DoctorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM doctors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete doctor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *DoctorRepo) List(ctx context.Context, search string, limit, offset int) ([]domain.Doctor, error) {
	query := `SELECT ` + doctorColumns + ` FROM doctors`
	var args []any

	if search != "" {
		args = append(args, "%"+search+"%")
		query += ` WHERE first_name ILIKE $1 OR last_name ILIKE $1 OR specialization ILIKE $1`
	}
	query += ` ORDER BY last_name, first_name`

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
		return nil, fmt.Errorf("select doctors: %w", err)
	}
	defer rows.Close()

	var doctors []domain.Doctor
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan doctor: %w", err)
		}
		doctors = append(doctors, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate doctors: %w", err)
	}

	return doctors, nil
}

func scanDoctor(row pgx.Row) (*domain.Doctor, error) {
	var d domain.Doctor
	err := row.Scan(
		&d.ID,
		&d.FirstName,
		&d.LastName,
		&d.Email,
		&d.ContactNumber,
		&d.Specialization,
		&d.WorkingHours,
		&d.BreakHours,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

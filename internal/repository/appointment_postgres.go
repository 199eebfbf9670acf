package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Murugadoss7/dental-app/internal/domain"
)

type AppointmentRepo struct {
	db DB
}

func NewAppointmentRepository(db DB) *AppointmentRepo {
	return &AppointmentRepo{db: db}
}

const appointmentColumns = `id, patient_id, doctor_id, start_time, end_time, reason, notes, status, cancelled_reason, previous_appointment_id, created_at, updated_at`

// Create inserts a new appointment. A partial unique index on
// (doctor_id, start_time) over blocking statuses backstops the availability
// check; a violation surfaces as the standard slot-not-available error.
func (r *AppointmentRepo) Create(ctx context.Context, appointment domain.Appointment) (*domain.Appointment, error) {
	query := `
		INSERT INTO appointments (id, patient_id, doctor_id, start_time, end_time, reason, notes, status, previous_appointment_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		RETURNING created_at, updated_at
	`

	appointment.ID = uuid.New()
	now := time.Now().UTC()

	err := r.db.QueryRow(ctx, query,
		appointment.ID,
		appointment.PatientID,
		appointment.DoctorID,
		appointment.StartTime,
		appointment.EndTime,
		appointment.Reason,
		appointment.Notes,
		appointment.Status,
		appointment.PreviousAppointmentID,
		now,
	).Scan(&appointment.CreatedAt, &appointment.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrSlotNotAvailable
		}
		return nil, fmt.Errorf("insert appointment: %w", err)
	}

	return &appointment, nil
}

func (r *AppointmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`

	a, err := scanAppointment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select appointment: %w", err)
	}

	return a, nil
}

func (r *AppointmentRepo) Update(ctx context.Context, appointment domain.Appointment) error {
	query := `
		UPDATE appointments
		SET patient_id = $1, doctor_id = $2, start_time = $3, end_time = $4, reason = $5, notes = $6, status = $7, cancelled_reason = $8, previous_appointment_id = $9, updated_at = $10
		WHERE id = $11
	`

	tag, err := r.db.Exec(ctx, query,
		appointment.PatientID,
		appointment.DoctorID,
		appointment.StartTime,
		appointment.EndTime,
		appointment.Reason,
		appointment.Notes,
		appointment.Status,
		appointment.CancelledReason,
		appointment.PreviousAppointmentID,
		time.Now().UTC(),
		appointment.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSlotNotAvailable
		}
		return fmt.Errorf("update appointment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *AppointmentRepo) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	where, args := buildAppointmentFilter(filter)

	query := `SELECT ` + appointmentColumns + ` FROM appointments` + where + ` ORDER BY start_time`
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
		return nil, fmt.Errorf("select appointments: %w", err)
	}
	defer rows.Close()

	var appointments []domain.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		appointments = append(appointments, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate appointments: %w", err)
	}

	return appointments, nil
}

func (r *AppointmentRepo) CountByFilter(ctx context.Context, filter domain.AppointmentFilter) (int, error) {
	where, args := buildAppointmentFilter(filter)

	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM appointments`+where, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count appointments: %w", err)
	}

	return count, nil
}

// HasConflict uses half-open interval overlap: existing.start < end AND
// existing.end > start, so appointments that merely touch do not conflict.
func (r *AppointmentRepo) HasConflict(ctx context.Context, doctorID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM appointments
			WHERE doctor_id = $1
			AND status IN ('scheduled', 'rescheduled')
			AND start_time < $2
			AND end_time > $3
			AND ($4::uuid IS NULL OR id != $4)
		)
	`

	var exists bool
	err := r.db.QueryRow(ctx, query, doctorID, end, start, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check appointment conflict: %w", err)
	}

	return exists, nil
}

func buildAppointmentFilter(filter domain.AppointmentFilter) (string, []any) {
	var conditions []string
	var args []any

	addCondition := func(expr string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(expr, len(args)))
	}

	if filter.DoctorID != nil {
		addCondition("doctor_id = $%d", *filter.DoctorID)
	}
	if filter.PatientID != nil {
		addCondition("patient_id = $%d", *filter.PatientID)
	}
	if filter.Status != nil {
		addCondition("status = $%d", *filter.Status)
	}
	if filter.StartDate != nil {
		addCondition("start_time >= $%d", *filter.StartDate)
	}
	if filter.EndDate != nil {
		addCondition("start_time < $%d", *filter.EndDate)
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func scanAppointment(row pgx.Row) (*domain.Appointment, error) {
	var a domain.Appointment
	err := row.Scan(
		&a.ID,
		&a.PatientID,
		&a.DoctorID,
		&a.StartTime,
		&a.EndTime,
		&a.Reason,
		&a.Notes,
		&a.Status,
		&a.CancelledReason,
		&a.PreviousAppointmentID,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

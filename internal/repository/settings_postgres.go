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

type SettingsRepo struct {
	db DB
}

func NewSettingsRepository(db DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

// Create inserts the settings row. The table carries a single-row guard
// constraint, so a concurrent second create fails at the database as well.
func (r *SettingsRepo) Create(ctx context.Context, settings domain.ClinicSettings) (*domain.ClinicSettings, error) {
	query := `
		INSERT INTO appointment_settings (id, slot_duration, buffer_time, advance_booking_days, working_days, working_start, working_end, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING id, created_at, updated_at
	`

	now := time.Now().UTC()
	settings.ID = uuid.New()

	err := r.db.QueryRow(ctx, query,
		settings.ID,
		settings.SlotDuration,
		settings.BufferTime,
		settings.AdvanceBookingDays,
		settings.WorkingDays,
		settings.WorkingHours.StartTime,
		settings.WorkingHours.EndTime,
		now,
	).Scan(&settings.ID, &settings.CreatedAt, &settings.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrSettingsExist
		}
		return nil, fmt.Errorf("insert settings: %w", err)
	}

	return &settings, nil
}

// Get returns the one settings row, domain.ErrNotFound when it does not exist.
func (r *SettingsRepo) Get(ctx context.Context) (*domain.ClinicSettings, error) {
	query := `
		SELECT id, slot_duration, buffer_time, advance_booking_days, working_days, working_start, working_end, created_at, updated_at
		FROM appointment_settings
		LIMIT 1
	`

	var s domain.ClinicSettings
	err := r.db.QueryRow(ctx, query).Scan(
		&s.ID,
		&s.SlotDuration,
		&s.BufferTime,
		&s.AdvanceBookingDays,
		&s.WorkingDays,
		&s.WorkingHours.StartTime,
		&s.WorkingHours.EndTime,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select settings: %w", err)
	}

	return &s, nil
}

func (r *SettingsRepo) Update(ctx context.Context, settings domain.ClinicSettings) error {
	query := `
		UPDATE appointment_settings
		SET slot_duration = $1, buffer_time = $2, advance_booking_days = $3, working_days = $4, working_start = $5, working_end = $6, updated_at = $7
		WHERE id = $8
	`

	tag, err := r.db.Exec(ctx, query,
		settings.SlotDuration,
		settings.BufferTime,
		settings.AdvanceBookingDays,
		settings.WorkingDays,
		settings.WorkingHours.StartTime,
		settings.WorkingHours.EndTime,
		time.Now().UTC(),
		settings.ID,
	)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

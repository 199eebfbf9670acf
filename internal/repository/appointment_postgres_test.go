package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Murugadoss7/dental-app/internal/domain"
)

func TestAppointmentRepo_HasConflict(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAppointmentRepository(mock)

	doctorID := uuid.New()
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(doctorID, end, start, (*uuid.UUID)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	conflict, err := repo.HasConflict(context.Background(), doctorID, start, end, nil)
	require.NoError(t, err)
	assert.True(t, conflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentRepo_HasConflict_ExcludesSelf(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAppointmentRepository(mock)

	doctorID := uuid.New()
	excludeID := uuid.New()
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(doctorID, end, start, &excludeID).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	conflict, err := repo.HasConflict(context.Background(), doctorID, start, end, &excludeID)
	require.NoError(t, err)
	assert.False(t, conflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentRepo_Create_UniqueViolationMapsToSlotNotAvailable(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAppointmentRepository(mock)

	mock.ExpectQuery(`INSERT INTO appointments`).
		WithArgs(
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(),
		).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err = repo.Create(context.Background(), domain.Appointment{
		PatientID: uuid.New(),
		DoctorID:  uuid.New(),
		StartTime: time.Now(),
		EndTime:   time.Now().Add(30 * time.Minute),
		Status:    domain.AppointmentStatusScheduled,
	})
	assert.ErrorIs(t, err, domain.ErrSlotNotAvailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAppointmentRepository(mock)

	id := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM appointments WHERE id`).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	_, err = repo.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuildAppointmentFilter(t *testing.T) {
	doctorID := uuid.New()
	status := domain.AppointmentStatusScheduled
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	where, args := buildAppointmentFilter(domain.AppointmentFilter{
		DoctorID:  &doctorID,
		Status:    &status,
		StartDate: &from,
	})

	assert.Equal(t, " WHERE doctor_id = $1 AND status = $2 AND start_time >= $3", where)
	require.Len(t, args, 3)
	assert.Equal(t, doctorID, args[0])

	where, args = buildAppointmentFilter(domain.AppointmentFilter{})
	assert.Empty(t, where)
	assert.Nil(t, args)
}

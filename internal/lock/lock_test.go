package lock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocker(t *testing.T) (Locker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisDoctorLocker(client, 5*time.Second), mr
}

func TestWithDoctorLock_RunsCallback(t *testing.T) {
	locker, _ := newTestLocker(t)

	ran := false
	err := locker.WithDoctorLock(context.Background(), uuid.New(), func(ctx context.Context) error {
		ran = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ran)
}

func TestWithDoctorLock_ReleasesAfterCallback(t *testing.T) {
	locker, mr := newTestLocker(t)
	doctorID := uuid.New()

	err := locker.WithDoctorLock(context.Background(), doctorID, func(ctx context.Context) error {
		assert.True(t, mr.Exists("lock:doctor:"+doctorID.String()))
		return nil
	})
	require.NoError(t, err)
	assert.False(t, mr.Exists("lock:doctor:"+doctorID.String()))
}

func TestWithDoctorLock_ContendedLockFails(t *testing.T) {
	locker, _ := newTestLocker(t)
	doctorID := uuid.New()

	err := locker.WithDoctorLock(context.Background(), doctorID, func(ctx context.Context) error {
		return locker.WithDoctorLock(ctx, doctorID, func(ctx context.Context) error {
			t.Fatal("nested acquisition must not run")
			return nil
		})
	})
	assert.ErrorIs(t, err, ErrLockNotAcquired)
}

func TestWithDoctorLock_DifferentDoctorsIndependent(t *testing.T) {
	locker, _ := newTestLocker(t)

	err := locker.WithDoctorLock(context.Background(), uuid.New(), func(ctx context.Context) error {
		return locker.WithDoctorLock(ctx, uuid.New(), func(ctx context.Context) error {
			return nil
		})
	})
	assert.NoError(t, err)
}

func TestNoopLocker(t *testing.T) {
	ran := false
	err := NewNoopLocker().WithDoctorLock(context.Background(), uuid.New(), func(ctx context.Context) error {
		ran = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ran)
}

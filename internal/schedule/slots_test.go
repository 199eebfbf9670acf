package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Murugadoss7/dental-app/internal/domain"
)

func testSettings(slotDuration, bufferTime int) *domain.ClinicSettings {
	return &domain.ClinicSettings{
		SlotDuration:       slotDuration,
		BufferTime:         bufferTime,
		AdvanceBookingDays: 30,
		WorkingDays:        []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
		WorkingHours:       domain.WorkingWindow{StartTime: "09:00", EndTime: "17:00"},
	}
}

// monday is 2025-06-02, a Monday.
var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func at(hour, min int) time.Time {
	return time.Date(2025, 6, 2, hour, min, 0, 0, time.UTC)
}

func workingMonday(start, end string) []domain.WorkingHours {
	return []domain.WorkingHours{
		{Day: "monday", StartTime: start, EndTime: end, IsWorking: true},
	}
}

func TestGenerateSlots_MorningWindow(t *testing.T) {
	slots, err := GenerateSlots(workingMonday("09:00", "12:00"), nil, testSettings(30, 5), monday)
	require.NoError(t, err)

	want := []Slot{
		{StartTime: at(9, 0), EndTime: at(9, 30)},
		{StartTime: at(9, 35), EndTime: at(10, 5)},
		{StartTime: at(10, 10), EndTime: at(10, 40)},
		{StartTime: at(10, 45), EndTime: at(11, 15)},
		{StartTime: at(11, 20), EndTime: at(11, 50)},
	}
	assert.Equal(t, want, slots, "11:55+30 overruns the 12:00 window end, so exactly 5 slots remain")
}

func TestGenerateSlots_BreakSuppressesStartOnly(t *testing.T) {
	breaks := []domain.BreakHours{
		{Day: "monday", StartTime: "10:00", EndTime: "10:20"},
	}
	slots, err := GenerateSlots(workingMonday("09:00", "12:00"), breaks, testSettings(30, 5), monday)
	require.NoError(t, err)

	// 09:35-10:05 crosses into the break but its start precedes it, so it is
	// kept. Only 10:10 starts inside [10:00,10:20] and is dropped.
	want := []Slot{
		{StartTime: at(9, 0), EndTime: at(9, 30)},
		{StartTime: at(9, 35), EndTime: at(10, 5)},
		{StartTime: at(10, 45), EndTime: at(11, 15)},
		{StartTime: at(11, 20), EndTime: at(11, 50)},
	}
	assert.Equal(t, want, slots)
}

func TestGenerateSlots_BreakBoundsInclusive(t *testing.T) {
	// Break end exactly at a slot start still suppresses that slot.
	breaks := []domain.BreakHours{
		{Day: "monday", StartTime: "09:40", EndTime: "10:10"},
	}
	slots, err := GenerateSlots(workingMonday("09:00", "12:00"), breaks, testSettings(30, 5), monday)
	require.NoError(t, err)

	var starts []time.Time
	for _, s := range slots {
		starts = append(starts, s.StartTime)
	}
	assert.NotContains(t, starts, at(10, 10))
	assert.Contains(t, starts, at(9, 35))
}

func TestGenerateSlots_OverlappingBreaks(t *testing.T) {
	breaks := []domain.BreakHours{
		{Day: "monday", StartTime: "10:00", EndTime: "10:30"},
		{Day: "monday", StartTime: "10:15", EndTime: "11:00"},
	}
	slots, err := GenerateSlots(workingMonday("09:00", "12:00"), breaks, testSettings(30, 5), monday)
	require.NoError(t, err)

	want := []Slot{
		{StartTime: at(9, 0), EndTime: at(9, 30)},
		{StartTime: at(9, 35), EndTime: at(10, 5)},
		{StartTime: at(11, 20), EndTime: at(11, 50)},
	}
	assert.Equal(t, want, slots)
}

func TestGenerateSlots_NonWorkingDay(t *testing.T) {
	working := []domain.WorkingHours{
		{Day: "monday", StartTime: "09:00", EndTime: "12:00", IsWorking: false},
		{Day: "tuesday", StartTime: "09:00", EndTime: "12:00", IsWorking: true},
	}
	slots, err := GenerateSlots(working, nil, testSettings(30, 5), monday)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_NoEntryForDay(t *testing.T) {
	slots, err := GenerateSlots(nil, nil, testSettings(30, 5), monday)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_FirstEntryPerDayWins(t *testing.T) {
	working := []domain.WorkingHours{
		{Day: "monday", StartTime: "09:00", EndTime: "10:00", IsWorking: true},
		{Day: "monday", StartTime: "13:00", EndTime: "17:00", IsWorking: true},
	}
	slots, err := GenerateSlots(working, nil, testSettings(30, 0), monday)
	require.NoError(t, err)

	want := []Slot{
		{StartTime: at(9, 0), EndTime: at(9, 30)},
		{StartTime: at(9, 30), EndTime: at(10, 0)},
	}
	assert.Equal(t, want, slots, "duplicate entries for a day resolve to the first in order")
}

func TestGenerateSlots_ZeroBuffer(t *testing.T) {
	slots, err := GenerateSlots(workingMonday("09:00", "10:30"), nil, testSettings(30, 0), monday)
	require.NoError(t, err)
	assert.Len(t, slots, 3)
	assert.Equal(t, at(10, 0), slots[2].StartTime)
	assert.Equal(t, at(10, 30), slots[2].EndTime)
}

func TestGenerateSlots_MalformedWorkingHours(t *testing.T) {
	working := []domain.WorkingHours{
		{Day: "monday", StartTime: "9am", EndTime: "12:00", IsWorking: true},
	}
	_, err := GenerateSlots(working, nil, testSettings(30, 5), monday)
	assert.Error(t, err)
}

func TestGenerateSlots_Idempotent(t *testing.T) {
	breaks := []domain.BreakHours{
		{Day: "monday", StartTime: "10:00", EndTime: "10:20"},
	}
	first, err := GenerateSlots(workingMonday("09:00", "12:00"), breaks, testSettings(30, 5), monday)
	require.NoError(t, err)
	second, err := GenerateSlots(workingMonday("09:00", "12:00"), breaks, testSettings(30, 5), monday)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

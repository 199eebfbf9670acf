// Package schedule derives bookable time slots from a doctor's weekly
// schedule and the clinic-wide booking policy. It is pure computation: no
// storage, no caching, slots are regenerated on every call.
package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/Murugadoss7/dental-app/internal/domain"
)

// Slot is a candidate bookable interval. Slots are ephemeral values, never
// persisted; two slots are equal iff both bounds match exactly.
type Slot struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// GenerateSlots returns the ordered candidate slots for a doctor on the given
// date. A day without a working-hours entry (or with is_working unset) yields
// an empty list and no error.
//
// Walking the window: a slot [cursor, cursor+duration) is emitted while it
// still fits before the window end, then the cursor advances by
// duration+buffer whether or not the slot was kept. A slot is dropped when
// its start falls inside a break for that weekday; only the start is tested,
// inclusive at both break bounds, matching the booking rules the clinic has
// always used.
func GenerateSlots(working []domain.WorkingHours, breaks []domain.BreakHours, settings *domain.ClinicSettings, date time.Time) ([]Slot, error) {
	dayName := strings.ToLower(date.Weekday().String())

	var entry *domain.WorkingHours
	for i := range working {
		if strings.EqualFold(working[i].Day, dayName) && working[i].IsWorking {
			entry = &working[i]
			break
		}
	}
	if entry == nil {
		return []Slot{}, nil
	}

	windowStart, err := combine(date, entry.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid working hours start %q: %w", entry.StartTime, err)
	}
	windowEnd, err := combine(date, entry.EndTime)
	if err != nil {
		return nil, fmt.Errorf("invalid working hours end %q: %w", entry.EndTime, err)
	}

	type breakRange struct {
		start, end int
	}
	var dayBreaks []breakRange
	for _, b := range breaks {
		if !strings.EqualFold(b.Day, dayName) {
			continue
		}
		bs, err := minutesOfDay(b.StartTime)
		if err != nil {
			return nil, fmt.Errorf("invalid break start %q: %w", b.StartTime, err)
		}
		be, err := minutesOfDay(b.EndTime)
		if err != nil {
			return nil, fmt.Errorf("invalid break end %q: %w", b.EndTime, err)
		}
		dayBreaks = append(dayBreaks, breakRange{start: bs, end: be})
	}

	slotDuration := time.Duration(settings.SlotDuration) * time.Minute
	bufferTime := time.Duration(settings.BufferTime) * time.Minute

	var slots []Slot
	for cursor := windowStart; !cursor.Add(slotDuration).After(windowEnd); cursor = cursor.Add(slotDuration + bufferTime) {
		startMin := cursor.Hour()*60 + cursor.Minute()

		inBreak := false
		for _, b := range dayBreaks {
			if inRange(startMin, b.start, b.end) {
				inBreak = true
				break
			}
		}
		if inBreak {
			continue
		}

		slots = append(slots, Slot{
			StartTime: cursor,
			EndTime:   cursor.Add(slotDuration),
		})
	}

	return slots, nil
}

// inRange tests minute-of-day containment, inclusive at both ends. A range
// whose start exceeds its end wraps past midnight.
func inRange(t, start, end int) bool {
	if start <= end {
		return start <= t && t <= end
	}
	return t >= start || t <= end
}

// combine anchors an HH:mm wall-clock time on the given date, in the date's
// location.
func combine(date time.Time, hhmm string) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}

func minutesOfDay(hhmm string) (int, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

package domain

import "errors"

var (
	// ErrNotFound marks a missing appointment, doctor, patient or other record.
	ErrNotFound = errors.New("record not found")

	// ErrSlotNotAvailable covers every booking rejection: the interval does not
	// match a generated slot, the duration is wrong, or another appointment
	// overlaps. Callers are not told which; the original system collapses all
	// three into one rejection reason.
	ErrSlotNotAvailable = errors.New("selected time slot is not available")

	// ErrSettingsNotConfigured is returned when a booking operation runs
	// before clinic settings were created.
	ErrSettingsNotConfigured = errors.New("appointment settings not configured")

	// ErrSettingsExist is returned on a second settings create.
	ErrSettingsExist = errors.New("appointment settings already exist, use update instead")

	// ErrValidation wraps client-correctable input errors.
	ErrValidation = errors.New("validation error")
)

package services

import "errors"

var (
	// ErrInvalidInput covers malformed dates, non-positive nights, unknown
	// room types and blank guest names. Wrapped with detail at the call site.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoRoomAvailable means no room of the requested type is free for the
	// requested date range.
	ErrNoRoomAvailable = errors.New("no room available")

	// ErrReservationNotFound means the reservation ID matched nothing.
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrRoomRetained is the partial-success signal from Edit: the requested
	// room type or dates could not be satisfied, so the original room and
	// dates were kept while any guest-field changes were still applied.
	ErrRoomRetained = errors.New("requested room or dates unavailable, original booking retained")

	// ErrNotDurable means the operation was applied in memory but the
	// write-through flush failed, so durability is not guaranteed.
	ErrNotDurable = errors.New("state changed but could not be persisted")
)

package inventory

import (
	"context"

	"concierge/models"
)

// Repository defines access to rooms and the booking ledger. Occupancy is
// never stored: a room counts as occupied on a date iff a booking covers it,
// so state can never go stale when a checkout passes.
type Repository interface {
	// GetAllRoomTypes returns one summary per room type, sorted by type name.
	// Availability in the summary is relative to today.
	GetAllRoomTypes(ctx context.Context) ([]models.RoomTypeSummary, error)

	// GetAvailableRoomsByType returns the rooms of the given type (matched
	// case-insensitively) that are free today. Unknown or exhausted types
	// yield an empty slice, not an error.
	GetAvailableRoomsByType(ctx context.Context, roomType string) ([]models.Room, error)

	// GetRoom returns a single room with its derived status, or
	// ErrRoomNotFound.
	GetRoom(ctx context.Context, roomID int) (*models.Room, error)

	// CreateBooking persists a booking after an atomic overlap check.
	// Returns ErrRoomNotFound for an unknown room and ErrRoomUnavailable when
	// an existing booking overlaps the requested stay.
	CreateBooking(ctx context.Context, booking *models.Booking) error

	// BookingsForRoom returns all bookings for one room, newest last.
	BookingsForRoom(ctx context.Context, roomID int) ([]models.Booking, error)

	// AllBookings returns the full booking ledger.
	AllBookings(ctx context.Context) ([]models.Booking, error)
}

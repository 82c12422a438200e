package inventory

import "errors"

var (
	// ErrRoomNotFound indicates the room id does not exist.
	ErrRoomNotFound = errors.New("room not found")

	// ErrRoomUnavailable indicates an existing booking overlaps the
	// requested stay.
	ErrRoomUnavailable = errors.New("room unavailable for the requested dates")
)

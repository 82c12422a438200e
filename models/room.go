package models

import "time"

// Room status values. Status is derived at read time from the booking ledger,
// never stored: a room is occupied on a date iff a booking covers that date.
const (
	RoomStatusAvailable = "available"
	RoomStatusOccupied  = "occupied"
)

// Room represents a single bookable room.
type Room struct {
	ID       int     `bson:"id" json:"room_id"`          // Unique numeric room identifier
	RoomType string  `bson:"room_type" json:"room_type"` // Category name, e.g. "Deluxe"
	Rate     float64 `bson:"rate" json:"rate"`           // Nightly rate before discount
	Status   string  `bson:"-" json:"status"`            // Derived: "available" or "occupied" today
}

// RoomTypeSummary aggregates the rooms of one category.
type RoomTypeSummary struct {
	RoomType       string  `bson:"room_type" json:"room_type"`
	MinPrice       float64 `bson:"min_price" json:"min_price"`
	MaxPrice       float64 `bson:"max_price" json:"max_price"`
	TotalRooms     int     `bson:"total_rooms" json:"total_rooms"`
	AvailableRooms int     `bson:"available_rooms" json:"available_rooms"`
}

// Booking represents a confirmed booking record.
type Booking struct {
	ID         string    `bson:"id" json:"id"`                             // Unique booking identifier (UUID)
	RoomID     int       `bson:"room_id" json:"room_id"`                   // Booked room
	GuestName  string    `bson:"guest_name" json:"guest_name"`             // Guest who made the booking
	CheckIn    string    `bson:"check_in" json:"check_in_date"`            // "YYYY-MM-DD"
	CheckOut   string    `bson:"check_out" json:"check_out_date"`          // "YYYY-MM-DD", exclusive
	Occasion   string    `bson:"occasion,omitempty" json:"special_occasion,omitempty"`
	FinalPrice float64   `bson:"final_price" json:"final_price"`           // Nightly rate after discount
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

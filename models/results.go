package models

// Tool result shapes. Every externally callable operation returns one of these
// instead of a loose map: a success flag plus the operation's payload fields,
// with failure details in Error/Message. Optional fields use pointers with
// omitempty so absent means absent on the wire.

// RoomSearchResult answers search_available_rooms.
type RoomSearchResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`

	// Populated when a specific room type was requested.
	RoomType       string `json:"room_type,omitempty"`
	AvailableCount *int   `json:"available_count,omitempty"`
	Rooms          []Room `json:"rooms,omitempty"`

	// Populated for the type-less overview.
	TotalRoomTypes *int              `json:"total_room_types,omitempty"`
	RoomTypes      []RoomTypeSummary `json:"room_types,omitempty"`
}

// AvailabilityResult answers check_room_availability.
type AvailabilityResult struct {
	Success        bool   `json:"success"`
	RoomType       string `json:"room_type"`
	IsAvailable    bool   `json:"is_available"`
	AvailableCount int    `json:"available_count"`
	Rooms          []Room `json:"rooms"`
	Error          string `json:"error,omitempty"`
}

// PricingResult answers get_room_pricing.
type PricingResult struct {
	Success        bool     `json:"success"`
	RoomType       string   `json:"room_type,omitempty"`
	MinPrice       *float64 `json:"min_price,omitempty"`
	MaxPrice       *float64 `json:"max_price,omitempty"`
	AvailableRooms *int     `json:"available_rooms,omitempty"`
	Error          string   `json:"error,omitempty"`
}

// BookingResult answers book_room.
type BookingResult struct {
	Success    bool     `json:"success"`
	Message    string   `json:"message"`
	FinalPrice *float64 `json:"final_price,omitempty"`
	RoomID     int      `json:"room_id"`
	GuestName  string   `json:"guest_name"`
}

// RoomDetailsResult answers get_room_details.
type RoomDetailsResult struct {
	Success bool   `json:"success"`
	Room    *Room  `json:"room,omitempty"`
	Error   string `json:"error,omitempty"`
}

// RoomSuggestion is one entry of suggest_room_for_occasion.
type RoomSuggestion struct {
	RoomType       string  `json:"room_type"`
	MaxPrice       float64 `json:"max_price"`
	AvailableRooms int     `json:"available_rooms"`
	SuitableFor    string  `json:"suitable_for"`
}

// SuggestionsResult answers suggest_room_for_occasion.
type SuggestionsResult struct {
	Success     bool             `json:"success"`
	Occasion    string           `json:"occasion"`
	Budget      *float64         `json:"budget,omitempty"`
	Suggestions []RoomSuggestion `json:"suggestions"`
	Error       string           `json:"error,omitempty"`
}

// DiscountResult answers calculate_discount.
type DiscountResult struct {
	Success            bool     `json:"success"`
	RoomType           string   `json:"room_type,omitempty"`
	OriginalPrice      *float64 `json:"original_price,omitempty"`
	DiscountPercentage *float64 `json:"discount_percentage,omitempty"`
	DiscountAmount     *float64 `json:"discount_amount,omitempty"`
	FinalPrice         *float64 `json:"final_price,omitempty"`
	Occasion           string   `json:"occasion"`
	Error              string   `json:"error,omitempty"`
}

// BookingSummary is the aggregate block of get_booking_summary.
type BookingSummary struct {
	TotalRooms     int     `json:"total_rooms"`
	AvailableRooms int     `json:"available_rooms"`
	OccupiedRooms  int     `json:"occupied_rooms"`
	OccupancyRate  float64 `json:"occupancy_rate"`
}

// SummaryResult answers get_booking_summary.
type SummaryResult struct {
	Success   bool              `json:"success"`
	Summary   BookingSummary    `json:"summary"`
	RoomTypes []RoomTypeSummary `json:"room_types"`
}

// Note-store operation results. Kind carries the failure taxonomy
// ("duplicate", "not_found", "storage") so callers can tell a missing file
// from a broken backing store.

// NoteAddResult answers add_meeting_file and ingest_pdf_file.
type NoteAddResult struct {
	Success  bool   `json:"success"`
	Filename string `json:"filename"`
	Error    string `json:"error,omitempty"`
	Kind     string `json:"kind,omitempty"`
}

// NoteSearchResult answers search_meeting_files.
type NoteSearchResult struct {
	Success bool        `json:"success"`
	Query   string      `json:"query"`
	Results []NoteMatch `json:"results"`
	Error   string      `json:"error,omitempty"`
}

// NoteRetrieveResult answers retrieve_meeting_file.
type NoteRetrieveResult struct {
	Success  bool   `json:"success"`
	Filename string `json:"filename"`
	Content  string `json:"content,omitempty"`
	Error    string `json:"error,omitempty"`
	Kind     string `json:"kind,omitempty"`
}

// NoteTruncateResult answers truncate_meeting_files.
type NoteTruncateResult struct {
	Success bool `json:"success"`
	Removed int  `json:"removed"`
}

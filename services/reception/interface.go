package reception

import (
	"context"

	"concierge/database/repository/inventory"
	"concierge/models"

	"go.uber.org/zap"
)

// BookRoomInput carries the fields of a booking request.
type BookRoomInput struct {
	RoomID    int    `json:"room_id"`
	GuestName string `json:"guest_name"`
	CheckIn   string `json:"check_in_date"`
	CheckOut  string `json:"check_out_date"`
	Occasion  string `json:"special_occasion"`
}

// LedgerExporter triggers the post-booking ledger snapshot. The default
// implementation enqueues an asynq task; tests plug in a stub.
type LedgerExporter interface {
	EnqueueExport(ctx context.Context) error
}

// Service is the tool surface the agent runtime calls. Every operation
// returns a structured result; expected domain failures (unknown rooms, bad
// dates, double bookings) come back as success=false, and only backing-store
// faults surface as errors.
type Service interface {
	SearchAvailableRooms(ctx context.Context, roomType string) (*models.RoomSearchResult, error)
	CheckRoomAvailability(ctx context.Context, roomType string) (*models.AvailabilityResult, error)
	GetRoomPricing(ctx context.Context, roomType string) (*models.PricingResult, error)
	BookRoom(ctx context.Context, input BookRoomInput) (*models.BookingResult, error)
	GetRoomDetails(ctx context.Context, roomID int) (*models.RoomDetailsResult, error)
	SuggestRoomForOccasion(ctx context.Context, occasion string, budget *float64) (*models.SuggestionsResult, error)
	CalculateDiscount(ctx context.Context, roomType, occasion string) (*models.DiscountResult, error)
	GetBookingSummary(ctx context.Context) (*models.SummaryResult, error)
}

// DefaultService implements Service.
type DefaultService struct {
	Repo     inventory.Repository
	Exporter LedgerExporter
	Logger   *zap.Logger
}

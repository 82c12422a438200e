package reception

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"concierge/database/repository/inventory"
	"concierge/models"
)

const maxSuggestions = 3

func (s *DefaultService) log() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.L()
}

// SearchAvailableRooms lists the available rooms of one type, or every room
// type with counts when no type is given. Empty results are a success.
func (s *DefaultService) SearchAvailableRooms(ctx context.Context, roomType string) (*models.RoomSearchResult, error) {
	s.log().Info("Searching for available rooms", zap.String("room_type", roomType))

	if roomType != "" {
		rooms, err := s.Repo.GetAvailableRoomsByType(ctx, roomType)
		if err != nil {
			return nil, newStorageError("search available rooms", err)
		}
		count := len(rooms)
		return &models.RoomSearchResult{
			Success:        true,
			RoomType:       roomType,
			AvailableCount: &count,
			Rooms:          rooms,
		}, nil
	}

	roomTypes, err := s.Repo.GetAllRoomTypes(ctx)
	if err != nil {
		return nil, newStorageError("search room types", err)
	}
	total := len(roomTypes)
	return &models.RoomSearchResult{
		Success:        true,
		TotalRoomTypes: &total,
		RoomTypes:      roomTypes,
	}, nil
}

// CheckRoomAvailability reports whether a room type has free rooms today.
func (s *DefaultService) CheckRoomAvailability(ctx context.Context, roomType string) (*models.AvailabilityResult, error) {
	s.log().Info("Checking availability", zap.String("room_type", roomType))

	rooms, err := s.Repo.GetAvailableRoomsByType(ctx, roomType)
	if err != nil {
		return nil, newStorageError("check room availability", err)
	}
	return &models.AvailabilityResult{
		Success:        true,
		RoomType:       roomType,
		IsAvailable:    len(rooms) > 0,
		AvailableCount: len(rooms),
		Rooms:          rooms,
	}, nil
}

// GetRoomPricing returns the price band of a room type, matched
// case-insensitively.
func (s *DefaultService) GetRoomPricing(ctx context.Context, roomType string) (*models.PricingResult, error) {
	s.log().Info("Getting pricing", zap.String("room_type", roomType))

	roomTypes, err := s.Repo.GetAllRoomTypes(ctx)
	if err != nil {
		return nil, newStorageError("get room pricing", err)
	}
	for _, rt := range roomTypes {
		if strings.EqualFold(rt.RoomType, roomType) {
			minPrice, maxPrice, available := rt.MinPrice, rt.MaxPrice, rt.AvailableRooms
			return &models.PricingResult{
				Success:        true,
				RoomType:       rt.RoomType,
				MinPrice:       &minPrice,
				MaxPrice:       &maxPrice,
				AvailableRooms: &available,
			}, nil
		}
	}
	return &models.PricingResult{
		Success: false,
		Error:   fmt.Sprintf("Room type '%s' not found", roomType),
	}, nil
}

// BookRoom books a room for a guest. The discount for the occasion is applied
// to the room's nightly rate, the booking is persisted atomically against
// concurrent overlaps, and a ledger export is enqueued on success.
func (s *DefaultService) BookRoom(ctx context.Context, input BookRoomInput) (*models.BookingResult, error) {
	s.log().Info("Booking room",
		zap.Int("room_id", input.RoomID),
		zap.String("guest_name", input.GuestName))

	failure := func(msg string) *models.BookingResult {
		return &models.BookingResult{
			Success:   false,
			Message:   msg,
			RoomID:    input.RoomID,
			GuestName: input.GuestName,
		}
	}

	if strings.TrimSpace(input.GuestName) == "" {
		return failure("Guest name is required"), nil
	}
	if err := validateStay(input.CheckIn, input.CheckOut); err != nil {
		return failure(err.Error()), nil
	}

	room, err := s.Repo.GetRoom(ctx, input.RoomID)
	if errors.Is(err, inventory.ErrRoomNotFound) {
		return failure(fmt.Sprintf("Room %d not found", input.RoomID)), nil
	}
	if err != nil {
		return nil, newStorageError("load room", err)
	}

	percent := DiscountFor(input.Occasion)
	finalPrice := ApplyDiscount(room.Rate, percent)

	booking := &models.Booking{
		ID:         uuid.New().String(),
		RoomID:     input.RoomID,
		GuestName:  input.GuestName,
		CheckIn:    input.CheckIn,
		CheckOut:   input.CheckOut,
		Occasion:   input.Occasion,
		FinalPrice: finalPrice,
		CreatedAt:  time.Now().UTC(),
	}

	err = s.Repo.CreateBooking(ctx, booking)
	if errors.Is(err, inventory.ErrRoomUnavailable) {
		return failure(fmt.Sprintf("Room %d is already booked for overlapping dates", input.RoomID)), nil
	}
	if errors.Is(err, inventory.ErrRoomNotFound) {
		return failure(fmt.Sprintf("Room %d not found", input.RoomID)), nil
	}
	if err != nil {
		return nil, newStorageError("create booking", err)
	}

	// The ledger snapshot is a side effect; a queue hiccup must not undo a
	// confirmed booking.
	if s.Exporter != nil {
		if err := s.Exporter.EnqueueExport(ctx); err != nil {
			s.log().Warn("Failed to enqueue ledger export", zap.Error(err))
		}
	}

	msg := fmt.Sprintf("Room %d (%s) booked for %s from %s to %s",
		room.ID, room.RoomType, input.GuestName, input.CheckIn, input.CheckOut)
	if percent > 0 {
		msg += fmt.Sprintf(" with a %.0f%% %s discount", percent, strings.ToLower(strings.TrimSpace(input.Occasion)))
	}
	return &models.BookingResult{
		Success:    true,
		Message:    msg,
		FinalPrice: &finalPrice,
		RoomID:     input.RoomID,
		GuestName:  input.GuestName,
	}, nil
}

// GetRoomDetails returns one room with its derived occupancy status.
func (s *DefaultService) GetRoomDetails(ctx context.Context, roomID int) (*models.RoomDetailsResult, error) {
	s.log().Info("Getting room details", zap.Int("room_id", roomID))

	room, err := s.Repo.GetRoom(ctx, roomID)
	if errors.Is(err, inventory.ErrRoomNotFound) {
		return &models.RoomDetailsResult{
			Success: false,
			Error:   fmt.Sprintf("Room %d not found", roomID),
		}, nil
	}
	if err != nil {
		return nil, newStorageError("get room details", err)
	}
	return &models.RoomDetailsResult{Success: true, Room: room}, nil
}

// SuggestRoomForOccasion proposes up to three of the cheapest room types with
// available inventory, optionally capped by budget. Ordering is ascending by
// max price; ties keep the store's name order.
func (s *DefaultService) SuggestRoomForOccasion(ctx context.Context, occasion string, budget *float64) (*models.SuggestionsResult, error) {
	s.log().Info("Suggesting rooms",
		zap.String("occasion", occasion),
		zap.Float64p("budget", budget))

	if budget != nil && *budget < 0 {
		return &models.SuggestionsResult{
			Success:     false,
			Occasion:    occasion,
			Budget:      budget,
			Suggestions: []models.RoomSuggestion{},
			Error:       "budget must not be negative",
		}, nil
	}

	roomTypes, err := s.Repo.GetAllRoomTypes(ctx)
	if err != nil {
		return nil, newStorageError("suggest rooms", err)
	}

	suggestions := make([]models.RoomSuggestion, 0, len(roomTypes))
	for _, rt := range roomTypes {
		if rt.AvailableRooms == 0 {
			continue
		}
		if budget != nil && rt.MaxPrice > *budget {
			continue
		}
		suggestions = append(suggestions, models.RoomSuggestion{
			RoomType:       rt.RoomType,
			MaxPrice:       rt.MaxPrice,
			AvailableRooms: rt.AvailableRooms,
			SuitableFor:    occasion,
		})
	}
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].MaxPrice < suggestions[j].MaxPrice
	})
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}

	return &models.SuggestionsResult{
		Success:     true,
		Occasion:    occasion,
		Budget:      budget,
		Suggestions: suggestions,
	}, nil
}

// CalculateDiscount quotes the occasion discount against a room type's max
// price without creating a booking.
func (s *DefaultService) CalculateDiscount(ctx context.Context, roomType, occasion string) (*models.DiscountResult, error) {
	s.log().Info("Calculating discount",
		zap.String("room_type", roomType),
		zap.String("occasion", occasion))

	roomTypes, err := s.Repo.GetAllRoomTypes(ctx)
	if err != nil {
		return nil, newStorageError("calculate discount", err)
	}
	for _, rt := range roomTypes {
		if !strings.EqualFold(rt.RoomType, roomType) {
			continue
		}
		percent := DiscountFor(occasion)
		original := rt.MaxPrice
		amount := original * percent / 100
		final := original - amount
		return &models.DiscountResult{
			Success:            true,
			RoomType:           rt.RoomType,
			OriginalPrice:      &original,
			DiscountPercentage: &percent,
			DiscountAmount:     &amount,
			FinalPrice:         &final,
			Occasion:           occasion,
		}, nil
	}
	return &models.DiscountResult{
		Success:  false,
		Occasion: occasion,
		Error:    fmt.Sprintf("Room type '%s' not found", roomType),
	}, nil
}

// GetBookingSummary aggregates occupancy across all room types.
func (s *DefaultService) GetBookingSummary(ctx context.Context) (*models.SummaryResult, error) {
	s.log().Info("Getting booking summary")

	roomTypes, err := s.Repo.GetAllRoomTypes(ctx)
	if err != nil {
		return nil, newStorageError("get booking summary", err)
	}

	var total, available int
	for _, rt := range roomTypes {
		total += rt.TotalRooms
		available += rt.AvailableRooms
	}
	occupied := total - available
	rate := 0.0
	if total > 0 {
		rate = float64(occupied) / float64(total) * 100
	}

	return &models.SummaryResult{
		Success: true,
		Summary: models.BookingSummary{
			TotalRooms:     total,
			AvailableRooms: available,
			OccupiedRooms:  occupied,
			OccupancyRate:  rate,
		},
		RoomTypes: roomTypes,
	}, nil
}

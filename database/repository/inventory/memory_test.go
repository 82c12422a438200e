package inventory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"concierge/models"
)

func testRepo() *MemoryRepo {
	repo := NewMemoryRepo([]models.Room{
		{ID: 1, RoomType: "Suite", Rate: 200},
		{ID: 2, RoomType: "Suite", Rate: 300},
	})
	repo.Now = func() time.Time {
		return time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	}
	return repo
}

func TestGetAvailableRoomsByTypeCaseInsensitive(t *testing.T) {
	repo := testRepo()

	rooms, err := repo.GetAvailableRoomsByType(context.Background(), "sUiTe")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(rooms))
	}
	if rooms[0].ID != 1 || rooms[1].ID != 2 {
		t.Fatalf("rooms not sorted by id: %+v", rooms)
	}
}

func TestGetAvailableRoomsUnknownType(t *testing.T) {
	repo := testRepo()

	rooms, err := repo.GetAvailableRoomsByType(context.Background(), "Igloo")
	if err != nil {
		t.Fatalf("unknown type must not error: %v", err)
	}
	if len(rooms) != 0 {
		t.Fatalf("expected no rooms, got %+v", rooms)
	}
}

func TestGetRoomNotFound(t *testing.T) {
	repo := testRepo()

	if _, err := repo.GetRoom(context.Background(), 404); !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
}

func TestRoomFreeAgainAfterCheckout(t *testing.T) {
	repo := testRepo()
	ctx := context.Background()

	err := repo.CreateBooking(ctx, &models.Booking{
		ID: "b1", RoomID: 1, GuestName: "Alice",
		CheckIn: "2025-06-01", CheckOut: "2025-06-05",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Today (6/10) is past the checkout, so the room shows available without
	// any sweep having run.
	room, err := repo.GetRoom(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if room.Status != models.RoomStatusAvailable {
		t.Fatalf("expected available after checkout passed, got %q", room.Status)
	}

	// Rewind the clock into the stay and the same booking occupies the room.
	repo.Now = func() time.Time {
		return time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC)
	}
	room, err = repo.GetRoom(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if room.Status != models.RoomStatusOccupied {
		t.Fatalf("expected occupied during stay, got %q", room.Status)
	}
}

func TestCreateBookingOverlapRejected(t *testing.T) {
	repo := testRepo()
	ctx := context.Background()

	if err := repo.CreateBooking(ctx, &models.Booking{
		ID: "b1", RoomID: 1, GuestName: "Alice",
		CheckIn: "2025-06-01", CheckOut: "2025-06-05",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := repo.CreateBooking(ctx, &models.Booking{
		ID: "b2", RoomID: 1, GuestName: "Mallory",
		CheckIn: "2025-06-03", CheckOut: "2025-06-07",
	})
	if !errors.Is(err, ErrRoomUnavailable) {
		t.Fatalf("expected ErrRoomUnavailable, got %v", err)
	}

	// The loser left no trace.
	bookings, err := repo.BookingsForRoom(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bookings) != 1 || bookings[0].ID != "b1" {
		t.Fatalf("room state changed by failed booking: %+v", bookings)
	}
}

func TestCreateBookingUnknownRoom(t *testing.T) {
	repo := testRepo()

	err := repo.CreateBooking(context.Background(), &models.Booking{
		ID: "b1", RoomID: 404, GuestName: "Alice",
		CheckIn: "2025-06-01", CheckOut: "2025-06-05",
	})
	if !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
}

func TestConcurrentBookingSingleWinner(t *testing.T) {
	repo := testRepo()
	ctx := context.Background()

	const attempts = 16
	var wg sync.WaitGroup
	results := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = repo.CreateBooking(ctx, &models.Booking{
				ID: "b", RoomID: 2, GuestName: "Racer",
				CheckIn: "2025-07-01", CheckOut: "2025-07-04",
			})
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range results {
		switch {
		case err == nil:
			winners++
		case errors.Is(err, ErrRoomUnavailable):
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if winners != 1 {
		t.Fatalf("expected exactly one winner, got %d", winners)
	}
}

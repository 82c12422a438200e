package inventory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"concierge/models"
)

// MemoryRepo is a mutex-guarded in-process implementation of Repository.
// It backs the standalone binary and all tests; the Mongo implementation is
// selected via config for deployments that need shared persistence.
type MemoryRepo struct {
	mu       sync.RWMutex
	rooms    map[int]models.Room
	bookings []models.Booking

	// Now is overridable so tests can pin "today".
	Now func() time.Time
}

// NewMemoryRepo builds a repository pre-seeded with the given rooms.
func NewMemoryRepo(rooms []models.Room) *MemoryRepo {
	m := &MemoryRepo{
		rooms: make(map[int]models.Room, len(rooms)),
		Now:   time.Now,
	}
	for _, r := range rooms {
		r.Status = ""
		m.rooms[r.ID] = r
	}
	return m
}

// DefaultRooms is the seed inventory used when no external store is configured.
func DefaultRooms() []models.Room {
	return []models.Room{
		{ID: 101, RoomType: "Standard", Rate: 80},
		{ID: 102, RoomType: "Standard", Rate: 90},
		{ID: 103, RoomType: "Standard", Rate: 110},
		{ID: 104, RoomType: "Standard", Rate: 120},
		{ID: 201, RoomType: "Deluxe", Rate: 150},
		{ID: 202, RoomType: "Deluxe", Rate: 170},
		{ID: 203, RoomType: "Deluxe", Rate: 200},
		{ID: 301, RoomType: "Suite", Rate: 150},
		{ID: 302, RoomType: "Suite", Rate: 300},
		{ID: 401, RoomType: "Presidential", Rate: 500},
	}
}

func (m *MemoryRepo) today() time.Time {
	return startOfDay(m.Now())
}

// freeOn reports whether the room has no booking covering the given day.
// Caller must hold at least a read lock.
func (m *MemoryRepo) freeOn(roomID int, day time.Time) bool {
	for _, b := range m.bookings {
		if b.RoomID != roomID {
			continue
		}
		in, errIn := parseDate(b.CheckIn)
		out, errOut := parseDate(b.CheckOut)
		if errIn != nil || errOut != nil {
			continue
		}
		if covers(in, out, day) {
			return false
		}
	}
	return true
}

func (m *MemoryRepo) GetAllRoomTypes(ctx context.Context) ([]models.RoomTypeSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	today := m.today()
	byType := make(map[string]*models.RoomTypeSummary)
	for _, r := range m.rooms {
		s, ok := byType[r.RoomType]
		if !ok {
			s = &models.RoomTypeSummary{
				RoomType: r.RoomType,
				MinPrice: r.Rate,
				MaxPrice: r.Rate,
			}
			byType[r.RoomType] = s
		}
		if r.Rate < s.MinPrice {
			s.MinPrice = r.Rate
		}
		if r.Rate > s.MaxPrice {
			s.MaxPrice = r.Rate
		}
		s.TotalRooms++
		if m.freeOn(r.ID, today) {
			s.AvailableRooms++
		}
	}

	summaries := make([]models.RoomTypeSummary, 0, len(byType))
	for _, s := range byType {
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].RoomType < summaries[j].RoomType
	})
	return summaries, nil
}

func (m *MemoryRepo) GetAvailableRoomsByType(ctx context.Context, roomType string) ([]models.Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	today := m.today()
	rooms := make([]models.Room, 0)
	for _, r := range m.rooms {
		if !strings.EqualFold(r.RoomType, roomType) {
			continue
		}
		if !m.freeOn(r.ID, today) {
			continue
		}
		r.Status = models.RoomStatusAvailable
		rooms = append(rooms, r)
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })
	return rooms, nil
}

func (m *MemoryRepo) GetRoom(ctx context.Context, roomID int) (*models.Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.rooms[roomID]
	if !ok {
		return nil, ErrRoomNotFound
	}
	if m.freeOn(r.ID, m.today()) {
		r.Status = models.RoomStatusAvailable
	} else {
		r.Status = models.RoomStatusOccupied
	}
	return &r, nil
}

func (m *MemoryRepo) CreateBooking(ctx context.Context, booking *models.Booking) error {
	in, err := parseDate(booking.CheckIn)
	if err != nil {
		return err
	}
	out, err := parseDate(booking.CheckOut)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.rooms[booking.RoomID]; !ok {
		return ErrRoomNotFound
	}
	// Overlap check and insert happen under the same lock so two concurrent
	// bookings for the same room can never both succeed.
	for _, b := range m.bookings {
		if b.RoomID != booking.RoomID {
			continue
		}
		bIn, errIn := parseDate(b.CheckIn)
		bOut, errOut := parseDate(b.CheckOut)
		if errIn != nil || errOut != nil {
			continue
		}
		if overlaps(in, out, bIn, bOut) {
			return ErrRoomUnavailable
		}
	}
	m.bookings = append(m.bookings, *booking)
	return nil
}

func (m *MemoryRepo) BookingsForRoom(ctx context.Context, roomID int) ([]models.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Booking, 0)
	for _, b := range m.bookings {
		if b.RoomID == roomID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *MemoryRepo) AllBookings(ctx context.Context) ([]models.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Booking, len(m.bookings))
	copy(out, m.bookings)
	return out, nil
}

package inventory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"concierge/database"
	"concierge/models"
)

// MongoRepo implements Repository on MongoDB. Rooms live in the "rooms"
// collection and are seeded externally; bookings are appended to "bookings".
type MongoRepo struct {
	roomColl    *mongo.Collection
	bookingColl *mongo.Collection
	client      *mongo.Client
}

// NewMongoRepo builds a MongoDB-backed inventory repository.
func NewMongoRepo() *MongoRepo {
	db := database.MongoClient.Database("concierge")
	return &MongoRepo{
		roomColl:    db.Collection("rooms"),
		bookingColl: db.Collection("bookings"),
		client:      database.MongoClient,
	}
}

func (repo *MongoRepo) loadRooms(ctx context.Context) ([]models.Room, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cur, err := repo.roomColl.Find(ctxWithTimeout, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error loading rooms: %w", err)
	}
	defer cur.Close(ctxWithTimeout)

	var rooms []models.Room
	if err := cur.All(ctxWithTimeout, &rooms); err != nil {
		return nil, fmt.Errorf("error decoding rooms: %w", err)
	}
	return rooms, nil
}

func (repo *MongoRepo) loadBookings(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cur, err := repo.bookingColl.Find(ctxWithTimeout, filter)
	if err != nil {
		return nil, fmt.Errorf("error loading bookings: %w", err)
	}
	defer cur.Close(ctxWithTimeout)

	var bookings []models.Booking
	if err := cur.All(ctxWithTimeout, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

// occupiedToday returns the set of room ids with a booking covering today.
func occupiedToday(bookings []models.Booking) map[int]bool {
	today := startOfDay(time.Now())
	occupied := make(map[int]bool)
	for _, b := range bookings {
		in, errIn := parseDate(b.CheckIn)
		out, errOut := parseDate(b.CheckOut)
		if errIn != nil || errOut != nil {
			continue
		}
		if covers(in, out, today) {
			occupied[b.RoomID] = true
		}
	}
	return occupied
}

func (repo *MongoRepo) GetAllRoomTypes(ctx context.Context) ([]models.RoomTypeSummary, error) {
	rooms, err := repo.loadRooms(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := repo.loadBookings(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	occupied := occupiedToday(bookings)

	byType := make(map[string]*models.RoomTypeSummary)
	for _, r := range rooms {
		s, ok := byType[r.RoomType]
		if !ok {
			s = &models.RoomTypeSummary{RoomType: r.RoomType, MinPrice: r.Rate, MaxPrice: r.Rate}
			byType[r.RoomType] = s
		}
		if r.Rate < s.MinPrice {
			s.MinPrice = r.Rate
		}
		if r.Rate > s.MaxPrice {
			s.MaxPrice = r.Rate
		}
		s.TotalRooms++
		if !occupied[r.ID] {
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

func (repo *MongoRepo) GetAvailableRoomsByType(ctx context.Context, roomType string) ([]models.Room, error) {
	rooms, err := repo.loadRooms(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := repo.loadBookings(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	occupied := occupiedToday(bookings)

	available := make([]models.Room, 0)
	for _, r := range rooms {
		if !strings.EqualFold(r.RoomType, roomType) || occupied[r.ID] {
			continue
		}
		r.Status = models.RoomStatusAvailable
		available = append(available, r)
	}
	sort.Slice(available, func(i, j int) bool { return available[i].ID < available[j].ID })
	return available, nil
}

func (repo *MongoRepo) GetRoom(ctx context.Context, roomID int) (*models.Room, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var room models.Room
	err := repo.roomColl.FindOne(ctxWithTimeout, bson.M{"id": roomID}).Decode(&room)
	if err == mongo.ErrNoDocuments {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error loading room %d: %w", roomID, err)
	}

	bookings, err := repo.loadBookings(ctx, bson.M{"room_id": roomID})
	if err != nil {
		return nil, err
	}
	if occupiedToday(bookings)[roomID] {
		room.Status = models.RoomStatusOccupied
	} else {
		room.Status = models.RoomStatusAvailable
	}
	return &room, nil
}

// CreateBooking runs the overlap check and insert inside a single MongoDB
// transaction so concurrent bookings for the same room cannot both commit.
func (repo *MongoRepo) CreateBooking(ctx context.Context, booking *models.Booking) error {
	in, err := parseDate(booking.CheckIn)
	if err != nil {
		return err
	}
	out, err := parseDate(booking.CheckOut)
	if err != nil {
		return err
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	session, err := repo.client.StartSession()
	if err != nil {
		return fmt.Errorf("error starting session: %w", err)
	}
	defer session.EndSession(ctxWithTimeout)

	_, err = session.WithTransaction(ctxWithTimeout, func(sc mongo.SessionContext) (interface{}, error) {
		count, err := repo.roomColl.CountDocuments(sc, bson.M{"id": booking.RoomID})
		if err != nil {
			return nil, fmt.Errorf("error checking room: %w", err)
		}
		if count == 0 {
			return nil, ErrRoomNotFound
		}

		existing, err := repo.loadBookings(sc, bson.M{"room_id": booking.RoomID})
		if err != nil {
			return nil, err
		}
		for _, b := range existing {
			bIn, errIn := parseDate(b.CheckIn)
			bOut, errOut := parseDate(b.CheckOut)
			if errIn != nil || errOut != nil {
				continue
			}
			if overlaps(in, out, bIn, bOut) {
				return nil, ErrRoomUnavailable
			}
		}

		if _, err := repo.bookingColl.InsertOne(sc, booking); err != nil {
			return nil, fmt.Errorf("error creating booking: %w", err)
		}
		return nil, nil
	})
	return err
}

func (repo *MongoRepo) BookingsForRoom(ctx context.Context, roomID int) ([]models.Booking, error) {
	return repo.loadBookings(ctx, bson.M{"room_id": roomID})
}

func (repo *MongoRepo) AllBookings(ctx context.Context) ([]models.Booking, error) {
	return repo.loadBookings(ctx, bson.M{})
}

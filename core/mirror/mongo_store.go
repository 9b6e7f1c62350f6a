package mirror

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements Store over one collection per entity.
type MongoStore struct {
	hotels       *mongo.Collection
	rooms        *mongo.Collection
	reservations *mongo.Collection
	reviews      *mongo.Collection
}

// NewMongoStore creates a mirror store over db.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		hotels:       db.Collection(Hotel{}.TableName()),
		rooms:        db.Collection(Room{}.TableName()),
		reservations: db.Collection(Reservation{}.TableName()),
		reviews:      db.Collection(Review{}.TableName()),
	}
}

// Migrate creates a unique objectId index per collection plus the lookup
// indexes used by the read API.
func (s *MongoStore) Migrate(ctx context.Context) error {
	unique := mongo.IndexModel{
		Keys:    bson.D{{Key: "objectId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	indexes := []struct {
		coll   *mongo.Collection
		models []mongo.IndexModel
	}{
		{s.hotels, []mongo.IndexModel{unique, {Keys: bson.D{{Key: "owner", Value: 1}}}}},
		{s.rooms, []mongo.IndexModel{unique, {Keys: bson.D{{Key: "hotelId", Value: 1}}}}},
		{s.reservations, []mongo.IndexModel{unique, {Keys: bson.D{{Key: "guestAddress", Value: 1}}}}},
		{s.reviews, []mongo.IndexModel{unique, {Keys: bson.D{{Key: "hotelId", Value: 1}}}}},
	}
	for _, idx := range indexes {
		if _, err := idx.coll.Indexes().CreateMany(ctx, idx.models); err != nil {
			return fmt.Errorf("migrate %s: %w", idx.coll.Name(), err)
		}
	}
	return nil
}

func upsertDoc(ctx context.Context, coll *mongo.Collection, objectID string, set bson.M) error {
	now := time.Now().UTC().Truncate(time.Millisecond)
	set["updatedAt"] = now
	_, err := coll.UpdateOne(ctx,
		bson.M{"objectId": objectID},
		bson.M{
			"$set":         set,
			"$setOnInsert": bson.M{"createdAt": now},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

func (s *MongoStore) UpsertHotel(ctx context.Context, h *Hotel) error {
	err := upsertDoc(ctx, s.hotels, h.ObjectID, bson.M{
		"name":            h.Name,
		"physicalAddress": h.PhysicalAddress,
		"owner":           h.Owner,
		"treasury":        h.Treasury,
	})
	if err != nil {
		return fmt.Errorf("upsert hotel %s: %w", h.ObjectID, err)
	}
	return nil
}

func (s *MongoStore) UpsertRoom(ctx context.Context, r *Room) error {
	err := upsertDoc(ctx, s.rooms, r.ObjectID, bson.M{
		"hotelId":     r.HotelID,
		"pricePerDay": r.PricePerDay,
		"isBooked":    r.IsBooked,
		"imageUrl":    r.ImageURL,
	})
	if err != nil {
		return fmt.Errorf("upsert room %s: %w", r.ObjectID, err)
	}
	return nil
}

func (s *MongoStore) UpsertReservation(ctx context.Context, r *Reservation) error {
	err := upsertDoc(ctx, s.reservations, r.ObjectID, bson.M{
		"roomId":       r.RoomID,
		"hotelId":      r.HotelID,
		"guestAddress": r.GuestAddress,
		"startDate":    r.StartDate,
		"endDate":      r.EndDate,
		"totalCost":    r.TotalCost,
		"isActive":     r.IsActive,
	})
	if err != nil {
		return fmt.Errorf("upsert reservation %s: %w", r.ObjectID, err)
	}
	return nil
}

func (s *MongoStore) UpsertReview(ctx context.Context, r *Review) error {
	err := upsertDoc(ctx, s.reviews, r.ObjectID, bson.M{
		"hotelId":       r.HotelID,
		"reservationId": r.ReservationID,
		"guestAddress":  r.GuestAddress,
		"rating":        r.Rating,
		"comment":       r.Comment,
	})
	if err != nil {
		return fmt.Errorf("upsert review %s: %w", r.ObjectID, err)
	}
	return nil
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, sort bson.D) ([]T, error) {
	cur, err := coll.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, objectID string) (*T, error) {
	var v T
	err := coll.FindOne(ctx, bson.M{"objectId": objectID}).Decode(&v)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *MongoStore) ListHotels(ctx context.Context, owner string) ([]Hotel, error) {
	filter := bson.M{}
	if owner != "" {
		filter["owner"] = owner
	}
	hotels, err := findAll[Hotel](ctx, s.hotels, filter, bson.D{{Key: "_id", Value: -1}})
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	return hotels, nil
}

func (s *MongoStore) GetHotel(ctx context.Context, objectID string) (*Hotel, error) {
	h, err := findOne[Hotel](ctx, s.hotels, objectID)
	if err != nil {
		return nil, fmt.Errorf("get hotel %s: %w", objectID, err)
	}
	return h, nil
}

func (s *MongoStore) ListRoomsByHotel(ctx context.Context, hotelID string) ([]Room, error) {
	rooms, err := findAll[Room](ctx, s.rooms, bson.M{"hotelId": hotelID}, bson.D{{Key: "_id", Value: 1}})
	if err != nil {
		return nil, fmt.Errorf("list rooms of %s: %w", hotelID, err)
	}
	return rooms, nil
}

func (s *MongoStore) GetRoom(ctx context.Context, objectID string) (*Room, error) {
	r, err := findOne[Room](ctx, s.rooms, objectID)
	if err != nil {
		return nil, fmt.Errorf("get room %s: %w", objectID, err)
	}
	return r, nil
}

func (s *MongoStore) ListReviewsByHotel(ctx context.Context, hotelID string) ([]Review, error) {
	reviews, err := findAll[Review](ctx, s.reviews, bson.M{"hotelId": hotelID}, bson.D{{Key: "createdAt", Value: -1}})
	if err != nil {
		return nil, fmt.Errorf("list reviews of %s: %w", hotelID, err)
	}
	return reviews, nil
}

func (s *MongoStore) ListReservationsByGuest(ctx context.Context, guest string) ([]Reservation, error) {
	reservations, err := findAll[Reservation](ctx, s.reservations, bson.M{"guestAddress": guest}, bson.D{{Key: "startDate", Value: -1}})
	if err != nil {
		return nil, fmt.Errorf("list reservations of %s: %w", guest, err)
	}
	return reservations, nil
}

func (s *MongoStore) GetReservation(ctx context.Context, objectID string) (*Reservation, error) {
	r, err := findOne[Reservation](ctx, s.reservations, objectID)
	if err != nil {
		return nil, fmt.Errorf("get reservation %s: %w", objectID, err)
	}
	return r, nil
}

func (s *MongoStore) SetHotelImage(ctx context.Context, objectID, imageURL string) error {
	res, err := s.hotels.UpdateOne(ctx,
		bson.M{"objectId": objectID},
		bson.M{"$set": bson.M{"imageUrl": imageURL, "updatedAt": time.Now().UTC().Truncate(time.Millisecond)}},
	)
	if err != nil {
		return fmt.Errorf("set hotel image %s: %w", objectID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("set hotel image %s: %w", objectID, ErrNotFound)
	}
	return nil
}

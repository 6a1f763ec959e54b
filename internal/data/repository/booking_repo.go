package repository

import (
	"context"
	"fmt"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Insert(ctx context.Context, booking *entity.Booking) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Booking, error)
	FindByTourist(ctx context.Context, email string) ([]*entity.Booking, error)
	FindByGuide(ctx context.Context, guideID, status string, skip, limit int) ([]*entity.Booking, error)
	CountByGuide(ctx context.Context, guideID, status string) (int64, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) (*UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	SumPrices(ctx context.Context) (float64, error)
}

type bookingRepository struct {
	col *mongo.Collection
	log *zap.Logger
}

func NewBookingRepository(db *database.Mongo, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		col: db.Collection("bookings"),
		log: log.With(zap.String("repository", "booking")),
	}
}

func guideFilter(guideID, status string) bson.M {
	filter := bson.M{"guideId": guideID}
	if status != "" {
		filter["status"] = status
	}
	return filter
}

func (r *bookingRepository) Insert(ctx context.Context, booking *entity.Booking) (primitive.ObjectID, error) {
	result, err := r.col.InsertOne(ctx, booking)
	if err != nil {
		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.String("tourist_email", booking.TouristEmail),
		)
		return primitive.NilObjectID, fmt.Errorf("insert booking: %w", err)
	}

	id, _ := result.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Booking, error) {
	var booking entity.Booking
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.Hex()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.Hex(), err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindByTourist(ctx context.Context, email string) ([]*entity.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "bookingAt", Value: -1}})

	cursor, err := r.col.Find(ctx, bson.M{"touristEmail": email}, opts)
	if err != nil {
		r.log.Error("Failed to find bookings by tourist",
			zap.Error(err),
			zap.String("tourist_email", email),
		)
		return nil, fmt.Errorf("find bookings by tourist %s: %w", email, err)
	}
	defer cursor.Close(ctx)

	var bookings []*entity.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) FindByGuide(ctx context.Context, guideID, status string, skip, limit int) ([]*entity.Booking, error) {
	opts := options.Find().
		SetSkip(int64(skip)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "bookingAt", Value: -1}})

	cursor, err := r.col.Find(ctx, guideFilter(guideID, status), opts)
	if err != nil {
		r.log.Error("Failed to find bookings by guide",
			zap.Error(err),
			zap.String("guide_id", guideID),
		)
		return nil, fmt.Errorf("find bookings by guide %s: %w", guideID, err)
	}
	defer cursor.Close(ctx)

	var bookings []*entity.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) CountByGuide(ctx context.Context, guideID, status string) (int64, error) {
	total, err := r.col.CountDocuments(ctx, guideFilter(guideID, status))
	if err != nil {
		r.log.Error("Failed to count bookings by guide",
			zap.Error(err),
			zap.String("guide_id", guideID),
		)
		return 0, fmt.Errorf("count bookings by guide %s: %w", guideID, err)
	}
	return total, nil
}

// SetStatus writes the status as-is (callers lower-case it) and stamps
// acceptedAt/rejectedAt on the matching terminal transitions. A
// Modified of 0 means the document already carried that status.
func (r *bookingRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (*UpdateResult, error) {
	fields := bson.M{"status": status}
	switch status {
	case entity.BookingAccepted:
		fields["acceptedAt"] = time.Now().UTC()
	case entity.BookingRejected:
		fields["rejectedAt"] = time.Now().UTC()
	}

	result, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
	)
	if err != nil {
		r.log.Error("Failed to set booking status",
			zap.Error(err),
			zap.String("booking_id", id.Hex()),
			zap.String("status", status),
		)
		return nil, fmt.Errorf("set booking status %s: %w", id.Hex(), err)
	}

	return &UpdateResult{Matched: result.MatchedCount, Modified: result.ModifiedCount}, nil
}

func (r *bookingRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.Hex()),
		)
		return 0, fmt.Errorf("delete booking %s: %w", id.Hex(), err)
	}

	return result.DeletedCount, nil
}

func (r *bookingRepository) SumPrices(ctx context.Context) (float64, error) {
	return sumField(ctx, r.col, "$price", r.log)
}

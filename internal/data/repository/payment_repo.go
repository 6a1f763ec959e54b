package repository

import (
	"context"
	"fmt"

	"tour-booking/internal/data/entity"
	"tour-booking/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type PaymentRepository interface {
	Insert(ctx context.Context, payment *entity.Payment) (primitive.ObjectID, error)
	SumAmounts(ctx context.Context) (float64, error)
}

type paymentRepository struct {
	col *mongo.Collection
	log *zap.Logger
}

func NewPaymentRepository(db *database.Mongo, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		col: db.Collection("payments"),
		log: log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentRepository) Insert(ctx context.Context, payment *entity.Payment) (primitive.ObjectID, error) {
	result, err := r.col.InsertOne(ctx, payment)
	if err != nil {
		r.log.Error("Failed to insert payment",
			zap.Error(err),
			zap.String("booking_id", payment.BookingID),
		)
		return primitive.NilObjectID, fmt.Errorf("insert payment: %w", err)
	}

	id, _ := result.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *paymentRepository) SumAmounts(ctx context.Context) (float64, error) {
	return sumField(ctx, r.col, "$amount", r.log)
}

// sumField runs a whole-collection $group sum over one numeric field.
// An empty collection sums to zero.
func sumField(ctx context.Context, col *mongo.Collection, field string, log *zap.Logger) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": field},
		}}},
	}

	cursor, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		log.Error("Failed to sum field", zap.Error(err), zap.String("field", field))
		return 0, fmt.Errorf("sum %s: %w", field, err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("decode sum: %w", err)
	}

	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

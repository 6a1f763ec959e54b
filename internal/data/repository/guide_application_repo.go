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

type GuideApplicationRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.GuideApplication, error)
	Insert(ctx context.Context, app *entity.GuideApplication) (primitive.ObjectID, error)

	// MarkByEmail moves the application for email from one status to
	// another; Matched==0 means there was no application in the
	// expected state.
	MarkByEmail(ctx context.Context, email string, from, to entity.ApplicationStatus) (*UpdateResult, error)
}

type guideApplicationRepository struct {
	col *mongo.Collection
	log *zap.Logger
}

func NewGuideApplicationRepository(db *database.Mongo, log *zap.Logger) GuideApplicationRepository {
	return &guideApplicationRepository{
		col: db.Collection("guideApplications"),
		log: log.With(zap.String("repository", "guide_application")),
	}
}

func (r *guideApplicationRepository) FindByEmail(ctx context.Context, email string) (*entity.GuideApplication, error) {
	var app entity.GuideApplication
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&app)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find application by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find application by email %s: %w", email, err)
	}

	return &app, nil
}

func (r *guideApplicationRepository) Insert(ctx context.Context, app *entity.GuideApplication) (primitive.ObjectID, error) {
	result, err := r.col.InsertOne(ctx, app)
	if err != nil {
		r.log.Error("Failed to insert application",
			zap.Error(err),
			zap.String("email", app.Email),
		)
		return primitive.NilObjectID, fmt.Errorf("insert application %s: %w", app.Email, err)
	}

	id, _ := result.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *guideApplicationRepository) MarkByEmail(ctx context.Context, email string, from, to entity.ApplicationStatus) (*UpdateResult, error) {
	result, err := r.col.UpdateOne(ctx,
		bson.M{"email": email, "status": from},
		bson.M{"$set": bson.M{"status": to}},
	)
	if err != nil {
		r.log.Error("Failed to mark application",
			zap.Error(err),
			zap.String("email", email),
			zap.String("to", string(to)),
		)
		return nil, fmt.Errorf("mark application %s %s: %w", email, to, err)
	}

	return &UpdateResult{Matched: result.MatchedCount, Modified: result.ModifiedCount}, nil
}

package repository

import (
	"context"
	"fmt"

	"tour-booking/internal/data/entity"
	"tour-booking/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type StoryFilter struct {
	CreatedBy string
	Status    string
}

func (f StoryFilter) filter() bson.M {
	filter := bson.M{}
	if f.CreatedBy != "" {
		filter["createdBy"] = f.CreatedBy
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	return filter
}

type StoryRepository interface {
	Insert(ctx context.Context, story *entity.Story) (primitive.ObjectID, error)
	Find(ctx context.Context, f StoryFilter) ([]*entity.Story, error)
	FindPage(ctx context.Context, status string, skip, limit int) ([]*entity.Story, error)
	Count(ctx context.Context, status string) (int64, error)
	EstimatedCount(ctx context.Context) (int64, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Story, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	UpdateContent(ctx context.Context, id primitive.ObjectID, title, content string) (*UpdateResult, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status entity.StoryStatus) (*UpdateResult, error)
	PushImage(ctx context.Context, id primitive.ObjectID, imageURL string) (*UpdateResult, error)
	PullImage(ctx context.Context, id primitive.ObjectID, imageURL string) (*UpdateResult, error)
	Sample(ctx context.Context, f StoryFilter, size int) ([]*entity.Story, error)
}

type storyRepository struct {
	col *mongo.Collection
	log *zap.Logger
}

func NewStoryRepository(db *database.Mongo, log *zap.Logger) StoryRepository {
	return &storyRepository{
		col: db.Collection("stories"),
		log: log.With(zap.String("repository", "story")),
	}
}

func (r *storyRepository) Insert(ctx context.Context, story *entity.Story) (primitive.ObjectID, error) {
	result, err := r.col.InsertOne(ctx, story)
	if err != nil {
		r.log.Error("Failed to insert story",
			zap.Error(err),
			zap.String("created_by", story.CreatedBy),
		)
		return primitive.NilObjectID, fmt.Errorf("insert story: %w", err)
	}

	id, _ := result.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *storyRepository) Find(ctx context.Context, f StoryFilter) ([]*entity.Story, error) {
	cursor, err := r.col.Find(ctx, f.filter())
	if err != nil {
		r.log.Error("Failed to find stories",
			zap.Error(err),
			zap.String("created_by", f.CreatedBy),
			zap.String("status", f.Status),
		)
		return nil, fmt.Errorf("find stories: %w", err)
	}
	defer cursor.Close(ctx)

	var stories []*entity.Story
	if err := cursor.All(ctx, &stories); err != nil {
		return nil, fmt.Errorf("decode stories: %w", err)
	}

	return stories, nil
}

func (r *storyRepository) FindPage(ctx context.Context, status string, skip, limit int) ([]*entity.Story, error) {
	opts := options.Find().
		SetSkip(int64(skip)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.col.Find(ctx, StoryFilter{Status: status}.filter(), opts)
	if err != nil {
		r.log.Error("Failed to find story page",
			zap.Error(err),
			zap.String("status", status),
		)
		return nil, fmt.Errorf("find story page: %w", err)
	}
	defer cursor.Close(ctx)

	var stories []*entity.Story
	if err := cursor.All(ctx, &stories); err != nil {
		return nil, fmt.Errorf("decode stories: %w", err)
	}

	return stories, nil
}

func (r *storyRepository) Count(ctx context.Context, status string) (int64, error) {
	total, err := r.col.CountDocuments(ctx, StoryFilter{Status: status}.filter())
	if err != nil {
		r.log.Error("Failed to count stories", zap.Error(err))
		return 0, fmt.Errorf("count stories: %w", err)
	}
	return total, nil
}

func (r *storyRepository) EstimatedCount(ctx context.Context) (int64, error) {
	total, err := r.col.EstimatedDocumentCount(ctx)
	if err != nil {
		r.log.Error("Failed to estimate story count", zap.Error(err))
		return 0, fmt.Errorf("estimate story count: %w", err)
	}
	return total, nil
}

func (r *storyRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Story, error) {
	var story entity.Story
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&story)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find story by ID",
			zap.Error(err),
			zap.String("story_id", id.Hex()),
		)
		return nil, fmt.Errorf("find story by ID %s: %w", id.Hex(), err)
	}

	return &story, nil
}

func (r *storyRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.log.Error("Failed to delete story",
			zap.Error(err),
			zap.String("story_id", id.Hex()),
		)
		return 0, fmt.Errorf("delete story %s: %w", id.Hex(), err)
	}

	return result.DeletedCount, nil
}

func (r *storyRepository) UpdateContent(ctx context.Context, id primitive.ObjectID, title, content string) (*UpdateResult, error) {
	result, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"title": title, "content": content}},
	)
	if err != nil {
		r.log.Error("Failed to update story",
			zap.Error(err),
			zap.String("story_id", id.Hex()),
		)
		return nil, fmt.Errorf("update story %s: %w", id.Hex(), err)
	}

	return &UpdateResult{Matched: result.MatchedCount, Modified: result.ModifiedCount}, nil
}

func (r *storyRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status entity.StoryStatus) (*UpdateResult, error) {
	result, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		r.log.Error("Failed to set story status",
			zap.Error(err),
			zap.String("story_id", id.Hex()),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("set story status %s: %w", id.Hex(), err)
	}

	return &UpdateResult{Matched: result.MatchedCount, Modified: result.ModifiedCount}, nil
}

func (r *storyRepository) PushImage(ctx context.Context, id primitive.ObjectID, imageURL string) (*UpdateResult, error) {
	result, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$push": bson.M{"images": imageURL}},
	)
	if err != nil {
		r.log.Error("Failed to push story image",
			zap.Error(err),
			zap.String("story_id", id.Hex()),
		)
		return nil, fmt.Errorf("push story image %s: %w", id.Hex(), err)
	}

	return &UpdateResult{Matched: result.MatchedCount, Modified: result.ModifiedCount}, nil
}

func (r *storyRepository) PullImage(ctx context.Context, id primitive.ObjectID, imageURL string) (*UpdateResult, error) {
	result, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$pull": bson.M{"images": imageURL}},
	)
	if err != nil {
		r.log.Error("Failed to pull story image",
			zap.Error(err),
			zap.String("story_id", id.Hex()),
		)
		return nil, fmt.Errorf("pull story image %s: %w", id.Hex(), err)
	}

	return &UpdateResult{Matched: result.MatchedCount, Modified: result.ModifiedCount}, nil
}

func (r *storyRepository) Sample(ctx context.Context, f StoryFilter, size int) ([]*entity.Story, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: f.filter()}},
		{{Key: "$sample", Value: bson.M{"size": size}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		r.log.Error("Failed to sample stories",
			zap.Error(err),
			zap.Int("size", size),
		)
		return nil, fmt.Errorf("sample stories: %w", err)
	}
	defer cursor.Close(ctx)

	var stories []*entity.Story
	if err := cursor.All(ctx, &stories); err != nil {
		return nil, fmt.Errorf("decode stories: %w", err)
	}

	return stories, nil
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type StoryService interface {
	Create(ctx context.Context, req *request.CreateStoryRequest) (*response.InsertResponse, error)

	// List filters by author and/or status; sampleSize > 0 switches
	// to a random sample of the filtered set.
	List(ctx context.Context, f repository.StoryFilter, sampleSize int) ([]*entity.Story, error)
	ListAll(ctx context.Context, status string, page, limit int) (*response.PaginatedResponse[*entity.Story], error)
	GetByID(ctx context.Context, id string) (*entity.Story, error)
	Delete(ctx context.Context, id string) (*response.DeleteResponse, error)
	Update(ctx context.Context, id string, req *request.UpdateStoryRequest) (*response.UpdateResponse, error)
	SetStatus(ctx context.Context, id string, status entity.StoryStatus) (*response.UpdateResponse, error)
	AddImage(ctx context.Context, id, imageURL string) (*response.UpdateResponse, error)
	RemoveImage(ctx context.Context, id, imageURL string) (*response.UpdateResponse, error)
}

type storyService struct {
	stories repository.StoryRepository
	log     *zap.Logger
}

func NewStoryService(stories repository.StoryRepository, log *zap.Logger) StoryService {
	return &storyService{
		stories: stories,
		log:     log.With(zap.String("service", "story")),
	}
}

func (s *storyService) Create(ctx context.Context, req *request.CreateStoryRequest) (*response.InsertResponse, error) {
	story := &entity.Story{
		Title:     req.Title,
		Content:   req.Content,
		Images:    req.Images,
		Status:    entity.StoryPending,
		CreatedBy: req.CreatedBy,
		CreatedAt: time.Now().UTC(),
	}

	id, err := s.stories.Insert(ctx, story)
	if err != nil {
		return nil, fmt.Errorf("create story: %w", err)
	}

	s.log.Info("Story created",
		zap.String("story_id", id.Hex()),
		zap.String("created_by", req.CreatedBy),
	)

	return &response.InsertResponse{InsertedID: id.Hex()}, nil
}

func (s *storyService) List(ctx context.Context, f repository.StoryFilter, sampleSize int) ([]*entity.Story, error) {
	if sampleSize > 0 {
		return s.stories.Sample(ctx, f, sampleSize)
	}

	stories, err := s.stories.Find(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}
	if len(stories) == 0 {
		return nil, fmt.Errorf("stories not found")
	}
	return stories, nil
}

func (s *storyService) ListAll(ctx context.Context, status string, page, limit int) (*response.PaginatedResponse[*entity.Story], error) {
	skip := utils.CalculateOffset(page, limit)

	stories, err := s.stories.FindPage(ctx, status, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}

	total, err := s.stories.Count(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("count stories: %w", err)
	}

	return response.NewPaginatedResponse(stories, total, limit), nil
}

func (s *storyService) GetByID(ctx context.Context, id string) (*entity.Story, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid story ID %s", id)
	}

	story, err := s.stories.FindByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("get story: %w", err)
	}
	if story == nil {
		return nil, fmt.Errorf("story %s not found", id)
	}
	return story, nil
}

func (s *storyService) Delete(ctx context.Context, id string) (*response.DeleteResponse, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid story ID %s", id)
	}

	deleted, err := s.stories.Delete(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("delete story: %w", err)
	}
	if deleted == 0 {
		return nil, fmt.Errorf("story %s not found", id)
	}

	s.log.Info("Story deleted", zap.String("story_id", id))

	return &response.DeleteResponse{DeletedCount: deleted}, nil
}

func (s *storyService) Update(ctx context.Context, id string, req *request.UpdateStoryRequest) (*response.UpdateResponse, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid story ID %s", id)
	}

	result, err := s.stories.UpdateContent(ctx, oid, req.Title, req.Content)
	if err != nil {
		return nil, fmt.Errorf("update story: %w", err)
	}
	if result.Matched == 0 {
		return nil, fmt.Errorf("story %s not found", id)
	}

	return &response.UpdateResponse{ModifiedCount: result.Modified}, nil
}

func (s *storyService) SetStatus(ctx context.Context, id string, status entity.StoryStatus) (*response.UpdateResponse, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid story ID %s", id)
	}

	result, err := s.stories.SetStatus(ctx, oid, status)
	if err != nil {
		return nil, fmt.Errorf("set story status: %w", err)
	}
	if result.Matched == 0 {
		return nil, fmt.Errorf("story %s not found", id)
	}

	s.log.Info("Story moderated",
		zap.String("story_id", id),
		zap.String("status", string(status)),
	)

	return &response.UpdateResponse{ModifiedCount: result.Modified}, nil
}

func (s *storyService) AddImage(ctx context.Context, id, imageURL string) (*response.UpdateResponse, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid story ID %s", id)
	}

	result, err := s.stories.PushImage(ctx, oid, imageURL)
	if err != nil {
		return nil, fmt.Errorf("add story image: %w", err)
	}
	if result.Matched == 0 {
		return nil, fmt.Errorf("story %s not found", id)
	}

	return &response.UpdateResponse{ModifiedCount: result.Modified}, nil
}

func (s *storyService) RemoveImage(ctx context.Context, id, imageURL string) (*response.UpdateResponse, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid story ID %s", id)
	}

	result, err := s.stories.PullImage(ctx, oid, imageURL)
	if err != nil {
		return nil, fmt.Errorf("remove story image: %w", err)
	}
	if result.Matched == 0 {
		return nil, fmt.Errorf("story %s not found", id)
	}

	return &response.UpdateResponse{ModifiedCount: result.Modified}, nil
}

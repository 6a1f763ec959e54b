package usecase

import (
	"context"
	"strings"
	"testing"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeStoryRepo struct {
	insert    func(story *entity.Story) (primitive.ObjectID, error)
	find      func(f repository.StoryFilter) ([]*entity.Story, error)
	sample    func(f repository.StoryFilter, size int) ([]*entity.Story, error)
	setStatus func(id primitive.ObjectID, status entity.StoryStatus) (*repository.UpdateResult, error)
}

func (f *fakeStoryRepo) Insert(_ context.Context, story *entity.Story) (primitive.ObjectID, error) {
	if f.insert != nil {
		return f.insert(story)
	}
	return primitive.NewObjectID(), nil
}

func (f *fakeStoryRepo) Find(_ context.Context, filter repository.StoryFilter) ([]*entity.Story, error) {
	if f.find != nil {
		return f.find(filter)
	}
	return nil, nil
}

func (f *fakeStoryRepo) FindPage(context.Context, string, int, int) ([]*entity.Story, error) {
	return nil, nil
}

func (f *fakeStoryRepo) Count(context.Context, string) (int64, error) { return 0, nil }

func (f *fakeStoryRepo) EstimatedCount(context.Context) (int64, error) { return 0, nil }

func (f *fakeStoryRepo) FindByID(context.Context, primitive.ObjectID) (*entity.Story, error) {
	return nil, nil
}

func (f *fakeStoryRepo) Delete(context.Context, primitive.ObjectID) (int64, error) { return 0, nil }

func (f *fakeStoryRepo) UpdateContent(context.Context, primitive.ObjectID, string, string) (*repository.UpdateResult, error) {
	return &repository.UpdateResult{Matched: 1, Modified: 1}, nil
}

func (f *fakeStoryRepo) SetStatus(_ context.Context, id primitive.ObjectID, status entity.StoryStatus) (*repository.UpdateResult, error) {
	if f.setStatus != nil {
		return f.setStatus(id, status)
	}
	return &repository.UpdateResult{Matched: 1, Modified: 1}, nil
}

func (f *fakeStoryRepo) PushImage(context.Context, primitive.ObjectID, string) (*repository.UpdateResult, error) {
	return &repository.UpdateResult{Matched: 1, Modified: 1}, nil
}

func (f *fakeStoryRepo) PullImage(context.Context, primitive.ObjectID, string) (*repository.UpdateResult, error) {
	return &repository.UpdateResult{Matched: 1, Modified: 1}, nil
}

func (f *fakeStoryRepo) Sample(_ context.Context, filter repository.StoryFilter, size int) ([]*entity.Story, error) {
	if f.sample != nil {
		return f.sample(filter, size)
	}
	return nil, nil
}

func TestCreateStoryStartsPending(t *testing.T) {
	var got *entity.Story
	stories := &fakeStoryRepo{
		insert: func(story *entity.Story) (primitive.ObjectID, error) {
			got = story
			return primitive.NewObjectID(), nil
		},
	}

	svc := NewStoryService(stories, zap.NewNop())
	_, err := svc.Create(context.Background(), &request.CreateStoryRequest{
		Title:     "Lost in the hills",
		Content:   "We took the wrong trail and found a tea garden.",
		CreatedBy: "dana@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != entity.StoryPending {
		t.Errorf("new story status = %q, want pending", got.Status)
	}
}

func TestListStoriesSampleBranch(t *testing.T) {
	var sampled struct {
		filter repository.StoryFilter
		size   int
	}
	stories := &fakeStoryRepo{
		find: func(repository.StoryFilter) ([]*entity.Story, error) {
			t.Fatal("sampleSize > 0 must not run a plain find")
			return nil, nil
		},
		sample: func(filter repository.StoryFilter, size int) ([]*entity.Story, error) {
			sampled.filter, sampled.size = filter, size
			return []*entity.Story{{Title: "a"}}, nil
		},
	}

	svc := NewStoryService(stories, zap.NewNop())
	f := repository.StoryFilter{Status: "approved"}
	result, err := svc.List(context.Background(), f, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sampled.size != 3 || sampled.filter.Status != "approved" {
		t.Errorf("sample called with %+v size %d, want approved filter size 3", sampled.filter, sampled.size)
	}
	if len(result) != 1 {
		t.Errorf("got %d stories, want 1", len(result))
	}
}

func TestListStoriesEmptyIsNotFound(t *testing.T) {
	stories := &fakeStoryRepo{
		find: func(repository.StoryFilter) ([]*entity.Story, error) {
			return []*entity.Story{}, nil
		},
	}

	svc := NewStoryService(stories, zap.NewNop())
	_, err := svc.List(context.Background(), repository.StoryFilter{}, 0)
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestSetStatusMissingStoryIsNotFound(t *testing.T) {
	stories := &fakeStoryRepo{
		setStatus: func(primitive.ObjectID, entity.StoryStatus) (*repository.UpdateResult, error) {
			return &repository.UpdateResult{Matched: 0, Modified: 0}, nil
		},
	}

	svc := NewStoryService(stories, zap.NewNop())
	_, err := svc.SetStatus(context.Background(), primitive.NewObjectID().Hex(), entity.StoryApproved)
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not found error, got %v", err)
	}
}

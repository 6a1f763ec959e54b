package usecase

import (
	"context"
	"fmt"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"

	"go.uber.org/zap"
)

type GuideApplicationService interface {
	Apply(ctx context.Context, req *request.CreateApplicationRequest) (*response.InsertResponse, error)
	GetByEmail(ctx context.Context, email string) (*entity.GuideApplication, error)
}

type guideApplicationService struct {
	applications repository.GuideApplicationRepository
	log          *zap.Logger
}

func NewGuideApplicationService(applications repository.GuideApplicationRepository, log *zap.Logger) GuideApplicationService {
	return &guideApplicationService{
		applications: applications,
		log:          log.With(zap.String("service", "guide_application")),
	}
}

// Apply inserts a pending application unless one already exists for
// the email. The existence check and the insert are separate
// round-trips; nothing stops two concurrent applies from both passing
// the check.
func (s *guideApplicationService) Apply(ctx context.Context, req *request.CreateApplicationRequest) (*response.InsertResponse, error) {
	existing, err := s.applications.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("apply as guide: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("email %s has already applied as a tour guide", req.Email)
	}

	app := &entity.GuideApplication{
		Name:      req.Name,
		Email:     req.Email,
		Title:     req.Title,
		Reason:    req.Reason,
		CVLink:    req.CVLink,
		Status:    entity.ApplicationPending,
		AppliedAt: time.Now().UTC(),
	}

	id, err := s.applications.Insert(ctx, app)
	if err != nil {
		return nil, fmt.Errorf("apply as guide: %w", err)
	}

	s.log.Info("Guide application received",
		zap.String("application_id", id.Hex()),
		zap.String("email", req.Email),
	)

	return &response.InsertResponse{InsertedID: id.Hex()}, nil
}

func (s *guideApplicationService) GetByEmail(ctx context.Context, email string) (*entity.GuideApplication, error) {
	app, err := s.applications.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}
	if app == nil {
		return nil, fmt.Errorf("application for %s not found", email)
	}
	return app, nil
}

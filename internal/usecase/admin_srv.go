package usecase

import (
	"context"
	"fmt"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/response"

	"go.uber.org/zap"
)

type AdminService interface {
	Stats(ctx context.Context) (*response.AdminStatsResponse, error)
}

type adminService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAdminService(repo *repository.Repository, log *zap.Logger) AdminService {
	return &adminService{
		repo: repo,
		log:  log.With(zap.String("service", "admin")),
	}
}

// Stats gathers dashboard totals. Package and story counts are
// estimates; the money sums run full $group aggregations.
func (s *adminService) Stats(ctx context.Context) (*response.AdminStatsResponse, error) {
	totalPayment, err := s.repo.Payment.SumAmounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin stats: %w", err)
	}

	totalBookingPrice, err := s.repo.Booking.SumPrices(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin stats: %w", err)
	}

	totalGuides, err := s.repo.User.CountByRole(ctx, entity.RoleGuide)
	if err != nil {
		return nil, fmt.Errorf("admin stats: %w", err)
	}

	totalTourist, err := s.repo.User.CountByRole(ctx, entity.RoleTourist)
	if err != nil {
		return nil, fmt.Errorf("admin stats: %w", err)
	}

	totalPackages, err := s.repo.Package.EstimatedCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin stats: %w", err)
	}

	totalStories, err := s.repo.Story.EstimatedCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin stats: %w", err)
	}

	return &response.AdminStatsResponse{
		TotalPayment:      totalPayment,
		TotalBookingPrice: totalBookingPrice,
		TotalGuides:       totalGuides,
		TotalTourist:      totalTourist,
		TotalPackages:     totalPackages,
		TotalStories:      totalStories,
	}, nil
}

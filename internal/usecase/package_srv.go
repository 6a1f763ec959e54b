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

// randomPackageCount is how many packages the homepage teaser pulls.
const randomPackageCount = 4

type PackageService interface {
	Create(ctx context.Context, req *request.CreatePackageRequest) (*response.InsertResponse, error)
	List(ctx context.Context, req *request.PackageListRequest) (*response.PaginatedResponse[*entity.Package], error)
	Categories(ctx context.Context) ([]string, error)
	GetByID(ctx context.Context, id string) (*entity.Package, error)
	Random(ctx context.Context) ([]*entity.Package, error)
}

type packageService struct {
	packages repository.PackageRepository
	log      *zap.Logger
}

func NewPackageService(packages repository.PackageRepository, log *zap.Logger) PackageService {
	return &packageService{
		packages: packages,
		log:      log.With(zap.String("service", "package")),
	}
}

func (s *packageService) Create(ctx context.Context, req *request.CreatePackageRequest) (*response.InsertResponse, error) {
	pkg := &entity.Package{
		TripTitle:   req.TripTitle,
		TourType:    req.TourType,
		Price:       req.Price,
		Description: req.Description,
		Images:      req.Images,
		CreatedAt:   time.Now().UTC(),
	}

	id, err := s.packages.Insert(ctx, pkg)
	if err != nil {
		return nil, fmt.Errorf("create package: %w", err)
	}

	s.log.Info("Package created",
		zap.String("package_id", id.Hex()),
		zap.String("trip_title", req.TripTitle),
	)

	return &response.InsertResponse{InsertedID: id.Hex()}, nil
}

func (s *packageService) List(ctx context.Context, req *request.PackageListRequest) (*response.PaginatedResponse[*entity.Package], error) {
	q := repository.PackageQuery{
		Search:   req.Search,
		Category: req.Category,
		Sort:     req.Sort,
	}
	skip := utils.CalculateOffset(req.Page, req.Limit)

	packages, err := s.packages.Find(ctx, q, skip, req.Limit)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}

	total, err := s.packages.Count(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("count packages: %w", err)
	}

	return response.NewPaginatedResponse(packages, total, req.Limit), nil
}

func (s *packageService) Categories(ctx context.Context) ([]string, error) {
	return s.packages.Categories(ctx)
}

func (s *packageService) GetByID(ctx context.Context, id string) (*entity.Package, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid package ID %s", id)
	}

	pkg, err := s.packages.FindByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("get package: %w", err)
	}
	if pkg == nil {
		return nil, fmt.Errorf("package %s not found", id)
	}
	return pkg, nil
}

func (s *packageService) Random(ctx context.Context) ([]*entity.Package, error) {
	return s.packages.Sample(ctx, randomPackageCount)
}

package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type BookingService interface {
	Create(ctx context.Context, req *request.CreateBookingRequest) (*response.InsertResponse, error)
	ListByTourist(ctx context.Context, email string) ([]*entity.Booking, error)
	ListByGuide(ctx context.Context, guideID, status string, page, limit int) (*response.PaginatedResponse[*entity.Booking], error)
	GetByID(ctx context.Context, id string) (*entity.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) (*response.BookingStatusResponse, error)
	Delete(ctx context.Context, id string) error
}

type bookingService struct {
	bookings repository.BookingRepository
	log      *zap.Logger
}

func NewBookingService(bookings repository.BookingRepository, log *zap.Logger) BookingService {
	return &bookingService{
		bookings: bookings,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) Create(ctx context.Context, req *request.CreateBookingRequest) (*response.InsertResponse, error) {
	booking := &entity.Booking{
		PackageID:    req.PackageID,
		PackageName:  req.PackageName,
		TouristEmail: req.TouristEmail,
		TouristName:  req.TouristName,
		GuideID:      req.GuideID,
		Price:        req.Price,
		Status:       entity.BookingPending,
		BookingAt:    time.Now().UTC(),
	}

	id, err := s.bookings.Insert(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", id.Hex()),
		zap.String("tourist_email", req.TouristEmail),
		zap.String("guide_id", req.GuideID),
		zap.Float64("price", req.Price),
	)

	return &response.InsertResponse{InsertedID: id.Hex()}, nil
}

func (s *bookingService) ListByTourist(ctx context.Context, email string) ([]*entity.Booking, error) {
	return s.bookings.FindByTourist(ctx, email)
}

func (s *bookingService) ListByGuide(ctx context.Context, guideID, status string, page, limit int) (*response.PaginatedResponse[*entity.Booking], error) {
	status = strings.ToLower(status)
	skip := utils.CalculateOffset(page, limit)

	bookings, err := s.bookings.FindByGuide(ctx, guideID, status, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list guide bookings: %w", err)
	}

	total, err := s.bookings.CountByGuide(ctx, guideID, status)
	if err != nil {
		return nil, fmt.Errorf("count guide bookings: %w", err)
	}

	return response.NewPaginatedResponse(bookings, total, limit), nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*entity.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID %s", id)
	}

	booking, err := s.bookings.FindByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", id)
	}
	return booking, nil
}

// UpdateStatus lower-cases and writes whatever status string the
// caller sends; the set is open on purpose. Updated is false when the
// document already held that status.
func (s *bookingService) UpdateStatus(ctx context.Context, id, status string) (*response.BookingStatusResponse, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID %s", id)
	}

	result, err := s.bookings.SetStatus(ctx, oid, strings.ToLower(status))
	if err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", id),
		zap.String("status", strings.ToLower(status)),
		zap.Int64("modified", result.Modified),
	)

	return &response.BookingStatusResponse{Updated: result.Modified > 0}, nil
}

func (s *bookingService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid booking ID %s", id)
	}

	deleted, err := s.bookings.Delete(ctx, oid)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	if deleted == 0 {
		return fmt.Errorf("booking %s not found or already deleted", id)
	}

	s.log.Info("Booking deleted", zap.String("booking_id", id))

	return nil
}

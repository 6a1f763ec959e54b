package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// IntentCreator is the payment-provider collaborator: it authorizes a
// charge for an amount in minor units and returns the client secret.
type IntentCreator interface {
	CreateIntent(amount int64, bookingID string) (string, error)
}

type PaymentService interface {
	CreateIntent(ctx context.Context, req *request.CreateIntentRequest) (*response.IntentResponse, error)
	Record(ctx context.Context, req *request.CreatePaymentRequest) (*response.InsertResponse, error)
}

type paymentService struct {
	repo    *repository.Repository
	intents IntentCreator
	log     *zap.Logger
}

func NewPaymentService(repo *repository.Repository, intents IntentCreator, log *zap.Logger) PaymentService {
	return &paymentService{
		repo:    repo,
		intents: intents,
		log:     log.With(zap.String("service", "payment")),
	}
}

// CreateIntent guards the charge behind the booking's status: a
// booking that is in review or accepted (any casing) must not be
// charged again. The guard is advisory only — creating the intent does
// not move the booking out of its current status; the client drives
// the follow-up transition.
func (s *paymentService) CreateIntent(ctx context.Context, req *request.CreateIntentRequest) (*response.IntentResponse, error) {
	oid, err := primitive.ObjectIDFromHex(req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID %s", req.BookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("create intent: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", req.BookingID)
	}

	if booking.PaymentLocked() {
		return nil, fmt.Errorf("booking %s already paid or in progress", req.BookingID)
	}

	amount := int64(math.Round(booking.Price * 100)) // minor units

	clientSecret, err := s.intents.CreateIntent(amount, req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("create intent: %w", err)
	}

	s.log.Info("Payment intent created",
		zap.String("booking_id", req.BookingID),
		zap.Int64("amount", amount),
	)

	return &response.IntentResponse{ClientSecret: clientSecret}, nil
}

func (s *paymentService) Record(ctx context.Context, req *request.CreatePaymentRequest) (*response.InsertResponse, error) {
	payment := &entity.Payment{
		BookingID:     req.BookingID,
		Email:         req.Email,
		Amount:        req.Amount,
		TransactionID: req.TransactionID,
		PaidAt:        time.Now().UTC(),
	}

	id, err := s.repo.Payment.Insert(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	s.log.Info("Payment recorded",
		zap.String("payment_id", id.Hex()),
		zap.String("booking_id", req.BookingID),
		zap.Float64("amount", req.Amount),
	)

	return &response.InsertResponse{InsertedID: id.Hex()}, nil
}

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

type fakeBookingRepo struct {
	insert    func(booking *entity.Booking) (primitive.ObjectID, error)
	findByID  func(id primitive.ObjectID) (*entity.Booking, error)
	setStatus func(id primitive.ObjectID, status string) (*repository.UpdateResult, error)
	delete    func(id primitive.ObjectID) (int64, error)
}

func (f *fakeBookingRepo) Insert(_ context.Context, booking *entity.Booking) (primitive.ObjectID, error) {
	if f.insert != nil {
		return f.insert(booking)
	}
	return primitive.NewObjectID(), nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id primitive.ObjectID) (*entity.Booking, error) {
	if f.findByID != nil {
		return f.findByID(id)
	}
	return nil, nil
}

func (f *fakeBookingRepo) FindByTourist(context.Context, string) ([]*entity.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) FindByGuide(context.Context, string, string, int, int) ([]*entity.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) CountByGuide(context.Context, string, string) (int64, error) {
	return 0, nil
}

func (f *fakeBookingRepo) SetStatus(_ context.Context, id primitive.ObjectID, status string) (*repository.UpdateResult, error) {
	if f.setStatus != nil {
		return f.setStatus(id, status)
	}
	return &repository.UpdateResult{Matched: 1, Modified: 1}, nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	if f.delete != nil {
		return f.delete(id)
	}
	return 1, nil
}

func (f *fakeBookingRepo) SumPrices(context.Context) (float64, error) { return 0, nil }

type fakePaymentRepo struct {
	insert func(payment *entity.Payment) (primitive.ObjectID, error)
}

func (f *fakePaymentRepo) Insert(_ context.Context, payment *entity.Payment) (primitive.ObjectID, error) {
	if f.insert != nil {
		return f.insert(payment)
	}
	return primitive.NewObjectID(), nil
}

func (f *fakePaymentRepo) SumAmounts(context.Context) (float64, error) { return 0, nil }

type fakeIntentCreator struct {
	calls  int
	amount int64
	secret string
	err    error
}

func (f *fakeIntentCreator) CreateIntent(amount int64, bookingID string) (string, error) {
	f.calls++
	f.amount = amount
	if f.err != nil {
		return "", f.err
	}
	return f.secret, nil
}

func newPaymentService(bookings *fakeBookingRepo, payments *fakePaymentRepo, intents IntentCreator) PaymentService {
	repo := &repository.Repository{
		Booking: bookings,
		Payment: payments,
	}
	return NewPaymentService(repo, intents, zap.NewNop())
}

func TestCreateIntentChargesPriceInMinorUnits(t *testing.T) {
	// 19.99*100 is 1998.9999... in binary; the amount must round, not
	// truncate.
	tests := []struct {
		price float64
		want  int64
	}{
		{149.99, 14999},
		{19.99, 1999},
		{250, 25000},
		{0.1, 10},
	}

	for _, tt := range tests {
		id := primitive.NewObjectID()
		bookings := &fakeBookingRepo{
			findByID: func(primitive.ObjectID) (*entity.Booking, error) {
				return &entity.Booking{ID: id, Price: tt.price, Status: entity.BookingPending}, nil
			},
			setStatus: func(primitive.ObjectID, string) (*repository.UpdateResult, error) {
				t.Fatal("creating an intent must not change booking status")
				return nil, nil
			},
		}
		intents := &fakeIntentCreator{secret: "pi_secret_123"}

		svc := newPaymentService(bookings, &fakePaymentRepo{}, intents)
		result, err := svc.CreateIntent(context.Background(), &request.CreateIntentRequest{BookingID: id.Hex()})
		if err != nil {
			t.Fatalf("price %v: unexpected error: %v", tt.price, err)
		}

		if result.ClientSecret != "pi_secret_123" {
			t.Errorf("price %v: client secret = %q, want pi_secret_123", tt.price, result.ClientSecret)
		}
		if intents.amount != tt.want {
			t.Errorf("price %v: charged amount = %d, want %d minor units", tt.price, intents.amount, tt.want)
		}
	}
}

func TestCreateIntentGuardsLockedBookings(t *testing.T) {
	tests := []struct {
		status string
		locked bool
	}{
		{"pending", false},
		{"rejected", false},
		{"in review", true},
		{"In Review", true},
		{"accepted", true},
		{"ACCEPTED", true},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			id := primitive.NewObjectID()
			bookings := &fakeBookingRepo{
				findByID: func(primitive.ObjectID) (*entity.Booking, error) {
					return &entity.Booking{ID: id, Price: 50, Status: tt.status}, nil
				},
			}
			intents := &fakeIntentCreator{secret: "sec"}

			svc := newPaymentService(bookings, &fakePaymentRepo{}, intents)
			_, err := svc.CreateIntent(context.Background(), &request.CreateIntentRequest{BookingID: id.Hex()})

			if tt.locked {
				if err == nil || !strings.Contains(err.Error(), "already") {
					t.Errorf("status %q: expected already-paid error, got %v", tt.status, err)
				}
				if intents.calls != 0 {
					t.Errorf("status %q: intent created despite lock", tt.status)
				}
			} else if err != nil {
				t.Errorf("status %q: unexpected error: %v", tt.status, err)
			}
		})
	}
}

func TestCreateIntentUnknownBookingIsNotFound(t *testing.T) {
	svc := newPaymentService(&fakeBookingRepo{}, &fakePaymentRepo{}, &fakeIntentCreator{})

	_, err := svc.CreateIntent(context.Background(), &request.CreateIntentRequest{
		BookingID: primitive.NewObjectID().Hex(),
	})
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestCreateIntentRejectsMalformedID(t *testing.T) {
	svc := newPaymentService(&fakeBookingRepo{}, &fakePaymentRepo{}, &fakeIntentCreator{})

	_, err := svc.CreateIntent(context.Background(), &request.CreateIntentRequest{BookingID: "nope"})
	if err == nil || !strings.Contains(err.Error(), "invalid") {
		t.Errorf("expected invalid id error, got %v", err)
	}
}

func TestRecordStampsPaidAt(t *testing.T) {
	var inserted *entity.Payment
	payments := &fakePaymentRepo{
		insert: func(payment *entity.Payment) (primitive.ObjectID, error) {
			inserted = payment
			return primitive.NewObjectID(), nil
		},
	}

	svc := newPaymentService(&fakeBookingRepo{}, payments, &fakeIntentCreator{})
	result, err := svc.Record(context.Background(), &request.CreatePaymentRequest{
		BookingID:     primitive.NewObjectID().Hex(),
		Email:         "dana@example.com",
		Amount:        149.99,
		TransactionID: "pi_123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.InsertedID == "" {
		t.Error("expected inserted id")
	}
	if inserted.PaidAt.IsZero() {
		t.Error("paidAt must be stamped")
	}
	if inserted.Amount != 149.99 {
		t.Errorf("amount = %v, want 149.99", inserted.Amount)
	}
}

package repository

import (
	"tour-booking/pkg/database"

	"go.uber.org/zap"
)

// UpdateResult mirrors the store's matched/modified counters. Workflow
// endpoints report these verbatim so partial application of a
// multi-step update stays visible to the caller.
type UpdateResult struct {
	Matched  int64 `json:"matchedCount"`
	Modified int64 `json:"modifiedCount"`
}

type Repository struct {
	User             UserRepository
	GuideApplication GuideApplicationRepository
	Package          PackageRepository
	Story            StoryRepository
	Booking          BookingRepository
	Payment          PaymentRepository
}

func NewRepository(db *database.Mongo, log *zap.Logger) *Repository {
	return &Repository{
		User:             NewUserRepository(db, log),
		GuideApplication: NewGuideApplicationRepository(db, log),
		Package:          NewPackageRepository(db, log),
		Story:            NewStoryRepository(db, log),
		Booking:          NewBookingRepository(db, log),
		Payment:          NewPaymentRepository(db, log),
	}
}

package entity

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Canonical booking statuses. Writes lower-case whatever string the
// client sends; the set is not enforced.
const (
	BookingPending  = "pending"
	BookingInReview = "in review"
	BookingAccepted = "accepted"
	BookingRejected = "rejected"
)

type Booking struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	PackageID    string             `bson:"packageId,omitempty" json:"packageId,omitempty"`
	PackageName  string             `bson:"packageName,omitempty" json:"packageName,omitempty"`
	TouristEmail string             `bson:"touristEmail" json:"touristEmail"`
	TouristName  string             `bson:"touristName,omitempty" json:"touristName,omitempty"`
	GuideID      string             `bson:"guideId" json:"guideId"`
	Price        float64            `bson:"price" json:"price"`
	Status       string             `bson:"status" json:"status"`
	BookingAt    time.Time          `bson:"bookingAt,omitempty" json:"bookingAt,omitempty"`
	AcceptedAt   *time.Time         `bson:"acceptedAt,omitempty" json:"acceptedAt,omitempty"`
	RejectedAt   *time.Time         `bson:"rejectedAt,omitempty" json:"rejectedAt,omitempty"`
}

// PaymentLocked reports whether the booking already has a charge in
// flight or accepted, in which case no new intent may be created.
// Case-insensitive because older documents carry mixed-case statuses.
func (b *Booking) PaymentLocked() bool {
	switch strings.ToLower(b.Status) {
	case BookingInReview, BookingAccepted:
		return true
	}
	return false
}

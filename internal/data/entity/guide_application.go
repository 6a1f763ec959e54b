package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// GuideApplication pairs with a User by email. One application per
// email, checked on insert rather than enforced by a unique index.
type GuideApplication struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Title     string             `bson:"title,omitempty" json:"title,omitempty"`
	Reason    string             `bson:"reason,omitempty" json:"reason,omitempty"`
	CVLink    string             `bson:"cvLink,omitempty" json:"cvLink,omitempty"`
	Status    ApplicationStatus  `bson:"status" json:"status"`
	AppliedAt time.Time          `bson:"appliedAt,omitempty" json:"appliedAt,omitempty"`
}

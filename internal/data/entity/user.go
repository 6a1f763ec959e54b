package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	RoleTourist UserRole = "tourist"
	RoleGuide   UserRole = "guide"
	RoleAdmin   UserRole = "admin"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// User is keyed by email for every lookup except the admin approval
// endpoints, which address users by _id. RequestedRole and
// RequestStatus exist together while a role request is open and are
// cleared ($unset or null) when it resolves.
type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name          string             `bson:"name,omitempty" json:"name,omitempty"`
	Email         string             `bson:"email" json:"email"`
	Image         string             `bson:"image,omitempty" json:"image,omitempty"`
	Role          UserRole           `bson:"role" json:"role"`
	AuthMethod    string             `bson:"authMethod,omitempty" json:"authMethod,omitempty"`
	RequestedRole string             `bson:"requestedRole,omitempty" json:"requestedRole,omitempty"`
	RequestStatus RequestStatus      `bson:"requestStatus,omitempty" json:"requestStatus,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	LastLoginAt   time.Time          `bson:"lastLoginAt,omitempty" json:"lastLoginAt,omitempty"`
}

func (u *User) HasPendingRequest() bool {
	return u.RequestedRole != "" && u.RequestStatus == RequestPending
}

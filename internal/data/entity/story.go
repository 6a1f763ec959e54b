package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type StoryStatus string

const (
	StoryPending  StoryStatus = "pending"
	StoryApproved StoryStatus = "approved"
	StoryRejected StoryStatus = "rejected"
)

// Story is moderated user content. Images keep insertion order, they
// are mutated with $push/$pull only.
type Story struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content" json:"content"`
	Images    []string           `bson:"images,omitempty" json:"images,omitempty"`
	Status    StoryStatus        `bson:"status" json:"status"`
	CreatedBy string             `bson:"createdBy" json:"createdBy"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Package is a catalog tour item, searchable by trip title and
// filterable by tour type.
type Package struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	TripTitle   string             `bson:"tripTitle" json:"tripTitle"`
	TourType    string             `bson:"tourType" json:"tourType"`
	Price       float64            `bson:"price" json:"price"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Images      []string           `bson:"images,omitempty" json:"images,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

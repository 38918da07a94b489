package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tour is a single content record. Field names are part of the wire
// contract consumed by the frontend, so bson/json tags stay camelCase.
type Tour struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Name        string             `bson:"name,omitempty" json:"name,omitempty"` // legacy duplicate of title, never written
	Creator     string             `bson:"creator" json:"creator"`
	Tags        []string           `bson:"tags" json:"tags"`
	ImageFile   string             `bson:"imageFile" json:"imageFile"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	Likes       []string           `bson:"likes" json:"likes"`
	Category    string             `bson:"category" json:"category"`
}

// TourUpdate carries the only six fields an update may set. Anything
// else on the stored document is dropped by the replace.
type TourUpdate struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Creator     string   `json:"creator"`
	ImageFile   string   `json:"imageFile"`
	Tags        []string `json:"tags"`
	Category    string   `json:"category"`
}

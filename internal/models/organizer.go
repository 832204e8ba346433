package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Organizer struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string        `bson:"name" json:"name"`
	Contact     string        `bson:"contact" json:"contact"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time     `bson:"created_at" json:"createdAt"`
}

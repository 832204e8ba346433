package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Volunteer struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName string        `bson:"first_name" json:"firstName"`
	LastName  string        `bson:"last_name" json:"lastName"`
	Email     string        `bson:"email" json:"email"`
	Phone     string        `bson:"phone" json:"phone"`

	// Never serialized back to clients.
	PasswordHash string `bson:"password_hash" json:"-"`

	Rating    float64   `bson:"rating" json:"rating"` // 0-5, aggregated from reports
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

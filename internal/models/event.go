package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Event struct {
	ID              bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title           string        `bson:"title" json:"title"`
	Description     string        `bson:"description" json:"description"`
	StartTime       time.Time     `bson:"start_time" json:"startTime"`
	EndTime         time.Time     `bson:"end_time" json:"endTime"`
	MaxParticipants int           `bson:"max_participants" json:"maxParticipants"`

	// OrganizerID may point at a deleted organizer; events keep the
	// dangling reference and the client renders it as unspecified.
	OrganizerID bson.ObjectID `bson:"organizer_id,omitempty" json:"organizerId,omitempty"`
	CreatorID   bson.ObjectID `bson:"creator_id" json:"creatorId"`

	// Roster. Uniqueness is enforced at mutation time ($addToSet), not
	// as a document-level constraint.
	Participants []bson.ObjectID `bson:"participants" json:"participants"`
}

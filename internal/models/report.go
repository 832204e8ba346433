package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ActivityReport struct {
	ID              bson.ObjectID `bson:"_id,omitempty" json:"id"`
	VolunteerID     bson.ObjectID `bson:"volunteer_id" json:"volunteerId"`
	EventID         bson.ObjectID `bson:"event_id" json:"eventId"`
	WorkDescription string        `bson:"work_description" json:"workDescription"`
	Hours           int           `bson:"hours" json:"hours"`
	Rating          int           `bson:"rating,omitempty" json:"rating,omitempty"`
	ReportDate      time.Time     `bson:"report_date" json:"reportDate"`
}

package repository

import (
	"context"
	"time"

	"volunteerhub/database"
	"volunteerhub/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func InsertEvent(ctx context.Context, event models.Event) error {
	_, err := database.DB.Collection("events").InsertOne(ctx, event)
	return err
}

// GetEvents returns the catalog sorted ascending by start time.
func GetEvents(ctx context.Context) ([]models.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}})

	cursor, err := database.DB.Collection("events").Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func GetEventByID(ctx context.Context, eventID bson.ObjectID) (*models.Event, error) {
	var event models.Event
	err := database.DB.Collection("events").FindOne(ctx, bson.M{"_id": eventID}).Decode(&event)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func GetEventsByIDs(ctx context.Context, ids []bson.ObjectID) ([]models.Event, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cursor, err := database.DB.Collection("events").Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// ApplyEventUpdate applies a prebuilt update document; the service layer
// restricts it to the editable fields, so roster and creator are never
// touched here.
func ApplyEventUpdate(ctx context.Context, eventID bson.ObjectID, update bson.M) error {
	_, err := database.DB.Collection("events").
		UpdateOne(ctx, bson.M{"_id": eventID}, update)
	return err
}

func DeleteEvent(ctx context.Context, eventID bson.ObjectID) error {
	_, err := database.DB.Collection("events").DeleteOne(ctx, bson.M{"_id": eventID})
	return err
}

// AddParticipantIfCapacity performs the roster add as a single conditional
// update: the document only matches while the roster is below its limit, so
// the capacity check and the mutation cannot race. Returns whether the
// filter matched; $addToSet absorbs duplicate adds.
func AddParticipantIfCapacity(ctx context.Context, eventID, volunteerID bson.ObjectID) (bool, error) {
	filter := bson.M{
		"_id": eventID,
		"$expr": bson.M{
			"$lt": bson.A{bson.M{"$size": "$participants"}, "$max_participants"},
		},
	}
	update := bson.M{"$addToSet": bson.M{"participants": volunteerID}}

	res, err := database.DB.Collection("events").UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// RemoveParticipant pulls the volunteer from the roster. Removing an
// absent participant is a no-op.
func RemoveParticipant(ctx context.Context, eventID, volunteerID bson.ObjectID) error {
	_, err := database.DB.Collection("events").UpdateOne(
		ctx,
		bson.M{"_id": eventID},
		bson.M{"$pull": bson.M{"participants": volunteerID}},
	)
	return err
}

// EventsStartingBetween is the reminder sweep query: [from, to).
func EventsStartingBetween(ctx context.Context, from, to time.Time) ([]models.Event, error) {
	filter := bson.M{"start_time": bson.M{"$gte": from, "$lt": to}}

	cursor, err := database.DB.Collection("events").Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

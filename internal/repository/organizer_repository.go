package repository

import (
	"context"

	"volunteerhub/database"
	"volunteerhub/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func InsertOrganizer(ctx context.Context, o models.Organizer) error {
	_, err := database.DB.Collection("organizers").InsertOne(ctx, o)
	return err
}

// GetOrganizers returns the directory, newest first.
func GetOrganizers(ctx context.Context) ([]models.Organizer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := database.DB.Collection("organizers").Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var organizers []models.Organizer
	if err := cursor.All(ctx, &organizers); err != nil {
		return nil, err
	}
	return organizers, nil
}

func GetOrganizersByIDs(ctx context.Context, ids []bson.ObjectID) ([]models.Organizer, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cursor, err := database.DB.Collection("organizers").Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var organizers []models.Organizer
	if err := cursor.All(ctx, &organizers); err != nil {
		return nil, err
	}
	return organizers, nil
}

// DeleteOrganizer reports how many documents were removed so the handler
// can distinguish a missing id. Events referencing the organizer are left
// untouched.
func DeleteOrganizer(ctx context.Context, id bson.ObjectID) (int64, error) {
	res, err := database.DB.Collection("organizers").DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

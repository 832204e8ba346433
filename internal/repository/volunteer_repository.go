package repository

import (
	"context"

	"volunteerhub/database"
	"volunteerhub/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func InsertVolunteer(ctx context.Context, v models.Volunteer) error {
	_, err := database.DB.Collection("volunteers").InsertOne(ctx, v)
	return err
}

// FindVolunteerByEmail expects an already-lowercased email.
func FindVolunteerByEmail(ctx context.Context, email string) (*models.Volunteer, error) {
	var v models.Volunteer
	err := database.DB.Collection("volunteers").FindOne(ctx, bson.M{"email": email}).Decode(&v)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func GetVolunteerByID(ctx context.Context, id bson.ObjectID) (*models.Volunteer, error) {
	var v models.Volunteer
	err := database.DB.Collection("volunteers").FindOne(ctx, bson.M{"_id": id}).Decode(&v)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func GetVolunteersByIDs(ctx context.Context, ids []bson.ObjectID) ([]models.Volunteer, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cursor, err := database.DB.Collection("volunteers").Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var volunteers []models.Volunteer
	if err := cursor.All(ctx, &volunteers); err != nil {
		return nil, err
	}
	return volunteers, nil
}

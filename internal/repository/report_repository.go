package repository

import (
	"context"

	"volunteerhub/database"
	"volunteerhub/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func InsertReport(ctx context.Context, r models.ActivityReport) error {
	_, err := database.DB.Collection("activity_reports").InsertOne(ctx, r)
	return err
}

func GetReportsByVolunteer(ctx context.Context, volunteerID bson.ObjectID) ([]models.ActivityReport, error) {
	opts := options.Find().SetSort(bson.D{{Key: "report_date", Value: -1}})

	cursor, err := database.DB.Collection("activity_reports").
		Find(ctx, bson.M{"volunteer_id": volunteerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reports []models.ActivityReport
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// DeleteOwnReport is scoped by both report id and owner, so a foreign id
// deletes nothing and the caller reports not found rather than forbidden.
func DeleteOwnReport(ctx context.Context, reportID, volunteerID bson.ObjectID) (int64, error) {
	res, err := database.DB.Collection("activity_reports").DeleteOne(ctx, bson.M{
		"_id":          reportID,
		"volunteer_id": volunteerID,
	})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

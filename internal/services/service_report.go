package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"volunteerhub/dto"
	"volunteerhub/internal/apperr"
	"volunteerhub/internal/models"
	repo "volunteerhub/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// FileReport records a work log entry. Whether filing should require a
// prior registration is an open product question; current behavior does
// not cross-check the roster.
func FileReport(ctx context.Context, volunteerID bson.ObjectID, body dto.ReportRequest) (*models.ActivityReport, error) {
	eventID, err := bson.ObjectIDFromHex(body.EventID)
	if err != nil {
		return nil, apperr.New(apperr.Validation, "eventId must be a valid id")
	}

	report := models.ActivityReport{
		ID:              bson.NewObjectID(),
		VolunteerID:     volunteerID,
		EventID:         eventID,
		WorkDescription: strings.TrimSpace(body.WorkDescription),
		Hours:           body.Hours,
		Rating:          body.Rating,
		ReportDate:      time.Now().UTC(),
	}

	if err := repo.InsertReport(ctx, report); err != nil {
		return nil, err
	}
	return &report, nil
}

// ReportLedger is the slice of the report store the delete path needs;
// tests supply fakes.
type ReportLedger interface {
	DeleteOwnReport(ctx context.Context, reportID, volunteerID bson.ObjectID) (int64, error)
}

type MongoReports struct{}

func (MongoReports) DeleteOwnReport(ctx context.Context, reportID, volunteerID bson.ObjectID) (int64, error) {
	return repo.DeleteOwnReport(ctx, reportID, volunteerID)
}

// DeleteReport removes the caller's own report. A foreign report id maps
// to not found, never forbidden, so report ids cannot be probed.
func DeleteReport(ctx context.Context, store ReportLedger, volunteerID, reportID bson.ObjectID) error {
	deleted, err := store.DeleteOwnReport(ctx, reportID, volunteerID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return apperr.New(apperr.NotFound, "report not found")
	}
	return nil
}

// SumHours is the ledger aggregate behind totalHours.
func SumHours(reports []models.ActivityReport) int {
	total := 0
	for _, r := range reports {
		total += r.Hours
	}
	return total
}

// Profile assembles /api/volunteers/me: the stats are derived from the
// ledger on every read so they cannot drift from the reports.
func Profile(ctx context.Context, volunteerID bson.ObjectID) (*dto.ProfileView, error) {
	v, err := repo.GetVolunteerByID(ctx, volunteerID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.New(apperr.NotFound, "volunteer not found")
		}
		return nil, err
	}

	reports, err := repo.GetReportsByVolunteer(ctx, volunteerID)
	if err != nil {
		return nil, err
	}

	view := &dto.ProfileView{
		ID:          v.ID.Hex(),
		FirstName:   v.FirstName,
		LastName:    v.LastName,
		Email:       v.Email,
		Phone:       v.Phone,
		Rating:      v.Rating,
		CreatedAt:   v.CreatedAt,
		TotalEvents: len(reports),
		TotalHours:  SumHours(reports),
		Reports:     make([]dto.ReportView, 0, len(reports)),
	}
	for _, r := range reports {
		view.Reports = append(view.Reports, dto.ReportView{
			ID:              r.ID.Hex(),
			WorkDescription: r.WorkDescription,
			Hours:           r.Hours,
			Rating:          r.Rating,
			ReportDate:      r.ReportDate,
		})
	}
	return view, nil
}

// MyReports lists the caller's reports with each event's title and time
// window expanded.
func MyReports(ctx context.Context, volunteerID bson.ObjectID) ([]dto.ReportView, error) {
	reports, err := repo.GetReportsByVolunteer(ctx, volunteerID)
	if err != nil {
		return nil, err
	}

	var eventIDs []bson.ObjectID
	seen := make(map[bson.ObjectID]bool)
	for _, r := range reports {
		if !seen[r.EventID] {
			seen[r.EventID] = true
			eventIDs = append(eventIDs, r.EventID)
		}
	}

	events, err := repo.GetEventsByIDs(ctx, eventIDs)
	if err != nil {
		return nil, err
	}
	eventMap := make(map[bson.ObjectID]models.Event, len(events))
	for _, ev := range events {
		eventMap[ev.ID] = ev
	}

	views := make([]dto.ReportView, 0, len(reports))
	for _, r := range reports {
		view := dto.ReportView{
			ID:              r.ID.Hex(),
			WorkDescription: r.WorkDescription,
			Hours:           r.Hours,
			Rating:          r.Rating,
			ReportDate:      r.ReportDate,
		}
		if ev, ok := eventMap[r.EventID]; ok {
			view.Event = &dto.EventRef{
				ID:        ev.ID.Hex(),
				Title:     ev.Title,
				StartTime: ev.StartTime,
				EndTime:   ev.EndTime,
			}
		}
		views = append(views, view)
	}
	return views, nil
}

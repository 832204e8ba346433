package services

import (
	"context"
	"errors"
	"strings"

	"volunteerhub/dto"
	"volunteerhub/internal/apperr"
	"volunteerhub/internal/models"
	repo "volunteerhub/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const defaultMaxParticipants = 2

// EventGetter is the single read the creator check needs; MongoRoster
// satisfies it.
type EventGetter interface {
	GetEventByID(ctx context.Context, eventID bson.ObjectID) (*models.Event, error)
}

// OwnEvent loads the event and enforces that only the creator may
// mutate it.
func OwnEvent(ctx context.Context, store EventGetter, eventID, callerID bson.ObjectID) (*models.Event, error) {
	event, err := store.GetEventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.New(apperr.NotFound, "event not found")
		}
		return nil, err
	}
	if event.CreatorID != callerID {
		return nil, apperr.New(apperr.Forbidden, "only the creator can modify this event")
	}
	return event, nil
}

// BuildEvent validates the request and shapes the document. A start time
// in the past is allowed; maxParticipants defaults to 2 and is coerced to
// at least 1. The organizer reference is not checked against the
// directory.
func BuildEvent(body dto.EventRequest, creatorID bson.ObjectID) (models.Event, error) {
	if !body.EndTime.After(body.StartTime) {
		return models.Event{}, apperr.New(apperr.Validation, "endTime must be after startTime")
	}

	max := body.MaxParticipants
	if max == 0 {
		max = defaultMaxParticipants
	}
	if max < 1 {
		max = 1
	}

	event := models.Event{
		ID:              bson.NewObjectID(),
		Title:           strings.TrimSpace(body.Title),
		Description:     strings.TrimSpace(body.Description),
		StartTime:       body.StartTime,
		EndTime:         body.EndTime,
		MaxParticipants: max,
		CreatorID:       creatorID,
		Participants:    []bson.ObjectID{},
	}

	if body.Organizer != "" {
		oid, err := bson.ObjectIDFromHex(body.Organizer)
		if err != nil {
			return models.Event{}, apperr.New(apperr.Validation, "organizer must be a valid id")
		}
		event.OrganizerID = oid
	}
	return event, nil
}

func CreateEvent(ctx context.Context, body dto.EventRequest, creatorID bson.ObjectID) (*models.Event, error) {
	event, err := BuildEvent(body, creatorID)
	if err != nil {
		return nil, err
	}
	if err := repo.InsertEvent(ctx, event); err != nil {
		return nil, err
	}
	return &event, nil
}

// eventUpdate shapes the replace-style update: all editable fields are
// set, and an omitted organizer clears the stored reference.
func eventUpdate(validated models.Event) bson.M {
	set := bson.M{
		"title":            validated.Title,
		"description":      validated.Description,
		"start_time":       validated.StartTime,
		"end_time":         validated.EndTime,
		"max_participants": validated.MaxParticipants,
	}
	update := bson.M{"$set": set}
	if validated.OrganizerID != bson.NilObjectID {
		set["organizer_id"] = validated.OrganizerID
	} else {
		update["$unset"] = bson.M{"organizer_id": ""}
	}
	return update
}

// UpdateEvent replaces the editable fields with the same validation as
// create; roster and creator are untouched.
func UpdateEvent(ctx context.Context, eventID bson.ObjectID, body dto.EventRequest) error {
	validated, err := BuildEvent(body, bson.NilObjectID)
	if err != nil {
		return err
	}
	return repo.ApplyEventUpdate(ctx, eventID, eventUpdate(validated))
}

// ListEvents expands organizer, creator and roster references for
// display. References are resolved in bulk and grouped by id, not joined
// in the store.
func ListEvents(ctx context.Context) ([]dto.EventView, error) {
	events, err := repo.GetEvents(ctx)
	if err != nil {
		return nil, err
	}

	var organizerIDs, volunteerIDs []bson.ObjectID
	seen := make(map[bson.ObjectID]bool)
	addVolunteer := func(id bson.ObjectID) {
		if !seen[id] {
			seen[id] = true
			volunteerIDs = append(volunteerIDs, id)
		}
	}
	for _, ev := range events {
		if ev.OrganizerID != bson.NilObjectID {
			organizerIDs = append(organizerIDs, ev.OrganizerID)
		}
		addVolunteer(ev.CreatorID)
		for _, p := range ev.Participants {
			addVolunteer(p)
		}
	}

	organizers, err := repo.GetOrganizersByIDs(ctx, organizerIDs)
	if err != nil {
		return nil, err
	}
	volunteers, err := repo.GetVolunteersByIDs(ctx, volunteerIDs)
	if err != nil {
		return nil, err
	}

	orgMap := make(map[bson.ObjectID]models.Organizer, len(organizers))
	for _, o := range organizers {
		orgMap[o.ID] = o
	}
	volMap := make(map[bson.ObjectID]models.Volunteer, len(volunteers))
	for _, v := range volunteers {
		volMap[v.ID] = v
	}

	views := make([]dto.EventView, 0, len(events))
	for _, ev := range events {
		view := dto.EventView{
			ID:              ev.ID.Hex(),
			Title:           ev.Title,
			Description:     ev.Description,
			StartTime:       ev.StartTime,
			EndTime:         ev.EndTime,
			MaxParticipants: ev.MaxParticipants,
			Participants:    []dto.VolunteerRef{},
		}

		// Deleted organizers leave a dangling reference; the view
		// carries a null organizer then.
		if o, ok := orgMap[ev.OrganizerID]; ok {
			view.Organizer = &dto.OrganizerRef{ID: o.ID.Hex(), Name: o.Name, Contact: o.Contact}
		}
		if c, ok := volMap[ev.CreatorID]; ok {
			view.Creator = &dto.VolunteerRef{ID: c.ID.Hex(), FirstName: c.FirstName, LastName: c.LastName}
		}
		for _, p := range ev.Participants {
			if v, ok := volMap[p]; ok {
				view.Participants = append(view.Participants, dto.VolunteerRef{
					ID: v.ID.Hex(), FirstName: v.FirstName, LastName: v.LastName,
				})
			}
		}
		views = append(views, view)
	}
	return views, nil
}

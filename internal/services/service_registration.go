package services

import (
	"context"
	"errors"

	"volunteerhub/internal/apperr"
	"volunteerhub/internal/models"
	repo "volunteerhub/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// RosterStore is the slice of the event store the registration service
// needs; the mongo-backed implementation lives below, tests supply mocks.
type RosterStore interface {
	GetEventByID(ctx context.Context, eventID bson.ObjectID) (*models.Event, error)
	AddParticipantIfCapacity(ctx context.Context, eventID, volunteerID bson.ObjectID) (bool, error)
	RemoveParticipant(ctx context.Context, eventID, volunteerID bson.ObjectID) error
}

type MongoRoster struct{}

func (MongoRoster) GetEventByID(ctx context.Context, eventID bson.ObjectID) (*models.Event, error) {
	return repo.GetEventByID(ctx, eventID)
}

func (MongoRoster) AddParticipantIfCapacity(ctx context.Context, eventID, volunteerID bson.ObjectID) (bool, error) {
	return repo.AddParticipantIfCapacity(ctx, eventID, volunteerID)
}

func (MongoRoster) RemoveParticipant(ctx context.Context, eventID, volunteerID bson.ObjectID) error {
	return repo.RemoveParticipant(ctx, eventID, volunteerID)
}

// JoinEvent registers the volunteer. The add is a single conditional
// mutation, so capacity cannot be exceeded by concurrent joins; duplicate
// joins are absorbed, not rejected.
func JoinEvent(ctx context.Context, store RosterStore, eventID, volunteerID bson.ObjectID) error {
	event, err := store.GetEventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperr.New(apperr.NotFound, "event not found")
		}
		return err
	}

	matched, err := store.AddParticipantIfCapacity(ctx, eventID, volunteerID)
	if err != nil {
		return err
	}
	if matched {
		return nil
	}

	// The roster is full. A volunteer already on it still gets an
	// idempotent success.
	for _, p := range event.Participants {
		if p == volunteerID {
			return nil
		}
	}
	return apperr.New(apperr.CapacityExceeded, "participant limit reached")
}

// LeaveEvent removes the volunteer from the roster; leaving an event the
// volunteer never joined succeeds as a no-op.
func LeaveEvent(ctx context.Context, store RosterStore, eventID, volunteerID bson.ObjectID) error {
	if _, err := store.GetEventByID(ctx, eventID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperr.New(apperr.NotFound, "event not found")
		}
		return err
	}
	return store.RemoveParticipant(ctx, eventID, volunteerID)
}

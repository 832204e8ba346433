package services

import (
	"context"
	"errors"
	"testing"

	"volunteerhub/internal/apperr"
	"volunteerhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// fakeRoster mirrors the store's conditional-update semantics: the add
// only matches while the roster is below its limit, duplicates are
// absorbed.
type fakeRoster struct {
	events map[bson.ObjectID]*models.Event
}

func newFakeRoster(events ...*models.Event) *fakeRoster {
	f := &fakeRoster{events: make(map[bson.ObjectID]*models.Event)}
	for _, ev := range events {
		f.events[ev.ID] = ev
	}
	return f
}

func (f *fakeRoster) GetEventByID(_ context.Context, id bson.ObjectID) (*models.Event, error) {
	ev, ok := f.events[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *ev
	cp.Participants = append([]bson.ObjectID(nil), ev.Participants...)
	return &cp, nil
}

func (f *fakeRoster) AddParticipantIfCapacity(_ context.Context, id, uid bson.ObjectID) (bool, error) {
	ev, ok := f.events[id]
	if !ok {
		return false, nil
	}
	if len(ev.Participants) >= ev.MaxParticipants {
		return false, nil
	}
	for _, p := range ev.Participants {
		if p == uid {
			return true, nil
		}
	}
	ev.Participants = append(ev.Participants, uid)
	return true, nil
}

func (f *fakeRoster) RemoveParticipant(_ context.Context, id, uid bson.ObjectID) error {
	ev, ok := f.events[id]
	if !ok {
		return nil
	}
	kept := ev.Participants[:0]
	for _, p := range ev.Participants {
		if p != uid {
			kept = append(kept, p)
		}
	}
	ev.Participants = kept
	return nil
}

func testEvent(max int, participants ...bson.ObjectID) *models.Event {
	return &models.Event{
		ID:              bson.NewObjectID(),
		Title:           "Park cleanup",
		MaxParticipants: max,
		Participants:    participants,
	}
}

func kindOf(t *testing.T, err error) apperr.Kind {
	t.Helper()
	var ae *apperr.Error
	require.True(t, errors.As(err, &ae), "expected *apperr.Error, got %v", err)
	return ae.Kind
}

func TestJoinEvent_AddsParticipant(t *testing.T) {
	ev := testEvent(2)
	store := newFakeRoster(ev)
	uid := bson.NewObjectID()

	err := JoinEvent(context.Background(), store, ev.ID, uid)

	require.NoError(t, err)
	assert.Equal(t, []bson.ObjectID{uid}, store.events[ev.ID].Participants)
}

func TestJoinEvent_DoubleJoinLeavesRosterUnchanged(t *testing.T) {
	ev := testEvent(5)
	store := newFakeRoster(ev)
	uid := bson.NewObjectID()

	require.NoError(t, JoinEvent(context.Background(), store, ev.ID, uid))
	require.NoError(t, JoinEvent(context.Background(), store, ev.ID, uid))

	assert.Len(t, store.events[ev.ID].Participants, 1)
}

func TestJoinEvent_CapacityExceeded(t *testing.T) {
	// maxParticipants=1, first volunteer takes the slot, second is
	// turned away.
	ev := testEvent(1)
	store := newFakeRoster(ev)
	v1 := bson.NewObjectID()
	v2 := bson.NewObjectID()

	require.NoError(t, JoinEvent(context.Background(), store, ev.ID, v1))

	err := JoinEvent(context.Background(), store, ev.ID, v2)
	assert.Equal(t, apperr.CapacityExceeded, kindOf(t, err))
	assert.Len(t, store.events[ev.ID].Participants, 1)
}

func TestJoinEvent_FullRosterDuplicateStillSucceeds(t *testing.T) {
	uid := bson.NewObjectID()
	ev := testEvent(1, uid)
	store := newFakeRoster(ev)

	assert.NoError(t, JoinEvent(context.Background(), store, ev.ID, uid))
	assert.Len(t, store.events[ev.ID].Participants, 1)
}

func TestJoinEvent_EventNotFound(t *testing.T) {
	store := newFakeRoster()

	err := JoinEvent(context.Background(), store, bson.NewObjectID(), bson.NewObjectID())
	assert.Equal(t, apperr.NotFound, kindOf(t, err))
}

func TestJoinEvent_CapacityHoldsUnderSequentialJoins(t *testing.T) {
	ev := testEvent(3)
	store := newFakeRoster(ev)

	var rejected int
	for i := 0; i < 5; i++ {
		err := JoinEvent(context.Background(), store, ev.ID, bson.NewObjectID())
		if err != nil {
			assert.Equal(t, apperr.CapacityExceeded, kindOf(t, err))
			rejected++
		}
		assert.LessOrEqual(t, len(store.events[ev.ID].Participants), ev.MaxParticipants)
	}
	assert.Equal(t, 2, rejected)
}

func TestLeaveEvent_RemovesParticipant(t *testing.T) {
	uid := bson.NewObjectID()
	other := bson.NewObjectID()
	ev := testEvent(5, uid, other)
	store := newFakeRoster(ev)

	require.NoError(t, LeaveEvent(context.Background(), store, ev.ID, uid))
	assert.Equal(t, []bson.ObjectID{other}, store.events[ev.ID].Participants)
}

func TestLeaveEvent_NonParticipantIsNoOp(t *testing.T) {
	ev := testEvent(5, bson.NewObjectID())
	store := newFakeRoster(ev)

	err := LeaveEvent(context.Background(), store, ev.ID, bson.NewObjectID())

	assert.NoError(t, err)
	assert.Len(t, store.events[ev.ID].Participants, 1)
}

func TestLeaveEvent_EventNotFound(t *testing.T) {
	store := newFakeRoster()

	err := LeaveEvent(context.Background(), store, bson.NewObjectID(), bson.NewObjectID())
	assert.Equal(t, apperr.NotFound, kindOf(t, err))
}

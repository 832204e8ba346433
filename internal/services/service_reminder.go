package services

import (
	"context"
	"fmt"
	"time"

	"volunteerhub/internal/models"
	repo "volunteerhub/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"
)

// ReminderStore defines the catalog reads the reminder sweep needs.
type ReminderStore interface {
	EventsStartingBetween(ctx context.Context, from, to time.Time) ([]models.Event, error)
	GetVolunteersByIDs(ctx context.Context, ids []bson.ObjectID) ([]models.Volunteer, error)
}

// ReminderSender is the external mail relay seen from the sweep.
type ReminderSender interface {
	SendReminder(to, eventTitle string, start time.Time) error
}

type MongoReminderStore struct{}

func (MongoReminderStore) EventsStartingBetween(ctx context.Context, from, to time.Time) ([]models.Event, error) {
	return repo.EventsStartingBetween(ctx, from, to)
}

func (MongoReminderStore) GetVolunteersByIDs(ctx context.Context, ids []bson.ObjectID) ([]models.Volunteer, error) {
	return repo.GetVolunteersByIDs(ctx, ids)
}

// ReminderWindow is the 24-hour slice the sweep looks at: tomorrow
// midnight local through the following midnight.
func ReminderWindow(now time.Time) (time.Time, time.Time) {
	y, m, d := now.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	from := midnight.AddDate(0, 0, 1)
	return from, from.AddDate(0, 0, 1)
}

// SendEventReminders scans for events starting in tomorrow's window and
// dispatches one reminder per participant with a known email. Send
// failures are logged and do not abort the remaining sends; there is no
// retry and no dedup across restarts.
func SendEventReminders(
	ctx context.Context,
	store ReminderStore,
	sender ReminderSender,
	logger *zap.Logger,
	now time.Time,
) (sent, failed int, err error) {
	from, to := ReminderWindow(now)

	events, err := store.EventsStartingBetween(ctx, from, to)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to fetch upcoming events: %w", err)
	}
	logger.Debug("reminder sweep", zap.Int("events", len(events)), zap.Time("from", from), zap.Time("to", to))

	for _, ev := range events {
		if len(ev.Participants) == 0 {
			continue
		}

		participants, perr := store.GetVolunteersByIDs(ctx, ev.Participants)
		if perr != nil {
			logger.Error("failed to expand participants",
				zap.String("event_id", ev.ID.Hex()), zap.Error(perr))
			failed += len(ev.Participants)
			continue
		}

		for _, p := range participants {
			if p.Email == "" {
				continue
			}
			if serr := sender.SendReminder(p.Email, ev.Title, ev.StartTime); serr != nil {
				logger.Error("failed to send reminder",
					zap.String("event_id", ev.ID.Hex()),
					zap.String("to", p.Email),
					zap.Error(serr))
				failed++
				continue
			}
			sent++
		}
	}
	return sent, failed, nil
}

package dto

import "time"

type EventRequest struct {
	Title           string    `json:"title" validate:"required"`
	Description     string    `json:"description" validate:"required"`
	StartTime       time.Time `json:"startTime" validate:"required"`
	EndTime         time.Time `json:"endTime" validate:"required"`
	MaxParticipants int       `json:"maxParticipants"`

	// Hex id of an organizer directory entry. Optional; an absent or
	// stale reference is accepted and shown as unspecified.
	Organizer string `json:"organizer"`
}

type OrganizerRef struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

type VolunteerRef struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// EventView is the populated listing shape: organizer, creator and the
// roster are expanded for display.
type EventView struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	StartTime       time.Time      `json:"startTime"`
	EndTime         time.Time      `json:"endTime"`
	MaxParticipants int            `json:"maxParticipants"`
	Organizer       *OrganizerRef  `json:"organizer"`
	Creator         *VolunteerRef  `json:"creator"`
	Participants    []VolunteerRef `json:"participants"`
}

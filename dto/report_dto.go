package dto

import "time"

type ReportRequest struct {
	EventID         string `json:"eventId" validate:"required"`
	WorkDescription string `json:"workDescription" validate:"required"`
	Hours           int    `json:"hours" validate:"required,min=1"`
	Rating          int    `json:"rating" validate:"omitempty,min=1,max=5"`
}

type EventRef struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

type ReportView struct {
	ID              string    `json:"id"`
	WorkDescription string    `json:"workDescription"`
	Hours           int       `json:"hours"`
	Rating          int       `json:"rating,omitempty"`
	ReportDate      time.Time `json:"reportDate"`
	Event           *EventRef `json:"event,omitempty"`
}

// ProfileView is /api/volunteers/me: the profile plus stats derived from
// the report ledger, never stored redundantly.
type ProfileView struct {
	ID          string       `json:"id"`
	FirstName   string       `json:"firstName"`
	LastName    string       `json:"lastName"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone"`
	Rating      float64      `json:"rating"`
	CreatedAt   time.Time    `json:"createdAt"`
	TotalEvents int          `json:"totalEvents"`
	TotalHours  int          `json:"totalHours"`
	Reports     []ReportView `json:"reports"`
}

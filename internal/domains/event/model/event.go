package model

import (
	"time"

	"github.com/google/uuid"

	"deadparty-backend/internal/shared"
)

// Event is a show listing. Date is the calendar day; Time and Doors are
// display strings ("8:00 PM") exactly as entered.
type Event struct {
	ID          uuid.UUID    `json:"id" db:"id"`
	Title       string       `json:"title" db:"title"`
	Artist      string       `json:"artist" db:"artist"`
	Date        time.Time    `json:"date" db:"date"`
	Time        *string      `json:"time" db:"time"`
	Venue       string       `json:"venue" db:"venue"`
	Location    string       `json:"location" db:"location"`
	Genre       shared.Genre `json:"genre" db:"genre"`
	Flyer       *string      `json:"flyer" db:"flyer"`
	Doors       *string      `json:"doors" db:"doors"`
	TicketURL   *string      `json:"ticket_url" db:"ticket_url"`
	Description *string      `json:"description" db:"description"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at" db:"updated_at"`
}

// IsPast reports whether the event's day is strictly before today's day.
// An event happening today is still upcoming.
func (e *Event) IsPast(today time.Time) bool {
	y1, m1, d1 := e.Date.Date()
	y2, m2, d2 := today.Date()
	eventDay := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	todayDay := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return eventDay.Before(todayDay)
}

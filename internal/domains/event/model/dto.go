package model

import (
	"time"

	"github.com/google/uuid"

	"deadparty-backend/internal/shared"
)

// EventResponse is the canonical read representation. is_past is computed
// against the server's current day at render time.
type EventResponse struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Artist      string       `json:"artist"`
	Date        string       `json:"date"`
	Time        *string      `json:"time"`
	Venue       string       `json:"venue"`
	Location    string       `json:"location"`
	Genre       shared.Genre `json:"genre"`
	Flyer       *string      `json:"flyer"`
	Doors       *string      `json:"doors"`
	TicketURL   *string      `json:"ticket_url"`
	Description *string      `json:"description"`
	IsPast      bool         `json:"is_past"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func (e *Event) ToResponse(today time.Time) *EventResponse {
	return &EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Artist:      e.Artist,
		Date:        e.Date.Format("2006-01-02"),
		Time:        e.Time,
		Venue:       e.Venue,
		Location:    e.Location,
		Genre:       e.Genre,
		Flyer:       e.Flyer,
		Doors:       e.Doors,
		TicketURL:   e.TicketURL,
		Description: e.Description,
		IsPast:      e.IsPast(today),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// EventFilter - query parameters for GET /v1/events
type EventFilter struct {
	Genre  string `form:"genre"`
	Date   string `form:"date"`
	Search string `form:"search"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

package model

import (
	"time"

	"github.com/google/uuid"

	artistmodel "deadparty-backend/internal/domains/artist/model"
	usermodel "deadparty-backend/internal/domains/user/model"
)

// InterviewRequest is a user's ask to interview an artist. EmailSent and
// SmsSent record which notifications actually went out; a send failure never
// fails the request itself.
type InterviewRequest struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	ArtistID    uuid.UUID  `json:"artist_id" db:"artist_id"`
	RequesterID *uuid.UUID `json:"requester_id" db:"requester_id"`
	Message     string     `json:"message" db:"message"`
	EmailSent   bool       `json:"email_sent" db:"email_sent"`
	SmsSent     bool       `json:"sms_sent" db:"sms_sent"`

	// Loaded relations.
	Artist    *artistmodel.Artist `json:"artist"`
	Requester *usermodel.Summary  `json:"requester"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CallerRole decides how much of the request pool a caller may see.
type CallerRole int

const (
	// RoleRequester sees only requests they filed themselves.
	RoleRequester CallerRole = iota
	// RoleArtistOwner sees every request aimed at their artist profile.
	RoleArtistOwner
	// RoleStaff sees everything.
	RoleStaff
)

// Scope is the resolved visibility of one caller.
type Scope struct {
	Role     CallerRole
	UserID   uuid.UUID
	ArtistID uuid.UUID
}

// ScopeFor dispatches on the caller's standing: staff beats artist-profile
// ownership, which beats plain requester.
func ScopeFor(userID uuid.UUID, isStaff bool, artistID *uuid.UUID) Scope {
	switch {
	case isStaff:
		return Scope{Role: RoleStaff, UserID: userID}
	case artistID != nil:
		return Scope{Role: RoleArtistOwner, UserID: userID, ArtistID: *artistID}
	default:
		return Scope{Role: RoleRequester, UserID: userID}
	}
}

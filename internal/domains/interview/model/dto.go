package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	artistmodel "deadparty-backend/internal/domains/artist/model"
	usermodel "deadparty-backend/internal/domains/user/model"
)

// CreateInterviewRequest - POST /v1/interview-requests. The requester comes
// from the token, never the body.
type CreateInterviewRequest struct {
	ArtistID uuid.UUID `json:"artist_id"`
	Message  string    `json:"message"`
}

func (r CreateInterviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ArtistID,
			validation.Required.Error("artist_id is required"),
		),
		validation.Field(&r.Message,
			validation.Required.Error("message is required"),
			validation.Length(1, 5000),
		),
	)
}

// InterviewRequestResponse is the canonical read representation.
type InterviewRequestResponse struct {
	ID        uuid.UUID                   `json:"id"`
	Message   string                      `json:"message"`
	EmailSent bool                        `json:"email_sent"`
	SmsSent   bool                        `json:"sms_sent"`
	Artist    *artistmodel.ArtistResponse `json:"artist"`
	Requester *usermodel.Summary          `json:"requester"`
	CreatedAt time.Time                   `json:"created_at"`
	UpdatedAt time.Time                   `json:"updated_at"`
}

func (r *InterviewRequest) ToResponse() *InterviewRequestResponse {
	resp := &InterviewRequestResponse{
		ID:        r.ID,
		Message:   r.Message,
		EmailSent: r.EmailSent,
		SmsSent:   r.SmsSent,
		Requester: r.Requester,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.Artist != nil {
		resp.Artist = r.Artist.ToResponse()
	}
	return resp
}

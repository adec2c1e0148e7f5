package model

import (
	"time"

	"github.com/google/uuid"
)

// User is an account on the site. Staff users moderate comments and see all
// interview requests; regular users comment and request interviews. Artist
// and Author profiles hang off a user account one-to-one.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	Phone        *string   `json:"phone,omitempty" db:"phone"`
	IsStaff      bool      `json:"is_staff" db:"is_staff"`
	IsSuperuser  bool      `json:"is_superuser" db:"is_superuser"`
	DateJoined   time.Time `json:"date_joined" db:"date_joined"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Summary is the nested user representation embedded in author, comment and
// interview-request responses.
type Summary struct {
	ID         uuid.UUID `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	DateJoined time.Time `json:"date_joined"`
}

func (u *User) Summary() *Summary {
	return &Summary{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		DateJoined: u.DateJoined,
	}
}

// Role maps the staff flags onto the JWT role claim.
func (u *User) Role() string {
	if u.IsStaff || u.IsSuperuser {
		return "staff"
	}
	return "user"
}

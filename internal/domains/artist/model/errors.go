package model

import "errors"

var (
	ErrArtistNotFound = errors.New("artist not found")
	ErrInvalidGenre   = errors.New("invalid genre")
)

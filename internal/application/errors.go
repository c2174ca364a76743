package application

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")

	// ErrGalleryUnavailable is returned when media storage is not configured;
	// the rest of the listing surface keeps working without it.
	ErrGalleryUnavailable = errors.New("gallery storage unavailable")
)

package pawtrait

import "errors"

var (
	// ErrNotFound is returned when a photo is not found
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
	// ErrMissingFamilyID is returned when a request carries no family identifier
	ErrMissingFamilyID = errors.New("missing family id")
	// ErrForbiddenFamily is returned when a family identifier is not allow-listed
	ErrForbiddenFamily = errors.New("family not allowed")
	// ErrMissingPhotoID is returned when a metadata record has no photo identifier
	ErrMissingPhotoID = errors.New("missing photo id")
)

package domain

import "errors"

var (
	// ErrNotAuthorized is returned when the allow-list or admin check rejects a user
	ErrNotAuthorized = errors.New("not authorized")
	// ErrWrongInputKind marks a photo sent to a text task or vice versa
	ErrWrongInputKind = errors.New("wrong input kind")
	// ErrValidationMismatch marks a wrong answer to a text task
	ErrValidationMismatch = errors.New("answer does not match")
	// ErrPhotoLimit marks a photo sent after the task already has enough
	ErrPhotoLimit = errors.New("photo limit reached")
	// ErrSinkDelivery is returned when the admin chat could not be reached
	ErrSinkDelivery = errors.New("sink delivery failed")
	// ErrStorageUnavailable wraps persistence failures
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrUnknownLanguage is returned for unsupported language codes
	ErrUnknownLanguage = errors.New("unknown language")
)

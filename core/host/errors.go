package host

import "errors"

var (
	// ErrRequestFailed marks failures where no response was received.
	ErrRequestFailed = errors.New("host: request failed")
	// ErrFileUnavailable is returned when the upload source cannot be read.
	ErrFileUnavailable = errors.New("host: upload file unavailable")
	// ErrEmptyPath is returned by NavigateTo for an empty destination.
	ErrEmptyPath = errors.New("host: empty navigation path")
)

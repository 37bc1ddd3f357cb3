package report

import "errors"

// Style resource errors. These are the only failures Generate reports on its
// own: without the style sheet no document is produced at all.
var (
	// ErrNoStyleSource is returned when the generator has no file system to
	// load the style sheet from.
	ErrNoStyleSource = errors.New("style resource location is not configured")

	// ErrStyleNotFound is returned when the style sheet does not exist.
	ErrStyleNotFound = errors.New("style resource not found")

	// ErrStyleUnreadable is returned when the style sheet exists but cannot be read.
	ErrStyleUnreadable = errors.New("style resource could not be read")
)

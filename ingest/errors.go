package ingest

import "fmt"

// FileOpenError - Custom error to inform that the course file could not be opened
type FileOpenError struct {
	Path  string
	cause error
}

// Error - Used to notify that the course file could not be opened
func (E FileOpenError) Error() string {
	return fmt.Sprintf("failed to open file %s: %s", E.Path, E.cause)
}

// Unwrap - Exposes the underlying file system error
func (E FileOpenError) Unwrap() error {
	return E.cause
}

// FormatError - Custom error to inform that a row does not carry the minimum number of fields
type FormatError struct {
	Row        int
	FieldCount int
}

// Error - Used to notify that a row is malformed
func (E FormatError) Error() string {
	return fmt.Sprintf("row %d must have at minimum a course number and title, but only %d values were found", E.Row, E.FieldCount)
}

// IntegrityError - Custom error to inform that a prerequisite never appears as a course number
type IntegrityError struct {
	Prerequisite string
}

// Error - Used to notify that referential integrity does not hold
func (E IntegrityError) Error() string {
	return fmt.Sprintf("no entry found for listed prerequisite: %s", E.Prerequisite)
}

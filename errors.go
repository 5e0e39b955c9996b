package coursemap

import "github.com/natelwhite/coursemap/ingest"

// FileOpenError - The course file could not be opened
type FileOpenError = ingest.FileOpenError

// FormatError - A row yielded fewer than the minimum number of non-empty fields
type FormatError = ingest.FormatError

// IntegrityError - A prerequisite never appears as any row's course number
type IntegrityError = ingest.IntegrityError

package ingest

import (
	"bufio"
	"github.com/natelwhite/coursemap/internal/conf"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// ValidateFile - Runs the validation pre-pass over a course file, independent of any table.
// Every row is tokenized with the same empty-field-skipping rule as the load pass. The pass fails
// immediately with a FormatError when a row yields fewer than two non-empty fields, without
// scanning any further. After the full file is scanned it fails with an IntegrityError if any
// prerequisite string never appears as a course number. On success it returns the total row
// count, which is the bucket count to size a table with before loading.
//   - fsys is the file system to read from
//   - path is the course file path
//
// It returns:
//   - rowCount is the number of rows in the file, 0 on any failure
//   - err is a FileOpenError, FormatError, IntegrityError or a standard error, if something went wrong
func ValidateFile(fsys afero.Fs, path string) (rowCount int, err error) {
	f, err := fsys.Open(path)
	if err != nil {
		err = FileOpenError{Path: path, cause: err}
		return
	}
	defer func() { _ = f.Close() }()

	numbers := make(map[string]struct{})
	prerequisites := make(map[string]struct{})

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := Fields(scanner.Text())
		if len(fields) < conf.MinFieldCount {
			err = FormatError{Row: count + 1, FieldCount: len(fields)}
			return
		}
		for i, field := range fields {
			switch i {
			case conf.FieldNumber:
				numbers[field] = struct{}{}
			case conf.FieldTitle:
			default:
				prerequisites[field] = struct{}{}
			}
		}
		count++
	}
	if serr := scanner.Err(); serr != nil {
		err = errors.Wrap(serr, "ValidateFile.Scan")
		return
	}

	for prerequisite := range prerequisites {
		if _, ok := numbers[prerequisite]; !ok {
			err = IntegrityError{Prerequisite: prerequisite}
			return
		}
	}

	rowCount = count

	return
}

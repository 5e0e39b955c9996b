package ingest

import (
	"bufio"
	"github.com/natelwhite/coursemap/model"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Inserter - The insertion half of a course table, which is all the load pass needs
type Inserter interface {
	// Insert - Stores one parsed course record
	Insert(course model.Course) error
}

// LoadFile - Runs the load pass over a course file. Every row is tokenized with the same rule as
// the validation pass and handed to the target as it is parsed. Loading never clears what the
// target already stores, so loading the same file twice stores every record twice.
//   - fsys is the file system to read from
//   - path is the course file path
//   - target is the table taking the parsed records
func LoadFile(fsys afero.Fs, path string, target Inserter) (err error) {
	f, err := fsys.Open(path)
	if err != nil {
		err = FileOpenError{Path: path, cause: err}
		return
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if err = target.Insert(Row(Fields(scanner.Text()))); err != nil {
			err = errors.Wrap(err, "LoadFile.Insert")
			return
		}
	}
	if serr := scanner.Err(); serr != nil {
		err = errors.Wrap(serr, "LoadFile.Scan")
	}

	return
}

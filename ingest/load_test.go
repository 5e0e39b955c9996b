//go:build unit

package ingest

import (
	"github.com/natelwhite/coursemap/model"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"testing"
)

// recorder - Inserter capturing every record in arrival order
type recorder struct {
	courses []model.Course
}

func (R *recorder) Insert(course model.Course) error {
	R.courses = append(R.courses, course)
	return nil
}

func TestLoadFile(t *testing.T) {
	t.Run("parses and inserts every row in order", func(t *testing.T) {
		// Prepare
		fsys := writeTestFile(t, "CS101,Intro,CS100\nCS100,Foundations\n")
		target := &recorder{}

		// Execute
		err := LoadFile(fsys, testFile, target)

		// Check
		assert.NoError(t, err, "loads file")
		assert.Equal(t, []model.Course{
			{Number: "CS101", Title: "Intro", Prerequisites: []string{"CS100"}},
			{Number: "CS100", Title: "Foundations"},
		}, target.courses, "rows inserted in file order")
	})

	t.Run("loading twice duplicates every record", func(t *testing.T) {
		// Prepare
		fsys := writeTestFile(t, "CS100,Foundations\n")
		target := &recorder{}

		// Execute
		assert.NoError(t, LoadFile(fsys, testFile, target), "first load")
		assert.NoError(t, LoadFile(fsys, testFile, target), "second load")

		// Check
		assert.Equal(t, 2, len(target.courses), "records appended, not replaced")
	})

	t.Run("error when the file can not be opened", func(t *testing.T) {
		// Prepare
		fsys := afero.NewMemMapFs()

		// Execute
		err := LoadFile(fsys, "missing.csv", &recorder{})

		// Check
		assert.Error(t, err, "fails on missing file")
		assert.IsType(t, FileOpenError{}, err, "file open error")
	})
}

package ingest

import (
	"github.com/natelwhite/coursemap/internal/conf"
	"github.com/natelwhite/coursemap/model"
	"strings"
)

// Fields - Splits a row into its non-empty fields. Fields are comma delimited and scanned left to
// right; an empty field is skipped without consuming a field position, so a blank interior field
// shifts every later field one position forward. Content after the last delimiter is the final
// field. No quoting or escaping of delimiters is supported.
//   - row is one newline-free line from the course file
func Fields(row string) (fields []string) {
	for _, field := range strings.Split(row, ",") {
		if field == "" {
			continue
		}
		fields = append(fields, field)
	}

	return
}

// Row - Shapes the non-empty fields of a row into a course record. Field 0 is the course number,
// field 1 the title, and every later field an ordered prerequisite.
//   - fields is the non-empty fields of a row, as returned by Fields
func Row(fields []string) (course model.Course) {
	for i, field := range fields {
		switch i {
		case conf.FieldNumber:
			course.Number = field
		case conf.FieldTitle:
			course.Title = field
		default:
			course.Prerequisites = append(course.Prerequisites, field)
		}
	}

	return
}

package model

import (
	"fmt"
	"strings"
)

// Course - Represents one course record in the catalog
//   - Number is the course number and acts as the record key, matched case-sensitively
//   - Title is the course title
//   - Prerequisites is the ordered list of prerequisite course numbers, duplicates and self references are permitted
type Course struct {
	Number        string
	Title         string
	Prerequisites []string
}

// Empty - Returns the empty sentinel course, the designated "no record" value returned by a failed search
func Empty() Course {
	return Course{}
}

// IsEmpty - Returns true if the course is the empty sentinel
func (C Course) IsEmpty() bool {
	return C.Number == "" && C.Title == ""
}

// String - Formats the course the way the advising tool prints it, with prerequisites
// comma joined and no trailing comma
func (C Course) String() string {
	return fmt.Sprintf("Number: %s\nTitle: %s\nPrerequisites: %s", C.Number, C.Title, strings.Join(C.Prerequisites, ", "))
}

//go:build unit

package order

import (
	"fmt"
	"github.com/natelwhite/coursemap/model"
	"github.com/stretchr/testify/assert"
	"testing"
)

func assertNonDecreasing(t *testing.T, courses []model.Course) {
	for i := 1; i < len(courses); i++ {
		assert.LessOrEqual(t, courses[i-1].Number, courses[i].Number, "non-decreasing by number")
	}
}

func multiset(courses []model.Course) map[string]int {
	m := make(map[string]int)
	for _, course := range courses {
		key := course.Number + "|" + course.Title
		m[key] = m[key] + 1
	}
	return m
}

func TestQuicksort(t *testing.T) {
	t.Run("sorts by course number", func(t *testing.T) {
		// Prepare
		courses := []model.Course{
			{Number: "CS300", Title: "Data Structures"},
			{Number: "CS101", Title: "Intro"},
			{Number: "MATH201", Title: "Discrete Mathematics"},
			{Number: "CS100", Title: "Foundations"},
		}

		// Execute
		Quicksort(courses, 0, len(courses)-1)

		// Check
		assertNonDecreasing(t, courses)
		assert.Equal(t, "CS100", courses[0].Number, "lowest number first")
		assert.Equal(t, "MATH201", courses[3].Number, "highest number last")
	})

	t.Run("result is a permutation of the input including duplicates", func(t *testing.T) {
		// Prepare
		var courses []model.Course
		for i := 0; i < 40; i++ {
			courses = append(courses, model.Course{Number: fmt.Sprintf("CS%03d", (i*7)%10), Title: "Course"})
		}
		before := multiset(courses)

		// Execute
		Quicksort(courses, 0, len(courses)-1)

		// Check
		assertNonDecreasing(t, courses)
		assert.Equal(t, before, multiset(courses), "element multiset preserved")
	})

	t.Run("terminates when every element equals the pivot", func(t *testing.T) {
		// Prepare
		courses := make([]model.Course, 50)
		for i := range courses {
			courses[i] = model.Course{Number: "CS101", Title: "Intro"}
		}

		// Execute
		Quicksort(courses, 0, len(courses)-1)

		// Check
		assert.Equal(t, 50, len(courses), "nothing lost")
		assertNonDecreasing(t, courses)
	})

	t.Run("handles an already sorted sequence", func(t *testing.T) {
		// Prepare
		var courses []model.Course
		for i := 0; i < 20; i++ {
			courses = append(courses, model.Course{Number: fmt.Sprintf("CS%03d", i)})
		}

		// Execute
		Quicksort(courses, 0, len(courses)-1)

		// Check
		assertNonDecreasing(t, courses)
	})

	t.Run("handles a reverse sorted sequence", func(t *testing.T) {
		// Prepare
		var courses []model.Course
		for i := 19; i >= 0; i-- {
			courses = append(courses, model.Course{Number: fmt.Sprintf("CS%03d", i)})
		}

		// Execute
		Quicksort(courses, 0, len(courses)-1)

		// Check
		assertNonDecreasing(t, courses)
	})

	t.Run("single element and empty ranges are no-ops", func(t *testing.T) {
		// Prepare
		single := []model.Course{{Number: "CS101"}}
		var empty []model.Course

		// Execute
		Quicksort(single, 0, 0)
		Quicksort(empty, 0, -1)

		// Check
		assert.Equal(t, "CS101", single[0].Number, "single element untouched")
		assert.Empty(t, empty, "empty input untouched")
	})
}

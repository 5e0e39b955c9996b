package order

import "github.com/natelwhite/coursemap/model"

// Quicksort - Sorts courses in place by lexicographic comparison of course number, over the
// inclusive range lowIndex to highIndex. The sort is not stable. Average complexity is
// O(n log n), degrading toward O(n^2) on adversarial orderings.
//   - courses is the sequence to sort
//   - lowIndex is the first index of the range to sort
//   - highIndex is the last index (inclusive) of the range to sort
func Quicksort(courses []model.Course, lowIndex, highIndex int) {
	// A range of one or zero elements is already sorted
	if lowIndex >= highIndex {
		return
	}

	boundary := partition(courses, lowIndex, highIndex)

	Quicksort(courses, lowIndex, boundary)
	Quicksort(courses, boundary+1, highIndex)
}

// partition - Partitions the inclusive range around the value at its midpoint index. The pivot is
// taken by value and not relocated during partitioning. Cursor movement is clamped to the range
// bounds so runs of records equal to the pivot can not push a scan past them. It returns the
// index of the last element of the low partition.
func partition(courses []model.Course, lowIndex, highIndex int) int {
	midpoint := lowIndex + (highIndex-lowIndex)/2
	pivot := courses[midpoint].Number

	low, high := lowIndex, highIndex
	for {
		for low < highIndex && courses[low].Number < pivot {
			low++
		}
		for high > lowIndex && pivot < courses[high].Number {
			high--
		}

		// Crossed cursors mean the range is fully partitioned
		if low >= high {
			return high
		}

		courses[low], courses[high] = courses[high], courses[low]
		low++
		high--
	}
}

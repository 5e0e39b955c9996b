package store

import (
	"github.com/natelwhite/coursemap/internal/conf"
	"github.com/natelwhite/coursemap/model"
)

// chainRecords - Is used to iterate over one bucket's overflow chain, front to back
type chainRecords struct {
	table *Table
	index int
}

// newChainRecords - Returns a pointer to a new chainRecords struct
//   - first is the arena index of the first node in the chain, or conf.NoOverflow for an empty chain
func newChainRecords(table *Table, first int) *chainRecords {
	return &chainRecords{table: table, index: first}
}

// hasNext - Returns true if there are more records to be fetched from a call to next
func (O *chainRecords) hasNext() bool {
	return O.index != conf.NoOverflow
}

// next - Returns the current node's course and arena index, advancing to its successor.
// The successor link is read before the caller can touch the node, so a caller releasing the
// returned index never leaves the iterator on a freed slot.
func (O *chainRecords) next() (course model.Course, index int) {
	index = O.index
	course = O.table.arena[index].course
	O.index = O.table.arena[index].next

	return
}

package store

import (
	"fmt"
	"github.com/natelwhite/coursemap/hashfunc"
	"github.com/natelwhite/coursemap/internal/conf"
	"github.com/natelwhite/coursemap/internal/hash"
	"github.com/natelwhite/coursemap/model"
)

// head - One bucket slot in the table. A slot is occupied iff key is not conf.EmptyKey, and an
// unoccupied slot never links an overflow chain.
type head struct {
	course model.Course
	key    int
	next   int
}

// node - One overflow record in the arena. Each node is owned by its predecessor in the chain,
// next addresses the successor by arena index with conf.NoOverflow as terminator.
type node struct {
	course model.Course
	next   int
	inUse  bool
}

// Table - A fixed capacity hash table resolving collisions with separate chaining. The bucket
// array owns its head slots directly, while overflow records live in an arena addressed by index
// rather than by pointer. Promoting a node into a head slot is a payload copy plus a free list
// push, and a released arena slot can never be walked again through a live chain.
type Table struct {
	buckets   []head
	arena     []node
	freeList  []int
	tableSize int
	records   int
	algorithm hashfunc.HashAlgorithm
}

// Stat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of records stored
//   - HeadRecords is the number of records stored directly in bucket head slots
//   - OverflowRecords is the number of records that ended up in overflow chains
//   - BucketDistribution is the number of records stored in each available bucket
type Stat struct {
	Records            int
	HeadRecords        int
	OverflowRecords    int
	BucketDistribution []int
}

// NewTable - Returns a pointer to a new Table with a fixed number of buckets.
//   - tableSize is the number of buckets, it is fixed for the lifetime of the table and never resized
//   - algorithm is an optional custom bucket selection algorithm, nil selects the internal Poly31Algorithm
//
// It returns:
//   - table which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewTable(tableSize int, algorithm hashfunc.HashAlgorithm) (table *Table, err error) {
	if tableSize <= 0 {
		err = fmt.Errorf("tableSize must be a positive value higher than 0 (zero)")
		return
	}

	if algorithm == nil {
		algorithm = hash.NewPoly31Algorithm(tableSize)
	} else {
		algorithm.SetTableSize(tableSize)
	}

	buckets := make([]head, tableSize)
	for i := range buckets {
		buckets[i].key = conf.EmptyKey
		buckets[i].next = conf.NoOverflow
	}

	table = &Table{
		buckets:   buckets,
		tableSize: tableSize,
		algorithm: algorithm,
	}

	return
}

// BucketIndex - Returns the bucket index the given course number hashes to
//   - number is the course number acting as record key
func (T *Table) BucketIndex(number string) (index int, err error) {
	index = T.algorithm.BucketIndex(number)
	if index < 0 || index >= T.tableSize {
		err = fmt.Errorf("received bucket index from hash algorithm is outside permitted range")
		return
	}

	return
}

// Insert - Inserts a course in the bucket its number hashes to. An unoccupied bucket takes the
// course as its head, an occupied bucket gets the course appended at the end of its overflow
// chain. No same-number check is made, a second course with an already present number is accepted
// as a duplicate and becomes a distinct chain entry.
//   - course is the course record to insert
func (T *Table) Insert(course model.Course) (err error) {
	index, err := T.BucketIndex(course.Number)
	if err != nil {
		return
	}

	if T.buckets[index].key == conf.EmptyKey {
		T.buckets[index] = head{course: course, key: index, next: conf.NoOverflow}
		T.records++
		return
	}

	n := T.allocate(course)
	if T.buckets[index].next == conf.NoOverflow {
		T.buckets[index].next = n
	} else {
		cur := T.buckets[index].next
		for T.arena[cur].next != conf.NoOverflow {
			cur = T.arena[cur].next
		}
		T.arena[cur].next = n
	}
	T.records++

	return
}

// Search - Returns the first course with the given number, comparing the bucket head first and
// then scanning the overflow chain front to back. First match wins, so later duplicates with the
// same number are unreachable as long as an earlier one exists. A miss returns the empty sentinel.
//   - number is the course number to search for
func (T *Table) Search(number string) (course model.Course, err error) {
	index, err := T.BucketIndex(number)
	if err != nil {
		return
	}

	if T.buckets[index].key == conf.EmptyKey {
		return
	}

	if T.buckets[index].course.Number == number {
		course = T.buckets[index].course
		return
	}

	iter := newChainRecords(T, T.buckets[index].next)
	for iter.hasNext() {
		chained, _ := iter.next()
		if chained.Number == number {
			course = chained
			return
		}
	}

	return
}

// Remove - Removes courses with the given number from the bucket it hashes to.
// A matching head is replaced by its first overflow record if one exists, otherwise the slot is
// reset to unoccupied, and in either case the removal stops there without scanning the rest of
// the chain. A head that does not match triggers a full chain scan that unlinks every matching
// node and keeps scanning through the remainder of the chain.
//   - number is the course number to remove
func (T *Table) Remove(number string) (err error) {
	index, err := T.BucketIndex(number)
	if err != nil {
		return
	}

	if T.buckets[index].key == conf.EmptyKey {
		return
	}

	if T.buckets[index].course.Number == number {
		first := T.buckets[index].next
		if first != conf.NoOverflow {
			T.buckets[index].course = T.arena[first].course
			T.buckets[index].next = T.arena[first].next
			T.release(first)
		} else {
			T.buckets[index] = head{key: conf.EmptyKey, next: conf.NoOverflow}
		}
		T.records--
		return
	}

	prev := conf.NoOverflow
	cur := T.buckets[index].next
	for cur != conf.NoOverflow {
		next := T.arena[cur].next
		if T.arena[cur].course.Number == number {
			if prev == conf.NoOverflow {
				T.buckets[index].next = next
			} else {
				T.arena[prev].next = next
			}
			T.release(cur)
			T.records--
		} else {
			prev = cur
		}
		cur = next
	}

	return
}

// Export - Flattens the table into a slice of courses, in bucket index order with each bucket
// contributing its head first and then its chain front to back. The slice is a value copy, not a
// view, so for a fixed table size and a fixed sequence of inserts and removes both the record
// count and the order are deterministic.
func (T *Table) Export() (courses []model.Course) {
	courses = make([]model.Course, 0, T.records)
	for i := range T.buckets {
		if T.buckets[i].key == conf.EmptyKey {
			continue
		}
		courses = append(courses, T.buckets[i].course)
		iter := newChainRecords(T, T.buckets[i].next)
		for iter.hasNext() {
			chained, _ := iter.next()
			courses = append(courses, chained)
		}
	}

	return
}

// Reset - Returns the table to its freshly constructed state. Every chained node is released
// exactly once, walked in chain order from each occupied head, and all head slots are reset to
// unoccupied. The arena capacity is kept for reuse.
func (T *Table) Reset() {
	for i := range T.buckets {
		if T.buckets[i].key == conf.EmptyKey {
			continue
		}
		iter := newChainRecords(T, T.buckets[i].next)
		for iter.hasNext() {
			_, index := iter.next()
			T.release(index)
		}
		T.buckets[i] = head{key: conf.EmptyKey, next: conf.NoOverflow}
	}
	T.records = 0
}

// Len - Returns the number of records currently stored
func (T *Table) Len() int {
	return T.records
}

// TableSize - Returns the fixed number of buckets
func (T *Table) TableSize() int {
	return T.tableSize
}

// GetStat - Walks through the entire set of buckets and produces a Stat struct with information.
//   - includeDistribution set to true will include a slice of length TableSize with number of records per bucket, false will set Stat.BucketDistribution to nil.
func (T *Table) GetStat(includeDistribution bool) (stat *Stat) {
	var s Stat

	if includeDistribution {
		s.BucketDistribution = make([]int, T.tableSize)
	}

	for i := range T.buckets {
		if T.buckets[i].key == conf.EmptyKey {
			continue
		}
		s.Records++
		s.HeadRecords++
		if includeDistribution {
			s.BucketDistribution[i]++
		}
		iter := newChainRecords(T, T.buckets[i].next)
		for iter.hasNext() {
			_, _ = iter.next()
			s.Records++
			s.OverflowRecords++
			if includeDistribution {
				s.BucketDistribution[i]++
			}
		}
	}

	stat = &s
	return
}

// allocate - Takes an arena slot from the free list, or grows the arena, and fills it with the
// given course. It returns the arena index of the new node.
func (T *Table) allocate(course model.Course) (index int) {
	if l := len(T.freeList); l > 0 {
		index = T.freeList[l-1]
		T.freeList = T.freeList[:l-1]
		T.arena[index] = node{course: course, next: conf.NoOverflow, inUse: true}
		return
	}

	T.arena = append(T.arena, node{course: course, next: conf.NoOverflow, inUse: true})
	index = len(T.arena) - 1

	return
}

// release - Returns an arena slot to the free list and clears its payload. A slot that is already
// free is left untouched, which keeps a release from ever being counted twice.
func (T *Table) release(index int) {
	if !T.arena[index].inUse {
		return
	}
	T.arena[index] = node{next: conf.NoOverflow}
	T.freeList = append(T.freeList, index)
}

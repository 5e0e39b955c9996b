package coursemap

import (
	"github.com/natelwhite/coursemap/hashfunc"
	"github.com/natelwhite/coursemap/ingest"
	"github.com/natelwhite/coursemap/internal/conf"
	"github.com/natelwhite/coursemap/internal/order"
	"github.com/natelwhite/coursemap/internal/store"
	"github.com/natelwhite/coursemap/model"
	"github.com/spf13/afero"
)

// DefaultTableSize - The bucket count used when no validated row count is known in advance
const DefaultTableSize int = conf.DefaultTableSize

// Stat - Statistics on the overall usage and distribution over buckets
type Stat = store.Stat

// CourseMap - The main implementation struct, an in-memory course catalog keyed by course number.
// It is backed by a hash table with a bucket count fixed at construction and collisions resolved
// by separate chaining. A CourseMap is not safe for concurrent use, all callers are expected to
// run single-threaded and to completion.
type CourseMap struct {
	table *store.Table
}

// New - Returns a new CourseMap covering the given fixed number of buckets. The bucket count is
// typically the row count returned by ValidateFile, so every course gets a bucket of its own in
// theory, or DefaultTableSize when no count is known in advance.
//   - tableSize is the fixed number of buckets, it is never resized
//   - hashAlgorithm is an optional custom hash algorithm following the hashfunc.HashAlgorithm interface, nil selects the internal one
//
// It returns:
//   - courseMap is a pointer to a CourseMap struct
//   - err is a normal Go error which should be nil if everything went ok
func New(tableSize int, hashAlgorithm hashfunc.HashAlgorithm) (courseMap *CourseMap, err error) {
	table, err := store.NewTable(tableSize, hashAlgorithm)
	if err != nil {
		return
	}

	courseMap = &CourseMap{table: table}

	return
}

// ValidateFile - Runs the validation pre-pass over a course file and returns its row count.
// See ingest.ValidateFile for the exact contract.
//   - fsys is the file system to read from
//   - path is the course file path
func ValidateFile(fsys afero.Fs, path string) (rowCount int, err error) {
	return ingest.ValidateFile(fsys, path)
}

// Insert - Inserts a course, keyed by its number. A number already present is not an error, the
// new record is kept as a duplicate in the same bucket chain.
//   - course is the course record to insert
func (C *CourseMap) Insert(course model.Course) (err error) {
	return C.table.Insert(course)
}

// Search - Returns the first course stored under the given number. A miss is not an error, it
// returns the empty sentinel course which callers detect with model.Course.IsEmpty.
//   - number is the course number to search for
func (C *CourseMap) Search(number string) (course model.Course, err error) {
	return C.table.Search(number)
}

// Remove - Removes courses stored under the given number. A matching bucket head is replaced by
// the first record of its chain and the removal stops there, while matches further down a chain
// are all unlinked. Removing an absent number is a no-op.
//   - number is the course number to remove
func (C *CourseMap) Remove(number string) (err error) {
	return C.table.Remove(number)
}

// Export - Returns all stored courses as a value slice, in bucket index order with each bucket
// contributing its head first and then its chain in insertion order
func (C *CourseMap) Export() (courses []model.Course) {
	return C.table.Export()
}

// ExportSorted - Returns all stored courses sorted by lexicographic comparison of course number
func (C *CourseMap) ExportSorted() (courses []model.Course) {
	courses = C.table.Export()
	if len(courses) > 1 {
		order.Quicksort(courses, 0, len(courses)-1)
	}

	return
}

// Load - Runs the load pass over a course file, inserting every parsed row. Loading appends into
// whatever is already stored, it never clears first, so loading the same file twice stores every
// record twice.
//   - fsys is the file system to read from
//   - path is the course file path
func (C *CourseMap) Load(fsys afero.Fs, path string) (err error) {
	return ingest.LoadFile(fsys, path, C.table)
}

// Len - Returns the number of records currently stored
func (C *CourseMap) Len() int {
	return C.table.Len()
}

// TableSize - Returns the fixed number of buckets
func (C *CourseMap) TableSize() int {
	return C.table.TableSize()
}

// GetStat - Walks through the entire set of buckets and produces a Stat struct with information.
//   - includeDistribution set to true will include a slice with number of records per bucket, false will set Stat.BucketDistribution to nil.
func (C *CourseMap) GetStat(includeDistribution bool) (stat *Stat) {
	return C.table.GetStat(includeDistribution)
}

// Reset - Empties the map, releasing every chained record, while keeping its fixed bucket count
func (C *CourseMap) Reset() {
	C.table.Reset()
}

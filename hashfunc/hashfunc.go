package hashfunc

// HashAlgorithm - Interface that permits an implementation using the CourseMap to supply a custom bucket
// selection algorithm suited for its particular distribution of course numbers.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when a CourseMap is created with a custom algorithm, so if the supplied instance
	// already holds a table size it will be overwritten by the bucket count the map is created with.
	//   - tableSize is the number of buckets the map will address
	SetTableSize(tableSize int)

	// BucketIndex - Given key it generates an index (bucket) between 0 and table size - 1.
	// The function must be deterministic for a fixed table size, same key and same table size must
	// always produce the same index. Any index returned outside the table size (0 -> table size - 1)
	// will result in an error down stream.
	BucketIndex(key string) int

	// GetTableSize - Returns the table size the implemented hash function is supporting.
	// It is very important that this function returns the actual table size and not just the table
	// size given at instantiating time or in a call to SetTableSize, should the implementation
	// round the requested size in any way.
	GetTableSize() int
}

package hash

// Poly31Algorithm - The internally used bucket selection algorithm. It accumulates, for each
// character at position i (0-based) in the key, the term char * 31^i modulo the table size into a
// zero initialized accumulator, and the bucket index is the accumulator modulo the table size.
// The power 31^i is reduced modulo the table size at every step, which keeps the arithmetic within
// int range without changing the result.
type Poly31Algorithm struct {
	tableSize int
}

// NewPoly31Algorithm - Returns a pointer to a new Poly31Algorithm instance
func NewPoly31Algorithm(tableSize int) *Poly31Algorithm {
	ha := &Poly31Algorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
//   - tableSize is the number of buckets the map will address
func (P *Poly31Algorithm) SetTableSize(tableSize int) {
	P.tableSize = tableSize
}

// BucketIndex - Given key it generates an index (bucket) between 0 and table size - 1
func (P *Poly31Algorithm) BucketIndex(key string) int {
	sum := 0
	power := 1 % P.tableSize
	for i := 0; i < len(key); i++ {
		sum += int(key[i]) * power % P.tableSize
		power = power * 31 % P.tableSize
	}
	return sum % P.tableSize
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (P *Poly31Algorithm) GetTableSize() int {
	return P.tableSize
}

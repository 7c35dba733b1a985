// Package sparse provides a set of small integers with constant time
// insert, membership and clear.
//
// The literal extractor uses it to remember which instructions a closure
// walk has already visited, so one set can serve every walk over a program
// without reallocating.
package sparse

// Set holds values below a fixed capacity. Values are kept in insertion
// order.
type Set struct {
	sparse []uint32 // value -> index in dense
	dense  []uint32
}

// New returns an empty set for values in [0, capacity).
func New(capacity int) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds v and reports whether it was absent. It panics if v is not
// below the capacity.
func (s *Set) Insert(v uint32) bool {
	if s.Contains(v) {
		return false
	}
	s.sparse[v] = uint32(len(s.dense))
	s.dense = append(s.dense, v)
	return true
}

// Contains reports whether v is in the set.
func (s *Set) Contains(v uint32) bool {
	if int64(v) >= int64(len(s.sparse)) {
		return false
	}
	i := s.sparse[v]
	return int(i) < len(s.dense) && s.dense[i] == v
}

// Clear empties the set.
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}

// Len returns the number of values in the set.
func (s *Set) Len() int {
	return len(s.dense)
}

// Values returns the values in insertion order. The slice is only valid
// until the next Insert or Clear.
func (s *Set) Values() []uint32 {
	return s.dense
}

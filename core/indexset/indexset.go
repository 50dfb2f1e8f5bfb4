// Package indexset provides an immutable set of non-negative indices backed by
// a Roaring bitmap.
//
// Extents (object indices) and intents (attribute indices) of formal concepts
// are represented with Set. Every operation returns a new Set; the receiver is
// never modified, so a Set can be shared freely between goroutines once built.
package indexset

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
)

// Set is an immutable set of indices. The zero value is the empty set.
type Set struct {
	rb *roaring.Bitmap
}

// New returns the set containing the given indices. Negative indices panic.
func New(indices ...int) Set {
	rb := roaring.New()
	for _, i := range indices {
		rb.Add(toUint32(i))
	}
	return Set{rb: rb}
}

// Range returns {0, 1, ..., n-1}.
func Range(n int) Set {
	rb := roaring.New()
	if n > 0 {
		rb.AddRange(0, uint64(n))
	}
	return Set{rb: rb}
}

// FromBitmap copies rb into a new Set.
func FromBitmap(rb *roaring.Bitmap) Set {
	if rb == nil {
		return Set{}
	}
	return Set{rb: rb.Clone()}
}

// FromMask returns the set of bit positions that are set in mask.
func FromMask(mask uint64) Set {
	rb := roaring.New()
	for i := 0; mask != 0; i++ {
		if mask&1 == 1 {
			rb.Add(uint32(i))
		}
		mask >>= 1
	}
	return Set{rb: rb}
}

var empty = roaring.New()

func (s Set) bitmap() *roaring.Bitmap {
	if s.rb == nil {
		return empty
	}
	return s.rb
}

// Bitmap returns a copy of the underlying bitmap.
func (s Set) Bitmap() *roaring.Bitmap {
	return s.bitmap().Clone()
}

// Contains reports whether i is a member of s.
func (s Set) Contains(i int) bool {
	if i < 0 {
		return false
	}
	return s.bitmap().Contains(uint32(i))
}

// Len returns the number of members.
func (s Set) Len() int {
	return int(s.bitmap().GetCardinality())
}

// IsEmpty reports whether s has no members.
func (s Set) IsEmpty() bool {
	return s.bitmap().IsEmpty()
}

// Add returns s ∪ {i}.
func (s Set) Add(i int) Set {
	rb := s.bitmap().Clone()
	rb.Add(toUint32(i))
	return Set{rb: rb}
}

// Remove returns s \ {i}.
func (s Set) Remove(i int) Set {
	rb := s.bitmap().Clone()
	if i >= 0 {
		rb.Remove(uint32(i))
	}
	return Set{rb: rb}
}

// Union returns s ∪ o.
func (s Set) Union(o Set) Set {
	return Set{rb: roaring.Or(s.bitmap(), o.bitmap())}
}

// Intersect returns s ∩ o.
func (s Set) Intersect(o Set) Set {
	return Set{rb: roaring.And(s.bitmap(), o.bitmap())}
}

// Difference returns s \ o.
func (s Set) Difference(o Set) Set {
	return Set{rb: roaring.AndNot(s.bitmap(), o.bitmap())}
}

// Equal reports whether s and o have exactly the same members.
func (s Set) Equal(o Set) bool {
	return s.bitmap().Equals(o.bitmap())
}

// IsSubsetOf reports whether every member of s is a member of o.
func (s Set) IsSubsetOf(o Set) bool {
	a := s.bitmap()
	return a.AndCardinality(o.bitmap()) == a.GetCardinality()
}

// IsProperSubsetOf reports whether s ⊂ o and s != o.
func (s Set) IsProperSubsetOf(o Set) bool {
	return s.IsSubsetOf(o) && s.Len() < o.Len()
}

// Min returns the smallest member. ok is false for the empty set.
func (s Set) Min() (int, bool) {
	rb := s.bitmap()
	if rb.IsEmpty() {
		return 0, false
	}
	return int(rb.Minimum()), true
}

// Indices returns the members in ascending order.
func (s Set) Indices() []int {
	arr := s.bitmap().ToArray()
	out := make([]int, len(arr))
	for i, v := range arr {
		out[i] = int(v)
	}
	return out
}

// All iterates over the members in ascending order.
func (s Set) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := s.bitmap().Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}

// Key returns a canonical string for s. Two sets have the same key exactly
// when they are Equal, so keys can index maps of sets.
func (s Set) Key() string {
	var b strings.Builder
	for i, v := range s.bitmap().ToArray() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(v), 10))
	}
	return b.String()
}

// String formats s as "{0, 2, 4}".
func (s Set) String() string {
	return "{" + strings.ReplaceAll(s.Key(), ",", ", ") + "}"
}

// LecticLess reports whether a precedes b in Ganter's lectic order: the
// smallest index on which a and b differ belongs to b.
func LecticLess(a, b Set) bool {
	diff := roaring.Xor(a.bitmap(), b.bitmap())
	if diff.IsEmpty() {
		return false
	}
	return b.bitmap().Contains(diff.Minimum())
}

func toUint32(i int) uint32 {
	if i < 0 {
		panic(fmt.Sprintf("indexset: negative index %d", i))
	}
	return uint32(i)
}

// Package invindex provides a Roaring-Bitmap-backed inverted index over
// (feature, value) pairs. The feature table uses it to answer
// "which inventory rows carry this exact specification" queries with
// bitmap intersections instead of row scans.
package invindex

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Bitmap wraps a 32-bit Roaring Bitmap of inventory row numbers.
type Bitmap struct {
	rb *roaring.Bitmap
}

// NewBitmap creates a new empty bitmap.
func NewBitmap() *Bitmap {
	return &Bitmap{rb: roaring.New()}
}

// Add adds a row to the bitmap.
func (b *Bitmap) Add(row uint32) {
	b.rb.Add(row)
}

// Contains checks if a row is in the bitmap.
func (b *Bitmap) Contains(row uint32) bool {
	return b.rb.Contains(row)
}

// IsEmpty returns true if the bitmap is empty.
func (b *Bitmap) IsEmpty() bool {
	return b.rb.IsEmpty()
}

// Cardinality returns the number of rows in the bitmap.
func (b *Bitmap) Cardinality() uint64 {
	return b.rb.GetCardinality()
}

// Clone returns a deep copy of the bitmap.
func (b *Bitmap) Clone() *Bitmap {
	return &Bitmap{rb: b.rb.Clone()}
}

// And computes the intersection with other in place.
func (b *Bitmap) And(other *Bitmap) {
	b.rb.And(other.rb)
}

// Or computes the union with other in place.
func (b *Bitmap) Or(other *Bitmap) {
	b.rb.Or(other.rb)
}

// Iterator returns an iterator over the rows in ascending order.
func (b *Bitmap) Iterator() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := b.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

package invindex

// Posting is a single (feature, value) query term.
type Posting struct {
	Name  string
	Value int8
}

// Index maps (feature, value) pairs to the set of rows specified that
// way. It is append-only: the table builds it once at load time and
// only queries it afterwards, so no locking is needed.
type Index struct {
	// name -> value -> rows
	postings map[string]map[int8]*Bitmap
	rows     *Bitmap
}

// New creates an empty index.
func New() *Index {
	return &Index{
		postings: make(map[string]map[int8]*Bitmap),
		rows:     NewBitmap(),
	}
}

// Add records that row stores value for the named feature.
func (ix *Index) Add(row uint32, name string, value int8) {
	vm, ok := ix.postings[name]
	if !ok {
		vm = make(map[int8]*Bitmap)
		ix.postings[name] = vm
	}
	bm, ok := vm[value]
	if !ok {
		bm = NewBitmap()
		vm[value] = bm
	}
	bm.Add(row)
	ix.rows.Add(row)
}

// Postings returns the rows carrying the exact (name, value) pair.
// The returned bitmap is shared; callers must not mutate it.
func (ix *Index) Postings(name string, value int8) (*Bitmap, bool) {
	vm, ok := ix.postings[name]
	if !ok {
		return nil, false
	}
	bm, ok := vm[value]
	return bm, ok
}

// Query intersects the postings of all pairs. A pair with no postings
// short-circuits to the empty set. Intersection starts from the
// smallest postings list to keep the working set minimal.
func (ix *Index) Query(pairs []Posting) *Bitmap {
	if len(pairs) == 0 {
		return ix.rows.Clone()
	}

	lists := make([]*Bitmap, 0, len(pairs))
	for _, p := range pairs {
		bm, ok := ix.Postings(p.Name, p.Value)
		if !ok {
			return NewBitmap()
		}
		lists = append(lists, bm)
	}

	base := 0
	for i := 1; i < len(lists); i++ {
		if lists[i].Cardinality() < lists[base].Cardinality() {
			base = i
		}
	}

	result := lists[base].Clone()
	for i, bm := range lists {
		if i == base {
			continue
		}
		result.And(bm)
		if result.IsEmpty() {
			return result
		}
	}
	return result
}

// Rows returns a copy of the set of all indexed rows.
func (ix *Index) Rows() *Bitmap {
	return ix.rows.Clone()
}

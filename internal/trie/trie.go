// Package trie provides a generic rune-keyed trie with longest-prefix
// matching. It backs the greedy word segmenter: IPA symbols may span
// several runes (base letter plus diacritics or tie bars), so a lookup
// must prefer "t͡ʃ" over its prefix "t" when both are known.
package trie

// Trie is a rune-keyed trie storing values of type T. The zero value
// is not usable; create instances with New.
//
// A Trie is not safe for concurrent mutation. Lookups may run
// concurrently once all inserts are done.
type Trie[T any] struct {
	children map[rune]*Trie[T]
	set      bool
	value    T
	size     int
}

// New creates a new empty Trie.
func New[T any]() *Trie[T] {
	return &Trie[T]{}
}

// Insert stores value under key, overwriting any previous value. The
// empty key is valid and matches the empty prefix.
func (t *Trie[T]) Insert(key string, value T) {
	node := t
	for _, r := range key {
		if node.children == nil {
			node.children = make(map[rune]*Trie[T])
		}
		ch, ok := node.children[r]
		if !ok {
			ch = &Trie[T]{}
			node.children[r] = ch
		}
		node = ch
	}
	if !node.set {
		t.size++
	}
	node.set = true
	node.value = value
}

// Get retrieves the value stored under exactly key.
func (t *Trie[T]) Get(key string) (T, bool) {
	node := t
	for _, r := range key {
		ch, ok := node.children[r]
		if !ok {
			var zero T
			return zero, false
		}
		node = ch
	}
	return node.value, node.set
}

// LongestPrefix finds the longest key that is a prefix of s. It walks s
// rune by rune and remembers the deepest node holding a value.
func (t *Trie[T]) LongestPrefix(s string) (key string, value T, ok bool) {
	node := t
	end := 0
	if node.set {
		value, ok = node.value, true
	}
	for i, r := range s {
		ch, found := node.children[r]
		if !found {
			break
		}
		node = ch
		if node.set {
			end = i + len(string(r))
			value, ok = node.value, true
		}
	}
	return s[:end], value, ok
}

// Len returns the number of keys stored in the trie.
func (t *Trie[T]) Len() int {
	return t.size
}

// Walk calls fn for every stored key/value pair. The visit order is
// unspecified.
func (t *Trie[T]) Walk(fn func(key string, value T)) {
	t.walk(nil, fn)
}

func (t *Trie[T]) walk(prefix []rune, fn func(string, T)) {
	if t.set {
		fn(string(prefix), t.value)
	}
	for r, ch := range t.children {
		ch.walk(append(prefix, r), fn)
	}
}

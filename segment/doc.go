// Package segment models a phonological segment (a single speech sound)
// as a vector of ternary-valued distinctive features bound to a shared
// schema.
//
// A Schema is the ordered list of feature names that all comparable
// segments share. A Segment stores one Value per feature and supports
// field access, set-style algebra, and several distance metrics over
// the resulting vector.
//
// # Ternary Values
//
// Every feature carries one of three conventional states:
//
//   - Plus (+1): the feature is present, rendered "+"
//   - Minus (-1): the feature is absent, rendered "-"
//   - Unspecified (0): the feature is neutral/unmarked, rendered "0"
//
// Value is a named integer, not a closed enum: the validated setter and
// the bulk merge store whatever they are given verbatim. Only the
// notation parser restricts input to the three symbols.
//
// # Notation Strings
//
// A compact textual form specifies features as symbol+name tokens,
// e.g. "+voice-nasal0round". Tokens are scanned left to right; text
// between tokens is ignored, and later tokens win:
//
//	schema := segment.NewSchema([]string{"voice", "nasal", "round"})
//	seg := segment.New(schema, segment.WithNotation("+voice-nasal"))
//	fmt.Println(seg) // [+voice, -nasal, 0round]
//
// # Distances
//
// Distance (L1), NormDistance, HammingDistance and NormHammingDistance
// compare two segments pairwise in schema order. When the two vectors
// differ in length the metrics stop at the shorter one; trailing
// components of the longer vector are ignored.
//
// # Concurrency
//
// A Segment is a plain in-memory value with no internal locking. Do not
// share one across concurrent mutators without external
// synchronization. A Schema is immutable after construction and safe
// for unsynchronized sharing.
package segment

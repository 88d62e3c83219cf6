package segment

import "regexp"

// notationRE matches one feature token: a ternary symbol followed by a
// run of name characters (letters, digits, underscore). The digit '0'
// is excluded from the name run because it doubles as the neutral
// symbol: in "+voice-nasal0round" the '0' must start a new token
// rather than extend "nasal". Anything between tokens is skipped by
// the scan.
var notationRE = regexp.MustCompile(`([+0-])([_\p{L}1-9]+)`)

// ParseNotation scans a compact notation string such as
// "+voice-nasal0round" and returns the feature tokens in scan order.
// Duplicate names are preserved; when the result is applied to a
// segment, later tokens overwrite earlier ones.
//
// The scan never fails: malformed stretches of input are silently
// skipped, and names are not checked against any schema.
func ParseNotation(notation string) []Feature {
	if notation == "" {
		return nil
	}
	matches := notationRE.FindAllStringSubmatch(notation, -1)
	if len(matches) == 0 {
		return nil
	}
	fts := make([]Feature, 0, len(matches))
	for _, m := range matches {
		// The symbol class guarantees the decode succeeds.
		v, _ := ParseSymbol(rune(m[1][0]))
		fts = append(fts, Feature{Name: m[2], Value: v})
	}
	return fts
}

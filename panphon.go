package panphon

import (
	"context"
	"iter"
	"time"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/armendk/panphon/distance"
	"github.com/armendk/panphon/internal/invindex"
	"github.com/armendk/panphon/internal/trie"
	"github.com/armendk/panphon/segment"
)

// FeatureTable maps IPA symbols to feature segments. It owns the
// canonical feature schema, the segment inventory, a longest-prefix
// trie for word segmentation and an inverted index for feature
// queries.
//
// A FeatureTable is immutable after construction and safe for
// concurrent use. Segments handed out by lookups are per-call clones,
// so callers may mutate them freely.
type FeatureTable struct {
	schema    *segment.Schema
	symbols   []string
	rows      map[string]*segment.Segment
	prefixes  *trie.Trie[*segment.Segment]
	index     *invindex.Index
	normalize bool

	logger  *Logger
	metrics MetricsCollector
}

// New creates a FeatureTable from the embedded IPA table, or from the
// source configured with WithTablePath or WithTableReader.
func New(optFns ...Option) (*FeatureTable, error) {
	opts := applyOptions(optFns)
	ctx := context.Background()

	start := time.Now()
	td, source, err := loadTable(&opts)
	if err != nil {
		opts.logger.LogLoad(ctx, source, 0, 0, err)
		opts.metricsCollector.RecordLoad(0, time.Since(start), err)
		return nil, err
	}

	ft := &FeatureTable{
		schema:    td.schema,
		symbols:   make([]string, len(td.symbols)),
		rows:      make(map[string]*segment.Segment, len(td.rows)),
		prefixes:  trie.New[*segment.Segment](),
		index:     invindex.New(),
		normalize: opts.normalize,
		logger:    opts.logger,
		metrics:   opts.metricsCollector,
	}

	// Table symbols are normalized the same way as lookup input, so a
	// composed table matches decomposed input and vice versa.
	for i, symbol := range td.symbols {
		seg := td.rows[symbol]
		if opts.normalize {
			symbol = norm.NFD.String(symbol)
		}
		ft.symbols[i] = symbol
		ft.rows[symbol] = seg
		ft.prefixes.Insert(symbol, seg)
		for name, v := range seg.All() {
			ft.index.Add(uint32(i), name, int8(v))
		}
	}

	ft.logger.LogLoad(ctx, source, len(ft.symbols), ft.schema.Len(), nil)
	ft.metrics.RecordLoad(len(ft.symbols), time.Since(start), nil)

	return ft, nil
}

// normalized applies NFD normalization to lookup input unless
// disabled.
func (ft *FeatureTable) normalized(s string) string {
	if !ft.normalize {
		return s
	}
	return norm.NFD.String(s)
}

// Schema returns the shared feature schema of the inventory.
func (ft *FeatureTable) Schema() *segment.Schema {
	return ft.schema
}

// Len returns the number of symbols in the inventory.
func (ft *FeatureTable) Len() int {
	return len(ft.symbols)
}

// Inventory returns an iterator over the inventory symbols in table
// order.
func (ft *FeatureTable) Inventory() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, symbol := range ft.symbols {
			if !yield(symbol) {
				return
			}
		}
	}
}

// Contains reports whether the inventory has a row for the symbol.
func (ft *FeatureTable) Contains(ipa string) bool {
	_, ok := ft.rows[ft.normalized(ipa)]
	return ok
}

// Segment returns the feature segment for an IPA symbol. The result is
// a clone; mutating it does not affect the inventory.
func (ft *FeatureTable) Segment(ipa string) (*segment.Segment, bool) {
	seg, ok := ft.rows[ft.normalized(ipa)]
	ft.logger.LogLookup(context.Background(), ipa, ok)
	ft.metrics.RecordLookup(ok)
	if !ok {
		return nil, false
	}
	return seg.Clone(), true
}

// Segments splits a word into feature segments by greedy longest-prefix
// matching against the inventory. Input the inventory cannot match is
// skipped one rune at a time; use SegmentsStrict to reject such input
// instead.
func (ft *FeatureTable) Segments(word string) []*segment.Segment {
	start := time.Now()
	segs, _ := ft.segments(word, false)
	ft.logger.LogSegmentation(context.Background(), word, len(segs), nil)
	ft.metrics.RecordSegmentation(len(segs), time.Since(start), nil)
	return segs
}

// SegmentsStrict splits a word like Segments but fails with an
// UnknownSymbolError on the first input no inventory symbol matches.
func (ft *FeatureTable) SegmentsStrict(word string) ([]*segment.Segment, error) {
	start := time.Now()
	segs, err := ft.segments(word, true)
	ft.logger.LogSegmentation(context.Background(), word, len(segs), err)
	ft.metrics.RecordSegmentation(len(segs), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return segs, nil
}

func (ft *FeatureTable) segments(word string, strict bool) ([]*segment.Segment, error) {
	w := ft.normalized(word)
	var segs []*segment.Segment
	for i := 0; i < len(w); {
		key, seg, ok := ft.prefixes.LongestPrefix(w[i:])
		if !ok {
			r, size := utf8.DecodeRuneInString(w[i:])
			if strict {
				return segs, &UnknownSymbolError{Symbol: string(r), Offset: i}
			}
			// Skip one rune and retry.
			i += size
			continue
		}
		segs = append(segs, seg.Clone())
		i += len(key)
	}
	return segs, nil
}

// Symbols splits a word into inventory symbols without looking up
// their segments. Unknown input is skipped.
func (ft *FeatureTable) Symbols(word string) []string {
	w := ft.normalized(word)
	var symbols []string
	for i := 0; i < len(w); {
		key, _, ok := ft.prefixes.LongestPrefix(w[i:])
		if !ok {
			_, size := utf8.DecodeRuneInString(w[i:])
			i += size
			continue
		}
		symbols = append(symbols, key)
		i += len(key)
	}
	return symbols
}

// MatchingSegments returns the inventory symbols whose rows carry every
// supplied (feature, value) pair, in table order. A feature outside the
// schema yields no postings and therefore an empty result.
func (ft *FeatureTable) MatchingSegments(features map[string]segment.Value) []string {
	start := time.Now()

	pairs := make([]invindex.Posting, 0, len(features))
	for name, v := range features {
		pairs = append(pairs, invindex.Posting{Name: name, Value: int8(v)})
	}

	var symbols []string
	for row := range ft.index.Query(pairs).Iterator() {
		symbols = append(symbols, ft.symbols[row])
	}

	ft.logger.LogMatch(context.Background(), len(features), len(symbols))
	ft.metrics.RecordMatch(len(symbols), time.Since(start))
	return symbols
}

// MatchingNotation is MatchingSegments with the query given in compact
// notation, e.g. "+voi+nas". The notation is parsed with
// segment.ParseNotation; later tokens win on duplicate names.
func (ft *FeatureTable) MatchingNotation(notation string) []string {
	features := make(map[string]segment.Value)
	for _, f := range segment.ParseNotation(notation) {
		features[f.Name] = f.Value
	}
	return ft.MatchingSegments(features)
}

// WordDistance segments both words and computes the feature edit
// distance between the resulting sequences. Options pass through to
// distance.EditDistance.
func (ft *FeatureTable) WordDistance(a, b string, optFns ...distance.EditOption) float64 {
	return distance.EditDistance(ft.Segments(a), ft.Segments(b), optFns...)
}

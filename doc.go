// Package panphon provides ternary phonological feature vectors for
// IPA segments, with production-ready features including:
//
//   - A schema-bound Segment type with set algebra and distance metrics
//   - A FeatureTable mapping IPA symbols to feature vectors
//   - Greedy longest-prefix word segmentation for multi-rune symbols
//   - Feature-specification search backed by a Roaring Bitmap index
//   - Corpus-level weighted and edit distances (package distance)
//
// # Quick Start
//
// Load the embedded feature table and look up a segment:
//
//	ft, err := panphon.New()
//	if err != nil {
//	    panic(err)
//	}
//
//	seg, ok := ft.Segment("t͡ʃ")
//	if ok {
//	    fmt.Println(seg) // [-syl, -son, +cons, ...]
//	}
//
// Split a word into segments and compare two words:
//
//	segs := ft.Segments("t͡ʃat")
//	d, err := ft.WordDistance("pat", "bat")
//
// Search the inventory by feature specification:
//
//	symbols, err := ft.MatchingNotation("+voi+nas")
//
// # Custom Tables
//
// The embedded table covers a base IPA inventory with the 24-feature
// schema. Alternative tables load from CSV files, with transparent
// zstd and lz4 decompression by file extension:
//
//	ft, err := panphon.New(panphon.WithTablePath("my_table.csv.zst"))
//
// # Observability
//
// Logging and metrics are disabled by default and opt in per table:
//
//	ft, err := panphon.New(
//	    panphon.WithLogger(panphon.NewTextLogger(slog.LevelDebug)),
//	    panphon.WithMetricsCollector(&panphon.BasicMetricsCollector{}),
//	)
package panphon

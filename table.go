package panphon

import (
	"bytes"
	"embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/armendk/panphon/segment"
)

//go:embed data/ipa_bases.csv
var embeddedData embed.FS

const embeddedTablePath = "data/ipa_bases.csv"

// tableData is the parsed contents of a feature table file: the schema
// from the header and one feature row per inventory symbol, in file
// order.
type tableData struct {
	schema  *segment.Schema
	symbols []string
	rows    map[string]*segment.Segment
}

// openTable opens a feature table file, transparently decompressing
// .zst and .lz4 files by extension.
func openTable(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}

	switch filepath.Ext(path) {
	case ".zst":
		dec, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("open zstd table: %w", err)
		}
		return &decompressReader{r: dec.IOReadCloser(), underlying: f}, nil
	case ".lz4":
		return &decompressReader{r: io.NopCloser(lz4.NewReader(f)), underlying: f}, nil
	default:
		return f, nil
	}
}

// decompressReader closes both the decompressor and the underlying
// file.
type decompressReader struct {
	r          io.ReadCloser
	underlying io.Closer
}

func (d *decompressReader) Read(p []byte) (int, error) {
	return d.r.Read(p)
}

func (d *decompressReader) Close() error {
	err := d.r.Close()
	if cerr := d.underlying.Close(); err == nil {
		err = cerr
	}
	return err
}

// parseTable parses the CSV wire format: a header row "ipa,<feature>..."
// followed by one row per segment holding the symbol and one ternary
// value per feature. Rows with the wrong arity, values outside
// {+, 0, -}, duplicate symbols or an empty schema fail with a RowError
// wrapping ErrMalformedTable.
func parseTable(r io.Reader) (*tableData, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // arity is checked per row for typed errors

	header, err := cr.Read()
	if err == io.EOF {
		return nil, newRowError(1, "empty table")
	}
	if err != nil {
		return nil, fmt.Errorf("read table header: %w", err)
	}
	if len(header) < 2 {
		return nil, newRowError(1, "header defines no features")
	}

	schema := segment.NewSchema(header[1:])
	td := &tableData{
		schema: schema,
		rows:   make(map[string]*segment.Segment),
	}

	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read table row %d: %w", line, err)
		}
		if len(record) != len(header) {
			return nil, newRowError(line, "expected %d fields, got %d", len(header), len(record))
		}

		symbol := record[0]
		if symbol == "" {
			return nil, newRowError(line, "empty segment symbol")
		}
		if _, ok := td.rows[symbol]; ok {
			return nil, newRowError(line, "duplicate segment symbol %q", symbol)
		}

		features := make(map[string]segment.Value, schema.Len())
		for i, field := range record[1:] {
			ru, size := utf8.DecodeRuneInString(field)
			if size != len(field) {
				return nil, newRowError(line, "feature %q: invalid value %q", header[i+1], field)
			}
			v, err := segment.ParseSymbol(ru)
			if err != nil {
				return nil, newRowError(line, "feature %q: invalid value %q", header[i+1], field)
			}
			features[header[i+1]] = v
		}

		td.symbols = append(td.symbols, symbol)
		td.rows[symbol] = segment.New(schema, segment.WithFeatures(features))
	}

	return td, nil
}

// loadTable resolves the configured table source: an explicit reader
// wins over a path, and the embedded default covers the rest. It
// returns the parsed table and a description of the source for
// logging.
func loadTable(opts *options) (*tableData, string, error) {
	switch {
	case opts.tableReader != nil:
		td, err := parseTable(opts.tableReader)
		return td, "reader", err
	case opts.tablePath != "":
		rc, err := openTable(opts.tablePath)
		if err != nil {
			return nil, opts.tablePath, err
		}
		defer rc.Close()
		td, err := parseTable(rc)
		return td, opts.tablePath, err
	default:
		data, err := embeddedData.ReadFile(embeddedTablePath)
		if err != nil {
			return nil, "embedded", fmt.Errorf("read embedded table: %w", err)
		}
		td, err := parseTable(bytes.NewReader(data))
		return td, "embedded", err
	}
}

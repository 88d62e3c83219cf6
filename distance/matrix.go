package distance

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/armendk/panphon/segment"
)

// WordFunc is a function type for distances between segment sequences,
// e.g. EditDistance with a fixed configuration.
type WordFunc func(a, b []*segment.Segment) float64

type matrixOptions struct {
	parallelism int
}

// MatrixOption configures Matrix.
type MatrixOption func(*matrixOptions)

// WithParallelism caps the number of rows computed concurrently. The
// default is GOMAXPROCS.
func WithParallelism(n int) MatrixOption {
	return func(o *matrixOptions) {
		if n > 0 {
			o.parallelism = n
		}
	}
}

// Matrix computes the pairwise distance matrix between two word lists:
// result[i][j] = fn(a[i], b[j]). Rows are computed in parallel; the
// context cancels outstanding rows on the first error or caller
// cancellation.
func Matrix(ctx context.Context, a, b [][]*segment.Segment, fn WordFunc, optFns ...MatrixOption) ([][]float64, error) {
	opts := matrixOptions{parallelism: runtime.GOMAXPROCS(0)}
	for _, optFn := range optFns {
		if optFn != nil {
			optFn(&opts)
		}
	}

	result := make([][]float64, len(a))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.parallelism)

	for i := range a {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			row := make([]float64, len(b))
			for j := range b {
				row[j] = fn(a[i], b[j])
			}
			result[i] = row
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

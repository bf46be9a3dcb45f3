package lzbatch

import (
	"context"
	"math"

	"github.com/forestrie/go-lzsuffix/lz76"
	"github.com/forestrie/go-lzsuffix/lzref"
)

// PhraseCounts returns the LZ76 phrase count of every input using the
// suffix-tree counter. Each worker resets and reuses a single counter.
func (e *Engine) PhraseCounts(ctx context.Context, inputs [][]byte) ([]int, error) {
	return run(ctx, e, "phrasecounts", len(inputs),
		func() *lz76.Counter { return lz76.New(e.opts.TreeOptions...) },
		func(c *lz76.Counter, i int) (int, error) { return c.Count(inputs[i]) },
		-1,
	)
}

// ReferencePhraseCounts is PhraseCounts computed by the brute-force engine.
func (e *Engine) ReferencePhraseCounts(ctx context.Context, inputs [][]byte) ([]int, error) {
	return run(ctx, e, "referencephrasecounts", len(inputs),
		func() *lzref.State { return lzref.NewState(0) },
		func(st *lzref.State, i int) (int, error) {
			st.Reset()
			for _, b := range inputs[i] {
				st.Push(b)
			}
			return st.Complexity(), nil
		},
		-1,
	)
}

func (e *Engine) Complexity76(ctx context.Context, inputs [][]byte) ([]float64, error) {
	return e.each(ctx, "complexity76", inputs, lzref.Complexity76)
}

func (e *Engine) Symmetric76(ctx context.Context, inputs [][]byte) ([]float64, error) {
	return e.each(ctx, "symmetric76", inputs, lzref.Symmetric76)
}

func (e *Engine) Complexity78(ctx context.Context, inputs [][]byte) ([]float64, error) {
	return e.each(ctx, "complexity78", inputs, lzref.Complexity78)
}

func (e *Engine) Symmetric78(ctx context.Context, inputs [][]byte) ([]float64, error) {
	return e.each(ctx, "symmetric78", inputs, lzref.Symmetric78)
}

func (e *Engine) Mutual78(ctx context.Context, inputs [][]byte) ([]float64, error) {
	return e.each(ctx, "mutual78", inputs, lzref.Mutual78)
}

func (e *Engine) BlockEntropy(ctx context.Context, inputs [][]byte, dim int) ([]float64, error) {
	if dim <= 0 {
		return nil, ErrBadBlockDimension
	}
	return e.each(ctx, "blockentropy", inputs, func(s []byte) float64 {
		return lzref.BlockEntropy(s, dim)
	})
}

func (e *Engine) SymmetricBlockEntropy(ctx context.Context, inputs [][]byte, dim int) ([]float64, error) {
	if dim <= 0 {
		return nil, ErrBadBlockDimension
	}
	return e.each(ctx, "symmetricblockentropy", inputs, func(s []byte) float64 {
		return lzref.SymmetricBlockEntropy(s, dim)
	})
}

// Conditional76 evaluates lzref.Conditional76(xs[i], ys[i]) for every pair.
func (e *Engine) Conditional76(ctx context.Context, xs, ys [][]byte) ([]float64, error) {
	return e.pairs(ctx, "conditional76", xs, ys, lzref.Conditional76)
}

// Conditional78 evaluates lzref.Conditional78(xs[i], ys[i]) for every pair.
func (e *Engine) Conditional78(ctx context.Context, xs, ys [][]byte) ([]float64, error) {
	return e.pairs(ctx, "conditional78", xs, ys, lzref.Conditional78)
}

func (e *Engine) each(ctx context.Context, name string, inputs [][]byte, f func([]byte) float64) ([]float64, error) {
	return run(ctx, e, name, len(inputs),
		func() struct{} { return struct{}{} },
		func(_ struct{}, i int) (float64, error) { return f(inputs[i]), nil },
		math.NaN(),
	)
}

func (e *Engine) pairs(ctx context.Context, name string, xs, ys [][]byte, f func(x, y []byte) float64) ([]float64, error) {
	if len(xs) != len(ys) {
		return nil, ErrMismatchedInputs
	}
	return run(ctx, e, name, len(xs),
		func() struct{} { return struct{}{} },
		func(_ struct{}, i int) (float64, error) { return f(xs[i], ys[i]), nil },
		math.NaN(),
	)
}

package exhaustive

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/datatrails/go-datatrails-common/logger"
	"golang.org/x/sync/errgroup"
)

const (
	MaxGenerateLength     = 24
	MaxDistributionLength = 30

	// generateSplit is the prefix length at which Generate checks for
	// cancellation.
	generateSplit = 8

	// tasksPerWorker oversubscribes the prefix split so that uneven subtrees
	// still balance across workers.
	tasksPerWorker = 4
)

var (
	ErrLengthOutOfRange  = errors.New("exhaustive: string length out of range")
	ErrBadBins           = errors.New("exhaustive: at least one complexity bin is required")
	ErrLoggerNotProvided = errors.New("exhaustive: a logger is required")
)

// Generate returns the LZ76 phrase count of every binary string of length L.
// Element i is the count for the string whose big endian bit pattern is i.
func Generate(ctx context.Context, L int) ([]int, error) {
	if L < 1 || L > MaxGenerateLength {
		return nil, fmt.Errorf("%w: %d not in 1..%d", ErrLengthOutOfRange, L, MaxGenerateLength)
	}

	counts := make([]int, 1<<L)
	leaf := func(index uint32, complexity int) {
		counts[index] = complexity
	}

	k := min(L, generateSplit)
	w := newWalker(L)
	for prefix := uint32(0); prefix < 1<<k; prefix++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		w.seed(prefix, k)
		w.walk(k, prefix, leaf)
	}
	return counts, nil
}

// Distribution returns how many binary strings of length L have each phrase
// count. Bin c counts strings of complexity c, except the last bin which also
// absorbs every complexity at or above maxComplexity-1. A workers value of
// zero or less means GOMAXPROCS.
func Distribution(
	ctx context.Context, log logger.Logger, L int, maxComplexity int, workers int,
) ([]int64, error) {
	if log == nil {
		return nil, ErrLoggerNotProvided
	}
	if L < 1 || L > MaxDistributionLength {
		return nil, fmt.Errorf("%w: %d not in 1..%d", ErrLengthOutOfRange, L, MaxDistributionLength)
	}
	if maxComplexity < 1 {
		return nil, ErrBadBins
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	k := splitDepth(L, workers)
	tasks := 1 << k
	log.Debugf("distribution: L=%d bins=%d workers=%d split=%d tasks=%d", L, maxComplexity, workers, k, tasks)

	partial := make([][]int64, tasks)
	last := maxComplexity - 1

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for prefix := 0; prefix < tasks; prefix++ {
		prefix := prefix
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			bins := make([]int64, maxComplexity)
			w := newWalker(L)
			w.seed(uint32(prefix), k)
			w.walk(k, uint32(prefix), func(_ uint32, complexity int) {
				bins[min(complexity, last)]++
			})
			partial[prefix] = bins
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	counts := make([]int64, maxComplexity)
	for _, bins := range partial {
		for c, n := range bins {
			counts[c] += n
		}
	}
	log.Debugf("distribution: L=%d done", L)
	return counts, nil
}

// splitDepth picks the smallest prefix length giving at least tasksPerWorker
// subtrees per worker, bounded by L.
func splitDepth(L int, workers int) int {
	k := 0
	for k < L && 1<<k < workers*tasksPerWorker {
		k++
	}
	return k
}

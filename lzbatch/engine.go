package lzbatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrBadWorkers        = errors.New("lzbatch: worker count must not be negative")
	ErrMismatchedInputs  = errors.New("lzbatch: paired inputs differ in length")
	ErrBadBlockDimension = errors.New("lzbatch: block dimension must be positive")
	ErrLoggerNotProvided = errors.New("lzbatch: a logger is required")
)

// Engine evaluates complexity measures over batches of independent strings.
//
// Work is data parallel: the batch is split into contiguous chunks and each
// worker owns the engine state for its chunk end to end. Nothing mutable is
// shared between workers other than disjoint slots of the result slice.
type Engine struct {
	log  logger.Logger
	opts Options
}

func New(log logger.Logger, opts ...Option) (*Engine, error) {
	if log == nil {
		return nil, ErrLoggerNotProvided
	}
	e := &Engine{log: log}
	for _, o := range opts {
		o(&e.opts)
	}
	if e.opts.Workers < 0 {
		return nil, ErrBadWorkers
	}
	return e, nil
}

func (e *Engine) Options() Options {
	return e.opts
}

// run evaluates do for every index in [0, n). newWorker is called once per
// worker and its value is passed to every do call made by that worker. Under
// ContinueOnError a failed item is stored as failed.
func run[W any, R any](
	ctx context.Context, e *Engine, name string, n int,
	newWorker func() W, do func(w W, i int) (R, error), failed R,
) ([]R, error) {
	results := make([]R, n)
	if n == 0 {
		return results, nil
	}

	runID := uuid.New()
	workers := e.opts.workersFor(n)
	chunk := (n + workers - 1) / workers
	e.log.Debugf("%s: run %s: %d items over %d workers", name, runID, n, workers)

	g, gctx := errgroup.WithContext(ctx)
	for lo := 0; lo < n; lo += chunk {
		lo := lo
		hi := min(lo+chunk, n)
		g.Go(func() error {
			w := newWorker()
			for i := lo; i < hi; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				r, err := do(w, i)
				if err != nil {
					if !e.opts.ContinueOnError {
						return fmt.Errorf("lzbatch: %s: run %s: item %d: %w", name, runID, i, err)
					}
					e.log.Infof("%s: run %s: item %d failed: %v", name, runID, i, err)
					r = failed
				}
				results[i] = r
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	e.log.Debugf("%s: run %s: done", name, runID)
	return results, nil
}

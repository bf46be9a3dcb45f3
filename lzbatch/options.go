package lzbatch

import (
	"runtime"

	"github.com/forestrie/go-lzsuffix/suffixtree"
)

type Options struct {
	// Workers is the number of goroutines, each owning its own engine
	// instance. Zero means GOMAXPROCS.
	Workers int

	// ContinueOnError records -1 for an item the suffix-tree counter fails on
	// and carries on, instead of aborting the batch. The reference measures
	// cannot fail.
	ContinueOnError bool

	// TreeOptions configure the suffix tree behind each worker's counter.
	TreeOptions []suffixtree.Option
}

type Option func(*Options)

func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

func WithContinueOnError() Option {
	return func(o *Options) {
		o.ContinueOnError = true
	}
}

func WithTreeOptions(opts ...suffixtree.Option) Option {
	return func(o *Options) {
		o.TreeOptions = append(o.TreeOptions, opts...)
	}
}

// workersFor returns the number of workers to use for n items.
func (o Options) workersFor(n int) int {
	w := o.Workers
	if w == 0 {
		w = runtime.GOMAXPROCS(0)
	}
	return max(1, min(w, n))
}

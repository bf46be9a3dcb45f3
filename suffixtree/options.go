package suffixtree

type Options struct {
	// MaxText bounds the text length. Zero, or anything above MaxTextLen,
	// means MaxTextLen.
	MaxText int
	// InitialCapacity presizes the text buffer and the node and edge arenas.
	InitialCapacity int
}

type Option func(*Options)

// WithMaxText makes Append fail with ErrCapacityExceeded once the text holds n
// symbols.
func WithMaxText(n int) Option {
	return func(o *Options) {
		o.MaxText = n
	}
}

func WithInitialCapacity(n int) Option {
	return func(o *Options) {
		o.InitialCapacity = n
	}
}

// textLimit is the effective bound on the text length.
func (o Options) textLimit() int {
	if o.MaxText > 0 && o.MaxText < MaxTextLen {
		return o.MaxText
	}
	return MaxTextLen
}

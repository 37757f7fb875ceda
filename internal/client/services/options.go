package services

import (
	"sync/atomic"

	"github.com/dmitrijs2005/bookstore/internal/logging"
)

type options struct {
	notify     Notifier
	log        logging.Logger
	latestOnly bool
}

// Option configures a store.
type Option func(*options)

func WithNotifier(n Notifier) Option {
	return func(o *options) { o.notify = n }
}

func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithLatestOnly makes the catalog apply a search response only when it
// belongs to the most recently issued search.
func WithLatestOnly() Option {
	return func(o *options) { o.latestOnly = true }
}

func buildOptions(opts []Option) options {
	o := options{notify: NopNotifier{}, log: logging.Nop()}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// gauge is the loading flag of a store. It counts operations in flight so
// that overlapping calls cannot lower it early.
type gauge struct {
	n atomic.Int32
}

func (g *gauge) begin() func() {
	g.n.Add(1)
	return func() { g.n.Add(-1) }
}

func (g *gauge) active() bool { return g.n.Load() > 0 }

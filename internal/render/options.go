package render

import (
	"log/slog"
	"time"
)

// Options tunes a single render call. The zero value is usable.
type Options struct {
	// Logger receives the overflow warning for the checkout form.
	// Nil falls back to slog.Default().
	Logger *slog.Logger
	// Watermark stamps DRAFT across the form. On multi-page
	// documents only the first page is stamped.
	Watermark bool
	// Now overrides the wall clock, mainly so tests can pin the
	// generation timestamp. Nil means time.Now.
	Now func() time.Time
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}
